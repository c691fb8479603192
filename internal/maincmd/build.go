package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
	"github.com/mna/voxc/lang/parser"
	"github.com/mna/voxc/layout"
	"github.com/mna/voxc/prefab"
)

// Build compiles a script into a game file: lexer, parser, prefab catalog
// lookup, layout transpiler, then the game codec (spec.md §2 pipeline).
func (c *Cmd) Build(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return BuildFile(ctx, stdio, c.Encoding, args...)
}

func BuildFile(_ context.Context, stdio mainer.Stdio, encoding string, args ...string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return printErr(stdio, err)
	}

	chunk, err := parser.Parse(src)
	if err != nil {
		return printErr(stdio, err)
	}

	// the catalog's own known duplicate-name warnings (see DESIGN.md)
	// describe the static data, not this particular script; they are not
	// forwarded to the diagnostic stream.
	cat, _ := prefab.New()

	g, err := layout.Transpile(chunk, cat)
	if err != nil {
		return printErr(stdio, err)
	}

	data, err := encodeGame(g, encoding)
	if err != nil {
		return printErr(stdio, err)
	}

	w, closeFn, err := output(stdio, args)
	if err != nil {
		return printErr(stdio, err)
	}
	defer closeFn()

	if _, err := w.Write(data); err != nil {
		return printErr(stdio, err)
	}
	return nil
}

func printErr(stdio mainer.Stdio, err error) error {
	fmt.Fprintf(stdio.Stderr, "%s\n", err)
	return err
}
