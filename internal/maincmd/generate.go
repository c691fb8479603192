package maincmd

import (
	"context"
	"os"

	"github.com/mna/mainer"
	"github.com/mna/voxc/lang/parser"
	"github.com/mna/voxc/layout"
	"github.com/mna/voxc/prefab"
)

// Generate compiles a script the same way Build does, but defaults to the
// human-readable "debug" encoding instead of the binary container: a
// shorthand for inspecting what a script compiles to without a separate
// load step.
func (c *Cmd) Generate(ctx context.Context, stdio mainer.Stdio, args []string) error {
	encoding := c.Encoding
	if encoding == "" {
		encoding = "debug"
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		return printErr(stdio, err)
	}

	chunk, err := parser.Parse(src)
	if err != nil {
		return printErr(stdio, err)
	}

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

	_, err = w.Write(data)
	return err
}
