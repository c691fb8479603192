package maincmd

import (
	"context"
	"os"

	"github.com/mna/mainer"
)

// Load reads an existing game file, per --decoding, and re-emits it per
// --encoding: a format-conversion and inspection tool, e.g. dumping a
// zlib-wrapped save file as debug YAML.
func (c *Cmd) Load(ctx context.Context, stdio mainer.Stdio, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return printErr(stdio, err)
	}

	g, err := decodeGame(raw, c.Decoding)
	if err != nil {
		return printErr(stdio, err)
	}

	data, err := encodeGame(g, c.Encoding)
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
