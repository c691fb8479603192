package maincmd

import (
	"bytes"
	"io"
	"os"

	"github.com/mna/mainer"
	"github.com/mna/voxc/compress"
	"github.com/mna/voxc/game"
)

// output resolves the optional second positional argument to a writer:
// the named file if given, stdio.Stdout otherwise. The returned closer is
// a no-op for stdout.
func output(stdio mainer.Stdio, args []string) (io.Writer, func() error, error) {
	if len(args) < 2 {
		return stdio.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(args[1])
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// encodeGame renders g per enc (spec.md §6's --encoding: zlib, raw, or
// debug). An empty enc is treated as "raw".
func encodeGame(g *game.Game, enc string) ([]byte, error) {
	if enc == "debug" {
		return compress.DebugEncode(g)
	}
	var buf bytes.Buffer
	if err := game.Write(&buf, g); err != nil {
		return nil, err
	}
	if enc == "zlib" {
		return compress.Encode(buf.Bytes())
	}
	return buf.Bytes(), nil
}

// decodeGame reverses the binary (non-debug) half of encodeGame, per dec
// (spec.md §6's --decoding: zlib or raw). An empty dec is treated as
// "raw".
func decodeGame(raw []byte, dec string) (*game.Game, error) {
	if dec == "zlib" {
		plain, err := compress.Decode(raw)
		if err != nil {
			return nil, err
		}
		raw = plain
	}
	return game.ReadStream(bytes.NewReader(raw))
}
