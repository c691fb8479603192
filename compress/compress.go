// Package compress wraps the game binary container in the zlib-compatible
// DEFLATE transform the core treats as opaque (spec.md §4.6), plus a
// human-readable debug encoding used by the CLI's "debug" mode.
package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

// Encode compresses data with zlib, the "wrapped" half of the core's
// (encode, decode) byte-stream pair.
func Encode(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reverses Encode.
func Decode(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
