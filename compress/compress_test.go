package compress_test

import (
	"bytes"
	"testing"

	"github.com/mna/voxc/compress"
	"github.com/mna/voxc/game"
	"github.com/stretchr/testify/require"
)

// E6: wrapping the E5 binary in zlib and unwrapping it returns the
// original bytes exactly (spec.md §8).
func TestEncodeDecodeRoundTrip(t *testing.T) {
	g := game.New()
	var buf bytes.Buffer
	require.NoError(t, game.Write(&buf, g))

	encoded, err := compress.Encode(buf.Bytes())
	require.NoError(t, err)
	require.NotEqual(t, buf.Bytes(), encoded)

	decoded, err := compress.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, buf.Bytes(), decoded)
}

func TestDebugEncodeIsYAML(t *testing.T) {
	g := game.New()
	name := "New Level"
	g.Chunks = []game.Chunk{{Kind: game.ChunkLevel, Name: name, HasName: true}}
	out, err := compress.DebugEncode(g)
	require.NoError(t, err)
	require.Contains(t, string(out), "app_version: 31")
	require.Contains(t, string(out), "New Level")
}
