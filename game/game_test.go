package game_test

import (
	"bytes"
	"testing"

	"github.com/mna/voxc/game"
	"github.com/stretchr/testify/require"
)

// E5: a default Game with zero chunks round-trips to this exact byte
// sequence (spec.md §8, scenario E5).
func TestEmptyGameMatchesDocumentedBytes(t *testing.T) {
	g := game.New()
	var buf bytes.Buffer
	require.NoError(t, game.Write(&buf, g))

	want := []byte{0x1F, 0x00, 0x00, 0x00, 0x00, 0x55, 0x02, 0x00, 0x00}
	require.Equal(t, want, buf.Bytes())

	got, err := game.ReadStream(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, g, got)
}

func TestTrailingBytesRejected(t *testing.T) {
	g := game.New()
	var buf bytes.Buffer
	require.NoError(t, game.Write(&buf, g))
	buf.WriteByte(0x00)

	_, err := game.ReadStream(bytes.NewReader(buf.Bytes()))
	require.Error(t, err)
	require.IsType(t, &game.TrailingBytes{}, err)
}

func TestChunkRoundTrip(t *testing.T) {
	color := uint8(0x1A)
	blocks := game.NewBlocks(1, 1, 2)
	blocks.Set(0, 0, 0, 0x01)
	blocks.Set(0, 0, 1, 0x02)

	g := &game.Game{
		AppVersion: 31, Title: "t", Author: "a", Description: "d", IDOffset: 597,
		Chunks: []game.Chunk{
			{
				IsLocked: true,
				Kind:     game.ChunkLevel,
				Name:     "New Level",
				HasName:  true,
				Collider: game.ColliderPassthrough,
				Color:    &color,
				Blocks:   blocks,
				Opts: []game.Opt{
					{Index: 0, Position: [3]uint16{1, 0, 2}, Data: game.NameData("hello")},
					{Index: 1, Position: [3]uint16{0, 0, 0}, Data: game.Float32Data(1.5)},
				},
				Wires: []game.Wire{
					{From: game.Port{Position: [3]uint16{0, 0, 0}, Offset: [3]uint16{3, 1, 6}},
						To: game.Port{Position: [3]uint16{0, 0, 1}, Offset: [3]uint16{3, 1, 14}}},
				},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, game.Write(&buf, g))
	got, err := game.ReadStream(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, g, got)

	var buf2 bytes.Buffer
	require.NoError(t, game.Write(&buf2, got))
	require.Equal(t, buf.Bytes(), buf2.Bytes())
}

func TestFacesOnlyChunk(t *testing.T) {
	var faces game.Faces
	faces[0][0][0][3] = 7
	g := &game.Game{Chunks: []game.Chunk{
		{Part: &game.Part{ID: 5, Offset: [3]uint8{0, 0, 1}}, Faces: &faces},
	}}
	var buf bytes.Buffer
	require.NoError(t, game.Write(&buf, g))
	got, err := game.ReadStream(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, g, got)
}

func TestUnknownOptKindPreserved(t *testing.T) {
	g := &game.Game{Chunks: []game.Chunk{
		{Opts: []game.Opt{{Index: 0, Data: game.UnknownData{Tag: 0x42, Value: "x"}}}},
	}}
	var buf bytes.Buffer
	require.NoError(t, game.Write(&buf, g))
	got, err := game.ReadStream(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, game.OptKind(0x42), got.Chunks[0].Opts[0].Data.Kind())
}

func TestStringTooLongRejected(t *testing.T) {
	g := game.New()
	g.Title = string(make([]byte, 256))
	var buf bytes.Buffer
	err := game.Write(&buf, g)
	require.Error(t, err)
	require.IsType(t, &game.StringTooLong{}, err)
}

func TestInvalidColliderByte(t *testing.T) {
	// header: app_version=31, title/author/description empty, id_offset=597,
	// nchunks=1; then one chunk with only the has_collider flag (bit 5,
	// 0x0020) set and an out-of-range collider byte (only 0/2 are valid
	// per spec.md §4.5).
	raw := []byte{
		0x1F, 0x00, // app_version
		0x00,       // title
		0x00,       // author
		0x00,       // description
		0x55, 0x02, // id_offset
		0x01, 0x00, // nchunks = 1
		0x20, 0x00, // chunk flags: has_collider
		0x01, // collider byte (invalid)
	}
	_, err := game.ReadStream(bytes.NewReader(raw))
	require.Error(t, err)
	require.IsType(t, &game.InvalidCellData{}, err)
}
