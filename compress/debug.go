package compress

import (
	"fmt"

	"github.com/mna/voxc/game"
	"gopkg.in/yaml.v3"
)

// DebugEncode renders g as YAML for human inspection: the CLI's "debug"
// encoding mode (spec.md §6, `--encoding debug`). This is a genuine third
// output format, not a test-only shim; it is write-only, there is no
// corresponding decoding mode.
func DebugEncode(g *game.Game) ([]byte, error) {
	return yaml.Marshal(toDebugGame(g))
}

type debugGame struct {
	AppVersion  uint16       `yaml:"app_version"`
	Title       string       `yaml:"title"`
	Author      string       `yaml:"author"`
	Description string       `yaml:"description"`
	IDOffset    uint16       `yaml:"id_offset"`
	Chunks      []debugChunk `yaml:"chunks"`
}

type debugChunk struct {
	IsLocked bool        `yaml:"is_locked"`
	Kind     string      `yaml:"kind,omitempty"`
	Name     string      `yaml:"name,omitempty"`
	Collider string      `yaml:"collider,omitempty"`
	Part     *debugPart  `yaml:"part,omitempty"`
	Color    *uint8      `yaml:"color,omitempty"`
	HasFaces bool        `yaml:"has_faces,omitempty"`
	Blocks   *debugBlocks `yaml:"blocks,omitempty"`
	Opts     []debugOpt  `yaml:"opts,omitempty"`
	Wires    []game.Wire `yaml:"wires,omitempty"`
}

type debugPart struct {
	ID     uint16  `yaml:"id"`
	Offset [3]uint8 `yaml:"offset"`
}

type debugBlocks struct {
	DZ    int      `yaml:"dz"`
	DY    int      `yaml:"dy"`
	DX    int      `yaml:"dx"`
	Cells []uint16 `yaml:"cells"`
}

type debugOpt struct {
	Index    uint8     `yaml:"index"`
	Position [3]uint16 `yaml:"position"`
	Kind     string    `yaml:"kind"`
	Value    string    `yaml:"value"`
}

var chunkKindNames = map[game.ChunkKind]string{
	game.ChunkDefault: "default", game.ChunkPhysics: "physics",
	game.ChunkScript: "script", game.ChunkLevel: "level",
}

var colliderNames = map[game.Collider]string{
	game.ColliderDefault: "", game.ColliderPassthrough: "passthrough", game.ColliderSphere: "sphere",
}

func toDebugGame(g *game.Game) *debugGame {
	dg := &debugGame{
		AppVersion: g.AppVersion, Title: g.Title, Author: g.Author,
		Description: g.Description, IDOffset: g.IDOffset,
		Chunks: make([]debugChunk, len(g.Chunks)),
	}
	for i, c := range g.Chunks {
		dc := debugChunk{
			IsLocked: c.IsLocked,
			Kind:     chunkKindNames[c.Kind],
			Collider: colliderNames[c.Collider],
			Color:    c.Color,
			HasFaces: c.Faces != nil,
			Wires:    c.Wires,
		}
		if c.HasName {
			dc.Name = c.Name
		}
		if c.Part != nil {
			dc.Part = &debugPart{ID: c.Part.ID, Offset: c.Part.Offset}
		}
		if c.Blocks != nil {
			dc.Blocks = &debugBlocks{DZ: c.Blocks.DZ, DY: c.Blocks.DY, DX: c.Blocks.DX, Cells: c.Blocks.Cells}
		}
		for _, o := range c.Opts {
			dc.Opts = append(dc.Opts, debugOpt{Index: o.Index, Position: o.Position, Kind: fmt.Sprintf("0x%02X", uint8(o.Data.Kind())), Value: formatOptValue(o.Data)})
		}
		dg.Chunks[i] = dc
	}
	return dg
}

func formatOptValue(d game.OptData) string {
	switch v := d.(type) {
	case game.Int8Data:
		return fmt.Sprintf("%d", uint8(v))
	case game.Int16Data:
		return fmt.Sprintf("%d", uint16(v))
	case game.Float32Data:
		return fmt.Sprintf("%g", float32(v))
	case game.VecData:
		return fmt.Sprintf("%g,%g,%g", v[0], v[1], v[2])
	case game.UnknownData:
		return v.Value
	default:
		return fmt.Sprintf("%v", d)
	}
}
