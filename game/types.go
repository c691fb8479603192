// Package game defines the binary game container: the Game/Chunk/Part/Opt/
// Wire data model, and its bit-exact little-endian codec (see write.go and
// read.go).
package game

// Game is the root of the binary container: metadata plus an ordered list
// of chunks, each occupying the logical ID `IDOffset + index`.
type Game struct {
	AppVersion  uint16
	Title       string
	Author      string
	Description string
	IDOffset    uint16
	Chunks      []Chunk
}

// DefaultAppVersion and DefaultIDOffset are the values a freshly-lowered
// Game carries absent any other instruction (spec.md §3).
const (
	DefaultAppVersion = 31
	DefaultIDOffset   = 597
)

// New returns a Game with the documented defaults and no chunks.
func New() *Game {
	return &Game{AppVersion: DefaultAppVersion, IDOffset: DefaultIDOffset}
}

// ChunkKind distinguishes a few chunk roles: a bare terrain/part chunk
// carries ChunkDefault, physics/script/level chunks set the others.
type ChunkKind uint8

const (
	ChunkDefault ChunkKind = iota
	ChunkPhysics
	ChunkScript
	ChunkLevel
)

// Collider overrides the default collision shape.
type Collider uint8

const (
	ColliderDefault Collider = iota
	ColliderPassthrough
	ColliderSphere
)

// Part declares that the owning chunk is the Offset-th sub-cell of a
// multi-cell prefab whose root part carries logical ID ID.
type Part struct {
	ID     uint16
	Offset [3]uint8
}

// Faces is a dense one-byte-per-voxel-per-face color array, present only
// on 1-cell terrain parts: [z][y][x][face].
type Faces [8][8][8][6]uint8

// Blocks is a dense grid of part IDs, indexed [z][y][x].
type Blocks struct {
	DZ, DY, DX int
	Cells      []uint16 // row-major z, y, x; len == DZ*DY*DX
}

// NewBlocks allocates a zeroed Blocks grid of the given dimensions.
func NewBlocks(dz, dy, dx int) *Blocks {
	return &Blocks{DZ: dz, DY: dy, DX: dx, Cells: make([]uint16, dz*dy*dx)}
}

func (b *Blocks) index(z, y, x int) int { return (z*b.DY+y)*b.DX + x }

// At returns the part ID at [z][y][x].
func (b *Blocks) At(z, y, x int) uint16 { return b.Cells[b.index(z, y, x)] }

// Set stores id at [z][y][x].
func (b *Blocks) Set(z, y, x int, id uint16) { b.Cells[b.index(z, y, x)] = id }

// Chunk is the serialization unit of the game binary. Kind and Collider
// follow spec.md's flag semantics literally: their presence bits are
// "non-default", derived from the field's value rather than tracked
// independently. Name has no such default and needs an explicit flag.
type Chunk struct {
	IsLocked bool
	Kind     ChunkKind
	Name     string
	HasName  bool
	Collider Collider

	Part   *Part
	Color  *uint8
	Faces  *Faces
	Blocks *Blocks
	Opts   []Opt
	Wires  []Wire
}

// Opt is a persisted option value bound to the block at Position, by its
// Index into the owning prefab's option list.
type Opt struct {
	Index    uint8
	Position [3]uint16
	Data     OptData
}

// Port is one endpoint of a Wire: a block position plus a voxel offset
// within (or adjacent to) that block.
type Port struct {
	Position [3]uint16
	Offset   [3]uint16
}

// Wire is a directed connection between two ports.
type Wire struct {
	From Port
	To   Port
}
