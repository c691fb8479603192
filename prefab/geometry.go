package prefab

// Position is a lattice coordinate, (x, y, z), identifying which placed
// block owns a port.
type Position struct {
	X, Y, Z int
}

func (p Position) Add(q Position) Position { return Position{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }

// Offset is a voxel-local coordinate measured from a block's own lattice
// origin; it does not depend on where that block sits on the lattice.
// Cells are 8 voxels wide per axis, hence the octal arithmetic below.
type Offset struct {
	X, Y, Z int
}

// BeforeOffset is the prev-flow-in port offset of a block with depth dz.
func BeforeOffset(dz int) Offset { return Offset{X: 3, Y: 1, Z: 8*dz - 2} }

// AfterOffset is the next-flow-out port offset of any placed block.
func AfterOffset() Offset { return Offset{X: 3, Y: 1, Z: 0} }

// InputOffset is the i-th input port offset (0-based) of a block with
// depth dz.
func InputOffset(dz, i int) Offset { return Offset{X: 0, Y: 1, Z: 8*(dz-i) - 5} }

// OutputOffset is the i-th output port offset (0-based) of a block with
// width dx and depth dz.
func OutputOffset(dz, dx, i int) Offset { return Offset{X: 8*(dx-i) - 2, Y: 1, Z: 8*dz - 5} }
