// Package layout lowers a parsed statement tree into a single-chunk
// game.Game: placed blocks, flow and value wires, and option records on
// a 3-D integer lattice (spec.md §4.4).
package layout

import (
	"github.com/dolthub/swiss"

	"github.com/mna/voxc/game"
	"github.com/mna/voxc/prefab"
)

// port anchors a wire endpoint to the block that owns it: Block is the
// owning block's lattice origin (pre-rebase), Offset is the pure,
// position-independent geometry term from prefab's port formulas.
type port struct {
	Block  prefab.Position
	Offset prefab.Offset
}

type wire struct{ From, To port }

type opt struct {
	Index    uint8
	Position prefab.Position
	Data     game.OptData
}

type placedCell struct {
	Position prefab.Position
	ID       uint16
}

// Context is the transpiler's mutable lowering state: a cursor walking
// the lattice plus the accumulated output. It is exclusively owned by
// one Transpile call and consumed at finalization.
type Context struct {
	cat      *prefab.Catalog
	occupied *swiss.Map[prefab.Position, uint16]
	cells    []placedCell
	wires    []wire
	opts     []opt

	x, z int
	prev *port // after-port of the previously placed top-level block

	hasMin   bool
	min, max prefab.Position
}

func newContext(cat *prefab.Catalog) *Context {
	return &Context{cat: cat, occupied: swiss.NewMap[prefab.Position, uint16](64)}
}

// place claims pos for id, failing if another part already occupies it.
func (c *Context) place(pos prefab.Position, id uint16) error {
	if existing, ok := c.occupied.Get(pos); ok {
		return &Collision{Position: pos, Existing: existing, New: id}
	}
	c.occupied.Put(pos, id)
	c.cells = append(c.cells, placedCell{Position: pos, ID: id})

	if !c.hasMin {
		c.min, c.max, c.hasMin = pos, pos, true
		return nil
	}
	if pos.X < c.min.X {
		c.min.X = pos.X
	}
	if pos.Y < c.min.Y {
		c.min.Y = pos.Y
	}
	if pos.Z < c.min.Z {
		c.min.Z = pos.Z
	}
	if pos.X > c.max.X {
		c.max.X = pos.X
	}
	if pos.Y > c.max.Y {
		c.max.Y = pos.Y
	}
	if pos.Z > c.max.Z {
		c.max.Z = pos.Z
	}
	return nil
}

// placeParts writes every non-zero cell of p's footprint at origin.
func (c *Context) placeParts(p *prefab.Prefab, origin prefab.Position) error {
	dz, dy, dx := p.Dims()
	for cz := 0; cz < dz; cz++ {
		for cy := 0; cy < dy; cy++ {
			for cx := 0; cx < dx; cx++ {
				id := p.Parts[cz][cy][cx]
				if id == 0 {
					continue
				}
				if err := c.place(origin.Add(prefab.Position{X: cx, Y: cy, Z: cz}), id); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
