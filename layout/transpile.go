package layout

import (
	"fmt"

	"github.com/mna/voxc/game"
	"github.com/mna/voxc/lang/ast"
	"github.com/mna/voxc/prefab"
)

const commentWrap = 16

// Transpile lowers a parsed chunk into a Game holding a single "Level"
// chunk: every placed primitive's blocks, the wires connecting them, and
// their option records (spec.md §4.4).
func Transpile(chunk *ast.Chunk, cat *prefab.Catalog) (*game.Game, error) {
	ctx := newContext(cat)
	for _, s := range chunk.Stmts {
		if err := ctx.placeTop(s); err != nil {
			return nil, err
		}
	}
	return ctx.finish(), nil
}

func (c *Context) placeTop(s ast.Stmt) error {
	switch v := s.(type) {
	case *ast.InvocationStmt:
		return c.placeInvocation(v)
	case *ast.CommentStmt:
		return c.placeComment(v)
	case *ast.AssignmentStmt:
		return &Unimplemented{Reason: "assignment statement"}
	case *ast.DefinitionStmt:
		// Definitions are collected by the parser but never expanded; see
		// spec.md §1 Non-goals.
		return nil
	default:
		return &Unimplemented{Reason: fmt.Sprintf("statement type %T", s)}
	}
}

func (c *Context) placeInvocation(inv *ast.InvocationStmt) error {
	p, ok := c.cat.Lookup(catalogAlias(inv.Name))
	if !ok {
		return &UnknownPrefab{Name: inv.Name}
	}
	dz, _, _ := p.Dims()
	newZ := c.z - dz
	origin := prefab.Position{X: c.x, Y: 0, Z: newZ}

	if c.prev != nil {
		c.wires = append(c.wires, wire{
			From: *c.prev,
			To:   port{Block: origin, Offset: prefab.BeforeOffset(dz)},
		})
	}

	if err := c.placeParts(p, origin); err != nil {
		return err
	}
	if err := c.placeArgs(p, inv.Inputs, origin, dz); err != nil {
		return err
	}

	after := port{Block: origin, Offset: prefab.AfterOffset()}
	c.prev = &after
	if newZ < c.z {
		c.z = newZ
	}
	return nil
}

// placeArgs lowers inv's flat argument list against p's value ports
// (first) and option fields (after), per spec.md §4.4 steps 5-6.
func (c *Context) placeArgs(p *prefab.Prefab, inputs []ast.Input, origin prefab.Position, dz int) error {
	nv := len(p.Inputs)
	for i := 0; i < nv; i++ {
		if i >= len(inputs) {
			continue // missing input: the port is simply unconnected
		}
		anchor := port{Block: origin, Offset: prefab.InputOffset(dz, i)}
		if err := c.placeExpr(inputs[i].Value, anchor); err != nil {
			return err
		}
	}
	for j, of := range p.Options {
		idx := nv + j
		if idx >= len(inputs) {
			continue
		}
		val := inputs[idx].Value
		if _, skip := val.(*ast.SkipExpr); skip {
			continue
		}
		data, err := coerce(of.Kind, val)
		if err != nil {
			return err
		}
		c.opts = append(c.opts, opt{Index: uint8(j), Position: origin, Data: data})
	}
	return nil
}

// placeExpr lowers an expression used as a call argument, wiring its
// output (if any) into anchor.
func (c *Context) placeExpr(e ast.Expr, anchor port) error {
	switch v := e.(type) {
	case *ast.SkipExpr:
		c.z--
		return nil
	case *ast.FloatExpr:
		return c.placeCall(&ast.CallExpr{Name: "number", Inputs: []ast.Input{{Value: v}}}, anchor)
	case *ast.IntegerExpr:
		lit := &ast.FloatExpr{ValuePos: v.ValuePos, Value: float64(v.Value)}
		return c.placeCall(&ast.CallExpr{Name: "number", Inputs: []ast.Input{{Value: lit}}}, anchor)
	case *ast.BooleanExpr:
		name := "false"
		if v.Value {
			name = "true"
		}
		return c.placeCall(&ast.CallExpr{NamePos: v.ValuePos, Name: name}, anchor)
	case *ast.StringExpr:
		return &StringInExpression{Text: v.Value}
	case *ast.CallExpr:
		return c.placeCall(v, anchor)
	case *ast.VariableExpr:
		return &Unimplemented{Reason: "variable expression " + v.Name}
	default:
		return &Unimplemented{Reason: fmt.Sprintf("expression type %T", e)}
	}
}

func (c *Context) placeCall(call *ast.CallExpr, anchor port) error {
	p, ok := c.cat.Lookup(catalogAlias(call.Name))
	if !ok {
		return &UnknownPrefab{Name: call.Name}
	}
	dz, _, dx := p.Dims()

	savedZ := c.z
	c.x--
	c.x -= dx
	origin := prefab.Position{X: c.x, Y: 0, Z: savedZ - dz}

	c.wires = append(c.wires, wire{
		From: port{Block: origin, Offset: prefab.OutputOffset(dz, dx, 0)},
		To:   anchor,
	})

	if err := c.placeParts(p, origin); err != nil {
		return err
	}
	if err := c.placeArgs(p, call.Inputs, origin, dz); err != nil {
		return err
	}

	c.x += dx + 1
	if origin.Z < c.z {
		c.z = origin.Z
	}
	return nil
}

// placeComment renders a comment as a column of "comment" prefabs, one
// per 16-character wrap, offset by +1 in x from the main script column.
func (c *Context) placeComment(cmt *ast.CommentStmt) error {
	p, ok := c.cat.Lookup("comment")
	if !ok {
		return &UnknownPrefab{Name: "comment"}
	}
	dz, _, _ := p.Dims()
	for _, line := range wrapComment(cmt.Text, commentWrap) {
		newZ := c.z - dz
		origin := prefab.Position{X: c.x + 1, Y: 0, Z: newZ}
		if err := c.placeParts(p, origin); err != nil {
			return err
		}
		c.opts = append(c.opts, opt{Index: 0, Position: origin, Data: game.NameData(line)})
		if newZ < c.z {
			c.z = newZ
		}
	}
	return nil
}

func wrapComment(s string, width int) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}
	var lines []string
	for i := 0; i < len(runes); i += width {
		end := i + width
		if end > len(runes) {
			end = len(runes)
		}
		lines = append(lines, string(runes[i:end]))
	}
	return lines
}

// finish rebases every placed position into u16 lattice coordinates and
// assembles the single Level chunk (spec.md §4.4 Finalization).
func (c *Context) finish() *game.Game {
	g := game.New()
	color := uint8(0x1A)
	level := game.Chunk{
		Kind:    game.ChunkLevel,
		Name:    "New Level",
		HasName: true,
		Color:   &color,
	}

	if c.hasMin {
		dz := c.max.Z - c.min.Z + 1
		dy := c.max.Y - c.min.Y + 1
		dx := c.max.X - c.min.X + 1
		blocks := game.NewBlocks(dz, dy, dx)
		for _, cell := range c.cells {
			blocks.Set(cell.Position.Z-c.min.Z, cell.Position.Y-c.min.Y, cell.Position.X-c.min.X, cell.ID)
		}
		level.Blocks = blocks
	}

	for _, o := range c.opts {
		level.Opts = append(level.Opts, game.Opt{
			Index:    o.Index,
			Position: c.rebase(o.Position),
			Data:     o.Data,
		})
	}
	for _, w := range c.wires {
		level.Wires = append(level.Wires, game.Wire{
			From: game.Port{Position: c.rebase(w.From.Block), Offset: rebaseOffset(w.From.Offset)},
			To:   game.Port{Position: c.rebase(w.To.Block), Offset: rebaseOffset(w.To.Offset)},
		})
	}

	g.Chunks = []game.Chunk{level}
	return g
}

func (c *Context) rebase(p prefab.Position) [3]uint16 {
	return [3]uint16{uint16(p.X - c.min.X), uint16(p.Y - c.min.Y), uint16(p.Z - c.min.Z)}
}

func rebaseOffset(o prefab.Offset) [3]uint16 {
	return [3]uint16{uint16(o.X), uint16(o.Y), uint16(o.Z)}
}
