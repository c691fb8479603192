package game

import (
	"encoding/binary"
	"io"
	"math"
)

// flags bit positions, spec.md §4.5.
const (
	flagHasWires = iota
	flagHasOpts
	flagHasBlocks
	flagHasFaces
	flagIsPart
	flagHasCollider
	flagIsLocked
	_ // reserved
	flagHasColor
	_ // reserved
	_ // reserved
	flagHasName
	flagHasKind
)

// Write serializes g to w in the bit-exact binary format described in
// spec.md §4.5. Two calls with the same Game produce identical bytes.
func Write(w io.Writer, g *Game) error {
	if err := writeU16(w, g.AppVersion); err != nil {
		return err
	}
	if err := writeString(w, "title", g.Title); err != nil {
		return err
	}
	if err := writeString(w, "author", g.Author); err != nil {
		return err
	}
	if err := writeString(w, "description", g.Description); err != nil {
		return err
	}
	if err := writeU16(w, g.IDOffset); err != nil {
		return err
	}
	if err := writeU16(w, uint16(len(g.Chunks))); err != nil {
		return err
	}
	for i := range g.Chunks {
		if err := writeChunk(w, &g.Chunks[i]); err != nil {
			return err
		}
	}
	return nil
}

func writeChunk(w io.Writer, c *Chunk) error {
	hasKind := c.Kind != ChunkDefault
	hasCollider := c.Collider != ColliderDefault

	var flags uint16
	setFlag := func(bit int, set bool) {
		if set {
			flags |= 1 << uint(bit)
		}
	}
	setFlag(flagHasWires, len(c.Wires) > 0)
	setFlag(flagHasOpts, len(c.Opts) > 0)
	setFlag(flagHasBlocks, c.Blocks != nil)
	setFlag(flagHasFaces, c.Faces != nil)
	setFlag(flagIsPart, c.Part != nil)
	setFlag(flagHasCollider, hasCollider)
	setFlag(flagIsLocked, c.IsLocked)
	setFlag(flagHasColor, c.Color != nil)
	setFlag(flagHasName, c.HasName)
	setFlag(flagHasKind, hasKind)

	if err := writeU16(w, flags); err != nil {
		return err
	}
	if hasKind {
		if err := writeU8(w, uint8(c.Kind)); err != nil {
			return err
		}
	}
	if c.HasName {
		if err := writeString(w, "name", c.Name); err != nil {
			return err
		}
	}
	if hasCollider {
		// on the wire, Passthrough is 0 and Sphere is 2
		code := uint8(2)
		if c.Collider == ColliderPassthrough {
			code = 0
		}
		if err := writeU8(w, code); err != nil {
			return err
		}
	}
	if c.Part != nil {
		if err := writeU16(w, c.Part.ID); err != nil {
			return err
		}
		if _, err := w.Write(c.Part.Offset[:]); err != nil {
			return err
		}
	}
	if c.Color != nil {
		if err := writeU8(w, *c.Color); err != nil {
			return err
		}
	}
	if c.Faces != nil {
		if err := writeFaces(w, c.Faces); err != nil {
			return err
		}
	}
	if c.Blocks != nil {
		if err := writeBlocks(w, c.Blocks); err != nil {
			return err
		}
	}
	if len(c.Opts) > 0 {
		if err := writeU16(w, uint16(len(c.Opts))); err != nil {
			return err
		}
		for _, o := range c.Opts {
			if err := writeOpt(w, o); err != nil {
				return err
			}
		}
	}
	if len(c.Wires) > 0 {
		if err := writeU16(w, uint16(len(c.Wires))); err != nil {
			return err
		}
		for _, wr := range c.Wires {
			if err := writeWire(w, wr); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeFaces(w io.Writer, f *Faces) error {
	for z := 0; z < 8; z++ {
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				if _, err := w.Write(f[z][y][x][:]); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func writeBlocks(w io.Writer, b *Blocks) error {
	if b.DZ < 0 || b.DY < 0 || b.DX < 0 {
		panic("game: negative blocks dimension")
	}
	if err := writeU16(w, uint16(b.DZ)); err != nil {
		return err
	}
	if err := writeU16(w, uint16(b.DY)); err != nil {
		return err
	}
	if err := writeU16(w, uint16(b.DX)); err != nil {
		return err
	}
	for _, id := range b.Cells {
		if err := writeU16(w, id); err != nil {
			return err
		}
	}
	return nil
}

func writeOpt(w io.Writer, o Opt) error {
	if err := writeU8(w, o.Index); err != nil {
		return err
	}
	if err := writeU8(w, uint8(o.Data.Kind())); err != nil {
		return err
	}
	for _, p := range o.Position {
		if err := writeU16(w, p); err != nil {
			return err
		}
	}
	return writeOptPayload(w, o.Data)
}

func writeOptPayload(w io.Writer, d OptData) error {
	switch v := d.(type) {
	case Int8Data:
		return writeU8(w, uint8(v))
	case Int16Data:
		return writeU16(w, uint16(v))
	case Float32Data:
		return writeF32(w, float32(v))
	case VecData:
		for _, c := range v {
			if err := writeF32(w, c); err != nil {
				return err
			}
		}
		return nil
	case NameData:
		return writeString(w, "opt value", string(v))
	case ExecuteData:
		return writeString(w, "opt value", string(v))
	case InputData:
		return writeString(w, "opt value", string(v))
	case ThisData:
		return writeString(w, "opt value", string(v))
	case PointerData:
		return writeString(w, "opt value", string(v))
	case ObjectData:
		return writeString(w, "opt value", string(v))
	case OutputData:
		return writeString(w, "opt value", string(v))
	case UnknownData:
		return writeString(w, "opt value", v.Value)
	default:
		panic("game: unknown OptData implementation")
	}
}

func writeWire(w io.Writer, wr Wire) error {
	for _, p := range [][3]uint16{wr.From.Position, wr.To.Position, wr.From.Offset, wr.To.Offset} {
		for _, v := range p {
			if err := writeU16(w, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeU8(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	return err
}

func writeU16(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func writeF32(w io.Writer, v float32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
	_, err := w.Write(buf[:])
	return err
}

func writeString(w io.Writer, field, s string) error {
	if len(s) >= 256 {
		return &StringTooLong{Field: field, Length: len(s)}
	}
	if err := writeU8(w, uint8(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}
