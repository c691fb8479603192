package game

import (
	"encoding/binary"
	"io"
	"math"
)

// Read deserializes a Game from r. It does not itself check for trailing
// bytes; ReadStream does, per spec.md §4.6, and is what callers normally
// want.
func Read(r io.Reader) (*Game, error) {
	g := &Game{}
	var err error
	if g.AppVersion, err = readU16(r); err != nil {
		return nil, err
	}
	if g.Title, err = readString(r); err != nil {
		return nil, err
	}
	if g.Author, err = readString(r); err != nil {
		return nil, err
	}
	if g.Description, err = readString(r); err != nil {
		return nil, err
	}
	if g.IDOffset, err = readU16(r); err != nil {
		return nil, err
	}
	n, err := readU16(r)
	if err != nil {
		return nil, err
	}
	g.Chunks = make([]Chunk, n)
	for i := range g.Chunks {
		if err := readChunk(r, &g.Chunks[i]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// ReadStream reads a Game from r, then verifies r is fully consumed
// (spec.md §4.6): reading one more byte must return io.EOF.
func ReadStream(r io.Reader) (*Game, error) {
	g, err := Read(r)
	if err != nil {
		return nil, err
	}
	var extra [1]byte
	if n, err := r.Read(extra[:]); n != 0 || err != io.EOF {
		return nil, &TrailingBytes{}
	}
	return g, nil
}

func readChunk(r io.Reader, c *Chunk) error {
	flags, err := readU16(r)
	if err != nil {
		return err
	}
	has := func(bit int) bool { return flags&(1<<uint(bit)) != 0 }

	if has(flagHasKind) {
		v, err := readU8(r)
		if err != nil {
			return err
		}
		if v > uint8(ChunkLevel) {
			return &InvalidCellData{Field: "chunk kind", Value: v}
		}
		c.Kind = ChunkKind(v)
	}
	if has(flagHasName) {
		c.HasName = true
		if c.Name, err = readString(r); err != nil {
			return err
		}
	}
	if has(flagHasCollider) {
		v, err := readU8(r)
		if err != nil {
			return err
		}
		switch v {
		case 0:
			c.Collider = ColliderPassthrough
		case 2:
			c.Collider = ColliderSphere
		default:
			return &InvalidCellData{Field: "collider", Value: v}
		}
	}
	if has(flagIsPart) {
		id, err := readU16(r)
		if err != nil {
			return err
		}
		var off [3]uint8
		if _, err := io.ReadFull(r, off[:]); err != nil {
			return err
		}
		c.Part = &Part{ID: id, Offset: off}
	}
	if has(flagHasColor) {
		v, err := readU8(r)
		if err != nil {
			return err
		}
		c.Color = &v
	}
	if has(flagHasFaces) {
		f, err := readFaces(r)
		if err != nil {
			return err
		}
		c.Faces = f
	}
	if has(flagHasBlocks) {
		b, err := readBlocks(r)
		if err != nil {
			return err
		}
		c.Blocks = b
	}
	if has(flagHasOpts) {
		n, err := readU16(r)
		if err != nil {
			return err
		}
		c.Opts = make([]Opt, n)
		for i := range c.Opts {
			if c.Opts[i], err = readOpt(r); err != nil {
				return err
			}
		}
	}
	if has(flagHasWires) {
		n, err := readU16(r)
		if err != nil {
			return err
		}
		c.Wires = make([]Wire, n)
		for i := range c.Wires {
			if c.Wires[i], err = readWire(r); err != nil {
				return err
			}
		}
	}
	c.IsLocked = has(flagIsLocked)
	return nil
}

func readFaces(r io.Reader) (*Faces, error) {
	var f Faces
	for z := 0; z < 8; z++ {
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				if _, err := io.ReadFull(r, f[z][y][x][:]); err != nil {
					return nil, err
				}
			}
		}
	}
	return &f, nil
}

func readBlocks(r io.Reader) (*Blocks, error) {
	dz, err := readU16(r)
	if err != nil {
		return nil, err
	}
	dy, err := readU16(r)
	if err != nil {
		return nil, err
	}
	dx, err := readU16(r)
	if err != nil {
		return nil, err
	}
	b := NewBlocks(int(dz), int(dy), int(dx))
	for i := range b.Cells {
		if b.Cells[i], err = readU16(r); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func readOpt(r io.Reader) (Opt, error) {
	var o Opt
	idx, err := readU8(r)
	if err != nil {
		return o, err
	}
	tag, err := readU8(r)
	if err != nil {
		return o, err
	}
	for i := range o.Position {
		if o.Position[i], err = readU16(r); err != nil {
			return o, err
		}
	}
	data, err := readOptPayload(r, tag)
	if err != nil {
		return o, err
	}
	o.Index, o.Data = idx, data
	return o, nil
}

func readOptPayload(r io.Reader, tag uint8) (OptData, error) {
	switch OptKind(tag) {
	case KindInt8:
		v, err := readU8(r)
		return Int8Data(v), err
	case KindInt16:
		v, err := readU16(r)
		return Int16Data(v), err
	case KindFloat32:
		v, err := readF32(r)
		return Float32Data(v), err
	case KindVec:
		var v VecData
		for i := range v {
			f, err := readF32(r)
			if err != nil {
				return nil, err
			}
			v[i] = f
		}
		return v, nil
	case KindName:
		s, err := readString(r)
		return NameData(s), err
	case KindExecute:
		s, err := readString(r)
		return ExecuteData(s), err
	case KindInput:
		s, err := readString(r)
		return InputData(s), err
	case KindThis:
		s, err := readString(r)
		return ThisData(s), err
	case KindPointer:
		s, err := readString(r)
		return PointerData(s), err
	case KindObject:
		s, err := readString(r)
		return ObjectData(s), err
	case KindOutput:
		s, err := readString(r)
		return OutputData(s), err
	default:
		s, err := readString(r)
		if err != nil {
			return nil, err
		}
		return UnknownData{Tag: tag, Value: s}, nil
	}
}

func readWire(r io.Reader) (Wire, error) {
	var w Wire
	fields := [][3]*uint16{
		{&w.From.Position[0], &w.From.Position[1], &w.From.Position[2]},
		{&w.To.Position[0], &w.To.Position[1], &w.To.Position[2]},
		{&w.From.Offset[0], &w.From.Offset[1], &w.From.Offset[2]},
		{&w.To.Offset[0], &w.To.Offset[1], &w.To.Offset[2]},
	}
	for _, f := range fields {
		for _, p := range f {
			v, err := readU16(r)
			if err != nil {
				return w, err
			}
			*p = v
		}
	}
	return w, nil
}

func readU8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func readU16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

func readF32(r io.Reader) (float32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[:])), nil
}

func readString(r io.Reader) (string, error) {
	n, err := readU8(r)
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
