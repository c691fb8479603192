// Package prefab holds the static catalog of primitive block definitions
// the layout transpiler places on the lattice: each primitive's voxel
// footprint, typed value ports, callback ports, and option fields.
package prefab

// RawKind identifies the domain type carried by a value port or option.
type RawKind int8

const (
	Number RawKind = iota
	Vector
	Rotation
	Truth
	Object
	Constraint
)

// ValueKind is a value port's full type: either a raw value or a
// reference to a named variable slot of the given raw kind.
type ValueKind struct {
	Raw       bool
	Reference bool
	Kind      RawKind
}

func raw(k RawKind) ValueKind       { return ValueKind{Raw: true, Kind: k} }
func reference(k RawKind) ValueKind { return ValueKind{Reference: true, Kind: k} }

// ValuePort is one named, typed input or output of a Prefab.
type ValuePort struct {
	Name string
	Kind ValueKind
}

// OptKind identifies how an option field's bytes are interpreted.
type OptKind int8

const (
	Int8 OptKind = iota
	Int16
	Float32
	Vec
	Name
	Execute
	Input
	This
	Pointer
	ObjectOpt
	Output
	Unknown
)

// OptField is one named, typed option of a Prefab.
type OptField struct {
	Name string
	Kind OptKind
}

// Prefab is the immutable descriptor of a single catalog primitive.
type Prefab struct {
	Name string

	// Parts is the footprint, indexed [z][y][x]; each cell is either 0
	// (empty) or a part ID in 1..=0x250. dy is always 1 in this catalog.
	Parts [][][]uint16

	Inputs    []ValuePort
	Outputs   []ValuePort
	Callable  bool
	Callbacks []string
	Options   []OptField
}

// Dims reports the prefab's footprint as (dz, dy, dx).
func (p *Prefab) Dims() (dz, dy, dx int) {
	dz = len(p.Parts)
	if dz == 0 {
		return 0, 0, 0
	}
	dy = len(p.Parts[0])
	if dy == 0 {
		return dz, 0, 0
	}
	return dz, dy, len(p.Parts[0][0])
}
