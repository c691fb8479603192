package game

// OptKind identifies which binary representation an OptData value
// serializes as (the tag byte on the wire, spec.md §6).
type OptKind uint8

//nolint:revive
const (
	KindInt8    OptKind = 0x01
	KindInt16   OptKind = 0x02
	KindFloat32 OptKind = 0x04
	KindVec     OptKind = 0x05
	KindName    OptKind = 0x06
	KindExecute OptKind = 0x07
	KindInput   OptKind = 0x08
	KindThis    OptKind = 0x09
	KindPointer OptKind = 0x0A
	KindObject  OptKind = 0x10
	KindOutput  OptKind = 0x11
)

// OptData is a tagged value whose tag determines its binary payload shape.
// Concrete types follow the ast package's sum-type-via-interface pattern.
type OptData interface {
	Kind() OptKind
}

type (
	Int8Data    uint8
	Int16Data   uint16
	Float32Data float32
	VecData     [3]float32
	NameData    string
	ExecuteData string
	InputData   string
	ThisData    string
	PointerData string
	ObjectData  string
	OutputData  string

	// UnknownData preserves an option kind tag this codec does not name
	// explicitly (spec.md §6, "any other" row): payload is always a string.
	UnknownData struct {
		Tag   uint8
		Value string
	}
)

func (Int8Data) Kind() OptKind    { return KindInt8 }
func (Int16Data) Kind() OptKind   { return KindInt16 }
func (Float32Data) Kind() OptKind { return KindFloat32 }
func (VecData) Kind() OptKind     { return KindVec }
func (NameData) Kind() OptKind    { return KindName }
func (ExecuteData) Kind() OptKind { return KindExecute }
func (InputData) Kind() OptKind   { return KindInput }
func (ThisData) Kind() OptKind    { return KindThis }
func (PointerData) Kind() OptKind { return KindPointer }
func (ObjectData) Kind() OptKind  { return KindObject }
func (OutputData) Kind() OptKind  { return KindOutput }
func (u UnknownData) Kind() OptKind { return OptKind(u.Tag) }
