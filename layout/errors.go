package layout

import (
	"fmt"

	"github.com/mna/voxc/prefab"
)

// UnknownPrefab reports an invocation or call naming a primitive absent
// from the catalog.
type UnknownPrefab struct {
	Name string
}

func (e *UnknownPrefab) Error() string { return fmt.Sprintf("layout: unknown prefab %q", e.Name) }

// Collision reports two placed parts claiming the same lattice cell.
type Collision struct {
	Position prefab.Position
	Existing uint16
	New      uint16
}

func (e *Collision) Error() string {
	return fmt.Sprintf("layout: collision at %v: existing part %#x, new part %#x", e.Position, e.Existing, e.New)
}

// OutOfRangeOpt reports an expression that cannot be coerced into the
// option kind a prefab declares at that position.
type OutOfRangeOpt struct {
	Kind  prefab.OptKind
	Value string
}

func (e *OutOfRangeOpt) Error() string {
	return fmt.Sprintf("layout: value %s out of range for option kind %v", e.Value, e.Kind)
}

// StringInExpression reports a string literal used outside an option
// position, where it is not a legal value.
type StringInExpression struct {
	Text string
}

func (e *StringInExpression) Error() string {
	return fmt.Sprintf("layout: string literal %q is not a legal expression", e.Text)
}

// Unimplemented reports a construct the transpiler recognizes but does
// not lower: variable references, assignment statements, and option
// values of a kind the coercion table does not accept. A string used as a
// call input is reported as StringInExpression instead.
type Unimplemented struct {
	Reason string
}

func (e *Unimplemented) Error() string { return "layout: unimplemented: " + e.Reason }
