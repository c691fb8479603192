package layout_test

import (
	"testing"

	"github.com/mna/voxc/lang/parser"
	"github.com/mna/voxc/layout"
	"github.com/mna/voxc/prefab"
	"github.com/stretchr/testify/require"
)

// E1: a lone comment lowers to one Level chunk holding one comment part
// and one Name opt with the comment's trimmed text.
func TestCommentLowersToSingleCommentBlock(t *testing.T) {
	chunk, err := parser.Parse([]byte("#hello world"))
	require.NoError(t, err)
	cat, _ := prefab.New()
	g, err := layout.Transpile(chunk, cat)
	require.NoError(t, err)
	require.Len(t, g.Chunks, 1)

	level := g.Chunks[0]
	require.NotNil(t, level.Blocks)
	nonZero := 0
	for _, id := range level.Blocks.Cells {
		if id != 0 {
			nonZero++
		}
	}
	require.Equal(t, 1, nonZero)
	require.Len(t, level.Opts, 1)
	require.Equal(t, uint8(0), level.Opts[0].Index)
}

// E2: set_score(1, 2) places the set_score prefab plus two synthesized
// "number" blocks for its literal arguments, wires them in, and leaves the
// lone Int8 "order" option unset (the call supplies only the two value
// inputs).
func TestBareInvocationWithLiteralArguments(t *testing.T) {
	chunk, err := parser.Parse([]byte("set_score(1, 2)"))
	require.NoError(t, err)
	cat, _ := prefab.New()
	g, err := layout.Transpile(chunk, cat)
	require.NoError(t, err)

	level := g.Chunks[0]
	require.NotNil(t, level.Blocks)
	nonZero := 0
	for _, id := range level.Blocks.Cells {
		if id != 0 {
			nonZero++
		}
	}
	require.Equal(t, 8, nonZero) // set_score (4) + number (2) + number (2)
	require.Len(t, level.Wires, 2)
	// set_score's own "order" option is unset (no third argument supplied);
	// each synthesized "number" block does carry its literal as a Float32
	// option, so two opts remain.
	require.Len(t, level.Opts, 2)
}

// E3: inspect_number(1 + 2) wires two number blocks into add_numbers, and
// add_numbers' output into inspect_number's sole input.
func TestArithmeticExpressionArgument(t *testing.T) {
	chunk, err := parser.Parse([]byte("inspect_number(1 + 2)"))
	require.NoError(t, err)
	cat, _ := prefab.New()
	g, err := layout.Transpile(chunk, cat)
	require.NoError(t, err)

	level := g.Chunks[0]
	require.Len(t, level.Wires, 3)
}

// E4: assignment lowering is Unimplemented, not silently successful.
func TestAssignmentIsUnimplemented(t *testing.T) {
	chunk, err := parser.Parse([]byte("a = number()"))
	require.NoError(t, err)
	cat, _ := prefab.New()
	_, err = layout.Transpile(chunk, cat)
	require.Error(t, err)
	require.IsType(t, &layout.Unimplemented{}, err)
}

func TestUnknownPrefabReported(t *testing.T) {
	chunk, err := parser.Parse([]byte("not_a_real_thing()"))
	require.NoError(t, err)
	cat, _ := prefab.New()
	_, err = layout.Transpile(chunk, cat)
	require.Error(t, err)
	require.IsType(t, &layout.UnknownPrefab{}, err)
}

func TestStringAsCallArgumentIsStringInExpression(t *testing.T) {
	chunk, err := parser.Parse([]byte(`inspect_number("x")`))
	require.NoError(t, err)
	cat, _ := prefab.New()
	_, err = layout.Transpile(chunk, cat)
	require.Error(t, err)
	require.IsType(t, &layout.StringInExpression{}, err)
}

func TestVariableExpressionIsUnimplemented(t *testing.T) {
	chunk, err := parser.Parse([]byte("inspect_number(x)"))
	require.NoError(t, err)
	cat, _ := prefab.New()
	_, err = layout.Transpile(chunk, cat)
	require.Error(t, err)
	require.IsType(t, &layout.Unimplemented{}, err)
}

// Placement non-overlap: two sequential invocations never collide.
func TestSequentialInvocationsDoNotCollide(t *testing.T) {
	chunk, err := parser.Parse([]byte("set_score(1, 2)\nset_score(3, 4)"))
	require.NoError(t, err)
	cat, _ := prefab.New()
	g, err := layout.Transpile(chunk, cat)
	require.NoError(t, err)

	level := g.Chunks[0]
	// a flow wire connects the two top-level invocations
	require.Len(t, level.Wires, 5) // 2 value wires each + 1 flow wire
}
