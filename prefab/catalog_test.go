package prefab_test

import (
	"testing"

	"github.com/mna/voxc/prefab"
	"github.com/stretchr/testify/require"
)

func TestNewReportsKnownDuplicates(t *testing.T) {
	_, warnings := prefab.New()
	require.Len(t, warnings, 4, "rotation, inspect_object, ceiling, add_constraint")
}

func TestLookupFirstMatchWins(t *testing.T) {
	cat, _ := prefab.New()
	p, ok := cat.Lookup("rotation")
	require.True(t, ok)
	// the first "rotation" entry outputs Vector, not Rotation.
	require.Equal(t, "vector", p.Outputs[0].Name)
	require.Equal(t, prefab.Vector, p.Outputs[0].Kind.Kind)
}

func TestLookupUnknownName(t *testing.T) {
	cat, _ := prefab.New()
	_, ok := cat.Lookup("no_such_prefab")
	require.False(t, ok)
}

func TestSetScoreMatchesDocumentedShape(t *testing.T) {
	cat, _ := prefab.New()
	p, ok := cat.Lookup("set_score")
	require.True(t, ok)
	dz, dy, dx := p.Dims()
	require.Equal(t, 2, dz)
	require.Equal(t, 1, dy)
	require.Equal(t, 2, dx)
	require.Len(t, p.Inputs, 2)
	require.True(t, p.Callable)
}

func TestBooleanLiteralTargetsExist(t *testing.T) {
	cat, _ := prefab.New()
	for _, name := range []string{"true", "false", "loop", "collision"} {
		_, ok := cat.Lookup(name)
		require.True(t, ok, name)
	}
}

func TestEveryEntryHasAFootprint(t *testing.T) {
	for _, e := range prefab.Entries {
		dz, dy, dx := e.Dims()
		require.Greater(t, dz, 0, e.Name)
		require.Equal(t, 1, dy, e.Name)
		require.Greater(t, dx, 0, e.Name)
		for _, row := range e.Parts {
			require.Len(t, row, dy, e.Name)
			for _, cells := range row {
				require.Len(t, cells, dx, e.Name)
				for _, id := range cells {
					require.Greater(t, id, uint16(0), e.Name)
					require.LessOrEqual(t, id, uint16(0x250), e.Name)
				}
			}
		}
	}
}
