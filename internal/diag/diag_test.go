package diag_test

import (
	"testing"

	"github.com/mna/voxc/internal/diag"
	"github.com/mna/voxc/lang/token"
	"github.com/stretchr/testify/require"
)

func TestRenderPointsAtSpan(t *testing.T) {
	src := "set_score(1, 2)\nbogus()"
	out := diag.Render(src, token.Span{Start: 16, End: 23}, diag.Error, "unknown prefab")

	require.Contains(t, out, "error: unknown prefab")
	require.Contains(t, out, "line 2, col 1")
	require.Contains(t, out, "bogus()")
	require.Contains(t, out, "^^^^^^^")
}

func TestRenderWarnLevel(t *testing.T) {
	out := diag.Render("x", token.Span{Start: 0, End: 1}, diag.Warn, "unused")
	require.Contains(t, out, "warning: unused")
}
