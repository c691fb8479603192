package ast_test

import (
	"strings"
	"testing"

	"github.com/mna/voxc/lang/ast"
	"github.com/mna/voxc/lang/parser"
	"github.com/stretchr/testify/require"
)

func TestPrinterIndentsNestedNodes(t *testing.T) {
	chunk, err := parser.Parse([]byte("inspect_number(1 + 2)"))
	require.NoError(t, err)

	var buf strings.Builder
	p := &ast.Printer{Output: &buf}
	require.NoError(t, p.Print(chunk))

	out := buf.String()
	require.Contains(t, out, "inspect_number(...)")
	require.Contains(t, out, "add(...)")
	// line 0 is the chunk root; the invocation on line 1 nests one level
	// below it.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Greater(t, len(lines), 1)
	require.True(t, strings.HasPrefix(lines[1], ". "))
}

func TestPrinterWithSpansIncludesByteRange(t *testing.T) {
	chunk, err := parser.Parse([]byte("set_score(1, 2)"))
	require.NoError(t, err)

	var buf strings.Builder
	p := &ast.Printer{Output: &buf, WithSpans: true}
	require.NoError(t, p.Print(chunk))
	require.Contains(t, buf.String(), "[0:")
}
