package parser_test

import (
	"testing"

	"github.com/mna/voxc/lang/ast"
	"github.com/mna/voxc/lang/parser"
	"github.com/stretchr/testify/require"
)

func TestParseBareInvocation(t *testing.T) {
	// E2: a bare invocation with no leading outputs stays an Invocation.
	chunk, err := parser.Parse([]byte("set_score(1, 2)"))
	require.NoError(t, err)
	require.Len(t, chunk.Stmts, 1)
	inv, ok := chunk.Stmts[0].(*ast.InvocationStmt)
	require.True(t, ok, "want *ast.InvocationStmt, got %T", chunk.Stmts[0])
	require.Equal(t, "set_score", inv.Name)
	require.Len(t, inv.Inputs, 2)
	require.Empty(t, inv.Outputs)
}

func TestParseAssignmentFromBareCall(t *testing.T) {
	// E4: an output-prefixed call with no trailing callback block is an
	// Assignment whose value happens to be a Call, not an Invocation.
	chunk, err := parser.Parse([]byte("a = number()"))
	require.NoError(t, err)
	require.Len(t, chunk.Stmts, 1)
	asn, ok := chunk.Stmts[0].(*ast.AssignmentStmt)
	require.True(t, ok, "want *ast.AssignmentStmt, got %T", chunk.Stmts[0])
	require.Len(t, asn.Outputs, 1)
	require.Equal(t, "a", *asn.Outputs[0].Name)
	call, ok := asn.Value.(*ast.CallExpr)
	require.True(t, ok, "want *ast.CallExpr value, got %T", asn.Value)
	require.Equal(t, "number", call.Name)
	require.Empty(t, call.Inputs)
}

func TestParseAssignmentPromotedToInvocationWithCallback(t *testing.T) {
	// An output-prefixed call followed by a callback block promotes to an
	// Invocation carrying those outputs.
	chunk, err := parser.Parse([]byte("hit = raycast(1, 2) { }"))
	require.NoError(t, err)
	require.Len(t, chunk.Stmts, 1)
	inv, ok := chunk.Stmts[0].(*ast.InvocationStmt)
	require.True(t, ok, "want *ast.InvocationStmt, got %T", chunk.Stmts[0])
	require.Equal(t, "raycast", inv.Name)
	require.Len(t, inv.Outputs, 1)
	require.Equal(t, "hit", *inv.Outputs[0].Name)
	require.Len(t, inv.Callbacks, 1)
}

func TestParseAssignmentOfPlainExpression(t *testing.T) {
	chunk, err := parser.Parse([]byte("a = 1 + 2"))
	require.NoError(t, err)
	asn, ok := chunk.Stmts[0].(*ast.AssignmentStmt)
	require.True(t, ok)
	call, ok := asn.Value.(*ast.CallExpr)
	require.True(t, ok)
	require.Equal(t, "add", call.Name)
}

func TestParseOperatorLowering(t *testing.T) {
	// The multiplicative level lowers to multiply/divide, the source
	// compiler's own add/subtract mix-up deliberately not reproduced.
	cases := map[string]string{
		"1 * 2":  "multiply",
		"1 / 2":  "divide",
		"1 + 2":  "add",
		"1 - 2":  "subtract",
		"1 ** 2": "power",
		"1 < 2":  "less_than",
		"1 == 2": "equal",
	}
	for src, want := range cases {
		chunk, err := parser.Parse([]byte("a = " + src))
		require.NoError(t, err, src)
		asn, ok := chunk.Stmts[0].(*ast.AssignmentStmt)
		require.True(t, ok, src)
		call, ok := asn.Value.(*ast.CallExpr)
		require.True(t, ok, src)
		require.Equal(t, want, call.Name, src)
	}
}

func TestParsePrecedenceClimbing(t *testing.T) {
	// "1 + 2 * 3" should bind as add(1, multiply(2, 3)).
	chunk, err := parser.Parse([]byte("a = 1 + 2 * 3"))
	require.NoError(t, err)
	asn := chunk.Stmts[0].(*ast.AssignmentStmt)
	add := asn.Value.(*ast.CallExpr)
	require.Equal(t, "add", add.Name)
	require.IsType(t, &ast.IntegerExpr{}, add.Inputs[0].Value)
	mul, ok := add.Inputs[1].Value.(*ast.CallExpr)
	require.True(t, ok)
	require.Equal(t, "multiply", mul.Name)
}

func TestParsePowerRightAssociative(t *testing.T) {
	// "2 ** 3 ** 2" should bind as power(2, power(3, 2)).
	chunk, err := parser.Parse([]byte("a = 2 ** 3 ** 2"))
	require.NoError(t, err)
	asn := chunk.Stmts[0].(*ast.AssignmentStmt)
	outer := asn.Value.(*ast.CallExpr)
	require.Equal(t, "power", outer.Name)
	inner, ok := outer.Inputs[1].Value.(*ast.CallExpr)
	require.True(t, ok)
	require.Equal(t, "power", inner.Name)
}

func TestParseUnaryPrefixes(t *testing.T) {
	chunk, err := parser.Parse([]byte("a = not True"))
	require.NoError(t, err)
	asn := chunk.Stmts[0].(*ast.AssignmentStmt)
	call := asn.Value.(*ast.CallExpr)
	require.Equal(t, "not", call.Name)

	chunk, err = parser.Parse([]byte("a = -1"))
	require.NoError(t, err)
	asn = chunk.Stmts[0].(*ast.AssignmentStmt)
	call = asn.Value.(*ast.CallExpr)
	require.Equal(t, "negate", call.Name)
}

func TestParseLabeledInputs(t *testing.T) {
	chunk, err := parser.Parse([]byte("set_velocity(object: o, velocity: v, spin: s)"))
	require.NoError(t, err)
	inv := chunk.Stmts[0].(*ast.InvocationStmt)
	require.Len(t, inv.Inputs, 3)
	require.Equal(t, "object", *inv.Inputs[0].Label)
	require.Equal(t, "velocity", *inv.Inputs[1].Label)
}

func TestParseSkipOutput(t *testing.T) {
	chunk, err := parser.Parse([]byte("_ = number()"))
	require.NoError(t, err)
	asn := chunk.Stmts[0].(*ast.AssignmentStmt)
	require.Len(t, asn.Outputs, 1)
	require.Nil(t, asn.Outputs[0].Name)
}

func TestParseVariableModifiers(t *testing.T) {
	chunk, err := parser.Parse([]byte("a = $g + !s"))
	require.NoError(t, err)
	asn := chunk.Stmts[0].(*ast.AssignmentStmt)
	call := asn.Value.(*ast.CallExpr)
	left := call.Inputs[0].Value.(*ast.VariableExpr)
	require.Equal(t, "g", left.Name)
	right := call.Inputs[1].Value.(*ast.VariableExpr)
	require.Equal(t, "s", right.Name)
}

func TestParseCallbacksWithLabel(t *testing.T) {
	src := `if(True) {
		set_score(1, 0)
	} else: {
		set_score(0, 1)
	}`
	chunk, err := parser.Parse([]byte(src))
	require.NoError(t, err)
	inv := chunk.Stmts[0].(*ast.InvocationStmt)
	require.Equal(t, "if", inv.Name)
	require.Len(t, inv.Callbacks, 2)
	require.Equal(t, "else", *inv.Callbacks[1].Label)
}

func TestParseDefinition(t *testing.T) {
	src := `def double(x) on_done |y| {
		y = x * 2
	}`
	chunk, err := parser.Parse([]byte(src))
	require.NoError(t, err)
	def := chunk.Stmts[0].(*ast.DefinitionStmt)
	require.Equal(t, "double", def.Name)
	require.Equal(t, []string{"x"}, def.Inputs)
	require.Equal(t, []string{"on_done"}, def.Callbacks)
	require.Equal(t, []string{"y"}, def.Outputs)
	require.Len(t, def.Stmts, 1)
}

func TestParseComment(t *testing.T) {
	chunk, err := parser.Parse([]byte("# hello\nset_score(1, 0)"))
	require.NoError(t, err)
	require.Len(t, chunk.Stmts, 2)
	c, ok := chunk.Stmts[0].(*ast.CommentStmt)
	require.True(t, ok)
	require.Equal(t, "hello", c.Text)
}

func TestParseErrorUnbalancedParen(t *testing.T) {
	_, err := parser.Parse([]byte("set_score(1, 2"))
	require.Error(t, err)
	var perr *parser.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParseStringExpressionParsesButIsNotRejectedHere(t *testing.T) {
	// The parser accepts a string in expression position; rejecting it is
	// the layout transpiler's job (StringInExpression), not the parser's.
	chunk, err := parser.Parse([]byte(`a = "hello"`))
	require.NoError(t, err)
	asn := chunk.Stmts[0].(*ast.AssignmentStmt)
	str, ok := asn.Value.(*ast.StringExpr)
	require.True(t, ok)
	require.Equal(t, "hello", str.Value)
}
