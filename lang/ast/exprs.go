package ast

import (
	"fmt"

	"github.com/mna/voxc/lang/token"
)

type (
	// SkipExpr is the `_` expression: it occupies a position but contributes
	// no value and no block.
	SkipExpr struct {
		Pos token.Pos
	}

	// FloatExpr is a float literal.
	FloatExpr struct {
		ValuePos token.Pos
		Text     string
		Value    float64
	}

	// IntegerExpr is an integer literal.
	IntegerExpr struct {
		ValuePos token.Pos
		Text     string
		Value    int32
	}

	// BooleanExpr is a True/False literal.
	BooleanExpr struct {
		ValuePos token.Pos
		Value    bool
	}

	// StringExpr is a string literal; Value has the surrounding quotes
	// already stripped (the scanner keeps them, the parser removes them).
	StringExpr struct {
		ValuePos token.Pos
		Raw      string // as it appeared in source, quotes included
		Value    string
	}

	// Input is a positional or named argument to a Call.
	Input struct {
		Label *string
		Value Expr
	}

	// CallExpr invokes a named prefab (or operator-lowered primitive).
	CallExpr struct {
		NamePos token.Pos
		Name    string
		Inputs  []Input
		RParen  token.Pos // zero if this call was synthesized by operator lowering
	}

	// Modifier marks a Variable's prefix sigil.
	Modifier = token.Modifier

	// VariableExpr is a (possibly modified) name reference. Lowering a
	// VariableExpr is Unimplemented, matching the original transpiler.
	VariableExpr struct {
		ModPos   token.Pos // zero if no modifier present
		Modifier Modifier
		NamePos  token.Pos
		Name     string
	}
)

func (*SkipExpr) expr()     {}
func (*FloatExpr) expr()    {}
func (*IntegerExpr) expr()  {}
func (*BooleanExpr) expr()  {}
func (*StringExpr) expr()   {}
func (*CallExpr) expr()     {}
func (*VariableExpr) expr() {}

func (n *SkipExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "_", nil) }
func (n *SkipExpr) Span() token.Span              { return token.Span{Start: n.Pos, End: n.Pos + 1} }
func (n *SkipExpr) Walk(Visitor)                  {}

func (n *FloatExpr) Format(f fmt.State, verb rune) { format(f, verb, n, n.Text, nil) }
func (n *FloatExpr) Span() token.Span {
	return token.Span{Start: n.ValuePos, End: n.ValuePos + token.Pos(len(n.Text))}
}
func (n *FloatExpr) Walk(Visitor) {}

func (n *IntegerExpr) Format(f fmt.State, verb rune) { format(f, verb, n, n.Text, nil) }
func (n *IntegerExpr) Span() token.Span {
	return token.Span{Start: n.ValuePos, End: n.ValuePos + token.Pos(len(n.Text))}
}
func (n *IntegerExpr) Walk(Visitor) {}

func (n *BooleanExpr) Format(f fmt.State, verb rune) {
	lbl := "False"
	if n.Value {
		lbl = "True"
	}
	format(f, verb, n, lbl, nil)
}
func (n *BooleanExpr) Span() token.Span {
	l := 5
	if n.Value {
		l = 4
	}
	return token.Span{Start: n.ValuePos, End: n.ValuePos + token.Pos(l)}
}
func (n *BooleanExpr) Walk(Visitor) {}

func (n *StringExpr) Format(f fmt.State, verb rune) { format(f, verb, n, n.Raw, nil) }
func (n *StringExpr) Span() token.Span {
	return token.Span{Start: n.ValuePos, End: n.ValuePos + token.Pos(len(n.Raw))}
}
func (n *StringExpr) Walk(Visitor) {}

func (n *CallExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, n.Name+"(...)", map[string]int{"inputs": len(n.Inputs)})
}
func (n *CallExpr) Span() token.Span {
	end := n.RParen
	switch {
	case end != 0:
	case len(n.Inputs) > 0:
		end = n.Inputs[len(n.Inputs)-1].Value.Span().End
	default:
		end = n.NamePos + token.Pos(len(n.Name))
	}
	return token.Span{Start: n.NamePos, End: end}
}
func (n *CallExpr) Walk(v Visitor) {
	for _, in := range n.Inputs {
		Walk(v, in.Value)
	}
}

func (n *VariableExpr) Format(f fmt.State, verb rune) { format(f, verb, n, n.Name, nil) }
func (n *VariableExpr) Span() token.Span {
	start := n.NamePos
	if n.ModPos != 0 {
		start = n.ModPos
	}
	return token.Span{Start: start, End: n.NamePos + token.Pos(len(n.Name))}
}
func (n *VariableExpr) Walk(Visitor) {}
