package ast

import (
	"fmt"

	"github.com/mna/voxc/lang/token"
)

type (
	// Output is a destination binding for a Callback or an Invocation; a nil
	// Name denotes the skip sink (`_`).
	Output struct {
		Label *string
		Name  *string
		Pos   token.Pos
	}

	// Callback is a nested block attached to an invocation, e.g. the `{...}`
	// body passed to `if(...)`.
	Callback struct {
		Label   *string
		Outputs []Output
		Stmts   []Stmt
		LBrace  token.Pos
		RBrace  token.Pos
	}

	// InvocationStmt invokes a named prefab as a statement.
	InvocationStmt struct {
		NamePos   token.Pos
		Name      string
		Inputs    []Input
		Outputs   []Output
		Callbacks []Callback
		End       token.Pos
	}

	// AssignmentStmt binds a single expression's result to one or more
	// outputs. Per spec, lowering this statement is Unimplemented.
	AssignmentStmt struct {
		Outputs []Output
		Assign  token.Pos
		Value   Expr
	}

	// DefinitionStmt declares a user-defined primitive; its body is
	// collected but never expanded by the layout transpiler (a Non-goal).
	DefinitionStmt struct {
		DefPos    token.Pos
		Name      string
		Inputs    []string
		Callbacks []string
		Outputs   []string
		Stmts     []Stmt
		RBrace    token.Pos
	}

	// CommentStmt is a single `#`-introduced line comment.
	CommentStmt struct {
		Hash token.Pos
		Text string // trimmed, `#` and surrounding space removed
		Raw  string
	}
)

func (*InvocationStmt) stmt() {}
func (*AssignmentStmt) stmt() {}
func (*DefinitionStmt) stmt() {}
func (*CommentStmt) stmt()    {}

func (n *InvocationStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, n.Name+"(...)", map[string]int{
		"inputs": len(n.Inputs), "outputs": len(n.Outputs), "callbacks": len(n.Callbacks),
	})
}
func (n *InvocationStmt) Span() token.Span { return token.Span{Start: n.NamePos, End: n.End} }
func (n *InvocationStmt) Walk(v Visitor) {
	for _, in := range n.Inputs {
		Walk(v, in.Value)
	}
	for _, cb := range n.Callbacks {
		for _, s := range cb.Stmts {
			Walk(v, s)
		}
	}
}

func (n *AssignmentStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "assignment", map[string]int{"outputs": len(n.Outputs)})
}
func (n *AssignmentStmt) Span() token.Span {
	start := n.Assign
	if len(n.Outputs) > 0 {
		start = n.Outputs[0].Pos
	}
	return token.Span{Start: start, End: n.Value.Span().End}
}
func (n *AssignmentStmt) Walk(v Visitor) { Walk(v, n.Value) }

func (n *DefinitionStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "def "+n.Name, map[string]int{"stmts": len(n.Stmts)})
}
func (n *DefinitionStmt) Span() token.Span { return token.Span{Start: n.DefPos, End: n.RBrace} }
func (n *DefinitionStmt) Walk(v Visitor) {
	for _, s := range n.Stmts {
		Walk(v, s)
	}
}

func (n *CommentStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "# "+n.Text, nil) }
func (n *CommentStmt) Span() token.Span {
	return token.Span{Start: n.Hash, End: n.Hash + token.Pos(len(n.Raw))}
}
func (n *CommentStmt) Walk(Visitor) {}
