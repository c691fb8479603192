// Package ast defines the types used to represent the parsed statement and
// expression tree: a lossy-by-design AST (whitespace and comment layout
// are not preserved beyond the text of Comment statements themselves).
package ast

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mna/voxc/lang/token"
)

// Node represents any node in the tree.
type Node interface {
	fmt.Formatter

	// Span reports the start and end byte offset of the node.
	Span() token.Span

	// Walk enters each child node to implement the Visitor pattern.
	Walk(v Visitor)
}

// Expr represents an expression: a value destined either for an
// invocation's input or for coercion into an option.
type Expr interface {
	Node
	expr()
}

// Stmt represents a top-level or nested statement.
type Stmt interface {
	Node
	stmt()
}

// Chunk is the root of a parsed source file: an ordered list of
// statements terminated by EOF.
type Chunk struct {
	Stmts []Stmt
	EOF   token.Pos
}

func (n *Chunk) Format(f fmt.State, verb rune) {
	format(f, verb, n, "chunk", map[string]int{"stmts": len(n.Stmts)})
}
func (n *Chunk) Span() token.Span {
	if len(n.Stmts) == 0 {
		return token.Span{Start: n.EOF, End: n.EOF}
	}
	return token.Span{Start: n.Stmts[0].Span().Start, End: n.EOF}
}
func (n *Chunk) Walk(v Visitor) {
	for _, s := range n.Stmts {
		Walk(v, s)
	}
}

func format(f fmt.State, verb rune, n Node, label string, counts map[string]int) {
	if verb != 'v' && verb != 's' {
		fmt.Fprintf(f, "%%!%c(%T)", verb, n)
		return
	}

	label = strings.ReplaceAll(label, "\n", "⏎")
	fmt.Fprint(f, label)
	if f.Flag('#') && len(counts) > 0 {
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprint(f, " {")
		for i, k := range keys {
			if i > 0 {
				fmt.Fprint(f, ", ")
			}
			fmt.Fprintf(f, "%s=%d", k, counts[k])
		}
		fmt.Fprint(f, "}")
	}
}
