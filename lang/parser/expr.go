package parser

import (
	"strconv"

	"github.com/mna/voxc/lang/ast"
	"github.com/mna/voxc/lang/token"
)

// binOpLevel gives each binary operator its precedence; operators absent
// from the map are not binary (NOT is prefix-only). Higher binds tighter.
var binOpLevel = map[token.Op]int{
	token.OR: 1, token.AND: 1,
	token.EQ: 2, token.NOTEQ: 2,
	token.LT: 3, token.LEQ: 3, token.GT: 3, token.GEQ: 3,
	token.ADD: 4, token.SUB: 4,
	token.MUL: 5, token.DIV: 5,
	token.POW: 6,
}

// opName lowers an operator token into the name carried by the resulting
// Call node. MUL and DIV deliberately lower to multiply/divide: the source
// compiler's own multiplicative level swapped these (MUL fell through to
// "add", DIV to "subtract"), a transcription bug fixed here — see
// DESIGN.md. ADD and SUB lower to the generic "add"/"subtract" names (as
// required by the parser's own testable property in spec.md §8); the
// layout transpiler resolves those to the catalog's typed add_numbers/
// subtract_numbers entries at placement time (layout.catalogAlias).
var opName = map[token.Op]string{
	token.OR: "or", token.AND: "and",
	token.EQ: "equal", token.NOTEQ: "not_equal",
	token.LT: "less_than", token.LEQ: "at_most", token.GT: "greater_than", token.GEQ: "at_least",
	token.ADD: "add", token.SUB: "subtract",
	token.MUL: "multiply", token.DIV: "divide",
	token.POW: "power",
}

func (p *parser) parseExpr() ast.Expr { return p.parseBinExpr(1) }

func (p *parser) parseBinExpr(minLevel int) ast.Expr {
	left := p.parseUnary()
	for {
		cur := p.cur()
		if cur.Kind != token.OP {
			break
		}
		level, ok := binOpLevel[cur.Op]
		if !ok || level < minLevel {
			break
		}
		p.advance()
		nextMin := level + 1
		if cur.Op == token.POW {
			nextMin = level // right-associative
		}
		right := p.parseBinExpr(nextMin)
		left = &ast.CallExpr{
			NamePos: left.Span().Start,
			Name:    opName[cur.Op],
			Inputs:  []ast.Input{{Value: left}, {Value: right}},
		}
	}
	return left
}

func (p *parser) parseUnary() ast.Expr {
	cur := p.cur()
	if cur.Kind == token.OP && cur.Op == token.NOT {
		p.advance()
		operand := p.parseUnary()
		return &ast.CallExpr{NamePos: cur.Span.Start, Name: "not", Inputs: []ast.Input{{Value: operand}}}
	}
	if cur.Kind == token.OP && cur.Op == token.SUB {
		p.advance()
		operand := p.parseUnary()
		return &ast.CallExpr{NamePos: cur.Span.Start, Name: "negate", Inputs: []ast.Input{{Value: operand}}}
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() ast.Expr {
	cur := p.cur()
	switch cur.Kind {
	case token.LPAREN:
		p.advance()
		inner := p.parseExpr()
		p.expect(token.RPAREN)
		return inner

	case token.SKIP:
		p.advance()
		return &ast.SkipExpr{Pos: cur.Span.Start}

	case token.FLOAT:
		p.advance()
		v, _ := strconv.ParseFloat(cur.Text, 64)
		return &ast.FloatExpr{ValuePos: cur.Span.Start, Text: cur.Text, Value: v}

	case token.INTEGER:
		p.advance()
		v, _ := strconv.ParseInt(cur.Text, 10, 32)
		return &ast.IntegerExpr{ValuePos: cur.Span.Start, Text: cur.Text, Value: int32(v)}

	case token.BOOLEAN:
		p.advance()
		return &ast.BooleanExpr{ValuePos: cur.Span.Start, Value: cur.Text == "True"}

	case token.STRING:
		p.advance()
		return &ast.StringExpr{ValuePos: cur.Span.Start, Raw: cur.Text, Value: unquote(cur.Text)}

	case token.DOLLAR:
		p.advance()
		name := p.expect(token.IDENT)
		return &ast.VariableExpr{ModPos: cur.Span.Start, Modifier: token.Global, NamePos: name.Span.Start, Name: name.Text}

	case token.BANG:
		p.advance()
		name := p.expect(token.IDENT)
		return &ast.VariableExpr{ModPos: cur.Span.Start, Modifier: token.Saved, NamePos: name.Span.Start, Name: name.Text}

	case token.IDENT:
		p.advance()
		if p.at(token.LPAREN) {
			return p.parseCallTail(cur)
		}
		return &ast.VariableExpr{NamePos: cur.Span.Start, Name: cur.Text}
	}

	p.errorf("an expression")
	panic("unreachable")
}

// parseCallTail parses the `'(' inputs0 ')'` suffix of a call whose name
// token (name) has already been consumed.
func (p *parser) parseCallTail(name token.Token) *ast.CallExpr {
	p.expect(token.LPAREN)
	inputs := p.parseInputs0()
	rparen := p.expect(token.RPAREN)
	return &ast.CallExpr{NamePos: name.Span.Start, Name: name.Text, Inputs: inputs, RParen: rparen.Span.Start}
}

// parseInputs0 parses a comma-separated, possibly empty list of Input.
func (p *parser) parseInputs0() []ast.Input {
	if p.at(token.RPAREN) {
		return nil
	}
	ins := []ast.Input{p.parseInput()}
	for p.at(token.COMMA) {
		p.advance()
		ins = append(ins, p.parseInput())
	}
	return ins
}

// parseInput parses a single `(name ':')? expr` input, backtracking past a
// tentatively-consumed label identifier when no ':' follows it (that
// identifier was in fact the start of the value expression itself).
func (p *parser) parseInput() ast.Input {
	if p.at(token.IDENT) {
		save := p.pos
		name := p.advance()
		if p.at(token.LABEL) {
			p.advance()
			return ast.Input{Label: &name.Text, Value: p.parseExpr()}
		}
		p.pos = save
	}
	return ast.Input{Value: p.parseExpr()}
}

// unquote strips the surrounding double quotes the scanner leaves in place;
// the source language has no escape sequences.
func unquote(raw string) string {
	if len(raw) >= 2 {
		return raw[1 : len(raw)-1]
	}
	return raw
}
