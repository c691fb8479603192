package parser

import (
	"strings"

	"github.com/mna/voxc/lang/ast"
	"github.com/mna/voxc/lang/token"
)

// parseStmt dispatches on the current token to one of the four statement
// forms.
//
// The grammar table describes Invocation as `[outputs '=']? name '('
// inputs ')' callbacks*`, tried before Assignment. Taken literally that
// would make "a = number()" parse as an Invocation with outputs=[a] and
// zero callbacks, since nothing after the empty callback list is
// required. That reading is not what this parser implements: a leading
// `outputs '='` prefix commits to Assignment unless the parsed value
// turns out to be a bare call immediately followed by a callback block,
// in which case it is promoted to an Invocation. Without a leading
// prefix, a name immediately followed by '(' is always an Invocation.
// This keeps "set_score(1, 2)" an Invocation and "a = number()" an
// Assignment whose value happens to be a Call.
func (p *parser) parseStmt() ast.Stmt {
	switch {
	case p.at(token.HASH):
		return p.parseCommentStmt()
	case p.at(token.DEF):
		return p.parseDefinitionStmt()
	}

	if outputs, ok := p.tryOutputsAssignPrefix(); ok {
		value := p.parseExpr()
		if call, isCall := value.(*ast.CallExpr); isCall && p.atCallbackStart() {
			callbacks := p.parseCallbacks0()
			return &ast.InvocationStmt{
				NamePos: call.NamePos, Name: call.Name, Inputs: call.Inputs,
				Outputs: outputs, Callbacks: callbacks, End: p.prevEnd(),
			}
		}
		return &ast.AssignmentStmt{Outputs: outputs, Value: value}
	}

	name := p.expect(token.IDENT)
	p.expect(token.LPAREN)
	inputs := p.parseInputs0()
	p.expect(token.RPAREN)
	callbacks := p.parseCallbacks0()
	return &ast.InvocationStmt{
		NamePos: name.Span.Start, Name: name.Text, Inputs: inputs,
		Callbacks: callbacks, End: p.prevEnd(),
	}
}

// prevEnd returns the end byte offset of the token just consumed, used to
// close off a statement's span.
func (p *parser) prevEnd() token.Pos {
	if p.pos == 0 {
		return p.toks[0].Span.Start
	}
	return p.toks[p.pos-1].Span.End
}

// tryOutputsAssignPrefix attempts to parse `outputs1 '='`, restoring the
// parser position and reporting ok=false if no '=' follows a parsed output
// list (the outputs were in fact the start of something else entirely,
// e.g. a bare invocation's name).
func (p *parser) tryOutputsAssignPrefix() (outs []ast.Output, ok bool) {
	save := p.pos
	out, ok := p.tryOutput()
	if !ok {
		return nil, false
	}
	outs = append(outs, out)
	for p.at(token.COMMA) {
		p.advance()
		out, ok := p.tryOutput()
		if !ok {
			p.pos = save
			return nil, false
		}
		outs = append(outs, out)
	}
	if !p.at(token.ASSIGN) {
		p.pos = save
		return nil, false
	}
	p.advance()
	return outs, true
}

// tryOutput parses a single `(name ':')? (name | '_')`, returning ok=false
// without consuming anything if the current token cannot start an Output.
func (p *parser) tryOutput() (ast.Output, bool) {
	switch {
	case p.at(token.SKIP):
		t := p.advance()
		return ast.Output{Pos: t.Span.Start}, true

	case p.at(token.IDENT):
		first := p.advance()
		if p.at(token.LABEL) {
			p.advance()
			if p.at(token.SKIP) {
				p.advance()
				return ast.Output{Label: &first.Text, Pos: first.Span.Start}, true
			}
			name := p.expect(token.IDENT)
			return ast.Output{Label: &first.Text, Name: &name.Text, Pos: first.Span.Start}, true
		}
		return ast.Output{Name: &first.Text, Pos: first.Span.Start}, true

	default:
		return ast.Output{}, false
	}
}

// atCallbackStart reports whether the current position begins a callback:
// `(name ':')? ('|' outputs1 '|')? '{'`.
func (p *parser) atCallbackStart() bool {
	if p.at(token.PIPE) || p.at(token.LBRACE) {
		return true
	}
	return p.at(token.IDENT) && p.peekKind(1) == token.LABEL
}

func (p *parser) parseCallbacks0() []ast.Callback {
	var cbs []ast.Callback
	for p.atCallbackStart() {
		cbs = append(cbs, p.parseCallback())
	}
	return cbs
}

func (p *parser) parseCallback() ast.Callback {
	var label *string
	if p.at(token.IDENT) && p.peekKind(1) == token.LABEL {
		t := p.advance()
		p.advance() // ':'
		label = &t.Text
	}

	var outputs []ast.Output
	if p.at(token.PIPE) {
		p.advance()
		outputs = p.parseOutputs1()
		p.expect(token.PIPE)
	}

	lbrace := p.expect(token.LBRACE)
	stmts := p.parseStmts0(token.RBRACE)
	rbrace := p.expect(token.RBRACE)
	return ast.Callback{Label: label, Outputs: outputs, Stmts: stmts, LBrace: lbrace.Span.Start, RBrace: rbrace.Span.Start}
}

// parseOutputs1 parses a committed (non-speculative) comma-separated list
// of at least one output, used once a construct is already known to
// require one (e.g. inside `| ... |`).
func (p *parser) parseOutputs1() []ast.Output {
	out, ok := p.tryOutput()
	if !ok {
		p.errorf("an output (name or `_`)")
	}
	outs := []ast.Output{out}
	for p.at(token.COMMA) {
		p.advance()
		out, ok := p.tryOutput()
		if !ok {
			p.errorf("an output (name or `_`)")
		}
		outs = append(outs, out)
	}
	return outs
}

func (p *parser) parseDefinitionStmt() ast.Stmt {
	defTok := p.expect(token.DEF)
	name := p.expect(token.IDENT)
	p.expect(token.LPAREN)
	inputs := p.parseNames0()
	p.expect(token.RPAREN)
	callbacks := p.parseNames0()

	var outputs []string
	if p.at(token.PIPE) {
		p.advance()
		outputs = p.parseNames1()
		p.expect(token.PIPE)
	}

	p.expect(token.LBRACE)
	stmts := p.parseStmts0(token.RBRACE)
	rbrace := p.expect(token.RBRACE)
	return &ast.DefinitionStmt{
		DefPos: defTok.Span.Start, Name: name.Text, Inputs: inputs,
		Callbacks: callbacks, Outputs: outputs, Stmts: stmts, RBrace: rbrace.Span.Start,
	}
}

// parseNames0 parses a comma-separated, possibly empty list of bare
// identifiers, stopping (without consuming) at the first non-identifier.
func (p *parser) parseNames0() []string {
	if !p.at(token.IDENT) {
		return nil
	}
	names := []string{p.advance().Text}
	for p.at(token.COMMA) {
		p.advance()
		names = append(names, p.expect(token.IDENT).Text)
	}
	return names
}

func (p *parser) parseNames1() []string {
	names := []string{p.expect(token.IDENT).Text}
	for p.at(token.COMMA) {
		p.advance()
		names = append(names, p.expect(token.IDENT).Text)
	}
	return names
}

func (p *parser) parseCommentStmt() ast.Stmt {
	t := p.advance()
	text := strings.TrimSpace(strings.TrimPrefix(t.Text, "#"))
	return &ast.CommentStmt{Hash: t.Span.Start, Text: text, Raw: t.Text}
}
