// Package parser turns a token stream into a statement tree. The grammar is
// a small precedence-climbing expression parser plus a handful of
// statement forms (comment, invocation, assignment, definition); see
// stmt.go for the one deliberate departure from the grammar table.
package parser

import (
	"errors"
	"fmt"

	"github.com/mna/voxc/lang/ast"
	"github.com/mna/voxc/lang/scanner"
	"github.com/mna/voxc/lang/token"
)

// ParseError reports a token that did not match what the grammar expected
// at that position. Parsing is fatal: the first ParseError stops the
// parse, there is no error-recovery or multi-error accumulation.
type ParseError struct {
	TokenIndex int
	Token      token.Token
	Expected   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("token %d (%s): expected %s", e.TokenIndex, e.Token, e.Expected)
}

// Parse scans and parses src into a Chunk.
func Parse(src []byte) (*ast.Chunk, error) {
	toks, err := scanner.Tokens(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	return p.parse()
}

type parser struct {
	toks  []token.Token
	pos   int
	fatal error // set just before panic(errPanicMode)
}

var errPanicMode = errors.New("parser: panic mode")

func (p *parser) parse() (chunk *ast.Chunk, err error) {
	defer func() {
		if r := recover(); r != nil {
			if r == errPanicMode {
				err = p.fatal
				return
			}
			panic(r)
		}
	}()
	chunk = p.parseChunk()
	return chunk, nil
}

func (p *parser) cur() token.Token { return p.toks[p.pos] }

// peekKind looks n tokens ahead of the current one without consuming
// anything; it never goes past the trailing EOF token.
func (p *parser) peekKind(n int) token.Kind {
	i := p.pos + n
	if i >= len(p.toks) {
		i = len(p.toks) - 1
	}
	return p.toks[i].Kind
}

func (p *parser) at(k token.Kind) bool { return p.cur().Kind == k }

func (p *parser) atOp(o token.Op) bool { return p.cur().Kind == token.OP && p.cur().Op == o }

func (p *parser) advance() token.Token {
	t := p.cur()
	if t.Kind != token.EOF {
		p.pos++
	}
	return t
}

// expect consumes the current token if it has kind k, otherwise it records
// a ParseError and unwinds to parse via errPanicMode.
func (p *parser) expect(k token.Kind) token.Token {
	if !p.at(k) {
		p.errorf(k.String())
	}
	return p.advance()
}

func (p *parser) errorf(expected string) {
	p.fatal = &ParseError{TokenIndex: p.pos, Token: p.cur(), Expected: expected}
	panic(errPanicMode)
}
