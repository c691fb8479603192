// Some of the scanner package is adapted from the Go source code:
// https://cs.opensource.google/go/go/+/refs/tags/go1.22.1:src/go/scanner/scanner.go
//
// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner

import (
	"fmt"
	"unicode/utf8"

	"github.com/mna/voxc/lang/token"
)

// A LexError reports a byte span in the source that the scanner could not
// turn into a token.
type LexError struct {
	Span    token.Span
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Span.Start, e.Span.End, e.Message)
}

// Scanner tokenizes source text for the parser to consume.
type Scanner struct {
	src []byte
	cur rune // current character, -1 at end of file
	off int  // byte offset of cur
	roff int // byte offset just past cur
}

// New creates a Scanner over src.
func New(src []byte) *Scanner {
	s := &Scanner{src: src}
	s.advance()
	return s
}

func (s *Scanner) peek() byte {
	if s.roff < len(s.src) {
		return s.src[s.roff]
	}
	return 0
}

func (s *Scanner) advance() {
	if s.roff >= len(s.src) {
		s.off = len(s.src)
		s.cur = -1
		return
	}
	s.off = s.roff
	r, w := rune(s.src[s.roff]), 1
	if r >= utf8.RuneSelf {
		r, w = utf8.DecodeRune(s.src[s.roff:])
	}
	s.roff += w
	s.cur = r
}

func (s *Scanner) advanceIf(b byte) bool {
	if s.cur == rune(b) {
		s.advance()
		return true
	}
	return false
}

// Tokens scans the entire source and returns its tokens, terminated by a
// single EOF token. Any run of non-whitespace that no rule classifies,
// invalid UTF-8 included, becomes an Unknown token; the only error it
// returns is for an unterminated string literal.
func Tokens(src []byte) ([]token.Token, error) {
	s := New(src)
	var toks []token.Token
	for {
		tok, err := s.scan()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}

func (s *Scanner) skipWhitespace() {
	for s.cur == ' ' || s.cur == '\t' || s.cur == '\n' || s.cur == '\r' {
		s.advance()
	}
}

func (s *Scanner) scan() (token.Token, error) {
	s.skipWhitespace()
	start := s.off

	switch cur := s.cur; {
	case isDigit(cur) || (cur == '.' && isDigit(rune(s.peek()))):
		return s.number(start), nil

	case isIdentStart(cur):
		for isIdentStart(s.cur) || isDigit(s.cur) || s.cur == '_' {
			s.advance()
		}
		return s.classifyIdent(s.src[start:s.off], start), nil

	case cur == '"':
		return s.stringLit(start)
	}

	cur := s.cur
	switch cur {
	case -1:
		return token.Token{Kind: token.EOF, Span: span(start, s.off)}, nil

	case '#':
		s.advance()
		for s.cur != '\n' && s.cur != -1 {
			s.advance()
		}
		return token.Token{Kind: token.HASH, Text: string(s.src[start:s.off]), Span: span(start, s.off)}, nil

	case '(':
		s.advance()
		return simple(token.LPAREN, start, s.off), nil
	case ')':
		s.advance()
		return simple(token.RPAREN, start, s.off), nil
	case '{':
		s.advance()
		return simple(token.LBRACE, start, s.off), nil
	case '}':
		s.advance()
		return simple(token.RBRACE, start, s.off), nil
	case '|':
		s.advance()
		return simple(token.PIPE, start, s.off), nil
	case ',':
		s.advance()
		return simple(token.COMMA, start, s.off), nil
	case ':':
		s.advance()
		return simple(token.LABEL, start, s.off), nil
	case '$':
		s.advance()
		return simple(token.DOLLAR, start, s.off), nil
	case '&':
		s.advance()
		return simple(token.AMP, start, s.off), nil
	case '_':
		s.advance()
		return simple(token.SKIP, start, s.off), nil

	case '.':
		s.advance()
		return simple(token.DOT, start, s.off), nil

	case '+':
		s.advance()
		return op(token.ADD, start, s.off), nil
	case '-':
		s.advance()
		return op(token.SUB, start, s.off), nil
	case '*':
		s.advance()
		if s.advanceIf('*') {
			return op(token.POW, start, s.off), nil
		}
		return op(token.MUL, start, s.off), nil
	case '/':
		s.advance()
		return op(token.DIV, start, s.off), nil

	case '=':
		s.advance()
		if s.advanceIf('=') {
			return op(token.EQ, start, s.off), nil
		}
		return token.Token{Kind: token.ASSIGN, Text: "=", Span: span(start, s.off)}, nil

	case '!':
		s.advance()
		if s.advanceIf('=') {
			return op(token.NOTEQ, start, s.off), nil
		}
		return token.Token{Kind: token.BANG, Text: "!", Span: span(start, s.off)}, nil

	case '<':
		s.advance()
		if s.advanceIf('=') {
			return op(token.LEQ, start, s.off), nil
		}
		return op(token.LT, start, s.off), nil

	case '>':
		s.advance()
		if s.advanceIf('=') {
			return op(token.GEQ, start, s.off), nil
		}
		return op(token.GT, start, s.off), nil
	}

	// any other run of non-whitespace is Unknown, per §4.1; it never fails the
	// lexer, only the parser downstream.
	for s.cur != -1 && s.cur != ' ' && s.cur != '\t' && s.cur != '\n' && s.cur != '\r' {
		s.advance()
	}
	if s.off == start {
		// advance could not make progress; advance always moves past a non-EOF
		// rune (an invalid UTF-8 byte decodes as one RuneError byte), so this
		// is a defensive check.
		return token.Token{}, &LexError{Span: span(start, start+1), Message: "invalid source byte"}
	}
	return token.Token{Kind: token.UNKNOWN, Text: string(s.src[start:s.off]), Span: span(start, s.off)}, nil
}

func (s *Scanner) number(start int) token.Token {
	isFloat := false
	for isDigit(s.cur) {
		s.advance()
	}
	if s.cur == '.' {
		isFloat = true
		s.advance()
		for isDigit(s.cur) {
			s.advance()
		}
	}
	kind := token.INTEGER
	if isFloat {
		kind = token.FLOAT
	}
	return token.Token{Kind: kind, Text: string(s.src[start:s.off]), Span: span(start, s.off)}
}

func (s *Scanner) stringLit(start int) (token.Token, error) {
	s.advance() // opening quote
	for s.cur != '"' {
		if s.cur == -1 {
			return token.Token{}, &LexError{Span: span(start, s.off), Message: "unterminated string literal"}
		}
		s.advance()
	}
	s.advance() // closing quote
	return token.Token{Kind: token.STRING, Text: string(s.src[start:s.off]), Span: span(start, s.off)}, nil
}

var keywordOps = map[string]token.Op{
	"not": token.NOT,
	"and": token.AND,
	"or":  token.OR,
}

func (s *Scanner) classifyIdent(lit []byte, start int) token.Token {
	text := string(lit)
	sp := span(start, s.off)
	switch text {
	case "def":
		return token.Token{Kind: token.DEF, Text: text, Span: sp}
	case "True", "False":
		return token.Token{Kind: token.BOOLEAN, Text: text, Span: sp}
	}
	if o, ok := keywordOps[text]; ok {
		return token.Token{Kind: token.OP, Op: o, Text: text, Span: sp}
	}
	return token.Token{Kind: token.IDENT, Text: text, Span: sp}
}

func span(start, end int) token.Span {
	return token.Span{Start: token.Pos(start), End: token.Pos(end)}
}

func simple(k token.Kind, start, end int) token.Token {
	return token.Token{Kind: k, Text: k.String(), Span: span(start, end)}
}

func op(o token.Op, start, end int) token.Token {
	return token.Token{Kind: token.OP, Op: o, Text: o.String(), Span: span(start, end)}
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func isIdentStart(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}
