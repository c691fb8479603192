package scanner_test

import (
	"testing"

	"github.com/mna/voxc/lang/scanner"
	"github.com/mna/voxc/lang/token"
	"github.com/stretchr/testify/require"
)

func TestTokensWhitespaceOnly(t *testing.T) {
	for _, src := range []string{"", " ", "\n\t \r\n", "   \n  "} {
		toks, err := scanner.Tokens([]byte(src))
		require.NoError(t, err)
		require.Equal(t, []token.Token{{Kind: token.EOF, Span: token.Span{Start: token.Pos(len(src)), End: token.Pos(len(src))}}}, toks)
	}
}

func TestTokensKinds(t *testing.T) {
	cases := []struct {
		src  string
		want []token.Kind
	}{
		{"foo", []token.Kind{token.IDENT, token.EOF}},
		{"123", []token.Kind{token.INTEGER, token.EOF}},
		{"1.5", []token.Kind{token.FLOAT, token.EOF}},
		{".5", []token.Kind{token.FLOAT, token.EOF}},
		{"5.", []token.Kind{token.FLOAT, token.EOF}},
		{".", []token.Kind{token.DOT, token.EOF}},
		{`"hi there"`, []token.Kind{token.STRING, token.EOF}},
		{"True False", []token.Kind{token.BOOLEAN, token.BOOLEAN, token.EOF}},
		{"def", []token.Kind{token.DEF, token.EOF}},
		{"not and or", []token.Kind{token.OP, token.OP, token.OP, token.EOF}},
		{"( ) { } | , : _ $ &", []token.Kind{
			token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.PIPE,
			token.COMMA, token.LABEL, token.SKIP, token.DOLLAR, token.AMP, token.EOF,
		}},
		{"+ - * ** / = == < <= > >= ! !=", []token.Kind{
			token.OP, token.OP, token.OP, token.OP, token.OP, token.ASSIGN, token.OP,
			token.OP, token.OP, token.OP, token.OP, token.BANG, token.OP, token.EOF,
		}},
		{"#a comment\nfoo", []token.Kind{token.HASH, token.IDENT, token.EOF}},
		{"@@@", []token.Kind{token.UNKNOWN, token.EOF}},
	}

	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			toks, err := scanner.Tokens([]byte(tc.src))
			require.NoError(t, err)
			require.Len(t, toks, len(tc.want))
			for i, k := range tc.want {
				require.Equalf(t, k, toks[i].Kind, "token %d", i)
			}
		})
	}
}

func TestTokensOps(t *testing.T) {
	toks, err := scanner.Tokens([]byte("+ - * ** / == < <= > >= !="))
	require.NoError(t, err)
	want := []token.Op{
		token.ADD, token.SUB, token.MUL, token.POW, token.DIV, token.EQ,
		token.LT, token.LEQ, token.GT, token.GEQ, token.NOTEQ,
	}
	require.Len(t, toks, len(want)+1)
	for i, o := range want {
		require.Equalf(t, o, toks[i].Op, "token %d", i)
	}
}

func TestTokensSpanCoverage(t *testing.T) {
	src := "foo(1, 2) # trailing\n"
	toks, err := scanner.Tokens([]byte(src))
	require.NoError(t, err)
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			continue
		}
		require.Equal(t, tok.Text, src[tok.Span.Start:tok.Span.End])
	}
}
