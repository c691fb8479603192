package parser

import (
	"github.com/mna/voxc/lang/ast"
	"github.com/mna/voxc/lang/token"
)

func (p *parser) parseChunk() *ast.Chunk {
	stmts := p.parseStmts0(token.EOF)
	eof := p.expect(token.EOF)
	return &ast.Chunk{Stmts: stmts, EOF: eof.Span.Start}
}

// parseStmts0 parses statements until the current token has kind end
// (exclusive; end is not consumed here).
func (p *parser) parseStmts0(end token.Kind) []ast.Stmt {
	var stmts []ast.Stmt
	for !p.at(end) {
		stmts = append(stmts, p.parseStmt())
	}
	return stmts
}
