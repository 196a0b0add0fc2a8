package parser

import (
	"tangent/internal/ast"
	"tangent/internal/diag"
	"tangent/internal/token"
)

// parseSequence parses the whole script into the root Seq node. Segments
// between ';' map one to one onto statements; an empty segment produces an
// Undefined placeholder and an all-trivia script an empty sequence.
func (p *Parser) parseSequence() ast.ExprID {
	start := p.lx.Peek().Span
	if p.at(token.EOF) {
		return p.arenas.Exprs.NewSeq(start, nil)
	}
	var stmts []ast.ExprID
	for {
		stmts = append(stmts, p.parseStatement())
		if p.at(token.Semicolon) {
			p.advance()
			if p.at(token.EOF) {
				break
			}
			continue
		}
		if p.at(token.EOF) {
			break
		}
	}
	return p.arenas.Exprs.NewSeq(start.Cover(p.lastSpan), stmts)
}

// parseStatement parses one ';'-delimited segment. Anything left over
// before the next separator degrades the whole statement to Undefined.
func (p *Parser) parseStatement() ast.ExprID {
	if p.at(token.Semicolon) {
		sp := p.lx.Peek().Span
		sp.End = sp.Start
		return p.undefined(sp)
	}
	expr := p.parseExpr(precAssign)
	if p.atOr(token.Semicolon, token.EOF) {
		return expr
	}
	tok := p.lx.Peek()
	if tok.Kind == token.Comma {
		p.report(diag.SynCommaOutside, diag.SevError, tok.Span,
			"',' has no meaning outside brackets")
	} else {
		p.report(diag.SynUnexpectedToken, diag.SevError, tok.Span,
			"unexpected '"+tok.Text+"'")
	}
	sp := p.spanOf(expr)
	for !p.atOr(token.Semicolon, token.EOF) {
		sp = sp.Cover(p.advance().Span)
	}
	return p.undefined(sp)
}
