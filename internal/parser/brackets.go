package parser

import (
	"strconv"

	"tangent/internal/ast"
	"tangent/internal/diag"
	"tangent/internal/source"
	"tangent/internal/token"
)

// parseElements parses comma-separated elements up to the closing token.
// The opening token is already consumed. A trailing comma appends an extra
// Undefined element. closeSp is the span of the closing token, or the
// recovery position when the bracket never closes.
func (p *Parser) parseElements(close token.Kind, uncode diag.Code, unmsg string) (elems []ast.ExprID, trailing bool, closeSp source.Span) {
	if p.at(close) {
		return nil, false, p.advance().Span
	}
	for {
		elems = append(elems, p.parseExpr(precAssign))
		switch {
		case p.at(token.Comma):
			comma := p.advance()
			if p.at(close) {
				elems = append(elems, p.undefined(comma.Span.ZeroideToEnd()))
				return elems, true, p.advance().Span
			}

		case p.at(close):
			return elems, trailing, p.advance().Span

		case p.atOr(token.EOF, token.Semicolon):
			// The statement boundary wins over the open bracket.
			p.err(uncode, unmsg)
			return elems, trailing, p.diagSpan()

		default:
			p.err(diag.SynExpectSeparator,
				"expected ',' or a closing bracket, got '"+p.lx.Peek().Text+"'")
			for !p.atOr(token.Comma, close, token.EOF, token.Semicolon) {
				p.advance()
			}
			if p.at(close) {
				return elems, trailing, p.advance().Span
			}
			if p.atOr(token.EOF, token.Semicolon) {
				return elems, trailing, p.diagSpan()
			}
			p.advance() // the comma
		}
	}
}

// parseApplication parses the argument group of a call. The callee
// identifier is already built; the next token is '('.
func (p *Parser) parseApplication(callee ast.ExprID) ast.ExprID {
	p.advance()
	args, trailing, closeSp := p.parseElements(token.RParen,
		diag.SynUnclosedParen, "missing ')' to close the argument list")
	sp := p.spanOf(callee).Cover(closeSp)
	return p.arenas.Exprs.NewCall(sp, callee, args, trailing)
}

// parseParen parses '(...)'. One element with no trailing comma is
// grouping and yields the inner value; anything else is a list literal.
func (p *Parser) parseParen() ast.ExprID {
	open := p.advance()
	elems, trailing, closeSp := p.parseElements(token.RParen,
		diag.SynUnclosedParen, "missing ')'")
	sp := open.Span.Cover(closeSp)
	if len(elems) == 1 && !trailing {
		return elems[0]
	}
	return p.arenas.Exprs.NewList(sp, ast.BracketParen, elems, trailing)
}

// parseSquare parses '[...]', always a list literal.
func (p *Parser) parseSquare() ast.ExprID {
	open := p.advance()
	elems, trailing, closeSp := p.parseElements(token.RBracket,
		diag.SynUnclosedBracket, "missing ']'")
	sp := open.Span.Cover(closeSp)
	return p.arenas.Exprs.NewList(sp, ast.BracketSquare, elems, trailing)
}

// parseBrace parses '{...}'. Exactly one element is a deprecated grouping
// alias of '(...)'; every other shape is reserved.
func (p *Parser) parseBrace() ast.ExprID {
	open := p.advance()
	elems, trailing, closeSp := p.parseElements(token.RBrace,
		diag.SynUnclosedBrace, "missing '}'")
	sp := open.Span.Cover(closeSp)
	if len(elems) == 1 && !trailing {
		return elems[0]
	}
	p.report(diag.SynBraceArity, diag.SevError, sp,
		"curly braces take exactly one element, got "+strconv.Itoa(len(elems)))
	return p.undefined(sp)
}

// parseAbs parses '|...|': one argument is absolute value, two is pairwise
// distance, anything else is reserved. The form never nests.
func (p *Parser) parseAbs() ast.ExprID {
	open := p.advance()
	p.barDepth++
	elems, _, closeSp := p.parseElements(token.Bar,
		diag.SynUnclosedAbs, "missing '|' to close the form")
	p.barDepth--
	sp := open.Span.Cover(closeSp)
	switch len(elems) {
	case 0:
		p.report(diag.SynAbsEmpty, diag.SevError, sp, "empty '|...|' is not allowed")
		return p.undefined(sp)
	case 1, 2:
		return p.arenas.Exprs.NewAbs(sp, elems)
	default:
		p.report(diag.SynAbsArity, diag.SevError, sp,
			"'|...|' takes one or two arguments, got "+strconv.Itoa(len(elems)))
		return p.undefined(sp)
	}
}
