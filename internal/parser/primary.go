package parser

import (
	"strconv"

	"tangent/internal/ast"
	"tangent/internal/diag"
	"tangent/internal/token"
)

// parsePrimary dispatches on the first token of an operand: leaves, the
// prefix '.', the four bracket grammars, and the error forms.
func (p *Parser) parsePrimary() ast.ExprID {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		id := p.arenas.Exprs.NewIdent(tok.Span, p.arenas.Intern(tok.Text))
		// An identifier followed by '(' with no operator in between is a
		// call; whitespace does not matter.
		if p.at(token.LParen) {
			return p.parseApplication(id)
		}
		return id

	case token.HashIdent:
		p.advance()
		var index uint8
		if len(tok.Text) == 2 {
			index = tok.Text[1] - '0'
		}
		return p.arenas.Exprs.NewHash(tok.Span, index)

	case token.StringLit:
		p.advance()
		return p.arenas.Exprs.NewString(tok.Span, p.arenas.Intern(tok.Text))

	case token.Dot:
		return p.parsePrefixDot()

	case token.LParen:
		return p.parseParen()
	case token.LBracket:
		return p.parseSquare()
	case token.LBrace:
		return p.parseBrace()

	case token.Bar:
		if p.barDepth > 0 {
			// The form is recognized as a flat open/close pair; a second
			// open before the close cannot be matched.
			p.report(diag.SynNestedAbs, diag.SevError, tok.Span,
				"'|...|' cannot nest inside another '|...|'")
			p.advance()
			return p.undefined(tok.Span)
		}
		return p.parseAbs()

	case token.Degree:
		p.advance()
		p.report(diag.SynBadPrefix, diag.SevError, tok.Span,
			"'°' is a postfix operator and needs a value before it")
		return p.undefined(tok.Span)

	case token.Invalid:
		// The scanner passed the character through; the rejection is ours.
		p.advance()
		p.report(diag.LexUnknownChar, diag.SevError, tok.Span,
			"unrecognized character "+strconv.Quote(tok.Text))
		return p.undefined(tok.Span)

	case token.EOF, token.Semicolon, token.Comma,
		token.RParen, token.RBracket, token.RBrace:
		// Missing operand; the delimiter stays for the caller.
		p.err(diag.SynExpectExpression, "expected expression")
		return p.undefined(p.diagSpan())

	default:
		p.advance()
		p.report(diag.SynBadPrefix, diag.SevError, tok.Span,
			"operator '"+tok.Text+"' is not allowed in prefix position")
		return p.undefined(tok.Span)
	}
}

// parsePrefixDot handles '.' with an absent left side: ".34" is a decimal
// fraction and a bare "." denotes zero.
func (p *Parser) parsePrefixDot() ast.ExprID {
	op := p.advance()
	if !p.atOperandStart() {
		return p.newNumber(op.Span, ".")
	}
	right := p.parseExpr(precAccess + 1)
	sp := op.Span.Cover(p.spanOf(right))
	if digits, ok := p.digitLeaf(right); ok {
		return p.newNumber(sp, "."+digits)
	}
	p.report(diag.SynBadPrefix, diag.SevError, op.Span,
		"'.' needs a value on its left for field access")
	return p.undefined(sp)
}
