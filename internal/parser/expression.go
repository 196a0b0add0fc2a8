package parser

import (
	"strconv"

	"tangent/internal/ast"
	"tangent/internal/diag"
	"tangent/internal/source"
	"tangent/internal/token"
)

// parseExpr parses one expression with the precedence-climbing strategy:
// parse a unary/primary term, then keep consuming operators at or above
// minPrec, recursing on the right one level tighter and left-folding.
func (p *Parser) parseExpr(minPrec int) ast.ExprID {
	left := p.parseUnary()
	for {
		tok := p.lx.Peek()
		if tok.Kind == token.Degree {
			if precAccess < minPrec {
				return left
			}
			op := p.advance()
			sp := p.spanOf(left).Cover(op.Span)
			left = p.arenas.Exprs.NewUnary(sp, ast.UnaryDegree, op.Span, left)
			continue
		}
		if tok.Kind == token.Bang {
			// '!' only exists in prefix position; seen here it trails an
			// operand, which the grammar forbids.
			p.report(diag.SynBadPostfix, diag.SevError, tok.Span,
				"'!' is a prefix operator and cannot follow a value")
			p.advance()
			left = p.undefined(p.spanOf(left).Cover(tok.Span))
			continue
		}

		prec, ok := binaryPrec(tok.Kind)
		if !ok || prec < minPrec {
			return left
		}

		if kind, isAssign := assignKind(tok.Kind); isAssign {
			left = p.parseAssign(left, kind)
			continue
		}
		if tok.Kind == token.Colon {
			op := p.advance()
			p.report(diag.SynReservedColon, diag.SevError, op.Span,
				"':' is reserved for user-defined data and not implemented")
			right := p.parseExpr(precReserved + 1)
			left = p.undefined(p.spanOf(left).Cover(p.spanOf(right)))
			continue
		}

		op := p.advance()
		if op.Kind == token.Dot {
			left = p.parseDotRest(left, op)
			continue
		}
		right := p.parseExpr(prec + 1)
		sp := p.spanOf(left).Cover(p.spanOf(right))
		left = p.arenas.Exprs.NewBinary(sp, binaryOp(op.Kind), op.Span, left, right)
	}
}

// parseUnary handles the prefix forms of '+', '-' and '!'. The operand is
// parsed one level above the additive group, so "-a^2" binds as "-(a^2)"
// while "-a+b" binds as "(-a)+b".
func (p *Parser) parseUnary() ast.ExprID {
	tok := p.lx.Peek()
	if op, ok := prefixOp(tok.Kind); ok {
		opTok := p.advance()
		operand := p.parseExpr(precAdditive + 1)
		sp := opTok.Span.Cover(p.spanOf(operand))
		return p.arenas.Exprs.NewUnary(sp, op, opTok.Span, operand)
	}
	return p.parsePrimary()
}

// parseAssign reduces one assignment-group operator. The already-parsed
// left operand goes through the lvalue check; an inadmissible target keeps
// the node's shape but flags it and reports the diagnostic.
func (p *Parser) parseAssign(left ast.ExprID, kind ast.AssignKind) ast.ExprID {
	op := p.advance()
	right := p.parseExpr(precAssign + 1)
	sp := p.spanOf(left).Cover(p.spanOf(right))
	invalid := !p.isLvalue(left)
	if invalid {
		p.report(diag.SynInvalidLvalue, diag.SevError, p.spanOf(left),
			"left side of '"+kind.String()+"' is not an assignable name")
	}
	return p.arenas.Exprs.NewAssign(sp, kind, op.Span, left, right, invalid)
}

// parseDotRest reduces one infix '.' whose left operand is already parsed.
// The decimal-or-field decision happens here, per reduction: when both
// sides are digit-run leaves (an absent side counts as an empty digit run)
// the pair collapses into a number, otherwise the node stays field access.
func (p *Parser) parseDotRest(left ast.ExprID, op token.Token) ast.ExprID {
	if !p.atOperandStart() {
		if digits, ok := p.digitLeaf(left); ok {
			sp := p.spanOf(left).Cover(op.Span)
			return p.newNumber(sp, digits+".")
		}
		p.err(diag.SynExpectExpression, "expected a field name after '.'")
		sp := p.spanOf(left).Cover(op.Span)
		return p.arenas.Exprs.NewBinary(sp, ast.BinaryDot, op.Span,
			left, p.undefined(op.Span.ZeroideToEnd()))
	}
	right := p.parseExpr(precAccess + 1)
	sp := p.spanOf(left).Cover(p.spanOf(right))
	ld, lok := p.digitLeaf(left)
	rd, rok := p.digitLeaf(right)
	if lok && rok {
		return p.newNumber(sp, ld+"."+rd)
	}
	return p.arenas.Exprs.NewBinary(sp, ast.BinaryDot, op.Span, left, right)
}

// atOperandStart reports whether the next token can begin an operand. The
// closing '|' of an open '|...|' form cannot.
func (p *Parser) atOperandStart() bool {
	switch p.lx.Peek().Kind {
	case token.Ident, token.HashIdent, token.StringLit,
		token.LParen, token.LBracket, token.LBrace,
		token.Dot, token.Plus, token.Minus, token.Bang, token.Invalid:
		return true
	case token.Bar:
		return p.barDepth == 0
	default:
		return false
	}
}

// newNumber allocates a decimal literal from its canonical spelling. A bare
// "." denotes zero.
func (p *Parser) newNumber(sp source.Span, raw string) ast.ExprID {
	var value float64
	if raw != "." {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			value = v
		}
	}
	return p.arenas.Exprs.NewNumber(sp, p.arenas.Intern(raw), value)
}
