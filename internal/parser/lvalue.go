package parser

import (
	"tangent/internal/ast"
)

// isLvalue reports whether an already-parsed node is an admissible
// assignment target: a bare identifier, or a chain of '.' field access and
// '_' subscript steps whose leftmost base is a bare identifier. Assignments,
// sequences and every other operator result are not assignable.
func (p *Parser) isLvalue(id ast.ExprID) bool {
	expr := p.arenas.Exprs.Get(id)
	if expr == nil {
		return false
	}
	switch expr.Kind {
	case ast.ExprIdent:
		return true
	case ast.ExprBinary:
		data, ok := p.arenas.Exprs.Binary(id)
		if !ok {
			return false
		}
		if data.Op != ast.BinaryDot && data.Op != ast.BinarySubscript {
			return false
		}
		return p.isLvalue(data.Left)
	case ast.ExprUndefined, ast.ExprHash, ast.ExprNumber, ast.ExprString,
		ast.ExprUnary, ast.ExprCall, ast.ExprList, ast.ExprAbs,
		ast.ExprAssign, ast.ExprSeq:
		return false
	default:
		return false
	}
}
