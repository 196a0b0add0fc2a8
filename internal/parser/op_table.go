package parser

import (
	"tangent/internal/ast"
	"tangent/internal/token"
)

// Infix precedence levels, tightest binding last. Every level is
// left-associative. Comma and ';' sit below the assignment group and are
// handled structurally (bracket elements, statement sequence) rather than
// by the climbing loop.
const (
	precAssign         = 1 // = := ::= ->
	precSeqOp          = 2 // ++ -- ~~ :> <:
	precCollect        = 3 // & % != ~!= ..
	precCompare        = 4 // == ~= ~< ~> =:= >= <= ~>= ~<= > < <>
	precAdditive       = 5 // + - (prefix forms and '!' share this level)
	precMultiplicative = 6 // * /
	precAttach         = 7 // _ ^
	precAccess         = 8 // . and postfix °
	precReserved       = 9 // : (reserved, rejected with a fixed diagnostic)
)

// binaryPrec returns the infix precedence level of a token kind. ok is
// false for tokens that never appear in infix position; those end the
// climbing loop.
func binaryPrec(kind token.Kind) (int, bool) {
	switch kind {
	case token.Colon:
		return precReserved, true
	case token.Dot:
		return precAccess, true
	case token.Underscore, token.Caret:
		return precAttach, true
	case token.Star, token.Slash:
		return precMultiplicative, true
	case token.Plus, token.Minus:
		return precAdditive, true
	case token.EqEq, token.TildeEq, token.TildeLt, token.TildeGt,
		token.EqColonEq, token.GtEq, token.LtEq, token.TildeGtEq,
		token.TildeLtEq, token.Gt, token.Lt, token.LtGt:
		return precCompare, true
	case token.Amp, token.Percent, token.BangEq, token.TildeBangEq, token.DotDot:
		return precCollect, true
	case token.PlusPlus, token.MinusMinus, token.TildeTilde,
		token.ColonGt, token.LtColon:
		return precSeqOp, true
	case token.Assign, token.ColonAssign, token.ColonColonAssign, token.Arrow:
		return precAssign, true
	default:
		return -1, false
	}
}

// binaryOp maps an infix token to its AST operator.
func binaryOp(kind token.Kind) ast.BinaryOp {
	switch kind {
	case token.Dot:
		return ast.BinaryDot
	case token.Underscore:
		return ast.BinarySubscript
	case token.Caret:
		return ast.BinaryPow
	case token.Star:
		return ast.BinaryMul
	case token.Slash:
		return ast.BinaryDiv
	case token.Plus:
		return ast.BinaryAdd
	case token.Minus:
		return ast.BinarySub
	case token.EqEq:
		return ast.BinaryEq
	case token.TildeEq:
		return ast.BinaryApproxEq
	case token.TildeLt:
		return ast.BinaryApproxLt
	case token.TildeGt:
		return ast.BinaryApproxGt
	case token.EqColonEq:
		return ast.BinaryDefEq
	case token.GtEq:
		return ast.BinaryGtEq
	case token.LtEq:
		return ast.BinaryLtEq
	case token.TildeGtEq:
		return ast.BinaryApproxGe
	case token.TildeLtEq:
		return ast.BinaryApproxLe
	case token.Gt:
		return ast.BinaryGt
	case token.Lt:
		return ast.BinaryLt
	case token.LtGt:
		return ast.BinaryNeq
	case token.Amp:
		return ast.BinaryAmp
	case token.Percent:
		return ast.BinaryPercent
	case token.BangEq:
		return ast.BinaryBangEq
	case token.TildeBangEq:
		return ast.BinaryApproxNeq
	case token.DotDot:
		return ast.BinaryRange
	case token.PlusPlus:
		return ast.BinaryConcat
	case token.MinusMinus:
		return ast.BinaryDifference
	case token.TildeTilde:
		return ast.BinaryTildes
	case token.ColonGt:
		return ast.BinaryColonGt
	case token.LtColon:
		return ast.BinaryLtColon
	default:
		// Unreachable while binaryPrec and this table agree.
		return ast.BinaryAdd
	}
}

// assignKind maps an assignment-group token to its AST kind.
func assignKind(kind token.Kind) (ast.AssignKind, bool) {
	switch kind {
	case token.Assign:
		return ast.AssignPlain, true
	case token.ColonAssign:
		return ast.AssignColon, true
	case token.ColonColonAssign:
		return ast.AssignColonColon, true
	case token.Arrow:
		return ast.AssignArrow, true
	default:
		return ast.AssignPlain, false
	}
}

// prefixOp maps a token to its prefix operator, if it has one.
func prefixOp(kind token.Kind) (ast.UnaryOp, bool) {
	switch kind {
	case token.Plus:
		return ast.UnaryPlus, true
	case token.Minus:
		return ast.UnaryMinus, true
	case token.Bang:
		return ast.UnaryNot, true
	default:
		return ast.UnaryPlus, false
	}
}
