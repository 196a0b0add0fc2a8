package token

import (
	"tangent/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsDigitRun reports whether the token is an identifier made of digits only.
// The parser's dot reduction folds such leaves into numeric literals.
func (t Token) IsDigitRun() bool {
	if t.Kind != Ident || t.Text == "" {
		return false
	}
	for i := 0; i < len(t.Text); i++ {
		if t.Text[i] < '0' || t.Text[i] > '9' {
			return false
		}
	}
	return true
}

// IsOperator reports whether the token is one of the fixed operator symbols.
func (t Token) IsOperator() bool {
	switch t.Kind {
	case Colon, Dot, Degree, Underscore, Caret, Star, Slash, Plus, Minus, Bang,
		EqEq, TildeEq, TildeLt, TildeGt, EqColonEq, GtEq, LtEq, TildeGtEq,
		TildeLtEq, Gt, Lt, LtGt, Amp, Percent, BangEq, TildeBangEq, DotDot,
		PlusPlus, MinusMinus, TildeTilde, ColonGt, LtColon,
		Assign, ColonAssign, ColonColonAssign, Arrow, Semicolon:
		return true
	default:
		return false
	}
}

// IsBracket reports whether the token is a bracket symbol, '|' included.
func (t Token) IsBracket() bool {
	switch t.Kind {
	case LParen, RParen, LBracket, RBracket, LBrace, RBrace, Bar:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token names something, '#' forms included.
func (t Token) IsIdent() bool { return t.Kind == Ident || t.Kind == HashIdent }
