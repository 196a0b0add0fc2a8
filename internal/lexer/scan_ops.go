package lexer

import (
	"tangent/internal/token"
)

// scanOperator scans one operator or bracket symbol using maximal munch:
// three-byte forms are tried first, then two-byte, then single symbols.
// A byte that starts no known symbol is consumed as one rune and produces
// an Invalid token; the parser decides whether to complain.
func (lx *Lexer) scanOperator() token.Token {
	start := lx.cursor.Mark()
	kind := token.Invalid

	switch {
	case lx.try3(':', ':', '='):
		kind = token.ColonColonAssign
	case lx.try3('=', ':', '='):
		kind = token.EqColonEq
	case lx.try3('~', '>', '='):
		kind = token.TildeGtEq
	case lx.try3('~', '<', '='):
		kind = token.TildeLtEq
	case lx.try3('~', '!', '='):
		kind = token.TildeBangEq

	case lx.try2('=', '='):
		kind = token.EqEq
	case lx.try2('~', '='):
		kind = token.TildeEq
	case lx.try2('~', '<'):
		kind = token.TildeLt
	case lx.try2('~', '>'):
		kind = token.TildeGt
	case lx.try2('~', '~'):
		kind = token.TildeTilde
	case lx.try2('>', '='):
		kind = token.GtEq
	case lx.try2('<', '='):
		kind = token.LtEq
	case lx.try2('<', '>'):
		kind = token.LtGt
	case lx.try2('<', ':'):
		kind = token.LtColon
	case lx.try2('!', '='):
		kind = token.BangEq
	case lx.try2('.', '.'):
		kind = token.DotDot
	case lx.try2('+', '+'):
		kind = token.PlusPlus
	case lx.try2('-', '-'):
		kind = token.MinusMinus
	case lx.try2('-', '>'):
		kind = token.Arrow
	case lx.try2(':', '>'):
		kind = token.ColonGt
	case lx.try2(':', '='):
		kind = token.ColonAssign

	default:
		kind = lx.scanSingle()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

func (lx *Lexer) scanSingle() token.Kind {
	r, sz := lx.peekRune()
	if sz == 0 {
		return token.EOF
	}
	lx.bumpRune()
	switch r {
	case ':':
		return token.Colon
	case '.':
		return token.Dot
	case '°':
		return token.Degree
	case '_':
		return token.Underscore
	case '^':
		return token.Caret
	case '*':
		return token.Star
	case '/':
		return token.Slash
	case '+':
		return token.Plus
	case '-':
		return token.Minus
	case '!':
		return token.Bang
	case '>':
		return token.Gt
	case '<':
		return token.Lt
	case '&':
		return token.Amp
	case '%':
		return token.Percent
	case '=':
		return token.Assign
	case ';':
		return token.Semicolon
	case ',':
		return token.Comma
	case '(':
		return token.LParen
	case ')':
		return token.RParen
	case '[':
		return token.LBracket
	case ']':
		return token.RBracket
	case '{':
		return token.LBrace
	case '}':
		return token.RBrace
	case '|':
		return token.Bar
	case '~':
		return token.Invalid // lone '~' starts no symbol
	}
	return token.Invalid
}
