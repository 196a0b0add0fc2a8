package lexer

import (
	"strings"

	"tangent/internal/token"
)

// scanIdentRun scans one identifier run, folding out interior whitespace.
// The scan keeps extending the run as long as whitespace is followed by
// another identifier character, so "a b c" and "1 2" each produce a single
// token whose Text is the folded form ("abc", "12") and whose Span covers
// the raw range, gaps included. Trailing whitespace never joins the span:
// after each chunk the end position is marked and the cursor is reset to it
// when the lookahead fails.
func (lx *Lexer) scanIdentRun() token.Token {
	start := lx.cursor.Mark()
	var text strings.Builder
	for {
		for {
			r, sz := lx.peekRune()
			if sz == 0 || !isIdentRune(r) {
				break
			}
			text.WriteRune(r)
			lx.bumpRune()
		}
		lastGood := lx.cursor.Mark()
		for !lx.cursor.EOF() && isWhitespaceByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		r, sz := lx.peekRune()
		if sz == 0 || !isIdentRune(r) {
			lx.cursor.Reset(lastGood)
			break
		}
	}

	sp := lx.cursor.SpanFrom(start)
	txt := text.String()
	kind := token.Ident
	// '#' and '#1'..'#9' are special forms only when written contiguously.
	// "# 1" folds to "#1" but keeps a wider span, so it stays an ordinary
	// identifier; the same goes for "#12" and "foo#1" by shape.
	if int(sp.Len()) == len(txt) && isHashSpecial(txt) {
		kind = token.HashIdent
	}
	return token.Token{Kind: kind, Span: sp, Text: txt}
}

func isHashSpecial(s string) bool {
	if s == "#" {
		return true
	}
	return len(s) == 2 && s[0] == '#' && s[1] >= '1' && s[1] <= '9'
}
