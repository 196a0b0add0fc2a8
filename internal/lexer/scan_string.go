package lexer

import (
	"tangent/internal/diag"
	"tangent/internal/token"
)

// scanString scans a verbatim string literal. There are no escape sequences:
// every byte between the quotes, newlines included, belongs to the literal.
// An unterminated literal runs to EOF and reports LexUnterminatedString; the
// token is still produced so the parser can keep going.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote

	contentStart := lx.cursor.Off
	terminated := false
	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == '"' {
			terminated = true
			break
		}
		lx.cursor.Bump()
	}
	contentEnd := lx.cursor.Off
	if terminated {
		lx.cursor.Bump() // closing quote
	}

	sp := lx.cursor.SpanFrom(start)
	if !terminated {
		lx.errLex(diag.LexUnterminatedString, sp, "string literal is not terminated before end of input")
	}
	return token.Token{
		Kind: token.StringLit,
		Span: sp,
		Text: string(lx.file.Content[contentStart:contentEnd]),
	}
}
