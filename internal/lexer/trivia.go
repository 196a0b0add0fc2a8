package lexer

import (
	"tangent/internal/token"
)

// scanTrivia consumes whitespace, newlines and line comments in front of the
// next token and returns them in source order. Returns nil when the next byte
// starts a token.
func (lx *Lexer) scanTrivia() []token.Trivia {
	var trivia []token.Trivia
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == ' ' || b == '\t':
			m := lx.cursor.Mark()
			for !lx.cursor.EOF() {
				b := lx.cursor.Peek()
				if b != ' ' && b != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			trivia = append(trivia, token.Trivia{
				Kind: token.TriviaSpace,
				Span: lx.cursor.SpanFrom(m),
			})
		case b == '\n' || b == '\r':
			m := lx.cursor.Mark()
			for !lx.cursor.EOF() {
				b := lx.cursor.Peek()
				if b != '\n' && b != '\r' {
					break
				}
				lx.cursor.Bump()
			}
			trivia = append(trivia, token.Trivia{
				Kind: token.TriviaNewline,
				Span: lx.cursor.SpanFrom(m),
			})
		case b == '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' || b1 != '/' {
				return trivia
			}
			m := lx.cursor.Mark()
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			trivia = append(trivia, token.Trivia{
				Kind: token.TriviaLineComment,
				Span: lx.cursor.SpanFrom(m),
			})
		default:
			return trivia
		}
	}
	return trivia
}
