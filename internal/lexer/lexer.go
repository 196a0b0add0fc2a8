package lexer

import (
	"tangent/internal/source"
	"tangent/internal/token"
)

// Lexer turns one script into a stream of tokens. The scanner is total:
// every input produces a token stream ending in EOF, and the only
// diagnostic it ever reports is an unterminated string literal. Unknown
// characters become Invalid tokens for the parser to reject in context.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   []token.Token
}

// New creates a lexer over f. The file content must already be normalized
// by the source package (BOM stripped, CRLF folded, NFC applied).
func New(f *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   f,
		cursor: NewCursor(f),
		opts:   opts,
	}
}

// Next returns the next token and advances. After the first EOF token every
// further call returns EOF again.
func (lx *Lexer) Next() token.Token {
	if len(lx.look) > 0 {
		t := lx.look[0]
		lx.look = lx.look[1:]
		return t
	}
	return lx.scan()
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	return lx.PeekN(0)
}

// PeekN returns the token n positions ahead without consuming anything.
// PeekN(0) is the token Next would return.
func (lx *Lexer) PeekN(n int) token.Token {
	for len(lx.look) <= n {
		lx.look = append(lx.look, lx.scan())
	}
	return lx.look[n]
}

func (lx *Lexer) scan() token.Token {
	trivia := lx.scanTrivia()

	if lx.cursor.EOF() {
		m := lx.cursor.Mark()
		return token.Token{
			Kind:    token.EOF,
			Span:    lx.cursor.SpanFrom(m),
			Leading: trivia,
		}
	}

	var t token.Token
	b := lx.cursor.Peek()
	switch {
	case b == '"':
		t = lx.scanString()
	case isIdentStart(lx):
		t = lx.scanIdentRun()
	default:
		t = lx.scanOperator()
	}
	t.Leading = trivia
	return t
}

func isIdentStart(lx *Lexer) bool {
	r, sz := lx.peekRune()
	return sz > 0 && isIdentRune(r)
}

// Tokenize scans the whole file eagerly, EOF token included.
func Tokenize(f *source.File, opts Options) []token.Token {
	lx := New(f, opts)
	var out []token.Token
	for {
		t := lx.Next()
		out = append(out, t)
		if t.Kind == token.EOF {
			return out
		}
	}
}
