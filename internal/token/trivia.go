package token

import "tangent/internal/source"

// TriviaKind classifies non-token source text attached to the next token.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
)

var triviaNames = [...]string{
	TriviaSpace:       "Space",
	TriviaNewline:     "Newline",
	TriviaLineComment: "LineComment",
}

func (k TriviaKind) String() string {
	if int(k) < len(triviaNames) {
		return triviaNames[k]
	}
	return "Trivia(?)"
}

// Trivia is a run of whitespace or a comment preceding a token.
// Whitespace folded *inside* a token does not appear here; it is only
// visible as the difference between the token's Span and Text.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
