// Package token defines lexical token kinds and trivia for the Tangent
// front end.
// Invariants:
//   - Token.Text is the logical text with interior whitespace already folded
//     out; Token.Span covers the raw source range, whitespace included.
//   - The language has no keywords: every letter-initial run is an Ident and
//     every built-in function name is resolved by the host at evaluation time.
//   - Comments (// ...) and whitespace are represented as leading Trivia and
//     never appear in the main token stream.
//   - A pure digit run is an Ident, not a number: numeric literals only come
//     into existence when the parser folds digit runs around a '.' operator.
package token
