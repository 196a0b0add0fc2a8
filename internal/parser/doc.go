// Package parser builds the expression tree from the token stream.
//
// The grammar is a nine-level left-associative precedence-climbing parser
// with the statement separator ';' and the in-bracket comma handled
// structurally below it. The parser is total: it reports through a
// diag.Reporter and substitutes Undefined nodes instead of failing, so
// every input yields a traversable tree.
//
// The one real subtlety is the '.' token. The scanner never distinguishes
// a decimal point from field access; the parser decides at each reduction
// by looking at the operand shapes (see parseDotRest and parsePrefixDot).
package parser
