// Package lexer implements the whitespace-tolerant scanner.
//
// The token stream it produces has three properties the parser relies on:
//
//   - Identifier runs fold interior whitespace: "a b c" and "abc" scan to
//     the same Ident token text. Digit runs are identifiers too; numeric
//     literals only come into existence during parsing, when a '.' operator
//     between digit-run leaves is reduced to a number.
//   - Operators are scanned with maximal munch over a fixed symbol table.
//     '.' is always an operator token; the scanner never guesses whether a
//     dot is a decimal point.
//   - The scanner never fails. Unknown characters yield Invalid tokens and
//     an unterminated string still yields its StringLit token.
package lexer
