// Package diag carries diagnostics from the scanner and parser to the host.
//
// The front end never aborts on bad input: every recoverable condition turns
// into a Diagnostic in a per-parse Bag while parsing continues with an
// Undefined placeholder. A Bag is created per parse and never shared between
// concurrent parses.
//
// Codes are numbered in blocks (1000s lexical, 2000s syntactic, 4000s I/O)
// and each code maps to one of the recovery categories the evaluator cares
// about via Code.Category.
package diag
