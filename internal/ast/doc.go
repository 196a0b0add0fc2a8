// Package ast defines the arena-backed expression tree.
//
// Nodes are stored in flat arenas and referred to by ExprID; kind-specific
// fields live in per-kind payload arenas. ID zero (NoExprID) means "absent"
// and is distinct from ExprUndefined, which is a real node standing in for
// unparsable input. Identifier and literal text is interned per Builder.
package ast
