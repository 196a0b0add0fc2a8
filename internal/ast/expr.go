package ast

import (
	"tangent/internal/source"
)

// ExprKind enumerates the different kinds of expression nodes.
type ExprKind uint8

const (
	// ExprUndefined is the recovery sentinel. It stands in for anything the
	// parser could not make sense of; it carries no payload.
	ExprUndefined ExprKind = iota
	// ExprIdent represents an identifier leaf.
	ExprIdent
	// ExprHash represents the '#' current-answer forms ('#', '#1'..'#9').
	ExprHash
	// ExprNumber represents a decimal literal produced by the parser's dot
	// reduction. The scanner never emits number tokens.
	ExprNumber
	// ExprString represents a verbatim string literal.
	ExprString
	// ExprBinary represents an infix operator application.
	ExprBinary
	// ExprUnary represents a prefix or postfix operator application.
	ExprUnary
	// ExprCall represents a call: identifier immediately followed by '('.
	ExprCall
	// ExprList represents a bracketed element list: '()', '[]' or '{}'.
	ExprList
	// ExprAbs represents the '|...|' form with one or two arguments.
	ExprAbs
	// ExprAssign represents an assignment with one of the four arrows.
	ExprAssign
	// ExprSeq represents a ';'-separated statement sequence (the root node).
	ExprSeq
)

var exprKindNames = [...]string{
	ExprUndefined: "Undefined",
	ExprIdent:     "Ident",
	ExprHash:      "Hash",
	ExprNumber:    "Number",
	ExprString:    "String",
	ExprBinary:    "Binary",
	ExprUnary:     "Unary",
	ExprCall:      "Call",
	ExprList:      "List",
	ExprAbs:       "Abs",
	ExprAssign:    "Assign",
	ExprSeq:       "Seq",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "Invalid"
}

// Expr is one expression node. Kind-specific fields live in a payload arena
// keyed by Payload; ExprUndefined has none.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// BracketKind identifies which bracket pair produced an ExprList.
type BracketKind uint8

const (
	BracketParen BracketKind = iota
	BracketSquare
	BracketBrace
)

func (k BracketKind) String() string {
	switch k {
	case BracketParen:
		return "()"
	case BracketSquare:
		return "[]"
	case BracketBrace:
		return "{}"
	}
	return "?"
}

type ExprIdentData struct {
	Name source.StringID
}

type ExprHashData struct {
	// Index is 0 for the bare '#', 1..9 for '#1'..'#9'.
	Index uint8
}

type ExprNumberData struct {
	// Raw is the canonical digits-dot-digits spelling ("2.", ".34", ".").
	Raw   source.StringID
	Value float64
}

type ExprStringData struct {
	Value source.StringID
}

type ExprBinaryData struct {
	Op          BinaryOp
	OpSpan      source.Span
	Left, Right ExprID
}

type ExprUnaryData struct {
	Op      UnaryOp
	OpSpan  source.Span
	Operand ExprID
}

type ExprCallData struct {
	// Callee is always an ExprIdent; calls only form when an identifier is
	// immediately followed by '('.
	Callee           ExprID
	Args             []ExprID
	HasTrailingComma bool
}

type ExprListData struct {
	Bracket          BracketKind
	Elements         []ExprID
	HasTrailingComma bool
}

type ExprAbsData struct {
	// Args holds one or two arguments; the arity rules are enforced at parse
	// time, so a well-formed node never has zero or three+ entries.
	Args []ExprID
}

type ExprAssignData struct {
	Kind   AssignKind
	OpSpan source.Span
	Target ExprID
	Value  ExprID
	// Invalid marks an inadmissible target. The node keeps its full shape so
	// tooling can traverse it; the parser reports the diagnostic.
	Invalid bool
}

type ExprSeqData struct {
	Stmts []ExprID
}
