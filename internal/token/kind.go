package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates a character the scanner could not classify. The
	// parser rejects it with a diagnostic; the scanner itself never fails.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token, digit-only runs included.
	Ident
	// HashIdent represents the special '#' or '#1'..'#9' running-variable
	// identifier. '#' glued to anything else scans as an ordinary Ident.
	HashIdent
	// StringLit represents a verbatim string literal token.
	StringLit

	// Colon represents the reserved user-defined-data operator ':'.
	Colon // :
	// Dot represents the field-access/decimal-point operator '.'.
	Dot // .
	// Degree represents the postfix degree operator '°'.
	Degree // °
	// Underscore represents the subscript operator '_'.
	Underscore // _
	// Caret represents the power operator '^'.
	Caret // ^
	// Star represents the multiplication operator '*'.
	Star // *
	// Slash represents the division operator '/'.
	Slash // /
	// Plus represents the addition (and prefix plus) operator '+'.
	Plus // +
	// Minus represents the subtraction (and prefix minus) operator '-'.
	Minus // -
	// Bang represents the prefix logical-not operator '!'.
	Bang // !

	// EqEq represents the equality operator '=='.
	EqEq // ==
	// TildeEq represents the approximate-equality operator '~='.
	TildeEq // ~=
	// TildeLt represents the approximately-less operator '~<'.
	TildeLt // ~<
	// TildeGt represents the approximately-greater operator '~>'.
	TildeGt // ~>
	// EqColonEq represents the structural-equality operator '=:='.
	EqColonEq // =:=
	// GtEq represents the greater-or-equal operator '>='.
	GtEq // >=
	// LtEq represents the less-or-equal operator '<='.
	LtEq // <=
	// TildeGtEq represents the approximately-greater-or-equal operator '~>='.
	TildeGtEq // ~>=
	// TildeLtEq represents the approximately-less-or-equal operator '~<='.
	TildeLtEq // ~<=
	// Gt represents the greater-than operator '>'.
	Gt // >
	// Lt represents the less-than operator '<'.
	Lt // <
	// LtGt represents the inequality operator '<>'.
	LtGt // <>

	// Amp represents the logical-and operator '&'.
	Amp // &
	// Percent represents the modulo operator '%'.
	Percent // %
	// BangEq represents the inequality operator '!='.
	BangEq // !=
	// TildeBangEq represents the approximate-inequality operator '~!='.
	TildeBangEq // ~!=
	// DotDot represents the range operator '..'.
	DotDot // ..

	// PlusPlus represents the list-concatenation operator '++'.
	PlusPlus // ++
	// MinusMinus represents the list-difference operator '--'.
	MinusMinus // --
	// TildeTilde represents the common-elements operator '~~'.
	TildeTilde // ~~
	// ColonGt represents the append operator ':>'.
	ColonGt // :>
	// LtColon represents the prepend operator '<:'.
	LtColon // <:

	// Assign represents the assignment operator '='.
	Assign // =
	// ColonAssign represents the definition operator ':='.
	ColonAssign // :=
	// ColonColonAssign represents the global-definition operator '::='.
	ColonColonAssign // ::=
	// Arrow represents the binding operator '->'.
	Arrow // ->

	// Semicolon represents the sequence operator ';'.
	Semicolon // ;
	// Comma represents the element separator ',' (meaningful only inside
	// brackets).
	Comma // ,

	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// Bar represents the absolute-value delimiter '|'. It opens and closes;
	// the grammar forbids nesting, so there is no separate close kind.
	Bar // |

	kindCount
)

var kindNames = [...]string{
	Invalid:          "Invalid",
	EOF:              "EOF",
	Ident:            "Ident",
	HashIdent:        "HashIdent",
	StringLit:        "StringLit",
	Colon:            "Colon",
	Dot:              "Dot",
	Degree:           "Degree",
	Underscore:       "Underscore",
	Caret:            "Caret",
	Star:             "Star",
	Slash:            "Slash",
	Plus:             "Plus",
	Minus:            "Minus",
	Bang:             "Bang",
	EqEq:             "EqEq",
	TildeEq:          "TildeEq",
	TildeLt:          "TildeLt",
	TildeGt:          "TildeGt",
	EqColonEq:        "EqColonEq",
	GtEq:             "GtEq",
	LtEq:             "LtEq",
	TildeGtEq:        "TildeGtEq",
	TildeLtEq:        "TildeLtEq",
	Gt:               "Gt",
	Lt:               "Lt",
	LtGt:             "LtGt",
	Amp:              "Amp",
	Percent:          "Percent",
	BangEq:           "BangEq",
	TildeBangEq:      "TildeBangEq",
	DotDot:           "DotDot",
	PlusPlus:         "PlusPlus",
	MinusMinus:       "MinusMinus",
	TildeTilde:       "TildeTilde",
	ColonGt:          "ColonGt",
	LtColon:          "LtColon",
	Assign:           "Assign",
	ColonAssign:      "ColonAssign",
	ColonColonAssign: "ColonColonAssign",
	Arrow:            "Arrow",
	Semicolon:        "Semicolon",
	Comma:            "Comma",
	LParen:           "LParen",
	RParen:           "RParen",
	LBracket:         "LBracket",
	RBracket:         "RBracket",
	LBrace:           "LBrace",
	RBrace:           "RBrace",
	Bar:              "Bar",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}
