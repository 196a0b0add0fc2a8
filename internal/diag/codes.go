package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002

	// Syntactic
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynUnclosedParen    Code = 2002
	SynUnclosedBracket  Code = 2003
	SynUnclosedBrace    Code = 2004
	SynUnclosedAbs      Code = 2005
	SynNestedAbs        Code = 2006
	SynReservedColon    Code = 2007
	SynBadPrefix        Code = 2008
	SynBadPostfix       Code = 2009
	SynCommaOutside     Code = 2010
	SynExpectExpression Code = 2011
	SynExpectSeparator  Code = 2012

	// Assignment targets
	SynInvalidLvalue Code = 2020

	// Reserved structural forms
	SynBraceArity Code = 2030
	SynAbsArity   Code = 2031
	SynAbsEmpty   Code = 2032

	// I/O (driver level, not produced by the parser itself)
	IOLoadFileError Code = 4001
)

// Category groups codes by how the host is expected to recover.
type Category uint8

const (
	// CatNone covers informational and I/O codes outside the recovery taxonomy.
	CatNone Category = iota
	// CatLexicalPassthrough marks characters the scanner passed through for
	// the parser to reject.
	CatLexicalPassthrough
	// CatSyntaxError marks malformed structure: bad nesting, illegal
	// prefix/postfix position, reserved operators.
	CatSyntaxError
	// CatInvalidLvalue marks an inadmissible assignment target.
	CatInvalidLvalue
	// CatStructuralReserved marks reserved bracket shapes: zero/multi-element
	// braces, wrong '|...|' arity, nested bars.
	CatStructuralReserved
)

func (c Category) String() string {
	switch c {
	case CatLexicalPassthrough:
		return "LexicalPassthrough"
	case CatSyntaxError:
		return "SyntaxError"
	case CatInvalidLvalue:
		return "InvalidLvalue"
	case CatStructuralReserved:
		return "StructuralReserved"
	}
	return "None"
}

// Category returns the recovery category for the code.
func (c Code) Category() Category {
	switch c {
	case LexUnknownChar:
		return CatLexicalPassthrough
	case LexUnterminatedString, SynUnexpectedToken, SynUnclosedParen,
		SynUnclosedBracket, SynUnclosedBrace, SynUnclosedAbs,
		SynReservedColon, SynBadPrefix, SynBadPostfix, SynCommaOutside,
		SynExpectExpression, SynExpectSeparator:
		return CatSyntaxError
	case SynInvalidLvalue:
		return CatInvalidLvalue
	case SynNestedAbs, SynBraceArity, SynAbsArity, SynAbsEmpty:
		return CatStructuralReserved
	}
	return CatNone
}

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown diagnostic",
	LexInfo:               "Lexical information",
	LexUnknownChar:        "Unrecognized character",
	LexUnterminatedString: "Unterminated string literal",
	SynInfo:               "Syntactic information",
	SynUnexpectedToken:    "Unexpected token",
	SynUnclosedParen:      "Missing closing parenthesis",
	SynUnclosedBracket:    "Missing closing square bracket",
	SynUnclosedBrace:      "Missing closing curly brace",
	SynUnclosedAbs:        "Missing closing '|'",
	SynNestedAbs:          "Nested '|...|' is not allowed",
	SynReservedColon:      "Reserved operator ':'",
	SynBadPrefix:          "Operator not allowed in prefix position",
	SynBadPostfix:         "Operator not allowed in postfix position",
	SynCommaOutside:       "Comma outside brackets",
	SynExpectExpression:   "Expected expression",
	SynExpectSeparator:    "Expected separator",
	SynInvalidLvalue:      "Invalid assignment target",
	SynBraceArity:         "Curly braces take exactly one element",
	SynAbsArity:           "'|...|' takes one or two arguments",
	SynAbsEmpty:           "Empty '|...|' is not allowed",
	IOLoadFileError:       "Failed to load file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
