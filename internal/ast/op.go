package ast

// BinaryOp enumerates infix operator kinds.
type BinaryOp uint8

const (
	// Field access and attachment

	// BinaryDot represents '.'; between digit-run leaves the parser reduces
	// it to a number instead of keeping this node.
	BinaryDot BinaryOp = iota
	// BinarySubscript represents '_'.
	BinarySubscript
	// BinaryPow represents '^'.
	BinaryPow

	// Multiplicative

	BinaryMul
	BinaryDiv

	// Additive

	BinaryAdd
	BinarySub

	// Equality and relational

	BinaryEq        // ==
	BinaryApproxEq  // ~=
	BinaryApproxLt  // ~<
	BinaryApproxGt  // ~>
	BinaryDefEq     // =:=
	BinaryGtEq      // >=
	BinaryLtEq      // <=
	BinaryApproxGe  // ~>=
	BinaryApproxLe  // ~<=
	BinaryGt        // >
	BinaryLt        // <
	BinaryNeq       // <>

	// Combinators

	BinaryAmp       // &
	BinaryPercent   // %
	BinaryBangEq    // !=
	BinaryApproxNeq // ~!=
	BinaryRange     // ..

	// Sequence builders

	BinaryConcat    // ++
	BinaryDifference // --
	BinaryTildes    // ~~
	BinaryColonGt   // :>
	BinaryLtColon   // <:
)

var binaryOpNames = [...]string{
	BinaryDot:        ".",
	BinarySubscript:  "_",
	BinaryPow:        "^",
	BinaryMul:        "*",
	BinaryDiv:        "/",
	BinaryAdd:        "+",
	BinarySub:        "-",
	BinaryEq:         "==",
	BinaryApproxEq:   "~=",
	BinaryApproxLt:   "~<",
	BinaryApproxGt:   "~>",
	BinaryDefEq:      "=:=",
	BinaryGtEq:       ">=",
	BinaryLtEq:       "<=",
	BinaryApproxGe:   "~>=",
	BinaryApproxLe:   "~<=",
	BinaryGt:         ">",
	BinaryLt:         "<",
	BinaryNeq:        "<>",
	BinaryAmp:        "&",
	BinaryPercent:    "%",
	BinaryBangEq:     "!=",
	BinaryApproxNeq:  "~!=",
	BinaryRange:      "..",
	BinaryConcat:     "++",
	BinaryDifference: "--",
	BinaryTildes:     "~~",
	BinaryColonGt:    ":>",
	BinaryLtColon:    "<:",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpNames) {
		return binaryOpNames[op]
	}
	return "?"
}

// UnaryOp enumerates prefix/postfix operator kinds. The position is part of
// the kind: UnaryDegree is the only postfix form.
type UnaryOp uint8

const (
	// UnaryPlus represents prefix '+'.
	UnaryPlus UnaryOp = iota
	// UnaryMinus represents prefix '-'.
	UnaryMinus
	// UnaryNot represents prefix '!'.
	UnaryNot
	// UnaryDegree represents postfix '°'.
	UnaryDegree
)

var unaryOpNames = [...]string{
	UnaryPlus:   "+",
	UnaryMinus:  "-",
	UnaryNot:    "!",
	UnaryDegree: "°",
}

func (op UnaryOp) String() string {
	if int(op) < len(unaryOpNames) {
		return unaryOpNames[op]
	}
	return "?"
}

// Postfix reports whether the operator attaches after its operand.
func (op UnaryOp) Postfix() bool { return op == UnaryDegree }

// AssignKind enumerates the four assignment arrows.
type AssignKind uint8

const (
	AssignPlain AssignKind = iota // =
	AssignColon                   // :=
	AssignColonColon              // ::=
	AssignArrow                   // ->
)

var assignKindNames = [...]string{
	AssignPlain:      "=",
	AssignColon:      ":=",
	AssignColonColon: "::=",
	AssignArrow:      "->",
}

func (k AssignKind) String() string {
	if int(k) < len(assignKindNames) {
		return assignKindNames[k]
	}
	return "?"
}
