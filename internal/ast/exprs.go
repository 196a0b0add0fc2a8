package ast

import (
	"tangent/internal/source"
)

// Exprs manages allocation of expression nodes.
type Exprs struct {
	Arena    *Arena[Expr]
	Idents   *Arena[ExprIdentData]
	Hashes   *Arena[ExprHashData]
	Numbers  *Arena[ExprNumberData]
	Strings  *Arena[ExprStringData]
	Binaries *Arena[ExprBinaryData]
	Unaries  *Arena[ExprUnaryData]
	Calls    *Arena[ExprCallData]
	Lists    *Arena[ExprListData]
	Abses    *Arena[ExprAbsData]
	Assigns  *Arena[ExprAssignData]
	Seqs     *Arena[ExprSeqData]
}

// NewExprs creates a new Exprs with per-kind arenas preallocated using
// capHint as the initial capacity. Zero means a default of 1<<8.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Idents:   NewArena[ExprIdentData](capHint),
		Hashes:   NewArena[ExprHashData](capHint),
		Numbers:  NewArena[ExprNumberData](capHint),
		Strings:  NewArena[ExprStringData](capHint),
		Binaries: NewArena[ExprBinaryData](capHint),
		Unaries:  NewArena[ExprUnaryData](capHint),
		Calls:    NewArena[ExprCallData](capHint),
		Lists:    NewArena[ExprListData](capHint),
		Abses:    NewArena[ExprAbsData](capHint),
		Assigns:  NewArena[ExprAssignData](capHint),
		Seqs:     NewArena[ExprSeqData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// Kind returns the kind of the expression, or ExprUndefined for NoExprID.
func (e *Exprs) Kind(id ExprID) ExprKind {
	expr := e.Get(id)
	if expr == nil {
		return ExprUndefined
	}
	return expr.Kind
}

// NewUndefined creates a recovery sentinel node.
func (e *Exprs) NewUndefined(span source.Span) ExprID {
	return e.new(ExprUndefined, span, NoPayloadID)
}

// NewIdent creates a new identifier expression.
func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, span, PayloadID(payload))
}

// Ident returns the identifier data for the given expression ID.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

// NewHash creates a new '#' reference expression. index is 0 for '#'.
func (e *Exprs) NewHash(span source.Span, index uint8) ExprID {
	payload := e.Hashes.Allocate(ExprHashData{Index: index})
	return e.new(ExprHash, span, PayloadID(payload))
}

// Hash returns the hash data for the given expression ID.
func (e *Exprs) Hash(id ExprID) (*ExprHashData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprHash {
		return nil, false
	}
	return e.Hashes.Get(uint32(expr.Payload)), true
}

// NewNumber creates a new decimal literal expression.
func (e *Exprs) NewNumber(span source.Span, raw source.StringID, value float64) ExprID {
	payload := e.Numbers.Allocate(ExprNumberData{Raw: raw, Value: value})
	return e.new(ExprNumber, span, PayloadID(payload))
}

// Number returns the number data for the given expression ID.
func (e *Exprs) Number(id ExprID) (*ExprNumberData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprNumber {
		return nil, false
	}
	return e.Numbers.Get(uint32(expr.Payload)), true
}

// NewString creates a new string literal expression.
func (e *Exprs) NewString(span source.Span, value source.StringID) ExprID {
	payload := e.Strings.Allocate(ExprStringData{Value: value})
	return e.new(ExprString, span, PayloadID(payload))
}

// String returns the string data for the given expression ID.
func (e *Exprs) String(id ExprID) (*ExprStringData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprString {
		return nil, false
	}
	return e.Strings.Get(uint32(expr.Payload)), true
}

// NewBinary creates a new infix operator expression.
func (e *Exprs) NewBinary(span source.Span, op BinaryOp, opSpan source.Span, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, OpSpan: opSpan, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

// Binary returns the binary data for the given expression ID.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

// NewUnary creates a new prefix/postfix operator expression.
func (e *Exprs) NewUnary(span source.Span, op UnaryOp, opSpan source.Span, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, OpSpan: opSpan, Operand: operand})
	return e.new(ExprUnary, span, PayloadID(payload))
}

// Unary returns the unary data for the given expression ID.
func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

// NewCall creates a new call expression.
func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID, trailing bool) ExprID {
	payload := e.Calls.Allocate(ExprCallData{
		Callee:           callee,
		Args:             append([]ExprID(nil), args...),
		HasTrailingComma: trailing,
	})
	return e.new(ExprCall, span, PayloadID(payload))
}

// Call returns the call data for the given expression ID.
func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

// NewList creates a new bracketed list expression.
func (e *Exprs) NewList(span source.Span, bracket BracketKind, elements []ExprID, trailing bool) ExprID {
	payload := e.Lists.Allocate(ExprListData{
		Bracket:          bracket,
		Elements:         append([]ExprID(nil), elements...),
		HasTrailingComma: trailing,
	})
	return e.new(ExprList, span, PayloadID(payload))
}

// List returns the list data for the given expression ID.
func (e *Exprs) List(id ExprID) (*ExprListData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprList {
		return nil, false
	}
	return e.Lists.Get(uint32(expr.Payload)), true
}

// NewAbs creates a new '|...|' expression.
func (e *Exprs) NewAbs(span source.Span, args []ExprID) ExprID {
	payload := e.Abses.Allocate(ExprAbsData{
		Args: append([]ExprID(nil), args...),
	})
	return e.new(ExprAbs, span, PayloadID(payload))
}

// Abs returns the '|...|' data for the given expression ID.
func (e *Exprs) Abs(id ExprID) (*ExprAbsData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprAbs {
		return nil, false
	}
	return e.Abses.Get(uint32(expr.Payload)), true
}

// NewAssign creates a new assignment expression.
func (e *Exprs) NewAssign(span source.Span, kind AssignKind, opSpan source.Span, target, value ExprID, invalid bool) ExprID {
	payload := e.Assigns.Allocate(ExprAssignData{
		Kind:    kind,
		OpSpan:  opSpan,
		Target:  target,
		Value:   value,
		Invalid: invalid,
	})
	return e.new(ExprAssign, span, PayloadID(payload))
}

// Assign returns the assignment data for the given expression ID.
func (e *Exprs) Assign(id ExprID) (*ExprAssignData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprAssign {
		return nil, false
	}
	return e.Assigns.Get(uint32(expr.Payload)), true
}

// NewSeq creates a new statement sequence expression.
func (e *Exprs) NewSeq(span source.Span, stmts []ExprID) ExprID {
	payload := e.Seqs.Allocate(ExprSeqData{
		Stmts: append([]ExprID(nil), stmts...),
	})
	return e.new(ExprSeq, span, PayloadID(payload))
}

// Seq returns the sequence data for the given expression ID.
func (e *Exprs) Seq(id ExprID) (*ExprSeqData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprSeq {
		return nil, false
	}
	return e.Seqs.Get(uint32(expr.Payload)), true
}
