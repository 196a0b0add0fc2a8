// Package testkit holds shared checks used by tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"tangent/internal/ast"
	"tangent/internal/source"
)

// CheckSpanInvariants verifies the span discipline of a parsed script:
// 1) the root is a sequence whose span stays inside the file content
// 2) every reachable node's span is well formed and inside the file
// 3) every kept child span is contained in its parent span
// Zero-width spans are legal; recovery sentinels use them for "insert
// here" positions.
func CheckSpanInvariants(b *ast.Builder, root ast.ExprID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	if _, ok := b.Exprs.Seq(root); !ok {
		return fmt.Errorf("root %d is not a sequence", root)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	return checkNode(b, root, sf, lenContent, source.Span{File: sf.ID, Start: 0, End: lenContent})
}

func checkNode(b *ast.Builder, id ast.ExprID, sf *source.File, lenContent uint32, outer source.Span) error {
	if id == ast.NoExprID {
		return fmt.Errorf("reachable node with no ID")
	}
	expr := b.Exprs.Get(id)
	if expr == nil {
		return fmt.Errorf("dangling expression ID %d", id)
	}
	sp := expr.Span
	if sp.File != sf.ID {
		return fmt.Errorf("node %d span points at file %d, want %d", id, sp.File, sf.ID)
	}
	if sp.Start > sp.End {
		return fmt.Errorf("node %d has inverted span %v", id, sp)
	}
	if sp.End > lenContent {
		return fmt.Errorf("node %d span %v escapes the content (%d bytes)", id, sp, lenContent)
	}
	if sp.Start < outer.Start || sp.End > outer.End {
		return fmt.Errorf("node %d span %v escapes its parent %v", id, sp, outer)
	}
	for _, child := range children(b, id) {
		if err := checkNode(b, child, sf, lenContent, sp); err != nil {
			return err
		}
	}
	return nil
}

func children(b *ast.Builder, id ast.ExprID) []ast.ExprID {
	switch b.Exprs.Kind(id) {
	case ast.ExprBinary:
		data, _ := b.Exprs.Binary(id)
		return []ast.ExprID{data.Left, data.Right}
	case ast.ExprUnary:
		data, _ := b.Exprs.Unary(id)
		return []ast.ExprID{data.Operand}
	case ast.ExprCall:
		data, _ := b.Exprs.Call(id)
		return append([]ast.ExprID{data.Callee}, data.Args...)
	case ast.ExprList:
		data, _ := b.Exprs.List(id)
		return data.Elements
	case ast.ExprAbs:
		data, _ := b.Exprs.Abs(id)
		return data.Args
	case ast.ExprAssign:
		data, _ := b.Exprs.Assign(id)
		return []ast.ExprID{data.Target, data.Value}
	case ast.ExprSeq:
		data, _ := b.Exprs.Seq(id)
		return data.Stmts
	default:
		return nil
	}
}
