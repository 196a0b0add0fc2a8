package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"tangent/internal/ast"
	"tangent/internal/source"
)

// DumpAST writes a box-drawing tree of the expression rooted at id. fs may
// be nil to omit positions.
func DumpAST(w io.Writer, b *ast.Builder, fs *source.FileSet, id ast.ExprID) {
	writeNode(w, b, fs, id, "", "")
}

func writeNode(w io.Writer, b *ast.Builder, fs *source.FileSet, id ast.ExprID, prefix, childPrefix string) {
	fmt.Fprintf(w, "%s%s%s\n", prefix, nodeLabel(b, id), nodePos(b, fs, id))
	kids := nodeChildren(b, id)
	for i, kid := range kids {
		if i == len(kids)-1 {
			writeNode(w, b, fs, kid, childPrefix+"└─ ", childPrefix+"   ")
		} else {
			writeNode(w, b, fs, kid, childPrefix+"├─ ", childPrefix+"│  ")
		}
	}
}

func nodePos(b *ast.Builder, fs *source.FileSet, id ast.ExprID) string {
	expr := b.Exprs.Get(id)
	if fs == nil || expr == nil || fs.Get(expr.Span.File) == nil {
		return ""
	}
	start, end := fs.Resolve(expr.Span)
	return fmt.Sprintf(" @%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

func nodeLabel(b *ast.Builder, id ast.ExprID) string {
	expr := b.Exprs.Get(id)
	if expr == nil {
		return "<absent>"
	}
	switch expr.Kind {
	case ast.ExprUndefined:
		return "Undefined"
	case ast.ExprIdent:
		data, _ := b.Exprs.Ident(id)
		return "Ident " + strconv.Quote(b.Text(data.Name))
	case ast.ExprHash:
		data, _ := b.Exprs.Hash(id)
		if data.Index == 0 {
			return "Hash \"#\""
		}
		return fmt.Sprintf("Hash \"#%d\"", data.Index)
	case ast.ExprNumber:
		data, _ := b.Exprs.Number(id)
		return fmt.Sprintf("Number %v (raw %q)", data.Value, b.Text(data.Raw))
	case ast.ExprString:
		data, _ := b.Exprs.String(id)
		return "String " + strconv.Quote(b.Text(data.Value))
	case ast.ExprBinary:
		data, _ := b.Exprs.Binary(id)
		return "Binary '" + data.Op.String() + "'"
	case ast.ExprUnary:
		data, _ := b.Exprs.Unary(id)
		pos := "prefix"
		if data.Op.Postfix() {
			pos = "postfix"
		}
		return "Unary " + pos + " '" + data.Op.String() + "'"
	case ast.ExprCall:
		return "Call"
	case ast.ExprList:
		data, _ := b.Exprs.List(id)
		return fmt.Sprintf("List %s %d elements", data.Bracket, len(data.Elements))
	case ast.ExprAbs:
		data, _ := b.Exprs.Abs(id)
		return fmt.Sprintf("Abs %d args", len(data.Args))
	case ast.ExprAssign:
		data, _ := b.Exprs.Assign(id)
		label := "Assign '" + data.Kind.String() + "'"
		if data.Invalid {
			label += " invalid"
		}
		return label
	case ast.ExprSeq:
		data, _ := b.Exprs.Seq(id)
		return fmt.Sprintf("Seq %d stmts", len(data.Stmts))
	default:
		return expr.Kind.String()
	}
}

func nodeChildren(b *ast.Builder, id ast.ExprID) []ast.ExprID {
	expr := b.Exprs.Get(id)
	if expr == nil {
		return nil
	}
	switch expr.Kind {
	case ast.ExprBinary:
		data, _ := b.Exprs.Binary(id)
		return []ast.ExprID{data.Left, data.Right}
	case ast.ExprUnary:
		data, _ := b.Exprs.Unary(id)
		return []ast.ExprID{data.Operand}
	case ast.ExprCall:
		data, _ := b.Exprs.Call(id)
		kids := make([]ast.ExprID, 0, 1+len(data.Args))
		kids = append(kids, data.Callee)
		return append(kids, data.Args...)
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

// ASTNodeJSON is one expression node for JSON output.
type ASTNodeJSON struct {
	Kind     string        `json:"kind"`
	Text     string        `json:"text,omitempty"`
	Op       string        `json:"op,omitempty"`
	Bracket  string        `json:"bracket,omitempty"`
	Value    *float64      `json:"value,omitempty"`
	Invalid  bool          `json:"invalid,omitempty"`
	Span     source.Span   `json:"span"`
	Children []ASTNodeJSON `json:"children,omitempty"`
}

// BuildASTJSON assembles the JSON structure for the tree rooted at id.
func BuildASTJSON(b *ast.Builder, id ast.ExprID) ASTNodeJSON {
	expr := b.Exprs.Get(id)
	if expr == nil {
		return ASTNodeJSON{Kind: "absent"}
	}
	node := ASTNodeJSON{
		Kind: expr.Kind.String(),
		Span: expr.Span,
	}
	switch expr.Kind {
	case ast.ExprIdent:
		data, _ := b.Exprs.Ident(id)
		node.Text = b.Text(data.Name)
	case ast.ExprHash:
		data, _ := b.Exprs.Hash(id)
		if data.Index == 0 {
			node.Text = "#"
		} else {
			node.Text = fmt.Sprintf("#%d", data.Index)
		}
	case ast.ExprNumber:
		data, _ := b.Exprs.Number(id)
		node.Text = b.Text(data.Raw)
		value := data.Value
		node.Value = &value
	case ast.ExprString:
		data, _ := b.Exprs.String(id)
		node.Text = b.Text(data.Value)
	case ast.ExprBinary:
		data, _ := b.Exprs.Binary(id)
		node.Op = data.Op.String()
	case ast.ExprUnary:
		data, _ := b.Exprs.Unary(id)
		node.Op = data.Op.String()
	case ast.ExprList:
		data, _ := b.Exprs.List(id)
		node.Bracket = data.Bracket.String()
	case ast.ExprAssign:
		data, _ := b.Exprs.Assign(id)
		node.Op = data.Kind.String()
		node.Invalid = data.Invalid
	}
	for _, kid := range nodeChildren(b, id) {
		node.Children = append(node.Children, BuildASTJSON(b, kid))
	}
	return node
}

// ASTJSON serializes the tree rooted at id.
func ASTJSON(w io.Writer, b *ast.Builder, id ast.ExprID) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildASTJSON(b, id))
}
