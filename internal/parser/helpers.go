package parser

import (
	"tangent/internal/ast"
	"tangent/internal/diag"
	"tangent/internal/source"
	"tangent/internal/token"
)

// advance consumes the next token and updates lastSpan.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

// diagSpan returns the best span for a diagnostic at the current position.
// At EOF the zero-width position after the last consumed token reads better
// than the EOF token itself.
func (p *Parser) diagSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{
			File:  p.lastSpan.File,
			Start: p.lastSpan.End,
			End:   p.lastSpan.End,
		}
	}
	return peek.Span
}

// err reports an error at the current position.
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.diagSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if p.opts.Reporter == nil {
		return false
	}
	if sev == diag.SevError {
		if p.opts.Enough() {
			return false
		}
		p.opts.CurrentErrors++
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
	return true
}

// undefined allocates a recovery sentinel covering sp.
func (p *Parser) undefined(sp source.Span) ast.ExprID {
	return p.arenas.Exprs.NewUndefined(sp)
}

// spanOf returns the span of an already-built node.
func (p *Parser) spanOf(id ast.ExprID) source.Span {
	if expr := p.arenas.Exprs.Get(id); expr != nil {
		return expr.Span
	}
	return p.lastSpan
}

// digitLeaf reports whether the node is an identifier leaf made of digits
// only, returning the digits. Only such leaves take part in the dot
// reduction that forms numeric literals.
func (p *Parser) digitLeaf(id ast.ExprID) (string, bool) {
	data, ok := p.arenas.Exprs.Ident(id)
	if !ok {
		return "", false
	}
	text := p.arenas.Text(data.Name)
	if text == "" {
		return "", false
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return "", false
		}
	}
	return text, true
}
