package parser

import (
	"slices"

	"tangent/internal/ast"
	"tangent/internal/diag"
	"tangent/internal/lexer"
	"tangent/internal/source"
	"tangent/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error cap has been reached.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	// Root is always a Seq node, possibly with zero statements. The parser
	// never fails outright: malformed input degrades to Undefined nodes.
	Root ast.ExprID
	Bag  *diag.Bag
}

// Parser holds the state for one script. One lexer, one builder, one
// reporter per parse; nothing is shared between concurrent parses.
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span
	// barDepth is 0 outside '|...|' and 1 inside. The form does not nest,
	// so a depth beyond 1 never occurs.
	barDepth int
}

// Parse is the entry point for one script. Requires an already created
// lexer over a source.File.
func Parse(fs *source.FileSet, lx *lexer.Lexer, arenas *ast.Builder, opts Options) Result {
	p := Parser{
		lx:     lx,
		arenas: arenas,
		fs:     fs,
		opts:   opts,
	}
	root := p.parseSequence()
	var bag *diag.Bag
	if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		Root: root,
		Bag:  bag,
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}
