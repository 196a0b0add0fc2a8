package ast

import (
	"tangent/internal/source"
)

type Hints struct{ Exprs uint }

// Builder owns the arenas and the string interner for one parse. Builders
// are not safe for concurrent use; parallel parses each get their own.
type Builder struct {
	Exprs    *Exprs
	Interner *source.Interner
}

func NewBuilder(hints Hints) *Builder {
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	return &Builder{
		Exprs:    NewExprs(hints.Exprs),
		Interner: source.NewInterner(),
	}
}

// Intern is a shortcut for interning node text.
func (b *Builder) Intern(s string) source.StringID {
	return b.Interner.Intern(s)
}

// Text resolves an interned string, or "" for source.NoStringID.
func (b *Builder) Text(id source.StringID) string {
	if id == source.NoStringID {
		return ""
	}
	return b.Interner.MustLookup(id)
}
