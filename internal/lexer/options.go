package lexer

import (
	"tangent/internal/diag"
	"tangent/internal/source"
)

// Options configures one Lexer instance.
type Options struct {
	// Reporter receives scanner diagnostics (only unterminated strings; the
	// scanner is total and defers everything else to the parser). May be nil.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
