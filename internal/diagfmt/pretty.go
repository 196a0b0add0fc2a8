package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"tangent/internal/diag"
	"tangent/internal/source"
)

// Pretty renders diagnostics in a human-readable form. Walks bag.Items()
// in order (call bag.Sort() beforehand) and prints one block per item:
//
//	<path>:<line>:<col>: <severity> [<CODE>]: <message>
//	   3 | x = 2..5
//	     |      ^~~
//
// Notes follow with the same layout, indented.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeader(w, fs, d.Primary, d.Severity, d.Code, d.Message, opts, "")
		writeContext(w, fs, d.Primary, d.Severity, opts, "")
		if opts.ShowNotes {
			for _, note := range d.Notes {
				writeHeader(w, fs, note.Span, diag.SevInfo, diag.UnknownCode, note.Msg, opts, "  ")
				writeContext(w, fs, note.Span, diag.SevInfo, opts, "  ")
			}
		}
	}
}

func writeHeader(w io.Writer, fs *source.FileSet, sp source.Span, sev diag.Severity, code diag.Code, msg string, opts PrettyOpts, indent string) {
	f := fs.Get(sp.File)
	if f == nil {
		fmt.Fprintf(w, "%s<unknown>: %s: %s\n", indent, sevLabel(sev, opts.Color), msg)
		return
	}
	start, _ := fs.Resolve(sp)
	if code == diag.UnknownCode {
		fmt.Fprintf(w, "%s%s:%d:%d: %s: %s\n",
			indent, formatPath(f, fs, opts.PathMode), start.Line, start.Col,
			sevLabel(sev, opts.Color), msg)
		return
	}
	fmt.Fprintf(w, "%s%s:%d:%d: %s [%s]: %s\n",
		indent, formatPath(f, fs, opts.PathMode), start.Line, start.Col,
		sevLabel(sev, opts.Color), code.ID(), msg)
}

func writeContext(w io.Writer, fs *source.FileSet, sp source.Span, sev diag.Severity, opts PrettyOpts, indent string) {
	f := fs.Get(sp.File)
	if f == nil || len(f.Content) == 0 {
		return
	}
	start, end := fs.Resolve(sp)

	for n := int8(0); n < opts.Context; n++ {
		back := uint32(opts.Context - n)
		if back >= start.Line {
			continue
		}
		line := start.Line - back
		fmt.Fprintf(w, "%s%4d | %s\n", indent, line, f.GetLine(line))
	}

	line := f.GetLine(start.Line)
	fmt.Fprintf(w, "%s%4d | %s\n", indent, start.Line, line)

	// Caret alignment is display-width based so wide runes line up.
	colStart := int(start.Col) - 1
	if colStart > len(line) {
		colStart = len(line)
	}
	pad := runewidth.StringWidth(line[:colStart])
	width := 1
	if start.Line == end.Line && int(end.Col) > int(start.Col) {
		colEnd := int(end.Col) - 1
		if colEnd > len(line) {
			colEnd = len(line)
		}
		if colEnd > colStart {
			width = runewidth.StringWidth(line[colStart:colEnd])
		}
	}
	if width < 1 {
		width = 1
	}
	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = sevColor(sev).Sprint(marker)
	}
	fmt.Fprintf(w, "%s     | %s%s\n", indent, strings.Repeat(" ", pad), marker)
}

func sevColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

func sevLabel(sev diag.Severity, colored bool) string {
	if !colored {
		return sev.String()
	}
	return sevColor(sev).Sprint(sev.String())
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}
