package driver

import (
	"fortio.org/safecast"

	"tangent/internal/ast"
	"tangent/internal/diag"
	"tangent/internal/lexer"
	"tangent/internal/parser"
	"tangent/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	Root    ast.ExprID
	Bag     *diag.Bag
}

// Parse loads one script from disk and parses it into a Seq root.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseFile(fs, fs.Get(fileID), maxDiagnostics), nil
}

// ParseSource parses in-memory text (REPL line, stdin, test input).
func ParseSource(name string, src []byte, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return parseFile(fs, fs.Get(fileID), maxDiagnostics)
}

func parseFile(fs *source.FileSet, file *source.File, maxDiagnostics int) *ParseResult {
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{})

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		maxErrors = 0
	}
	result := parser.Parse(fs, lx, builder, parser.Options{
		Reporter:  reporter,
		MaxErrors: maxErrors,
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		Root:    result.Root,
		Bag:     bag,
	}
}
