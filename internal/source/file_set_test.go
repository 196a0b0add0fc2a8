package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"tangent/internal/source"
)

func TestAddVirtual(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("script.tan", []byte("x = 1.;\ny = 2.;\n"))
	f := fs.Get(id)

	if f.Path != "script.tan" {
		t.Errorf("expected path %q, got %q", "script.tan", f.Path)
	}
	if f.Flags&source.FileVirtual == 0 {
		t.Error("expected the virtual flag")
	}
	if f.Hash == ([32]byte{}) {
		t.Error("expected a content hash")
	}
}

func TestLoadNormalizesLineEndingsAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.tan")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a = 1.;\r\nb = 2.;\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)

	if f.Flags&source.FileHadBOM == 0 {
		t.Error("expected the BOM flag")
	}
	if f.Flags&source.FileNormalizedCRLF == 0 {
		t.Error("expected the CRLF flag")
	}
	want := "a = 1.;\nb = 2.;\n"
	if string(f.Content) != want {
		t.Errorf("expected normalized content %q, got %q", want, f.Content)
	}
}

func TestResolvePositions(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("pos.tan", []byte("abc\ndef\nghi"))

	// "e" on the second line.
	start, end := fs.Resolve(source.Span{File: id, Start: 5, End: 6})
	if start.Line != 2 || start.Col != 2 {
		t.Errorf("expected start 2:2, got %d:%d", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 3 {
		t.Errorf("expected end 2:3, got %d:%d", end.Line, end.Col)
	}
}

func TestGetLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("lines.tan", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("line %d: expected %q, got %q", tt.line, tt.want, got)
		}
	}
}

func TestGetByPathReturnsLatest(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("a.tan", []byte("old"))
	second := fs.AddVirtual("a.tan", []byte("new"))

	f, ok := fs.GetByPath("a.tan")
	if !ok {
		t.Fatal("expected a hit")
	}
	if f.ID != second {
		t.Errorf("expected the latest version %d, got %d", second, f.ID)
	}
}

func TestSpanCover(t *testing.T) {
	a := source.Span{File: 0, Start: 4, End: 8}
	b := source.Span{File: 0, Start: 6, End: 12}
	got := a.Cover(b)
	if got.Start != 4 || got.End != 12 {
		t.Errorf("expected 4-12, got %d-%d", got.Start, got.End)
	}

	other := source.Span{File: 1, Start: 0, End: 2}
	if got := a.Cover(other); got != a {
		t.Error("spans from different files must not merge")
	}
}

func TestSpanZeroideToEnd(t *testing.T) {
	s := source.Span{File: 0, Start: 3, End: 7}
	z := s.ZeroideToEnd()
	if !z.Empty() || z.Start != 7 {
		t.Errorf("expected an empty span at 7, got %v", z)
	}
}

func TestInterner(t *testing.T) {
	in := source.NewInterner()
	a := in.Intern("point")
	b := in.Intern("point")
	c := in.Intern("circle")

	if a != b {
		t.Error("equal strings must share an ID")
	}
	if a == c {
		t.Error("distinct strings must not share an ID")
	}
	if got := in.MustLookup(a); got != "point" {
		t.Errorf("expected %q, got %q", "point", got)
	}
	if _, ok := in.Lookup(source.NoStringID); ok {
		t.Error("NoStringID must not resolve")
	}
}
