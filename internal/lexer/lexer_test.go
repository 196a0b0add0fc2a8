package lexer_test

import (
	"fmt"
	"testing"

	"tangent/internal/diag"
	"tangent/internal/lexer"
	"tangent/internal/source"
	"tangent/internal/token"
)

// testReporter collects every diagnostic the scanner emits.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) ErrorCount() int {
	count := 0
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			count++
		}
	}
	return count
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.tan", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

// expectTokens checks the token kinds of input, EOF excluded.
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %v\nerrors: %v",
			len(expected), len(tokens), input, tokens, reporter.ErrorMessages())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
}

// expectSingleToken checks that input scans as exactly one token.
func expectSingleToken(t *testing.T, input string, kind token.Kind, text string) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tok := lx.Next()
	if tok.Kind != kind {
		t.Errorf("%q: expected kind %v, got %v", input, kind, tok.Kind)
	}
	if tok.Text != text {
		t.Errorf("%q: expected text %q, got %q", input, text, tok.Text)
	}
	if next := lx.Next(); next.Kind != token.EOF {
		t.Errorf("%q: expected EOF after first token, got %v %q", input, next.Kind, next.Text)
	}
}

func TestIdentWhitespaceFolding(t *testing.T) {
	tests := []struct {
		name  string
		input string
		text  string
	}{
		{"plain", "abc", "abc"},
		{"spaced_letters", "a b c", "abc"},
		{"spaced_digits", "1 2", "12"},
		{"tab_separated", "foo\tbar", "foobar"},
		{"mixed_alnum", "A1 2b", "A12b"},
		{"apostrophe", "a'", "a'"},
		{"digits_only", "007", "007"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectSingleToken(t, tt.input, token.Ident, tt.text)
		})
	}
}

func TestIdentRunFoldsAcrossNewlines(t *testing.T) {
	expectSingleToken(t, "a b\nc", token.Ident, "abc")
}

func TestIdentRunStopsAtOperator(t *testing.T) {
	expectTokens(t, "a b + c d", []token.Kind{token.Ident, token.Plus, token.Ident})
}

func TestIdentSpanCoversRawText(t *testing.T) {
	lx, _ := makeTestLexer("a b c")
	tok := lx.Next()
	if tok.Text != "abc" {
		t.Fatalf("expected folded text %q, got %q", "abc", tok.Text)
	}
	if tok.Span.Len() != 5 {
		t.Errorf("expected raw span length 5, got %d", tok.Span.Len())
	}
}

func TestHashReferences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  token.Kind
		text  string
	}{
		{"bare_hash", "#", token.HashIdent, "#"},
		{"hash_one", "#1", token.HashIdent, "#1"},
		{"hash_nine", "#9", token.HashIdent, "#9"},
		{"hash_two_digits", "#12", token.Ident, "#12"},
		{"hash_zero", "#0", token.Ident, "#0"},
		{"hash_inside_run", "foo#1", token.Ident, "foo#1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.text)
		})
	}
}

func TestHashWithInteriorSpaceIsPlainIdent(t *testing.T) {
	// The folded text is "#1" but the raw spelling has a space, so the
	// token stays a plain Ident.
	expectSingleToken(t, "# 1", token.Ident, "#1")
}

func TestMaximalMunchOperators(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"::=", token.ColonColonAssign},
		{"=:=", token.EqColonEq},
		{"~>=", token.TildeGtEq},
		{"~<=", token.TildeLtEq},
		{"~!=", token.TildeBangEq},
		{"==", token.EqEq},
		{"~=", token.TildeEq},
		{"~<", token.TildeLt},
		{"~>", token.TildeGt},
		{"~~", token.TildeTilde},
		{">=", token.GtEq},
		{"<=", token.LtEq},
		{"<>", token.LtGt},
		{"<:", token.LtColon},
		{":>", token.ColonGt},
		{"!=", token.BangEq},
		{"..", token.DotDot},
		{"++", token.PlusPlus},
		{"--", token.MinusMinus},
		{"->", token.Arrow},
		{":=", token.ColonAssign},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestMunchBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []token.Kind
	}{
		{"colon_then_assign", ": =", []token.Kind{token.Colon, token.Assign}},
		{"triple_eq", "===", []token.Kind{token.EqEq, token.Assign}},
		{"colon_colon_eq_eq", "::==", []token.Kind{token.ColonColonAssign, token.Assign}},
		{"dot_dot_dot", "...", []token.Kind{token.DotDot, token.Dot}},
		{"lt_gt_separate", "< >", []token.Kind{token.Lt, token.Gt}},
		{"plus_plus_plus", "+++", []token.Kind{token.PlusPlus, token.Plus}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectTokens(t, tt.input, tt.expected)
		})
	}
}

func TestSingleCharacterTokens(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{":", token.Colon},
		{".", token.Dot},
		{"_", token.Underscore},
		{"^", token.Caret},
		{"*", token.Star},
		{"/", token.Slash},
		{"+", token.Plus},
		{"-", token.Minus},
		{"!", token.Bang},
		{">", token.Gt},
		{"<", token.Lt},
		{"&", token.Amp},
		{"%", token.Percent},
		{"=", token.Assign},
		{";", token.Semicolon},
		{",", token.Comma},
		{"(", token.LParen},
		{")", token.RParen},
		{"[", token.LBracket},
		{"]", token.RBracket},
		{"{", token.LBrace},
		{"}", token.RBrace},
		{"|", token.Bar},
		{"°", token.Degree},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestUnknownCharactersBecomeInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"lone_tilde", "~"},
		{"at_sign", "@"},
		{"backslash", `\`},
		{"dollar", "$"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx, reporter := makeTestLexer(tt.input)
			tok := lx.Next()
			if tok.Kind != token.Invalid {
				t.Errorf("expected Invalid, got %v", tok.Kind)
			}
			// The scanner stays silent; the parser reports in context.
			if reporter.ErrorCount() != 0 {
				t.Errorf("scanner must not report unknown characters, got %v", reporter.ErrorMessages())
			}
		})
	}
}

func TestVerbatimStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		text  string
	}{
		{"plain", `"hello"`, "hello"},
		{"empty", `""`, ""},
		{"backslash_is_literal", `"a\nb"`, `a\nb`},
		{"embedded_newline", "\"line one\nline two\"", "line one\nline two"},
		{"operators_inside", `"a + b == c"`, "a + b == c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectSingleToken(t, tt.input, token.StringLit, tt.text)
		})
	}
}

func TestUnterminatedString(t *testing.T) {
	lx, reporter := makeTestLexer(`"never closed`)
	tok := lx.Next()
	if tok.Kind != token.StringLit {
		t.Fatalf("expected StringLit, got %v", tok.Kind)
	}
	if tok.Text != "never closed" {
		t.Errorf("expected content up to EOF, got %q", tok.Text)
	}
	if reporter.ErrorCount() != 1 {
		t.Fatalf("expected one error, got %v", reporter.ErrorMessages())
	}
	if reporter.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Errorf("expected LexUnterminatedString, got %v", reporter.diagnostics[0].Code.ID())
	}
	if next := lx.Next(); next.Kind != token.EOF {
		t.Errorf("expected EOF after unterminated string, got %v", next.Kind)
	}
}

func TestLeadingTrivia(t *testing.T) {
	lx, _ := makeTestLexer("  // remark\nx")
	tok := lx.Next()
	if tok.Kind != token.Ident || tok.Text != "x" {
		t.Fatalf("expected ident x, got %v %q", tok.Kind, tok.Text)
	}
	kinds := make([]token.TriviaKind, len(tok.Leading))
	for i, tr := range tok.Leading {
		kinds[i] = tr.Kind
	}
	want := []token.TriviaKind{token.TriviaSpace, token.TriviaLineComment, token.TriviaNewline}
	if len(kinds) != len(want) {
		t.Fatalf("expected trivia %v, got %v", want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("trivia %d: expected %v, got %v", i, want[i], kinds[i])
		}
	}
}

func TestCommentRunsToEndOfLine(t *testing.T) {
	expectTokens(t, "a // b + c\nd", []token.Kind{token.Ident, token.Ident})
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("x + y")
	if lx.Peek().Kind != token.Ident {
		t.Fatal("peek should see the first ident")
	}
	if lx.PeekN(1).Kind != token.Plus {
		t.Fatal("peekN(1) should see the plus")
	}
	if got := lx.Next(); got.Kind != token.Ident {
		t.Fatalf("next after peek should return the ident, got %v", got.Kind)
	}
}

func TestMixedExpression(t *testing.T) {
	expectTokens(t, "dist = |A, B| * 2;", []token.Kind{
		token.Ident, token.Assign, token.Bar, token.Ident, token.Comma,
		token.Ident, token.Bar, token.Star, token.Ident, token.Semicolon,
	})
}

func TestDegreeAfterNumber(t *testing.T) {
	expectTokens(t, "90°", []token.Kind{token.Ident, token.Degree})
}

func TestEOFIsSticky(t *testing.T) {
	lx, _ := makeTestLexer("")
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("expected EOF, got %v", tok.Kind)
		}
	}
}
