package parser

import (
	"testing"

	"tangent/internal/ast"
	"tangent/internal/diag"
	"tangent/internal/lexer"
	"tangent/internal/source"
)

func parseTestInput(t *testing.T, input string) (*ast.Builder, ast.ExprID, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.tan", []byte(input))
	bag := diag.NewBag(64)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{})
	result := Parse(fs, lx, builder, Options{Reporter: reporter})
	if result.Root == ast.NoExprID {
		t.Fatalf("parse of %q produced no root", input)
	}
	return builder, result.Root, bag
}

// firstStmt unwraps the root Seq and returns its single statement.
func firstStmt(t *testing.T, b *ast.Builder, root ast.ExprID) ast.ExprID {
	t.Helper()
	seq, ok := b.Exprs.Seq(root)
	if !ok {
		t.Fatalf("root is not a sequence, got %v", b.Exprs.Kind(root))
	}
	if len(seq.Stmts) != 1 {
		t.Fatalf("expected exactly one statement, got %d", len(seq.Stmts))
	}
	return seq.Stmts[0]
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestDotFormsNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		raw   string
		value float64
	}{
		{"both_sides", "3.14", "3.14", 3.14},
		{"trailing_dot", "2.", "2.", 2},
		{"leading_dot", ".34", ".34", 0.34},
		{"bare_dot", ".", ".", 0},
		{"spaced_digits", "1 2 . 5", "12.5", 12.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, root, bag := parseTestInput(t, tt.input)
			if bag.Len() != 0 {
				t.Fatalf("expected clean parse, got %d diagnostics", bag.Len())
			}
			num, ok := b.Exprs.Number(firstStmt(t, b, root))
			if !ok {
				t.Fatal("expected a number literal")
			}
			if got := b.Text(num.Raw); got != tt.raw {
				t.Errorf("raw: expected %q, got %q", tt.raw, got)
			}
			if num.Value != tt.value {
				t.Errorf("value: expected %v, got %v", tt.value, num.Value)
			}
		})
	}
}

func TestDigitRunWithoutDotStaysIdent(t *testing.T) {
	b, root, _ := parseTestInput(t, "42")
	ident, ok := b.Exprs.Ident(firstStmt(t, b, root))
	if !ok {
		t.Fatal("expected an identifier leaf")
	}
	if b.Text(ident.Name) != "42" {
		t.Errorf("expected name %q, got %q", "42", b.Text(ident.Name))
	}
}

func TestDotWithNonDigitSideIsFieldAccess(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"digit_left", "2.x"},
		{"digit_right", "p.2"},
		{"both_names", "p.x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, root, _ := parseTestInput(t, tt.input)
			bin, ok := b.Exprs.Binary(firstStmt(t, b, root))
			if !ok {
				t.Fatal("expected a binary node")
			}
			if bin.Op != ast.BinaryDot {
				t.Errorf("expected field access, got %v", bin.Op)
			}
		})
	}
}

func TestChainedFieldAccessIsLeftAssociative(t *testing.T) {
	b, root, _ := parseTestInput(t, "p.x.y")
	outer, ok := b.Exprs.Binary(firstStmt(t, b, root))
	if !ok || outer.Op != ast.BinaryDot {
		t.Fatal("expected outer field access")
	}
	inner, ok := b.Exprs.Binary(outer.Left)
	if !ok || inner.Op != ast.BinaryDot {
		t.Fatal("expected the left side to be the inner access")
	}
}

func TestPowIsLeftAssociative(t *testing.T) {
	b, root, _ := parseTestInput(t, "3^2^4")
	outer, ok := b.Exprs.Binary(firstStmt(t, b, root))
	if !ok || outer.Op != ast.BinaryPow {
		t.Fatal("expected outer '^'")
	}
	inner, ok := b.Exprs.Binary(outer.Left)
	if !ok || inner.Op != ast.BinaryPow {
		t.Fatal("expected '(3^2)^4', found right-nested '^'")
	}
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		topOp   ast.BinaryOp
		leftOp  ast.BinaryOp
		rightOp ast.BinaryOp
	}{
		{"mul_over_add", "a + b * c", ast.BinaryAdd, ast.BinaryOp(255), ast.BinaryMul},
		{"compare_over_arith", "a + b == c * d", ast.BinaryEq, ast.BinaryAdd, ast.BinaryMul},
		{"concat_over_range", "a .. b ++ c", ast.BinaryConcat, ast.BinaryRange, ast.BinaryOp(255)},
		{"pow_over_mul", "a * b ^ c", ast.BinaryMul, ast.BinaryOp(255), ast.BinaryPow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, root, _ := parseTestInput(t, tt.input)
			top, ok := b.Exprs.Binary(firstStmt(t, b, root))
			if !ok || top.Op != tt.topOp {
				t.Fatalf("expected top operator %v", tt.topOp)
			}
			if tt.leftOp != ast.BinaryOp(255) {
				left, ok := b.Exprs.Binary(top.Left)
				if !ok || left.Op != tt.leftOp {
					t.Errorf("expected left operator %v", tt.leftOp)
				}
			}
			if tt.rightOp != ast.BinaryOp(255) {
				right, ok := b.Exprs.Binary(top.Right)
				if !ok || right.Op != tt.rightOp {
					t.Errorf("expected right operator %v", tt.rightOp)
				}
			}
		})
	}
}

func TestPrefixMinusBindsAbovePow(t *testing.T) {
	// "-a^2" negates the whole power, while "-a+b" negates only a.
	b, root, _ := parseTestInput(t, "-a^2")
	un, ok := b.Exprs.Unary(firstStmt(t, b, root))
	if !ok || un.Op != ast.UnaryMinus {
		t.Fatal("expected prefix minus at the top")
	}
	if operand, ok := b.Exprs.Binary(un.Operand); !ok || operand.Op != ast.BinaryPow {
		t.Fatal("expected the minus to cover 'a^2'")
	}

	b, root, _ = parseTestInput(t, "-a+b")
	bin, ok := b.Exprs.Binary(firstStmt(t, b, root))
	if !ok || bin.Op != ast.BinaryAdd {
		t.Fatal("expected '+' at the top")
	}
	if left, ok := b.Exprs.Unary(bin.Left); !ok || left.Op != ast.UnaryMinus {
		t.Fatal("expected '(-a)+b'")
	}
}

func TestDegreePostfix(t *testing.T) {
	b, root, bag := parseTestInput(t, "x°")
	un, ok := b.Exprs.Unary(firstStmt(t, b, root))
	if !ok || un.Op != ast.UnaryDegree {
		t.Fatal("expected postfix degree")
	}
	if bag.Len() != 0 {
		t.Errorf("expected clean parse, got %d diagnostics", bag.Len())
	}
}

func TestDegreeInPrefixPositionIsRejected(t *testing.T) {
	_, _, bag := parseTestInput(t, "°x")
	if !hasCode(bag, diag.SynBadPrefix) {
		t.Error("expected a bad-prefix diagnostic")
	}
}

func TestBangIsPrefixOnly(t *testing.T) {
	b, root, bag := parseTestInput(t, "!a")
	if un, ok := b.Exprs.Unary(firstStmt(t, b, root)); !ok || un.Op != ast.UnaryNot {
		t.Fatal("expected prefix '!'")
	}
	if bag.Len() != 0 {
		t.Fatalf("expected clean parse of '!a'")
	}

	_, _, bag = parseTestInput(t, "a!")
	if !hasCode(bag, diag.SynBadPostfix) {
		t.Error("expected a bad-postfix diagnostic for 'a!'")
	}
}

func TestAssignKinds(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.AssignKind
	}{
		{"x = 1.", ast.AssignPlain},
		{"x := 1.", ast.AssignColon},
		{"x ::= 1.", ast.AssignColonColon},
		{"x -> 1.", ast.AssignArrow},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			b, root, bag := parseTestInput(t, tt.input)
			as, ok := b.Exprs.Assign(firstStmt(t, b, root))
			if !ok {
				t.Fatal("expected an assignment")
			}
			if as.Kind != tt.kind {
				t.Errorf("expected kind %v, got %v", tt.kind, as.Kind)
			}
			if as.Invalid {
				t.Error("target is a plain name, must not be flagged")
			}
			if bag.Len() != 0 {
				t.Errorf("expected clean parse, got %d diagnostics", bag.Len())
			}
		})
	}
}

func TestAssignTargets(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		invalid bool
	}{
		{"bare_name", "x = 1.", false},
		{"field_chain", "p.x = 1.", false},
		{"subscript_chain", "p_1 = 1.", false},
		{"mixed_chain", "p_1.x = 1.", false},
		{"call_result", "f(x) = 1.", true},
		{"literal_target", `"s" = 1.`, true},
		{"operator_target", "a + b = 1.", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, root, bag := parseTestInput(t, tt.input)
			as, ok := b.Exprs.Assign(firstStmt(t, b, root))
			if !ok {
				t.Fatal("expected an assignment node even for bad targets")
			}
			if as.Invalid != tt.invalid {
				t.Errorf("expected invalid=%v, got %v", tt.invalid, as.Invalid)
			}
			if tt.invalid != hasCode(bag, diag.SynInvalidLvalue) {
				t.Errorf("lvalue diagnostic mismatch: %v", bag.Items())
			}
		})
	}
}

func TestChainedAssignmentFlagsOuterTarget(t *testing.T) {
	b, root, bag := parseTestInput(t, "x = y = 0.")
	outer, ok := b.Exprs.Assign(firstStmt(t, b, root))
	if !ok {
		t.Fatal("expected the outer assignment")
	}
	if !outer.Invalid {
		t.Error("left-folded 'x = y' is not an assignable target")
	}
	if !hasCode(bag, diag.SynInvalidLvalue) {
		t.Error("expected an invalid-lvalue diagnostic")
	}

	// Grouping the right side keeps both assignments valid.
	b, root, bag = parseTestInput(t, "x = (y = 1.)")
	outer, ok = b.Exprs.Assign(firstStmt(t, b, root))
	if !ok || outer.Invalid {
		t.Fatal("expected a valid outer assignment")
	}
	if inner, ok := b.Exprs.Assign(outer.Value); !ok || inner.Invalid {
		t.Fatal("expected a valid inner assignment")
	}
	if bag.Len() != 0 {
		t.Errorf("expected clean parse, got %v", bag.Items())
	}
}

func TestParenForms(t *testing.T) {
	t.Run("empty_is_list", func(t *testing.T) {
		b, root, _ := parseTestInput(t, "()")
		list, ok := b.Exprs.List(firstStmt(t, b, root))
		if !ok || list.Bracket != ast.BracketParen || len(list.Elements) != 0 {
			t.Fatal("expected an empty paren list")
		}
	})
	t.Run("single_is_grouping", func(t *testing.T) {
		b, root, _ := parseTestInput(t, "(a + b)")
		if bin, ok := b.Exprs.Binary(firstStmt(t, b, root)); !ok || bin.Op != ast.BinaryAdd {
			t.Fatal("grouping must yield the inner node itself")
		}
	})
	t.Run("pair_is_list", func(t *testing.T) {
		b, root, _ := parseTestInput(t, "(a, b)")
		list, ok := b.Exprs.List(firstStmt(t, b, root))
		if !ok || len(list.Elements) != 2 {
			t.Fatal("expected a two-element list")
		}
	})
	t.Run("trailing_comma_appends_undefined", func(t *testing.T) {
		b, root, _ := parseTestInput(t, "(1., 2.,)")
		list, ok := b.Exprs.List(firstStmt(t, b, root))
		if !ok || len(list.Elements) != 3 {
			t.Fatal("expected three elements, trailing slot included")
		}
		if !list.HasTrailingComma {
			t.Error("expected the trailing comma to be recorded")
		}
		if b.Exprs.Kind(list.Elements[2]) != ast.ExprUndefined {
			t.Error("expected the trailing slot to be undefined")
		}
	})
}

func TestSquareBracketsAreAlwaysLists(t *testing.T) {
	tests := []struct {
		input string
		count int
	}{
		{"[]", 0},
		{"[a]", 1},
		{"[a, b]", 2},
		{"[1., 2.,]", 3},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			b, root, _ := parseTestInput(t, tt.input)
			list, ok := b.Exprs.List(firstStmt(t, b, root))
			if !ok || list.Bracket != ast.BracketSquare {
				t.Fatal("expected a square list")
			}
			if len(list.Elements) != tt.count {
				t.Errorf("expected %d elements, got %d", tt.count, len(list.Elements))
			}
		})
	}
}

func TestBraceForms(t *testing.T) {
	t.Run("single_is_grouping", func(t *testing.T) {
		b, root, bag := parseTestInput(t, "{a + b}")
		if bin, ok := b.Exprs.Binary(firstStmt(t, b, root)); !ok || bin.Op != ast.BinaryAdd {
			t.Fatal("one-element braces alias grouping")
		}
		if bag.Len() != 0 {
			t.Errorf("expected clean parse, got %v", bag.Items())
		}
	})
	t.Run("other_arities_reserved", func(t *testing.T) {
		for _, input := range []string{"{}", "{a, b}"} {
			b, root, bag := parseTestInput(t, input)
			if b.Exprs.Kind(firstStmt(t, b, root)) != ast.ExprUndefined {
				t.Errorf("%q: expected an undefined result", input)
			}
			if !hasCode(bag, diag.SynBraceArity) {
				t.Errorf("%q: expected a brace-arity diagnostic", input)
			}
		}
	})
}

func TestAbsForms(t *testing.T) {
	t.Run("one_argument", func(t *testing.T) {
		b, root, bag := parseTestInput(t, "|a|")
		abs, ok := b.Exprs.Abs(firstStmt(t, b, root))
		if !ok || len(abs.Args) != 1 {
			t.Fatal("expected a one-argument form")
		}
		if bag.Len() != 0 {
			t.Errorf("expected clean parse, got %v", bag.Items())
		}
	})
	t.Run("two_arguments", func(t *testing.T) {
		b, root, _ := parseTestInput(t, "|a, b|")
		abs, ok := b.Exprs.Abs(firstStmt(t, b, root))
		if !ok || len(abs.Args) != 2 {
			t.Fatal("expected a two-argument form")
		}
	})
	t.Run("empty_rejected", func(t *testing.T) {
		_, _, bag := parseTestInput(t, "||")
		if !hasCode(bag, diag.SynAbsEmpty) {
			t.Error("expected an empty-form diagnostic")
		}
	})
	t.Run("three_rejected", func(t *testing.T) {
		_, _, bag := parseTestInput(t, "|a, b, c|")
		if !hasCode(bag, diag.SynAbsArity) {
			t.Error("expected an arity diagnostic")
		}
	})
	t.Run("nesting_rejected", func(t *testing.T) {
		_, _, bag := parseTestInput(t, "|[3, |4|]|")
		if !hasCode(bag, diag.SynNestedAbs) {
			t.Error("expected a nested-form diagnostic")
		}
	})
	t.Run("sibling_forms_allowed", func(t *testing.T) {
		b, root, bag := parseTestInput(t, "|a| + |b|")
		if hasCode(bag, diag.SynNestedAbs) {
			t.Fatal("sibling forms are not nesting")
		}
		if bin, ok := b.Exprs.Binary(firstStmt(t, b, root)); !ok || bin.Op != ast.BinaryAdd {
			t.Fatal("expected '+' over two forms")
		}
	})
}

func TestApplication(t *testing.T) {
	tests := []struct {
		name  string
		input string
		args  int
	}{
		{"adjacent", "f(x)", 1},
		{"spaced", "f (x)", 1},
		{"two_args", "dist(a, b)", 2},
		{"empty", "f()", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, root, bag := parseTestInput(t, tt.input)
			call, ok := b.Exprs.Call(firstStmt(t, b, root))
			if !ok {
				t.Fatal("expected a call node")
			}
			if len(call.Args) != tt.args {
				t.Errorf("expected %d arguments, got %d", tt.args, len(call.Args))
			}
			if _, ok := b.Exprs.Ident(call.Callee); !ok {
				t.Error("expected an identifier callee")
			}
			if bag.Len() != 0 {
				t.Errorf("expected clean parse, got %v", bag.Items())
			}
		})
	}
}

func TestHashReferences(t *testing.T) {
	b, root, _ := parseTestInput(t, "#")
	hash, ok := b.Exprs.Hash(firstStmt(t, b, root))
	if !ok || hash.Index != 0 {
		t.Fatal("expected the bare '#' reference")
	}

	b, root, _ = parseTestInput(t, "#3")
	hash, ok = b.Exprs.Hash(firstStmt(t, b, root))
	if !ok || hash.Index != 3 {
		t.Fatal("expected the '#3' reference")
	}

	// '#12' is shaped like an ordinary identifier.
	b, root, _ = parseTestInput(t, "#12")
	if _, ok := b.Exprs.Ident(firstStmt(t, b, root)); !ok {
		t.Fatal("expected '#12' to stay an identifier")
	}
}

func TestSequences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		count int
	}{
		{"empty_script", "", 0},
		{"single", "a", 1},
		{"trailing_semicolon", "a;", 1},
		{"three_segments", "1.; 2.; x", 3},
		{"empty_segment_in_middle", "a;;b", 3},
		{"lone_semicolon", ";", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, root, _ := parseTestInput(t, tt.input)
			seq, ok := b.Exprs.Seq(root)
			if !ok {
				t.Fatal("expected a sequence root")
			}
			if len(seq.Stmts) != tt.count {
				t.Errorf("expected %d statements, got %d", tt.count, len(seq.Stmts))
			}
		})
	}
}

func TestEmptySegmentIsUndefined(t *testing.T) {
	b, root, _ := parseTestInput(t, "a;;b")
	seq, _ := b.Exprs.Seq(root)
	if b.Exprs.Kind(seq.Stmts[1]) != ast.ExprUndefined {
		t.Error("expected the empty segment to parse as undefined")
	}
}

func TestCommaOutsideBrackets(t *testing.T) {
	b, root, bag := parseTestInput(t, "a, b")
	if !hasCode(bag, diag.SynCommaOutside) {
		t.Fatal("expected a comma-outside-brackets diagnostic")
	}
	if b.Exprs.Kind(firstStmt(t, b, root)) != ast.ExprUndefined {
		t.Error("expected the statement to degrade to undefined")
	}
}

func TestRecoveryStopsAtSemicolon(t *testing.T) {
	b, root, bag := parseTestInput(t, "a, b; c")
	seq, _ := b.Exprs.Seq(root)
	if len(seq.Stmts) != 2 {
		t.Fatalf("expected two statements, got %d", len(seq.Stmts))
	}
	if _, ok := b.Exprs.Ident(seq.Stmts[1]); !ok {
		t.Error("expected the statement after ';' to parse cleanly")
	}
	if !hasCode(bag, diag.SynCommaOutside) {
		t.Error("expected the comma diagnostic")
	}
}

func TestReservedColon(t *testing.T) {
	b, root, bag := parseTestInput(t, "a : b")
	if !hasCode(bag, diag.SynReservedColon) {
		t.Fatal("expected a reserved-colon diagnostic")
	}
	if b.Exprs.Kind(firstStmt(t, b, root)) != ast.ExprUndefined {
		t.Error("expected the ':' expression to degrade to undefined")
	}
}

func TestUnknownCharacterReportedInContext(t *testing.T) {
	_, _, bag := parseTestInput(t, "a + @")
	if !hasCode(bag, diag.LexUnknownChar) {
		t.Error("expected an unknown-character diagnostic")
	}
}

func TestUnclosedBrackets(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{"(a", diag.SynUnclosedParen},
		{"[a", diag.SynUnclosedBracket},
		{"{a", diag.SynUnclosedBrace},
		{"|a", diag.SynUnclosedAbs},
		{"f(a", diag.SynUnclosedParen},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, _, bag := parseTestInput(t, tt.input)
			if !hasCode(bag, tt.code) {
				t.Errorf("expected %s, got %v", tt.code.ID(), bag.Items())
			}
		})
	}
}

func TestParserIsTotal(t *testing.T) {
	// Every input yields a sequence root, no matter how broken.
	inputs := []string{
		"", ";;;", "((((", "))))", "|||", "= = =", "~ ~ ~",
		"a b c d @ $ %", `"unterminated`, ". . .", "° ° °",
		"x = ; y = )", "{[(|", "a : : b",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			b, root, _ := parseTestInput(t, input)
			if _, ok := b.Exprs.Seq(root); !ok {
				t.Fatalf("expected a sequence root for %q", input)
			}
		})
	}
}

func TestGroupingIdempotence(t *testing.T) {
	b1, root1, _ := parseTestInput(t, "a + b")
	b2, root2, _ := parseTestInput(t, "(a + b)")
	s1 := firstStmt(t, b1, root1)
	s2 := firstStmt(t, b2, root2)
	bin1, ok1 := b1.Exprs.Binary(s1)
	bin2, ok2 := b2.Exprs.Binary(s2)
	if !ok1 || !ok2 || bin1.Op != bin2.Op {
		t.Fatal("grouping must not change the node shape")
	}
	if b1.Exprs.Kind(bin1.Left) != b2.Exprs.Kind(bin2.Left) ||
		b1.Exprs.Kind(bin1.Right) != b2.Exprs.Kind(bin2.Right) {
		t.Fatal("grouping must not change the operand shapes")
	}
}

func TestMaxErrorsCapSilencesReports(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.tan", []byte("@ @ @ @ @ @ @ @"))
	bag := diag.NewBag(64)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{})
	result := Parse(fs, lx, builder, Options{Reporter: reporter, MaxErrors: 2})
	if result.Root == ast.NoExprID {
		t.Fatal("capped parses still produce a root")
	}
	if bag.Len() > 2 {
		t.Errorf("expected at most 2 reports, got %d", bag.Len())
	}
}
