package format_test

import (
	"testing"

	"shaderfmt/internal/config"
	"shaderfmt/internal/diag"
	"shaderfmt/internal/dialect"
	"shaderfmt/internal/format"
	"shaderfmt/internal/lexer"
	"shaderfmt/internal/source"
	"shaderfmt/internal/suppress"
)

// formatText runs the full lex, suppress, format pipeline over input.
func formatText(t *testing.T, input string, rules config.RuleSet) (format.Result, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.hlsl", []byte(input)))
	toks, err := lexer.ScanAll(file, lexer.Options{Dialect: dialect.HLSL})
	if err != nil {
		t.Fatalf("ScanAll(%q) failed: %v", input, err)
	}
	bag := diag.NewBag(64)
	rep := diag.BagReporter{Bag: bag}
	suppress.Apply(toks, rep)
	res := format.Format(file, toks, rules, rep)
	return res, bag
}

func expectFormat(t *testing.T, input, want string, rules config.RuleSet) {
	t.Helper()
	res, _ := formatText(t, input, rules)
	if res.Text != want {
		t.Errorf("format mismatch:\n  input %q\n  got   %q\n  want  %q", input, res.Text, want)
	}
	if res.Changed != (input != want) {
		t.Errorf("Changed = %v for input %q", res.Changed, input)
	}

	// Formatting its own output must change nothing and warn nothing.
	again, bag := formatText(t, res.Text, rules)
	if again.Text != res.Text {
		t.Errorf("not idempotent:\n  first  %q\n  second %q", res.Text, again.Text)
	}
	if bag.Len() != 0 {
		t.Errorf("second run reported %d diagnostics on %q", bag.Len(), res.Text)
	}
}

func TestIndentation(t *testing.T) {
	rules := config.Default()
	expectFormat(t,
		"float4 main() {\nreturn x;\n}\n",
		"float4 main() {\n    return x;\n}\n",
		rules)

	rules.Indentation = config.IndentTab
	expectFormat(t,
		"void f() {\n        int a;\n}\n",
		"void f() {\n\tint a;\n}\n",
		rules)

	rules.Indentation = config.IndentTwoSpaces
	expectFormat(t,
		"void f() {\nif (a) {\nb();\n}\n}\n",
		"void f() {\n  if (a) {\n    b();\n  }\n}\n",
		rules)
}

func TestBlankLineCollapse(t *testing.T) {
	rules := config.Default()
	expectFormat(t, "int a;\n\n\n\nint b;\n", "int a;\n\nint b;\n", rules)

	rules.MaxEmptyLines = 0
	expectFormat(t, "int a;\n\nint b;\n", "int a;\nint b;\n", rules)

	rules.MaxEmptyLines = 2
	expectFormat(t, "int a;\n\n\nint b;\n", "int a;\n\n\nint b;\n", rules)
}

func TestBracePlacement(t *testing.T) {
	after := config.Default()
	expectFormat(t, "void f()\n{\n}\n", "void f() {\n}\n", after)
	expectFormat(t, "void f(){\n}\n", "void f() {\n}\n", after)

	before := config.Default()
	before.BracePlacement = config.BraceBefore
	expectFormat(t, "void f() {\n}\n", "void f()\n{\n}\n", before)
	expectFormat(t, "struct Light {\nfloat3 dir;\n};\n",
		"struct Light\n{\n    float3 dir;\n};\n", before)
}

func TestBracePlacementLeavesNonHeaderBraces(t *testing.T) {
	// Initializer braces follow '=' and are not header braces.
	rules := config.Default()
	rules.BracePlacement = config.BraceBefore
	expectFormat(t, "int a[] = { 1, 2 };\n", "int a[] = { 1, 2 };\n", rules)
}

func TestBracketSpacing(t *testing.T) {
	spaced := config.Default()
	spaced.SpacesInBrackets = true
	expectFormat(t, "foo(a, b);\n", "foo( a, b );\n", spaced)
	expectFormat(t, "x = arr[i];\n", "x = arr[ i ];\n", spaced)
	// An empty pair never gets inner spaces.
	expectFormat(t, "bar();\n", "bar();\n", spaced)

	tight := config.Default()
	expectFormat(t, "foo( a, b );\n", "foo(a, b);\n", tight)
}

func TestPreprocessorColumnZero(t *testing.T) {
	rules := config.Default()
	expectFormat(t,
		"void f() {\n    #define X 1\nint a;\n}\n",
		"void f() {\n#define X 1\n    int a;\n}\n",
		rules)
}

func TestPreprocessorIndented(t *testing.T) {
	rules := config.Default()
	rules.IndentPreprocessor = true
	expectFormat(t,
		"void f() {\n#define X 1\n}\n",
		"void f() {\n    #define X 1\n}\n",
		rules)
}

func TestPreprocessorNesting(t *testing.T) {
	rules := config.Default()
	rules.IndentPreprocessor = true
	rules.PreprocessorIfCreatesNesting = true
	expectFormat(t,
		"#if A\nfloat x;\n#else\nfloat y;\n#endif\n",
		"#if A\n    float x;\n#else\n    float y;\n#endif\n",
		rules)
	expectFormat(t,
		"#ifdef A\n#ifdef B\nint x;\n#endif\n#endif\n",
		"#ifdef A\n    #ifdef B\n        int x;\n    #endif\n#endif\n",
		rules)
}

func TestLineEndingNormalization(t *testing.T) {
	rules := config.Default()
	expectFormat(t, "int a;\r\nint b;\r\n", "int a;\nint b;\n", rules)

	res, bag := formatText(t, "int a;\r\nint b;\r\n", rules)
	if res.Text != "int a;\nint b;\n" {
		t.Fatalf("got %q", res.Text)
	}
	count := 0
	for _, d := range bag.Items() {
		if d.Code == diag.FmtLineEnding {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("line ending normalization must warn once per file, got %d", count)
	}

	rules.ForceLineEnding = config.Some("\r\n")
	expectFormat(t, "int a;\nint b;\n", "int a;\r\nint b;\r\n", rules)
}

func TestNoFormatRegionVerbatim(t *testing.T) {
	input := "// NOFORMATBEGIN\nfloat   x =   1 ;\n   weird();\n// NOFORMATEND\nint y;\n"
	rules := config.Default()
	res, bag := formatText(t, input, rules)
	if res.Text != input {
		t.Fatalf("suppressed region must survive byte-for-byte:\n got  %q\n want %q", res.Text, input)
	}
	if bag.Len() != 0 {
		t.Fatalf("suppressed region must not warn, got %d diagnostics", bag.Len())
	}
}

func TestNoFormatRegionKeepsNestingCount(t *testing.T) {
	// The line the region starts on is still the formatter's: the marker gets
	// the computed indentation. Everything after it is verbatim until the end
	// marker, but braces inside keep feeding the depth counter.
	input := "void f() {\n// NOFORMATBEGIN\nif (a) {\n}\n// NOFORMATEND\nint x;\n}\n"
	want := "void f() {\n    // NOFORMATBEGIN\nif (a) {\n}\n// NOFORMATEND\n    int x;\n}\n"
	expectFormat(t, input, want, config.Default())
}

func TestNoFormatRegionIndentedMarker(t *testing.T) {
	input := "void f() {\n    // NOFORMATBEGIN\n    m  =  { 0, 1 };\n    // NOFORMATEND\n    int x;\n}\n"
	rules := config.Default()
	res, bag := formatText(t, input, rules)
	if res.Text != input {
		t.Fatalf("indented region start must keep its lead:\n got  %q\n want %q", res.Text, input)
	}
	if res.Changed || bag.Len() != 0 {
		t.Fatalf("already-formatted input reported Changed=%v with %d diagnostics", res.Changed, bag.Len())
	}
}

func TestWarningsCarryCodes(t *testing.T) {
	_, bag := formatText(t, "void f()\n{\nint a;\n\n\n\n}\n", config.Default())
	seen := map[diag.Code]bool{}
	for _, d := range bag.Items() {
		if d.Severity != diag.SevWarning {
			t.Errorf("formatter findings must be warnings, got %s for %s", d.Severity, d.Code.ID())
		}
		seen[d.Code] = true
	}
	for _, code := range []diag.Code{diag.FmtBracePlacement, diag.FmtIndentation, diag.FmtBlankLines} {
		if !seen[code] {
			t.Errorf("expected a %s finding", code.ID())
		}
	}
}
