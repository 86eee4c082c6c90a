package lexer_test

import (
	"errors"
	"strings"
	"testing"

	"shaderfmt/internal/diag"
	"shaderfmt/internal/dialect"
	"shaderfmt/internal/lexer"
	"shaderfmt/internal/source"
	"shaderfmt/internal/token"
)

// makeTestFile loads input as a virtual file.
func makeTestFile(input string) *source.File {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.hlsl", []byte(input))
	return fs.Get(fileID)
}

// scanAll lexes input and fails the test on a fatal error.
func scanAll(t *testing.T, input string, d dialect.Kind) []token.Token {
	t.Helper()
	toks, err := lexer.ScanAll(makeTestFile(input), lexer.Options{Dialect: d})
	if err != nil {
		t.Fatalf("ScanAll(%q) failed: %v", input, err)
	}
	return toks
}

// kinds flattens the token kinds, EOF excluded.
func kinds(toks []token.Token) []token.Kind {
	var out []token.Kind
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			break
		}
		out = append(out, tok.Kind)
	}
	return out
}

func expectKinds(t *testing.T, got []token.Token, want ...token.Kind) {
	t.Helper()
	gotKinds := kinds(got)
	if len(gotKinds) != len(want) {
		t.Fatalf("token count mismatch: got %v, want %v", gotKinds, want)
	}
	for i := range want {
		if gotKinds[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s (all: %v)", i, gotKinds[i], want[i], gotKinds)
		}
	}
}

func TestRoundTripLossless(t *testing.T) {
	inputs := []string{
		"",
		"float4 color = tex.Sample(s, uv);\n",
		"  \t mixed\twhitespace  \n",
		"#include \"common.hlsli\"\nfloat x;\n",
		"#define WIDE(a, b) \\\n    ((a) + (b))\nint y;\n",
		"/* block /* nested */ still */ int z;\n",
		"/// doc line\n// plain\n/** doc block */\n",
		"line1\r\nline2\nline3\r\n",
		"float e = 1.5e-3f; float h = 0x1Fu; float d = .5;\n",
		"\"string with \\\" escape\" + other\n",
		"a<<=b; c>>=d; e!=f; g&&h;\n",
	}
	for _, input := range inputs {
		for _, d := range []dialect.Kind{dialect.HLSL, dialect.GLSL} {
			toks := scanAll(t, input, d)
			var sb strings.Builder
			for _, tok := range toks {
				sb.WriteString(tok.Text)
			}
			if sb.String() != input {
				t.Errorf("round trip mismatch for %q (%s):\n got %q", input, d, sb.String())
			}
		}
	}
}

func TestTokenKinds(t *testing.T) {
	toks := scanAll(t, "float4 c = f(1.0f);", dialect.HLSL)
	expectKinds(t, toks,
		token.TypeName, token.Space, token.Ident, token.Space, token.Operator,
		token.Space, token.Ident, token.Punct, token.Number, token.Punct, token.Punct,
	)
}

func TestDialectTypeTables(t *testing.T) {
	toks := scanAll(t, "vec3 n;", dialect.GLSL)
	if toks[0].Kind != token.TypeName || toks[0].Type != dialect.TypeVector {
		t.Fatalf("vec3 in GLSL: got %s/%s", toks[0].Kind, toks[0].Type)
	}
	toks = scanAll(t, "vec3 n;", dialect.HLSL)
	if toks[0].Kind != token.Ident {
		t.Fatalf("vec3 in HLSL should be an identifier, got %s", toks[0].Kind)
	}

	toks = scanAll(t, "cbuffer Frame", dialect.HLSL)
	if toks[0].Kind != token.Keyword {
		t.Fatalf("cbuffer in HLSL should be a keyword, got %s", toks[0].Kind)
	}
}

func TestDirectives(t *testing.T) {
	toks := scanAll(t, "#include \"foo.h\"\n  #if defined(X)\nnot#adirective;\n", dialect.HLSL)

	if toks[0].Kind != token.Directive || toks[0].DirectiveName != "include" {
		t.Fatalf("first token: got %s %q", toks[0].Kind, toks[0].DirectiveName)
	}

	var directives []string
	for _, tok := range toks {
		if tok.Kind == token.Directive {
			directives = append(directives, tok.DirectiveName)
		}
	}
	if len(directives) != 2 || directives[1] != "if" {
		t.Fatalf("directives: got %v, want [include if]", directives)
	}

	// '#' not at line start is not a directive.
	for _, tok := range toks {
		if tok.Kind == token.Directive && strings.Contains(tok.Text, "adirective") {
			t.Fatalf("mid-line # must not open a directive: %q", tok.Text)
		}
	}
}

func TestDirectiveContinuation(t *testing.T) {
	input := "#define ADD(a, b) \\\n    ((a) + (b))\nint x;"
	toks := scanAll(t, input, dialect.HLSL)
	if toks[0].Kind != token.Directive {
		t.Fatalf("expected directive, got %s", toks[0].Kind)
	}
	if !strings.Contains(toks[0].Text, "((a) + (b))") {
		t.Fatalf("continuation not consumed into the directive: %q", toks[0].Text)
	}
}

func TestCommentForms(t *testing.T) {
	toks := scanAll(t, "/// d\n// p\n/** b */\n/*! x */\n/**/\n/* n */", dialect.HLSL)
	var commentKinds []token.Kind
	for _, tok := range toks {
		if tok.IsComment() {
			commentKinds = append(commentKinds, tok.Kind)
		}
	}
	want := []token.Kind{
		token.DocLine, token.LineComment, token.DocBlock,
		token.DocBlock, token.BlockComment, token.BlockComment,
	}
	if len(commentKinds) != len(want) {
		t.Fatalf("comment kinds: got %v, want %v", commentKinds, want)
	}
	for i := range want {
		if commentKinds[i] != want[i] {
			t.Fatalf("comment %d: got %s, want %s", i, commentKinds[i], want[i])
		}
	}
}

func TestNewlineForms(t *testing.T) {
	toks := scanAll(t, "a\r\nb\nc", dialect.HLSL)
	var newlines []string
	for _, tok := range toks {
		if tok.Kind == token.Newline {
			newlines = append(newlines, tok.Text)
		}
	}
	if len(newlines) != 2 || newlines[0] != "\r\n" || newlines[1] != "\n" {
		t.Fatalf("newline texts: got %q", newlines)
	}
}

func TestFatalErrors(t *testing.T) {
	cases := []struct {
		input string
		code  diag.Code
	}{
		{"\"unterminated", diag.LexUnterminatedString},
		{"\"broken\nline\"", diag.LexUnterminatedString},
		{"/* never closed", diag.LexUnterminatedBlockComment},
		{"int x = 0x;", diag.LexBadNumber},
		{"float f = 1e+;", diag.LexBadNumber},
		{"int a = 1 @ 2;", diag.LexUnknownChar},
	}
	for _, tc := range cases {
		_, err := lexer.ScanAll(makeTestFile(tc.input), lexer.Options{Dialect: dialect.HLSL})
		if err == nil {
			t.Errorf("ScanAll(%q): expected fatal error", tc.input)
			continue
		}
		var lexErr *lexer.Error
		if !errors.As(err, &lexErr) {
			t.Errorf("ScanAll(%q): error type %T, want *lexer.Error", tc.input, err)
			continue
		}
		if lexErr.Code != tc.code {
			t.Errorf("ScanAll(%q): code %s, want %s", tc.input, lexErr.Code.ID(), tc.code.ID())
		}
	}
}

func TestFatalErrorReported(t *testing.T) {
	bag := diag.NewBag(16)
	_, err := lexer.ScanAll(makeTestFile("\"oops"), lexer.Options{
		Dialect:  dialect.HLSL,
		Reporter: diag.BagReporter{Bag: bag},
	})
	if err == nil {
		t.Fatal("expected fatal error")
	}
	if !bag.HasErrors() {
		t.Fatal("fatal error must also be reported as a diagnostic")
	}
}
