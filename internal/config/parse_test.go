package config_test

import (
	"errors"
	"testing"

	"shaderfmt/internal/config"
	"shaderfmt/internal/diag"
)

func parseConfig(t *testing.T, data string) config.RuleSet {
	t.Helper()
	rs, err := config.Parse([]byte(data), "shader-formatter.toml")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return rs
}

func parseError(t *testing.T, data string) *config.ParseError {
	t.Helper()
	_, err := config.Parse([]byte(data), "shader-formatter.toml")
	if err == nil {
		t.Fatalf("Parse(%q): expected error", data)
	}
	var perr *config.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Parse(%q): error type %T, want *ParseError", data, err)
	}
	return perr
}

func TestDefaults(t *testing.T) {
	rs := config.Default()
	if rs.Indentation != config.IndentFourSpaces {
		t.Errorf("default indentation: got %s", rs.Indentation)
	}
	if rs.BracePlacement != config.BraceAfter {
		t.Errorf("default brace placement: got %s", rs.BracePlacement)
	}
	if rs.MaxEmptyLines != 1 {
		t.Errorf("default MaxEmptyLines: got %d", rs.MaxEmptyLines)
	}
	if rs.SpacesInBrackets {
		t.Error("SpacesInBrackets must default to false")
	}
	if rs.VariableCase.IsSet() || rs.GlobalVariablePrefix.IsSet() {
		t.Error("naming rules must default to unset")
	}
	if rs.LineEnding() != "\n" {
		t.Errorf("default line ending: got %q", rs.LineEnding())
	}
}

func TestParseFullFile(t *testing.T) {
	rs := parseConfig(t, `
Indentation = "Tab"
NewLineOnOpenBrace = "Before"
MaxEmptyLines = 2
SpacesInBrackets = true
IndentPreprocessor = true
PreprocessorIfCreatesNesting = true
RequireDocsOnFunctions = true
VariableCase = "Camel"
FunctionCase = "Pascal"
StructCase = "Pascal"
LocalVariableCase = "Snake"
BoolPrefix = "b"
IntPrefix = "i"
FloatPrefix = "f"
GlobalVariablePrefix = "g_"
ForceLineEnding = "\r\n"
`)
	if rs.Indentation != config.IndentTab {
		t.Errorf("Indentation: got %s", rs.Indentation)
	}
	if rs.BracePlacement != config.BraceBefore {
		t.Errorf("NewLineOnOpenBrace: got %s", rs.BracePlacement)
	}
	if rs.MaxEmptyLines != 2 {
		t.Errorf("MaxEmptyLines: got %d", rs.MaxEmptyLines)
	}
	if !rs.SpacesInBrackets || !rs.IndentPreprocessor || !rs.PreprocessorIfCreatesNesting {
		t.Error("boolean rules not applied")
	}
	if v, ok := rs.VariableCase.Get(); !ok || v != config.CaseCamel {
		t.Errorf("VariableCase: got %v/%v", v, ok)
	}
	if v, ok := rs.LocalVariableCase.Get(); !ok || v != config.CaseSnake {
		t.Errorf("LocalVariableCase: got %v/%v", v, ok)
	}
	if v, ok := rs.GlobalVariablePrefix.Get(); !ok || v != "g_" {
		t.Errorf("GlobalVariablePrefix: got %q/%v", v, ok)
	}
	if rs.LineEnding() != "\r\n" {
		t.Errorf("LineEnding: got %q", rs.LineEnding())
	}
}

func TestParsePartialFileKeepsDefaults(t *testing.T) {
	rs := parseConfig(t, `Indentation = "TwoSpaces"`)
	if rs.Indentation != config.IndentTwoSpaces {
		t.Errorf("Indentation: got %s", rs.Indentation)
	}
	if rs.MaxEmptyLines != 1 || rs.BracePlacement != config.BraceAfter {
		t.Error("unset keys must keep hard defaults")
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
		code diag.Code
	}{
		{"unknown key", `Identation = "Tab"`, diag.CfgUnknownKey},
		{"bad enum value", `Indentation = "ThreeSpaces"`, diag.CfgBadValue},
		{"bad case value", `VariableCase = "Kebab"`, diag.CfgBadValue},
		{"negative int", `MaxEmptyLines = -1`, diag.CfgBadValue},
		{"wrong type", `MaxEmptyLines = "two"`, diag.CfgWrongType},
		{"bad line ending", `ForceLineEnding = "\r"`, diag.CfgBadValue},
		{"nesting without indent", `PreprocessorIfCreatesNesting = true`, diag.CfgRuleConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			perr := parseError(t, tc.data)
			if perr.Code != tc.code {
				t.Errorf("code: got %s, want %s (%s)", perr.Code.ID(), tc.code.ID(), perr.Msg)
			}
		})
	}
}

func TestFingerprintChangesWithRules(t *testing.T) {
	a := config.Default()
	b := parseConfig(t, `MaxEmptyLines = 3`)
	c := parseConfig(t, `MaxEmptyLines = 3`)
	if a.Fingerprint() == b.Fingerprint() {
		t.Error("different rules must yield different fingerprints")
	}
	if b.Fingerprint() != c.Fingerprint() {
		t.Error("equal rules must yield equal fingerprints")
	}
}
