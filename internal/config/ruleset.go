// Package config holds the typed rule model, the TOML parser for
// shader-formatter.toml and the upward directory resolver.
package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
)

// RuleSet is the resolved configuration for one run. Immutable after
// resolution. Rules without hard defaults are optionals: unset means the
// corresponding check simply does not run.
type RuleSet struct {
	Indentation      Indentation
	BracePlacement   BracePlacement
	MaxEmptyLines    int
	SpacesInBrackets bool

	IndentPreprocessor           bool
	PreprocessorIfCreatesNesting bool

	RequireDocsOnFunctions bool
	RequireDocsOnStructs   bool
	RequireDocsOnFields    bool

	VariableCase      Opt[CaseStyle]
	FunctionCase      Opt[CaseStyle]
	StructCase        Opt[CaseStyle]
	LocalVariableCase Opt[CaseStyle]

	BoolPrefix           Opt[string]
	IntPrefix            Opt[string]
	FloatPrefix          Opt[string]
	GlobalVariablePrefix Opt[string]

	ForceLineEnding Opt[string]
}

// Default returns the rule set used when no configuration file exists.
func Default() RuleSet {
	return RuleSet{
		Indentation:      IndentFourSpaces,
		BracePlacement:   BraceAfter,
		MaxEmptyLines:    1,
		SpacesInBrackets: false,
	}
}

// LineEnding returns the line break the formatter emits. Mixed-ending inputs
// normalize to this; without ForceLineEnding the canonical ending is "\n".
func (rs RuleSet) LineEnding() string {
	return rs.ForceLineEnding.Or("\n")
}

// Fingerprint returns a stable digest of every rule value, used to key the
// result cache: a changed configuration must invalidate cached outcomes.
func (rs RuleSet) Fingerprint() string {
	h := sha256.New()
	fmt.Fprintf(h, "indent=%s;brace=%s;empty=%d;brackets=%t;",
		rs.Indentation, rs.BracePlacement, rs.MaxEmptyLines, rs.SpacesInBrackets)
	fmt.Fprintf(h, "pp=%t;ppnest=%t;",
		rs.IndentPreprocessor, rs.PreprocessorIfCreatesNesting)
	fmt.Fprintf(h, "docfn=%t;docstruct=%t;docfield=%t;",
		rs.RequireDocsOnFunctions, rs.RequireDocsOnStructs, rs.RequireDocsOnFields)
	writeOpt(h, "varcase", rs.VariableCase)
	writeOpt(h, "fncase", rs.FunctionCase)
	writeOpt(h, "structcase", rs.StructCase)
	writeOpt(h, "localcase", rs.LocalVariableCase)
	writeOpt(h, "boolpfx", rs.BoolPrefix)
	writeOpt(h, "intpfx", rs.IntPrefix)
	writeOpt(h, "floatpfx", rs.FloatPrefix)
	writeOpt(h, "globalpfx", rs.GlobalVariablePrefix)
	writeOpt(h, "eol", rs.ForceLineEnding)
	return hex.EncodeToString(h.Sum(nil))
}

func writeOpt[T any](w io.Writer, name string, o Opt[T]) {
	if v, ok := o.Get(); ok {
		fmt.Fprintf(w, "%s=%v;", name, v)
	} else {
		fmt.Fprintf(w, "%s=unset;", name)
	}
}

// Validate rejects contradictory rule combinations.
func (rs RuleSet) Validate() error {
	if rs.PreprocessorIfCreatesNesting && !rs.IndentPreprocessor {
		return fmt.Errorf("PreprocessorIfCreatesNesting requires IndentPreprocessor")
	}
	if eol, ok := rs.ForceLineEnding.Get(); ok && eol != "\n" && eol != "\r\n" {
		return fmt.Errorf("ForceLineEnding must be %q or %q", "\n", "\r\n")
	}
	if rs.MaxEmptyLines < 0 {
		return fmt.Errorf("MaxEmptyLines must be non-negative")
	}
	return nil
}
