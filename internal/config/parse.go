package config

import (
	"fmt"
	"strings"

	"shaderfmt/internal/diag"

	"github.com/BurntSushi/toml"
)

// ParseError is a fatal configuration failure. A malformed rule file aborts
// the run: silently ignoring it would format against unintended rules.
type ParseError struct {
	Path string
	Code diag.Code
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Path, e.Code.ID(), e.Msg)
}

// rawRules mirrors the TOML file with pointer fields so that an absent key
// is distinguishable from an explicit zero value.
type rawRules struct {
	Indentation        *string `toml:"Indentation"`
	NewLineOnOpenBrace *string `toml:"NewLineOnOpenBrace"`
	MaxEmptyLines      *int64  `toml:"MaxEmptyLines"`
	SpacesInBrackets   *bool   `toml:"SpacesInBrackets"`

	IndentPreprocessor           *bool `toml:"IndentPreprocessor"`
	PreprocessorIfCreatesNesting *bool `toml:"PreprocessorIfCreatesNesting"`

	RequireDocsOnFunctions *bool `toml:"RequireDocsOnFunctions"`
	RequireDocsOnStructs   *bool `toml:"RequireDocsOnStructs"`
	RequireDocsOnFields    *bool `toml:"RequireDocsOnFields"`

	VariableCase      *string `toml:"VariableCase"`
	FunctionCase      *string `toml:"FunctionCase"`
	StructCase        *string `toml:"StructCase"`
	LocalVariableCase *string `toml:"LocalVariableCase"`

	BoolPrefix           *string `toml:"BoolPrefix"`
	IntPrefix            *string `toml:"IntPrefix"`
	FloatPrefix          *string `toml:"FloatPrefix"`
	GlobalVariablePrefix *string `toml:"GlobalVariablePrefix"`

	ForceLineEnding *string `toml:"ForceLineEnding"`
}

// Parse decodes the rule file at path (content already read) into a RuleSet.
// Unknown keys, values outside the enumerated sets and wrong value types are
// all fatal.
func Parse(data []byte, path string) (RuleSet, error) {
	var raw rawRules
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return RuleSet{}, &ParseError{Path: path, Code: diag.CfgWrongType, Msg: err.Error()}
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return RuleSet{}, &ParseError{
			Path: path,
			Code: diag.CfgUnknownKey,
			Msg:  "unknown key(s): " + strings.Join(keys, ", "),
		}
	}

	rs := Default()

	if raw.Indentation != nil {
		v, ok := parseIndentation(*raw.Indentation)
		if !ok {
			return RuleSet{}, badValue(path, "Indentation", *raw.Indentation, "Tab, TwoSpaces, FourSpaces")
		}
		rs.Indentation = v
	}
	if raw.NewLineOnOpenBrace != nil {
		v, ok := parseBracePlacement(*raw.NewLineOnOpenBrace)
		if !ok {
			return RuleSet{}, badValue(path, "NewLineOnOpenBrace", *raw.NewLineOnOpenBrace, "After, Before")
		}
		rs.BracePlacement = v
	}
	if raw.MaxEmptyLines != nil {
		if *raw.MaxEmptyLines < 0 {
			return RuleSet{}, badValue(path, "MaxEmptyLines", fmt.Sprint(*raw.MaxEmptyLines), "a non-negative integer")
		}
		rs.MaxEmptyLines = int(*raw.MaxEmptyLines)
	}
	if raw.SpacesInBrackets != nil {
		rs.SpacesInBrackets = *raw.SpacesInBrackets
	}
	if raw.IndentPreprocessor != nil {
		rs.IndentPreprocessor = *raw.IndentPreprocessor
	}
	if raw.PreprocessorIfCreatesNesting != nil {
		rs.PreprocessorIfCreatesNesting = *raw.PreprocessorIfCreatesNesting
	}
	if raw.RequireDocsOnFunctions != nil {
		rs.RequireDocsOnFunctions = *raw.RequireDocsOnFunctions
	}
	if raw.RequireDocsOnStructs != nil {
		rs.RequireDocsOnStructs = *raw.RequireDocsOnStructs
	}
	if raw.RequireDocsOnFields != nil {
		rs.RequireDocsOnFields = *raw.RequireDocsOnFields
	}

	if err := setCase(&rs.VariableCase, raw.VariableCase, path, "VariableCase"); err != nil {
		return RuleSet{}, err
	}
	if err := setCase(&rs.FunctionCase, raw.FunctionCase, path, "FunctionCase"); err != nil {
		return RuleSet{}, err
	}
	if err := setCase(&rs.StructCase, raw.StructCase, path, "StructCase"); err != nil {
		return RuleSet{}, err
	}
	if err := setCase(&rs.LocalVariableCase, raw.LocalVariableCase, path, "LocalVariableCase"); err != nil {
		return RuleSet{}, err
	}

	if raw.BoolPrefix != nil {
		rs.BoolPrefix = Some(*raw.BoolPrefix)
	}
	if raw.IntPrefix != nil {
		rs.IntPrefix = Some(*raw.IntPrefix)
	}
	if raw.FloatPrefix != nil {
		rs.FloatPrefix = Some(*raw.FloatPrefix)
	}
	if raw.GlobalVariablePrefix != nil {
		rs.GlobalVariablePrefix = Some(*raw.GlobalVariablePrefix)
	}
	if raw.ForceLineEnding != nil {
		if v := *raw.ForceLineEnding; v != "\n" && v != "\r\n" {
			return RuleSet{}, badValue(path, "ForceLineEnding", v, `"\n", "\r\n"`)
		}
		rs.ForceLineEnding = Some(*raw.ForceLineEnding)
	}

	if err := rs.Validate(); err != nil {
		return RuleSet{}, &ParseError{Path: path, Code: diag.CfgRuleConflict, Msg: err.Error()}
	}
	return rs, nil
}

func setCase(dst *Opt[CaseStyle], raw *string, path, key string) error {
	if raw == nil {
		return nil
	}
	v, ok := parseCaseStyle(*raw)
	if !ok {
		return badValue(path, key, *raw, "Camel, Pascal, Snake, UpperSnake")
	}
	*dst = Some(v)
	return nil
}

func badValue(path, key, got, want string) error {
	return &ParseError{
		Path: path,
		Code: diag.CfgBadValue,
		Msg:  fmt.Sprintf("%s: invalid value %q, expected one of: %s", key, got, want),
	}
}
