package diag

import (
	"fmt"
)

// Code identifies the rule or failure behind a diagnostic. Codes are grouped
// in ranges of a thousand per subsystem; ID() renders the stable public form.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical errors. All of these are fatal for the file: source that
	// cannot be re-serialized safely must not be partially formatted.
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Configuration file errors, fatal before any file is touched.
	CfgUnknownKey   Code = 2001
	CfgBadValue     Code = 2002
	CfgWrongType    Code = 2003
	CfgRuleConflict Code = 2004

	// Suppression marker findings (warnings).
	SupUnterminatedRegion Code = 3001
	SupUnmatchedEnd       Code = 3002

	// Formatting findings, warning severity: corrected in the output.
	FmtIndentation     Code = 4001
	FmtBracePlacement  Code = 4002
	FmtBlankLines      Code = 4003
	FmtBracketSpacing  Code = 4004
	FmtDirectiveIndent Code = 4005
	FmtLineEnding      Code = 4006

	// Naming findings, error severity: never auto-corrected.
	NamCase         Code = 5001
	NamTypePrefix   Code = 5002
	NamGlobalPrefix Code = 5003

	// Documentation findings, error severity.
	DocMissing       Code = 6001
	DocParamMissing  Code = 6002
	DocParamUnknown  Code = 6003
	DocReturnMissing Code = 6004
	DocReturnOnVoid  Code = 6005

	// I/O errors.
	IOLoadFileError Code = 7001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed numeric literal",
	CfgUnknownKey:               "Unknown configuration key",
	CfgBadValue:                 "Configuration value outside the allowed set",
	CfgWrongType:                "Configuration value has the wrong type",
	CfgRuleConflict:             "Contradictory configuration rules",
	SupUnterminatedRegion:       "Suppression region is never closed",
	SupUnmatchedEnd:             "Suppression end marker without a matching begin",
	FmtIndentation:              "Indentation rewritten",
	FmtBracePlacement:           "Brace placement rewritten",
	FmtBlankLines:               "Consecutive blank lines collapsed",
	FmtBracketSpacing:           "Bracket spacing rewritten",
	FmtDirectiveIndent:          "Preprocessor directive indentation rewritten",
	FmtLineEnding:               "Line endings normalized",
	NamCase:                     "Name does not match the configured case style",
	NamTypePrefix:               "Name is missing the configured type prefix",
	NamGlobalPrefix:             "Global name is missing the configured prefix",
	DocMissing:                  "Missing documentation comment",
	DocParamMissing:             "Missing @param documentation",
	DocParamUnknown:             "@param does not match any parameter",
	DocReturnMissing:            "Missing @return documentation",
	DocReturnOnVoid:             "@return documented on a void function",
	IOLoadFileError:             "I/O load file error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("CFG%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SUP%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("FMT%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("NAM%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("DOC%04d", ic)
	case ic >= 7000 && ic < 8000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
