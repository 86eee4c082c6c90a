package token

import (
	"shaderfmt/internal/dialect"
	"shaderfmt/internal/source"
)

// Token is a single classified lexical unit. Tokens are immutable after
// lexing except for the two suppression flags, which the suppression tracker
// sets exactly once before the formatter and checker run.
type Token struct {
	Kind Kind
	Span source.Span
	Text string

	// DirectiveName holds the keyword after '#' for Directive tokens
	// ("if", "ifdef", "endif", "include", ...). Empty otherwise.
	DirectiveName string

	// Type holds the category for TypeName tokens.
	Type dialect.TypeCategory

	// NoFormat marks the token as inside a format-suppressed region.
	NoFormat bool
	// NoCheck marks the token as inside a check-suppressed region or on a
	// line with a trailing NOLINT comment.
	NoCheck bool
}

// IsComment reports whether the token is any comment form.
func (t Token) IsComment() bool {
	switch t.Kind {
	case LineComment, BlockComment, DocLine, DocBlock:
		return true
	default:
		return false
	}
}

// IsBlank reports whether the token is horizontal or vertical whitespace.
func (t Token) IsBlank() bool {
	return t.Kind == Space || t.Kind == Newline
}

// IsPunct reports whether the token is the given punctuation text.
func (t Token) IsPunct(text string) bool {
	return t.Kind == Punct && t.Text == text
}

// IsCondDirective reports whether the token opens a preprocessor conditional
// (#if, #ifdef, #ifndef).
func (t Token) IsCondDirective() bool {
	if t.Kind != Directive {
		return false
	}
	switch t.DirectiveName {
	case "if", "ifdef", "ifndef":
		return true
	default:
		return false
	}
}
