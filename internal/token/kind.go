package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Keyword represents a language keyword of the active dialect.
	Keyword
	// TypeName represents a built-in type name of the active dialect.
	TypeName
	// Number represents an integer or floating-point literal.
	Number
	// String represents a double-quoted string literal.
	String
	// Punct represents structural punctuation: ()[]{};,.:
	Punct
	// Operator represents any other operator character run.
	Operator

	// LineComment represents a `//` comment up to (not including) the line break.
	LineComment
	// BlockComment represents a `/* ... */` comment, nesting allowed.
	BlockComment
	// DocLine represents a `///` documentation comment line.
	DocLine
	// DocBlock represents a `/** ... */` or `/*! ... */` documentation block.
	DocBlock

	// Directive represents a whole preprocessor line starting with `#`.
	Directive

	// Space represents a run of spaces and tabs.
	Space
	// Newline represents a single line break: "\n", "\r\n" or a bare "\r".
	Newline
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case Keyword:
		return "Keyword"
	case TypeName:
		return "TypeName"
	case Number:
		return "Number"
	case String:
		return "String"
	case Punct:
		return "Punct"
	case Operator:
		return "Operator"
	case LineComment:
		return "LineComment"
	case BlockComment:
		return "BlockComment"
	case DocLine:
		return "DocLine"
	case DocBlock:
		return "DocBlock"
	case Directive:
		return "Directive"
	case Space:
		return "Space"
	case Newline:
		return "Newline"
	}
	return "Unknown"
}
