package config

// Indentation selects the per-level indentation unit.
type Indentation uint8

const (
	// IndentFourSpaces is the default.
	IndentFourSpaces Indentation = iota
	IndentTwoSpaces
	IndentTab
)

// Unit returns the literal text emitted per nesting level.
func (i Indentation) Unit() string {
	switch i {
	case IndentTab:
		return "\t"
	case IndentTwoSpaces:
		return "  "
	default:
		return "    "
	}
}

func (i Indentation) String() string {
	switch i {
	case IndentTab:
		return "Tab"
	case IndentTwoSpaces:
		return "TwoSpaces"
	default:
		return "FourSpaces"
	}
}

func parseIndentation(s string) (Indentation, bool) {
	switch s {
	case "Tab":
		return IndentTab, true
	case "TwoSpaces":
		return IndentTwoSpaces, true
	case "FourSpaces":
		return IndentFourSpaces, true
	}
	return 0, false
}

// BracePlacement controls the line break around an opening brace that
// follows a declaration header.
type BracePlacement uint8

const (
	// BraceAfter keeps the brace on the header line: `struct Foo {`.
	BraceAfter BracePlacement = iota
	// BraceBefore moves the brace onto its own line.
	BraceBefore
)

func (b BracePlacement) String() string {
	if b == BraceBefore {
		return "Before"
	}
	return "After"
}

func parseBracePlacement(s string) (BracePlacement, bool) {
	switch s {
	case "After":
		return BraceAfter, true
	case "Before":
		return BraceBefore, true
	}
	return 0, false
}

// CaseStyle is one of the four deterministic naming conventions.
type CaseStyle uint8

const (
	CaseCamel CaseStyle = iota
	CasePascal
	CaseSnake
	CaseUpperSnake
)

func (c CaseStyle) String() string {
	switch c {
	case CaseCamel:
		return "Camel"
	case CasePascal:
		return "Pascal"
	case CaseSnake:
		return "Snake"
	case CaseUpperSnake:
		return "UpperSnake"
	}
	return "Unknown"
}

func parseCaseStyle(s string) (CaseStyle, bool) {
	switch s {
	case "Camel":
		return CaseCamel, true
	case "Pascal":
		return CasePascal, true
	case "Snake":
		return CaseSnake, true
	case "UpperSnake":
		return CaseUpperSnake, true
	}
	return 0, false
}
