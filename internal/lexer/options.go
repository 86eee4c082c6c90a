package lexer

import (
	"shaderfmt/internal/diag"
	"shaderfmt/internal/dialect"
)

// Options configure a Lexer instance.
type Options struct {
	// Dialect selects the keyword and type tables.
	Dialect dialect.Kind
	// Reporter receives fatal lexical diagnostics before scanning aborts.
	// May be nil.
	Reporter diag.Reporter
}
