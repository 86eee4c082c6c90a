package lexer

import (
	"shaderfmt/internal/diag"
	"shaderfmt/internal/token"
)

// scanString consumes a double-quoted string literal. Escapes pass through
// unvalidated; the formatter never rewrites literal contents. A line break or
// EOF before the closing quote is fatal.
func (lx *Lexer) scanString() (token.Token, error) {
	m := lx.cursor.Mark()
	lx.cursor.Bump() // '"'

	for {
		if lx.cursor.EOF() {
			return lx.fatal(diag.LexUnterminatedString, m, "unterminated string literal")
		}
		b := lx.cursor.Peek()
		switch b {
		case '\n', '\r':
			return lx.fatal(diag.LexUnterminatedString, m, "unterminated string literal")
		case '\\':
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
		case '"':
			lx.cursor.Bump()
			return lx.makeToken(token.String, m), nil
		default:
			lx.cursor.Bump()
		}
	}
}
