package lexer

import (
	"shaderfmt/internal/token"
)

// scanDirective consumes a whole preprocessor line starting at '#'. A
// backslash immediately before the line break continues the directive onto
// the next line; the continuation bytes stay inside the token.
func (lx *Lexer) scanDirective() token.Token {
	m := lx.cursor.Mark()
	lx.cursor.Bump() // '#'

	for !lx.cursor.EOF() && isHorizontalSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	nameStart := lx.cursor.Off
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	name := string(lx.file.Content[nameStart:lx.cursor.Off])

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\\' {
			if lx.eatContinuation() {
				continue
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' || b == '\r' {
			break
		}
		lx.cursor.Bump()
	}

	tok := lx.makeToken(token.Directive, m)
	tok.DirectiveName = name
	return tok
}

// eatContinuation consumes "\\\n" or "\\\r\n" and reports whether it did.
func (lx *Lexer) eatContinuation() bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '\\' {
		return false
	}
	switch b1 {
	case '\n':
		lx.cursor.Bump()
		lx.cursor.Bump()
		return true
	case '\r':
		lx.cursor.Bump()
		lx.cursor.Bump()
		lx.cursor.Eat('\n')
		return true
	}
	return false
}
