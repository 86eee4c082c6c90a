package lexer

import (
	"shaderfmt/internal/diag"
	"shaderfmt/internal/token"
)

// scanComment handles all four comment forms. The cursor is positioned on the
// leading '/' with "//" or "/*" guaranteed ahead.
func (lx *Lexer) scanComment() (token.Token, error) {
	_, b1, _ := lx.cursor.Peek2()
	if b1 == '/' {
		return lx.scanLineComment(), nil
	}
	return lx.scanBlockComment()
}

func (lx *Lexer) scanLineComment() token.Token {
	m := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '/'

	kind := token.LineComment
	if lx.cursor.Peek() == '/' {
		kind = token.DocLine
	}
	for !lx.cursor.EOF() {
		if b := lx.cursor.Peek(); b == '\n' || b == '\r' {
			break
		}
		lx.cursor.Bump()
	}
	return lx.makeToken(kind, m)
}

// scanBlockComment consumes a nesting block comment. "/**" and "/*!" open a
// documentation block, except the degenerate "/**/".
func (lx *Lexer) scanBlockComment() (token.Token, error) {
	m := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'

	kind := token.BlockComment
	if b0, b1, ok := lx.cursor.Peek2(); ok && (b0 == '!' || (b0 == '*' && b1 != '/')) {
		kind = token.DocBlock
	}

	depth := 1
	for depth > 0 {
		if lx.cursor.EOF() {
			return lx.fatal(diag.LexUnterminatedBlockComment, m, "unterminated block comment")
		}
		switch {
		case lx.try2('*', '/'):
			depth--
		case lx.try2('/', '*'):
			depth++
		default:
			lx.cursor.Bump()
		}
	}
	return lx.makeToken(kind, m), nil
}
