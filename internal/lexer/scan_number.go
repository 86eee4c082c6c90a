package lexer

import (
	"shaderfmt/internal/diag"
	"shaderfmt/internal/token"
)

// scanNumber consumes an integer or floating-point literal, including the
// ".5" form and the usual HLSL/GLSL suffixes (f, h, u, l and their uppers).
func (lx *Lexer) scanNumber() (token.Token, error) {
	m := lx.cursor.Mark()

	if lx.try2('0', 'x') || lx.try2('0', 'X') {
		if !isHex(lx.cursor.Peek()) {
			return lx.fatal(diag.LexBadNumber, m, "hex literal needs at least one digit")
		}
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		lx.eatNumberSuffix()
		return lx.makeToken(token.Number, m), nil
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.isNumberAfterDot() || (lx.cursor.Peek() == '.' && uint32(m) != lx.cursor.Off) {
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			return lx.fatal(diag.LexBadNumber, m, "exponent needs at least one digit")
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	lx.eatNumberSuffix()
	return lx.makeToken(token.Number, m), nil
}

func (lx *Lexer) eatNumberSuffix() {
	for {
		switch lx.cursor.Peek() {
		case 'f', 'F', 'h', 'H', 'u', 'U', 'l', 'L':
			lx.cursor.Bump()
		default:
			return
		}
	}
}
