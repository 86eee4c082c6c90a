package lexer

import (
	"fmt"
	"strings"

	"shaderfmt/internal/diag"
	"shaderfmt/internal/token"
)

const punctBytes = "()[]{};,.:"

// scanPunctOrOperator dispatches the remaining single-byte starters.
func (lx *Lexer) scanPunctOrOperator() (token.Token, error) {
	b := lx.cursor.Peek()
	if strings.IndexByte(punctBytes, b) >= 0 {
		m := lx.cursor.Mark()
		lx.cursor.Bump()
		return lx.makeToken(token.Punct, m), nil
	}
	// '#' outside line-start position is the token-pasting operator.
	if strings.IndexByte("+-*/%<>=!&|^~?#", b) >= 0 {
		return lx.scanOperator(), nil
	}
	m := lx.cursor.Mark()
	lx.cursor.Bump()
	return lx.fatal(diag.LexUnknownChar, m, fmt.Sprintf("unknown character %q", rune(b)))
}

// scanOperator consumes the longest operator at the cursor. Greedy matching,
// longest form first.
func (lx *Lexer) scanOperator() token.Token {
	m := lx.cursor.Mark()
	switch {
	case lx.try3('<', '<', '='), lx.try3('>', '>', '='):
	case lx.try2('<', '<'), lx.try2('>', '>'),
		lx.try2('=', '='), lx.try2('!', '='),
		lx.try2('<', '='), lx.try2('>', '='),
		lx.try2('&', '&'), lx.try2('|', '|'),
		lx.try2('+', '+'), lx.try2('-', '-'),
		lx.try2('+', '='), lx.try2('-', '='),
		lx.try2('*', '='), lx.try2('/', '='),
		lx.try2('%', '='), lx.try2('&', '='),
		lx.try2('|', '='), lx.try2('^', '='):
	default:
		lx.cursor.Bump()
	}
	return lx.makeToken(token.Operator, m)
}
