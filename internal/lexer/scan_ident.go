package lexer

import (
	"shaderfmt/internal/token"
)

// scanIdent consumes an identifier and classifies it against the active
// dialect's keyword and type tables.
func (lx *Lexer) scanIdent() token.Token {
	m := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	tok := lx.makeToken(token.Ident, m)

	if lx.opts.Dialect.IsKeyword(tok.Text) {
		tok.Kind = token.Keyword
		return tok
	}
	if cat, ok := lx.opts.Dialect.TypeCategory(tok.Text); ok {
		tok.Kind = token.TypeName
		tok.Type = cat
		return tok
	}
	return tok
}
