// Package lexer turns shading-language source into a lossless token stream.
//
// Every byte of the input belongs to exactly one token, whitespace and
// comments included, so that the concatenation of token texts reproduces the
// file verbatim. Scanning aborts on the first construct that cannot be
// re-serialized safely (unterminated string or block comment, unknown byte).
package lexer

import (
	"fmt"

	"shaderfmt/internal/diag"
	"shaderfmt/internal/source"
	"shaderfmt/internal/token"
)

// Error is a fatal lexical error carrying its position.
type Error struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code.ID(), e.Msg)
}

// Lexer scans one file into tokens.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options

	// atLineStart is true when only horizontal whitespace has been seen
	// since the last line break. Directives are only recognized there.
	atLineStart bool
}

// New creates a lexer over the given file.
func New(f *source.File, opts Options) *Lexer {
	return &Lexer{
		file:        f,
		cursor:      NewCursor(f),
		opts:        opts,
		atLineStart: true,
	}
}

// ScanAll lexes the whole file. The returned slice ends with an EOF token.
// On a fatal error the tokens scanned so far are discarded and a *Error is
// returned; the same finding is also sent to the configured Reporter.
func ScanAll(f *source.File, opts Options) ([]token.Token, error) {
	lx := New(f, opts)
	var toks []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}

// Next returns the next token or a fatal *Error.
func (lx *Lexer) Next() (token.Token, error) {
	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.cursor.SpanFrom(lx.cursor.Mark()),
		}, nil
	}

	b := lx.cursor.Peek()
	switch {
	case b == '\n' || b == '\r':
		return lx.scanNewline(), nil
	case isHorizontalSpace(b):
		return lx.scanSpace(), nil
	case b == '#' && lx.atLineStart:
		return lx.scanDirective(), nil
	case b == '/':
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '/' && (b1 == '/' || b1 == '*') {
			return lx.scanComment()
		}
		return lx.scanOperator(), nil
	case b == '"':
		return lx.scanString()
	case isDec(b) || lx.isNumberAfterDot():
		return lx.scanNumber()
	case isIdentStartByte(b):
		return lx.scanIdent(), nil
	default:
		return lx.scanPunctOrOperator()
	}
}

func (lx *Lexer) scanNewline() token.Token {
	m := lx.cursor.Mark()
	if lx.cursor.Eat('\r') {
		lx.cursor.Eat('\n')
	} else {
		lx.cursor.Bump()
	}
	lx.atLineStart = true
	return lx.makeToken(token.Newline, m)
}

func (lx *Lexer) scanSpace() token.Token {
	m := lx.cursor.Mark()
	for !lx.cursor.EOF() && isHorizontalSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	// Horizontal whitespace keeps atLineStart as-is.
	return token.Token{
		Kind: token.Space,
		Span: lx.cursor.SpanFrom(m),
		Text: lx.textFrom(m),
	}
}

// makeToken builds a token from the mark and clears the line-start flag.
func (lx *Lexer) makeToken(kind token.Kind, m Mark) token.Token {
	if kind != token.Newline {
		lx.atLineStart = false
	}
	return token.Token{
		Kind: kind,
		Span: lx.cursor.SpanFrom(m),
		Text: lx.textFrom(m),
	}
}

func (lx *Lexer) textFrom(m Mark) string {
	return string(lx.file.Content[uint32(m):lx.cursor.Off])
}

// fatal reports the error and returns it; scanning must not continue after.
func (lx *Lexer) fatal(code diag.Code, m Mark, msg string) (token.Token, error) {
	sp := lx.cursor.SpanFrom(m)
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
	}
	return token.Token{}, &Error{Code: code, Span: sp, Msg: msg}
}
