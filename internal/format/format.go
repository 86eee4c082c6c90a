// Package format rewrites the whitespace of a token stream according to a
// rule set. It never alters, reorders or deletes a non-whitespace token's
// text; format-suppressed tokens are reproduced byte-for-byte.
package format

import (
	"strings"

	"shaderfmt/internal/config"
	"shaderfmt/internal/diag"
	"shaderfmt/internal/source"
	"shaderfmt/internal/token"
)

// Result is the reconstructed text plus whether any byte differs from the
// original source.
type Result struct {
	Text    string
	Changed bool
}

// Format runs the whitespace rewriter over toks. Findings it corrects are
// reported as warnings. Running Format on its own output is a no-op.
func Format(src *source.File, toks []token.Token, rules config.RuleSet, rep diag.Reporter) Result {
	e := &engine{
		rules: rules,
		rep:   rep,
		toks:  toks,
	}
	e.run()
	text := e.out.String()
	return Result{
		Text:    text,
		Changed: text != string(src.Content),
	}
}

type engine struct {
	rules config.RuleSet
	rep   diag.Reporter
	toks  []token.Token
	out   strings.Builder

	depth   int // brace nesting
	ppDepth int // preprocessor conditional nesting, when that rule is on

	// Whitespace is buffered, not emitted eagerly: line breaks and the
	// space run before the next token are decided when that token arrives.
	pendingNewlines int
	pendingNLSpan   source.Span
	pendingSpace    string
	leadText        string // original leading whitespace of the current line

	lineHasContent bool
	prevSig        *token.Token
	eolWarned      bool
}

func (e *engine) run() {
	for i := range e.toks {
		t := &e.toks[i]
		switch {
		case t.Kind == token.EOF:
			e.flushNewlines()
		case t.NoFormat:
			e.emitVerbatim(t)
		case t.Kind == token.Newline:
			if !e.eolWarned && t.Text != e.rules.LineEnding() {
				e.warn(diag.FmtLineEnding, t.Span, "line endings normalized")
				e.eolWarned = true
			}
			if e.pendingNewlines == 0 {
				e.pendingNLSpan = t.Span
			}
			e.pendingNewlines++
			e.pendingSpace = ""
			e.leadText = ""
		case t.Kind == token.Space:
			if e.pendingNewlines > 0 || !e.lineHasContent {
				e.leadText += t.Text
			} else {
				e.pendingSpace = t.Text
			}
		case t.Kind == token.Directive:
			e.emitDirective(t)
		case t.IsPunct("{"):
			e.emitOpenBrace(t)
		case t.IsPunct("}"):
			if e.depth > 0 {
				e.depth--
			}
			e.emitToken(t)
		default:
			e.emitToken(t)
		}
	}
}

// emitToken places t at the computed indentation when it opens a line, or
// after the decided separator when it continues one.
func (e *engine) emitToken(t *token.Token) {
	if e.pendingNewlines > 0 || !e.lineHasContent {
		e.flushNewlines()
		e.writeIndent(t, e.indentString())
	} else {
		e.out.WriteString(e.separatorFor(t))
	}
	e.out.WriteString(t.Text)
	e.lineHasContent = true
	e.pendingSpace = ""
	e.leadText = ""
	e.prevSig = t
}

// emitVerbatim reproduces a format-suppressed token byte-for-byte. Braces and
// conditionals inside the region still feed the nesting counters, so the code
// after the region indents correctly.
//
// The region's first token can open a line whose leading whitespace came from
// unsuppressed tokens; that line still gets the computed indentation. Line
// starts inside the region carry their own verbatim whitespace tokens and are
// recognizable by an empty newline buffer.
func (e *engine) emitVerbatim(t *token.Token) {
	opensLine := e.pendingNewlines > 0 || e.out.Len() == 0
	e.flushNewlines()
	switch {
	case opensLine && !e.lineHasContent:
		e.writeIndent(t, e.indentString())
	case e.pendingSpace != "" && e.lineHasContent:
		e.out.WriteString(e.pendingSpace)
	}
	e.pendingSpace = ""
	e.leadText = ""
	e.out.WriteString(t.Text)
	if len(t.Text) > 0 {
		e.lineHasContent = t.Text[len(t.Text)-1] != '\n'
	}
	e.trackNesting(t)
	if !t.IsBlank() {
		e.prevSig = t
	}
}

func (e *engine) trackNesting(t *token.Token) {
	switch {
	case t.IsPunct("{"):
		e.depth++
	case t.IsPunct("}"):
		if e.depth > 0 {
			e.depth--
		}
	case t.Kind == token.Directive && e.nestDirectives():
		switch {
		case t.IsCondDirective():
			e.ppDepth++
		case t.DirectiveName == "endif" && e.ppDepth > 0:
			e.ppDepth--
		}
	}
}

func (e *engine) nestDirectives() bool {
	return e.rules.IndentPreprocessor && e.rules.PreprocessorIfCreatesNesting
}

// emitOpenBrace applies the brace-placement rule when the brace follows a
// declaration header; initializer braces and the like pass through.
func (e *engine) emitOpenBrace(t *token.Token) {
	if e.headerish() {
		switch e.rules.BracePlacement {
		case config.BraceAfter:
			if e.pendingNewlines > 0 || e.pendingSpace != " " {
				e.warn(diag.FmtBracePlacement, t.Span, "opening brace moved onto the header line")
			}
			e.pendingNewlines = 0
			e.leadText = ""
			e.pendingSpace = " "
		case config.BraceBefore:
			if e.pendingNewlines != 1 {
				e.warn(diag.FmtBracePlacement, t.Span, "opening brace moved onto its own line")
				e.leadText = ""
			}
			if e.pendingNewlines == 0 {
				e.pendingNLSpan = t.Span
			}
			e.pendingNewlines = 1
			e.pendingSpace = ""
		}
	}
	e.emitToken(t)
	e.depth++
}

// headerish reports whether the previous significant token can end a
// declaration header. Comments and directives block joining by construction.
func (e *engine) headerish() bool {
	p := e.prevSig
	if p == nil {
		return false
	}
	switch p.Kind {
	case token.Ident, token.Keyword, token.TypeName:
		return true
	case token.Punct:
		return p.Text == ")" || p.Text == "]"
	}
	return false
}

func (e *engine) emitDirective(t *token.Token) {
	nest := e.nestDirectives()
	if nest && t.DirectiveName == "endif" && e.ppDepth > 0 {
		e.ppDepth--
	}
	e.flushNewlines()
	e.writeIndent(t, e.directiveIndent(t, nest))
	e.out.WriteString(t.Text)
	if nest && t.IsCondDirective() {
		e.ppDepth++
	}
	e.lineHasContent = true
	e.pendingSpace = ""
	e.leadText = ""
	e.prevSig = t
}

func (e *engine) directiveIndent(t *token.Token, nest bool) string {
	if !e.rules.IndentPreprocessor {
		return ""
	}
	level := e.depth + e.ppDepth
	if nest {
		switch t.DirectiveName {
		case "elif", "else":
			// Branch directives sit at the level of their own #if.
			level--
		}
	}
	return e.indentAt(level)
}

func (e *engine) indentString() string {
	return e.indentAt(e.depth + e.ppDepth)
}

func (e *engine) indentAt(level int) string {
	if level <= 0 {
		return ""
	}
	return strings.Repeat(e.rules.Indentation.Unit(), level)
}

// writeIndent emits the computed leading whitespace and reports when it
// differs from what the source had.
func (e *engine) writeIndent(t *token.Token, indent string) {
	if indent != e.leadText {
		code := diag.FmtIndentation
		msg := "indentation rewritten"
		if t.Kind == token.Directive && !e.rules.IndentPreprocessor {
			code = diag.FmtDirectiveIndent
			msg = "preprocessor directive moved to column zero"
		}
		e.warn(code, t.Span, msg)
	}
	e.out.WriteString(indent)
}

// separatorFor decides the space between the previous token and t on the
// same line. Outside bracket adjacency the original run is preserved.
func (e *engine) separatorFor(t *token.Token) string {
	sep := e.pendingSpace
	p := e.prevSig
	if p == nil {
		return sep
	}

	var want string
	switch {
	case p.IsPunct("(") || p.IsPunct("["):
		if (p.IsPunct("(") && t.IsPunct(")")) || (p.IsPunct("[") && t.IsPunct("]")) {
			want = "" // empty pair never gets inner spaces
		} else if e.rules.SpacesInBrackets {
			want = " "
		}
	case t.IsPunct(")") || t.IsPunct("]"):
		if e.rules.SpacesInBrackets {
			want = " "
		}
	default:
		return sep
	}

	if want != sep {
		e.warn(diag.FmtBracketSpacing, t.Span, "bracket spacing rewritten")
	}
	return want
}

func (e *engine) flushNewlines() {
	n := e.pendingNewlines
	if n == 0 {
		return
	}
	if limit := e.rules.MaxEmptyLines + 1; n > limit {
		e.warn(diag.FmtBlankLines, e.pendingNLSpan, "consecutive blank lines collapsed")
		n = limit
	}
	eol := e.rules.LineEnding()
	for ; n > 0; n-- {
		e.out.WriteString(eol)
	}
	e.pendingNewlines = 0
	e.lineHasContent = false
}

func (e *engine) warn(code diag.Code, sp source.Span, msg string) {
	if e.rep == nil {
		return
	}
	diag.ReportWarning(e.rep, code, sp, msg).Emit()
}
