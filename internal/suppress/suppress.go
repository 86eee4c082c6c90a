// Package suppress annotates the token stream with suppression flags from
// inline comment markers. It is the only place the two token flags are set;
// the formatter and checker never mutate tokens.
package suppress

import (
	"shaderfmt/internal/diag"
	"shaderfmt/internal/source"
	"shaderfmt/internal/token"
)

// Marker words recognized inside any comment form.
const (
	markNoFormatBegin = "NOFORMATBEGIN"
	markNoFormatEnd   = "NOFORMATEND"
	markNoLintBegin   = "NOLINTBEGIN"
	markNoLintEnd     = "NOLINTEND"
	markNoLint        = "NOLINT"
)

// Apply walks the tokens once, in order, and sets NoFormat/NoCheck.
//
// NOFORMATBEGIN/NOFORMATEND delimit a format-suppressed region and
// NOLINTBEGIN/NOLINTEND a check-suppressed one; the marker comments belong
// to their region. A trailing NOLINT suppresses checks for every token on
// its line. A region left open at end of input is suppressed to the end and
// reported as a warning; an end marker without a begin is reported and
// otherwise ignored.
func Apply(toks []token.Token, r diag.Reporter) {
	var (
		inFormat, inCheck     bool
		formatSpan, checkSpan source.Span
		lineNoLint            bool
		lineStart             int
	)

	for i := range toks {
		t := &toks[i]

		if t.Kind == token.Newline {
			lineStart = i + 1
			lineNoLint = false
			if inFormat {
				t.NoFormat = true
			}
			if inCheck {
				t.NoCheck = true
			}
			continue
		}

		if t.IsComment() {
			switch {
			case hasMarker(t.Text, markNoFormatBegin):
				inFormat = true
				formatSpan = t.Span
			case hasMarker(t.Text, markNoFormatEnd):
				if !inFormat {
					warnUnmatched(r, t.Span, markNoFormatEnd)
				}
				t.NoFormat = true
				inFormat = false
			case hasMarker(t.Text, markNoLintBegin):
				inCheck = true
				checkSpan = t.Span
			case hasMarker(t.Text, markNoLintEnd):
				if !inCheck {
					warnUnmatched(r, t.Span, markNoLintEnd)
				}
				t.NoCheck = true
				inCheck = false
			case hasMarker(t.Text, markNoLint):
				for j := lineStart; j < i; j++ {
					toks[j].NoCheck = true
				}
				lineNoLint = true
			}
		}

		if inFormat {
			t.NoFormat = true
		}
		if inCheck || lineNoLint {
			t.NoCheck = true
		}
	}

	if inFormat {
		warnUnterminated(r, formatSpan, markNoFormatBegin)
	}
	if inCheck {
		warnUnterminated(r, checkSpan, markNoLintBegin)
	}
}

func warnUnterminated(r diag.Reporter, sp source.Span, marker string) {
	if r == nil {
		return
	}
	diag.ReportWarning(r, diag.SupUnterminatedRegion, sp,
		marker+" region is never closed, suppressed to end of file").Emit()
}

func warnUnmatched(r diag.Reporter, sp source.Span, marker string) {
	if r == nil {
		return
	}
	diag.ReportWarning(r, diag.SupUnmatchedEnd, sp,
		marker+" without a matching begin marker").Emit()
}

// hasMarker reports whether text contains word with non-identifier bytes on
// both sides, so that NOLINT does not match inside NOLINTBEGIN.
func hasMarker(text, word string) bool {
	for i := 0; i+len(word) <= len(text); i++ {
		if text[i:i+len(word)] != word {
			continue
		}
		if i > 0 && isWordByte(text[i-1]) {
			continue
		}
		if end := i + len(word); end < len(text) && isWordByte(text[end]) {
			continue
		}
		return true
	}
	return false
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
