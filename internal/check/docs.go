package check

import (
	"strings"

	"shaderfmt/internal/source"
	"shaderfmt/internal/token"
)

// DocComment is the parsed documentation run found directly above a
// declaration, with no blank line in between.
type DocComment struct {
	Present   bool
	Span      source.Span
	Params    []string
	HasReturn bool
}

// docBefore walks backward from the declaration's first token (type or
// struct-intro keyword), over qualifier keywords, and collects the adjacent
// comment run. A documentation block counts on its own; `//` comments count
// as a contiguous run of full-comment lines.
func docBefore(toks []token.Token, idx int) DocComment {
	i := idx - 1
	skipSpace := func() {
		for i >= 0 && toks[i].Kind == token.Space {
			i--
		}
	}

	skipSpace()
	for i >= 0 && toks[i].Kind == token.Keyword {
		i--
		skipSpace()
	}
	if i < 0 || toks[i].Kind != token.Newline {
		return DocComment{}
	}
	i--
	skipSpace()
	if i < 0 {
		return DocComment{}
	}

	switch toks[i].Kind {
	case token.DocBlock:
		d := parseDocText(toks[i].Text)
		d.Present = true
		d.Span = toks[i].Span
		return d
	case token.DocLine, token.LineComment:
		span := toks[i].Span
		var parts []string
		for {
			parts = append([]string{toks[i].Text}, parts...)
			span.Start = toks[i].Span.Start
			j := i - 1
			for j >= 0 && toks[j].Kind == token.Space {
				j--
			}
			if j < 0 || toks[j].Kind != token.Newline {
				break
			}
			j--
			for j >= 0 && toks[j].Kind == token.Space {
				j--
			}
			if j >= 0 && (toks[j].Kind == token.DocLine || toks[j].Kind == token.LineComment) {
				i = j
				continue
			}
			break
		}
		d := parseDocText(strings.Join(parts, "\n"))
		d.Present = true
		d.Span = span
		return d
	}
	return DocComment{}
}

// parseDocText extracts @param names and @return presence from raw comment
// text, decoration included.
func parseDocText(text string) DocComment {
	var d DocComment
	words := strings.Fields(text)
	for i := 0; i < len(words); i++ {
		switch strings.Trim(words[i], "*/") {
		case "@param":
			if i+1 < len(words) {
				if name := identPrefix(words[i+1]); name != "" {
					d.Params = append(d.Params, name)
				}
			}
		case "@return", "@returns":
			d.HasReturn = true
		}
	}
	return d
}

// identPrefix returns the leading identifier characters of w.
func identPrefix(w string) string {
	for i := 0; i < len(w); i++ {
		b := w[i]
		if b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') {
			continue
		}
		return w[:i]
	}
	return w
}
