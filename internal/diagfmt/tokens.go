package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"shaderfmt/internal/source"
	"shaderfmt/internal/token"
)

type TokenOutput struct {
	Kind      string      `json:"kind"`
	Text      string      `json:"text,omitempty"`
	Span      source.Span `json:"span"`
	Directive string      `json:"directive,omitempty"`
	NoFormat  bool        `json:"no_format,omitempty"`
	NoCheck   bool        `json:"no_check,omitempty"`
}

// FormatTokensPretty writes tokens in a human-readable list.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-13s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)
		if tok.DirectiveName != "" {
			fmt.Fprintf(w, " (#%s)", tok.DirectiveName)
		}
		if tok.NoFormat {
			fmt.Fprint(w, " [noformat]")
		}
		if tok.NoCheck {
			fmt.Fprint(w, " [nocheck]")
		}
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes tokens as indented JSON.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	var output []TokenOutput
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:      tok.Kind.String(),
			Text:      tok.Text,
			Span:      tok.Span,
			Directive: tok.DirectiveName,
			NoFormat:  tok.NoFormat,
			NoCheck:   tok.NoCheck,
		})
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
