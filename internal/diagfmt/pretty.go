package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"shaderfmt/internal/diag"
	"shaderfmt/internal/source"

	"github.com/fatih/color"
)

// Pretty renders diagnostics for humans. It walks bag.Items() (bag.Sort() is
// expected beforehand) and prints, per diagnostic:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// followed by the source line with a ^~~~ underline over the span, then the
// notes in the same shape when enabled.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printHeading(w, fs, opts, d.Primary, d.Severity.String(), d.Code.ID(), d.Message, d.Severity)
		printContext(w, fs, d.Primary)
		if opts.ShowNotes {
			for _, note := range d.Notes {
				printHeading(w, fs, opts, note.Span, "NOTE", "", note.Msg, diag.SevInfo)
				printContext(w, fs, note.Span)
			}
		}
	}
}

func printHeading(w io.Writer, fs *source.FileSet, opts PrettyOpts, sp source.Span, sev, code, msg string, level diag.Severity) {
	label := sev
	if code != "" {
		label += " " + code
	}
	if opts.Color {
		label = severityColor(level).Sprint(label)
	}

	// Spans without a loaded file (load failures) get no position.
	if !fs.Has(sp.File) {
		fmt.Fprintf(w, "%s: %s\n", label, msg)
		return
	}
	f := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)
	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", formatPath(f, fs, opts.PathMode), start.Line, start.Col, label, msg)
}

// printContext prints the first line of the span with a caret underline.
func printContext(w io.Writer, fs *source.FileSet, sp source.Span) {
	if !fs.Has(sp.File) {
		return
	}
	f := fs.Get(sp.File)
	start, end := fs.Resolve(sp)
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	// Tabs are kept in the padding so the caret stays aligned.
	var pad strings.Builder
	for i := 0; i < int(start.Col)-1 && i < len(line); i++ {
		if line[i] == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
	}
	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = int(end.Col - start.Col)
	}
	fmt.Fprintf(w, "  %s^%s\n", pad.String(), strings.Repeat("~", width-1))
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}
