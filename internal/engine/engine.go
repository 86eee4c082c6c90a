// Package engine runs the full per-file pipeline: lex, suppression marking,
// formatting and checking, and folds the pieces into one outcome.
package engine

import (
	"shaderfmt/internal/check"
	"shaderfmt/internal/config"
	"shaderfmt/internal/diag"
	"shaderfmt/internal/dialect"
	"shaderfmt/internal/format"
	"shaderfmt/internal/lexer"
	"shaderfmt/internal/source"
	"shaderfmt/internal/suppress"
)

// Status classifies the outcome of formatting one file.
type Status uint8

const (
	// StatusClean means the output is byte-identical to the input and no
	// rule was violated.
	StatusClean Status = iota
	// StatusFormatted means whitespace was rewritten; the warnings in the
	// bag describe what changed.
	StatusFormatted
	// StatusManualFix means at least one error-level finding exists; the
	// file must not be overwritten.
	StatusManualFix
)

func (s Status) String() string {
	switch s {
	case StatusClean:
		return "clean"
	case StatusFormatted:
		return "formatted"
	case StatusManualFix:
		return "manual-fix-required"
	}
	return "unknown"
}

// Result is the outcome for one file.
type Result struct {
	// Output is the reconstructed text, valid for every status.
	Output string
	// Changed reports whether Output differs from the input.
	Changed bool
	Status  Status
	Bag     *diag.Bag
}

// Run processes one loaded file under the given rules. A fatal lexical
// error aborts the run and is returned as a *lexer.Error; the partial result
// still carries the bag with the reported finding.
func Run(file *source.File, rules config.RuleSet, d dialect.Kind, maxDiagnostics int) (*Result, error) {
	bag := diag.NewBag(maxDiagnostics)
	rep := diag.BagReporter{Bag: bag}

	toks, err := lexer.ScanAll(file, lexer.Options{Dialect: d, Reporter: rep})
	if err != nil {
		return &Result{Status: StatusManualFix, Bag: bag}, err
	}

	suppress.Apply(toks, rep)
	res := format.Format(file, toks, rules, rep)
	check.Run(toks, rules, d, rep)

	bag.Dedup()
	bag.Sort()

	status := StatusClean
	switch {
	case bag.HasErrors():
		status = StatusManualFix
	case res.Changed:
		status = StatusFormatted
	}
	return &Result{
		Output:  res.Text,
		Changed: res.Changed,
		Status:  status,
		Bag:     bag,
	}, nil
}
