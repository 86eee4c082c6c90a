package driver

import (
	"shaderfmt/internal/diag"
	"shaderfmt/internal/dialect"
	"shaderfmt/internal/lexer"
	"shaderfmt/internal/source"
	"shaderfmt/internal/suppress"
	"shaderfmt/internal/token"
)

// TokenizeFile lexes a single file for inspection. Suppression flags are
// applied so the dump shows what the formatter and checker would see. On a
// fatal lexical error the bag carries the finding and tokens are nil.
func TokenizeFile(path string, maxDiagnostics int) (*source.FileSet, []token.Token, *diag.Bag, error) {
	fileSet := source.NewFileSet()
	bag := diag.NewBag(maxDiagnostics)

	fileID, err := fileSet.Load(path)
	if err != nil {
		bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: source.NoFile},
			"failed to load file: "+err.Error()))
		return fileSet, nil, bag, err
	}
	file := fileSet.Get(fileID)

	rep := diag.BagReporter{Bag: bag}
	toks, err := lexer.ScanAll(file, lexer.Options{
		Dialect:  dialect.FromPath(path),
		Reporter: rep,
	})
	if err != nil {
		return fileSet, nil, bag, err
	}

	suppress.Apply(toks, rep)
	return fileSet, toks, bag, nil
}
