// Package driver wires the per-file engine to the filesystem: path
// collection, per-directory rule resolution, parallel processing, write-back
// and the clean-result disk cache.
package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"shaderfmt/internal/config"
	"shaderfmt/internal/diag"
	"shaderfmt/internal/dialect"
	"shaderfmt/internal/engine"
	"shaderfmt/internal/source"
)

// FormatOptions configures a formatting run over paths.
type FormatOptions struct {
	// Check reports what would change without writing anything.
	Check bool
	// Stdout returns the formatted content in the results instead of
	// touching files on disk.
	Stdout bool
	// MaxDiagnostics caps the bag of each file.
	MaxDiagnostics int
	// Jobs limits parallelism; <= 0 means GOMAXPROCS.
	Jobs int
	// Resolver supplies the rule set per directory. Required.
	Resolver *config.Resolver
	// Cache, when non-nil, skips files with a recorded clean outcome for
	// the same content and rules.
	Cache *DiskCache
}

// FormatResult captures the outcome for a single file.
type FormatResult struct {
	Path    string
	FileID  source.FileID
	Status  engine.Status
	Changed bool
	// Output is only populated in Stdout mode.
	Output []byte
	Bag    *diag.Bag
	// CacheHit marks files skipped via the disk cache.
	CacheHit bool
	Err      error
}

// FormatPaths formats the provided files or directories (recursively
// collecting shader files). Files are processed in parallel but results keep
// the sorted path order. Rewritten text is written back only when the
// outcome allows it and neither Check nor Stdout is set.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) (*source.FileSet, []FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if opts.Resolver == nil {
		return nil, nil, errors.New("format: missing rule resolver")
	}

	files, err := collectSourceFiles(ctx, paths)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return nil, nil, errors.New("format: no shader files found")
	}

	base := ""
	if len(paths) == 1 {
		if info, statErr := os.Stat(paths[0]); statErr == nil && info.IsDir() {
			base = paths[0]
		}
	}
	fileSet := source.NewFileSetWithBase(base)

	// Preload everything up front: the FileSet is not safe for concurrent
	// mutation, and the workers below only read from it.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = 256
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]FormatResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			if loadErr, ok := loadErrors[path]; ok {
				bag := diag.NewBag(maxDiag)
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: source.NoFile},
					"failed to load file: "+loadErr.Error()))
				results[i] = FormatResult{
					Path:   path,
					Status: engine.StatusManualFix,
					Bag:    bag,
					Err:    loadErr,
				}
				return nil
			}
			results[i] = formatOne(fileSet, path, fileIDs[path], maxDiag, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func formatOne(fileSet *source.FileSet, path string, fileID source.FileID, maxDiag int, opts FormatOptions) FormatResult {
	res := FormatResult{Path: path, FileID: fileID}
	file := fileSet.Get(fileID)

	resolved, err := opts.Resolver.Resolve(filepath.Dir(path))
	if err != nil {
		res.Err = err
		res.Status = engine.StatusManualFix
		return res
	}
	rules := resolved.Rules

	key := CacheKey(file.Hash, rules.Fingerprint())
	if opts.Cache != nil && !opts.Stdout {
		var payload CachePayload
		if ok, _ := opts.Cache.Get(key, &payload); ok {
			res.Status = engine.StatusClean
			res.CacheHit = true
			res.Bag = diag.NewBag(maxDiag)
			return res
		}
	}

	out, err := engine.Run(file, rules, dialect.FromPath(path), maxDiag)
	res.Bag = out.Bag
	res.Status = out.Status
	res.Changed = out.Changed
	if err != nil {
		res.Err = err
		return res
	}

	switch {
	case opts.Stdout:
		res.Output = []byte(out.Output)
	case opts.Check:
	case out.Changed && out.Status != engine.StatusManualFix:
		mode := os.FileMode(0o644)
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode()
		}
		if werr := os.WriteFile(path, []byte(out.Output), mode.Perm()); werr != nil {
			res.Err = werr
			return res
		}
	}

	if opts.Cache != nil && res.Status == engine.StatusClean && res.Bag.Len() == 0 {
		_ = opts.Cache.Put(key, &CachePayload{Schema: diskCacheSchemaVersion, Path: path})
	}
	return res
}
