package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"shaderfmt/internal/dialect"
)

// collectSourceFiles expands the given paths into a sorted, de-duplicated
// list of shader files. Directories are walked recursively, keeping only
// known extensions; explicit file arguments are kept as-is.
func collectSourceFiles(ctx context.Context, paths []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && dialect.KnownExt(p) {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	// Deterministic processing and output order.
	sort.Strings(files)
	return files, nil
}
