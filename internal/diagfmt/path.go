package diagfmt

import (
	"path/filepath"

	"shaderfmt/internal/source"
)

// formatPath renders a file path according to the mode. Relative rendering
// falls back to the stored path when the file lies outside baseDir.
func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeBasename:
		return filepath.Base(f.Path)
	case PathModeAbsolute:
		if abs, err := filepath.Abs(f.Path); err == nil {
			return abs
		}
		return f.Path
	case PathModeRelative, PathModeAuto:
		base := fs.BaseDir()
		if base == "" {
			return f.Path
		}
		rel, err := filepath.Rel(base, f.Path)
		if err != nil || len(rel) >= len(f.Path) {
			return f.Path
		}
		return rel
	}
	return f.Path
}
