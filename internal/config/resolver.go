package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileName is the configuration file searched for in each ancestor directory.
const FileName = "shader-formatter.toml"

// FS abstracts the file operations the resolver needs, so tests can run
// against an in-memory tree.
type FS interface {
	Stat(path string) (fs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// OSFS is the real filesystem.
type OSFS struct{}

func (OSFS) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }
func (OSFS) ReadFile(path string) ([]byte, error)  { return os.ReadFile(path) }

// Resolved is the outcome of a directory lookup.
type Resolved struct {
	Rules RuleSet
	// Path of the rule file the rules came from; empty when defaults apply.
	Path string
}

// Resolver finds and parses the nearest rule file for a directory, walking
// upward until the filesystem root. Results are cached per directory; the
// cache is safe for concurrent use.
type Resolver struct {
	fsys FS

	mu    sync.Mutex
	cache map[string]Resolved
}

func NewResolver(fsys FS) *Resolver {
	return &Resolver{
		fsys:  fsys,
		cache: make(map[string]Resolved),
	}
}

// Resolve returns the rule set governing files in dir. The first rule file
// found wins; rule files in higher directories are not merged in. Absence of
// any rule file is not an error: defaults apply.
func (r *Resolver) Resolve(dir string) (Resolved, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Resolved{}, fmt.Errorf("failed to resolve directory %q: %w", dir, err)
	}

	r.mu.Lock()
	cached, ok := r.cache[abs]
	r.mu.Unlock()
	if ok {
		return cached, nil
	}

	res, err := r.lookup(abs)
	if err != nil {
		return Resolved{}, err
	}

	r.mu.Lock()
	r.cache[abs] = res
	r.mu.Unlock()
	return res, nil
}

func (r *Resolver) lookup(dir string) (Resolved, error) {
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := r.fsys.Stat(candidate); err == nil {
			data, err := r.fsys.ReadFile(candidate)
			if err != nil {
				return Resolved{}, fmt.Errorf("failed to read %q: %w", candidate, err)
			}
			rules, err := Parse(data, candidate)
			if err != nil {
				return Resolved{}, err
			}
			return Resolved{Rules: rules, Path: candidate}, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return Resolved{}, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return Resolved{Rules: Default()}, nil
}
