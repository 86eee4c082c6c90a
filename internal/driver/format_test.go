package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"shaderfmt/internal/config"
	"shaderfmt/internal/driver"
	"shaderfmt/internal/engine"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	return string(data)
}

func formatDir(t *testing.T, paths []string, opts driver.FormatOptions) []driver.FormatResult {
	t.Helper()
	if opts.Resolver == nil {
		opts.Resolver = config.NewResolver(config.OSFS{})
	}
	_, results, err := driver.FormatPaths(context.Background(), paths, opts)
	if err != nil {
		t.Fatalf("FormatPaths failed: %v", err)
	}
	return results
}

func TestFormatPathsWritesBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.hlsl")
	writeFile(t, path, "void f() {\nreturn;\n}\n")

	results := formatDir(t, []string{dir}, driver.FormatOptions{})
	if len(results) != 1 {
		t.Fatalf("result count: got %d", len(results))
	}
	if results[0].Status != engine.StatusFormatted {
		t.Fatalf("status: got %s", results[0].Status)
	}
	if got := readFile(t, path); got != "void f() {\n    return;\n}\n" {
		t.Fatalf("file content after write-back: %q", got)
	}
}

func TestFormatPathsCheckModeLeavesFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.hlsl")
	original := "void f() {\nreturn;\n}\n"
	writeFile(t, path, original)

	results := formatDir(t, []string{dir}, driver.FormatOptions{Check: true})
	if results[0].Status != engine.StatusFormatted || !results[0].Changed {
		t.Fatalf("check mode must still classify: %s", results[0].Status)
	}
	if got := readFile(t, path); got != original {
		t.Fatal("check mode must not rewrite files")
	}
}

func TestFormatPathsManualFixNeverWritesBack(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "shader-formatter.toml"), `VariableCase = "Camel"`)
	path := filepath.Join(dir, "a.hlsl")
	// Needs both a whitespace rewrite and a manual naming fix.
	original := "void f() {\nint Bad_Name;\n}\n"
	writeFile(t, path, original)

	results := formatDir(t, []string{dir}, driver.FormatOptions{})
	if results[0].Status != engine.StatusManualFix {
		t.Fatalf("status: got %s", results[0].Status)
	}
	if got := readFile(t, path); got != original {
		t.Fatal("files with errors must never be rewritten")
	}
}

func TestFormatPathsStdoutMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.hlsl")
	original := "void f() {\nreturn;\n}\n"
	writeFile(t, path, original)

	results := formatDir(t, []string{path}, driver.FormatOptions{Stdout: true})
	if string(results[0].Output) != "void f() {\n    return;\n}\n" {
		t.Fatalf("stdout output: got %q", results[0].Output)
	}
	if got := readFile(t, path); got != original {
		t.Fatal("stdout mode must not rewrite files")
	}
}

func TestFormatPathsRecursiveCollection(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.hlsl"), "float x;\n")
	writeFile(t, filepath.Join(dir, "sub", "b.frag"), "float y;\n")
	writeFile(t, filepath.Join(dir, "sub", "notes.txt"), "not a shader")

	results := formatDir(t, []string{dir}, driver.FormatOptions{})
	if len(results) != 2 {
		t.Fatalf("result count: got %d, want 2 (txt files skipped)", len(results))
	}
	// Results come back in sorted path order.
	if filepath.Base(results[0].Path) != "a.hlsl" || filepath.Base(results[1].Path) != "b.frag" {
		t.Fatalf("order: got %s, %s", results[0].Path, results[1].Path)
	}
}

func TestFormatPathsPerDirectoryRules(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "sub", "shader-formatter.toml"), `Indentation = "Tab"`)
	writeFile(t, filepath.Join(dir, "a.hlsl"), "void f() {\nreturn;\n}\n")
	writeFile(t, filepath.Join(dir, "sub", "b.hlsl"), "void g() {\nreturn;\n}\n")

	formatDir(t, []string{dir}, driver.FormatOptions{})
	if got := readFile(t, filepath.Join(dir, "a.hlsl")); got != "void f() {\n    return;\n}\n" {
		t.Fatalf("outer file: %q", got)
	}
	if got := readFile(t, filepath.Join(dir, "sub", "b.hlsl")); got != "void g() {\n\treturn;\n}\n" {
		t.Fatalf("nested file must use the nearest rule file: %q", got)
	}
}

func TestFormatPathsCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := driver.OpenDiskCache("shaderfmt-test")
	if err != nil {
		t.Fatalf("OpenDiskCache failed: %v", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "a.hlsl")
	writeFile(t, path, "float x;\n")

	results := formatDir(t, []string{path}, driver.FormatOptions{Cache: cache})
	if results[0].Status != engine.StatusClean || results[0].CacheHit {
		t.Fatalf("first run: status %s, hit %v", results[0].Status, results[0].CacheHit)
	}

	results = formatDir(t, []string{path}, driver.FormatOptions{Cache: cache})
	if !results[0].CacheHit {
		t.Fatal("second run over unchanged content must hit the cache")
	}

	// Changed content misses.
	writeFile(t, path, "float y;\n")
	results = formatDir(t, []string{path}, driver.FormatOptions{Cache: cache})
	if results[0].CacheHit {
		t.Fatal("changed content must miss the cache")
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := driver.OpenDiskCache("shaderfmt-test")
	if err != nil {
		t.Fatalf("OpenDiskCache failed: %v", err)
	}

	key := driver.CacheKey([32]byte{1, 2, 3}, "fingerprint")
	var out driver.CachePayload
	if ok, err := cache.Get(key, &out); err != nil || ok {
		t.Fatalf("empty cache Get: ok=%v err=%v", ok, err)
	}

	if err := cache.Put(key, &driver.CachePayload{Schema: 1, Path: "a.hlsl"}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if ok, err := cache.Get(key, &out); err != nil || !ok {
		t.Fatalf("Get after Put: ok=%v err=%v", ok, err)
	}
	if out.Path != "a.hlsl" {
		t.Fatalf("payload path: got %q", out.Path)
	}

	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll failed: %v", err)
	}
	if ok, _ := cache.Get(key, &out); ok {
		t.Fatal("Get after DropAll must miss")
	}
}
