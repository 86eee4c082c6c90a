package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("a.hlsl", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("LineIdx length: got %d, want %d", len(file.LineIdx), len(expected))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("LineIdx[%d]: got %d, want %d", i, file.LineIdx[i], val)
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag")
	}
}

func TestBOMRemoval(t *testing.T) {
	bomContent := []byte{0xEF, 0xBB, 0xBF, 'x', '\n'}
	withoutBOM, hadBOM := removeBOM(bomContent)
	if !hadBOM {
		t.Error("expected BOM to be detected")
	}
	if string(withoutBOM) != "x\n" {
		t.Errorf("content without BOM: got %q", string(withoutBOM))
	}

	plain, hadBOM := removeBOM([]byte("x\n"))
	if hadBOM || string(plain) != "x\n" {
		t.Error("content without BOM must pass through untouched")
	}
}

func TestLoadKeepsBytes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.hlsl")
	// CRLF endings must survive loading: the lexer sees the original bytes.
	if err := os.WriteFile(path, []byte("a;\r\nb;\r\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := string(fs.Get(id).Content); got != "a;\r\nb;\r\n" {
		t.Errorf("content: got %q, CRLF must be preserved", got)
	}
}

func TestLoadBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.hlsl")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFa\nb\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	file := fs.Get(id)
	if string(file.Content) != "a\nb\n" {
		t.Errorf("content: got %q", string(file.Content))
	}
	if file.Flags&FileHadBOM == 0 {
		t.Error("expected FileHadBOM flag")
	}
}

func TestResolveUTF8(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.hlsl", []byte("α\nb\n"))

	start, end := fs.Resolve(Span{File: id, Start: 0, End: 1})
	if (start != LineCol{Line: 1, Col: 1}) {
		t.Errorf("start: got %+v", start)
	}
	if (end != LineCol{Line: 1, Col: 2}) {
		t.Errorf("end: got %+v", end)
	}

	start, _ = fs.Resolve(Span{File: id, Start: 3, End: 4})
	if (start != LineCol{Line: 2, Col: 1}) {
		t.Errorf("second line start: got %+v", start)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	file := fs.Get(fs.AddVirtual("test.hlsl", []byte("first\r\nsecond\nthird")))

	cases := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"}, // the \r of a CRLF ending is trimmed
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tc := range cases {
		if got := file.GetLine(tc.line); got != tc.want {
			t.Errorf("GetLine(%d): got %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestEdgeCases(t *testing.T) {
	fs := NewFileSet()

	empty := fs.Get(fs.AddVirtual("empty.hlsl", []byte{}))
	if len(empty.LineIdx) != 0 {
		t.Errorf("empty file LineIdx: got length %d", len(empty.LineIdx))
	}

	noNL := fs.Get(fs.AddVirtual("one.hlsl", []byte("hello")))
	if len(noNL.LineIdx) != 0 {
		t.Errorf("file without newlines LineIdx: got length %d", len(noNL.LineIdx))
	}

	onlyNL := fs.Get(fs.AddVirtual("nl.hlsl", []byte("\n")))
	if len(onlyNL.LineIdx) != 1 || onlyNL.LineIdx[0] != 0 {
		t.Errorf("LineIdx for a lone newline: got %v", onlyNL.LineIdx)
	}
}

func TestHas(t *testing.T) {
	fs := NewFileSet()
	if fs.Has(0) {
		t.Error("empty set must not have file 0")
	}

	id := fs.AddVirtual("test.hlsl", []byte("x\n"))
	if !fs.Has(id) {
		t.Errorf("expected Has(%d)", id)
	}
	if fs.Has(id + 1) {
		t.Errorf("unexpected Has(%d)", id+1)
	}
	if fs.Has(NoFile) {
		t.Error("NoFile must never resolve")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 10, End: 20}
	b := Span{File: 1, Start: 5, End: 15}
	if got := a.Cover(b); got != (Span{File: 1, Start: 5, End: 20}) {
		t.Errorf("Cover: got %+v", got)
	}
	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover across files must be a no-op, got %+v", got)
	}
}
