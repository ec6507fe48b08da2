package sink

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAddFlushesAtBoundary(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < FuncsPerFile; i++ {
		if err := s.Add(Function{Name: "f", Lines: []string{"void f() {}"}}); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "ppc_recomp.0.cpp")); err != nil {
		t.Fatalf("expected first batch file to exist after FuncsPerFile adds: %v", err)
	}
	if len(s.batch) != 0 {
		t.Fatalf("expected the batch to reset after flushing, got %d pending", len(s.batch))
	}
}

func TestFinishWritesSharedFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.Add(Function{Name: "sub_1000", Lines: []string{"void sub_1000(PPCContext& ctx, uint8_t* base) {}"}}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	for _, name := range []string{"ppc_recomp.0.cpp", "ppc_config.h", "ppc_recomp_shared.h", "ppc_func_mapping.cpp"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s to exist: %v", name, err)
		}
	}
	mapping, err := os.ReadFile(filepath.Join(dir, "ppc_func_mapping.cpp"))
	if err != nil {
		t.Fatalf("read mapping: %v", err)
	}
	if !strings.Contains(string(mapping), "{ sub_1000_base, sub_1000 }") {
		t.Fatalf("expected a mapping entry for sub_1000, got:\n%s", mapping)
	}
}

func TestWriteIfChangedElidesIdenticalContent(t *testing.T) {
	dir := t.TempDir()
	s := &Sink{outDir: dir}
	if err := s.writeIfChanged("out.cpp", []byte("content")); err != nil {
		t.Fatalf("first write: %v", err)
	}
	info1, err := os.Stat(filepath.Join(dir, "out.cpp"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}

	if err := s.writeIfChanged("out.cpp", []byte("content")); err != nil {
		t.Fatalf("second write: %v", err)
	}
	info2, err := os.Stat(filepath.Join(dir, "out.cpp"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info1.ModTime() != info2.ModTime() {
		t.Fatalf("expected an unchanged write to leave the file untouched")
	}

	if err := s.writeIfChanged("out.cpp", []byte("different content")); err != nil {
		t.Fatalf("third write: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(dir, "out.cpp"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "different content" {
		t.Fatalf("expected changed content to be written, got %q", got)
	}
}
