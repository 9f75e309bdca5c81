//go:build mage

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCountLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terms.txt")
	if err := os.WriteFile(path, []byte("spike protein\n\nACE2\n  \nbinding\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	n, err := countLines(path)
	if err != nil {
		t.Fatalf("countLines() error = %v", err)
	}
	if n != 3 {
		t.Errorf("countLines() = %d, want 3", n)
	}
}

func TestCountGoLines(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"x.go":      "package x\n\nfunc F() int {\n\treturn 1\n}\n",
		"x_test.go": "package x\n\nimport \"testing\"\n\nfunc TestF(t *testing.T) {}\n",
		"README.md": "not counted\n",
	}
	for name, src := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	prod, tests, err := countGoLines(dir)
	if err != nil {
		t.Fatalf("countGoLines() error = %v", err)
	}
	if prod != 4 {
		t.Errorf("production lines = %d, want 4", prod)
	}
	if tests != 3 {
		t.Errorf("test lines = %d, want 3", tests)
	}
}

func TestCountRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	data := "document_id,term,context\n10.1101/1,ACE2,the ACE2 receptor\n10.1101/2,spike protein,\"binds, strongly\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	n, err := countRecords(path)
	if err != nil {
		t.Fatalf("countRecords() error = %v", err)
	}
	if n != 2 {
		t.Errorf("countRecords() = %d, want 2", n)
	}
}

func TestCountRecordsHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triage.csv")
	if err := os.WriteFile(path, []byte("DOI,SCORE\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	n, err := countRecords(path)
	if err != nil {
		t.Fatalf("countRecords() error = %v", err)
	}
	if n != 0 {
		t.Errorf("countRecords() = %d, want 0", n)
	}
}
