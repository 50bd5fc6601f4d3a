package file

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("a\nb"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if want := "a\nb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err=%v, want fs.ErrNotExist", err)
	}
}

func TestSave_OverwritesAndCountsBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("a much longer original body"), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}

	n, err := Disk{}.Save(path, "héllo")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if want := 6; n != want {
		t.Fatalf("bytes=%d, want %d", n, want)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got, want := string(b), "héllo"; got != want {
		t.Fatalf("content=%q, want %q", got, want)
	}

	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if got := fi.Mode().Perm(); got != 0o600 {
		t.Fatalf("perm=%v, want 0600", got)
	}
}

func TestSave_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "doc.txt")
	if _, err := Save(path, "x"); err == nil {
		t.Fatalf("expected error writing into a missing directory")
	}
}

func TestMetadata_Update(t *testing.T) {
	m := Metadata{Path: "doc.txt"}
	if m.Written() {
		t.Fatalf("expected fresh metadata to be unwritten")
	}

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m.Update(42, at)
	if !m.Written() {
		t.Fatalf("expected metadata to be written")
	}
	if m.Size != 42 || !m.LastWrite.Equal(at) {
		t.Fatalf("metadata=%+v, want size 42 at %v", m, at)
	}
}
