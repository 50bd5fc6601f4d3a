// Package file loads and saves documents on the local filesystem.
package file

import (
	"fmt"
	"os"
	"time"
)

const defaultPerm os.FileMode = 0o644

// Load returns the full contents of the file at path.
func Load(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", path, err)
	}
	return string(b), nil
}

// Save overwrites the file at path with text and returns the number of
// bytes written. An existing file keeps its permission bits.
func Save(path, text string) (int, error) {
	perm := defaultPerm
	if fi, err := os.Stat(path); err == nil {
		perm = fi.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(text), perm); err != nil {
		return 0, fmt.Errorf("save %s: %w", path, err)
	}
	return len(text), nil
}

// Disk is the filesystem-backed document store.
type Disk struct{}

func (Disk) Save(path, text string) (int, error) { return Save(path, text) }

// Metadata records what was last written for a document.
type Metadata struct {
	Path      string
	Size      int
	LastWrite time.Time
}

// Update records a successful write of size bytes at time at.
func (m *Metadata) Update(size int, at time.Time) {
	m.Size = size
	m.LastWrite = at
}

// Written reports whether the document has been saved this session.
func (m Metadata) Written() bool { return !m.LastWrite.IsZero() }
