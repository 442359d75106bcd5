package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// BaseTime is a fixed reference point for modification times in tests.
var BaseTime = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

// WriteFile creates dir/name with content and sets its modification time.
// It returns the joined path.
func WriteFile(t *testing.T, dir, name string, content []byte, modTime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	Touch(t, path, modTime)
	return path
}

// Mkdir creates dir/name and sets its modification time.
func Mkdir(t *testing.T, dir, name string, modTime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	Touch(t, path, modTime)
	return path
}

// Touch sets the access and modification time of path.
func Touch(t *testing.T, path string, modTime time.Time) {
	t.Helper()
	if err := os.Chtimes(path, modTime, modTime); err != nil {
		t.Fatalf("setting times on %s: %v", path, err)
	}
}
