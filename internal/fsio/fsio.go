// Package fsio provides the idempotent filesystem primitives that let
// scaffolding and manifest synchronization run any number of times
// without touching existing user content.
package fsio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ctxkit/ctxkit/internal/defs"
)

// Result reports the outcome of an idempotent write.
type Result int

const (
	// Created means the file did not exist and was written.
	Created Result = iota
	// Skipped means the file already existed and was left untouched.
	Skipped
)

// String returns the lowercase progress label for the result.
func (r Result) String() string {
	if r == Created {
		return "created"
	}
	return "skipped"
}

// WriteIfAbsent writes content to path only when no file exists there.
// Missing parent directories are created. An existing file, including one
// the user has hand-edited, is never overwritten.
func WriteIfAbsent(path string, content []byte) (Result, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, defs.DirPerm); err != nil {
		return Skipped, fmt.Errorf("mkdir %s: %w", dir, err)
	}

	if _, err := os.Stat(path); err == nil {
		return Skipped, nil
	} else if !os.IsNotExist(err) {
		return Skipped, fmt.Errorf("stat %s: %w", path, err)
	}

	if err := os.WriteFile(path, content, defs.FilePerm); err != nil {
		return Skipped, fmt.Errorf("write %s: %w", path, err)
	}
	return Created, nil
}

// EnsureDir creates the directory and any missing parents. Existing
// directories are left as they are.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, defs.DirPerm); err != nil {
		return fmt.Errorf("mkdir %s: %w", path, err)
	}
	return nil
}
