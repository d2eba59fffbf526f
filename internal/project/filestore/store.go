// Package filestore performs the byte-level file I/O for the editor:
// reading the document on startup and writing it back on save.
package filestore

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const defaultMode fs.FileMode = 0o644

// Store reads and writes a single document. Writes are atomic: content
// goes to a uniquely named temp file in the same directory, which is then
// renamed over the target, so a failed write never truncates the original.
type Store struct {
	backup     bool
	backupDone bool
}

// Option configures a Store.
type Option func(*Store)

// WithBackup makes the first save of a session copy the previous file
// content to <path>~ before overwriting it.
func WithBackup(enabled bool) Option {
	return func(s *Store) {
		s.backup = enabled
	}
}

// New creates a Store.
func New(opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Read returns the content of the file at path. Failures are reported as a
// *PathError preserving the underlying cause; use IsNotExist to detect a
// missing file.
func (s *Store) Read(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", &PathError{Op: "read", Path: path, Err: err}
	}
	if info.IsDir() {
		return "", &PathError{Op: "read", Path: path, Err: ErrIsDirectory}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &PathError{Op: "read", Path: path, Err: err}
	}
	return string(data), nil
}

// Write saves content to path atomically, preserving the file mode of an
// existing target.
func (s *Store) Write(path, content string) error {
	mode := defaultMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if s.backup && !s.backupDone {
		if err := s.writeBackup(path, mode); err != nil {
			return err
		}
		s.backupDone = true
	}

	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	if err := os.WriteFile(tmp, []byte(content), mode); err != nil {
		return &PathError{Op: "write", Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &PathError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// writeBackup copies the current file content to <path>~. A missing
// original is not an error; there is nothing to preserve.
func (s *Store) writeBackup(path string, mode fs.FileMode) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &PathError{Op: "backup", Path: path, Err: err}
	}
	if err := os.WriteFile(path+"~", data, mode); err != nil {
		return &PathError{Op: "backup", Path: path, Err: err}
	}
	return nil
}
