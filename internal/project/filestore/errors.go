package filestore

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrIsDirectory is returned when the target path is a directory.
var ErrIsDirectory = errors.New("is a directory")

// PathError wraps a file operation failure with its operation and path, so
// callers can distinguish not-found from other I/O failures.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// IsNotExist reports whether the error indicates a missing file.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
