package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteError records which filesystem step failed for a path.
type WriteError struct {
	Op      string
	Path    string
	Wrapped error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Path, e.Wrapped)
}

func (e *WriteError) Unwrap() error {
	return e.Wrapped
}

// Store owns one output directory.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Dir() string {
	return s.baseDir
}

// Init creates the directory if needed. Calling it again is a no-op.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return &WriteError{Op: "mkdir", Path: s.baseDir, Wrapped: err}
	}
	return nil
}

// Path returns the absolute path of name inside the store.
func (s *Store) Path(name string) (string, error) {
	p, err := filepath.Abs(filepath.Join(s.baseDir, name))
	if err != nil {
		return "", &WriteError{Op: "resolve", Path: name, Wrapped: err}
	}
	return p, nil
}

// Write replaces the whole content of name in place. A failed write may
// leave a partial file behind; readers polling the file must tolerate that.
func (s *Store) Write(name string, data []byte) (string, error) {
	path, err := s.Path(name)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return "", &WriteError{Op: "open", Path: path, Wrapped: err}
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", &WriteError{Op: "write", Path: path, Wrapped: err}
	}
	if err := f.Close(); err != nil {
		return "", &WriteError{Op: "close", Path: path, Wrapped: err}
	}
	return path, nil
}

// Read returns the current content of name.
func (s *Store) Read(name string) ([]byte, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}
