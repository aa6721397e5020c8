package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage persists image blobs on disk under a base directory and
// resolves their public URLs against a configured base. Objects are
// published atomically: bytes land in a temp file first and are renamed
// into place, so a half-written blob is never addressable under its
// final name.
type LocalStorage struct {
	baseDir       string
	publicBaseURL string
}

// NewLocalStorage ensures the base directory exists and returns a handle.
func NewLocalStorage(baseDir, publicBaseURL string) (*LocalStorage, error) {
	if baseDir == "" {
		baseDir = "./uploads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads directory: %w", err)
	}
	return &LocalStorage{
		baseDir:       baseDir,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

// Put writes the full payload under the given object name.
func (s *LocalStorage) Put(name string, r io.Reader) error {
	tmp, err := os.CreateTemp(s.baseDir, ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp upload file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()                                //nolint:errcheck
		os.Remove(tmpName)                         //nolint:errcheck
		return fmt.Errorf("write upload: %w", err) //nolint:wrapcheck
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return fmt.Errorf("flush upload: %w", err)
	}

	if err := os.Rename(tmpName, s.resolve(name)); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return fmt.Errorf("publish upload: %w", err)
	}
	return nil
}

// Open returns a read-only handle for the stored object.
func (s *LocalStorage) Open(name string) (*os.File, error) {
	file, err := os.Open(s.resolve(name))
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	return file, nil
}

// Delete removes a stored object if present.
func (s *LocalStorage) Delete(name string) error {
	if err := os.Remove(s.resolve(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete upload: %w", err)
	}
	return nil
}

// URL returns the publicly dereferenceable URL for an object name.
func (s *LocalStorage) URL(name string) string {
	return s.publicBaseURL + "/" + name
}

// Dir exposes the base directory (used to mount the static route).
func (s *LocalStorage) Dir() string {
	return s.baseDir
}

func (s *LocalStorage) resolve(name string) string {
	return filepath.Join(s.baseDir, filepath.Base(name))
}
