package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Exists reports whether something exists at path.
func (f *realFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, err
	}
}

// IsNotExist reports whether err means the file does not exist.
func (f *realFS) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

// ReadFile reads the whole file.
func (f *realFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// MkdirAll creates path and its missing parents.
func (f *realFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// GetHomeDir returns the home directory of the current user.
func (f *realFS) GetHomeDir() (string, error) {
	return os.UserHomeDir()
}

// ExpandPath replaces a leading ~ with the home directory.
func (f *realFS) ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := f.GetHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: failed to determine home directory: %w", ErrPathResolution, err)
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
