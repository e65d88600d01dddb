package fs

import (
	"fmt"
	"path/filepath"
)

// ResolvePath returns the absolute path with symbolic links evaluated.
func (f *realFS) ResolvePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: path cannot be empty", ErrPathResolution)
	}

	expanded, err := f.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPathResolution, err)
	}

	absPath, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("%w: failed to get absolute path for %s: %w", ErrPathResolution, expanded, err)
	}

	// Git reports repository roots with links resolved (e.g. /tmp on macOS)
	realPath, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return "", fmt.Errorf("%w: failed to evaluate links for %s: %w", ErrPathResolution, absPath, err)
	}

	return realPath, nil
}
