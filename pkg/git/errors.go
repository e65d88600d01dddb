// Package git provides Git command execution and error definitions.
package git

import "errors"

// Error definitions for git package.
var (
	ErrNotARepository = errors.New("not inside a Git repository")
)
