// Package report provides the technical debt report, its rich-text rendering
// and the capture of code selections from disk.
package report

import "errors"

// Error definitions for report package.
var (
	// Report validation errors.
	ErrEmptySummary    = errors.New("issue summary cannot be empty")
	ErrEmptyProjectKey = errors.New("project key cannot be empty")

	// Selection errors.
	ErrEmptySelection   = errors.New("please select some code to tag as technical debt")
	ErrInvalidLineRange = errors.New("invalid line range")
	ErrNotInWorkspace   = errors.New("file is not in a workspace")
)
