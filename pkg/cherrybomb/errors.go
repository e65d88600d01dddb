// Package cherrybomb files selected code as technical debt issues on a tracker.
package cherrybomb

import "errors"

// Error definitions for cherrybomb package.
var (
	// Project listing errors.
	ErrNoProjects     = errors.New("no projects found")
	ErrUnknownProject = errors.New("project is not part of the configured category")

	// Submission errors.
	ErrSubmissionCancelled = errors.New("issue creation cancelled by user")

	// Initialization errors.
	ErrInitCancelled = errors.New("initialization cancelled by user")
)
