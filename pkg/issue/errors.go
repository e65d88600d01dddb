// Package issue provides data structures and error types for issues filed on a tracker.
package issue

import "errors"

// Issue-specific error types.
var (
	ErrIssueKeyMissing = errors.New("tracker response does not contain an issue key")
)
