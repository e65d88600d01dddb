package tracker

import "errors"

// Tracker-specific errors.
var (
	ErrUnsupportedTracker   = errors.New("unsupported tracker")
	ErrProjectListingFailed = errors.New("failed to fetch projects from tracker")
	ErrIssueCreationFailed  = errors.New("failed to create issue on tracker")
	ErrUnauthorized         = errors.New("unauthorized access to tracker API")
	ErrRateLimited          = errors.New("rate limited by tracker API")
	ErrInvalidProjectKey    = errors.New("invalid project key")
)
