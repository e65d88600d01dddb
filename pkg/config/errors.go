package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	ErrConfigExists    = errors.New("configuration file already exists, use --force to overwrite")

	// Configuration validation errors.
	ErrMissingBaseURL     = errors.New("tracker base URL is not configured (set base_url or JIRA_BASE_URL)")
	ErrMissingEmail       = errors.New("tracker account email is not configured (set email or JIRA_EMAIL)")
	ErrMissingAPIToken    = errors.New("tracker API token is not configured (set JIRA_API_TOKEN or GITHUB_TOKEN)")
	ErrMissingCategory    = errors.New("project category is not configured")
	ErrUnsupportedTracker = errors.New("unsupported tracker")
)
