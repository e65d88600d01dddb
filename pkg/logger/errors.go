package logger

import "errors"

// Error definitions for logger package.
var (
	ErrLogFileOpen = errors.New("failed to open diagnostic log file")
	ErrSentryInit  = errors.New("failed to initialize sentry")
)
