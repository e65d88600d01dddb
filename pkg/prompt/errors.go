// Package prompt provides interactive prompt functionality for cherrybomb.
package prompt

import "errors"

// Error definitions for prompt package.
var (
	ErrInvalidConfirmationInput = errors.New("invalid input: please enter 'y' or 'n'")
	ErrNoChoices                = errors.New("no choices available")
	ErrNoSelection              = errors.New("no selection made")
	ErrEmptyInput               = errors.New("input cannot be empty")
	ErrPromptCancelled          = errors.New("prompt cancelled")
)
