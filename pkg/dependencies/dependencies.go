// Package dependencies provides a centralized dependency container for cherrybomb.
package dependencies

import (
	"errors"

	"github.com/lerenn/cherrybomb/pkg/config"
	"github.com/lerenn/cherrybomb/pkg/fs"
	"github.com/lerenn/cherrybomb/pkg/git"
	"github.com/lerenn/cherrybomb/pkg/logger"
	"github.com/lerenn/cherrybomb/pkg/prompt"
	"github.com/lerenn/cherrybomb/pkg/tracker"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing             = errors.New("fs dependency is required but not set")
	ErrGitMissing            = errors.New("git dependency is required but not set")
	ErrConfigMissing         = errors.New("config dependency is required but not set")
	ErrLoggerMissing         = errors.New("logger dependency is required but not set")
	ErrPromptMissing         = errors.New("prompt dependency is required but not set")
	ErrTrackerManagerMissing = errors.New("tracker manager dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS             fs.FS
	Git            git.Git
	Config         config.Manager
	Logger         logger.Logger
	Prompt         prompt.Prompter
	TrackerManager tracker.ManagerInterface
}

// New creates a new Dependencies instance with sensible defaults.
// Config and TrackerManager depend on the configuration path and are set with With* methods.
func New() *Dependencies {
	return &Dependencies{
		FS:     fs.NewFS(),
		Git:    git.NewGit(),
		Logger: logger.NewNoopLogger(),
		Prompt: prompt.NewPrompt(),
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithTrackerManager sets the tracker manager and returns the instance for chaining.
func (d *Dependencies) WithTrackerManager(tm tracker.ManagerInterface) *Dependencies {
	d.TrackerManager = tm
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Git, ErrGitMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Prompt, ErrPromptMissing},
		{d.TrackerManager, ErrTrackerManagerMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
