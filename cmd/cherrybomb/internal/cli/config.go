// Package cli provides common configuration and utility functions for the cherrybomb CLI.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lerenn/cherrybomb/pkg/cherrybomb"
	"github.com/lerenn/cherrybomb/pkg/config"
	"github.com/lerenn/cherrybomb/pkg/dependencies"
	"github.com/lerenn/cherrybomb/pkg/fs"
	"github.com/lerenn/cherrybomb/pkg/logger"
	"github.com/lerenn/cherrybomb/pkg/tracker"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
	// Version is the release reported to Sentry.
	Version = "dev"
)

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager() (config.Manager, error) {
	fsys := fs.NewFS()

	path := ConfigPath
	if path == "" {
		var err error
		if path, err = config.DefaultConfigPath(fsys); err != nil {
			return nil, err
		}
	}

	return config.NewManager(fsys, path), nil
}

// NewLogger creates the diagnostic logger described by the configuration.
// In verbose mode, messages are also written to the terminal.
func NewLogger(cfg config.Config) (logger.Logger, func(), error) {
	level := slog.LevelInfo
	if Quiet {
		level = slog.LevelError
	}

	diagnostic, closeFn, err := logger.NewDiagnosticLogger(logger.DiagnosticConfig{
		Level:     level,
		LogFile:   cfg.LogFile,
		SentryDSN: cfg.SentryDSN,
		Release:   "cherrybomb@" + Version,
	})
	if err != nil {
		return nil, nil, err
	}

	if Verbose && !Quiet {
		return logger.NewMultiLogger(diagnostic, logger.NewDefaultLogger()), closeFn, nil
	}
	return diagnostic, closeFn, nil
}

// NewCherrybomb creates a Cherrybomb instance from the configuration file and environment.
// The returned function flushes the diagnostic log and must be called before exiting.
func NewCherrybomb(out io.Writer) (cherrybomb.Cherrybomb, func(), error) {
	configManager, err := NewConfigManager()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	cfg, err := configManager.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	log, closeFn, err := NewLogger(cfg)
	if err != nil {
		return nil, nil, err
	}

	cb, err := cherrybomb.NewCherrybomb(cherrybomb.NewCherrybombParams{
		Dependencies: dependencies.New().
			WithConfig(configManager).
			WithLogger(log).
			WithTrackerManager(tracker.NewManager(cfg, log)),
		Output: out,
	})
	if err != nil {
		closeFn()
		return nil, nil, err
	}

	return cb, closeFn, nil
}
