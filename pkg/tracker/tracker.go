// Package tracker lists projects and files issues on remote issue trackers.
package tracker

import (
	"context"
	"fmt"

	"github.com/lerenn/cherrybomb/pkg/config"
	"github.com/lerenn/cherrybomb/pkg/issue"
	"github.com/lerenn/cherrybomb/pkg/logger"
	"github.com/lerenn/cherrybomb/pkg/report"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=tracker.go -destination=mocks/tracker.gen.go -package=mocks

// Project is a tracker project an issue can be filed in.
type Project struct {
	Key  string
	Name string
}

// String returns the project as shown in selection lists.
func (p Project) String() string {
	if p.Name == "" {
		return p.Key
	}
	return p.Key + " - " + p.Name
}

// Tracker interface defines the methods that all tracker implementations must provide.
type Tracker interface {
	// Name returns the name of the tracker
	Name() string

	// ListProjects returns the projects of the configured category, in tracker order
	ListProjects(ctx context.Context) ([]Project, error)

	// CreateIssue files the report as a new issue
	CreateIssue(ctx context.Context, r report.DebtReport) (*issue.Info, error)
}

// ManagerInterface defines the interface for tracker management.
type ManagerInterface interface {
	// GetTracker returns the tracker implementation for the given name
	GetTracker(name string) (Tracker, error)
	// GetConfiguredTracker returns the tracker selected by the configuration, logging to log
	GetConfiguredTracker(log logger.Logger) (Tracker, error)
}

// factory builds a tracker from the connection configuration.
type factory func(cfg config.Config, logger logger.Logger) (Tracker, error)

// Manager manages tracker implementations and provides a unified interface.
type Manager struct {
	cfg       config.Config
	factories map[string]factory
	logger    logger.Logger
}

// NewManager creates a new tracker manager with registered tracker implementations.
func NewManager(cfg config.Config, logger logger.Logger) *Manager {
	m := &Manager{
		cfg:       cfg,
		factories: make(map[string]factory),
		logger:    logger,
	}

	m.registerTrackers()

	return m
}

// registerTrackers registers all available tracker implementations.
func (m *Manager) registerTrackers() {
	m.factories[JiraName] = func(cfg config.Config, logger logger.Logger) (Tracker, error) {
		return NewJira(cfg, logger), nil
	}
	m.factories[GitHubName] = func(cfg config.Config, logger logger.Logger) (Tracker, error) {
		gh, err := NewGitHub(cfg, logger)
		if err != nil {
			return nil, err
		}
		return gh, nil
	}
}

// GetTracker returns the tracker implementation for the given name.
func (m *Manager) GetTracker(name string) (Tracker, error) {
	return m.build(name, m.logger)
}

// GetConfiguredTracker validates the configuration and returns the tracker it selects.
// The tracker logs to log, or to the manager logger when log is nil.
func (m *Manager) GetConfiguredTracker(log logger.Logger) (Tracker, error) {
	if err := m.cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = m.logger
	}
	return m.build(m.cfg.Tracker, log)
}

func (m *Manager) build(name string, log logger.Logger) (Tracker, error) {
	build, exists := m.factories[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTracker, name)
	}
	return build(m.cfg, log)
}
