// Package config loads the tracker connection configuration of cherrybomb.
package config

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

// Supported trackers.
const (
	TrackerJira   = "jira"
	TrackerGitHub = "github"
)

// HTTPTimeout bounds every request made to a tracker.
const HTTPTimeout = 30 * time.Second

// Config is the tracker connection configuration.
// It is loaded once per invocation and never modified afterwards.
type Config struct {
	Tracker    string   `yaml:"tracker"`
	BaseURL    string   `yaml:"base_url"`
	Email      string   `yaml:"email"`
	APIToken   string   `yaml:"api_token,omitempty"`
	CategoryID string   `yaml:"category_id"`
	IssueType  string   `yaml:"issue_type"`
	FixVersion string   `yaml:"fix_version"`
	Labels     []string `yaml:"labels"`
	LogFile    string   `yaml:"log_file"`
	SentryDSN  string   `yaml:"sentry_dsn"`
}

// Validate checks that the configuration holds everything a tracker needs.
func (c Config) Validate() error {
	switch c.Tracker {
	case TrackerJira:
		if strings.TrimSpace(c.BaseURL) == "" {
			return ErrMissingBaseURL
		}
		if strings.TrimSpace(c.Email) == "" {
			return ErrMissingEmail
		}
	case TrackerGitHub:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedTracker, c.Tracker)
	}

	if strings.TrimSpace(c.APIToken) == "" {
		return ErrMissingAPIToken
	}
	if strings.TrimSpace(c.CategoryID) == "" {
		return ErrMissingCategory
	}

	return nil
}

// Credential returns the Basic authentication credential for the tracker.
func (c Config) Credential() string {
	return base64.StdEncoding.EncodeToString([]byte(c.Email + ":" + c.APIToken))
}

// Masked returns a copy of the configuration safe to display.
func (c Config) Masked() Config {
	masked := c
	masked.APIToken = maskSecret(c.APIToken)
	masked.Labels = append([]string(nil), c.Labels...)
	return masked
}

func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return "****"
	}
	return "****" + secret[len(secret)-4:]
}
