//go:build unit

package config

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validJiraConfig() Config {
	cfg := DefaultConfig()
	cfg.BaseURL = "https://acme.atlassian.net"
	cfg.Email = "dev@acme.io"
	cfg.APIToken = "secret-token"
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *Config)
		expected error
	}{
		{name: "valid jira config", mutate: func(_ *Config) {}},
		{name: "missing base url", mutate: func(c *Config) { c.BaseURL = "" }, expected: ErrMissingBaseURL},
		{name: "missing email", mutate: func(c *Config) { c.Email = " " }, expected: ErrMissingEmail},
		{name: "missing token", mutate: func(c *Config) { c.APIToken = "" }, expected: ErrMissingAPIToken},
		{name: "missing category", mutate: func(c *Config) { c.CategoryID = "" }, expected: ErrMissingCategory},
		{name: "unknown tracker", mutate: func(c *Config) { c.Tracker = "trello" }, expected: ErrUnsupportedTracker},
		{
			name: "github only needs a token",
			mutate: func(c *Config) {
				c.Tracker = TrackerGitHub
				c.BaseURL = ""
				c.Email = ""
			},
		},
		{
			name: "github without token",
			mutate: func(c *Config) {
				c.Tracker = TrackerGitHub
				c.APIToken = ""
			},
			expected: ErrMissingAPIToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validJiraConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestConfig_Credential(t *testing.T) {
	cfg := Config{Email: "dev@acme.io", APIToken: "secret-token"}

	expected := base64.StdEncoding.EncodeToString([]byte("dev@acme.io:secret-token"))
	assert.Equal(t, expected, cfg.Credential())
}

func TestConfig_Masked(t *testing.T) {
	cfg := validJiraConfig()

	masked := cfg.Masked()
	assert.Equal(t, "****oken", masked.APIToken)
	assert.Equal(t, "secret-token", cfg.APIToken)

	masked.Labels[0] = "changed"
	assert.Equal(t, "tech_debt", cfg.Labels[0])

	assert.Equal(t, "****", Config{APIToken: "abc"}.Masked().APIToken)
	assert.Empty(t, Config{}.Masked().APIToken)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, TrackerJira, cfg.Tracker)
	assert.Equal(t, "10101", cfg.CategoryID)
	assert.Equal(t, "Task", cfg.IssueType)
	assert.Equal(t, "via_cherrybomb", cfg.FixVersion)
	assert.Equal(t, []string{"tech_debt", "via_cherrybomb"}, cfg.Labels)
	assert.Empty(t, cfg.BaseURL)
	assert.Empty(t, cfg.APIToken)
}
