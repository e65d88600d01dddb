//go:build unit

package cherrybomb

import (
	"testing"

	"github.com/lerenn/cherrybomb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testConfigPath = "/home/dev/.cherrybomb/config.yaml"

func TestRealCherrybomb_Init_Interactive(t *testing.T) {
	cb, m := newTestCherrybomb(t)

	m.config.EXPECT().GetConfigPath().Return(testConfigPath).AnyTimes()
	m.config.EXPECT().ConfigExists().Return(false, nil)
	m.config.EXPECT().DefaultConfig().Return(config.DefaultConfig())
	m.prompt.EXPECT().PromptForBaseURL("").Return("https://acme.atlassian.net/", nil)
	m.prompt.EXPECT().PromptForEmail("").Return("dev@acme.io", nil)
	m.prompt.EXPECT().PromptForCategory("10101").Return("10101", nil)
	m.config.EXPECT().SaveConfig(gomock.Any(), true).DoAndReturn(func(cfg config.Config, _ bool) error {
		assert.Equal(t, config.TrackerJira, cfg.Tracker)
		assert.Equal(t, "https://acme.atlassian.net", cfg.BaseURL)
		assert.Equal(t, "dev@acme.io", cfg.Email)
		assert.Equal(t, "10101", cfg.CategoryID)
		assert.Equal(t, "Task", cfg.IssueType)
		assert.Empty(t, cfg.APIToken)
		return nil
	})

	require.NoError(t, cb.Init(InitOpts{}))

	assert.Contains(t, m.out.String(), "cherrybomb initialized successfully!")
	assert.Contains(t, m.out.String(), "Configuration: "+testConfigPath)
	assert.Contains(t, m.out.String(), "Set JIRA_API_TOKEN")
}

func TestRealCherrybomb_Init_FromFlags(t *testing.T) {
	cb, m := newTestCherrybomb(t)

	m.config.EXPECT().GetConfigPath().Return(testConfigPath).AnyTimes()
	m.config.EXPECT().DefaultConfig().Return(config.DefaultConfig())
	m.config.EXPECT().SaveConfig(gomock.Any(), true).DoAndReturn(func(cfg config.Config, _ bool) error {
		assert.Equal(t, "https://acme.atlassian.net", cfg.BaseURL)
		assert.Equal(t, "20202", cfg.CategoryID)
		assert.Equal(t, "explicit-token", cfg.APIToken)
		return nil
	})

	err := cb.Init(InitOpts{
		BaseURL:  "https://acme.atlassian.net",
		Email:    "dev@acme.io",
		Category: "20202",
		Token:    "explicit-token",
		Force:    true,
	})
	require.NoError(t, err)
	assert.NotContains(t, m.out.String(), "Set JIRA_API_TOKEN")
}

func TestRealCherrybomb_Init_GitHubNonInteractive(t *testing.T) {
	cb, m := newTestCherrybomb(t)

	m.config.EXPECT().GetConfigPath().Return(testConfigPath).AnyTimes()
	m.config.EXPECT().ConfigExists().Return(false, nil)
	m.config.EXPECT().DefaultConfig().Return(config.DefaultConfig())
	m.config.EXPECT().SaveConfig(gomock.Any(), true).DoAndReturn(func(cfg config.Config, _ bool) error {
		assert.Equal(t, config.TrackerGitHub, cfg.Tracker)
		assert.Empty(t, cfg.BaseURL)
		assert.Equal(t, "10101", cfg.CategoryID)
		return nil
	})

	require.NoError(t, cb.Init(InitOpts{Tracker: "GitHub", NonInteractive: true}))
	assert.Contains(t, m.out.String(), "Set GITHUB_TOKEN")
}

func TestRealCherrybomb_Init_NonInteractiveMissingBaseURL(t *testing.T) {
	cb, m := newTestCherrybomb(t)

	m.config.EXPECT().ConfigExists().Return(false, nil)
	m.config.EXPECT().DefaultConfig().Return(config.DefaultConfig())

	err := cb.Init(InitOpts{NonInteractive: true})
	assert.ErrorIs(t, err, config.ErrMissingBaseURL)
}

func TestRealCherrybomb_Init_UnsupportedTracker(t *testing.T) {
	cb, m := newTestCherrybomb(t)

	m.config.EXPECT().DefaultConfig().Return(config.DefaultConfig())

	err := cb.Init(InitOpts{Tracker: "trello", Force: true})
	assert.ErrorIs(t, err, config.ErrUnsupportedTracker)
}

func TestRealCherrybomb_Init_ExistingConfig(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		cb, m := newTestCherrybomb(t)

		m.config.EXPECT().GetConfigPath().Return(testConfigPath).AnyTimes()
		m.config.EXPECT().ConfigExists().Return(true, nil)
		m.prompt.EXPECT().PromptForConfirmation(testConfigPath+" already exists. Overwrite it?", false).Return(false, nil)

		assert.ErrorIs(t, cb.Init(InitOpts{}), ErrInitCancelled)
	})

	t.Run("non interactive", func(t *testing.T) {
		cb, m := newTestCherrybomb(t)

		m.config.EXPECT().GetConfigPath().Return(testConfigPath).AnyTimes()
		m.config.EXPECT().ConfigExists().Return(true, nil)

		assert.ErrorIs(t, cb.Init(InitOpts{NonInteractive: true}), config.ErrConfigExists)
	})
}
