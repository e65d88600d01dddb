//go:build unit

package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/cherrybomb/pkg/cherrybomb"
	"github.com/lerenn/cherrybomb/pkg/config"
	"github.com/lerenn/cherrybomb/pkg/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withFlags(t *testing.T, configPath string, quiet, verbose bool) {
	t.Helper()

	originalConfigPath, originalQuiet, originalVerbose := ConfigPath, Quiet, Verbose
	ConfigPath, Quiet, Verbose = configPath, quiet, verbose
	t.Cleanup(func() {
		ConfigPath, Quiet, Verbose = originalConfigPath, originalQuiet, originalVerbose
	})
}

func TestNewConfigManager_CustomPath(t *testing.T) {
	withFlags(t, "/tmp/cherrybomb-test/config.yaml", false, false)

	manager, err := NewConfigManager()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cherrybomb-test/config.yaml", manager.GetConfigPath())
}

func TestNewConfigManager_DefaultPath(t *testing.T) {
	withFlags(t, "", false, false)
	t.Setenv("HOME", "/home/dev")

	manager, err := NewConfigManager()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/dev", ".cherrybomb", "config.yaml"), manager.GetConfigPath())
}

func TestNewLogger_WritesLogFile(t *testing.T) {
	withFlags(t, "", false, false)
	logFile := filepath.Join(t.TempDir(), "logs", "cherrybomb.log")

	log, closeFn, err := NewLogger(config.Config{LogFile: logFile})
	require.NoError(t, err)

	log.With("operation", "TagDebt").Errorf("creation failed: %s", "400")
	closeFn()

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "creation failed: 400")
	assert.Contains(t, string(data), "operation=TagDebt")
}

func TestNewCherrybomb_MalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tracker: [jira"), 0o600))
	withFlags(t, path, false, false)

	_, _, err := NewCherrybomb(&bytes.Buffer{})
	assert.ErrorIs(t, err, ErrFailedToLoadConfig)
	assert.ErrorIs(t, err, config.ErrConfigFileParse)
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "no projects", err: cherrybomb.ErrNoProjects, want: MsgNoProjects},
		{
			name: "listing failed",
			err:  errors.Join(cherrybomb.ErrNoProjects, tracker.ErrProjectListingFailed),
			want: MsgNoProjects,
		},
		{name: "creation failed", err: tracker.ErrIssueCreationFailed, want: MsgIssueFailed},
		{name: "other", err: config.ErrMissingBaseURL, want: config.ErrMissingBaseURL.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func TestPrintError_Hints(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, config.ErrMissingAPIToken)

	assert.Contains(t, buf.String(), config.ErrMissingAPIToken.Error())
	assert.Contains(t, buf.String(), config.EnvAPIToken)
}

func TestPrintSuccess_Quiet(t *testing.T) {
	withFlags(t, "", true, false)

	var buf bytes.Buffer
	PrintSuccess(&buf, MsgIssueCreated)
	assert.Empty(t, buf.String())
}
