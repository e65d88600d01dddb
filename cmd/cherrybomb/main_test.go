//go:build unit

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/cherrybomb/cmd/cherrybomb/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Cleanup(func() {
		cli.Quiet, cli.Verbose, cli.ConfigPath = false, false, ""
	})

	var out bytes.Buffer
	rootCmd := newRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	rootCmd := newRootCmd()

	for _, name := range []string{"projects", "tag", "init", "config"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}

	for _, flag := range []string{"quiet", "verbose", "config"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestTagCmd_RequiresLineRange(t *testing.T) {
	_, err := runRoot(t, "tag", "main.go")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start")
}

func TestConfigShowCmd_MasksToken(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`tracker: jira
base_url: https://acme.atlassian.net/
email: dev@acme.io
api_token: secret-token-1234
category_id: "10101"
log_file: `+filepath.Join(dir, "cherrybomb.log")+`
`), 0o600))
	t.Setenv("JIRA_API_TOKEN", "")

	out, err := runRoot(t, "config", "show", "-c", configPath)
	require.NoError(t, err)

	assert.Contains(t, out, "base_url: https://acme.atlassian.net\n")
	assert.Contains(t, out, "****1234")
	assert.NotContains(t, out, "secret-token")
}
