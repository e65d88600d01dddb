//go:build e2e

package test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestListProjects lists the projects of the configured category in order
func TestListProjects(t *testing.T) {
	setup := setupTestEnvironment(t)
	createTestGitRepo(t, setup.RepoPath)

	output, err := runCherrybomb(t, setup, "projects")
	require.NoError(t, err, output)

	assert.Equal(t, "  DEBT - Tech Debt\n  API - Public API\n", output)
}

// TestListProjectsEmpty shows the admin message when the category holds no project
func TestListProjectsEmpty(t *testing.T) {
	setup := setupTestEnvironment(t)
	createTestGitRepo(t, setup.RepoPath)
	setup.Jira.SetProjects(nil)

	output, err := runCherrybomb(t, setup, "projects")
	require.Error(t, err)
	assert.Contains(t, output,
		"No projects found. Please contact your cherrybomb admin to ensure proper tracker API integration.")
}

// TestListProjectsMissingToken fails before any request
func TestListProjectsMissingToken(t *testing.T) {
	setup := setupTestEnvironment(t)
	createTestGitRepo(t, setup.RepoPath)

	output, err := runCherrybombWithEnv(t, setup, nil, "projects")
	require.Error(t, err)
	assert.Contains(t, output, "JIRA_API_TOKEN")
	assert.Zero(t, setup.Jira.Requests())
}

// TestListProjectsDotEnv reads the token from a .env file in the working directory
func TestListProjectsDotEnv(t *testing.T) {
	setup := setupTestEnvironment(t)
	createTestGitRepo(t, setup.RepoPath)
	require.NoError(t, os.WriteFile(filepath.Join(setup.RepoPath, ".env"),
		[]byte("JIRA_API_TOKEN="+testToken+"\n"), 0o600))

	output, err := runCherrybombWithEnv(t, setup, nil, "projects")
	require.NoError(t, err, output)
	assert.Contains(t, output, "DEBT - Tech Debt")
}
