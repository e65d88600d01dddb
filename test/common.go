//go:build e2e

package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/lerenn/cherrybomb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testToken = "e2e-token-5678"

// TestSetup holds the test environment setup
type TestSetup struct {
	TempDir    string
	ConfigPath string
	RepoPath   string
	LogPath    string
	BinaryPath string
	Jira       *fakeJira
}

// fakeJira serves the Jira endpoints cherrybomb calls and records created issues.
type fakeJira struct {
	*httptest.Server

	mu       sync.Mutex
	requests int
	projects []map[string]any
	created  []map[string]any
	status   int
}

func newFakeJira(t *testing.T) *fakeJira {
	t.Helper()

	f := &fakeJira{
		status: http.StatusCreated,
		projects: []map[string]any{
			{"key": "DEBT", "name": "Tech Debt", "projectCategory": map[string]any{"id": "10101"}},
			{"key": "OPS", "name": "Operations", "projectCategory": map[string]any{"id": "20202"}},
			{"key": "API", "name": "Public API", "projectCategory": map[string]any{"id": "10101"}},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /rest/api/3/project/search/", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"values": f.projects, "isLast": true})
	})
	mux.HandleFunc("POST /rest/api/3/issue", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		var body map[string]any
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&body)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.created = append(f.created, body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		switch {
		case f.status == http.StatusCreated:
			_, _ = w.Write([]byte(`{"id":"10042","key":"DEBT-42"}`))
		case f.status < http.StatusMultipleChoices:
		default:
			_, _ = w.Write([]byte(`{"errorMessages":["Field 'summary' is required"]}`))
		}
	})

	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests++
		f.mu.Unlock()
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.Close)

	return f
}

// Requests returns the number of requests received so far.
func (f *fakeJira) Requests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

// Created returns the issue payloads received so far.
func (f *fakeJira) Created() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.created...)
}

// SetProjects replaces the projects returned by the search endpoint.
func (f *fakeJira) SetProjects(projects []map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projects = projects
}

// FailCreation makes the issue endpoint reply with the given status.
func (f *fakeJira) FailCreation(status int) {
	f.ReplyToCreation(status)
}

// ReplyToCreation makes the issue endpoint reply with the given status. Only 201 and error statuses carry a body.
func (f *fakeJira) ReplyToCreation(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
}

// setupTestEnvironment creates a temporary test environment with a config pointing at a fake Jira
func setupTestEnvironment(t *testing.T) *TestSetup {
	t.Helper()

	tempDir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	jira := newFakeJira(t)

	setup := &TestSetup{
		TempDir:    tempDir,
		ConfigPath: filepath.Join(tempDir, ".cherrybomb", "config.yaml"),
		RepoPath:   filepath.Join(tempDir, "checkout"),
		LogPath:    filepath.Join(tempDir, ".cherrybomb", "cherrybomb.log"),
		BinaryPath: buildBinary(t),
		Jira:       jira,
	}

	cfg := config.DefaultConfig()
	cfg.BaseURL = jira.URL
	cfg.Email = "dev@acme.io"
	cfg.LogFile = setup.LogPath
	writeConfig(t, setup, cfg)

	return setup
}

// writeConfig writes the configuration file of the test environment
func writeConfig(t *testing.T, setup *TestSetup, cfg config.Config) {
	t.Helper()

	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(setup.ConfigPath), 0o755))
	require.NoError(t, os.WriteFile(setup.ConfigPath, data, 0o600))
}

var (
	buildOnce   sync.Once
	builtBinary string
	buildErr    error
	buildOutput []byte
)

// buildBinary builds the cherrybomb binary once for the whole test run
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "cherrybomb-e2e-*")
		if err != nil {
			buildErr = err
			return
		}
		builtBinary = filepath.Join(dir, "cherrybomb")

		currentDir, err := os.Getwd()
		if err != nil {
			buildErr = err
			return
		}
		projectRoot := filepath.Dir(currentDir)

		cmd := exec.Command("go", "build", "-o", builtBinary, "./cmd/cherrybomb")
		cmd.Dir = projectRoot
		buildOutput, buildErr = cmd.CombinedOutput()
	})

	require.NoError(t, buildErr, "Failed to build cherrybomb binary: %s", string(buildOutput))
	return builtBinary
}

// runCherrybomb runs the cherrybomb binary from the checkout and captures its output
func runCherrybomb(t *testing.T, setup *TestSetup, args ...string) (string, error) {
	t.Helper()
	return runCherrybombWithEnv(t, setup, []string{config.EnvAPIToken + "=" + testToken}, args...)
}

// runCherrybombWithEnv runs the cherrybomb binary with extra environment variables
func runCherrybombWithEnv(t *testing.T, setup *TestSetup, env []string, args ...string) (string, error) {
	t.Helper()

	cmdArgs := append(args, "--config", setup.ConfigPath)
	cmd := exec.Command(setup.BinaryPath, cmdArgs...)
	cmd.Dir = setup.RepoPath
	cmd.Env = append(filteredEnv(), "HOME="+setup.TempDir)
	cmd.Env = append(cmd.Env, env...)

	output, err := cmd.CombinedOutput()
	return string(output), err
}

// filteredEnv returns the environment without variables that override the test configuration
func filteredEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		switch name {
		case config.EnvTracker, config.EnvBaseURL, config.EnvEmail, config.EnvAPIToken,
			config.EnvGitHubToken, config.EnvCategoryID, config.EnvSentryDSN:
			continue
		}
		env = append(env, kv)
	}
	return env
}

// createTestGitRepo creates a Git repository with a source file to tag
func createTestGitRepo(t *testing.T, repoPath string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Join(repoPath, "src"), 0o755))

	cmd := exec.Command("git", "init")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	source := "package src\n\nfunc timeout() int {\n\treturn 30 // seconds\n}\n"
	require.NoError(t, os.WriteFile(filepath.Join(repoPath, "src", "timeout.go"), []byte(source), 0o644))
}
