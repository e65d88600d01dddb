//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	fs := NewFS()
	dir := t.TempDir()
	file := filepath.Join(dir, ".cherrybomb", "config.yaml")

	require.NoError(t, fs.WriteFileAtomic(file, []byte("tracker: jira\n"), 0o600))

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "tracker: jira\n", string(data))

	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWriteFileAtomic_Overwrite(t *testing.T) {
	fs := NewFS()
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")

	require.NoError(t, fs.WriteFileAtomic(file, []byte("tracker: jira\n"), 0o600))
	require.NoError(t, fs.WriteFileAtomic(file, []byte("tracker: github\n"), 0o600))

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "tracker: github\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files are cleaned up")
	assert.Equal(t, "config.yaml", entries[0].Name())
}

func TestWriteFileAtomic_TargetIsDirectory(t *testing.T) {
	fs := NewFS()
	dir := t.TempDir()
	target := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), nil, 0o600))

	assert.Error(t, fs.WriteFileAtomic(target, []byte("x"), 0o600))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "the temporary file is removed on failure")
}
