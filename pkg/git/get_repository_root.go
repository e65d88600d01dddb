package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// GetRepositoryRoot returns the top-level directory of the repository containing path.
// Path must be a directory.
func (g *realGit) GetRepositoryRoot(path string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = path
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%w: %w (command: git rev-parse --show-toplevel, output: %s)",
			ErrNotARepository, err, strings.TrimSpace(string(output)))
	}
	return strings.TrimSpace(string(output)), nil
}
