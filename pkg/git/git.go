// Package git provides the Git queries used to locate the workspace of a file.
package git

//go:generate go run go.uber.org/mock/mockgen@latest  -source=git.go -destination=mocks/git.gen.go -package=mocks

// Git interface provides Git command execution capabilities.
type Git interface {
	// GetRepositoryRoot returns the top-level directory of the repository containing path.
	GetRepositoryRoot(path string) (string, error)
}

type realGit struct {
	// No fields needed for basic Git operations
}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}
