package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/cherrybomb/pkg/fs"
	"github.com/lerenn/cherrybomb/pkg/git"
)

// Selection is a span of lines taken from a file of a workspace.
type Selection struct {
	// FilePathName is the file path prefixed by the workspace directory name.
	FilePathName string
	StartLine    int
	EndLine      int
	Text         string
}

// LineSpan describes the selected lines in a sentence, numbered from 1.
func (s Selection) LineSpan() string {
	return fmt.Sprintf("This selection begins on line %d and ends on line %d", s.StartLine, s.EndLine)
}

// CaptureSelectionParams contains parameters for CaptureSelection.
type CaptureSelectionParams struct {
	FS  fs.FS
	Git git.Git

	FilePath string
	// StartLine and EndLine are 1-based and inclusive.
	StartLine int
	EndLine   int
	// Workspace overrides the workspace root. Defaults to the Git repository of the file.
	Workspace string
}

// CaptureSelection reads the selected lines of a file and names the file relative to its workspace.
func CaptureSelection(params CaptureSelectionParams) (*Selection, error) {
	filePath, err := params.FS.ResolvePath(params.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", params.FilePath, err)
	}

	data, err := params.FS.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	text, err := extractLines(string(data), params.StartLine, params.EndLine)
	if err != nil {
		return nil, err
	}

	root, err := workspaceRoot(params, filePath)
	if err != nil {
		return nil, err
	}

	rel, err := filepath.Rel(root, filePath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("%w: %s is outside of %s", ErrNotInWorkspace, filePath, root)
	}

	return &Selection{
		FilePathName: filepath.Join(filepath.Base(root), rel),
		StartLine:    params.StartLine,
		EndLine:      params.EndLine,
		Text:         text,
	}, nil
}

// extractLines returns lines start to end of content, joined verbatim.
func extractLines(content string, start, end int) (string, error) {
	lines := strings.Split(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	if start < 1 || end < start || end > len(lines) {
		return "", fmt.Errorf("%w: lines %d to %d of a %d line file", ErrInvalidLineRange, start, end, len(lines))
	}

	text := strings.Join(lines[start-1:end], "\n")
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptySelection
	}

	return text, nil
}

// workspaceRoot returns the explicit workspace or the Git repository holding the file.
func workspaceRoot(params CaptureSelectionParams, filePath string) (string, error) {
	if params.Workspace != "" {
		root, err := params.FS.ResolvePath(params.Workspace)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrNotInWorkspace, err)
		}
		return root, nil
	}

	root, err := params.Git.GetRepositoryRoot(filepath.Dir(filePath))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNotInWorkspace, err)
	}
	return root, nil
}
