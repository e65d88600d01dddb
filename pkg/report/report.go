package report

import (
	"strings"
)

// DebtReport describes a piece of code filed as technical debt.
// It is built once from a selection and the user's answers, then submitted once.
type DebtReport struct {
	Title       string
	Description string
	FilePath    string
	LineSpan    string
	Code        string
	ProjectKey  string
}

// NewDebtReport assembles a report from a captured selection and the user's answers.
func NewDebtReport(selection Selection, projectKey, title, description string) DebtReport {
	return DebtReport{
		Title:       title,
		Description: description,
		FilePath:    selection.FilePathName,
		LineSpan:    selection.LineSpan(),
		Code:        selection.Text,
		ProjectKey:  projectKey,
	}
}

// Validate checks that the report can be submitted.
func (r DebtReport) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrEmptySummary
	}
	if strings.TrimSpace(r.ProjectKey) == "" {
		return ErrEmptyProjectKey
	}
	return nil
}
