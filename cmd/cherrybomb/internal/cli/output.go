package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/lerenn/cherrybomb/pkg/cherrybomb"
	"github.com/lerenn/cherrybomb/pkg/config"
	"github.com/lerenn/cherrybomb/pkg/tracker"
)

// User-facing messages.
const (
	MsgNoProjects    = "No projects found. Please contact your cherrybomb admin to ensure proper tracker API integration."
	MsgIssueCreated  = "Issue created successfully!"
	MsgIssueFailed   = "Error creating issue. See log for details."
	MsgIssueCanceled = "Issue creation cancelled."
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// PrintSuccess prints a success message unless quiet.
func PrintSuccess(w io.Writer, format string, args ...any) {
	if Quiet {
		return
	}
	_, _ = fmt.Fprintln(w, successStyle.Render(fmt.Sprintf(format, args...)))
}

// PrintError prints the user-facing message for err.
func PrintError(w io.Writer, err error) {
	_, _ = fmt.Fprintln(w, errorStyle.Render(UserMessage(err)))
	if hint := hintFor(err); hint != "" {
		_, _ = fmt.Fprintln(w, hintStyle.Render(hint))
	}
}

// UserMessage maps an error to the message shown to the user.
// Tracker details are left to the diagnostic log.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, cherrybomb.ErrNoProjects):
		return MsgNoProjects
	case errors.Is(err, tracker.ErrIssueCreationFailed):
		return MsgIssueFailed
	case errors.Is(err, tracker.ErrProjectListingFailed):
		return MsgNoProjects
	default:
		return err.Error()
	}
}

func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrMissingBaseURL),
		errors.Is(err, config.ErrMissingEmail),
		errors.Is(err, config.ErrMissingCategory),
		errors.Is(err, config.ErrUnsupportedTracker):
		return "Run: cherrybomb init"
	case errors.Is(err, config.ErrMissingAPIToken):
		return fmt.Sprintf("Set %s (or %s for github) in your environment or in a .env file.",
			config.EnvAPIToken, config.EnvGitHubToken)
	case errors.Is(err, config.ErrConfigExists):
		return "Use --force to overwrite it."
	default:
		return ""
	}
}
