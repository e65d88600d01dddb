package cherrybomb

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/lerenn/cherrybomb/pkg/adf"
	"github.com/lerenn/cherrybomb/pkg/cherrybomb/consts"
	"github.com/lerenn/cherrybomb/pkg/issue"
	"github.com/lerenn/cherrybomb/pkg/logger"
	"github.com/lerenn/cherrybomb/pkg/prompt"
	"github.com/lerenn/cherrybomb/pkg/report"
	"github.com/lerenn/cherrybomb/pkg/tracker"
)

const previewWordWrap = 100

// TagDebtParams contains parameters for TagDebt.
type TagDebtParams struct {
	FilePath string
	// StartLine and EndLine are 1-based and inclusive.
	StartLine int
	EndLine   int
	Workspace string

	// ProjectKey, Title and Description are prompted for when empty.
	ProjectKey  string
	Title       string
	Description string

	// SkipConfirmation submits without showing the preview.
	SkipConfirmation bool
}

// TagDebt captures the selection, collects the issue fields and files the issue.
func (c *realCherrybomb) TagDebt(ctx context.Context, params TagDebtParams) (*issue.Info, error) {
	var info *issue.Info

	err := c.execute(consts.TagDebt, func(log logger.Logger) error {
		t, err := c.deps.TrackerManager.GetConfiguredTracker(log)
		if err != nil {
			return err
		}

		selection, err := report.CaptureSelection(report.CaptureSelectionParams{
			FS:        c.deps.FS,
			Git:       c.deps.Git,
			FilePath:  params.FilePath,
			StartLine: params.StartLine,
			EndLine:   params.EndLine,
			Workspace: params.Workspace,
		})
		if err != nil {
			return err
		}
		log.Logf("Captured %s (%s)", selection.FilePathName, selection.LineSpan())

		projectKey, err := c.selectProject(ctx, t, params.ProjectKey)
		if err != nil {
			return err
		}

		r, err := c.collectReport(*selection, projectKey, params)
		if err != nil {
			return err
		}

		if !params.SkipConfirmation {
			if err := c.confirm(r); err != nil {
				return err
			}
		}

		info, err = t.CreateIssue(ctx, r)
		return err
	})

	return info, err
}

// selectProject lists the projects and picks the requested one or asks the user.
func (c *realCherrybomb) selectProject(ctx context.Context, t tracker.Tracker, requested string) (string, error) {
	projects, err := t.ListProjects(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoProjects, err)
	}
	if len(projects) == 0 {
		return "", ErrNoProjects
	}

	if requested != "" {
		for _, p := range projects {
			if p.Key == requested {
				return p.Key, nil
			}
		}
		return "", fmt.Errorf("%w: %s", ErrUnknownProject, requested)
	}

	choices := make([]prompt.Choice, 0, len(projects))
	for _, p := range projects {
		choices = append(choices, prompt.Choice{Label: p.Key, Description: p.Name})
	}

	choice, err := c.deps.Prompt.PromptSelectProject(choices)
	if err != nil {
		return "", fmt.Errorf("failed to select project: %w", err)
	}

	return choice.Label, nil
}

// collectReport fills the title and description, prompting for missing ones.
func (c *realCherrybomb) collectReport(
	selection report.Selection, projectKey string, params TagDebtParams,
) (report.DebtReport, error) {
	title := params.Title
	if title == "" {
		var err error
		if title, err = c.deps.Prompt.PromptForTitle(); err != nil {
			return report.DebtReport{}, fmt.Errorf("failed to read title: %w", err)
		}
	}

	description := params.Description
	if description == "" {
		var err error
		if description, err = c.deps.Prompt.PromptForDescription(); err != nil {
			return report.DebtReport{}, fmt.Errorf("failed to read description: %w", err)
		}
	}

	r := report.NewDebtReport(selection, projectKey, title, description)
	if err := r.Validate(); err != nil {
		return report.DebtReport{}, err
	}

	return r, nil
}

// confirm shows the issue preview and asks the user to submit it.
func (c *realCherrybomb) confirm(r report.DebtReport) error {
	_, _ = fmt.Fprintln(c.out, renderPreview(r))

	confirmed, err := c.deps.Prompt.PromptForConfirmation(fmt.Sprintf("Create this issue in %s?", r.ProjectKey), true)
	if err != nil {
		return fmt.Errorf("failed to get user confirmation: %w", err)
	}
	if !confirmed {
		return ErrSubmissionCancelled
	}

	return nil
}

// renderPreview renders the issue as it will appear on the tracker.
// The raw Markdown is returned when the terminal renderer is unavailable.
func renderPreview(r report.DebtReport) string {
	markdown := fmt.Sprintf("# %s\n\n_Project: %s_\n\n%s", r.Title, r.ProjectKey, adf.ToMarkdown(report.BuildDescription(r)))

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(previewWordWrap),
	)
	if err != nil {
		return markdown
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}

	return rendered
}
