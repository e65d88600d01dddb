//go:build unit

package cherrybomb

import (
	"errors"
	"testing"

	"github.com/lerenn/cherrybomb/pkg/config"
	"github.com/lerenn/cherrybomb/pkg/issue"
	"github.com/lerenn/cherrybomb/pkg/prompt"
	"github.com/lerenn/cherrybomb/pkg/report"
	"github.com/lerenn/cherrybomb/pkg/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const sourceFile = "import x from 'y';\n\nfunction f() {\n  const x = 1;\n  return x;\n}\n\nexport default f;\n"

var categoryProjects = []tracker.Project{
	{Key: "DEBT", Name: "Tech Debt"},
	{Key: "API", Name: "Public API"},
}

func expectSelection(m *testMocks) {
	m.fs.EXPECT().ResolvePath("src/a.ts").Return("/work/repo/src/a.ts", nil)
	m.fs.EXPECT().ReadFile("/work/repo/src/a.ts").Return([]byte(sourceFile), nil)
	m.git.EXPECT().GetRepositoryRoot("/work/repo/src").Return("/work/repo", nil)
}

func tagParams() TagDebtParams {
	return TagDebtParams{FilePath: "src/a.ts", StartLine: 4, EndLine: 4}
}

func TestRealCherrybomb_TagDebt_Interactive(t *testing.T) {
	cb, m := newTestCherrybomb(t)

	expectedReport := report.DebtReport{
		Title:       "Remove magic constant",
		Description: "D",
		FilePath:    "repo/src/a.ts",
		LineSpan:    "This selection begins on line 4 and ends on line 4",
		Code:        "  const x = 1;",
		ProjectKey:  "API",
	}
	created := &issue.Info{ID: "10042", Key: "API-42", URL: "https://acme.atlassian.net/browse/API-42"}

	gomock.InOrder(
		m.trackers.EXPECT().GetConfiguredTracker(gomock.Any()).Return(m.tracker, nil),
		m.fs.EXPECT().ResolvePath("src/a.ts").Return("/work/repo/src/a.ts", nil),
		m.fs.EXPECT().ReadFile("/work/repo/src/a.ts").Return([]byte(sourceFile), nil),
		m.git.EXPECT().GetRepositoryRoot("/work/repo/src").Return("/work/repo", nil),
		m.tracker.EXPECT().ListProjects(gomock.Any()).Return(categoryProjects, nil),
		m.prompt.EXPECT().PromptSelectProject([]prompt.Choice{
			{Label: "DEBT", Description: "Tech Debt"},
			{Label: "API", Description: "Public API"},
		}).Return(prompt.Choice{Label: "API", Description: "Public API"}, nil),
		m.prompt.EXPECT().PromptForTitle().Return("Remove magic constant", nil),
		m.prompt.EXPECT().PromptForDescription().Return("D", nil),
		m.prompt.EXPECT().PromptForConfirmation("Create this issue in API?", true).Return(true, nil),
		m.tracker.EXPECT().CreateIssue(gomock.Any(), expectedReport).Return(created, nil),
	)

	info, err := cb.TagDebt(t.Context(), tagParams())
	require.NoError(t, err)

	assert.Equal(t, created, info)
	assert.Contains(t, m.out.String(), "Remove magic constant")
	assert.Contains(t, m.out.String(), "Tagged Code:")
}

func TestRealCherrybomb_TagDebt_FromFlags(t *testing.T) {
	cb, m := newTestCherrybomb(t)

	params := tagParams()
	params.ProjectKey = "DEBT"
	params.Title = "T"
	params.Description = "D"
	params.SkipConfirmation = true

	m.trackers.EXPECT().GetConfiguredTracker(gomock.Any()).Return(m.tracker, nil)
	expectSelection(m)
	m.tracker.EXPECT().ListProjects(gomock.Any()).Return(categoryProjects, nil)
	m.tracker.EXPECT().CreateIssue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, r report.DebtReport) (*issue.Info, error) {
			assert.Equal(t, "DEBT", r.ProjectKey)
			assert.Equal(t, "T", r.Title)
			assert.Equal(t, "D", r.Description)
			return &issue.Info{Key: "DEBT-1"}, nil
		})

	info, err := cb.TagDebt(t.Context(), params)
	require.NoError(t, err)
	assert.Equal(t, "DEBT-1", info.Key)
	assert.Empty(t, m.out.String(), "no preview without confirmation")
}

func TestRealCherrybomb_TagDebt_InvalidConfigFailsFirst(t *testing.T) {
	cb, m := newTestCherrybomb(t)

	m.trackers.EXPECT().GetConfiguredTracker(gomock.Any()).Return(nil, config.ErrMissingBaseURL)

	info, err := cb.TagDebt(t.Context(), tagParams())
	assert.Nil(t, info)
	assert.ErrorIs(t, err, config.ErrMissingBaseURL)
}

func TestRealCherrybomb_TagDebt_EmptySelection(t *testing.T) {
	cb, m := newTestCherrybomb(t)

	params := tagParams()
	params.StartLine, params.EndLine = 2, 2

	m.trackers.EXPECT().GetConfiguredTracker(gomock.Any()).Return(m.tracker, nil)
	m.fs.EXPECT().ResolvePath("src/a.ts").Return("/work/repo/src/a.ts", nil)
	m.fs.EXPECT().ReadFile("/work/repo/src/a.ts").Return([]byte(sourceFile), nil)

	_, err := cb.TagDebt(t.Context(), params)
	assert.ErrorIs(t, err, report.ErrEmptySelection)
}

func TestRealCherrybomb_TagDebt_NoProjects(t *testing.T) {
	tests := []struct {
		name     string
		projects []tracker.Project
		err      error
	}{
		{name: "empty category", projects: []tracker.Project{}},
		{name: "listing failed", err: errors.Join(tracker.ErrProjectListingFailed, errors.New("401"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb, m := newTestCherrybomb(t)

			m.trackers.EXPECT().GetConfiguredTracker(gomock.Any()).Return(m.tracker, nil)
			expectSelection(m)
			m.tracker.EXPECT().ListProjects(gomock.Any()).Return(tt.projects, tt.err)

			_, err := cb.TagDebt(t.Context(), tagParams())
			assert.ErrorIs(t, err, ErrNoProjects)
		})
	}
}

func TestRealCherrybomb_TagDebt_UnknownProject(t *testing.T) {
	cb, m := newTestCherrybomb(t)

	params := tagParams()
	params.ProjectKey = "OPS"

	m.trackers.EXPECT().GetConfiguredTracker(gomock.Any()).Return(m.tracker, nil)
	expectSelection(m)
	m.tracker.EXPECT().ListProjects(gomock.Any()).Return(categoryProjects, nil)

	_, err := cb.TagDebt(t.Context(), params)
	assert.ErrorIs(t, err, ErrUnknownProject)
}

func TestRealCherrybomb_TagDebt_Cancelled(t *testing.T) {
	cb, m := newTestCherrybomb(t)

	params := tagParams()
	params.ProjectKey = "DEBT"
	params.Title = "T"
	params.Description = "D"

	m.trackers.EXPECT().GetConfiguredTracker(gomock.Any()).Return(m.tracker, nil)
	expectSelection(m)
	m.tracker.EXPECT().ListProjects(gomock.Any()).Return(categoryProjects, nil)
	m.prompt.EXPECT().PromptForConfirmation(gomock.Any(), true).Return(false, nil)

	_, err := cb.TagDebt(t.Context(), params)
	assert.ErrorIs(t, err, ErrSubmissionCancelled)
}

func TestRealCherrybomb_TagDebt_EmptyTitle(t *testing.T) {
	cb, m := newTestCherrybomb(t)

	params := tagParams()
	params.ProjectKey = "DEBT"
	params.Description = "D"

	m.trackers.EXPECT().GetConfiguredTracker(gomock.Any()).Return(m.tracker, nil)
	expectSelection(m)
	m.tracker.EXPECT().ListProjects(gomock.Any()).Return(categoryProjects, nil)
	m.prompt.EXPECT().PromptForTitle().Return("", prompt.ErrEmptyInput)

	_, err := cb.TagDebt(t.Context(), params)
	assert.ErrorIs(t, err, prompt.ErrEmptyInput)
}

func TestRealCherrybomb_TagDebt_SubmissionFailure(t *testing.T) {
	cb, m := newTestCherrybomb(t)

	params := tagParams()
	params.ProjectKey = "DEBT"
	params.Title = "T"
	params.Description = "D"
	params.SkipConfirmation = true

	m.trackers.EXPECT().GetConfiguredTracker(gomock.Any()).Return(m.tracker, nil)
	expectSelection(m)
	m.tracker.EXPECT().ListProjects(gomock.Any()).Return(categoryProjects, nil)
	m.tracker.EXPECT().CreateIssue(gomock.Any(), gomock.Any()).
		Return(nil, errors.Join(tracker.ErrIssueCreationFailed, errors.New("400")))

	info, err := cb.TagDebt(t.Context(), params)
	assert.Nil(t, info)
	assert.ErrorIs(t, err, tracker.ErrIssueCreationFailed)
	assert.Contains(t, m.logs.String(), "TagDebt failed")
}

func TestRenderPreview(t *testing.T) {
	preview := renderPreview(report.DebtReport{
		Title:       "Remove magic constant",
		Description: "Hard-coded value",
		FilePath:    "repo/src/a.ts",
		LineSpan:    "This selection begins on line 4 and ends on line 4",
		Code:        "const x = 1;",
		ProjectKey:  "DEBT",
	})

	assert.Contains(t, preview, "Remove magic constant")
	assert.Contains(t, preview, "Hard-coded value")
	assert.Contains(t, preview, "repo/src/a.ts")
	assert.Contains(t, preview, "const x = 1;")
}
