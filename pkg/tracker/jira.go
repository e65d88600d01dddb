package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/lerenn/cherrybomb/pkg/adf"
	"github.com/lerenn/cherrybomb/pkg/config"
	"github.com/lerenn/cherrybomb/pkg/issue"
	"github.com/lerenn/cherrybomb/pkg/logger"
	"github.com/lerenn/cherrybomb/pkg/report"
)

const (
	// JiraName is the name identifier for the Jira tracker.
	JiraName = config.TrackerJira

	jiraProjectSearchPath = "/rest/api/3/project/search/"
	jiraIssuePath         = "/rest/api/3/issue"
	jiraBrowsePath        = "/browse/"

	// jiraMaxProjectPages bounds the project search on servers that never report the last page.
	jiraMaxProjectPages = 1000
)

// Jira represents the Jira Cloud tracker implementation.
type Jira struct {
	cfg    config.Config
	client *http.Client
	logger logger.Logger
}

// NewJira creates a new Jira tracker instance.
func NewJira(cfg config.Config, logger logger.Logger) *Jira {
	return &Jira{
		cfg:    cfg,
		client: &http.Client{Timeout: config.HTTPTimeout},
		logger: logger,
	}
}

// Name returns the name of the tracker.
func (j *Jira) Name() string {
	return JiraName
}

type jiraProjectPage struct {
	Values  []jiraProject `json:"values"`
	IsLast  *bool         `json:"isLast"`
	StartAt *int          `json:"startAt"`
	Total   *int          `json:"total"`
}

type jiraProject struct {
	Key             string               `json:"key"`
	Name            string               `json:"name"`
	ProjectCategory *jiraProjectCategory `json:"projectCategory"`
}

type jiraProjectCategory struct {
	ID string `json:"id"`
}

// ListProjects fetches every project and keeps those of the configured category.
func (j *Jira) ListProjects(ctx context.Context) ([]Project, error) {
	projects := []Project{}
	known := make(map[string]struct{})
	seen := 0

	for pages := 0; ; pages++ {
		if pages == jiraMaxProjectPages {
			j.logger.Errorf("Stopped fetching projects after %d pages", pages)
			break
		}

		url := j.cfg.BaseURL + jiraProjectSearchPath
		if seen > 0 {
			url += "?startAt=" + strconv.Itoa(seen)
		}

		data, err := j.do(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, j.failure(ErrProjectListingFailed, "Error fetching projects", err)
		}

		var page jiraProjectPage
		if err := json.Unmarshal(data, &page); err != nil {
			return nil, j.failure(ErrProjectListingFailed, "Error fetching projects",
				fmt.Errorf("failed to decode response: %w", err))
		}

		// A page starting elsewhere than requested means the server ignores startAt.
		if page.StartAt != nil && *page.StartAt != seen {
			j.logger.Errorf("Stopped fetching projects: asked for startAt=%d, got %d", seen, *page.StartAt)
			break
		}

		fresh := 0
		for _, p := range page.Values {
			if _, ok := known[p.Key]; ok {
				continue
			}
			known[p.Key] = struct{}{}
			fresh++

			if p.ProjectCategory == nil || p.ProjectCategory.ID != j.cfg.CategoryID {
				continue
			}
			projects = append(projects, Project{Key: p.Key, Name: p.Name})
		}

		seen += len(page.Values)
		if page.IsLast == nil || *page.IsLast || len(page.Values) == 0 {
			break
		}
		if fresh == 0 {
			j.logger.Errorf("Stopped fetching projects: page at startAt=%d repeats known projects", seen-len(page.Values))
			break
		}
		if page.Total != nil && seen >= *page.Total {
			break
		}
	}

	j.logger.Logf("Found %d projects in category %s", len(projects), j.cfg.CategoryID)

	return projects, nil
}

type jiraIssueRequest struct {
	Fields jiraIssueFields `json:"fields"`
}

type jiraIssueFields struct {
	Project     jiraKeyRef    `json:"project"`
	FixVersions []jiraNameRef `json:"fixVersions,omitempty"`
	Summary     string        `json:"summary"`
	Description adf.Node      `json:"description"`
	IssueType   jiraNameRef   `json:"issuetype"`
	Labels      []string      `json:"labels,omitempty"`
}

type jiraKeyRef struct {
	Key string `json:"key"`
}

type jiraNameRef struct {
	Name string `json:"name"`
}

type jiraIssueResponse struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Self string `json:"self"`
}

// CreateIssue files the report as a Jira issue. It is never retried.
func (j *Jira) CreateIssue(ctx context.Context, r report.DebtReport) (*issue.Info, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIssueCreationFailed, err)
	}

	data, err := j.do(ctx, http.MethodPost, j.cfg.BaseURL+jiraIssuePath, j.issueRequest(r))
	if err != nil {
		return nil, j.failure(ErrIssueCreationFailed, "Error creating issue", err)
	}

	// Any 2xx means the issue exists. The body only adds its key.
	var created jiraIssueResponse
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &created); err != nil {
			j.logger.Errorf("Created issue but could not decode the response: %v", err)
		}
	}

	if created.Key == "" {
		j.logger.Errorf("Created issue in %s: %v", r.ProjectKey, issue.ErrIssueKeyMissing)
		return &issue.Info{ID: created.ID}, nil
	}

	j.logger.Logf("Created issue %s", created.Key)

	return &issue.Info{
		ID:  created.ID,
		Key: created.Key,
		URL: j.cfg.BaseURL + jiraBrowsePath + created.Key,
	}, nil
}

func (j *Jira) issueRequest(r report.DebtReport) jiraIssueRequest {
	fields := jiraIssueFields{
		Project:     jiraKeyRef{Key: r.ProjectKey},
		Summary:     r.Title,
		Description: report.BuildDescription(r),
		IssueType:   jiraNameRef{Name: j.cfg.IssueType},
		Labels:      j.cfg.Labels,
	}
	if j.cfg.FixVersion != "" {
		fields.FixVersions = []jiraNameRef{{Name: j.cfg.FixVersion}}
	}
	return jiraIssueRequest{Fields: fields}
}

// responseError is a non-2xx answer from the tracker.
type responseError struct {
	StatusCode int
	Body       string
}

func (e *responseError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// do sends an authenticated JSON request and returns the body of a 2xx answer.
func (j *Jira) do(ctx context.Context, method, url string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Basic "+j.cfg.Credential())
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := j.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &responseError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	return data, nil
}

// failure logs the detail of a failed call and wraps it into the sentinel.
func (j *Jira) failure(sentinel error, message string, err error) error {
	var respErr *responseError
	if !errors.As(err, &respErr) {
		j.logger.Errorf("%s: %v", message, err)
		return fmt.Errorf("%w: %w", sentinel, err)
	}

	if respErr.Body != "" {
		j.logger.Errorf("%s: %s", message, respErr.Body)
	} else {
		j.logger.Errorf("%s: %v", message, err)
	}

	if respErr.StatusCode == http.StatusUnauthorized || respErr.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: %w: %w", sentinel, ErrUnauthorized, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
