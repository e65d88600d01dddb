package tracker

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/google/go-github/v62/github"
	"github.com/lerenn/cherrybomb/pkg/adf"
	"github.com/lerenn/cherrybomb/pkg/config"
	"github.com/lerenn/cherrybomb/pkg/issue"
	"github.com/lerenn/cherrybomb/pkg/logger"
	"github.com/lerenn/cherrybomb/pkg/report"
)

const (
	// GitHubName is the name identifier for the GitHub tracker.
	GitHubName = config.TrackerGitHub

	githubPageSize = 100
)

// GitHub represents the GitHub tracker implementation.
// Repositories play the role of projects and a repository topic plays the role of the category.
type GitHub struct {
	cfg    config.Config
	client *github.Client
	logger logger.Logger
}

// NewGitHub creates a new GitHub tracker instance.
// A configured base URL selects a GitHub Enterprise server.
func NewGitHub(cfg config.Config, logger logger.Logger) (*GitHub, error) {
	client := github.NewClient(&http.Client{Timeout: config.HTTPTimeout})
	if cfg.APIToken != "" {
		client = client.WithAuthToken(cfg.APIToken)
	}

	if cfg.BaseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(cfg.BaseURL, cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub base URL %q: %w", cfg.BaseURL, err)
		}
	}

	return &GitHub{
		cfg:    cfg,
		client: client,
		logger: logger,
	}, nil
}

// Name returns the name of the tracker.
func (g *GitHub) Name() string {
	return GitHubName
}

// ListProjects returns the authenticated user's repositories tagged with the category topic.
func (g *GitHub) ListProjects(ctx context.Context) ([]Project, error) {
	projects := []Project{}
	opts := &github.RepositoryListByAuthenticatedUserOptions{
		ListOptions: github.ListOptions{PerPage: githubPageSize},
	}

	for {
		repos, resp, err := g.client.Repositories.ListByAuthenticatedUser(ctx, opts)
		if err != nil {
			g.logger.Errorf("Error fetching projects: %v", err)
			return nil, g.handleGitHubError(ErrProjectListingFailed, err, resp)
		}

		for _, repo := range repos {
			if !slices.Contains(repo.Topics, g.cfg.CategoryID) {
				continue
			}
			name := repo.GetDescription()
			if name == "" {
				name = repo.GetName()
			}
			projects = append(projects, Project{Key: repo.GetFullName(), Name: name})
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	g.logger.Logf("Found %d repositories with topic %s", len(projects), g.cfg.CategoryID)

	return projects, nil
}

// CreateIssue opens a GitHub issue whose body is the Markdown rendering of the report.
func (g *GitHub) CreateIssue(ctx context.Context, r report.DebtReport) (*issue.Info, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIssueCreationFailed, err)
	}

	owner, repo, ok := strings.Cut(r.ProjectKey, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return nil, fmt.Errorf("%w: %w: expected owner/repository, got %q",
			ErrIssueCreationFailed, ErrInvalidProjectKey, r.ProjectKey)
	}

	body := adf.ToMarkdown(report.BuildDescription(r))
	request := &github.IssueRequest{
		Title: github.String(r.Title),
		Body:  github.String(body),
	}
	if len(g.cfg.Labels) > 0 {
		labels := append([]string(nil), g.cfg.Labels...)
		request.Labels = &labels
	}

	created, resp, err := g.client.Issues.Create(ctx, owner, repo, request)
	if err != nil {
		g.logger.Errorf("Error creating issue: %v", err)
		return nil, g.handleGitHubError(ErrIssueCreationFailed, err, resp)
	}

	key := fmt.Sprintf("%s#%d", r.ProjectKey, created.GetNumber())
	g.logger.Logf("Created issue %s", key)

	return &issue.Info{
		ID:  strconv.FormatInt(created.GetID(), 10),
		Key: key,
		URL: created.GetHTMLURL(),
	}, nil
}

// handleGitHubError maps GitHub API errors onto tracker errors.
func (g *GitHub) handleGitHubError(sentinel, err error, resp *github.Response) error {
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %w: check GITHUB_TOKEN environment variable", sentinel, ErrUnauthorized)
		case http.StatusForbidden:
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: %w", sentinel, ErrRateLimited)
			}
			return fmt.Errorf("%w: %w: access forbidden", sentinel, ErrUnauthorized)
		}
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
