package cherrybomb

import (
	"context"

	"github.com/lerenn/cherrybomb/pkg/cherrybomb/consts"
	"github.com/lerenn/cherrybomb/pkg/logger"
	"github.com/lerenn/cherrybomb/pkg/tracker"
)

// ListProjects lists the projects of the configured category.
func (c *realCherrybomb) ListProjects(ctx context.Context) ([]tracker.Project, error) {
	var projects []tracker.Project

	err := c.execute(consts.ListProjects, func(log logger.Logger) error {
		t, err := c.deps.TrackerManager.GetConfiguredTracker(log)
		if err != nil {
			return err
		}

		projects, err = t.ListProjects(ctx)
		if err != nil {
			return err
		}

		log.Logf("Listed %d projects from %s", len(projects), t.Name())
		return nil
	})

	return projects, err
}
