package main

import (
	"fmt"

	"github.com/lerenn/cherrybomb/cmd/cherrybomb/internal/cli"
	"github.com/lerenn/cherrybomb/pkg/cherrybomb"
	"github.com/spf13/cobra"
)

func createProjectsCmd() *cobra.Command {
	projectsCmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"ls"},
		Short:   "List the projects technical debt can be filed in",
		Long: `List the tracker projects of the configured category.

Examples:
  cherrybomb projects
  cherrybomb ls -c ./config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cb, closeFn, err := cli.NewCherrybomb(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer closeFn()

			projects, err := cb.ListProjects(cmd.Context())
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				return cherrybomb.ErrNoProjects
			}

			for _, p := range projects {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", p)
			}
			return nil
		},
	}

	return projectsCmd
}
