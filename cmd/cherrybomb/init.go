package main

import (
	"github.com/lerenn/cherrybomb/cmd/cherrybomb/internal/cli"
	"github.com/lerenn/cherrybomb/pkg/cherrybomb"
	"github.com/spf13/cobra"
)

func createInitCmd() *cobra.Command {
	var opts cherrybomb.InitOpts

	initCmd := &cobra.Command{
		Use:   "init [--tracker <name>] [--base-url <url>] [--email <email>] [--category <id>] [--force]",
		Short: "Initialize cherrybomb configuration",
		Long: `Initialize cherrybomb configuration with interactive prompts or flags.

The API token is only written to the configuration file when --token is given.
Prefer setting JIRA_API_TOKEN (or GITHUB_TOKEN) in your environment or in a .env file.

Flags:
  --tracker          Tracker to file issues in (jira or github)
  --base-url         Tracker URL (skips interactive prompt)
  --email            Account email (skips interactive prompt)
  --category         Project category holding the debt projects (skips interactive prompt)
  --token            API token to store in the configuration file
  --force            Overwrite an existing configuration without confirmation
  --non-interactive  Never prompt, use flags and defaults only`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cb, closeFn, err := cli.NewCherrybomb(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer closeFn()

			return cb.Init(opts)
		},
	}

	// Add flags
	initCmd.Flags().StringVar(&opts.Tracker, "tracker", "", "Tracker to file issues in (jira or github)")
	initCmd.Flags().StringVar(&opts.BaseURL, "base-url", "", "Tracker URL (skips interactive prompt)")
	initCmd.Flags().StringVar(&opts.Email, "email", "", "Account email (skips interactive prompt)")
	initCmd.Flags().StringVar(&opts.Category, "category", "",
		"Project category holding the debt projects (skips interactive prompt)")
	initCmd.Flags().StringVar(&opts.Token, "token", "", "API token to store in the configuration file")
	initCmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite an existing configuration without confirmation")
	initCmd.Flags().BoolVar(&opts.NonInteractive, "non-interactive", false, "Never prompt, use flags and defaults only")

	return initCmd
}
