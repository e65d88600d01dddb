package config

import (
	"fmt"

	"github.com/lerenn/cherrybomb/cmd/cherrybomb/internal/cli"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func createShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show the configuration after applying the .env file and the environment.
The API token is masked.

Examples:
  cherrybomb config show
  cherrybomb cfg show -c ./config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cb, closeFn, err := cli.NewCherrybomb(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer closeFn()

			cfg, err := cb.ShowConfig()
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal configuration: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	return showCmd
}
