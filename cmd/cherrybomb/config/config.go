// Package config provides configuration commands for the cherrybomb CLI.
package config

import (
	"github.com/spf13/cobra"
)

// CreateConfigCmd creates the config command with all its subcommands.
func CreateConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"cfg"},
		Short:   "Configuration commands",
		Long:    `Commands for inspecting the cherrybomb configuration.`,
	}

	configCmd.AddCommand(createShowCmd())

	return configCmd
}
