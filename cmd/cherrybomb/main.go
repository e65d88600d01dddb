// Package main provides the command-line interface for cherrybomb.
package main

import (
	"os"

	"github.com/lerenn/cherrybomb/cmd/cherrybomb/config"
	"github.com/lerenn/cherrybomb/cmd/cherrybomb/internal/cli"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cherrybomb",
		Short: "cherrybomb - Tag code as technical debt",
		Long: `Tag a selection of code as technical debt and file it as an issue ` +
			`in one of your team's tracker projects.`,
		Version:       cli.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")

	rootCmd.AddCommand(
		createProjectsCmd(),
		createTagCmd(),
		createInitCmd(),
		config.CreateConfigCmd(),
	)

	return rootCmd
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
