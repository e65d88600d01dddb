package main

import (
	"errors"
	"fmt"

	"github.com/lerenn/cherrybomb/cmd/cherrybomb/internal/cli"
	"github.com/lerenn/cherrybomb/pkg/cherrybomb"
	"github.com/spf13/cobra"
)

func createTagCmd() *cobra.Command {
	var params cherrybomb.TagDebtParams

	tagCmd := &cobra.Command{
		Use:   "tag <file> --start <line> --end <line>",
		Short: "Tag a selection of code as technical debt",
		Long: `Tag lines of a file as technical debt and file an issue for them.

The project, title and description are prompted for unless given as flags.
A preview of the issue is shown before it is created, unless --yes is set.

Examples:
  cherrybomb tag src/api/client.ts --start 12 --end 30
  cherrybomb tag main.go --start 5 --end 5 --project DEBT --title "Remove magic number" \
    --description "Hard-coded timeout" --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params.FilePath = args[0]

			cb, closeFn, err := cli.NewCherrybomb(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer closeFn()

			info, err := cb.TagDebt(cmd.Context(), params)
			if errors.Is(err, cherrybomb.ErrSubmissionCancelled) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), cli.MsgIssueCanceled)
				return nil
			}
			if err != nil {
				return err
			}

			if cli.Quiet {
				if info.Key != "" {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), info.Key)
				}
				return nil
			}
			cli.PrintSuccess(cmd.OutOrStdout(), cli.MsgIssueCreated)
			if info.Key != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", info)
			}
			return nil
		},
	}

	tagCmd.Flags().IntVar(&params.StartLine, "start", 0, "First selected line (1-based)")
	tagCmd.Flags().IntVar(&params.EndLine, "end", 0, "Last selected line (inclusive)")
	tagCmd.Flags().StringVarP(&params.ProjectKey, "project", "p", "", "Project key (skips the project selector)")
	tagCmd.Flags().StringVarP(&params.Title, "title", "t", "", "Issue title (skips the title prompt)")
	tagCmd.Flags().StringVarP(&params.Description, "description", "d", "",
		"Issue description (skips the description editor)")
	tagCmd.Flags().StringVarP(&params.Workspace, "workspace", "w", "",
		"Workspace root (defaults to the Git repository of the file)")
	tagCmd.Flags().BoolVarP(&params.SkipConfirmation, "yes", "y", false, "Create the issue without confirmation")
	_ = tagCmd.MarkFlagRequired("start")
	_ = tagCmd.MarkFlagRequired("end")

	return tagCmd
}
