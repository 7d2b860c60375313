package repository

import (
	"github.com/spf13/cobra"

	"github.com/juanbenitopr/gyt/internal/gitrepo"
)

const (
	historyUseConstant             = "log"
	historyShortDescription        = "Show a commit reachable from the current tip"
	historyLongDescription         = "log prints the last commit, or the commit a number of ancestor steps behind the tip when --offset is set."
	historyOffsetFlagNameConstant  = "offset"
	historyOffsetFlagUsageConstant = "Number of ancestor steps behind the tip."
)

func (builder *CommandBuilder) buildHistoryCommand() *cobra.Command {
	var ancestorOffset int

	command := &cobra.Command{
		Use:   historyUseConstant,
		Short: historyShortDescription,
		Long:  historyLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			repository, repositoryError := resolveRepository(command, builder, false, false)
			if repositoryError != nil {
				return repositoryError
			}

			var commit gitrepo.Commit
			var commitError error
			if ancestorOffset > 0 {
				commit, commitError = repository.CommitAtOffset(command.Context(), ancestorOffset)
			} else {
				commit, commitError = repository.LastCommit(command.Context())
			}
			if commitError != nil {
				return commitError
			}

			renderCommit(command.OutOrStdout(), commit)
			return nil
		},
	}

	command.Flags().IntVar(&ancestorOffset, historyOffsetFlagNameConstant, 0, historyOffsetFlagUsageConstant)

	return command
}
