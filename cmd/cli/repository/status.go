package repository

import "github.com/spf13/cobra"

const (
	statusUseConstant      = "status"
	statusShortDescription = "Show the classified working tree status"
	statusLongDescription  = "status reruns git status and prints the branch, staged, and untracked entries."
)

func (builder *CommandBuilder) buildStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   statusUseConstant,
		Short: statusShortDescription,
		Long:  statusLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			repository, repositoryError := resolveRepository(command, builder, false, false)
			if repositoryError != nil {
				return repositoryError
			}

			statusSnapshot, statusError := repository.Status(command.Context())
			if statusError != nil {
				return statusError
			}

			renderStatus(command.OutOrStdout(), statusSnapshot)
			return nil
		},
	}
}
