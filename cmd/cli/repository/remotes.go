package repository

import "github.com/spf13/cobra"

const (
	remoteUseConstant      = "remote"
	remoteShortDescription = "List or manage repository remotes"
	remoteLongDescription  = "remote lists the configured remotes; the add and remove subcommands manage them."

	remoteAddUseConstant      = "add <url>"
	remoteAddShortDescription = "Register a remote"
	remoteAddLongDescription  = "add registers the URL under the selected remote name, defaulting to origin."

	remoteRemoveUseConstant      = "remove"
	remoteRemoveShortDescription = "Delete a remote"
	remoteRemoveLongDescription  = "remove deletes the selected remote, defaulting to origin."
)

func (builder *CommandBuilder) buildRemoteCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   remoteUseConstant,
		Short: remoteShortDescription,
		Long:  remoteLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			repository, repositoryError := resolveRepository(command, builder, false, false)
			if repositoryError != nil {
				return repositoryError
			}

			remoteNames, listError := repository.Remotes(command.Context())
			if listError != nil {
				return listError
			}

			renderRemotes(command.OutOrStdout(), remoteNames)
			return nil
		},
	}

	addCommand := &cobra.Command{
		Use:   remoteAddUseConstant,
		Short: remoteAddShortDescription,
		Long:  remoteAddLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			repository, repositoryError := resolveRepository(command, builder, false, false)
			if repositoryError != nil {
				return repositoryError
			}

			statusSnapshot, addError := repository.AddRemote(command.Context(), arguments[0], resolveRemoteName(command, builder))
			if addError != nil {
				return addError
			}

			renderStatus(command.OutOrStdout(), statusSnapshot)
			return nil
		},
	}
	addCommand.Flags().String(remoteFlagNameConstant, "", remoteFlagUsageConstant)

	removeCommand := &cobra.Command{
		Use:   remoteRemoveUseConstant,
		Short: remoteRemoveShortDescription,
		Long:  remoteRemoveLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			repository, repositoryError := resolveRepository(command, builder, false, false)
			if repositoryError != nil {
				return repositoryError
			}

			statusSnapshot, removeError := repository.RemoveRemote(command.Context(), resolveRemoteName(command, builder))
			if removeError != nil {
				return removeError
			}

			renderStatus(command.OutOrStdout(), statusSnapshot)
			return nil
		},
	}
	removeCommand.Flags().String(remoteFlagNameConstant, "", remoteFlagUsageConstant)

	command.AddCommand(addCommand)
	command.AddCommand(removeCommand)

	return command
}
