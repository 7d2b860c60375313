package repository

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/juanbenitopr/gyt/internal/gitrepo"
	"github.com/juanbenitopr/gyt/internal/utils/flags"
)

const (
	pushUseConstant      = "push"
	pushShortDescription = "Upload a local branch to a remote"
	pushLongDescription  = "push uploads the selected local branch to the remote, defaulting to the current branch and origin."
	pullUseConstant      = "pull"
	pullShortDescription = "Integrate a remote branch into a local one"
	pullLongDescription  = "pull integrates the remote branch into the selected local branch, defaulting to the current branch and origin."

	syncLocalBranchFlagNameConstant   = "branch"
	syncLocalBranchFlagUsageConstant  = "Local branch to synchronize; defaults to the current branch."
	syncRemoteBranchFlagNameConstant  = "to"
	syncRemoteBranchFlagUsageConstant = "Remote branch extending the refspec as local:remote."
	syncForceFlagNameConstant         = "force"
	syncForceFlagShorthandConstant    = "f"
	syncForceFlagUsageConstant        = "Force the synchronization"
)

func (builder *CommandBuilder) buildPushCommand() *cobra.Command {
	return builder.buildSynchronizationCommand(
		pushUseConstant,
		pushShortDescription,
		pushLongDescription,
		(*gitrepo.Repository).Push,
	)
}

func (builder *CommandBuilder) buildPullCommand() *cobra.Command {
	return builder.buildSynchronizationCommand(
		pullUseConstant,
		pullShortDescription,
		pullLongDescription,
		(*gitrepo.Repository).Pull,
	)
}

func (builder *CommandBuilder) buildSynchronizationCommand(
	use string,
	shortDescription string,
	longDescription string,
	synchronize func(*gitrepo.Repository, context.Context, gitrepo.SyncOptions) (gitrepo.StatusSnapshot, error),
) *cobra.Command {
	var localBranch string
	var remoteBranch string
	var force bool

	command := &cobra.Command{
		Use:   use,
		Short: shortDescription,
		Long:  longDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			repository, repositoryError := resolveRepository(command, builder, false, false)
			if repositoryError != nil {
				return repositoryError
			}

			syncOptions := gitrepo.SyncOptions{
				RemoteName:   resolveRemoteName(command, builder),
				LocalBranch:  localBranch,
				RemoteBranch: remoteBranch,
				Force:        force,
			}

			statusSnapshot, synchronizeError := synchronize(repository, command.Context(), syncOptions)
			if synchronizeError != nil {
				return synchronizeError
			}

			renderStatus(command.OutOrStdout(), statusSnapshot)
			return nil
		},
	}

	command.Flags().String(remoteFlagNameConstant, "", remoteFlagUsageConstant)
	command.Flags().StringVar(&localBranch, syncLocalBranchFlagNameConstant, "", syncLocalBranchFlagUsageConstant)
	command.Flags().StringVar(&remoteBranch, syncRemoteBranchFlagNameConstant, "", syncRemoteBranchFlagUsageConstant)
	flags.AddToggleFlag(command.Flags(), &force, syncForceFlagNameConstant, syncForceFlagShorthandConstant, false, syncForceFlagUsageConstant)

	return command
}
