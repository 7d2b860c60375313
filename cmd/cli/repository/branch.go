package repository

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/juanbenitopr/gyt/internal/gitrepo"
	"github.com/juanbenitopr/gyt/internal/utils/flags"
)

const (
	checkoutUseConstant      = "checkout <destination>"
	checkoutShortDescription = "Switch the working tree to a branch or revision"
	checkoutLongDescription  = "checkout switches the working tree to the provided destination and prints the refreshed status."

	branchUseConstant               = "branch [name]"
	branchShortDescription          = "List, create, or query branches"
	branchLongDescription           = "branch lists local branches, creates one when a name is provided, or lists branches containing a commit when --contains is set."
	branchMoveFlagNameConstant      = "move"
	branchMoveFlagUsageConstant     = "Check out the new branch immediately"
	branchContainsFlagNameConstant  = "contains"
	branchContainsFlagUsageConstant = "List branches whose history includes the commit hash."
	branchCreatedTemplateConstant   = "Created branch %s\n"

	mergeUseConstant            = "merge <target> <source>"
	mergeShortDescription       = "Fast-forward a target branch to a source branch"
	mergeLongDescription        = "merge checks out the target branch and fast-forwards it to the source branch; diverged histories fail instead of producing a merge commit."
	mergeSquashFlagNameConstant = "squash"
	mergeSquashFlagUsage        = "Collapse the merged history into the working tree"
	mergeCommitFlagNameConstant = "commit"
	mergeCommitFlagUsage        = "Record the merge result instead of leaving it staged"
	mergeExpectedArgumentCount  = 2
	mergedTemplateConstant      = "Merged into %s\n"
)

func (builder *CommandBuilder) buildCheckoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   checkoutUseConstant,
		Short: checkoutShortDescription,
		Long:  checkoutLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			repository, repositoryError := resolveRepository(command, builder, false, false)
			if repositoryError != nil {
				return repositoryError
			}

			statusSnapshot, checkoutError := repository.Checkout(command.Context(), arguments[0])
			if checkoutError != nil {
				return checkoutError
			}

			renderStatus(command.OutOrStdout(), statusSnapshot)
			return nil
		},
	}
}

func (builder *CommandBuilder) buildBranchCommand() *cobra.Command {
	var moveToBranch bool
	var containsCommitHash string

	command := &cobra.Command{
		Use:   branchUseConstant,
		Short: branchShortDescription,
		Long:  branchLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			repository, repositoryError := resolveRepository(command, builder, false, false)
			if repositoryError != nil {
				return repositoryError
			}

			if len(containsCommitHash) > 0 {
				containingBranches, queryError := repository.BranchesContainingCommit(command.Context(), gitrepo.Commit{Hash: containsCommitHash})
				if queryError != nil {
					return queryError
				}
				renderBranches(command.OutOrStdout(), containingBranches)
				return nil
			}

			if len(arguments) == 0 {
				localBranches, listError := repository.LocalBranches(command.Context())
				if listError != nil {
					return listError
				}
				renderBranches(command.OutOrStdout(), localBranches)
				return nil
			}

			createdBranch, createError := repository.CreateBranch(command.Context(), arguments[0], moveToBranch)
			if createError != nil {
				return createError
			}

			fmt.Fprintf(command.OutOrStdout(), branchCreatedTemplateConstant, createdBranch.String())
			return nil
		},
	}

	flags.AddToggleFlag(command.Flags(), &moveToBranch, branchMoveFlagNameConstant, "", false, branchMoveFlagUsageConstant)
	command.Flags().StringVar(&containsCommitHash, branchContainsFlagNameConstant, "", branchContainsFlagUsageConstant)

	return command
}

func (builder *CommandBuilder) buildMergeCommand() *cobra.Command {
	var squashMerge bool
	var commitMerge bool

	command := &cobra.Command{
		Use:   mergeUseConstant,
		Short: mergeShortDescription,
		Long:  mergeLongDescription,
		Args:  cobra.ExactArgs(mergeExpectedArgumentCount),
		RunE: func(command *cobra.Command, arguments []string) error {
			repository, repositoryError := resolveRepository(command, builder, false, false)
			if repositoryError != nil {
				return repositoryError
			}

			mergeOptions := gitrepo.MergeOptions{
				Squash:    squashMerge,
				NewCommit: commitMerge,
			}

			mergedBranch, mergeError := repository.MergeBranches(
				command.Context(),
				gitrepo.Branch(arguments[0]),
				gitrepo.Branch(arguments[1]),
				mergeOptions,
			)
			if mergeError != nil {
				return mergeError
			}

			fmt.Fprintf(command.OutOrStdout(), mergedTemplateConstant, mergedBranch.String())
			return nil
		},
	}

	flags.AddToggleFlag(command.Flags(), &squashMerge, mergeSquashFlagNameConstant, "", false, mergeSquashFlagUsage)
	flags.AddToggleFlag(command.Flags(), &commitMerge, mergeCommitFlagNameConstant, "", false, mergeCommitFlagUsage)

	return command
}
