package repository

import (
	"github.com/spf13/cobra"

	"github.com/juanbenitopr/gyt/internal/utils/flags"
)

const (
	addUseConstant              = "add [file ...]"
	addShortDescription         = "Stage files for the next commit"
	addLongDescription          = "add stages the listed files, or every change when --all is set, and prints the refreshed status."
	addAllFlagNameConstant      = "all"
	addAllFlagShorthandConstant = "A"
	addAllFlagUsageConstant     = "Stage every change in the working tree"

	commitUseConstant              = "commit"
	commitShortDescription         = "Record the staged changes"
	commitLongDescription          = "commit records the staged changes with the provided message and prints the refreshed status."
	commitMessageFlagNameConstant  = "message"
	commitMessageFlagShorthand     = "m"
	commitMessageFlagUsageConstant = "Commit message."

	amendUseConstant      = "amend"
	amendShortDescription = "Rewrite the last commit message"
	amendLongDescription  = "amend replaces the last commit message and prints the rewritten commit."

	revertUseConstant      = "revert"
	revertShortDescription = "Revert the last commit"
	revertLongDescription  = "revert records a new commit undoing the last one and prints it."
)

func (builder *CommandBuilder) buildAddCommand() *cobra.Command {
	var stageAllFiles bool

	command := &cobra.Command{
		Use:   addUseConstant,
		Short: addShortDescription,
		Long:  addLongDescription,
		RunE: func(command *cobra.Command, arguments []string) error {
			repository, repositoryError := resolveRepository(command, builder, false, false)
			if repositoryError != nil {
				return repositoryError
			}

			statusSnapshot, addError := repository.AddFiles(command.Context(), arguments, stageAllFiles)
			if addError != nil {
				return addError
			}

			renderStatus(command.OutOrStdout(), statusSnapshot)
			return nil
		},
	}

	flags.AddToggleFlag(command.Flags(), &stageAllFiles, addAllFlagNameConstant, addAllFlagShorthandConstant, false, addAllFlagUsageConstant)

	return command
}

func (builder *CommandBuilder) buildCommitCommand() *cobra.Command {
	var commitMessage string

	command := &cobra.Command{
		Use:   commitUseConstant,
		Short: commitShortDescription,
		Long:  commitLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			repository, repositoryError := resolveRepository(command, builder, false, false)
			if repositoryError != nil {
				return repositoryError
			}

			statusSnapshot, commitError := repository.CreateCommit(command.Context(), commitMessage)
			if commitError != nil {
				return commitError
			}

			renderStatus(command.OutOrStdout(), statusSnapshot)
			return nil
		},
	}

	command.Flags().StringVarP(&commitMessage, commitMessageFlagNameConstant, commitMessageFlagShorthand, "", commitMessageFlagUsageConstant)

	return command
}

func (builder *CommandBuilder) buildAmendCommand() *cobra.Command {
	var commitMessage string

	command := &cobra.Command{
		Use:   amendUseConstant,
		Short: amendShortDescription,
		Long:  amendLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			repository, repositoryError := resolveRepository(command, builder, false, false)
			if repositoryError != nil {
				return repositoryError
			}

			amendedCommit, amendError := repository.AmendLastCommitMessage(command.Context(), commitMessage)
			if amendError != nil {
				return amendError
			}

			renderCommit(command.OutOrStdout(), amendedCommit)
			return nil
		},
	}

	command.Flags().StringVarP(&commitMessage, commitMessageFlagNameConstant, commitMessageFlagShorthand, "", commitMessageFlagUsageConstant)

	return command
}

func (builder *CommandBuilder) buildRevertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   revertUseConstant,
		Short: revertShortDescription,
		Long:  revertLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			repository, repositoryError := resolveRepository(command, builder, false, false)
			if repositoryError != nil {
				return repositoryError
			}

			revertCommit, revertError := repository.RevertLastCommit(command.Context())
			if revertError != nil {
				return revertError
			}

			renderCommit(command.OutOrStdout(), revertCommit)
			return nil
		},
	}
}
