package repository

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/juanbenitopr/gyt/internal/utils/flags"
)

const (
	initializeUseConstant              = "init"
	initializeShortDescription         = "Initialize repository metadata at the selected path"
	initializeLongDescription          = "init creates repository metadata at the selected path, creating the directory itself when requested."
	initializeProjectFlagNameConstant  = "project"
	initializeProjectFlagUsageConstant = "Create the project directory before initializing metadata"
	initializedMessageTemplateConstant = "Initialized repository at %s\n"
)

func (builder *CommandBuilder) buildInitializeCommand() *cobra.Command {
	var createProject bool

	command := &cobra.Command{
		Use:   initializeUseConstant,
		Short: initializeShortDescription,
		Long:  initializeLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			repository, repositoryError := resolveRepository(command, builder, true, createProject)
			if repositoryError != nil {
				return repositoryError
			}

			fmt.Fprintf(command.OutOrStdout(), initializedMessageTemplateConstant, repository.Path())
			return nil
		},
	}

	flags.AddToggleFlag(command.Flags(), &createProject, initializeProjectFlagNameConstant, "", false, initializeProjectFlagUsageConstant)

	return command
}
