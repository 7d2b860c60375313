package repository

import (
	"github.com/spf13/cobra"

	"github.com/juanbenitopr/gyt/internal/gitrepo"
)

const (
	groupUseConstant        = "repo"
	groupShortDescription   = "Inspect and mutate a local git repository"
	groupLongDescription    = "repo groups subcommands that wrap the git binary for a single working tree."
	pathFlagNameConstant    = "path"
	pathFlagUsageConstant   = "Path to the repository working tree."
	remoteFlagNameConstant  = "remote"
	remoteFlagUsageConstant = "Remote name to target."
)

// CommandBuilder assembles the repo command group.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	HumanReadableLoggingProvider HumanReadableLoggingProvider
	ConfigurationProvider        ConfigurationProvider
	// GitExecutor overrides the default shell executor, primarily for tests.
	GitExecutor gitrepo.GitExecutor
}

// Build constructs the repo command hierarchy.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   groupUseConstant,
		Short: groupShortDescription,
		Long:  groupLongDescription,
	}

	command.PersistentFlags().String(pathFlagNameConstant, "", pathFlagUsageConstant)

	command.AddCommand(builder.buildInitializeCommand())
	command.AddCommand(builder.buildStatusCommand())
	command.AddCommand(builder.buildHistoryCommand())
	command.AddCommand(builder.buildAddCommand())
	command.AddCommand(builder.buildCommitCommand())
	command.AddCommand(builder.buildAmendCommand())
	command.AddCommand(builder.buildRevertCommand())
	command.AddCommand(builder.buildPushCommand())
	command.AddCommand(builder.buildPullCommand())
	command.AddCommand(builder.buildCheckoutCommand())
	command.AddCommand(builder.buildBranchCommand())
	command.AddCommand(builder.buildMergeCommand())
	command.AddCommand(builder.buildRemoteCommand())

	return command, nil
}
