package repository

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/juanbenitopr/gyt/internal/execshell"
	"github.com/juanbenitopr/gyt/internal/gitrepo"
	"github.com/juanbenitopr/gyt/internal/ui"
	pathutils "github.com/juanbenitopr/gyt/internal/utils/path"
)

const (
	statusBranchLineTemplateConstant   = "On branch %s\n"
	statusSectionHeaderTemplate        = "%s:\n"
	statusEntryLineTemplateConstant    = "  %s\n"
	statusNewFilesHeaderConstant       = "New files"
	statusModifiedFilesHeaderConstant  = "Modified files"
	statusUntrackedFilesHeaderConstant = "Untracked files"
	statusCleanMessageConstant         = "Working tree clean\n"
	commitLineTemplateConstant         = "commit %s\nAuthor: %s\nDate:   %s\n\n    %s\n"
	commitDateDisplayLayoutConstant    = "2006-01-02 15:04:05 -0700"
	branchLineTemplateConstant         = "%s\n"
	remoteLineTemplateConstant         = "%s\n"
)

var repositoryPathSanitizer = pathutils.NewRepositoryPathSanitizer()

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// HumanReadableLoggingProvider reports whether console narration is enabled.
type HumanReadableLoggingProvider func() bool

// ConfigurationProvider supplies the repository command configuration.
type ConfigurationProvider func() CommandConfiguration

func resolveLogger(provider LoggerProvider) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}
	logger := provider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func resolveConfiguration(provider ConfigurationProvider) CommandConfiguration {
	if provider == nil {
		return DefaultCommandConfiguration()
	}
	return provider().sanitize()
}

func humanReadableLoggingEnabled(provider HumanReadableLoggingProvider) bool {
	if provider == nil {
		return false
	}
	return provider()
}

// resolveGitExecutor returns the injected executor when present, otherwise a
// shell executor around the operating system git binary. Console narration is
// attached as an observer only when human-readable logging is active.
func resolveGitExecutor(builder *CommandBuilder) (gitrepo.GitExecutor, error) {
	if builder.GitExecutor != nil {
		return builder.GitExecutor, nil
	}

	logger := resolveLogger(builder.LoggerProvider)
	commandRunner := execshell.NewOSCommandRunner()

	observers := []execshell.CommandEventObserver{}
	if humanReadableLoggingEnabled(builder.HumanReadableLoggingProvider) {
		observers = append(observers, ui.NewConsoleCommandEventLogger(logger))
	}

	return execshell.NewShellExecutor(logger, commandRunner, observers...)
}

// resolveRepository binds a repository handle for the path selected through
// the --path flag or configuration.
func resolveRepository(command *cobra.Command, builder *CommandBuilder, createRepository bool, createProject bool) (*gitrepo.Repository, error) {
	executor, executorError := resolveGitExecutor(builder)
	if executorError != nil {
		return nil, executorError
	}

	configuration := resolveConfiguration(builder.ConfigurationProvider)
	repositoryPath := configuration.Path
	if flagPath, flagError := command.Flags().GetString(pathFlagNameConstant); flagError == nil {
		if trimmedFlagPath := strings.TrimSpace(flagPath); len(trimmedFlagPath) > 0 {
			repositoryPath = trimmedFlagPath
		}
	}

	buildOptions := gitrepo.BuildOptions{
		Path:             repositoryPathSanitizer.Sanitize(repositoryPath),
		CreateRepository: createRepository,
		CreateProject:    createProject,
	}

	return gitrepo.BuildRepository(command.Context(), buildOptions, executor)
}

func resolveRemoteName(command *cobra.Command, builder *CommandBuilder) string {
	if flagRemote, flagError := command.Flags().GetString(remoteFlagNameConstant); flagError == nil {
		if trimmedFlagRemote := strings.TrimSpace(flagRemote); len(trimmedFlagRemote) > 0 {
			return trimmedFlagRemote
		}
	}
	return resolveConfiguration(builder.ConfigurationProvider).Remote
}

func renderStatus(writer io.Writer, snapshot gitrepo.StatusSnapshot) {
	if len(snapshot.Branch) > 0 {
		fmt.Fprintf(writer, statusBranchLineTemplateConstant, snapshot.Branch)
	}

	sections := []struct {
		header  string
		entries []string
	}{
		{header: statusNewFilesHeaderConstant, entries: snapshot.NewFiles},
		{header: statusModifiedFilesHeaderConstant, entries: snapshot.ModifiedFiles},
		{header: statusUntrackedFilesHeaderConstant, entries: snapshot.UntrackedFiles},
	}

	emptySnapshot := true
	for _, section := range sections {
		if len(section.entries) == 0 {
			continue
		}
		emptySnapshot = false
		fmt.Fprintf(writer, statusSectionHeaderTemplate, section.header)
		for _, entry := range section.entries {
			fmt.Fprintf(writer, statusEntryLineTemplateConstant, entry)
		}
	}

	if emptySnapshot {
		fmt.Fprint(writer, statusCleanMessageConstant)
	}
}

func renderCommit(writer io.Writer, commit gitrepo.Commit) {
	fmt.Fprintf(
		writer,
		commitLineTemplateConstant,
		commit.Hash,
		commit.Author,
		formatCommitTimestamp(commit.Timestamp),
		commit.Message,
	)
}

func renderBranches(writer io.Writer, branches []gitrepo.Branch) {
	for _, branch := range branches {
		fmt.Fprintf(writer, branchLineTemplateConstant, branch.String())
	}
}

func renderRemotes(writer io.Writer, remoteNames []string) {
	for _, remoteName := range remoteNames {
		fmt.Fprintf(writer, remoteLineTemplateConstant, remoteName)
	}
}

func formatCommitTimestamp(timestamp time.Time) string {
	return timestamp.Format(commitDateDisplayLayoutConstant)
}
