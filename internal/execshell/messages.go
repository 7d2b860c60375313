package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	defaultWorkingDirectoryLabelConstant    = "current directory"
	fallbackUnknownValueLabelConstant       = "unknown"
)

const (
	gitPathFlagConstant                   = "-C"
	gitStatusSubcommandNameConstant       = "status"
	gitLogSubcommandNameConstant          = "log"
	gitShowSubcommandNameConstant         = "show"
	gitAddSubcommandNameConstant          = "add"
	gitCommitSubcommandNameConstant       = "commit"
	gitPushSubcommandNameConstant         = "push"
	gitPullSubcommandNameConstant         = "pull"
	gitCheckoutSubcommandNameConstant     = "checkout"
	gitBranchSubcommandNameConstant       = "branch"
	gitMergeSubcommandNameConstant        = "merge"
	gitRevertSubcommandNameConstant       = "revert"
	gitRemoteSubcommandNameConstant       = "remote"
	gitInitSubcommandNameConstant         = "init"
	gitRevParseSubcommandNameConstant     = "rev-parse"
	gitAbbrevRefFlagConstant              = "--abbrev-ref"
	gitBranchContainsFlagConstant         = "--contains"
	gitCommitAmendFlagConstant            = "--amend"
	gitCommitMessageFlagConstant          = "-m"
	gitAddAllFlagConstant                 = "-A"
	gitRemoteAddSubcommandNameConstant    = "add"
	gitRemoteRemoveSubcommandNameConstant = "remove"
)

const (
	gitStatusStartTemplateConstant        = "Reviewing working tree status in %s"
	gitStatusSuccessTemplateConstant      = "Collected working tree status for %s"
	gitHistoryStartTemplateConstant       = "Reading commit history in %s"
	gitHistorySuccessTemplateConstant     = "Read commit history in %s"
	gitAddAllStartTemplateConstant        = "Staging all changes in %s"
	gitAddAllSuccessTemplateConstant      = "Staged all changes in %s"
	gitAddStartTemplateConstant           = "Staging %s in %s"
	gitAddSuccessTemplateConstant         = "Staged %s in %s"
	gitCommitStartTemplateConstant        = "Creating commit in %s with message %q"
	gitCommitSuccessTemplateConstant      = "Created commit in %s with message %q"
	gitAmendStartTemplateConstant         = "Amending last commit in %s with message %q"
	gitAmendSuccessTemplateConstant       = "Amended last commit in %s with message %q"
	gitPushStartTemplateConstant          = "Pushing %s to %s from %s"
	gitPushSuccessTemplateConstant        = "Pushed %s to %s from %s"
	gitPullStartTemplateConstant          = "Pulling %s from %s into %s"
	gitPullSuccessTemplateConstant        = "Pulled %s from %s into %s"
	gitCheckoutStartTemplateConstant      = "Switching %s to %s"
	gitCheckoutSuccessTemplateConstant    = "%s now on %s"
	gitBranchListStartTemplateConstant    = "Listing branches in %s"
	gitBranchListSuccessTemplateConstant  = "Listed branches in %s"
	gitBranchQueryStartTemplateConstant   = "Finding branches containing %s in %s"
	gitBranchQuerySuccessTemplateConstant = "Found branches containing %s in %s"
	gitBranchStartTemplateConstant        = "Creating branch %s in %s"
	gitBranchSuccessTemplateConstant      = "Created branch %s in %s"
	gitMergeStartTemplateConstant         = "Fast-forwarding %s into the current branch in %s"
	gitMergeSuccessTemplateConstant       = "Fast-forwarded %s into the current branch in %s"
	gitRevertStartTemplateConstant        = "Reverting the last commit in %s"
	gitRevertSuccessTemplateConstant      = "Reverted the last commit in %s"
	gitRemoteAddStartTemplateConstant     = "Registering remote %s in %s"
	gitRemoteAddSuccessTemplateConstant   = "Registered remote %s in %s"
	gitRemoteDropStartTemplateConstant    = "Removing remote %s from %s"
	gitRemoteDropSuccessTemplateConstant  = "Removed remote %s from %s"
	gitRemoteListStartTemplateConstant    = "Listing remotes configured in %s"
	gitRemoteListSuccessTemplateConstant  = "Listed remotes configured in %s"
	gitInitStartTemplateConstant          = "Initializing repository at %s"
	gitInitSuccessTemplateConstant        = "Initialized repository at %s"
	gitCurrentBranchStartTemplateConstant = "Identifying current branch in %s"
	gitCurrentBranchSuccessTemplate       = "Identified current branch in %s"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory, subcommandArguments := splitRepositoryArguments(command.Details.Arguments)
	if len(workingDirectory) == 0 {
		workingDirectory = strings.TrimSpace(command.Details.WorkingDirectory)
	}
	if len(workingDirectory) == 0 {
		workingDirectory = defaultWorkingDirectoryLabelConstant
	}

	startMessage, successMessage := formatter.describeSubcommand(subcommandArguments, workingDirectory)
	if len(startMessage) == 0 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	switch stage {
	case messageStageStart:
		return startMessage
	case messageStageSuccess:
		return successMessage
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, startMessage, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, startMessage, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

// describeSubcommand resolves the start and success messages for the git
// subcommands the facade issues. Empty strings request the generic fallback.
func (formatter CommandMessageFormatter) describeSubcommand(arguments []string, workingDirectory string) (string, string) {
	if len(arguments) == 0 {
		return emptyStringConstant, emptyStringConstant
	}

	subcommand := strings.TrimSpace(arguments[0])
	switch subcommand {
	case gitStatusSubcommandNameConstant:
		return fmt.Sprintf(gitStatusStartTemplateConstant, workingDirectory),
			fmt.Sprintf(gitStatusSuccessTemplateConstant, workingDirectory)
	case gitLogSubcommandNameConstant, gitShowSubcommandNameConstant:
		return fmt.Sprintf(gitHistoryStartTemplateConstant, workingDirectory),
			fmt.Sprintf(gitHistorySuccessTemplateConstant, workingDirectory)
	case gitAddSubcommandNameConstant:
		if containsArgument(arguments, gitAddAllFlagConstant) {
			return fmt.Sprintf(gitAddAllStartTemplateConstant, workingDirectory),
				fmt.Sprintf(gitAddAllSuccessTemplateConstant, workingDirectory)
		}
		target := formatter.ensureValue(firstNonFlagArgument(arguments[1:]))
		return fmt.Sprintf(gitAddStartTemplateConstant, target, workingDirectory),
			fmt.Sprintf(gitAddSuccessTemplateConstant, target, workingDirectory)
	case gitCommitSubcommandNameConstant:
		commitMessage := flagValue(arguments, gitCommitMessageFlagConstant)
		if containsArgument(arguments, gitCommitAmendFlagConstant) {
			return fmt.Sprintf(gitAmendStartTemplateConstant, workingDirectory, commitMessage),
				fmt.Sprintf(gitAmendSuccessTemplateConstant, workingDirectory, commitMessage)
		}
		return fmt.Sprintf(gitCommitStartTemplateConstant, workingDirectory, commitMessage),
			fmt.Sprintf(gitCommitSuccessTemplateConstant, workingDirectory, commitMessage)
	case gitPushSubcommandNameConstant:
		remoteName := formatter.ensureValue(argumentAtIndex(arguments, 1))
		refspec := formatter.ensureValue(argumentAtIndex(arguments, 2))
		return fmt.Sprintf(gitPushStartTemplateConstant, refspec, remoteName, workingDirectory),
			fmt.Sprintf(gitPushSuccessTemplateConstant, refspec, remoteName, workingDirectory)
	case gitPullSubcommandNameConstant:
		remoteName := formatter.ensureValue(argumentAtIndex(arguments, 1))
		refspec := formatter.ensureValue(argumentAtIndex(arguments, 2))
		return fmt.Sprintf(gitPullStartTemplateConstant, refspec, remoteName, workingDirectory),
			fmt.Sprintf(gitPullSuccessTemplateConstant, refspec, remoteName, workingDirectory)
	case gitCheckoutSubcommandNameConstant:
		destination := formatter.ensureValue(argumentAtIndex(arguments, 1))
		return fmt.Sprintf(gitCheckoutStartTemplateConstant, workingDirectory, destination),
			fmt.Sprintf(gitCheckoutSuccessTemplateConstant, workingDirectory, destination)
	case gitBranchSubcommandNameConstant:
		if len(arguments) == 1 {
			return fmt.Sprintf(gitBranchListStartTemplateConstant, workingDirectory),
				fmt.Sprintf(gitBranchListSuccessTemplateConstant, workingDirectory)
		}
		if containsArgument(arguments, gitBranchContainsFlagConstant) {
			commitHash := formatter.ensureValue(flagValue(arguments, gitBranchContainsFlagConstant))
			return fmt.Sprintf(gitBranchQueryStartTemplateConstant, commitHash, workingDirectory),
				fmt.Sprintf(gitBranchQuerySuccessTemplateConstant, commitHash, workingDirectory)
		}
		branchName := formatter.ensureValue(firstNonFlagArgument(arguments[1:]))
		return fmt.Sprintf(gitBranchStartTemplateConstant, branchName, workingDirectory),
			fmt.Sprintf(gitBranchSuccessTemplateConstant, branchName, workingDirectory)
	case gitMergeSubcommandNameConstant:
		sourceBranch := formatter.ensureValue(lastNonFlagArgument(arguments[1:]))
		return fmt.Sprintf(gitMergeStartTemplateConstant, sourceBranch, workingDirectory),
			fmt.Sprintf(gitMergeSuccessTemplateConstant, sourceBranch, workingDirectory)
	case gitRevertSubcommandNameConstant:
		return fmt.Sprintf(gitRevertStartTemplateConstant, workingDirectory),
			fmt.Sprintf(gitRevertSuccessTemplateConstant, workingDirectory)
	case gitRemoteSubcommandNameConstant:
		return formatter.describeRemoteSubcommand(arguments, workingDirectory)
	case gitInitSubcommandNameConstant:
		target := strings.TrimSpace(argumentAtIndex(arguments, 1))
		if len(target) == 0 {
			target = workingDirectory
		}
		return fmt.Sprintf(gitInitStartTemplateConstant, target),
			fmt.Sprintf(gitInitSuccessTemplateConstant, target)
	case gitRevParseSubcommandNameConstant:
		if containsArgument(arguments, gitAbbrevRefFlagConstant) {
			return fmt.Sprintf(gitCurrentBranchStartTemplateConstant, workingDirectory),
				fmt.Sprintf(gitCurrentBranchSuccessTemplate, workingDirectory)
		}
		return emptyStringConstant, emptyStringConstant
	default:
		return emptyStringConstant, emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) describeRemoteSubcommand(arguments []string, workingDirectory string) (string, string) {
	remoteAction := strings.TrimSpace(argumentAtIndex(arguments, 1))
	remoteName := formatter.ensureValue(argumentAtIndex(arguments, 2))
	switch remoteAction {
	case gitRemoteAddSubcommandNameConstant:
		return fmt.Sprintf(gitRemoteAddStartTemplateConstant, remoteName, workingDirectory),
			fmt.Sprintf(gitRemoteAddSuccessTemplateConstant, remoteName, workingDirectory)
	case gitRemoteRemoveSubcommandNameConstant:
		return fmt.Sprintf(gitRemoteDropStartTemplateConstant, remoteName, workingDirectory),
			fmt.Sprintf(gitRemoteDropSuccessTemplateConstant, remoteName, workingDirectory)
	default:
		return fmt.Sprintf(gitRemoteListStartTemplateConstant, workingDirectory),
			fmt.Sprintf(gitRemoteListSuccessTemplateConstant, workingDirectory)
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatter.formatCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	commandLabel := formatCommandLabel(command)
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return commandLabel
	}
	return commandLabel + fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func (formatter CommandMessageFormatter) ensureValue(value string) string {
	trimmedValue := strings.TrimSpace(value)
	if len(trimmedValue) == 0 {
		return fallbackUnknownValueLabelConstant
	}
	return trimmedValue
}

// splitRepositoryArguments separates the repository path bound through the
// global -C flag from the subcommand tokens that follow it.
func splitRepositoryArguments(arguments []string) (string, []string) {
	if len(arguments) >= 2 && strings.TrimSpace(arguments[0]) == gitPathFlagConstant {
		return strings.TrimSpace(arguments[1]), arguments[2:]
	}
	return emptyStringConstant, arguments
}

func containsArgument(arguments []string, value string) bool {
	for _, argument := range arguments {
		if strings.TrimSpace(argument) == value {
			return true
		}
	}
	return false
}

func argumentAtIndex(arguments []string, index int) string {
	if index >= 0 && index < len(arguments) {
		return arguments[index]
	}
	return emptyStringConstant
}

func flagValue(arguments []string, flag string) string {
	for index := 0; index < len(arguments); index++ {
		if strings.TrimSpace(arguments[index]) == flag && index+1 < len(arguments) {
			return strings.TrimSpace(arguments[index+1])
		}
	}
	return emptyStringConstant
}

func firstNonFlagArgument(arguments []string) string {
	for _, argument := range arguments {
		trimmedArgument := strings.TrimSpace(argument)
		if len(trimmedArgument) == 0 {
			continue
		}
		if strings.HasPrefix(trimmedArgument, "-") {
			continue
		}
		return trimmedArgument
	}
	return emptyStringConstant
}

func lastNonFlagArgument(arguments []string) string {
	for index := len(arguments) - 1; index >= 0; index-- {
		trimmedArgument := strings.TrimSpace(arguments[index])
		if len(trimmedArgument) == 0 {
			continue
		}
		if strings.HasPrefix(trimmedArgument, "-") {
			continue
		}
		return trimmedArgument
	}
	return emptyStringConstant
}
