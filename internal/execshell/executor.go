package execshell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	gitCommandNameConstant                      = "git"
	loggerNotConfiguredMessageConstant          = "logger not configured"
	commandRunnerNotConfiguredMessageConstant   = "command runner not configured"
	commandFailedErrorTemplateConstant          = "%s exited with code %d%s"
	commandExecutionErrorTemplateConstant       = "%s could not be executed: %s"
	commandLabelArgumentsSeparatorConstant      = " "
	capturedStandardErrorSuffixTemplateConstant = ": %s"
)

// ErrLoggerNotConfigured indicates a ShellExecutor was constructed without a logger.
var ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)

// ErrCommandRunnerNotConfigured indicates a ShellExecutor was constructed without a runner.
var ErrCommandRunnerNotConfigured = errors.New(commandRunnerNotConfiguredMessageConstant)

// CommandName identifies a supported executable.
type CommandName string

// CommandGit names the external version-control executable every operation delegates to.
const CommandGit CommandName = CommandName(gitCommandNameConstant)

// CommandDetails describes a single tool invocation.
type CommandDetails struct {
	Arguments            []string
	WorkingDirectory     string
	EnvironmentVariables map[string]string
	StandardInput        []byte
}

// ShellCommand combines a CommandName with specific invocation details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// ExecutionResult captures the observable outputs of a finished command.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// CommandRunner represents the ability to run shell commands.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}

// CommandFailedError reports a command that completed with a non-zero exit code.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

// Error describes the failed command including any captured diagnostic text.
func (failure CommandFailedError) Error() string {
	standardErrorSuffix := ""
	trimmedStandardError := strings.TrimSpace(failure.Result.StandardError)
	if len(trimmedStandardError) > 0 {
		standardErrorSuffix = fmt.Sprintf(capturedStandardErrorSuffixTemplateConstant, trimmedStandardError)
	}
	return fmt.Sprintf(commandFailedErrorTemplateConstant, formatCommandLabel(failure.Command), failure.Result.ExitCode, standardErrorSuffix)
}

// CommandExecutionError reports a command that could not be started or observed.
type CommandExecutionError struct {
	Command ShellCommand
	Failure error
}

// Error describes the execution failure.
func (failure CommandExecutionError) Error() string {
	return fmt.Sprintf(commandExecutionErrorTemplateConstant, formatCommandLabel(failure.Command), failure.Failure)
}

// Unwrap exposes the underlying failure for errors.Is and errors.As inspection.
func (failure CommandExecutionError) Unwrap() error {
	return failure.Failure
}

// ShellExecutor coordinates command execution, logging, and lifecycle notifications.
type ShellExecutor struct {
	logger    *zap.Logger
	runner    CommandRunner
	observer  CommandEventObserver
	formatter CommandMessageFormatter
}

// NewShellExecutor constructs a ShellExecutor, validating its collaborators.
// Additional observers receive lifecycle notifications for every command.
func NewShellExecutor(logger *zap.Logger, runner CommandRunner, observers ...CommandEventObserver) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if runner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}

	resolvedObserver := CommandEventObserver(noopCommandEventObserver{})
	if len(observers) > 0 && observers[0] != nil {
		resolvedObserver = observers[0]
	}

	return &ShellExecutor{
		logger:    logger,
		runner:    runner,
		observer:  resolvedObserver,
		formatter: CommandMessageFormatter{},
	}, nil
}

// ExecuteGit runs git with the provided details.
func (executor *ShellExecutor) ExecuteGit(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	command := ShellCommand{Name: CommandGit, Details: details}
	return executor.execute(executionContext, command)
}

func (executor *ShellExecutor) execute(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	executor.observer.CommandStarted(command)
	executor.logger.Debug(executor.formatter.BuildStartedMessage(command))

	executionResult, runError := executor.runner.Run(executionContext, command)
	if runError != nil {
		executionFailure := CommandExecutionError{Command: command, Failure: runError}
		executor.observer.CommandExecutionFailed(command, runError)
		executor.logger.Error(executor.formatter.BuildExecutionFailureMessage(command, runError))
		return ExecutionResult{}, executionFailure
	}

	executor.observer.CommandCompleted(command, executionResult)

	if executionResult.ExitCode != 0 {
		executor.logger.Warn(executor.formatter.BuildFailureMessage(command, executionResult))
		return ExecutionResult{}, CommandFailedError{Command: command, Result: executionResult}
	}

	executor.logger.Debug(executor.formatter.BuildSuccessMessage(command))
	return executionResult, nil
}

func formatCommandLabel(command ShellCommand) string {
	labelParts := []string{string(command.Name)}
	if len(command.Details.Arguments) > 0 {
		labelParts = append(labelParts, strings.Join(command.Details.Arguments, commandLabelArgumentsSeparatorConstant))
	}
	return strings.Join(labelParts, commandLabelArgumentsSeparatorConstant)
}
