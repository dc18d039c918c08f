package execshell

import (
	"context"
	"errors"
	"io/fs"
	"os/exec"

	"go.uber.org/zap"
)

const (
	logFieldCommandNameConstant      = "command_name"
	logFieldExecutableConstant       = "executable"
	logFieldArgumentsConstant        = "arguments"
	logFieldWorkingDirectoryConstant = "working_directory"
	logFieldExitCodeConstant         = "exit_code"
	logFieldStreamsAttachedConstant  = "streams_attached"
)

// ShellExecutorOption customizes a ShellExecutor during construction.
type ShellExecutorOption func(executor *ShellExecutor)

// WithExecutablePath overrides the path used to launch the named command.
func WithExecutablePath(commandName CommandName, executablePath string) ShellExecutorOption {
	return func(executor *ShellExecutor) {
		if len(executablePath) == 0 {
			return
		}
		executor.executablePaths[commandName] = executablePath
	}
}

// WithCommandEventObserver registers an observer notified about every execution.
func WithCommandEventObserver(observer CommandEventObserver) ShellExecutorOption {
	return func(executor *ShellExecutor) {
		if observer == nil {
			return
		}
		executor.observer = observer
	}
}

// ShellExecutor runs commands through a CommandRunner while logging and classifying outcomes.
type ShellExecutor struct {
	logger          *zap.Logger
	runner          CommandRunner
	observer        CommandEventObserver
	formatter       CommandMessageFormatter
	executablePaths map[CommandName]string
}

// NewShellExecutor validates dependencies and constructs a ShellExecutor.
func NewShellExecutor(logger *zap.Logger, runner CommandRunner, options ...ShellExecutorOption) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if runner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}

	executor := &ShellExecutor{
		logger:          logger,
		runner:          runner,
		observer:        noopCommandEventObserver{},
		formatter:       CommandMessageFormatter{},
		executablePaths: map[CommandName]string{},
	}
	for _, option := range options {
		if option != nil {
			option(executor)
		}
	}
	return executor, nil
}

// ExecuteGit runs git with the provided details.
func (executor *ShellExecutor) ExecuteGit(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.Execute(executionContext, ShellCommand{
		Name:       CommandGit,
		Executable: executor.executablePaths[CommandGit],
		Details:    details,
	})
}

// Execute runs an arbitrary command. Non-zero exits yield CommandFailedError
// unless the details allow them; launch failures yield ExecutableNotFoundError
// when the executable is missing and CommandExecutionError otherwise.
func (executor *ShellExecutor) Execute(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	if executionContext == nil {
		executionContext = context.Background()
	}

	executor.logger.Debug(
		executor.formatter.BuildStartedMessage(command),
		zap.String(logFieldCommandNameConstant, string(command.Name)),
		zap.String(logFieldExecutableConstant, command.ExecutablePath()),
		zap.Strings(logFieldArgumentsConstant, command.Details.Arguments),
		zap.String(logFieldWorkingDirectoryConstant, command.Details.WorkingDirectory),
		zap.Bool(logFieldStreamsAttachedConstant, streamsAttached(command.Details.Streams)),
	)
	executor.observer.CommandStarted(command)

	executionResult, runError := executor.runner.Run(executionContext, command)
	if runError != nil {
		executor.observer.CommandExecutionFailed(command, runError)
		executor.logger.Debug(
			executor.formatter.BuildExecutionFailureMessage(command, runError),
			zap.String(logFieldCommandNameConstant, string(command.Name)),
			zap.Error(runError),
		)
		if isExecutableMissing(runError) {
			return ExecutionResult{}, ExecutableNotFoundError{Executable: command.ExecutablePath(), Cause: runError}
		}
		return ExecutionResult{}, CommandExecutionError{Command: command, Cause: runError}
	}

	executor.observer.CommandCompleted(command, executionResult)

	if executionResult.ExitCode != 0 {
		executor.logger.Debug(
			executor.formatter.BuildFailureMessage(command, executionResult),
			zap.String(logFieldCommandNameConstant, string(command.Name)),
			zap.Int(logFieldExitCodeConstant, executionResult.ExitCode),
		)
		if command.Details.AllowNonZeroExit {
			return executionResult, nil
		}
		return ExecutionResult{}, CommandFailedError{Command: command, Result: executionResult}
	}

	executor.logger.Debug(
		executor.formatter.BuildSuccessMessage(command, executionResult),
		zap.String(logFieldCommandNameConstant, string(command.Name)),
		zap.Int(logFieldExitCodeConstant, executionResult.ExitCode),
	)
	return executionResult, nil
}

func isExecutableMissing(runError error) bool {
	return errors.Is(runError, exec.ErrNotFound) || errors.Is(runError, fs.ErrNotExist)
}

func streamsAttached(streams StreamAttachment) bool {
	return streams.Input != nil || streams.Output != nil || streams.Error != nil
}
