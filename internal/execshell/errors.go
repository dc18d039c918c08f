package execshell

import (
	"errors"
	"fmt"
	"strings"
)

const (
	loggerNotConfiguredMessageConstant        = "logger not configured"
	commandRunnerNotConfiguredMessageConstant = "command runner not configured"
	commandFailedTemplateConstant             = "%s exited with code %d"
	commandFailedWithStandardErrorTemplate    = "%s exited with code %d: %s"
	commandExecutionFailedTemplateConstant    = "%s could not be executed: %v"
	executableNotFoundTemplateConstant        = "executable not found: %s"
)

// ErrLoggerNotConfigured indicates a ShellExecutor was constructed without a logger.
var ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)

// ErrCommandRunnerNotConfigured indicates a ShellExecutor was constructed without a runner.
var ErrCommandRunnerNotConfigured = errors.New(commandRunnerNotConfiguredMessageConstant)

// CommandFailedError reports a process that exited with a non-zero code.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

// Error describes the failing command and its exit code.
func (failure CommandFailedError) Error() string {
	standardError := strings.TrimSpace(failure.Result.StandardError)
	if len(standardError) == 0 {
		return fmt.Sprintf(commandFailedTemplateConstant, failure.Command.Name, failure.Result.ExitCode)
	}
	return fmt.Sprintf(commandFailedWithStandardErrorTemplate, failure.Command.Name, failure.Result.ExitCode, standardError)
}

// CommandExecutionError reports a process that could not be launched or awaited.
type CommandExecutionError struct {
	Command ShellCommand
	Cause   error
}

// Error describes the launch failure.
func (failure CommandExecutionError) Error() string {
	return fmt.Sprintf(commandExecutionFailedTemplateConstant, failure.Command.Name, failure.Cause)
}

// Unwrap exposes the underlying launch error.
func (failure CommandExecutionError) Unwrap() error {
	return failure.Cause
}

// ExecutableNotFoundError reports that the executable does not exist at launch time.
type ExecutableNotFoundError struct {
	Executable string
	Cause      error
}

// Error names the missing executable.
func (failure ExecutableNotFoundError) Error() string {
	return fmt.Sprintf(executableNotFoundTemplateConstant, failure.Executable)
}

// Unwrap exposes the underlying lookup error.
func (failure ExecutableNotFoundError) Unwrap() error {
	return failure.Cause
}
