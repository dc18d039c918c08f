package execshell

import (
	"context"
	"io"
)

const (
	commandGitStringConstant = "git"
)

// CommandName identifies a supported executable.
type CommandName string

// CommandGit identifies the git executable.
const CommandGit CommandName = CommandName(commandGitStringConstant)

// StreamAttachment connects caller-provided streams to a child process.
// Nil members are captured into the ExecutionResult instead.
type StreamAttachment struct {
	Input  io.Reader
	Output io.Writer
	Error  io.Writer
}

// CommandDetails describes a single executable invocation.
type CommandDetails struct {
	Arguments            []string
	WorkingDirectory     string
	EnvironmentVariables map[string]string
	StandardInput        []byte
	Streams              StreamAttachment
	// AllowNonZeroExit returns the result of a non-zero exit instead of a CommandFailedError.
	AllowNonZeroExit bool
}

// ShellCommand combines a command name, the resolved executable, and invocation details.
type ShellCommand struct {
	Name       CommandName
	Executable string
	Details    CommandDetails
}

// ExecutablePath returns the path used to launch the command.
func (command ShellCommand) ExecutablePath() string {
	if len(command.Executable) > 0 {
		return command.Executable
	}
	return string(command.Name)
}

// ExecutionResult captures the observable results of executing a command.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// CommandRunner launches a ShellCommand and reports its result.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}
