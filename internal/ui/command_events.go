package ui

import (
	"fmt"
	"io"

	"github.com/temirov/homegit/internal/execshell"
)

const (
	verboseCommandLineTemplateConstant = "Running: %s\n"
)

// VerboseCommandReporter echoes every command line before it runs.
type VerboseCommandReporter struct {
	output    io.Writer
	formatter execshell.CommandMessageFormatter
}

// NewVerboseCommandReporter constructs a reporter writing to the provided output.
func NewVerboseCommandReporter(output io.Writer) *VerboseCommandReporter {
	if output == nil {
		output = io.Discard
	}
	return &VerboseCommandReporter{output: output, formatter: execshell.CommandMessageFormatter{}}
}

// CommandStarted implements execshell.CommandEventObserver by printing the command line.
func (reporter *VerboseCommandReporter) CommandStarted(command execshell.ShellCommand) {
	if reporter == nil {
		return
	}
	fmt.Fprintf(reporter.output, verboseCommandLineTemplateConstant, reporter.formatter.FormatCommandLine(command))
}

// CommandCompleted implements execshell.CommandEventObserver.
func (reporter *VerboseCommandReporter) CommandCompleted(execshell.ShellCommand, execshell.ExecutionResult) {}

// CommandExecutionFailed implements execshell.CommandEventObserver.
func (reporter *VerboseCommandReporter) CommandExecutionFailed(execshell.ShellCommand, error) {}
