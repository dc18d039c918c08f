package ui_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/homegit/internal/execshell"
	"github.com/temirov/homegit/internal/ui"
)

const (
	testExecutablePathConstant      = "/usr/bin/git"
	testExpectedVerboseLineConstant = "Running: /usr/bin/git --git-dir=/home/user/.homegit/default commit -m \"first commit\"\n"
)

func TestVerboseCommandReporterPrintsOnlyStartedCommands(testInstance *testing.T) {
	command := execshell.ShellCommand{
		Name:       execshell.CommandGit,
		Executable: testExecutablePathConstant,
		Details: execshell.CommandDetails{
			Arguments: []string{"--git-dir=/home/user/.homegit/default", "commit", "-m", "first commit"},
		},
	}

	testCases := []struct {
		name           string
		invoke         func(reporter *ui.VerboseCommandReporter)
		expectedOutput string
	}{
		{
			name: "command_started",
			invoke: func(reporter *ui.VerboseCommandReporter) {
				reporter.CommandStarted(command)
			},
			expectedOutput: testExpectedVerboseLineConstant,
		},
		{
			name: "command_completed",
			invoke: func(reporter *ui.VerboseCommandReporter) {
				reporter.CommandCompleted(command, execshell.ExecutionResult{ExitCode: 1})
			},
		},
		{
			name: "command_execution_failure",
			invoke: func(reporter *ui.VerboseCommandReporter) {
				reporter.CommandExecutionFailed(command, errors.New("launch failed"))
			},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			var output bytes.Buffer
			reporter := ui.NewVerboseCommandReporter(&output)

			testCase.invoke(reporter)

			require.Equal(testInstance, testCase.expectedOutput, output.String())
		})
	}
}

func TestVerboseCommandReporterToleratesNilReceiver(testInstance *testing.T) {
	var reporter *ui.VerboseCommandReporter
	require.NotPanics(testInstance, func() {
		reporter.CommandStarted(execshell.ShellCommand{Name: execshell.CommandGit})
	})
}
