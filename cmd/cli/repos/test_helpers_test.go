package repos_test

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/homegit/cmd/cli/repos"
	"github.com/temirov/homegit/internal/execshell"
	"github.com/temirov/homegit/internal/filesystem"
	"github.com/temirov/homegit/internal/homegit"
)

func TestMain(main *testing.M) {
	color.NoColor = true
	os.Exit(main.Run())
}

type recordingGitExecutor struct {
	recordedDetails []execshell.CommandDetails
	failures        map[string]error
	exitCode        int
}

func newRecordingGitExecutor() *recordingGitExecutor {
	return &recordingGitExecutor{failures: map[string]error{}}
}

func (executor *recordingGitExecutor) ExecuteGit(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.recordedDetails = append(executor.recordedDetails, details)
	subcommand := ""
	for _, argument := range details.Arguments {
		if !strings.HasPrefix(argument, "-") {
			subcommand = argument
			break
		}
	}
	if failure := executor.failures[subcommand]; failure != nil {
		return execshell.ExecutionResult{}, failure
	}
	if subcommand == "init" {
		if mkdirError := os.MkdirAll(details.Arguments[len(details.Arguments)-1], 0o755); mkdirError != nil {
			return execshell.ExecutionResult{}, mkdirError
		}
	}
	return execshell.ExecutionResult{ExitCode: executor.exitCode}, nil
}

type fixedWorkingDirectoryFileSystem struct {
	filesystem.OSFileSystem
	workingDirectory string
}

func (fileSystem fixedWorkingDirectoryFileSystem) Getwd() (string, error) {
	return fileSystem.workingDirectory, nil
}

type commandFixture struct {
	configuration homegit.Configuration
	executor      *recordingGitExecutor
	dependencies  repos.CommandDependencies
}

func newCommandFixture(testInstance *testing.T) commandFixture {
	testInstance.Helper()
	homeDirectory := testInstance.TempDir()
	configuration, resolveError := homegit.ResolveConfiguration(homegit.Settings{HomeDirectory: homeDirectory}, nil)
	require.NoError(testInstance, resolveError)

	executor := newRecordingGitExecutor()
	return commandFixture{
		configuration: configuration,
		executor:      executor,
		dependencies: repos.CommandDependencies{
			LoggerProvider:        func() *zap.Logger { return zap.NewNop() },
			ConfigurationProvider: func() homegit.Configuration { return configuration },
			GitExecutor:           executor,
			FileSystem:            fixedWorkingDirectoryFileSystem{workingDirectory: homeDirectory},
		},
	}
}

type commandOutput struct {
	standardOutput string
	standardError  string
}

func executeCommand(testInstance *testing.T, command *cobra.Command, arguments ...string) (commandOutput, error) {
	testInstance.Helper()
	var standardOutput bytes.Buffer
	var standardError bytes.Buffer
	if arguments == nil {
		arguments = []string{}
	}
	command.SetArgs(arguments)
	command.SetIn(strings.NewReader(""))
	command.SetOut(&standardOutput)
	command.SetErr(&standardError)
	command.SilenceUsage = true
	command.SilenceErrors = true
	executionError := command.ExecuteContext(context.Background())
	return commandOutput{standardOutput: standardOutput.String(), standardError: standardError.String()}, executionError
}
