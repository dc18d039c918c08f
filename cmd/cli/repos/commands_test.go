package repos_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/require"

	"github.com/temirov/homegit/cmd/cli/repos"
	"github.com/temirov/homegit/internal/homegit"
)

const (
	testRepositoryURLConstant = "https://example.com/dots.git"
)

func TestInitCommand(testInstance *testing.T) {
	fixture := newCommandFixture(testInstance)
	builder := repos.InitCommandBuilder{CommandDependencies: fixture.dependencies}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	output, executionError := executeCommand(testInstance, command, "ignored-extra")
	require.NoError(testInstance, executionError)
	require.Equal(testInstance, "Initialized default repo\n", output.standardOutput)
	require.Len(testInstance, fixture.executor.recordedDetails, 2)
	require.DirExists(testInstance, fixture.configuration.BareRepositoryPath)

	secondCommand, _ := builder.Build()
	_, secondError := executeCommand(testInstance, secondCommand)
	require.IsType(testInstance, homegit.ExistingRepoDirError{}, secondError)
}

func TestCloneCommand(testInstance *testing.T) {
	testCases := []struct {
		name           string
		checkoutError  error
		expectedOutput string
	}{
		{
			name:           "checkout_succeeds",
			expectedOutput: "Cloned default repo\n",
		},
		{
			name:           "checkout_fails",
			checkoutError:  errors.New("would be overwritten"),
			expectedOutput: "Warning: could not checkout latest changes (default)\nCloned default repo\n",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			fixture := newCommandFixture(testInstance)
			if testCase.checkoutError != nil {
				fixture.executor.failures["checkout"] = testCase.checkoutError
			}
			builder := repos.CloneCommandBuilder{CommandDependencies: fixture.dependencies}
			command, buildError := builder.Build()
			require.NoError(testInstance, buildError)

			output, executionError := executeCommand(testInstance, command, testRepositoryURLConstant)
			require.NoError(testInstance, executionError)
			require.Equal(testInstance, testCase.expectedOutput, output.standardOutput)
			require.Len(testInstance, fixture.executor.recordedDetails, 3)
			require.Equal(testInstance, []string{"clone", "--bare", testRepositoryURLConstant, fixture.configuration.BareRepositoryPath}, fixture.executor.recordedDetails[0].Arguments)
		})
	}
}

func TestCloneCommandAlreadyCloned(testInstance *testing.T) {
	fixture := newCommandFixture(testInstance)
	repository, initError := git.PlainInit(fixture.configuration.BareRepositoryPath, true)
	require.NoError(testInstance, initError)
	_, remoteError := repository.CreateRemote(&config.RemoteConfig{Name: "origin", URLs: []string{testRepositoryURLConstant}})
	require.NoError(testInstance, remoteError)

	builder := repos.CloneCommandBuilder{CommandDependencies: fixture.dependencies}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	output, executionError := executeCommand(testInstance, command, testRepositoryURLConstant)
	require.NoError(testInstance, executionError)
	require.Equal(testInstance, "Repo (default) is already cloned\n", output.standardOutput)
	require.Empty(testInstance, fixture.executor.recordedDetails)
}

func TestCloneCommandRequiresSingleURL(testInstance *testing.T) {
	testCases := []struct {
		name      string
		arguments []string
	}{
		{name: "missing_url", arguments: nil},
		{name: "extra_argument", arguments: []string{testRepositoryURLConstant, "extra"}},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			fixture := newCommandFixture(testInstance)
			builder := repos.CloneCommandBuilder{CommandDependencies: fixture.dependencies}
			command, buildError := builder.Build()
			require.NoError(testInstance, buildError)

			_, executionError := executeCommand(testInstance, command, testCase.arguments...)
			require.Error(testInstance, executionError)
			require.Empty(testInstance, fixture.executor.recordedDetails)
		})
	}
}

func TestUntrackCommand(testInstance *testing.T) {
	fixture := newCommandFixture(testInstance)
	require.NoError(testInstance, os.MkdirAll(fixture.configuration.BareRepositoryPath, 0o755))
	builder := repos.UntrackCommandBuilder{CommandDependencies: fixture.dependencies}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	output, executionError := executeCommand(testInstance, command)
	require.NoError(testInstance, executionError)
	require.Equal(testInstance, "Stopped tracking homegit repo at "+fixture.configuration.BareRepositoryPath+"\n", output.standardOutput)
	require.NoDirExists(testInstance, fixture.configuration.BareRepositoryPath)

	secondCommand, _ := builder.Build()
	_, secondError := executeCommand(testInstance, secondCommand)
	require.IsType(testInstance, homegit.MissingRepoDirError{}, secondError)
}

func TestPassThroughCommand(testInstance *testing.T) {
	testCases := []struct {
		name          string
		exitCode      int
		expectedError error
	}{
		{name: "success", exitCode: 0},
		{name: "git_failure_exit_code", exitCode: 3, expectedError: repos.ExitStatusError{Code: 3}},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			fixture := newCommandFixture(testInstance)
			require.NoError(testInstance, os.MkdirAll(fixture.configuration.BareRepositoryPath, 0o755))
			fixture.executor.exitCode = testCase.exitCode
			builder := repos.PassThroughCommandBuilder{CommandDependencies: fixture.dependencies}
			command, buildError := builder.Build()
			require.NoError(testInstance, buildError)

			_, executionError := executeCommand(testInstance, command, "log", "--help", "-n", "1")
			if testCase.expectedError != nil {
				require.Equal(testInstance, testCase.expectedError, executionError)
			} else {
				require.NoError(testInstance, executionError)
			}

			require.Len(testInstance, fixture.executor.recordedDetails, 1)
			require.Equal(testInstance, []string{
				"--git-dir=" + fixture.configuration.BareRepositoryPath,
				"--work-tree=" + fixture.configuration.HomeDirectory,
				"log", "--help", "-n", "1",
			}, fixture.executor.recordedDetails[0].Arguments)
		})
	}
}

func TestVersionCommand(testInstance *testing.T) {
	fixture := newCommandFixture(testInstance)
	builder := repos.VersionCommandBuilder{
		CommandDependencies: fixture.dependencies,
		VersionProvider:     func(context.Context) string { return "1.2.3" },
	}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	output, executionError := executeCommand(testInstance, command)
	require.NoError(testInstance, executionError)
	require.Equal(testInstance, "homegit version 1.2.3\n", output.standardOutput)
	require.Len(testInstance, fixture.executor.recordedDetails, 1)
	require.Equal(testInstance, []string{"--version"}, fixture.executor.recordedDetails[0].Arguments)
}

func TestCommandsRequireConfigurationProvider(testInstance *testing.T) {
	builder := repos.InitCommandBuilder{}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	_, executionError := executeCommand(testInstance, command)
	require.ErrorIs(testInstance, executionError, repos.ErrConfigurationProviderMissing)
}
