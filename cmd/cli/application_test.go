package cli_test

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/temirov/homegit/cmd/cli"
)

const (
	testFakeGitNameConstant = "fake-git"
	testVersionConstant     = "9.9.9"
	testRepositoryURL       = "https://example.com/dots.git"
)

// testFakeGitScriptConstant appends each invocation to $FAKE_GIT_LOG, creates
// the directory named by "init --bare <path>", and exits with $FAKE_GIT_EXIT_CODE.
const testFakeGitScriptConstant = `#!/bin/sh
printf '%s\n' "$*" >> "$FAKE_GIT_LOG"
case "$1" in
  init)
    mkdir -p "$3"
    ;;
  --version)
    echo "git version 2.99.0"
    exit 0
    ;;
esac
exit "${FAKE_GIT_EXIT_CODE:-0}"
`

func TestMain(main *testing.M) {
	color.NoColor = true
	os.Exit(main.Run())
}

type cliEnvironment struct {
	homeDirectory  string
	storageRoot    string
	repositoryPath string
	gitExecutable  string
	gitLogPath     string
}

func newCLIEnvironment(t *testing.T) cliEnvironment {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}

	homeDirectory, evaluationError := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, evaluationError)
	toolsDirectory := t.TempDir()
	gitExecutable := filepath.Join(toolsDirectory, testFakeGitNameConstant)
	require.NoError(t, os.WriteFile(gitExecutable, []byte(testFakeGitScriptConstant), 0o755))

	environment := cliEnvironment{
		homeDirectory:  homeDirectory,
		storageRoot:    filepath.Join(homeDirectory, ".homegit"),
		repositoryPath: filepath.Join(homeDirectory, ".homegit", "default"),
		gitExecutable:  gitExecutable,
		gitLogPath:     filepath.Join(toolsDirectory, "git.log"),
	}

	t.Setenv("HOME", homeDirectory)
	t.Setenv("GIT_EXECUTABLE", gitExecutable)
	t.Setenv("FAKE_GIT_LOG", environment.gitLogPath)
	t.Setenv("FAKE_GIT_EXIT_CODE", "")
	t.Setenv("VERBOSE", "")
	t.Setenv("HOMEGIT_DIR", "")
	t.Setenv("HOMEGIT_REPO", "")
	t.Setenv("HOMEGIT_LOG_LEVEL", "")
	t.Setenv("HOMEGIT_LOG_FORMAT", "")
	t.Chdir(homeDirectory)
	return environment
}

func (environment cliEnvironment) gitInvocations(t *testing.T) []string {
	t.Helper()
	content, readError := os.ReadFile(environment.gitLogPath)
	if os.IsNotExist(readError) {
		return nil
	}
	require.NoError(t, readError)
	return strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
}

type cliResult struct {
	standardOutput string
	standardError  string
	executionError error
}

func runCLI(t *testing.T, arguments []string, options ...cli.ApplicationOption) cliResult {
	t.Helper()
	var standardOutput bytes.Buffer
	var standardError bytes.Buffer
	allOptions := append([]cli.ApplicationOption{
		cli.WithStreams(strings.NewReader(""), &standardOutput, &standardError),
		cli.WithVersionResolver(func(context.Context) string { return testVersionConstant }),
		cli.WithConfigurationSearchPaths(t.TempDir()),
	}, options...)

	executionError := cli.NewApplication(allOptions...).ExecuteArguments(arguments)
	return cliResult{
		standardOutput: standardOutput.String(),
		standardError:  standardError.String(),
		executionError: executionError,
	}
}

func TestApplicationPrintsUsage(t *testing.T) {
	expectedUsage := "Usage:\nhomegit init\nhomegit untrack\nhomegit clone <repository_url>\nhomegit [standard git commands and arguments...]\n"

	testCases := []struct {
		name      string
		arguments []string
	}{
		{name: "no_arguments", arguments: []string{}},
		{name: "help_word", arguments: []string{"help"}},
		{name: "help_long_flag", arguments: []string{"--help"}},
		{name: "help_short_flag_with_extra", arguments: []string{"-h", "init"}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			environment := newCLIEnvironment(t)
			result := runCLI(t, testCase.arguments)
			require.NoError(t, result.executionError)
			require.Equal(t, expectedUsage, result.standardOutput)
			require.Empty(t, result.standardError)
			require.Empty(t, environment.gitInvocations(t))
		})
	}
}

func TestApplicationRequiresHome(t *testing.T) {
	newCLIEnvironment(t)
	t.Setenv("HOME", "")

	result := runCLI(t, []string{"help"})
	require.Equal(t, cli.ExitStatusError{Code: 1}, result.executionError)
	require.Equal(t, "You must set a value of the HOME environment variable\n", result.standardError)
	require.Empty(t, result.standardOutput)
}

func TestApplicationVersion(t *testing.T) {
	testCases := []struct {
		name            string
		arguments       []string
		verbose         string
		expectedRunning bool
	}{
		{name: "version_word", arguments: []string{"version"}},
		{name: "version_short_flag", arguments: []string{"-v"}},
		{name: "verbose", arguments: []string{"--version"}, verbose: "true", expectedRunning: true},
		{name: "verbose_unrecognized_value", arguments: []string{"--version"}, verbose: "sometimes"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			environment := newCLIEnvironment(t)
			t.Setenv("VERBOSE", testCase.verbose)

			result := runCLI(t, testCase.arguments)
			require.NoError(t, result.executionError)

			expectedOutput := "homegit version " + testVersionConstant + "\n"
			if testCase.expectedRunning {
				expectedOutput += "Running: " + environment.gitExecutable + " --version\n"
			}
			expectedOutput += "git version 2.99.0\n"
			require.Equal(t, expectedOutput, result.standardOutput)
			require.Equal(t, []string{"--version"}, environment.gitInvocations(t))
		})
	}
}

func TestApplicationInitLifecycle(t *testing.T) {
	environment := newCLIEnvironment(t)

	initResult := runCLI(t, []string{"init"})
	require.NoError(t, initResult.executionError)
	require.Equal(t, "Initialized default repo\n", initResult.standardOutput)
	require.DirExists(t, environment.repositoryPath)
	require.Equal(t, []string{
		"init --bare " + environment.repositoryPath,
		"--git-dir=" + environment.repositoryPath + " --work-tree=" + environment.homeDirectory + " config --local status.showUntrackedFiles no",
	}, environment.gitInvocations(t))

	secondInitResult := runCLI(t, []string{"init"})
	require.Equal(t, cli.ExitStatusError{Code: 1}, secondInitResult.executionError)
	require.Equal(t, "Existing repo: default ("+environment.repositoryPath+")\n", secondInitResult.standardError)

	untrackResult := runCLI(t, []string{"untrack"})
	require.NoError(t, untrackResult.executionError)
	require.Equal(t, "Stopped tracking homegit repo at "+environment.repositoryPath+"\n", untrackResult.standardOutput)
	require.NoDirExists(t, environment.repositoryPath)

	secondUntrackResult := runCLI(t, []string{"untrack"})
	require.Equal(t, cli.ExitStatusError{Code: 1}, secondUntrackResult.executionError)
	require.Equal(t, "Missing repo: default ("+environment.repositoryPath+")\n", secondUntrackResult.standardError)
}

func TestApplicationInitFailureRemovesRepository(t *testing.T) {
	environment := newCLIEnvironment(t)
	t.Setenv("FAKE_GIT_EXIT_CODE", "1")

	result := runCLI(t, []string{"init"})
	require.Equal(t, cli.ExitStatusError{Code: 1}, result.executionError)
	require.Equal(t, "Error initializing repo (default)\n", result.standardError)
	require.NoDirExists(t, environment.repositoryPath)
}

func TestApplicationReportsMissingGitExecutable(t *testing.T) {
	environment := newCLIEnvironment(t)
	missingExecutable := filepath.Join(t.TempDir(), "missing-git")
	t.Setenv("GIT_EXECUTABLE", missingExecutable)

	result := runCLI(t, []string{"init"})
	require.Equal(t, cli.ExitStatusError{Code: 1}, result.executionError)
	require.Equal(t, "Error executing git: No such file or directory: "+missingExecutable+"\n", result.standardError)
	require.NoDirExists(t, environment.repositoryPath)
}

func TestApplicationCloneFailure(t *testing.T) {
	environment := newCLIEnvironment(t)
	t.Setenv("FAKE_GIT_EXIT_CODE", "128")

	result := runCLI(t, []string{"clone", testRepositoryURL})
	require.Equal(t, cli.ExitStatusError{Code: 1}, result.executionError)
	require.Equal(t, "Error cloning repo (default)\n", result.standardError)
	require.NoDirExists(t, environment.repositoryPath)
	require.Equal(t, []string{"clone --bare " + testRepositoryURL + " " + environment.repositoryPath}, environment.gitInvocations(t))
}

func TestApplicationPassThrough(t *testing.T) {
	testCases := []struct {
		name             string
		exitCode         string
		expectedExitCode int
	}{
		{name: "success", exitCode: "0"},
		{name: "git_exit_code_preserved", exitCode: "5", expectedExitCode: 5},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			environment := newCLIEnvironment(t)
			require.NoError(t, os.MkdirAll(environment.repositoryPath, 0o755))
			t.Setenv("FAKE_GIT_EXIT_CODE", testCase.exitCode)

			result := runCLI(t, []string{"status", "--bare", "--git-dir=/elsewhere", "--bare", "-s"})
			if testCase.expectedExitCode == 0 {
				require.NoError(t, result.executionError)
			} else {
				require.Equal(t, cli.ExitStatusError{Code: testCase.expectedExitCode}, result.executionError)
			}
			require.Equal(t, "Ignoring \"--bare\" argument\nIgnoring \"--git-dir\" argument\n", result.standardOutput)
			require.Empty(t, result.standardError)
			require.Equal(t, []string{
				"--git-dir=" + environment.repositoryPath + " --work-tree=" + environment.homeDirectory + " status --bare --git-dir=/elsewhere --bare -s",
			}, environment.gitInvocations(t))
		})
	}
}

func TestApplicationPassThroughPreconditions(t *testing.T) {
	t.Run("unknown_repository", func(t *testing.T) {
		environment := newCLIEnvironment(t)

		result := runCLI(t, []string{"status"})
		require.Equal(t, cli.ExitStatusError{Code: 1}, result.executionError)
		require.Equal(t, "Unknown repo: default ("+environment.repositoryPath+")\n", result.standardError)
		require.Empty(t, environment.gitInvocations(t))
	})

	t.Run("outside_home", func(t *testing.T) {
		environment := newCLIEnvironment(t)
		require.NoError(t, os.MkdirAll(environment.repositoryPath, 0o755))
		outsideDirectory, evaluationError := filepath.EvalSymlinks(t.TempDir())
		require.NoError(t, evaluationError)
		t.Chdir(outsideDirectory)

		result := runCLI(t, []string{"status"})
		require.Equal(t, cli.ExitStatusError{Code: 1}, result.executionError)
		require.Equal(t, "The current working directory must be run within the "+environment.homeDirectory+" directory ("+outsideDirectory+")\n", result.standardError)
		require.Empty(t, environment.gitInvocations(t))
	})
}

func TestApplicationRepositorySelection(t *testing.T) {
	testCases := []struct {
		name               string
		configurationFile  string
		environment        map[string]string
		expectedRepository func(environment cliEnvironment) string
	}{
		{
			name:              "configuration_file",
			configurationFile: "repository: work\n",
			expectedRepository: func(environment cliEnvironment) string {
				return filepath.Join(environment.storageRoot, "work")
			},
		},
		{
			name:              "environment_overrides_file",
			configurationFile: "repository: work\n",
			environment:       map[string]string{"HOMEGIT_REPO": "laptop"},
			expectedRepository: func(environment cliEnvironment) string {
				return filepath.Join(environment.storageRoot, "laptop")
			},
		},
		{
			name:        "storage_root_with_tilde",
			environment: map[string]string{"HOMEGIT_DIR": "~/dotfiles"},
			expectedRepository: func(environment cliEnvironment) string {
				return filepath.Join(environment.homeDirectory, "dotfiles", "default")
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			environment := newCLIEnvironment(t)
			for name, value := range testCase.environment {
				t.Setenv(name, value)
			}
			configurationDirectory := t.TempDir()
			if len(testCase.configurationFile) > 0 {
				require.NoError(t, os.WriteFile(filepath.Join(configurationDirectory, "config.yaml"), []byte(testCase.configurationFile), 0o644))
			}

			result := runCLI(t, []string{"init"}, cli.WithConfigurationSearchPaths(configurationDirectory))
			require.NoError(t, result.executionError)
			require.DirExists(t, testCase.expectedRepository(environment))
		})
	}
}

func TestApplicationRoundTripWithGit(t *testing.T) {
	gitExecutable, lookupError := exec.LookPath("git")
	if lookupError != nil {
		t.Skip("git executable not available")
	}
	environment := newCLIEnvironment(t)
	t.Setenv("GIT_EXECUTABLE", gitExecutable)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_CONFIG_GLOBAL", filepath.Join(environment.homeDirectory, ".gitconfig-test"))

	initResult := runCLI(t, []string{"init"})
	require.NoError(t, initResult.executionError)
	require.FileExists(t, filepath.Join(environment.repositoryPath, "HEAD"))

	configResult := runCLI(t, []string{"config", "--local", "status.showUntrackedFiles"})
	require.NoError(t, configResult.executionError)
	require.Equal(t, "no\n", configResult.standardOutput)

	statusResult := runCLI(t, []string{"status", "--porcelain"})
	require.NoError(t, statusResult.executionError)
	require.Empty(t, statusResult.standardOutput)

	missingRevision := runCLI(t, []string{"rev-parse", "--verify", "--quiet", "refs/heads/does-not-exist"})
	require.Equal(t, cli.ExitStatusError{Code: 1}, missingRevision.executionError)

	untrackResult := runCLI(t, []string{"untrack"})
	require.NoError(t, untrackResult.executionError)
	require.NoDirExists(t, environment.repositoryPath)
}
