package cli

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/homegit/internal/execshell"
	"github.com/temirov/homegit/internal/homegit"
)

func TestRouteArguments(t *testing.T) {
	testCases := []struct {
		name      string
		arguments []string
		expected  []string
	}{
		{name: "no_arguments", arguments: []string{}, expected: []string{"help"}},
		{name: "help_flag", arguments: []string{"-h", "extra"}, expected: []string{"help"}},
		{name: "version_flag", arguments: []string{"--version", "extra"}, expected: []string{"version"}},
		{name: "init_uppercase", arguments: []string{"INIT"}, expected: []string{"init"}},
		{name: "clone_with_url", arguments: []string{"clone", "https://example.com/dots.git"}, expected: []string{"clone", "https://example.com/dots.git"}},
		{name: "untrack", arguments: []string{"untrack"}, expected: []string{"untrack"}},
		{name: "git_command", arguments: []string{"commit", "--help"}, expected: []string{"passthrough", "commit", "--help"}},
		{name: "git_command_named_passthrough", arguments: []string{"passthrough"}, expected: []string{"passthrough", "passthrough"}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			parsedCommand := homegit.ParseCommand(testCase.arguments)
			require.Equal(t, testCase.expected, routeArguments(parsedCommand.Action, testCase.arguments))
		})
	}
}

func TestErrorTranslatorMessages(t *testing.T) {
	gitFailure := errors.New("exit status 128")
	missingExecutable := execshell.ExecutableNotFoundError{Executable: "/opt/git", Cause: exec.ErrNotFound}

	testCases := []struct {
		name               string
		failure            error
		expectedMessage    string
		expectedTranslated bool
	}{
		{
			name:               "existing_repository",
			failure:            homegit.ExistingRepoDirError{Name: "default", Path: "/home/u/.homegit/default"},
			expectedMessage:    "Existing repo: default (/home/u/.homegit/default)",
			expectedTranslated: true,
		},
		{
			name:               "missing_repository",
			failure:            homegit.MissingRepoDirError{Name: "work", Path: "/home/u/.homegit/work"},
			expectedMessage:    "Missing repo: work (/home/u/.homegit/work)",
			expectedTranslated: true,
		},
		{
			name:               "unknown_repository",
			failure:            homegit.UnknownRepoError{Name: "default", Path: "/home/u/.homegit/default"},
			expectedMessage:    "Unknown repo: default (/home/u/.homegit/default)",
			expectedTranslated: true,
		},
		{
			name:               "outside_home",
			failure:            homegit.OutsideHomeDirectoryError{HomeDirectory: "/home/u", WorkingDirectory: "/tmp"},
			expectedMessage:    "The current working directory must be run within the /home/u directory (/tmp)",
			expectedTranslated: true,
		},
		{
			name:               "clone_failure",
			failure:            homegit.CloneFailureError{Name: "default", URL: "https://example.com/x.git", Cause: gitFailure},
			expectedMessage:    "Error cloning repo (default)",
			expectedTranslated: true,
		},
		{
			name:               "init_failure",
			failure:            homegit.InitFailureError{Name: "default", Cause: gitFailure},
			expectedMessage:    "Error initializing repo (default)",
			expectedTranslated: true,
		},
		{
			name:               "settings_failure",
			failure:            homegit.ShowUntrackedFilesFailureError{Name: "default", Cause: gitFailure},
			expectedMessage:    "Error setting status.showUntrackedFiles for default",
			expectedTranslated: true,
		},
		{
			name:               "missing_executable",
			failure:            missingExecutable,
			expectedMessage:    "Error executing git: No such file or directory: /opt/git",
			expectedTranslated: true,
		},
		{
			name:               "missing_executable_inside_init_failure",
			failure:            homegit.InitFailureError{Name: "default", Cause: missingExecutable},
			expectedMessage:    "Error executing git: No such file or directory: /opt/git",
			expectedTranslated: true,
		},
		{
			name:               "home_not_set",
			failure:            homegit.ErrHomeDirectoryNotSet,
			expectedMessage:    "You must set a value of the HOME environment variable",
			expectedTranslated: true,
		},
		{
			name:    "unrelated_failure",
			failure: errors.New("unable to load configuration"),
		},
		{
			name: "nil_failure",
		},
	}

	translator := ErrorTranslator{}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			message, translated := translator.Translate(testCase.failure)
			require.Equal(t, testCase.expectedTranslated, translated)
			require.Equal(t, testCase.expectedMessage, message)
		})
	}
}

func TestEmbeddedDefaultConfigurationIsCopied(t *testing.T) {
	content, configurationType := EmbeddedDefaultConfiguration()
	require.Equal(t, configurationTypeConstant, configurationType)
	require.Contains(t, string(content), "log_level: error")

	content[0] = '!'
	freshContent, _ := EmbeddedDefaultConfiguration()
	require.NotEqual(t, content[0], freshContent[0])
}
