package cli

import (
	"context"
	"io"

	"github.com/temirov/homegit/internal/homegit"
)

// ApplicationOption customizes an Application during construction.
type ApplicationOption func(application *Application)

// WithStreams replaces the standard streams used by commands and error reporting.
func WithStreams(input io.Reader, output io.Writer, errorOutput io.Writer) ApplicationOption {
	return func(application *Application) {
		if input != nil {
			application.standardInput = input
		}
		if output != nil {
			application.standardOutput = output
		}
		if errorOutput != nil {
			application.standardError = errorOutput
		}
	}
}

// WithGitExecutor replaces the shell-backed git executor.
func WithGitExecutor(executor homegit.GitExecutor) ApplicationOption {
	return func(application *Application) {
		application.gitExecutor = executor
	}
}

// WithFileSystem replaces the OS-backed filesystem.
func WithFileSystem(fileSystem homegit.FileSystem) ApplicationOption {
	return func(application *Application) {
		application.fileSystem = fileSystem
	}
}

// WithRemoteReader replaces the go-git backed remote reader.
func WithRemoteReader(remoteReader homegit.RemoteReader) ApplicationOption {
	return func(application *Application) {
		application.remoteReader = remoteReader
	}
}

// WithExecutableLocator replaces the PATH lookup used when GIT_EXECUTABLE is unset.
func WithExecutableLocator(locator homegit.ExecutableLocator) ApplicationOption {
	return func(application *Application) {
		if locator != nil {
			application.executableLocator = locator
		}
	}
}

// WithVersionResolver replaces the homegit version lookup.
func WithVersionResolver(resolver func(context.Context) string) ApplicationOption {
	return func(application *Application) {
		if resolver != nil {
			application.versionResolver = resolver
		}
	}
}

// WithConfigurationSearchPaths replaces the directories searched for config.yaml.
func WithConfigurationSearchPaths(searchPaths ...string) ApplicationOption {
	return func(application *Application) {
		application.configurationSearchPaths = append([]string(nil), searchPaths...)
	}
}
