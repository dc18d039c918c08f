package repos

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/homegit/internal/dependencies"
	"github.com/temirov/homegit/internal/execshell"
	"github.com/temirov/homegit/internal/homegit"
	"github.com/temirov/homegit/internal/ui"
)

const (
	missingConfigurationMessageConstant = "configuration provider not configured"
)

// ErrConfigurationProviderMissing indicates a command was built without a configuration provider.
var ErrConfigurationProviderMissing = errors.New(missingConfigurationMessageConstant)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider yields the resolved homegit configuration.
type ConfigurationProvider func() homegit.Configuration

// VersionProvider yields the homegit version string.
type VersionProvider func(executionContext context.Context) string

// CommandDependencies carries the collaborators shared by every repository
// command. Nil collaborators are replaced with OS-backed defaults.
type CommandDependencies struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	GitExecutor           homegit.GitExecutor
	FileSystem            homegit.FileSystem
	RemoteReader          homegit.RemoteReader
}

func (commandDependencies CommandDependencies) buildService(command *cobra.Command) (*homegit.Service, error) {
	if commandDependencies.ConfigurationProvider == nil {
		return nil, ErrConfigurationProviderMissing
	}
	configuration := commandDependencies.ConfigurationProvider()
	logger := resolveLogger(commandDependencies.LoggerProvider)

	var commandObserver execshell.CommandEventObserver
	if configuration.Verbose {
		commandObserver = ui.NewVerboseCommandReporter(command.OutOrStdout())
	}

	gitExecutor, executorError := dependencies.ResolveGitExecutor(commandDependencies.GitExecutor, logger, configuration.GitExecutable, commandObserver)
	if executorError != nil {
		return nil, executorError
	}

	service, serviceError := homegit.NewService(configuration, homegit.ServiceDependencies{
		GitExecutor:  gitExecutor,
		FileSystem:   dependencies.ResolveFileSystem(commandDependencies.FileSystem),
		RemoteReader: dependencies.ResolveRemoteReader(commandDependencies.RemoteReader),
		Logger:       logger,
		Streams: execshell.StreamAttachment{
			Input:  command.InOrStdin(),
			Output: command.OutOrStdout(),
			Error:  command.ErrOrStderr(),
		},
	})
	if serviceError != nil {
		return nil, serviceError
	}
	return service, nil
}

func resolveLogger(provider LoggerProvider) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}
	logger := provider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func newPrinter(command *cobra.Command) *ui.ConsolePrinter {
	return ui.NewConsolePrinter(command.OutOrStdout(), command.ErrOrStderr())
}

func commandContext(command *cobra.Command) context.Context {
	if executionContext := command.Context(); executionContext != nil {
		return executionContext
	}
	return context.Background()
}
