package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/homegit/cmd/cli/repos"
	"github.com/temirov/homegit/internal/homegit"
	"github.com/temirov/homegit/internal/ui"
	"github.com/temirov/homegit/internal/utils"
)

const (
	applicationNameConstant                  = "homegit"
	applicationShortDescriptionConstant      = "Track files in the home directory with bare git repositories"
	configurationNameConstant                = "config"
	configurationTypeConstant                = "yaml"
	configurationDirectoryNameConstant       = "homegit"
	environmentPrefixConstant                = "HOMEGIT"
	homeConfigurationKeyConstant             = "home"
	verboseConfigurationKeyConstant          = "verbose"
	gitExecutableConfigurationKeyConstant    = "git_executable"
	storageRootConfigurationKeyConstant      = "storage_root"
	repositoryConfigurationKeyConstant       = "repository"
	logLevelConfigurationKeyConstant         = "log_level"
	logFormatConfigurationKeyConstant        = "log_format"
	homeEnvironmentVariableConstant          = "HOME"
	verboseEnvironmentVariableConstant       = "VERBOSE"
	gitExecutableEnvironmentVariableConstant = "GIT_EXECUTABLE"
	storageRootEnvironmentVariableConstant   = "HOMEGIT_DIR"
	repositoryEnvironmentVariableConstant    = "HOMEGIT_REPO"
	logLevelEnvironmentVariableConstant      = "HOMEGIT_LOG_LEVEL"
	logFormatEnvironmentVariableConstant     = "HOMEGIT_LOG_FORMAT"
	helpCommandNameConstant                  = "help"
	helpShortDescriptionConstant             = "Show usage"
	ignoredArgumentTemplateConstant          = "Ignoring %q argument"
	configurationLoadErrorTemplateConstant   = "unable to load configuration: %w"
	loggerCreationErrorTemplateConstant      = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant          = "unable to flush logger: %w"
	configurationInitializedMessageConstant  = "configuration initialized"
	commandRoutedMessageConstant             = "command routed"
	logFieldConfigFileConstant               = "config_file"
	logFieldRepositoryPathConstant           = "repository_path"
	logFieldGitExecutableConstant            = "git_executable"
	logFieldActionConstant                   = "action"
	logFieldIgnoredArgumentsConstant         = "ignored_arguments"
	developmentBuildVersionConstant          = "(devel)"
	versionPrefixConstant                    = "v"
)

const usageTextConstant = `Usage:
homegit init
homegit untrack
homegit clone <repository_url>
homegit [standard git commands and arguments...]
`

// applicationVersion is reported when the binary carries no module version; release builds override it with -ldflags.
var applicationVersion = "0.1.4"

// ApplicationConfiguration describes the settings loaded from the environment and the config file.
type ApplicationConfiguration struct {
	Settings  homegit.Settings `mapstructure:",squash"`
	LogLevel  string           `mapstructure:"log_level"`
	LogFormat string           `mapstructure:"log_format"`
}

// Application wires the cobra command tree, configuration loader, and structured logger.
type Application struct {
	rootCommand              *cobra.Command
	configurationLoader      *utils.ConfigurationLoader
	configurationSearchPaths []string
	loggerFactory            *utils.LoggerFactory
	logger                   *zap.Logger
	configuration            ApplicationConfiguration
	resolvedConfiguration    homegit.Configuration
	configurationMetadata    utils.LoadedConfiguration
	parsedCommand            homegit.ParsedCommand
	errorTranslator          ErrorTranslator
	executableLocator        homegit.ExecutableLocator
	versionResolver          func(context.Context) string
	standardInput            io.Reader
	standardOutput           io.Writer
	standardError            io.Writer
	gitExecutor              homegit.GitExecutor
	fileSystem               homegit.FileSystem
	remoteReader             homegit.RemoteReader
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication(options ...ApplicationOption) *Application {
	application := &Application{
		loggerFactory:            utils.NewLoggerFactory(),
		logger:                   zap.NewNop(),
		configurationSearchPaths: defaultConfigurationSearchPaths(),
		executableLocator:        exec.LookPath,
		versionResolver:          resolveApplicationVersion,
		standardInput:            os.Stdin,
		standardOutput:           os.Stdout,
		standardError:            os.Stderr,
	}
	for _, option := range options {
		if option != nil {
			option(application)
		}
	}

	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		application.configurationSearchPaths,
	)
	configurationLoader.SetEnvironmentBindings(map[string]string{
		homeConfigurationKeyConstant:          homeEnvironmentVariableConstant,
		verboseConfigurationKeyConstant:       verboseEnvironmentVariableConstant,
		gitExecutableConfigurationKeyConstant: gitExecutableEnvironmentVariableConstant,
		storageRootConfigurationKeyConstant:   storageRootEnvironmentVariableConstant,
		repositoryConfigurationKeyConstant:    repositoryEnvironmentVariableConstant,
		logLevelConfigurationKeyConstant:      logLevelEnvironmentVariableConstant,
		logFormatConfigurationKeyConstant:     logFormatEnvironmentVariableConstant,
	})
	configurationLoader.SetEmbeddedConfiguration(EmbeddedDefaultConfiguration())
	application.configurationLoader = configurationLoader

	cobraCommand := &cobra.Command{
		Use:           applicationNameConstant,
		Short:         applicationShortDescriptionConstant,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return application.printUsage(command)
		},
	}
	cobraCommand.CompletionOptions.DisableDefaultCmd = true
	cobraCommand.SetIn(application.standardInput)
	cobraCommand.SetOut(application.standardOutput)
	cobraCommand.SetErr(application.standardError)
	cobraCommand.SetHelpFunc(func(command *cobra.Command, arguments []string) {
		_ = application.printUsage(command)
	})
	cobraCommand.SetHelpCommand(&cobra.Command{
		Use:                helpCommandNameConstant,
		Short:              helpShortDescriptionConstant,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return application.printUsage(command)
		},
	})

	commandDependencies := repos.CommandDependencies{
		LoggerProvider: func() *zap.Logger {
			return application.logger
		},
		ConfigurationProvider: func() homegit.Configuration {
			return application.resolvedConfiguration
		},
		GitExecutor:  application.gitExecutor,
		FileSystem:   application.fileSystem,
		RemoteReader: application.remoteReader,
	}

	initBuilder := repos.InitCommandBuilder{CommandDependencies: commandDependencies}
	initCommand, initBuildError := initBuilder.Build()
	if initBuildError == nil {
		cobraCommand.AddCommand(initCommand)
	}

	cloneBuilder := repos.CloneCommandBuilder{CommandDependencies: commandDependencies}
	cloneCommand, cloneBuildError := cloneBuilder.Build()
	if cloneBuildError == nil {
		cobraCommand.AddCommand(cloneCommand)
	}

	untrackBuilder := repos.UntrackCommandBuilder{CommandDependencies: commandDependencies}
	untrackCommand, untrackBuildError := untrackBuilder.Build()
	if untrackBuildError == nil {
		cobraCommand.AddCommand(untrackCommand)
	}

	versionBuilder := repos.VersionCommandBuilder{
		CommandDependencies: commandDependencies,
		VersionProvider: func(executionContext context.Context) string {
			return application.versionResolver(executionContext)
		},
	}
	versionCommand, versionBuildError := versionBuilder.Build()
	if versionBuildError == nil {
		cobraCommand.AddCommand(versionCommand)
	}

	passThroughBuilder := repos.PassThroughCommandBuilder{CommandDependencies: commandDependencies}
	passThroughCommand, passThroughBuildError := passThroughBuilder.Build()
	if passThroughBuildError == nil {
		cobraCommand.AddCommand(passThroughCommand)
	}

	application.rootCommand = cobraCommand

	return application
}

// Execute runs homegit with the process arguments.
func (application *Application) Execute() error {
	return application.ExecuteArguments(os.Args[1:])
}

// ExecuteArguments classifies arguments, which exclude the program name, runs
// the matching command, and flushes the logger. Known failures are printed and
// reported as ExitStatusError; git's own exit status is reported the same way.
func (application *Application) ExecuteArguments(arguments []string) error {
	application.parsedCommand = homegit.ParseCommand(arguments)
	application.rootCommand.SetArgs(routeArguments(application.parsedCommand.Action, arguments))

	executionError := application.rootCommand.ExecuteContext(context.Background())
	if syncError := utils.SyncLogger(application.logger); syncError != nil && executionError == nil {
		executionError = fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return application.reportFailure(executionError)
}

// Execute builds a fresh application instance and runs it with the process arguments.
func Execute() error {
	return NewApplication().Execute()
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := map[string]any{
		homeConfigurationKeyConstant:          "",
		verboseConfigurationKeyConstant:       "",
		gitExecutableConfigurationKeyConstant: "",
		storageRootConfigurationKeyConstant:   "",
		repositoryConfigurationKeyConstant:    homegit.DefaultRepositoryName,
		logLevelConfigurationKeyConstant:      string(utils.LogLevelError),
		logFormatConfigurationKeyConstant:     string(utils.LogFormatConsole),
	}

	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration("", defaultValues, &application.configuration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}
	application.configurationMetadata = loadedConfiguration

	logger, loggerCreationError := application.loggerFactory.CreateLogger(
		utils.LogLevel(application.configuration.LogLevel),
		utils.LogFormat(application.configuration.LogFormat),
	)
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}
	application.logger = logger

	resolvedConfiguration, resolveError := homegit.ResolveConfiguration(application.configuration.Settings, application.executableLocator)
	if resolveError != nil {
		return resolveError
	}
	application.resolvedConfiguration = resolvedConfiguration

	application.logger.Debug(
		configurationInitializedMessageConstant,
		zap.String(logFieldConfigFileConstant, application.configurationMetadata.ConfigFileUsed),
		zap.String(logFieldRepositoryPathConstant, resolvedConfiguration.BareRepositoryPath),
		zap.String(logFieldGitExecutableConstant, resolvedConfiguration.GitExecutable),
	)
	application.logger.Debug(
		commandRoutedMessageConstant,
		zap.String(logFieldActionConstant, string(application.parsedCommand.Action)),
		zap.Strings(logFieldIgnoredArgumentsConstant, application.parsedCommand.IgnoredArguments),
	)

	printer := ui.NewConsolePrinter(command.OutOrStdout(), command.ErrOrStderr())
	for _, ignoredArgument := range application.parsedCommand.IgnoredArguments {
		printer.Warning(fmt.Sprintf(ignoredArgumentTemplateConstant, ignoredArgument))
	}

	return nil
}

func (application *Application) printUsage(command *cobra.Command) error {
	_, writeError := io.WriteString(command.OutOrStdout(), usageTextConstant)
	return writeError
}

func (application *Application) reportFailure(executionError error) error {
	if executionError == nil {
		return nil
	}

	var exitStatus ExitStatusError
	if errors.As(executionError, &exitStatus) {
		return exitStatus
	}

	message, translated := application.errorTranslator.Translate(executionError)
	if !translated {
		return executionError
	}
	ui.NewConsolePrinter(application.standardOutput, application.standardError).Error(message)
	return ExitStatusError{Code: translatedFailureExitCodeConstant}
}

func routeArguments(action homegit.Action, arguments []string) []string {
	switch action {
	case homegit.ActionNone, homegit.ActionHelp:
		return []string{helpCommandNameConstant}
	case homegit.ActionVersion:
		return []string{string(homegit.ActionVersion)}
	case homegit.ActionInit, homegit.ActionClone, homegit.ActionUntrack:
		return append([]string{string(action)}, arguments[1:]...)
	default:
		return append([]string{repos.PassThroughCommandName}, arguments...)
	}
}

func defaultConfigurationSearchPaths() []string {
	userConfigurationDirectory, directoryError := os.UserConfigDir()
	if directoryError != nil || len(userConfigurationDirectory) == 0 {
		return nil
	}
	return []string{filepath.Join(userConfigurationDirectory, configurationDirectoryNameConstant)}
}

func resolveApplicationVersion(context.Context) string {
	if buildInformation, available := debug.ReadBuildInfo(); available {
		moduleVersion := strings.TrimSpace(buildInformation.Main.Version)
		if len(moduleVersion) > 0 && moduleVersion != developmentBuildVersionConstant {
			return strings.TrimPrefix(moduleVersion, versionPrefixConstant)
		}
	}
	return applicationVersion
}
