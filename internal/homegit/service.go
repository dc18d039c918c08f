package homegit

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/homegit/internal/execshell"
)

const (
	gitDirectoryFlagTemplateConstant = "--git-dir="
	gitWorkTreeFlagTemplateConstant  = "--work-tree="
	gitInitSubcommandConstant        = "init"
	gitCloneSubcommandConstant       = "clone"
	gitBareFlagConstant              = "--bare"
	gitConfigSubcommandConstant      = "config"
	gitLocalFlagConstant             = "--local"
	gitShowUntrackedFilesKeyConstant = "status.showUntrackedFiles"
	gitShowUntrackedFilesValue       = "no"
	gitCheckoutSubcommandConstant    = "checkout"
	gitVersionFlagConstant           = "--version"

	logFieldRepositoryNameConstant = "repository_name"
	logFieldRepositoryPathConstant = "repository_path"
	logFieldRepositoryURLConstant  = "repository_url"
	logFieldExitCodeConstant       = "exit_code"
	cleanupFailedMessageConstant   = "failed to remove partially created repository"
	checkoutFailedMessageConstant  = "checkout after clone failed"
	originMismatchMessageConstant  = "existing repository has a different or unreadable origin"
	passThroughMessageConstant     = "git pass-through finished"
)

// GitExecutor runs git with the supplied details.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// ServiceDependencies enumerates collaborators required by the service.
type ServiceDependencies struct {
	GitExecutor  GitExecutor
	FileSystem   FileSystem
	RemoteReader RemoteReader
	Logger       *zap.Logger
	// Streams are the caller's terminal streams. Pass-through attaches all of
	// them; lifecycle commands attach only Error so git diagnostics stay live.
	Streams execshell.StreamAttachment
}

// InitResult describes a newly initialized repository.
type InitResult struct {
	RepositoryName string
	RepositoryPath string
}

// CloneResult describes the outcome of a clone request.
type CloneResult struct {
	RepositoryName string
	RepositoryPath string
	// AlreadyCloned is set when the repository already tracks the requested URL; nothing was changed.
	AlreadyCloned bool
	// CheckoutFailed is set when the files could not be checked out into the home directory.
	CheckoutFailed bool
}

// UntrackResult describes a removed repository.
type UntrackResult struct {
	RepositoryName string
	RepositoryPath string
}

// Service sequences repository checks and git invocations for each action.
type Service struct {
	configuration Configuration
	executor      GitExecutor
	store         *RepositoryStore
	logger        *zap.Logger
	streams       execshell.StreamAttachment
}

// NewService constructs a Service from the resolved configuration and dependencies.
func NewService(configuration Configuration, dependencies ServiceDependencies) (*Service, error) {
	if dependencies.GitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	if dependencies.FileSystem == nil {
		return nil, ErrFileSystemNotConfigured
	}
	if dependencies.RemoteReader == nil {
		return nil, ErrRemoteReaderNotConfigured
	}
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		configuration: configuration,
		executor:      dependencies.GitExecutor,
		store:         NewRepositoryStore(configuration, dependencies.FileSystem, dependencies.RemoteReader),
		logger:        logger,
		streams:       dependencies.Streams,
	}, nil
}

// Init creates the bare repository and hides untracked files. A repository
// directory left behind by a failed step is removed before returning.
func (service *Service) Init(executionContext context.Context) (InitResult, error) {
	exists, existsError := service.store.Exists()
	if existsError != nil {
		return InitResult{}, existsError
	}
	if exists {
		return InitResult{}, service.existingRepositoryError()
	}

	if storageRootError := service.store.EnsureStorageRoot(); storageRootError != nil {
		return InitResult{}, storageRootError
	}

	_, initError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitInitSubcommandConstant, gitBareFlagConstant, service.configuration.BareRepositoryPath},
		WorkingDirectory: service.configuration.StorageRoot,
		Streams:          service.errorStreamOnly(),
	})
	if initError != nil {
		service.removePartialRepository()
		return InitResult{}, InitFailureError{
			Name:  service.configuration.RepositoryName,
			Path:  service.configuration.BareRepositoryPath,
			Cause: initError,
		}
	}

	if settingsError := service.applyLocalSettings(executionContext); settingsError != nil {
		service.removePartialRepository()
		return InitResult{}, settingsError
	}

	return InitResult{
		RepositoryName: service.configuration.RepositoryName,
		RepositoryPath: service.configuration.BareRepositoryPath,
	}, nil
}

// Clone creates the bare repository from repositoryURL, hides untracked files,
// and checks the tracked files out into the home directory. Cloning the URL
// the repository already tracks succeeds without changes. A failed checkout
// is reported in the result rather than as an error.
func (service *Service) Clone(executionContext context.Context, repositoryURL string) (CloneResult, error) {
	trimmedURL := strings.TrimSpace(repositoryURL)
	if len(trimmedURL) == 0 {
		return CloneResult{}, ErrRepositoryURLRequired
	}

	result := CloneResult{
		RepositoryName: service.configuration.RepositoryName,
		RepositoryPath: service.configuration.BareRepositoryPath,
	}

	exists, existsError := service.store.Exists()
	if existsError != nil {
		return CloneResult{}, existsError
	}
	if exists {
		originURL, originError := service.store.OriginURL()
		if originError == nil && originURL == trimmedURL {
			result.AlreadyCloned = true
			return result, nil
		}
		service.logger.Debug(
			originMismatchMessageConstant,
			zap.String(logFieldRepositoryPathConstant, service.configuration.BareRepositoryPath),
			zap.String(logFieldRepositoryURLConstant, originURL),
			zap.Error(originError),
		)
		return CloneResult{}, service.existingRepositoryError()
	}

	if storageRootError := service.store.EnsureStorageRoot(); storageRootError != nil {
		return CloneResult{}, storageRootError
	}
	if directoryError := service.store.CreateRepositoryDirectory(); directoryError != nil {
		return CloneResult{}, directoryError
	}

	_, cloneError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments: []string{gitCloneSubcommandConstant, gitBareFlagConstant, trimmedURL, service.configuration.BareRepositoryPath},
		Streams:   service.errorStreamOnly(),
	})
	if cloneError != nil {
		service.removePartialRepository()
		return CloneResult{}, CloneFailureError{
			Name:  service.configuration.RepositoryName,
			URL:   trimmedURL,
			Cause: cloneError,
		}
	}

	if settingsError := service.applyLocalSettings(executionContext); settingsError != nil {
		service.removePartialRepository()
		return CloneResult{}, settingsError
	}

	_, checkoutError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments: service.locatedArguments(gitCheckoutSubcommandConstant),
		Streams:   service.errorStreamOnly(),
	})
	if checkoutError != nil {
		service.logger.Debug(
			checkoutFailedMessageConstant,
			zap.String(logFieldRepositoryNameConstant, service.configuration.RepositoryName),
			zap.Error(checkoutError),
		)
		result.CheckoutFailed = true
	}

	return result, nil
}

// Untrack removes the bare repository. Files checked out into the home
// directory are left untouched.
func (service *Service) Untrack(executionContext context.Context) (UntrackResult, error) {
	exists, existsError := service.store.Exists()
	if existsError != nil {
		return UntrackResult{}, existsError
	}
	if !exists {
		return UntrackResult{}, MissingRepoDirError{
			Name: service.configuration.RepositoryName,
			Path: service.configuration.BareRepositoryPath,
		}
	}

	if removeError := service.store.Remove(); removeError != nil {
		return UntrackResult{}, removeError
	}

	return UntrackResult{
		RepositoryName: service.configuration.RepositoryName,
		RepositoryPath: service.configuration.BareRepositoryPath,
	}, nil
}

// PassThrough forwards arguments to git against the bare repository with the
// home directory as work tree, attaching the caller's streams, and returns
// git's exit code. Location override flags are forwarded unchanged.
func (service *Service) PassThrough(executionContext context.Context, arguments []string) (int, error) {
	exists, existsError := service.store.Exists()
	if existsError != nil {
		return 0, existsError
	}
	if !exists {
		return 0, UnknownRepoError{
			Name: service.configuration.RepositoryName,
			Path: service.configuration.BareRepositoryPath,
		}
	}

	withinHome, workingDirectory, containmentError := service.store.WorkingDirectoryWithinHome()
	if containmentError != nil {
		return 0, containmentError
	}
	if !withinHome {
		return 0, OutsideHomeDirectoryError{
			HomeDirectory:    service.configuration.HomeDirectory,
			WorkingDirectory: workingDirectory,
		}
	}

	executionResult, executionError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        service.locatedArguments(arguments...),
		Streams:          service.streams,
		AllowNonZeroExit: true,
	})
	if executionError != nil {
		return 0, executionError
	}

	service.logger.Debug(passThroughMessageConstant, zap.Int(logFieldExitCodeConstant, executionResult.ExitCode))
	return executionResult.ExitCode, nil
}

// GitVersion streams the output of git --version to the caller and returns its exit code.
func (service *Service) GitVersion(executionContext context.Context) (int, error) {
	executionResult, executionError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments: []string{gitVersionFlagConstant},
		Streams: execshell.StreamAttachment{
			Output: service.streams.Output,
			Error:  service.streams.Error,
		},
		AllowNonZeroExit: true,
	})
	if executionError != nil {
		return 0, executionError
	}
	return executionResult.ExitCode, nil
}

func (service *Service) applyLocalSettings(executionContext context.Context) error {
	_, configError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        service.locatedArguments(gitConfigSubcommandConstant, gitLocalFlagConstant, gitShowUntrackedFilesKeyConstant, gitShowUntrackedFilesValue),
		WorkingDirectory: service.configuration.StorageRoot,
		Streams:          service.errorStreamOnly(),
	})
	if configError != nil {
		return ShowUntrackedFilesFailureError{Name: service.configuration.RepositoryName, Cause: configError}
	}
	return nil
}

func (service *Service) locatedArguments(arguments ...string) []string {
	located := make([]string, 0, len(arguments)+2)
	located = append(located,
		gitDirectoryFlagTemplateConstant+service.configuration.BareRepositoryPath,
		gitWorkTreeFlagTemplateConstant+service.configuration.HomeDirectory,
	)
	return append(located, arguments...)
}

func (service *Service) errorStreamOnly() execshell.StreamAttachment {
	return execshell.StreamAttachment{Error: service.streams.Error}
}

func (service *Service) existingRepositoryError() error {
	return ExistingRepoDirError{
		Name: service.configuration.RepositoryName,
		Path: service.configuration.BareRepositoryPath,
	}
}

func (service *Service) removePartialRepository() {
	if removeError := service.store.Remove(); removeError != nil {
		service.logger.Warn(
			cleanupFailedMessageConstant,
			zap.String(logFieldRepositoryPathConstant, service.configuration.BareRepositoryPath),
			zap.Error(removeError),
		)
	}
}
