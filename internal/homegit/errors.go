package homegit

import (
	"errors"
	"fmt"
)

const (
	homeDirectoryNotSetMessageConstant        = "home directory is not set"
	gitExecutorMissingMessageConstant         = "git executor not configured"
	fileSystemMissingMessageConstant          = "file system not configured"
	remoteReaderMissingMessageConstant        = "remote reader not configured"
	repositoryURLRequiredMessageConstant      = "repository url must be provided"
	invalidRepositoryNameTemplateConstant     = "invalid repository name %q: must be a single path element"
	existingRepositoryTemplateConstant        = "repository %s already exists at %s"
	missingRepositoryTemplateConstant         = "repository %s does not exist at %s"
	unknownRepositoryTemplateConstant         = "repository %s is not tracked at %s"
	outsideHomeDirectoryTemplateConstant      = "working directory %s is outside home directory %s"
	cloneFailureTemplateConstant              = "failed to clone %s into repository %s: %v"
	initFailureTemplateConstant               = "failed to initialize repository %s at %s: %v"
	showUntrackedFilesFailureTemplateConstant = "failed to set status.showUntrackedFiles for repository %s: %v"
)

// ErrHomeDirectoryNotSet indicates that no home directory was configured.
var ErrHomeDirectoryNotSet = errors.New(homeDirectoryNotSetMessageConstant)

// ErrGitExecutorNotConfigured indicates the git executor dependency was missing.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// ErrFileSystemNotConfigured indicates the file system dependency was missing.
var ErrFileSystemNotConfigured = errors.New(fileSystemMissingMessageConstant)

// ErrRemoteReaderNotConfigured indicates the remote reader dependency was missing.
var ErrRemoteReaderNotConfigured = errors.New(remoteReaderMissingMessageConstant)

// ErrRepositoryURLRequired indicates clone was invoked with an empty url.
var ErrRepositoryURLRequired = errors.New(repositoryURLRequiredMessageConstant)

// InvalidRepositoryNameError reports a repository name that is not a single path element.
type InvalidRepositoryNameError struct {
	Name string
}

func (failure InvalidRepositoryNameError) Error() string {
	return fmt.Sprintf(invalidRepositoryNameTemplateConstant, failure.Name)
}

// ExistingRepoDirError reports that the bare repository directory already exists.
type ExistingRepoDirError struct {
	Name string
	Path string
}

func (failure ExistingRepoDirError) Error() string {
	return fmt.Sprintf(existingRepositoryTemplateConstant, failure.Name, failure.Path)
}

// MissingRepoDirError reports that untrack found no bare repository directory.
type MissingRepoDirError struct {
	Name string
	Path string
}

func (failure MissingRepoDirError) Error() string {
	return fmt.Sprintf(missingRepositoryTemplateConstant, failure.Name, failure.Path)
}

// UnknownRepoError reports a pass-through invocation against an absent repository.
type UnknownRepoError struct {
	Name string
	Path string
}

func (failure UnknownRepoError) Error() string {
	return fmt.Sprintf(unknownRepositoryTemplateConstant, failure.Name, failure.Path)
}

// OutsideHomeDirectoryError reports a pass-through invocation outside the home directory.
type OutsideHomeDirectoryError struct {
	HomeDirectory    string
	WorkingDirectory string
}

func (failure OutsideHomeDirectoryError) Error() string {
	return fmt.Sprintf(outsideHomeDirectoryTemplateConstant, failure.WorkingDirectory, failure.HomeDirectory)
}

// CloneFailureError reports a failed bare clone.
type CloneFailureError struct {
	Name  string
	URL   string
	Cause error
}

func (failure CloneFailureError) Error() string {
	return fmt.Sprintf(cloneFailureTemplateConstant, failure.URL, failure.Name, failure.Cause)
}

// Unwrap exposes the git failure.
func (failure CloneFailureError) Unwrap() error {
	return failure.Cause
}

// InitFailureError reports a failed bare init.
type InitFailureError struct {
	Name  string
	Path  string
	Cause error
}

func (failure InitFailureError) Error() string {
	return fmt.Sprintf(initFailureTemplateConstant, failure.Name, failure.Path, failure.Cause)
}

// Unwrap exposes the git failure.
func (failure InitFailureError) Unwrap() error {
	return failure.Cause
}

// ShowUntrackedFilesFailureError reports a failure to hide untracked files.
type ShowUntrackedFilesFailureError struct {
	Name  string
	Cause error
}

func (failure ShowUntrackedFilesFailureError) Error() string {
	return fmt.Sprintf(showUntrackedFilesFailureTemplateConstant, failure.Name, failure.Cause)
}

// Unwrap exposes the git failure.
func (failure ShowUntrackedFilesFailureError) Unwrap() error {
	return failure.Cause
}
