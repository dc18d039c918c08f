package gitrepo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
)

const (
	defaultRemoteNameConstant           = "origin"
	repositoryOpenErrorTemplateConstant = "unable to open repository at %s: %w"
	remoteLookupErrorTemplateConstant   = "unable to read remote %q of %s: %w"
	remoteWithoutURLMessageConstant     = "remote has no url"
)

// ErrRemoteNotFound indicates the repository has no remote with the requested name.
var ErrRemoteNotFound = git.ErrRemoteNotFound

// ErrRemoteURLMissing indicates the remote exists but declares no url.
var ErrRemoteURLMissing = errors.New(remoteWithoutURLMessageConstant)

// RemoteReader reads remote configuration from repositories on disk.
type RemoteReader struct{}

// NewRemoteReader constructs a RemoteReader.
func NewRemoteReader() *RemoteReader {
	return &RemoteReader{}
}

// RemoteURL returns the first configured URL of remoteName in the repository at
// repositoryPath. An empty remoteName selects origin. Bare and non-bare
// repositories are both supported.
func (reader *RemoteReader) RemoteURL(repositoryPath string, remoteName string) (string, error) {
	trimmedRemoteName := strings.TrimSpace(remoteName)
	if len(trimmedRemoteName) == 0 {
		trimmedRemoteName = defaultRemoteNameConstant
	}

	repository, openError := git.PlainOpen(repositoryPath)
	if openError != nil {
		return "", fmt.Errorf(repositoryOpenErrorTemplateConstant, repositoryPath, openError)
	}

	remote, remoteError := repository.Remote(trimmedRemoteName)
	if remoteError != nil {
		return "", fmt.Errorf(remoteLookupErrorTemplateConstant, trimmedRemoteName, repositoryPath, remoteError)
	}

	remoteConfiguration := remote.Config()
	if remoteConfiguration == nil || len(remoteConfiguration.URLs) == 0 {
		return "", fmt.Errorf(remoteLookupErrorTemplateConstant, trimmedRemoteName, repositoryPath, ErrRemoteURLMissing)
	}

	return strings.TrimSpace(remoteConfiguration.URLs[0]), nil
}
