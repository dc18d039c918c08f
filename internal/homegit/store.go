package homegit

import (
	"errors"
	"fmt"
	"io/fs"

	pathutils "github.com/temirov/homegit/internal/utils/path"
)

const (
	originRemoteNameConstant              = "origin"
	directoryPermissionsConstant          = fs.FileMode(0o755)
	repositoryStatErrorTemplateConstant   = "unable to inspect %s: %w"
	storageRootErrorTemplateConstant      = "unable to create storage root %s: %w"
	repositoryDirectoryErrorTemplate      = "unable to create repository directory %s: %w"
	repositoryRemovalErrorTemplate        = "unable to remove repository %s: %w"
	workingDirectoryErrorTemplateConstant = "unable to determine working directory: %w"
	containmentErrorTemplateConstant      = "unable to compare %s with home directory %s: %w"
)

// FileSystem exposes the filesystem operations the repository store needs.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	MkdirAll(path string, permissions fs.FileMode) error
	Mkdir(path string, permissions fs.FileMode) error
	RemoveAll(path string) error
	Getwd() (string, error)
}

// RemoteReader reads a remote URL from a repository on disk.
type RemoteReader interface {
	RemoteURL(repositoryPath string, remoteName string) (string, error)
}

// RepositoryStore answers questions about the bare repository directory and
// performs the directory mutations of the lifecycle.
type RepositoryStore struct {
	configuration Configuration
	fileSystem    FileSystem
	remoteReader  RemoteReader
}

// NewRepositoryStore constructs a store for the configured repository.
func NewRepositoryStore(configuration Configuration, fileSystem FileSystem, remoteReader RemoteReader) *RepositoryStore {
	return &RepositoryStore{configuration: configuration, fileSystem: fileSystem, remoteReader: remoteReader}
}

// Exists reports whether anything occupies the bare repository path.
func (store *RepositoryStore) Exists() (bool, error) {
	_, statError := store.fileSystem.Stat(store.configuration.BareRepositoryPath)
	if statError == nil {
		return true, nil
	}
	if errors.Is(statError, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf(repositoryStatErrorTemplateConstant, store.configuration.BareRepositoryPath, statError)
}

// EnsureStorageRoot creates the storage root when missing.
func (store *RepositoryStore) EnsureStorageRoot() error {
	if mkdirError := store.fileSystem.MkdirAll(store.configuration.StorageRoot, directoryPermissionsConstant); mkdirError != nil {
		return fmt.Errorf(storageRootErrorTemplateConstant, store.configuration.StorageRoot, mkdirError)
	}
	return nil
}

// CreateRepositoryDirectory creates the empty bare repository directory.
func (store *RepositoryStore) CreateRepositoryDirectory() error {
	if mkdirError := store.fileSystem.Mkdir(store.configuration.BareRepositoryPath, directoryPermissionsConstant); mkdirError != nil {
		return fmt.Errorf(repositoryDirectoryErrorTemplate, store.configuration.BareRepositoryPath, mkdirError)
	}
	return nil
}

// Remove deletes the bare repository directory tree.
func (store *RepositoryStore) Remove() error {
	if removeError := store.fileSystem.RemoveAll(store.configuration.BareRepositoryPath); removeError != nil {
		return fmt.Errorf(repositoryRemovalErrorTemplate, store.configuration.BareRepositoryPath, removeError)
	}
	return nil
}

// OriginURL reads the origin remote URL of the bare repository.
func (store *RepositoryStore) OriginURL() (string, error) {
	return store.remoteReader.RemoteURL(store.configuration.BareRepositoryPath, originRemoteNameConstant)
}

// WorkingDirectoryWithinHome reports whether the current working directory is
// the home directory or one of its descendants, along with that directory.
func (store *RepositoryStore) WorkingDirectoryWithinHome() (bool, string, error) {
	workingDirectory, workingDirectoryError := store.fileSystem.Getwd()
	if workingDirectoryError != nil {
		return false, "", fmt.Errorf(workingDirectoryErrorTemplateConstant, workingDirectoryError)
	}
	within, containmentError := pathutils.IsWithinDirectory(store.configuration.HomeDirectory, workingDirectory)
	if containmentError != nil {
		return false, workingDirectory, fmt.Errorf(containmentErrorTemplateConstant, workingDirectory, store.configuration.HomeDirectory, containmentError)
	}
	return within, workingDirectory, nil
}
