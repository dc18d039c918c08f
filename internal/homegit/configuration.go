package homegit

import (
	"path/filepath"
	"strings"

	"github.com/temirov/homegit/internal/utils/flags"
	pathutils "github.com/temirov/homegit/internal/utils/path"
)

const (
	// DefaultRepositoryName names the repository used when none is configured.
	DefaultRepositoryName = "default"
	// DefaultStorageDirectoryName is the storage root directory created under the home directory.
	DefaultStorageDirectoryName = ".homegit"
	// DefaultGitExecutableName is looked up on PATH when no executable is configured.
	DefaultGitExecutableName = "git"

	currentDirectoryElementConstant = "."
	parentDirectoryElementConstant  = ".."
)

// ExecutableLocator resolves an executable name to a path, like exec.LookPath.
type ExecutableLocator func(executableName string) (string, error)

// Settings carries the raw configuration values before resolution.
type Settings struct {
	HomeDirectory  string `mapstructure:"home"`
	Verbose        string `mapstructure:"verbose"`
	GitExecutable  string `mapstructure:"git_executable"`
	StorageRoot    string `mapstructure:"storage_root"`
	RepositoryName string `mapstructure:"repository"`
}

// Configuration is the resolved, immutable runtime configuration.
type Configuration struct {
	HomeDirectory      string
	StorageRoot        string
	RepositoryName     string
	BareRepositoryPath string
	GitExecutable      string
	Verbose            bool
}

// ResolveConfiguration applies defaults to settings and validates the result.
// The home directory is mandatory; every other value has a default.
func ResolveConfiguration(settings Settings, locateExecutable ExecutableLocator) (Configuration, error) {
	homeDirectory := strings.TrimSpace(settings.HomeDirectory)
	if len(homeDirectory) == 0 {
		return Configuration{}, ErrHomeDirectoryNotSet
	}
	homeDirectory = filepath.Clean(homeDirectory)
	homeExpander := pathutils.NewHomeExpander(homeDirectory)

	repositoryName := strings.TrimSpace(settings.RepositoryName)
	if len(repositoryName) == 0 {
		repositoryName = DefaultRepositoryName
	}
	if !isSinglePathElement(repositoryName) {
		return Configuration{}, InvalidRepositoryNameError{Name: repositoryName}
	}

	storageRoot := strings.TrimSpace(settings.StorageRoot)
	if len(storageRoot) == 0 {
		storageRoot = filepath.Join(homeDirectory, DefaultStorageDirectoryName)
	}
	storageRoot = homeExpander.Expand(storageRoot)
	if absoluteStorageRoot, absoluteError := filepath.Abs(storageRoot); absoluteError == nil {
		storageRoot = absoluteStorageRoot
	}

	gitExecutable := homeExpander.Expand(strings.TrimSpace(settings.GitExecutable))
	if len(gitExecutable) == 0 {
		gitExecutable = resolveDefaultExecutable(locateExecutable)
	}

	return Configuration{
		HomeDirectory:      homeDirectory,
		StorageRoot:        storageRoot,
		RepositoryName:     repositoryName,
		BareRepositoryPath: filepath.Join(storageRoot, repositoryName),
		GitExecutable:      gitExecutable,
		Verbose:            flags.ToggleEnabled(settings.Verbose),
	}, nil
}

func resolveDefaultExecutable(locateExecutable ExecutableLocator) string {
	if locateExecutable == nil {
		return DefaultGitExecutableName
	}
	executablePath, locateError := locateExecutable(DefaultGitExecutableName)
	if locateError != nil || len(strings.TrimSpace(executablePath)) == 0 {
		return DefaultGitExecutableName
	}
	return executablePath
}

func isSinglePathElement(name string) bool {
	if name == currentDirectoryElementConstant || name == parentDirectoryElementConstant {
		return false
	}
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return false
	}
	return filepath.Base(name) == name
}
