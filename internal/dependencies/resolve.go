package dependencies

import (
	"go.uber.org/zap"

	"github.com/temirov/homegit/internal/execshell"
	"github.com/temirov/homegit/internal/filesystem"
	"github.com/temirov/homegit/internal/gitrepo"
	"github.com/temirov/homegit/internal/homegit"
)

// ResolveFileSystem returns the provided filesystem or an OS-backed default.
func ResolveFileSystem(existing homegit.FileSystem) homegit.FileSystem {
	if existing != nil {
		return existing
	}
	return filesystem.OSFileSystem{}
}

// ResolveRemoteReader returns the provided reader or a go-git backed default.
func ResolveRemoteReader(existing homegit.RemoteReader) homegit.RemoteReader {
	if existing != nil {
		return existing
	}
	return gitrepo.NewRemoteReader()
}

// ResolveGitExecutor returns the provided executor or constructs a shell-backed
// default that launches gitExecutable. A non-nil observer is notified about
// every command, which is how verbose mode echoes command lines.
func ResolveGitExecutor(existing homegit.GitExecutor, logger *zap.Logger, gitExecutable string, observer execshell.CommandEventObserver) (homegit.GitExecutor, error) {
	if existing != nil {
		return existing, nil
	}

	options := []execshell.ShellExecutorOption{execshell.WithExecutablePath(execshell.CommandGit, gitExecutable)}
	if observer != nil {
		options = append(options, execshell.WithCommandEventObserver(observer))
	}

	commandRunner := execshell.NewOSCommandRunner()
	shellExecutor, creationError := execshell.NewShellExecutor(logger, commandRunner, options...)
	if creationError != nil {
		return nil, creationError
	}
	return shellExecutor, nil
}
