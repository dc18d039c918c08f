package pathutils

import (
	"errors"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	parentDirectoryElementConstant = ".."
)

// IsWithinDirectory reports whether candidatePath equals parentDirectory or
// lies beneath it. Both paths are made absolute and symlinks are resolved
// where the path exists, so a sibling sharing a name prefix such as
// /home/user2 is never inside /home/user.
func IsWithinDirectory(parentDirectory string, candidatePath string) (bool, error) {
	canonicalParent, parentError := canonicalizePath(parentDirectory)
	if parentError != nil {
		return false, parentError
	}
	canonicalCandidate, candidateError := canonicalizePath(candidatePath)
	if candidateError != nil {
		return false, candidateError
	}

	relativePath, relativeError := filepath.Rel(comparisonPath(canonicalParent), comparisonPath(canonicalCandidate))
	if relativeError != nil {
		return false, nil
	}
	if relativePath == parentDirectoryElementConstant || strings.HasPrefix(relativePath, parentDirectoryElementConstant+string(filepath.Separator)) {
		return false, nil
	}
	return !filepath.IsAbs(relativePath), nil
}

func canonicalizePath(path string) (string, error) {
	absolutePath, absoluteError := filepath.Abs(filepath.Clean(path))
	if absoluteError != nil {
		return "", absoluteError
	}
	return resolveExistingPrefix(absolutePath)
}

// resolveExistingPrefix evaluates symlinks on the longest existing ancestor of
// absolutePath and re-appends the missing trailing elements.
func resolveExistingPrefix(absolutePath string) (string, error) {
	resolvedPath, resolveError := filepath.EvalSymlinks(absolutePath)
	if resolveError == nil {
		return resolvedPath, nil
	}
	if !errors.Is(resolveError, fs.ErrNotExist) {
		return "", resolveError
	}

	parentPath := filepath.Dir(absolutePath)
	if parentPath == absolutePath {
		return absolutePath, nil
	}
	resolvedParent, parentError := resolveExistingPrefix(parentPath)
	if parentError != nil {
		return "", parentError
	}
	return filepath.Join(resolvedParent, filepath.Base(absolutePath)), nil
}

func comparisonPath(path string) string {
	comparison := filepath.Clean(path)
	if runtime.GOOS == "windows" {
		comparison = strings.ToLower(comparison)
	}
	return comparison
}
