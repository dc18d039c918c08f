// Package filesystem adapts operating system file primitives to the narrow
// interfaces consumed by homegit services.
package filesystem

import (
	"io/fs"
	"os"
)

// OSFileSystem implements FileSystem using the operating system primitives.
type OSFileSystem struct{}

// Stat retrieves file metadata.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// MkdirAll ensures a directory hierarchy exists with the provided permissions.
func (OSFileSystem) MkdirAll(path string, permissions fs.FileMode) error {
	return os.MkdirAll(path, permissions)
}

// Mkdir creates a single directory and fails when it already exists.
func (OSFileSystem) Mkdir(path string, permissions fs.FileMode) error {
	return os.Mkdir(path, permissions)
}

// RemoveAll removes a path and any children it contains.
func (OSFileSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// Getwd returns the current working directory.
func (OSFileSystem) Getwd() (string, error) {
	return os.Getwd()
}
