// Package gitrepo inspects bare repositories on disk through go-git without
// launching the git executable.
package gitrepo
