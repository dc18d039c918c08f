// Package pathutils resolves user-supplied paths against the home directory.
package pathutils

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	tildeSymbolConstant             = "~"
	tildeForwardSlashPrefixConstant = "~/"
)

var tildeWithPathSeparatorPrefix = tildeSymbolConstant + string(os.PathSeparator)

// HomeExpander converts user home shortcuts to absolute paths.
type HomeExpander struct {
	homeDirectory string
}

// NewHomeExpander constructs a HomeExpander bound to the provided home directory.
func NewHomeExpander(homeDirectory string) *HomeExpander {
	return &HomeExpander{homeDirectory: strings.TrimSpace(homeDirectory)}
}

// Expand resolves a leading "~" or "~/" to the home directory. Other forms,
// including "~user", are returned unchanged.
func (expander *HomeExpander) Expand(candidatePath string) string {
	if expander == nil || len(expander.homeDirectory) == 0 {
		return candidatePath
	}
	if !strings.HasPrefix(candidatePath, tildeSymbolConstant) {
		return candidatePath
	}

	if candidatePath == tildeSymbolConstant {
		return expander.homeDirectory
	}

	for _, prefix := range []string{tildeForwardSlashPrefixConstant, tildeWithPathSeparatorPrefix} {
		if strings.HasPrefix(candidatePath, prefix) {
			return filepath.Join(expander.homeDirectory, strings.TrimPrefix(candidatePath, prefix))
		}
	}

	return candidatePath
}
