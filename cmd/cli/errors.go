package cli

import (
	"errors"
	"fmt"

	"github.com/temirov/homegit/cmd/cli/repos"
	"github.com/temirov/homegit/internal/execshell"
	"github.com/temirov/homegit/internal/homegit"
)

const (
	existingRepositoryMessageTemplate   = "Existing repo: %s (%s)"
	missingRepositoryMessageTemplate    = "Missing repo: %s (%s)"
	unknownRepositoryMessageTemplate    = "Unknown repo: %s (%s)"
	outsideHomeDirectoryMessageTemplate = "The current working directory must be run within the %s directory (%s)"
	cloneFailureMessageTemplate         = "Error cloning repo (%s)"
	initFailureMessageTemplate          = "Error initializing repo (%s)"
	showUntrackedFilesMessageTemplate   = "Error setting status.showUntrackedFiles for %s"
	executableNotFoundMessageTemplate   = "Error executing git: No such file or directory: %s"
	homeDirectoryNotSetMessageConstant  = "You must set a value of the HOME environment variable"
	translatedFailureExitCodeConstant   = 1
)

// ExitStatusError carries the exit code the process should terminate with.
type ExitStatusError = repos.ExitStatusError

// ErrorTranslator maps homegit failures to the messages shown to users.
type ErrorTranslator struct{}

// Translate returns the user-facing message for failure and reports whether
// failure is a known homegit condition. A missing git executable is reported
// as such even when it caused a lifecycle failure.
func (ErrorTranslator) Translate(failure error) (string, bool) {
	if failure == nil {
		return "", false
	}

	var executableNotFound execshell.ExecutableNotFoundError
	if errors.As(failure, &executableNotFound) {
		return fmt.Sprintf(executableNotFoundMessageTemplate, executableNotFound.Executable), true
	}

	var existingRepository homegit.ExistingRepoDirError
	var missingRepository homegit.MissingRepoDirError
	var unknownRepository homegit.UnknownRepoError
	var outsideHomeDirectory homegit.OutsideHomeDirectoryError
	var cloneFailure homegit.CloneFailureError
	var initFailure homegit.InitFailureError
	var showUntrackedFilesFailure homegit.ShowUntrackedFilesFailureError

	switch {
	case errors.Is(failure, homegit.ErrHomeDirectoryNotSet):
		return homeDirectoryNotSetMessageConstant, true
	case errors.As(failure, &existingRepository):
		return fmt.Sprintf(existingRepositoryMessageTemplate, existingRepository.Name, existingRepository.Path), true
	case errors.As(failure, &missingRepository):
		return fmt.Sprintf(missingRepositoryMessageTemplate, missingRepository.Name, missingRepository.Path), true
	case errors.As(failure, &unknownRepository):
		return fmt.Sprintf(unknownRepositoryMessageTemplate, unknownRepository.Name, unknownRepository.Path), true
	case errors.As(failure, &outsideHomeDirectory):
		return fmt.Sprintf(outsideHomeDirectoryMessageTemplate, outsideHomeDirectory.HomeDirectory, outsideHomeDirectory.WorkingDirectory), true
	case errors.As(failure, &cloneFailure):
		return fmt.Sprintf(cloneFailureMessageTemplate, cloneFailure.Name), true
	case errors.As(failure, &initFailure):
		return fmt.Sprintf(initFailureMessageTemplate, initFailure.Name), true
	case errors.As(failure, &showUntrackedFilesFailure):
		return fmt.Sprintf(showUntrackedFilesMessageTemplate, showUntrackedFilesFailure.Name), true
	default:
		return "", false
	}
}
