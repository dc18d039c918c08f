package repos

import "fmt"

const (
	exitStatusTemplateConstant = "exit status %d"
)

// ExitStatusError carries the exit code the process should terminate with.
type ExitStatusError struct {
	Code int
}

func (failure ExitStatusError) Error() string {
	return fmt.Sprintf(exitStatusTemplateConstant, failure.Code)
}
