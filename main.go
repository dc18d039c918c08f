package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/temirov/homegit/cmd/cli"
)

const (
	exitErrorTemplateConstant = "%v\n"
	failureExitCodeConstant   = 1
)

// main executes the homegit command-line application.
func main() {
	executionError := cli.Execute()
	if executionError == nil {
		return
	}

	var exitStatus cli.ExitStatusError
	if errors.As(executionError, &exitStatus) {
		os.Exit(exitStatus.Code)
	}
	fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
	os.Exit(failureExitCodeConstant)
}
