package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/camerondm9/git-todo/cmd/cli"
	"github.com/camerondm9/git-todo/internal/execshell"
)

const (
	exitErrorTemplateConstant = "%v\n"
	genericFailureExitCode    = 1
)

// main executes the git-todo command-line application. When a git invocation
// fails, the captured standard error and exit code surface unchanged so the
// process behaves like the git command it wraps.
func main() {
	executionError := cli.Execute()
	if executionError == nil {
		return
	}

	var failedCommand execshell.CommandFailedError
	if errors.As(executionError, &failedCommand) {
		fmt.Fprint(os.Stderr, failedCommand.Result.StandardError)
		os.Exit(failedCommand.Result.ExitCode)
	}

	fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
	os.Exit(genericFailureExitCode)
}
