package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/longpath/config"
)

// Exit codes of the longpath binary.
const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitError indicates a general error
	ExitError = 1
	// ExitTimeout indicates the solve hit --timeout; the partial path was printed
	ExitTimeout = 3
	// ExitCancelled indicates the run was interrupted by a signal
	ExitCancelled = 4
	// ExitConfigError indicates an invalid config file, env override or flag
	ExitConfigError = 10
)

// errConfig marks errors raised while resolving settings.
var errConfig = errors.New("longpath: configuration")

// handleError prints err on the command's stderr and maps it to an exit code.
func handleError(cmd *cobra.Command, err error) int {
	if err == nil {
		return ExitSuccess
	}
	cmd.PrintErrln("Error:", err)

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ExitTimeout
	case errors.Is(err, context.Canceled):
		return ExitCancelled
	case errors.Is(err, errConfig), errors.Is(err, config.ErrConfigNil):
		return ExitConfigError
	default:
		return ExitError
	}
}
