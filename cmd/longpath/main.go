package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			os.Exit(ExitError)
		}
	}()

	// Execute handles SIGINT/SIGTERM through signal.NotifyContext
	cmd := newRootCmd()
	if err := Execute(context.Background(), cmd); err != nil {
		os.Exit(handleError(cmd, err))
	}

	os.Exit(ExitSuccess)
}
