// Package main is the entry point for the javafind CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/thoreinstein/javafind/cmd/javafind/commands"
	"github.com/thoreinstein/javafind/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	var exitErr *errors.ExitError
	isExit := errors.As(err, &exitErr)

	// An ExitError without a cause only carries a status, e.g. doctor warnings.
	if !isExit || exitErr.Err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	if suggestion := errors.Suggestion(err); suggestion != "" {
		for line := range strings.SplitSeq(suggestion, "\n") {
			fmt.Fprintf(os.Stderr, "  %s\n", line)
		}
	}

	os.Exit(errors.ExitCode(err))
}
