package java

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/thoreinstein/javafind/internal/errors"
)

// Result is the outcome of a process that ran to completion.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Runner executes a program and captures its output. Run returns an error
// only when the program could not be started or did not finish; a non-zero
// exit is reported through Result.ExitCode.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// waitDelay bounds how long Run waits for output pipes after the process
// is killed, in case a launcher leaves children holding them open.
const waitDelay = 2 * time.Second

// ExecRunner runs programs with os/exec.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	//nolint:gosec // G204: running discovered launchers is the point
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Result{}, ctxErr
	}

	result := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return Result{}, err
	}
	return result, nil
}
