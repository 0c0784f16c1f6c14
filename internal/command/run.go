// Package command executes external tool processes for autostepper.
package command

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"autostepper/internal/utils/logging"
)

// Result holds the outcome of a finished process.
type Result struct {
	Stdout   []byte
	Stderr   string
	ExitCode int
}

// Runner starts external processes. Implementations return an error only
// when the process could not be started or the context ended; a nonzero
// exit code is reported through Result.
type Runner interface {
	Run(ctx context.Context, bin string, args []string) (Result, error)
}

// ExecRunner runs commands through os/exec.
type ExecRunner struct{}

// Run executes bin with args, capturing stdout and stderr in full.
func (ExecRunner) Run(ctx context.Context, bin string, args []string) (Result, error) {
	cmd := exec.CommandContext(ctx, bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.D(1, "Executing command: %s", cmd.String())

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Result{}, ctxErr
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{
				Stdout:   stdout.Bytes(),
				Stderr:   stderr.String(),
				ExitCode: exitErr.ExitCode(),
			}, nil
		}
		return Result{}, err
	}

	return Result{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.String(),
		ExitCode: 0,
	}, nil
}
