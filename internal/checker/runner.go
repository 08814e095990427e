// SPDX-License-Identifier: MPL-2.0

// Package checker runs advisory and quality-check command lines against a
// module directory. Commands are configured as shell strings and executed
// through mvdan/sh, so behavior does not depend on a system shell being
// present or POSIX-compatible.
package checker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

type (
	// Result is the outcome of one command run. A non-zero ExitCode with a
	// nil Error represents normal process termination; Error is reserved for
	// infrastructure failures (parse errors, interpreter setup).
	Result struct {
		ExitCode int
		Error    error
	}

	// Runner executes one command line in a working directory. The production
	// implementation is ShellRunner; tests supply fakes for deterministic
	// outcomes.
	Runner interface {
		Run(ctx context.Context, command, dir string) Result
	}

	// ShellRunner executes commands with the embedded shell interpreter.
	ShellRunner struct {
		// Stdout and Stderr receive command output (os.Stdout/os.Stderr if nil).
		Stdout io.Writer
		Stderr io.Writer
	}
)

// Ok reports whether the run finished without failure.
func (r Result) Ok() bool {
	return r.Error == nil && r.ExitCode == 0
}

// NewShellRunner creates a runner that writes command output to the given
// writers.
func NewShellRunner(stdout, stderr io.Writer) *ShellRunner {
	return &ShellRunner{Stdout: stdout, Stderr: stderr}
}

// Run parses the command line and executes it in dir. Each invocation gets a
// fresh interpreter; nothing is retried.
func (s *ShellRunner) Run(ctx context.Context, command, dir string) Result {
	if strings.TrimSpace(command) == "" {
		return Result{ExitCode: 1, Error: fmt.Errorf("empty check command")}
	}

	prog, err := syntax.NewParser().Parse(strings.NewReader(command), "check")
	if err != nil {
		return Result{ExitCode: 1, Error: fmt.Errorf("failed to parse check command: %w", err)}
	}

	stdout := s.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := s.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	runner, err := interp.New(
		interp.Dir(dir),
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(nil, stdout, stderr),
	)
	if err != nil {
		return Result{ExitCode: 1, Error: fmt.Errorf("failed to create interpreter: %w", err)}
	}

	log.Debug("running check command", "command", command, "dir", dir)

	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return Result{ExitCode: int(exitStatus)}
		}
		return Result{ExitCode: 1, Error: fmt.Errorf("check command failed: %w", err)}
	}

	return Result{ExitCode: 0}
}
