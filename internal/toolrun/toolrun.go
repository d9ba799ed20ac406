// Package toolrun executes external tools and captures their stderr for
// error reporting. Pipeline steps depend on the Runner interface so tests
// can substitute a fake invoker.
package toolrun

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner runs one external tool invocation to completion and returns its
// captured stderr alongside any execution error.
type Runner interface {
	Run(ctx context.Context, binary string, args []string) (string, error)
}

// CommandRunner is the exec-backed Runner used outside of tests. When
// Verbose is set, tool stderr is tee'd to the process stderr in real time
// while still being captured for error reporting.
type CommandRunner struct {
	Verbose bool
}

// Run blocks until the tool exits.
func (r CommandRunner) Run(ctx context.Context, binary string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, binary, args...)

	var stderrBuf bytes.Buffer
	if r.Verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	return stderrBuf.String(), err
}

// WrapError attaches the tool name and trimmed stderr to an execution error.
func WrapError(tool string, stderr string, err error) error {
	trimmed := strings.TrimSpace(stderr)
	if trimmed == "" {
		return fmt.Errorf("%s: %w", tool, err)
	}
	return fmt.Errorf("%s: %w: %s", tool, err, trimmed)
}
