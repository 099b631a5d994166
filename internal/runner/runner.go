package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// TestCommand describes how the build tool is invoked. Tool is split on
// whitespace, so it may carry leading arguments such as "cargo +nightly".
// The streams are handed to the child as-is so its output reaches the user
// directly.
type TestCommand struct {
	Tool   string
	Args   []string
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.Logger
}

// ExitError reports a test tool that ran but exited non-zero.
type ExitError struct {
	Tool string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Tool, e.Code)
}

// Argv returns the full command line for filter.
func (tc TestCommand) Argv(filter string) []string {
	argv := append(strings.Fields(tc.Tool), tc.Args...)
	return append(argv, filter)
}

// RunTest runs the tool with filter appended to its arguments and waits for
// it to finish.
func RunTest(ctx context.Context, tc TestCommand, filter string) error {
	if len(strings.Fields(tc.Tool)) == 0 {
		return fmt.Errorf("test tool is empty")
	}

	argv := tc.Argv(filter)
	execCmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	execCmd.Dir = tc.Dir
	execCmd.Stdin = tc.Stdin
	execCmd.Stdout = tc.Stdout
	execCmd.Stderr = tc.Stderr

	if tc.Logger != nil {
		tc.Logger.Debug("running tests", zap.Strings("argv", argv), zap.String("dir", tc.Dir))
	}

	if err := execCmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			// killed by a signal
			if code < 0 {
				code = 1
			}
			return &ExitError{Tool: tc.Tool, Code: code}
		}
		return fmt.Errorf("failed to run %s: %w", strings.Join(argv, " "), err)
	}
	return nil
}
