package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chibuka/solve/internal/index"
	"github.com/chibuka/solve/internal/problem"
	"github.com/chibuka/solve/internal/runner"
	"github.com/chibuka/solve/internal/solution"
	"github.com/chibuka/solve/internal/template"
)

const (
	exitFailure = 1
)

var errMissingCommand = errors.New("missing command (expected one of: scaffold, problem, latest)")

// usageError is a malformed invocation. It carries the usage line of the
// command that rejected it.
type usageError struct {
	err   error
	usage string
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func newUsageError(cmd *cobra.Command, err error) error {
	return &usageError{err: err, usage: "usage: " + cmd.UseLine()}
}

// "-7" reaches pflag as a cluster of unknown shorthand flags.
var negativeNumber = regexp.MustCompile(`unknown shorthand flag: '\d' in (-\S+)`)

func flagError(cmd *cobra.Command, err error) error {
	if m := negativeNumber.FindStringSubmatch(err.Error()); m != nil {
		return newUsageError(cmd, fmt.Errorf("%w (got %q)", problem.ErrInvalidID, m[1]))
	}
	return newUsageError(cmd, err)
}

// formatError turns err into a one-line diagnostic and an optional hint.
func formatError(err error) (msg, hint string) {
	msg = strings.TrimSpace(err.Error())

	var usageErr *usageError
	var exitErr *runner.ExitError
	switch {
	case errors.As(err, &usageErr):
		return msg, usageErr.usage

	case errors.As(err, &exitErr):
		return msg, ""

	case errors.Is(err, solution.ErrAlreadySolved):
		return msg, `pick another problem id, or run its tests with "solve problem <id>"`

	case errors.Is(err, template.ErrTemplateNotFound):
		return msg, `create the template, or copy one in with "solve init --template <file>"`

	case errors.Is(err, solution.ErrIndexMissing):
		return msg, `run "solve init" to create it`

	case errors.Is(err, index.ErrEmptyIndex):
		return msg, `scaffold a problem first: "solve scaffold <id> default"`

	case errors.Is(err, index.ErrMalformedEntry):
		return msg, `the last entry must look like "mod s_<id>;"`

	case errors.Is(err, fs.ErrNotExist):
		return msg, `run "solve init" to lay out the workspace`

	default:
		return msg, ""
	}
}

// exitCode is 1 for every failure except a failing test run, whose status
// is passed through.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *runner.ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}
	return exitFailure
}
