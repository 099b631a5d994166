/*
Copyright © 2025 MAROUANE BOUFAROUJ <boufaroujmarouan@gmail.com>
*/
package cmd

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/chibuka/solve/ui"
)

var (
	workDir string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "solve",
	Short: "Scaffold and test numbered problem solutions",
	Long: `solve - a helper for a workspace of numbered problem solutions

Each problem lives in its own file (src/solutions/s_<id>.rs) created from a
template, and is registered with one line in the index (src/solutions.rs).

Quick Start:
  1. Lay out the workspace:  solve init --template ~/templates/default.rs
  2. Start a problem:        solve scaffold 42 default
  3. Run its tests:          solve problem 42
  4. Re-run the last one:    solve latest`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newUsageError(cmd, errMissingCommand)
	},
}

// Execute runs the command line of the current process and exits with its
// status.
func Execute() {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// Run executes args and returns the process exit status. Diagnostics are
// written to stderr.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	resetFlags(rootCmd)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	msg, hint := formatError(err)
	ui.NewRenderer(stdout, stderr).Error(msg, hint)
	return exitCode(err)
}

// resetFlags restores every flag to its default so Run can be called more
// than once in a process.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workDir, "dir", "C", ".", "Workspace root containing templates/ and src/")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")
	rootCmd.SetFlagErrorFunc(flagError)
}
