package cmd

import (
	"github.com/spf13/cobra"
)

var problemCmd = &cobra.Command{
	Use:   "problem <problem-id>",
	Short: "Run the tests for one problem",
	Long: `Run the tests for a problem through the build tool.

This runs "cargo test test_<problem-id>" in the workspace root. The exit
status of the test run becomes the exit status of solve.

Example:
  solve problem 42`,
	Args: requireArgs("problem-id"),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseProblemID(cmd, args[0])
		if err != nil {
			return err
		}

		ws, err := loadWorkspace(cmd)
		if err != nil {
			return err
		}
		return runProblem(cmd, ws, id)
	},
}

func init() {
	rootCmd.AddCommand(problemCmd)
}
