package cmd

import (
	"github.com/spf13/cobra"

	"github.com/chibuka/solve/internal/index"
)

var latestCmd = &cobra.Command{
	Use:     "latest",
	Aliases: []string{"l"},
	Short:   "Run the tests for the most recently registered problem",
	Long: `Run the tests for the problem registered by the last line of the index.

The last non-empty line of src/solutions.rs must look like "mod s_<id>;".

Example:
  solve latest
  solve l`,
	Args: requireArgs(),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := loadWorkspace(cmd)
		if err != nil {
			return err
		}

		id, err := index.Latest(ws.indexPath())
		if err != nil {
			return err
		}
		return runProblem(cmd, ws, id)
	},
}

func init() {
	rootCmd.AddCommand(latestCmd)
}
