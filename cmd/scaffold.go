package cmd

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/chibuka/solve/internal/problem"
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold <problem-id> <data-structure>",
	Short: "Create a solution file from a template and register it",
	Long: fmt.Sprintf(`Create src/solutions/s_<problem-id>.rs from templates/<data-structure>.txt
and append "mod s_<problem-id>;" to src/solutions.rs.

Every {{problem_id}} in the template is replaced with the problem id. An
existing solution is never overwritten.

Data structures: %s

Example:
  solve scaffold 42 default
  solve scaffold 42 default --open`, strings.Join(problem.Tags(), ", ")),
	Args: requireArgs("problem-id", "data-structure"),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseProblemID(cmd, args[0])
		if err != nil {
			return err
		}
		ds, err := problem.ParseDataStructure(args[1])
		if err != nil {
			return newUsageError(cmd, err)
		}

		ws, err := loadWorkspace(cmd)
		if err != nil {
			return err
		}

		res, err := ws.writer().Scaffold(id, ds)
		if err != nil {
			return err
		}
		ws.ui.Success("Solution scaffolded!")
		if verbose {
			ws.ui.Info(fmt.Sprintf("  Created: %s (%s)", res.SolutionPath, humanize.Bytes(uint64(res.Bytes))))
		}

		open, err := cmd.Flags().GetBool("open")
		if err != nil {
			return fmt.Errorf("failed to get open flag: %w", err)
		}
		if open {
			browser.Stdout = cmd.ErrOrStderr()
			browser.Stderr = cmd.ErrOrStderr()
			if err := browser.OpenFile(res.SolutionPath); err != nil {
				ws.ui.Warn(fmt.Sprintf("could not open %s: %v", res.SolutionPath, err))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scaffoldCmd)
	scaffoldCmd.Flags().Bool("open", false, "Open the new solution file afterwards")
}
