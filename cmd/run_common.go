package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chibuka/solve/internal/problem"
	"github.com/chibuka/solve/internal/runner"
)

// runProblem hands the tests for id to the configured build tool. The
// tool's output goes straight to the user.
func runProblem(cmd *cobra.Command, ws *workspace, id problem.ID) error {
	ws.log.Debug("selected problem", zap.Stringer("problem", id))
	return runner.RunTest(cmd.Context(), ws.testCommand(cmd), id.TestFilter())
}
