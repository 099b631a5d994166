package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chibuka/solve/internal/config"
	"github.com/chibuka/solve/internal/problem"
	"github.com/chibuka/solve/internal/runner"
)

var initCmd = &cobra.Command{
	Use:   "init [--tool <command>] [--template <file>]",
	Short: "Initialize the workspace layout and project config",
	Long: `Initialize the workspace so problems can be scaffolded.

This writes .solve.json and creates whatever is missing of:
  src/solutions/        solution files
  src/solutions.rs      the index
  templates/            templates, one <data-structure>.txt each

Existing files are never overwritten.

Examples:
  solve init
  solve init --template ~/snippets/problem.rs
  solve init --tool cross`,
	Args: requireArgs(),
	RunE: func(cmd *cobra.Command, args []string) error {
		tool, err := cmd.Flags().GetString("tool")
		if err != nil {
			return fmt.Errorf("failed to get tool flag: %w", err)
		}
		seed, err := cmd.Flags().GetString("template")
		if err != nil {
			return fmt.Errorf("failed to get template flag: %w", err)
		}

		ws, err := loadWorkspace(cmd)
		if err != nil {
			return err
		}
		if tool != "" {
			ws.cfg.TestTool = tool
		}

		if err := config.SaveProjectConfig(ws.root, ws.cfg); err != nil {
			return fmt.Errorf("failed to save project config: %w", err)
		}

		templates := ws.templates()
		setup := runner.WorkspaceSetup{
			CreateDirs:  []string{ws.path(ws.cfg.SolutionsDir), templates.Dir},
			CreateFiles: map[string]string{ws.indexPath(): ""},
		}
		if seed != "" {
			setup.CopyFiles = map[string]string{templates.Path(problem.Default): seed}
		}

		created, err := runner.PrepareWorkspace(setup)
		if err != nil {
			return err
		}

		ws.ui.Success("✓ Workspace initialized!")
		ws.ui.Info("  Test command: " + strings.Join(ws.testCommand(cmd).Argv("test_<id>"), " "))
		for _, path := range created {
			ws.ui.Info("  Created: " + path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().String("tool", "", "Build tool used to run tests (default \"cargo\")")
	initCmd.Flags().String("template", "", "File copied to templates/default.txt if it does not exist")
}
