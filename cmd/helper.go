package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chibuka/solve/internal/config"
	"github.com/chibuka/solve/internal/logging"
	"github.com/chibuka/solve/internal/problem"
	"github.com/chibuka/solve/internal/runner"
	"github.com/chibuka/solve/internal/solution"
	"github.com/chibuka/solve/internal/template"
	"github.com/chibuka/solve/ui"
)

// requireArgs accepts exactly one positional argument per name and names
// the first missing or unexpected one.
func requireArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < len(names) {
			return newUsageError(cmd, fmt.Errorf("missing required argument <%s>", names[len(args)]))
		}
		if len(args) > len(names) {
			return newUsageError(cmd, fmt.Errorf("unexpected argument %q", args[len(names)]))
		}
		return nil
	}
}

func parseProblemID(cmd *cobra.Command, raw string) (problem.ID, error) {
	id, err := problem.ParseID(raw)
	if err != nil {
		return 0, newUsageError(cmd, err)
	}
	return id, nil
}

// workspace is the resolved configuration for one invocation.
type workspace struct {
	root string
	cfg  *config.ProjectConfig
	log  *zap.Logger
	ui   *ui.Renderer
}

func loadWorkspace(cmd *cobra.Command) (*workspace, error) {
	log := logging.New(cmd.ErrOrStderr(), verbose)

	cfg, err := config.LoadProjectConfig(workDir)
	if err != nil {
		return nil, err
	}

	ws := &workspace{
		root: workDir,
		cfg:  cfg,
		log:  log,
		ui:   ui.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr()),
	}
	log.Debug("workspace loaded",
		zap.String("root", ws.root),
		zap.String("templates", ws.path(cfg.TemplatesDir)),
		zap.String("solutions", ws.path(cfg.SolutionsDir)),
		zap.String("index", ws.path(cfg.IndexFile)),
	)
	return ws, nil
}

func (ws *workspace) path(p string) string {
	return config.Resolve(ws.root, p)
}

func (ws *workspace) templates() template.Store {
	return template.Store{Dir: ws.path(ws.cfg.TemplatesDir)}
}

func (ws *workspace) indexPath() string {
	return ws.path(ws.cfg.IndexFile)
}

func (ws *workspace) writer() *solution.Writer {
	return &solution.Writer{
		Layout: solution.Layout{
			SolutionsDir: ws.path(ws.cfg.SolutionsDir),
			IndexFile:    ws.indexPath(),
			Extension:    ws.cfg.Extension,
		},
		Templates: ws.templates(),
		Logger:    ws.log,
	}
}

func (ws *workspace) testCommand(cmd *cobra.Command) runner.TestCommand {
	return runner.TestCommand{
		Tool:   ws.cfg.TestTool,
		Args:   ws.cfg.TestArgs,
		Dir:    ws.root,
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Logger: ws.log,
	}
}
