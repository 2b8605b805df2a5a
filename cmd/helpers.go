package cmd

import (
	"fmt"

	"github.com/mj1618/dockyard/internal/config"
	"github.com/mj1618/dockyard/internal/model"
	"github.com/mj1618/dockyard/internal/output"
	"github.com/mj1618/dockyard/internal/platform"
	"github.com/mj1618/dockyard/internal/workspace"
	"github.com/spf13/cobra"
)

// configPath returns --config, or the default location.
func configPath(cmd *cobra.Command) string {
	if p, _ := rootCmd.PersistentFlags().GetString("config"); p != "" {
		return p
	}
	return config.Path()
}

// loadConfig reads the config file named by --config.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	return config.Load(configPath(cmd))
}

// layoutPath returns --layout, or the layout named in the config.
func layoutPath(cfg config.Config) string {
	if p, _ := rootCmd.PersistentFlags().GetString("layout"); p != "" {
		return p
	}
	return cfg.Layout
}

// openWorkspace loads the config and the layout file it points at.
func openWorkspace(cmd *cobra.Command) (*workspace.Workspace, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	ws, skipped, err := workspace.Open(layoutPath(cfg), cfg, logger)
	if err != nil {
		return nil, err
	}
	if len(skipped) > 0 {
		logger.Warn("layout references windows that could not be restored", "skipped", skipped)
	}
	return ws, nil
}

// mutate opens the workspace, applies fn and saves the layout unless
// --dry-run is set. fn's result is printed.
func mutate(cmd *cobra.Command, fn func(*workspace.Workspace) (interface{}, error)) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	res, err := fn(ws)
	if err != nil {
		return err
	}
	if dry, _ := cmd.Flags().GetBool("dry-run"); !dry {
		if err := ws.Save(); err != nil {
			return err
		}
	}
	return output.Print(res)
}

// addDryRun registers --dry-run on a mutating command.
func addDryRun(cmd *cobra.Command) {
	cmd.Flags().Bool("dry-run", false, "Apply the change and print the result without saving the layout")
}

// parseDir reads --dir.
func parseDir(cmd *cobra.Command) (model.Direction, error) {
	dir, _ := cmd.Flags().GetString("dir")
	return model.ParseDirection(dir)
}

// parseTo reads --to, or --x and --y.
func parseTo(cmd *cobra.Command) (platform.Point, error) {
	if to, _ := cmd.Flags().GetString("to"); to != "" {
		return platform.ParsePoint(to)
	}
	if !cmd.Flags().Changed("x") || !cmd.Flags().Changed("y") {
		return platform.Point{}, fmt.Errorf("specify --to x,y or both --x and --y")
	}
	x, _ := cmd.Flags().GetFloat64("x")
	y, _ := cmd.Flags().GetFloat64("y")
	return platform.Point{X: x, Y: y}, nil
}

// runStep applies one workspace step built from flags and saves the layout.
func runStep(cmd *cobra.Command, action string, params map[string]interface{}) error {
	return mutate(cmd, func(ws *workspace.Workspace) (interface{}, error) {
		res, err := ws.Execute(action, params)
		if err != nil {
			return nil, err
		}
		res.OK = true
		return res, nil
	})
}
