package cmd

import (
	"github.com/mj1618/dockyard/internal/model"
	"github.com/mj1618/dockyard/internal/output"
	"github.com/mj1618/dockyard/internal/workspace"
	"github.com/spf13/cobra"
)

// DiffResult is the output of the diff command.
type DiffResult struct {
	From    string               `yaml:"from"    json:"from"`
	To      string               `yaml:"to"      json:"to"`
	Changes []model.LayoutChange `yaml:"changes" json:"changes"`
}

var diffCmd = &cobra.Command{
	Use:   "diff <from> <to>",
	Short: "Compare two layout files",
	Long: `Load two layout files and report the nodes that were added, removed or
changed (mode, size ratio, windows, active tab), matched by tree path.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	var flat [2][]model.FlatNode
	for i, path := range args {
		ws := workspace.New(path, cfg, logger)
		if _, err := ws.Load(path); err != nil {
			return err
		}
		flat[i] = model.FlattenLayout(ws.Manager.Root())
	}

	changes := model.DiffLayouts(flat[0], flat[1])
	if changes == nil {
		changes = []model.LayoutChange{}
	}
	return output.Print(DiffResult{From: args[0], To: args[1], Changes: changes})
}
