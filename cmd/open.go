package cmd

import (
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open <title>",
	Short: "Open a window",
	Long: `Register a window, or reopen it. New windows float until docked.

With --dock the window is docked against the whole tree; with --target it is
docked relative to that window in direction --dir.

Examples:
  dockyard open Scene --dock
  dockyard open Console --target Scene --dir bottom`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
	openCmd.Flags().Bool("dock", false, "Dock the window against the whole tree")
	openCmd.Flags().String("target", "", "Dock relative to this docked window")
	openCmd.Flags().String("dir", "center", "Direction: center, left, right, top, bottom")
	addDryRun(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	dock, _ := cmd.Flags().GetBool("dock")
	target, _ := cmd.Flags().GetString("target")
	dir, _ := cmd.Flags().GetString("dir")
	return runStep(cmd, "open", map[string]interface{}{
		"title":  args[0],
		"dock":   dock,
		"target": target,
		"dir":    dir,
	})
}
