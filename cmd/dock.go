package cmd

import (
	"github.com/spf13/cobra"
)

var dockCmd = &cobra.Command{
	Use:   "dock <title>",
	Short: "Dock a window relative to another",
	Long: `Dock a window relative to a docked target window. Without --target the
window is docked against the whole tree: into the first tab group for center,
or along the given edge.

Examples:
  dockyard dock Inspector --target Scene --dir right
  dockyard dock Console --dir bottom
  dockyard dock Preview --target Scene         # as a tab`,
	Args: cobra.ExactArgs(1),
	RunE: runDock,
}

var undockCmd = &cobra.Command{
	Use:   "undock <title>",
	Short: "Make a docked window floating",
	Long:  "Take a window out of its tab group. A split left with one empty side collapses into its sibling.",
	Args:  cobra.ExactArgs(1),
	RunE:  runUndock,
}

func init() {
	rootCmd.AddCommand(dockCmd)
	dockCmd.Flags().String("target", "", "Docked window to dock against (default: the whole tree)")
	dockCmd.Flags().String("dir", "center", "Direction: center, left, right, top, bottom")
	addDryRun(dockCmd)

	rootCmd.AddCommand(undockCmd)
	addDryRun(undockCmd)
}

func runDock(cmd *cobra.Command, args []string) error {
	target, _ := cmd.Flags().GetString("target")
	if _, err := parseDir(cmd); err != nil {
		return err
	}
	dir, _ := cmd.Flags().GetString("dir")
	return runStep(cmd, "dock", map[string]interface{}{
		"title":  args[0],
		"target": target,
		"dir":    dir,
	})
}

func runUndock(cmd *cobra.Command, args []string) error {
	return runStep(cmd, "undock", map[string]interface{}{"title": args[0]})
}
