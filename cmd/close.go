package cmd

import (
	"github.com/spf13/cobra"
)

var closeCmd = &cobra.Command{
	Use:   "close <title>",
	Short: "Close a window",
	Long:  "Undock a window, mark it closed and drop it from the registry. The emptied split collapses.",
	Args:  cobra.ExactArgs(1),
	RunE:  runClose,
}

func init() {
	rootCmd.AddCommand(closeCmd)
	addDryRun(closeCmd)
}

func runClose(cmd *cobra.Command, args []string) error {
	return runStep(cmd, "close", map[string]interface{}{"title": args[0]})
}
