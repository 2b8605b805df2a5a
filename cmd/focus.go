package cmd

import (
	"github.com/spf13/cobra"
)

var focusCmd = &cobra.Command{
	Use:   "focus <title>",
	Short: "Make a window the active tab of its group",
	Args:  cobra.ExactArgs(1),
	RunE:  runFocus,
}

func init() {
	rootCmd.AddCommand(focusCmd)
	addDryRun(focusCmd)
}

func runFocus(cmd *cobra.Command, args []string) error {
	return runStep(cmd, "focus", map[string]interface{}{"title": args[0]})
}
