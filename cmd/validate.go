package cmd

import (
	"fmt"

	"github.com/mj1618/dockyard/internal/output"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the layout file for structural problems",
	Long: `Load the layout file and check the docking tree: parent links, splits with
an empty side, sides holding both a child and windows, windows docked twice,
active tabs outside their group and ratios outside (0,1).

Exits non-zero when violations are found.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	res := ws.Validate()
	if err := output.Print(res); err != nil {
		return err
	}
	if !res.OK {
		return fmt.Errorf("%d invariant violations", len(res.Violations))
	}
	return nil
}
