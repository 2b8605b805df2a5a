package cmd

import (
	"github.com/mj1618/dockyard/internal/output"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the docking tree",
	Long: `Print the docking tree of the layout file: split modes, size ratios,
tab groups and their active tabs, followed by the floating windows.

With --flat, nodes are listed one per line with their tree path (root, root/0,
root/1/0, ...) and pixel bounds.`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Bool("flat", false, "List nodes with paths and bounds instead of the nested tree")
}

func runShow(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	if flat, _ := cmd.Flags().GetBool("flat"); flat {
		return output.Print(ws.ShowFlat())
	}
	return output.Print(ws.Show())
}
