package cmd

import (
	"fmt"

	"github.com/mj1618/dockyard/internal/workspace"
	"github.com/spf13/cobra"
)

var dragCmd = &cobra.Command{
	Use:   "drag <title>",
	Short: "Drag a window and drop it at a point",
	Long: `Simulate dragging a window with the pointer and releasing it at a canvas
point. A docked window is first dragged out of its tab bar. Releasing over one
of the five drop buttons of a tab group docks the window there; anywhere else
it stays floating.

Use 'dockyard show --flat' for group bounds; drop buttons sit around the
center of each group.

Examples:
  dockyard drag Console --to 640,360
  dockyard drag Console --x 680 --y 360`,
	Args: cobra.ExactArgs(1),
	RunE: runDrag,
}

var splitCmd = &cobra.Command{
	Use:   "split <path>",
	Short: "Move the splitter of a split node",
	Long: `Set the size ratio of the split at a tree path (root, root/0, ...), or drag
its splitter by --delta pixels. Drags are clamped so neither side drops below
the minimum size.

Examples:
  dockyard split root --ratio 0.3
  dockyard split root/1 --delta -40`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(dragCmd)
	dragCmd.Flags().String("to", "", "Release point as x,y")
	dragCmd.Flags().Float64("x", 0, "Release X coordinate")
	dragCmd.Flags().Float64("y", 0, "Release Y coordinate")
	addDryRun(dragCmd)

	rootCmd.AddCommand(splitCmd)
	splitCmd.Flags().Float64("ratio", 0, "Size ratio of the first side, in (0,1)")
	splitCmd.Flags().Float64("delta", 0, "Drag the splitter by this many pixels")
	addDryRun(splitCmd)
}

func runDrag(cmd *cobra.Command, args []string) error {
	to, err := parseTo(cmd)
	if err != nil {
		return err
	}
	return mutate(cmd, func(ws *workspace.Workspace) (interface{}, error) {
		return ws.Drag(args[0], to)
	})
}

func runSplit(cmd *cobra.Command, args []string) error {
	params := map[string]interface{}{"p": args[0]}
	switch {
	case cmd.Flags().Changed("ratio"):
		ratio, _ := cmd.Flags().GetFloat64("ratio")
		params["ratio"] = ratio
	case cmd.Flags().Changed("delta"):
		delta, _ := cmd.Flags().GetFloat64("delta")
		params["delta"] = delta
	default:
		return fmt.Errorf("specify --ratio or --delta")
	}
	return runStep(cmd, "split", params)
}
