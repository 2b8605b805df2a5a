package cmd

import (
	"fmt"

	"github.com/mj1618/dockyard/internal/output"
	"github.com/mj1618/dockyard/internal/platform"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [title]",
	Short: "List windows and where they are docked",
	Long:  "List registered windows with their state (docked or floating), tree path, slot, active flag and bounds.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("docked", false, "Only list docked windows")
	listCmd.Flags().Bool("floating", false, "Only list floating windows")
	listCmd.Flags().String("within", "", "Only list docked windows overlapping x,y,w,h")
}

func runList(cmd *cobra.Command, args []string) error {
	docked, _ := cmd.Flags().GetBool("docked")
	floating, _ := cmd.Flags().GetBool("floating")
	if docked && floating {
		return fmt.Errorf("--docked and --floating are mutually exclusive")
	}

	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		info, err := ws.Info(args[0])
		if err != nil {
			return err
		}
		return output.Print(info)
	}
	res := ws.List(docked, floating)
	if within, _ := cmd.Flags().GetString("within"); within != "" {
		r, err := platform.ParseRect(within)
		if err != nil {
			return err
		}
		kept := res.Windows[:0]
		for _, w := range res.Windows {
			b := platform.Rect{X: float64(w.Bounds[0]), Y: float64(w.Bounds[1]), W: float64(w.Bounds[2]), H: float64(w.Bounds[3])}
			if w.State == "docked" && b.Intersects(r) {
				kept = append(kept, w)
			}
		}
		res.Windows = kept
	}
	return output.Print(res)
}
