package cmd

import (
	"fmt"
	"io"

	"github.com/mj1618/dockyard/internal/output"
	"github.com/mj1618/dockyard/internal/workspace"
	"github.com/spf13/cobra"
)

var doCmd = &cobra.Command{
	Use:   "do",
	Short: "Execute multiple layout steps in a batch",
	Long: `Execute a sequence of steps from a YAML list on stdin against the layout
file, then save it.

Each step is a step name with its parameters as a map. Steps execute
sequentially, and by default execution stops on the first error.

Supported step types: open, close, dock, undock, drag, split, focus, resize,
render, save, load, validate

Example:
  dockyard do <<'EOF'
  - open: { title: Scene, dock: true }
  - open: { title: Console, target: Scene, dir: bottom }
  - open: { title: Inspector, target: Scene, dir: right }
  - split: { p: root, ratio: 0.7 }
  - drag: { title: Console, to: "640,360" }
  - validate: {}
  EOF`,
	Args: cobra.NoArgs,
	RunE: runDo,
}

func init() {
	rootCmd.AddCommand(doCmd)
	doCmd.Flags().Bool("stop-on-error", true, "Stop execution on first error (default: true)")
	addDryRun(doCmd)
}

func runDo(cmd *cobra.Command, args []string) error {
	stopOnError, _ := cmd.Flags().GetBool("stop-on-error")

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	steps, err := workspace.ParseSteps(data)
	if err != nil {
		return err
	}

	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	res := ws.Run(steps, stopOnError)

	if dry, _ := cmd.Flags().GetBool("dry-run"); !dry && res.Completed > 0 {
		if err := ws.Save(); err != nil {
			return err
		}
	}
	return output.Print(res)
}
