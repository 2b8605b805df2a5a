package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/dockyard/internal/output"
	"github.com/spf13/cobra"
)

// RenderResult is the output of a successful render.
type RenderResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	File   string `yaml:"file"   json:"file"`
	Width  int    `yaml:"width"  json:"width"`
	Height int    `yaml:"height" json:"height"`
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the layout to a PNG image",
	Long: `Paint one frame of the layout: tab bars, content areas and splitters.
Floating windows are listed in a sidebar on the right unless --sidebar=false.

Use --out - to write the PNG to stdout.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("out", "o", "layout.png", "Output file, or - for stdout")
	renderCmd.Flags().Bool("sidebar", true, "List floating windows in a sidebar")
}

func runRender(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")
	sidebar, _ := cmd.Flags().GetBool("sidebar")

	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	c := ws.Render(sidebar)

	if out == "-" {
		return c.EncodePNG(os.Stdout)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	if err := c.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	b := c.Image().Bounds()
	return output.Print(RenderResult{OK: true, Action: "render", File: out, Width: b.Dx(), Height: b.Dy()})
}
