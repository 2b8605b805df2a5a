package workspace

import (
	"fmt"
	"io"

	"github.com/mj1618/dockyard/internal/model"
	"github.com/mj1618/dockyard/internal/platform"
	"github.com/mj1618/dockyard/internal/platform/raster"
)

const (
	sidebarWidth    = 200
	sidebarMinWidth = 160
	sidebarHeader   = 24
)

// Render paints one frame of the workspace. With sidebar set and floating
// windows present, the canvas grows a column on the right that lists them.
func (ws *Workspace) Render(sidebar bool) *raster.Canvas {
	o := ws.Manager.Options()
	total := o.Width
	showSidebar := sidebar && len(ws.Manager.Floating()) > 0
	if showSidebar {
		total += sidebarWidth
	}

	c := raster.New(int(total+0.5), int(o.Height+0.5), raster.DefaultTheme())
	if showSidebar {
		// The layout keeps its width; the sidebar takes what is left.
		split := model.Splitter{
			Size:    [2]float64{o.Width, 0},
			MinSize: [2]float64{o.MinSize, sidebarMinWidth},
		}
		split.SetSizeGreedily(total)
		_, side := split.Regions(platform.Rect{W: total, H: o.Height})
		c.List(side, "Floating", nil)
		c.SetFloatingArea(platform.Rect{X: side.X, Y: side.Y + sidebarHeader, W: side.W, H: side.H - sidebarHeader})
	}
	ws.Manager.Frame(nil, c)
	return c
}

// RenderPNG paints one frame and writes it to w as PNG.
func (ws *Workspace) RenderPNG(w io.Writer, sidebar bool) error {
	if err := ws.Render(sidebar).EncodePNG(w); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
