package workspace

import (
	"fmt"

	"github.com/mj1618/dockyard/internal/model"
	"github.com/mj1618/dockyard/internal/output"
	"github.com/mj1618/dockyard/internal/platform"
	"github.com/mj1618/dockyard/internal/platform/headless"
)

// Drag picks title up, moves the pointer to `to` and releases it there,
// running the frame loop the way an interactive session would. A docked
// window is first dragged out of its tab bar. Where the window ends up
// depends on the drop target under `to`; without one it stays floating.
func (ws *Workspace) Drag(title string, to platform.Point) (output.WindowInfo, error) {
	w, err := ws.Window(title)
	if err != nil {
		return output.WindowInfo{}, err
	}
	if !w.EnableDock {
		return output.WindowInfo{}, fmt.Errorf("window %q cannot be docked", title)
	}

	m := ws.Manager
	in, ui, err := scriptedBackend()
	if err != nil {
		return output.WindowInfo{}, err
	}

	if w.Docked() {
		ui.DragTabOut(title)
		in.Set(to, true)
		m.Frame(in, ui)
	}
	ui.Hold(title, true)
	for i := 0; i < 2; i++ {
		in.Set(to, true)
		m.Frame(in, ui)
	}
	ui.Hold(title, false)
	in.Set(to, false)
	m.Frame(in, ui)

	info := windowInfo(w, model.Place(m.Root()))
	ws.log.Debug("window dragged", "window", title, "x", to.X, "y", to.Y, "state", info.State)
	return info, nil
}

// DragSplitter grabs the splitter of the split at path and moves it by
// delta pixels along its axis. It returns the resulting ratio.
func (ws *Workspace) DragSplitter(path string, delta float64) (float64, error) {
	m := ws.Manager
	l, r, ok := model.Find(m.Root(), path)
	if !ok {
		return 0, fmt.Errorf("no layout node at %q", path)
	}
	if l.IsLeaf() {
		return 0, fmt.Errorf("node %s is not a split", path)
	}

	in, ui, err := scriptedBackend()
	if err != nil {
		return 0, err
	}
	p := l.Splitter.Bar(r, m.Options().SplitterThickness).Center()
	q := p
	if l.Splitter.Vertical {
		q.Y += delta
	} else {
		q.X += delta
	}

	in.Set(p, true)
	m.Frame(in, ui)
	in.Set(q, true)
	m.Frame(in, ui)
	in.Set(q, false)
	m.Frame(in, ui)
	return l.SizeRatio, nil
}

// scriptedBackend returns a fresh backend from the provider registry. The
// frame-loop helpers need one whose input and tab bars can be scripted.
func scriptedBackend() (*headless.Input, *headless.Recorder, error) {
	p, err := platform.NewProvider()
	if err != nil {
		return nil, nil, err
	}
	in, ok := p.Input.(*headless.Input)
	if !ok {
		return nil, nil, fmt.Errorf("input backend %T is not scriptable: %w", p.Input, platform.ErrUnsupported)
	}
	ui, ok := p.Drawer.(*headless.Recorder)
	if !ok {
		return nil, nil, fmt.Errorf("drawer backend %T is not scriptable: %w", p.Drawer, platform.ErrUnsupported)
	}
	return in, ui, nil
}
