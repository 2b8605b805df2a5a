package model

import "github.com/mj1618/dockyard/internal/platform"

// idleInput is used when a frame is begun without an input backend.
type idleInput struct{}

func (idleInput) Pointer() platform.Point { return platform.Point{X: -1, Y: -1} }
func (idleInput) Pressed() bool { return false }
func (idleInput) Released() bool { return false }
func (idleInput) Down() bool { return false }
func (idleInput) Hovering(r platform.Rect) bool { return false }

// nopDrawer is used when a frame is shown without a drawing backend.
type nopDrawer struct{}

func (nopDrawer) TabBar(r platform.Rect, titles []string, active int) platform.TabBarResult {
	return platform.TabBarResult{Active: active, Close: -1}
}

func (nopDrawer) Floating(title string) platform.FloatingResult { return platform.FloatingResult{} }
func (nopDrawer) Content(r platform.Rect, title string) {}
func (nopDrawer) SplitterBar(r platform.Rect, vertical, active bool) {}
func (nopDrawer) Highlight(r platform.Rect) {}
