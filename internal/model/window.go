package model

import "github.com/mj1618/dockyard/internal/platform"

// Intent is a one-frame request a window makes of the layout manager.
// Intents are collected while a frame is shown and applied by Manager.End.
type Intent int

const (
	IntentNone Intent = iota
	IntentUndock
	IntentClose
)

func (i Intent) String() string {
	switch i {
	case IntentUndock:
		return "undock"
	case IntentClose:
		return "close"
	default:
		return "none"
	}
}

// Panel draws the content region of a window.
type Panel interface {
	Show(bounds platform.Rect) Intent
}

// PanelFunc adapts a plain function to a Panel.
type PanelFunc func(bounds platform.Rect) Intent

// Show calls f(bounds).
func (f PanelFunc) Show(bounds platform.Rect) Intent {
	return f(bounds)
}

// Window is a dockable panel. It is either floating or a member of exactly
// one Layout slot.
type Window struct {
	Title      string
	Opened     bool
	EnableDock bool
	Panel      Panel

	layout *Layout
	slot   int
}

// Layout returns the node hosting w, or nil when w is floating.
func (w *Window) Layout() *Layout {
	return w.layout
}

// Slot returns the slot of Layout() that holds w.
func (w *Window) Slot() int {
	return w.slot
}

// Docked reports whether w is part of the docking tree.
func (w *Window) Docked() bool {
	return w.layout != nil
}

func (w *Window) show(bounds platform.Rect) Intent {
	if w.Panel == nil {
		return IntentNone
	}
	return w.Panel.Show(bounds)
}
