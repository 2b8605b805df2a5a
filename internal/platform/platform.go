package platform

// Input exposes the pointer state sampled once per frame.
type Input interface {
	// Pointer returns the current pointer position.
	Pointer() Point

	// Pressed reports whether the primary button went down this frame.
	Pressed() bool

	// Released reports whether the primary button went up this frame.
	Released() bool

	// Down reports whether the primary button is currently held.
	Down() bool

	// Hovering reports whether the pointer is over r.
	Hovering(r Rect) bool
}

// TabBarResult is what a tab bar reports back after being drawn.
type TabBarResult struct {
	// Active is the index of the foreground tab.
	Active int
	// DragOut is set when the active tab was dragged out of the bar.
	DragOut bool
	// Close is the index of a tab whose close button was clicked, or -1.
	Close int
}

// FloatingResult is what a floating window frame reports back after being drawn.
type FloatingResult struct {
	// Dragging is set while the window is being moved by its title bar.
	Dragging bool
	// Close is set when the window's close button was clicked.
	Close bool
	// Bounds is the content region inside the frame.
	Bounds Rect
}

// Drawer draws the chrome around docked and floating windows.
type Drawer interface {
	// TabBar draws a tab strip for titles inside r with active in front.
	TabBar(r Rect, titles []string, active int) TabBarResult

	// Floating draws the frame of an undocked window.
	Floating(title string) FloatingResult

	// Content marks the content region of the window titled title.
	Content(r Rect, title string)

	// SplitterBar draws the draggable boundary between two regions.
	SplitterBar(r Rect, vertical, active bool)

	// Highlight draws a translucent drop-target preview.
	Highlight(r Rect)
}
