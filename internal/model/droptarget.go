package model

import "github.com/mj1618/dockyard/internal/platform"

// DropTarget is one candidate drop zone of a tab group.
type DropTarget struct {
	Dir Direction
	// Hit is the button the pointer must be over.
	Hit platform.Rect
	// Preview is the area the dragged window would take once dropped.
	Preview platform.Rect
}

// DropTargets returns the five candidate drop zones of a group occupying r,
// in evaluation order: center, left, right, top, bottom.
//
// The hit buttons form a cross around the center of r. Their size does not
// depend on r, so small groups get the same targets as large ones.
func DropTargets(r platform.Rect, size float64) [5]DropTarget {
	c := r.Center()
	half := size / 2
	step := size + size/4
	button := func(dx, dy float64) platform.Rect {
		return platform.Rect{X: c.X - half + dx, Y: c.Y - half + dy, W: size, H: size}
	}
	return [5]DropTarget{
		{Dir: DirCenter, Hit: button(0, 0), Preview: r},
		{Dir: DirLeft, Hit: button(-step, 0), Preview: platform.Rect{X: r.X, Y: r.Y, W: r.W / 2, H: r.H}},
		{Dir: DirRight, Hit: button(step, 0), Preview: platform.Rect{X: r.X + r.W/2, Y: r.Y, W: r.W / 2, H: r.H}},
		{Dir: DirTop, Hit: button(0, -step), Preview: platform.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H / 2}},
		{Dir: DirBottom, Hit: button(0, step), Preview: platform.Rect{X: r.X, Y: r.Y + r.H/2, W: r.W, H: r.H / 2}},
	}
}
