package model

import (
	"fmt"
	"strings"

	"github.com/mj1618/dockyard/internal/platform"
)

// LayoutType is the kind of a docking tree node.
type LayoutType int

const (
	// LayoutCenter is a leaf hosting one tab group in slot 0.
	LayoutCenter LayoutType = iota
	// LayoutHorizontal places its two sides left and right.
	LayoutHorizontal
	// LayoutVertical places its two sides top and bottom.
	LayoutVertical
)

func (t LayoutType) String() string {
	switch t {
	case LayoutHorizontal:
		return "horizontal"
	case LayoutVertical:
		return "vertical"
	default:
		return "center"
	}
}

// ParseLayoutType converts a persisted mode name to a LayoutType.
func ParseLayoutType(s string) (LayoutType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center":
		return LayoutCenter, nil
	case "horizontal":
		return LayoutHorizontal, nil
	case "vertical":
		return LayoutVertical, nil
	default:
		return LayoutCenter, fmt.Errorf("unknown layout mode: %q (expected horizontal, vertical, or center)", s)
	}
}

// Direction is where a window is docked relative to its target.
type Direction int

const (
	DirCenter Direction = iota
	DirLeft
	DirRight
	DirTop
	DirBottom
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirTop:
		return "top"
	case DirBottom:
		return "bottom"
	default:
		return "center"
	}
}

// ParseDirection converts a flag value to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center", "tab":
		return DirCenter, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	case "top", "up":
		return DirTop, nil
	case "bottom", "down":
		return DirBottom, nil
	default:
		return DirCenter, fmt.Errorf("unknown direction: %q (expected center, left, right, top, or bottom)", s)
	}
}

// slot is the side of a new split the docked window goes to.
func (d Direction) slot() int {
	if d == DirLeft || d == DirTop {
		return 0
	}
	return 1
}

func (d Direction) layoutType() LayoutType {
	if d == DirLeft || d == DirRight {
		return LayoutHorizontal
	}
	return LayoutVertical
}

// Layout is one node of the docking tree: a Center leaf holding a tab group,
// or a split whose two sides each hold either a child Layout or a tab group.
type Layout struct {
	Type      LayoutType
	Width     float64
	Height    float64
	SizeRatio float64
	Splitter  Splitter

	children [2]*Layout
	windows  [2][]*Window
	currTab  [2]*Window
	parent   *Layout
	idx      int
}

// Child returns the child Layout on side i, or nil.
func (l *Layout) Child(i int) *Layout {
	return l.children[i]
}

// Windows returns a copy of the tab group on side i.
func (l *Layout) Windows(i int) []*Window {
	out := make([]*Window, len(l.windows[i]))
	copy(out, l.windows[i])
	return out
}

// ActiveTab returns the foreground window of side i, or nil.
func (l *Layout) ActiveTab(i int) *Window {
	return l.currTab[i]
}

// Parent returns the parent node, or nil for the root.
func (l *Layout) Parent() *Layout {
	return l.parent
}

// Index returns which side of the parent this node occupies.
func (l *Layout) Index() int {
	return l.idx
}

// IsLeaf reports whether l is a Center node.
func (l *Layout) IsLeaf() bool {
	return l.Type == LayoutCenter
}

// Empty reports whether neither side holds anything.
func (l *Layout) Empty() bool {
	return l.sideEmpty(0) && l.sideEmpty(1)
}

func (l *Layout) sideEmpty(i int) bool {
	return l.children[i] == nil && len(l.windows[i]) == 0
}

// Walk calls fn for l and every descendant in pre-order, stopping a branch
// when fn returns false.
func (l *Layout) Walk(fn func(*Layout) bool) {
	if !fn(l) {
		return
	}
	for _, c := range l.children {
		if c != nil {
			c.Walk(fn)
		}
	}
}

// Contains reports whether n is l or one of its descendants.
func (l *Layout) Contains(n *Layout) bool {
	found := false
	l.Walk(func(x *Layout) bool {
		if x == n {
			found = true
		}
		return !found
	})
	return found
}

func (l *Layout) setType(t LayoutType) {
	l.Type = t
	l.Splitter.Vertical = t == LayoutVertical
}

func (l *Layout) setChild(i int, c *Layout) {
	l.children[i] = c
	if c != nil {
		c.parent = l
		c.idx = i
	}
}

// rebind points every window of side i back at l.
func (l *Layout) rebind(i int) {
	for _, w := range l.windows[i] {
		w.layout = l
		w.slot = i
	}
}

// attach appends w to the tab group on side i.
func (l *Layout) attach(i int, w *Window) {
	l.windows[i] = append(l.windows[i], w)
	w.layout = l
	w.slot = i
	if l.currTab[i] == nil {
		l.currTab[i] = w
	}
}

// remove takes w out of its tab group. The active tab moves to the
// neighbour that slides into w's position.
func (l *Layout) remove(w *Window) {
	s := w.slot
	ws := l.windows[s]
	for i, x := range ws {
		if x != w {
			continue
		}
		rest := append(ws[:i:i], ws[i+1:]...)
		l.windows[s] = rest
		if l.currTab[s] == w {
			switch {
			case len(rest) == 0:
				l.currTab[s] = nil
			case i < len(rest):
				l.currTab[s] = rest[i]
			default:
				l.currTab[s] = rest[len(rest)-1]
			}
		}
		break
	}
	w.layout = nil
	w.slot = 0
}

// clear empties l and turns it into a Center node. Width, Height and the
// splitter minimums are kept.
func (l *Layout) clear() {
	l.setType(LayoutCenter)
	l.SizeRatio = 0.5
	l.children = [2]*Layout{}
	l.windows = [2][]*Window{}
	l.currTab = [2]*Window{}
	l.Splitter.Size = [2]float64{}
	l.Splitter.active = false
}

// absorb moves everything c holds into l, taking over its type, ratio and
// splitter. c is left detached.
func (l *Layout) absorb(c *Layout) {
	kids, wins, tabs := c.children, c.windows, c.currTab
	l.setType(c.Type)
	l.SizeRatio = c.SizeRatio
	l.Splitter = c.Splitter
	l.Splitter.Vertical = c.Type == LayoutVertical
	l.children = [2]*Layout{}
	for i := range kids {
		l.setChild(i, kids[i])
		l.windows[i] = wins[i]
		l.currTab[i] = tabs[i]
		l.rebind(i)
	}
	c.children = [2]*Layout{}
	c.windows = [2][]*Window{}
	c.currTab = [2]*Window{}
	c.parent = nil
}

// collapseInto replaces a split by its only non-empty side k.
func (l *Layout) collapseInto(k int) {
	if c := l.children[k]; c != nil {
		l.absorb(c)
		return
	}
	ws, tab := l.windows[k], l.currTab[k]
	l.clear()
	l.windows[0] = ws
	l.currTab[0] = tab
	l.rebind(0)
}

// cleanup makes one pass over the subtree, removing empty children and
// collapsing splits with an empty side. It reports whether anything changed.
func (l *Layout) cleanup() bool {
	changed := false
	for i, c := range l.children {
		if c == nil {
			continue
		}
		if c.cleanup() {
			changed = true
		}
		if c.Empty() {
			c.parent = nil
			l.children[i] = nil
			changed = true
		}
	}

	if l.Type == LayoutCenter {
		if len(l.windows[1]) > 0 {
			l.windows[0] = append(l.windows[0], l.windows[1]...)
			l.windows[1] = nil
			if l.currTab[0] == nil {
				l.currTab[0] = l.currTab[1]
			}
			l.currTab[1] = nil
			l.rebind(0)
			changed = true
		}
		return changed
	}

	e0, e1 := l.sideEmpty(0), l.sideEmpty(1)
	switch {
	case e0 && e1:
		l.clear()
		changed = true
	case e0:
		l.collapseInto(1)
		changed = true
	case e1:
		l.collapseInto(0)
		changed = true
	}
	return changed
}

// SetSize assigns the node's extent and propagates it down the subtree.
func (l *Layout) SetSize(w, h float64) {
	l.Width, l.Height = w, h
	l.resize()
}

func (l *Layout) resize() {
	if l.Type == LayoutCenter {
		return
	}
	extent := l.Width
	if l.Type == LayoutVertical {
		extent = l.Height
	}
	l.Splitter.SetSizeRatio(extent, l.SizeRatio)
	for i, c := range l.children {
		if c == nil {
			continue
		}
		if l.Type == LayoutHorizontal {
			c.SetSize(l.Splitter.Size[i], l.Height)
		} else {
			c.SetSize(l.Width, l.Splitter.Size[i])
		}
	}
}

// firstGroup returns the first tab group in pre-order.
func (l *Layout) firstGroup() (*Layout, int) {
	if l.Type == LayoutCenter {
		return l, 0
	}
	for i := range l.children {
		if c := l.children[i]; c != nil {
			return c.firstGroup()
		}
		if len(l.windows[i]) > 0 {
			return l, i
		}
	}
	return l, 0
}

// show draws the subtree inside r.
func (l *Layout) show(m *Manager, r platform.Rect) {
	if l.Type == LayoutCenter {
		m.showGroup(l, 0, r)
		return
	}
	r0, r1 := l.Splitter.DoSplit(m.input, m.drawer, r, m.opts.SplitterThickness)
	if total := l.Splitter.total(); total > 0 {
		l.SizeRatio = l.Splitter.Size[0] / total
	}
	for i, ri := range [2]platform.Rect{r0, r1} {
		c := l.children[i]
		if c == nil {
			m.showGroup(l, i, ri)
			continue
		}
		if c.Width != ri.W || c.Height != ri.H {
			c.SetSize(ri.W, ri.H)
		}
		c.show(m, ri)
	}
}
