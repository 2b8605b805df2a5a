package model

import (
	"fmt"
	"strings"

	"github.com/mj1618/dockyard/internal/platform"
)

// Placement is where a docked window sits in the tree.
type Placement struct {
	Path   string
	Slot   int
	Bounds platform.Rect
	Active bool
}

// Place returns the placement of every docked window under root, using the
// sizes from the last resize pass. Bounds cover the whole tab group,
// including its tab bar.
func Place(root *Layout) map[*Window]Placement {
	out := make(map[*Window]Placement)
	place(root, "root", platform.Rect{W: root.Width, H: root.Height}, out)
	return out
}

func place(l *Layout, path string, r platform.Rect, out map[*Window]Placement) {
	regions := [2]platform.Rect{r, {}}
	if l.Type != LayoutCenter {
		regions[0], regions[1] = l.Splitter.Regions(r)
	}
	for i := range regions {
		if c := l.children[i]; c != nil {
			place(c, fmt.Sprintf("%s/%d", path, i), regions[i], out)
			continue
		}
		for _, w := range l.windows[i] {
			out[w] = Placement{Path: path, Slot: i, Bounds: regions[i], Active: l.currTab[i] == w}
		}
	}
}

// Find resolves a path such as "root/1/0" to a node and the rectangle it
// occupies.
func Find(root *Layout, path string) (*Layout, platform.Rect, bool) {
	parts := strings.Split(path, "/")
	if len(parts) == 0 || parts[0] != "root" {
		return nil, platform.Rect{}, false
	}
	l, r := root, platform.Rect{W: root.Width, H: root.Height}
	for _, p := range parts[1:] {
		if l.Type == LayoutCenter {
			return nil, platform.Rect{}, false
		}
		var i int
		switch p {
		case "0":
			i = 0
		case "1":
			i = 1
		default:
			return nil, platform.Rect{}, false
		}
		c := l.children[i]
		if c == nil {
			return nil, platform.Rect{}, false
		}
		r0, r1 := l.Splitter.Regions(r)
		r = [2]platform.Rect{r0, r1}[i]
		l = c
	}
	return l, r, true
}
