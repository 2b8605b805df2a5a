package model

import "math"

// Node is the serializable view of a Layout subtree. Windows are referenced
// by title.
type Node struct {
	Mode      string  `yaml:"mode"       json:"mode"`
	SizeRatio float64 `yaml:"size_radio" json:"size_radio"`
	Slots     [2]Slot `yaml:"slots"      json:"slots"`
}

// Slot is one side of a Node: either a nested node or an ordered list of
// window titles.
type Slot struct {
	Layout  *Node    `yaml:"layout,omitempty"  json:"layout,omitempty"`
	Windows []string `yaml:"windows,omitempty" json:"windows,omitempty"`
	Active  string   `yaml:"active,omitempty"  json:"active,omitempty"`
}

// Snapshot returns the serializable view of the whole tree.
func (m *Manager) Snapshot() *Node {
	return m.root.snapshot()
}

func (l *Layout) snapshot() *Node {
	n := &Node{Mode: l.Type.String(), SizeRatio: l.SizeRatio}
	for i := range l.children {
		if c := l.children[i]; c != nil {
			n.Slots[i].Layout = c.snapshot()
			continue
		}
		for _, w := range l.windows[i] {
			n.Slots[i].Windows = append(n.Slots[i].Windows, w.Title)
		}
		if t := l.currTab[i]; t != nil && len(l.windows[i]) > 1 {
			n.Slots[i].Active = t.Title
		}
	}
	return n
}

// Restore replaces the tree with one built from n. Titles that do not name
// an open, dockable window, and titles seen earlier in n, are skipped and
// returned. The result is cleaned and sized like any live mutation.
func (m *Manager) Restore(n *Node) []string {
	m.Reset()
	var skipped []string
	if n != nil {
		seen := make(map[*Window]bool)
		m.restoreNode(m.root, n, seen, &skipped)
	}
	m.Cleanup()
	m.root.SetSize(m.opts.Width, m.opts.Height)
	for _, title := range skipped {
		m.log.Debug("layout window skipped", "window", title)
	}
	return skipped
}

func (m *Manager) restoreNode(l *Layout, n *Node, seen map[*Window]bool, skipped *[]string) {
	t, err := ParseLayoutType(n.Mode)
	if err != nil {
		t = LayoutCenter
	}
	l.setType(t)
	l.SizeRatio = clampRatio(n.SizeRatio)

	for i := range n.Slots {
		s := n.Slots[i]
		if s.Layout != nil {
			if t == LayoutCenter {
				// A leaf cannot host a subtree; its windows open floating.
				collectTitles(s.Layout, skipped)
				continue
			}
			c := m.newLayout(LayoutCenter)
			l.setChild(i, c)
			m.restoreNode(c, s.Layout, seen, skipped)
			continue
		}
		for _, title := range s.Windows {
			w := m.Window(title)
			if w == nil || !w.Opened || !w.EnableDock || seen[w] {
				*skipped = append(*skipped, title)
				continue
			}
			seen[w] = true
			l.attach(i, w)
		}
		if s.Active != "" {
			if w := m.Window(s.Active); w != nil && w.layout == l && w.slot == i {
				l.currTab[i] = w
			}
		}
	}
}

func collectTitles(n *Node, out *[]string) {
	for _, s := range n.Slots {
		if s.Layout != nil {
			collectTitles(s.Layout, out)
			continue
		}
		*out = append(*out, s.Windows...)
	}
}

func clampRatio(r float64) float64 {
	if math.IsNaN(r) || r <= 0 || r >= 1 {
		return 0.5
	}
	return r
}

// Titles returns every window title referenced by n, in document order.
func (n *Node) Titles() []string {
	var out []string
	collectTitles(n, &out)
	return out
}
