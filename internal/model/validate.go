package model

import "fmt"

// Violation is a broken docking tree invariant.
type Violation struct {
	Path    string `yaml:"p"       json:"p"`
	Problem string `yaml:"problem" json:"problem"`
}

// Validate checks the invariants the tree must satisfy before it is shown.
// An empty Center root is valid.
func Validate(root *Layout) []Violation {
	var out []Violation
	seen := make(map[*Window]string)
	validateNode(root, "root", root, seen, &out)
	return out
}

// Validate checks the tree and the registry's back-references.
func (m *Manager) Validate() []Violation {
	out := Validate(m.root)
	for _, w := range m.windows {
		if w.layout != nil && !m.root.Contains(w.layout) {
			out = append(out, Violation{Path: "-", Problem: fmt.Sprintf("window %q references a detached layout", w.Title)})
		}
	}
	return out
}

func validateNode(l *Layout, path string, root *Layout, seen map[*Window]string, out *[]Violation) {
	add := func(format string, args ...interface{}) {
		*out = append(*out, Violation{Path: path, Problem: fmt.Sprintf(format, args...)})
	}

	switch l.Type {
	case LayoutCenter:
		if l.children[0] != nil || l.children[1] != nil {
			add("center node has children")
		}
		if len(l.windows[1]) > 0 {
			add("center node uses slot 1")
		}
		if len(l.windows[0]) == 0 && l != root {
			add("empty center node below the root")
		}
	default:
		if l.SizeRatio <= 0 || l.SizeRatio >= 1 {
			add("size ratio %g outside (0,1)", l.SizeRatio)
		}
		for i := range l.children {
			if l.sideEmpty(i) {
				add("split side %d is empty", i)
			}
		}
	}

	for i := range l.children {
		if l.children[i] != nil && len(l.windows[i]) > 0 {
			add("side %d holds both a child and windows", i)
		}
		for _, w := range l.windows[i] {
			if prev, dup := seen[w]; dup {
				add("window %q also docked at %s", w.Title, prev)
			}
			seen[w] = fmt.Sprintf("%s/%d", path, i)
			if w.layout != l || w.slot != i {
				add("window %q has a stale back-reference", w.Title)
			}
		}
		if t := l.currTab[i]; t != nil && (t.layout != l || t.slot != i) {
			add("active tab %q of side %d is not in the group", t.Title, i)
		}
		if len(l.windows[i]) > 0 && l.currTab[i] == nil {
			add("side %d has no active tab", i)
		}
		if c := l.children[i]; c != nil {
			if c.parent != l || c.idx != i {
				add("child %d has a stale parent link", i)
			}
			validateNode(c, fmt.Sprintf("%s/%d", path, i), root, seen, out)
		}
	}
}
