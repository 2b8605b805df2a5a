package model

import "fmt"

// FlatNode is a layout node with a path breadcrumb instead of children.
type FlatNode struct {
	Path      string   `yaml:"p"                    json:"p"`
	Mode      string   `yaml:"mode"                 json:"mode"`
	SizeRatio float64  `yaml:"size_radio,omitempty" json:"size_radio,omitempty"`
	Size      [2]int   `yaml:"size"                 json:"size"`
	Slot0     []string `yaml:"slot0,omitempty"      json:"slot0,omitempty"`
	Slot1     []string `yaml:"slot1,omitempty"      json:"slot1,omitempty"`
	Active    []string `yaml:"active,omitempty"     json:"active,omitempty"`
}

// FlattenLayout converts the tree into a flat pre-order list. Each node's
// path is "root" followed by the side taken at every level, e.g. "root/1/0".
func FlattenLayout(root *Layout) []FlatNode {
	var result []FlatNode
	flattenRecursive(root, "root", &result)
	return result
}

func flattenRecursive(l *Layout, path string, result *[]FlatNode) {
	flat := FlatNode{
		Path: path,
		Mode: l.Type.String(),
		Size: [2]int{int(l.Width + 0.5), int(l.Height + 0.5)},
	}
	if l.Type != LayoutCenter {
		flat.SizeRatio = l.SizeRatio
	}
	flat.Slot0 = titles(l.windows[0])
	flat.Slot1 = titles(l.windows[1])
	for _, t := range l.currTab {
		if t != nil {
			flat.Active = append(flat.Active, t.Title)
		}
	}
	*result = append(*result, flat)

	for i, c := range l.children {
		if c != nil {
			flattenRecursive(c, fmt.Sprintf("%s/%d", path, i), result)
		}
	}
}

func titles(ws []*Window) []string {
	if len(ws) == 0 {
		return nil
	}
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.Title
	}
	return out
}
