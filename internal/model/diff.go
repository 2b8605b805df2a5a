package model

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// ChangeType represents the kind of layout change detected.
type ChangeType string

const (
	ChangeAdded   ChangeType = "added"
	ChangeRemoved ChangeType = "removed"
	ChangeChanged ChangeType = "changed"
)

// LayoutChange represents a single change between two flattened trees.
type LayoutChange struct {
	Type    ChangeType           `yaml:"type"              json:"type"`
	TS      int64                `yaml:"ts"                json:"ts"`
	Path    string               `yaml:"p"                 json:"p"`
	Node    *FlatNode            `yaml:"node,omitempty"    json:"node,omitempty"`    // For added: the full node
	Mode    string               `yaml:"mode,omitempty"    json:"mode,omitempty"`    // For removed: its mode
	Changes map[string][2]string `yaml:"changes,omitempty" json:"changes,omitempty"` // For changed: field diffs
}

// ratioEpsilon is the smallest size ratio change reported.
const ratioEpsilon = 1e-3

// DiffLayouts compares two flattened trees and returns the changes.
// Nodes are matched by path.
func DiffLayouts(prev, curr []FlatNode) []LayoutChange {
	prevMap := make(map[string]FlatNode, len(prev))
	for _, n := range prev {
		prevMap[n.Path] = n
	}
	currMap := make(map[string]FlatNode, len(curr))
	for _, n := range curr {
		currMap[n.Path] = n
	}

	var changes []LayoutChange
	now := time.Now().Unix()

	for _, n := range curr {
		prevNode, existed := prevMap[n.Path]
		if !existed {
			nodeCopy := n
			changes = append(changes, LayoutChange{
				Type: ChangeAdded,
				TS:   now,
				Path: n.Path,
				Node: &nodeCopy,
			})
			continue
		}
		if diffs := diffNode(prevNode, n); len(diffs) > 0 {
			changes = append(changes, LayoutChange{
				Type:    ChangeChanged,
				TS:      now,
				Path:    n.Path,
				Changes: diffs,
			})
		}
	}

	for _, n := range prev {
		if _, exists := currMap[n.Path]; !exists {
			changes = append(changes, LayoutChange{
				Type: ChangeRemoved,
				TS:   now,
				Path: n.Path,
				Mode: n.Mode,
			})
		}
	}

	return changes
}

func diffNode(prev, curr FlatNode) map[string][2]string {
	diffs := make(map[string][2]string)

	if prev.Mode != curr.Mode {
		diffs["mode"] = [2]string{prev.Mode, curr.Mode}
	}
	if math.Abs(prev.SizeRatio-curr.SizeRatio) > ratioEpsilon {
		diffs["size_radio"] = [2]string{
			fmt.Sprintf("%.3f", prev.SizeRatio),
			fmt.Sprintf("%.3f", curr.SizeRatio),
		}
	}
	if prev.Size != curr.Size {
		diffs["size"] = [2]string{
			fmt.Sprintf("%v", prev.Size),
			fmt.Sprintf("%v", curr.Size),
		}
	}
	if a, b := strings.Join(prev.Slot0, ","), strings.Join(curr.Slot0, ","); a != b {
		diffs["slot0"] = [2]string{a, b}
	}
	if a, b := strings.Join(prev.Slot1, ","), strings.Join(curr.Slot1, ","); a != b {
		diffs["slot1"] = [2]string{a, b}
	}
	if a, b := strings.Join(prev.Active, ","), strings.Join(curr.Active, ","); a != b {
		diffs["active"] = [2]string{a, b}
	}

	if len(diffs) == 0 {
		return nil
	}
	return diffs
}
