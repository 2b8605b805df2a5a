// Package layoutfile reads and writes docking trees. The canonical form is
// XML; the same document shape can be written as YAML.
//
// Save, Load, ReadFile and WriteFile bind a file to a Manager whose windows
// are already open, as an embedding host registers them up front. Callers
// that open windows from the titles a file names, like the workspace, read
// a Node with ReadNode and pass it to Manager.Restore.
package layoutfile

import (
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/mj1618/dockyard/internal/model"
)

// ErrUnknownMode is returned when a node carries a mode other than
// horizontal, vertical or center.
var ErrUnknownMode = errors.New("unknown layout mode")

const (
	slotLayout  = "layout"
	slotWindows = "windows"
)

// document is one node of a layout file.
//
//	<layout mode="horizontal" size_radio="0.5">
//	  <slot type="windows" active="B"><window name="A"/><window name="B"/></slot>
//	  <slot type="layout"><layout mode="center" size_radio="0.5">...</layout></slot>
//	</layout>
type document struct {
	XMLName   xml.Name  `xml:"layout"          yaml:"-"`
	Mode      string    `xml:"mode,attr"       yaml:"mode"`
	SizeRadio float64   `xml:"size_radio,attr" yaml:"size_radio"`
	Slots     []slotDoc `xml:"slot"            yaml:"slots"`
}

type slotDoc struct {
	Type    string      `xml:"type,attr"             yaml:"type"`
	Active  string      `xml:"active,attr,omitempty" yaml:"active,omitempty"`
	Layout  *document   `xml:"layout"                yaml:"layout,omitempty"`
	Windows []windowRef `xml:"window"                yaml:"windows,omitempty"`
}

type windowRef struct {
	Name string `xml:"name,attr" yaml:"name"`
}

func fromNode(n *model.Node) *document {
	d := &document{Mode: n.Mode, SizeRadio: n.SizeRatio}
	for _, s := range n.Slots {
		sd := slotDoc{Type: slotWindows, Active: s.Active}
		if s.Layout != nil {
			sd.Type = slotLayout
			sd.Layout = fromNode(s.Layout)
			sd.Active = ""
		}
		for _, title := range s.Windows {
			sd.Windows = append(sd.Windows, windowRef{Name: title})
		}
		d.Slots = append(d.Slots, sd)
	}
	return d
}

// toNode checks the document's structure and converts it. Window titles are
// not checked here; unknown titles are skipped when the tree is restored.
func (d *document) toNode(path string) (*model.Node, error) {
	if _, err := model.ParseLayoutType(d.Mode); err != nil {
		return nil, fmt.Errorf("%s: %w: %q", path, ErrUnknownMode, d.Mode)
	}
	if len(d.Slots) != 2 {
		return nil, fmt.Errorf("%s: expected 2 slots, got %d", path, len(d.Slots))
	}
	n := &model.Node{Mode: d.Mode, SizeRatio: d.SizeRadio}
	for i, sd := range d.Slots {
		switch sd.Type {
		case slotLayout:
			if sd.Layout == nil {
				return nil, fmt.Errorf("%s/%d: layout slot without a layout", path, i)
			}
			c, err := sd.Layout.toNode(fmt.Sprintf("%s/%d", path, i))
			if err != nil {
				return nil, err
			}
			n.Slots[i].Layout = c
		case slotWindows:
			for _, w := range sd.Windows {
				n.Slots[i].Windows = append(n.Slots[i].Windows, w.Name)
			}
			n.Slots[i].Active = sd.Active
		default:
			return nil, fmt.Errorf("%s/%d: unknown slot type %q", path, i, sd.Type)
		}
	}
	return n, nil
}
