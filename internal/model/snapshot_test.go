package model

import (
	"reflect"
	"testing"
)

func buildSample(t *testing.T) (*Manager, map[string]*Window) {
	t.Helper()
	m, ws := newTestManager(t, "A", "B", "C", "D")
	m.DockAt(ws["A"], nil, DirCenter)
	m.DockAt(ws["B"], ws["A"], DirRight)
	m.DockAt(ws["C"], ws["B"], DirTop)
	m.DockAt(ws["D"], ws["A"], DirCenter)
	return m, ws
}

func TestSnapshot_Shape(t *testing.T) {
	m, _ := buildSample(t)
	n := m.Snapshot()

	want := &Node{
		Mode:      "horizontal",
		SizeRatio: 0.5,
		Slots: [2]Slot{
			{Windows: []string{"A", "D"}, Active: "D"},
			{Layout: &Node{
				Mode:      "vertical",
				SizeRatio: 0.5,
				Slots: [2]Slot{
					{Windows: []string{"C"}},
					{Windows: []string{"B"}},
				},
			}},
		},
	}
	if !reflect.DeepEqual(n, want) {
		t.Errorf("unexpected snapshot:\n got %+v\nwant %+v", n, want)
	}
}

func TestRestore_RoundTrip(t *testing.T) {
	m, _ := buildSample(t)
	n := m.Snapshot()

	m2, ws := newTestManager(t, "A", "B", "C", "D")
	if skipped := m2.Restore(n); len(skipped) != 0 {
		t.Errorf("expected nothing skipped, got %v", skipped)
	}
	if got := m2.Snapshot(); !reflect.DeepEqual(got, n) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, n)
	}
	if m2.Root().ActiveTab(0) != ws["D"] {
		t.Error("expected the active tab to be restored")
	}
	if c := m2.Root().Child(1); c == nil || c.Width != 500 || c.Height != 800 {
		t.Error("expected restored tree to be sized")
	}
	assertValid(t, m2)
}

func TestRestore_SkipsUnknownAndDuplicateTitles(t *testing.T) {
	m, ws := newTestManager(t, "A", "B", "C")
	ws["C"].EnableDock = false

	skipped := m.Restore(&Node{
		Mode:      "horizontal",
		SizeRatio: 0.3,
		Slots: [2]Slot{
			{Windows: []string{"A", "Ghost"}},
			{Windows: []string{"A", "B", "C"}},
		},
	})
	if want := []string{"Ghost", "A", "C"}; !reflect.DeepEqual(skipped, want) {
		t.Errorf("expected skipped %v, got %v", want, skipped)
	}
	r := m.Root()
	if r.Type != LayoutHorizontal || r.SizeRatio != 0.3 {
		t.Errorf("expected horizontal 0.3, got %s %g", r.Type, r.SizeRatio)
	}
	if ws["A"].Slot() != 0 || ws["B"].Slot() != 1 {
		t.Error("expected A left and B right")
	}
	if ws["C"].Docked() {
		t.Error("expected non-dockable C to stay floating")
	}
	assertValid(t, m)
}

func TestRestore_CollapsesEmptySides(t *testing.T) {
	m, ws := newTestManager(t, "A")
	skipped := m.Restore(&Node{
		Mode:      "vertical",
		SizeRatio: 0.5,
		Slots: [2]Slot{
			{Windows: []string{"Ghost"}},
			{Windows: []string{"A"}},
		},
	})
	if len(skipped) != 1 {
		t.Errorf("expected 1 skipped title, got %v", skipped)
	}
	r := m.Root()
	if r.Type != LayoutCenter || ws["A"].Layout() != r || ws["A"].Slot() != 0 {
		t.Errorf("expected center{[A]}, got %s", r.Type)
	}
	assertValid(t, m)
}

func TestRestore_CenterWithNestedLayoutFloatsItsWindows(t *testing.T) {
	m, ws := newTestManager(t, "A", "B")
	skipped := m.Restore(&Node{
		Mode: "center",
		Slots: [2]Slot{
			{Windows: []string{"A"}},
			{Layout: &Node{Mode: "center", Slots: [2]Slot{{Windows: []string{"B"}}}}},
		},
	})
	if !reflect.DeepEqual(skipped, []string{"B"}) {
		t.Errorf("expected [B] skipped, got %v", skipped)
	}
	if ws["B"].Docked() {
		t.Error("expected B floating")
	}
	if got := groupTitles(m.Root(), 0); !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("expected [A], got %v", got)
	}
	assertValid(t, m)
}

func TestRestore_ClampsRatio(t *testing.T) {
	for _, ratio := range []float64{0, 1, -2, 7} {
		m, _ := newTestManager(t, "A", "B")
		m.Restore(&Node{
			Mode:      "horizontal",
			SizeRatio: ratio,
			Slots:     [2]Slot{{Windows: []string{"A"}}, {Windows: []string{"B"}}},
		})
		if got := m.Root().SizeRatio; got != 0.5 {
			t.Errorf("ratio %g: expected 0.5, got %g", ratio, got)
		}
	}
}

func TestRestore_NilEmptiesTree(t *testing.T) {
	m, ws := buildSample(t)
	if skipped := m.Restore(nil); len(skipped) != 0 {
		t.Errorf("expected nothing skipped, got %v", skipped)
	}
	if !m.Root().Empty() {
		t.Error("expected empty root")
	}
	for _, w := range ws {
		if w.Docked() {
			t.Errorf("expected %s floating", w.Title)
		}
	}
}

func TestNodeTitles(t *testing.T) {
	m, _ := buildSample(t)
	if got, want := m.Snapshot().Titles(), []string{"A", "D", "C", "B"}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
