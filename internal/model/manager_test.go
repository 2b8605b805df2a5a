package model

import (
	"io"
	"log/slog"
	"math/rand"
	"reflect"
	"testing"
)

func newTestManager(t *testing.T, titles ...string) (*Manager, map[string]*Window) {
	t.Helper()
	m := NewManager(Options{
		Width:  1000,
		Height: 800,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	ws := make(map[string]*Window, len(titles))
	for _, title := range titles {
		ws[title] = m.Open(title, nil)
	}
	return m, ws
}

func assertValid(t *testing.T, m *Manager) {
	t.Helper()
	for _, v := range m.Validate() {
		t.Errorf("violation at %s: %s", v.Path, v.Problem)
	}
}

func groupTitles(l *Layout, i int) []string {
	return titles(l.Windows(i))
}

func TestNewManager_EmptyRoot(t *testing.T) {
	m, _ := newTestManager(t)
	r := m.Root()
	if r == nil {
		t.Fatal("root must never be nil")
	}
	if r.Type != LayoutCenter || !r.Empty() {
		t.Errorf("expected empty center root, got %s empty=%v", r.Type, r.Empty())
	}
	if r.Width != 1000 || r.Height != 800 {
		t.Errorf("expected root size 1000x800, got %gx%g", r.Width, r.Height)
	}
	assertValid(t, m)
}

func TestOpen_ReusesExistingWindow(t *testing.T) {
	m, ws := newTestManager(t, "A")
	ws["A"].Opened = false
	again := m.Open("A", nil)
	if again != ws["A"] {
		t.Fatal("expected Open to return the registered window")
	}
	if !again.Opened {
		t.Error("expected reopened window to be open")
	}
	if len(m.Windows()) != 1 {
		t.Errorf("expected 1 registered window, got %d", len(m.Windows()))
	}
}

func TestDockAt_SplitAndUndockScenario(t *testing.T) {
	m, ws := newTestManager(t, "A", "B")
	a, b := ws["A"], ws["B"]

	m.DockAt(a, nil, DirCenter)
	r := m.Root()
	if r.Type != LayoutCenter || !reflect.DeepEqual(groupTitles(r, 0), []string{"A"}) {
		t.Fatalf("expected center{[A]}, got %s %v", r.Type, groupTitles(r, 0))
	}

	m.DockAt(b, a, DirRight)
	r = m.Root()
	if r.Type != LayoutHorizontal {
		t.Fatalf("expected horizontal root, got %s", r.Type)
	}
	if got := groupTitles(r, 0); !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("slot 0: expected [A], got %v", got)
	}
	if got := groupTitles(r, 1); !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("slot 1: expected [B], got %v", got)
	}
	if r.SizeRatio != 0.5 {
		t.Errorf("expected ratio 0.5, got %g", r.SizeRatio)
	}
	if r.Splitter.Size != [2]float64{500, 500} {
		t.Errorf("expected splitter sizes [500 500], got %v", r.Splitter.Size)
	}
	assertValid(t, m)

	m.Undock(a)
	r = m.Root()
	if r.Type != LayoutCenter || !reflect.DeepEqual(groupTitles(r, 0), []string{"B"}) {
		t.Fatalf("expected center{[B]}, got %s %v", r.Type, groupTitles(r, 0))
	}
	if a.Docked() {
		t.Error("expected A to be floating")
	}
	assertValid(t, m)
}

func TestDockAt_ConvertsCenterInPlace(t *testing.T) {
	m, ws := newTestManager(t, "A", "B")
	m.DockAt(ws["A"], nil, DirCenter)
	root := m.Root()

	m.DockAt(ws["B"], ws["A"], DirLeft)
	if m.Root() != root {
		t.Fatal("expected the root node to be converted in place")
	}
	if root.Type != LayoutHorizontal {
		t.Fatalf("expected horizontal, got %s", root.Type)
	}
	if got := groupTitles(root, 0); !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("slot 0: expected [B], got %v", got)
	}
	if got := groupTitles(root, 1); !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("slot 1: expected [A], got %v", got)
	}
	if ws["A"].Slot() != 1 || ws["A"].Layout() != root {
		t.Errorf("expected A rebound to slot 1 of root")
	}
	assertValid(t, m)
}

func TestDockAt_NestedSplitTakesTargetSlot(t *testing.T) {
	m, ws := newTestManager(t, "A", "B", "C")
	m.DockAt(ws["A"], nil, DirCenter)
	m.DockAt(ws["B"], ws["A"], DirRight)

	nodes := 0
	m.Root().Walk(func(*Layout) bool { nodes++; return true })
	if nodes != 1 {
		t.Fatalf("expected 1 node before nesting, got %d", nodes)
	}

	m.DockAt(ws["C"], ws["B"], DirTop)
	r := m.Root()
	n := r.Child(1)
	if n == nil {
		t.Fatal("expected a child node in slot 1")
	}
	if n.Type != LayoutVertical {
		t.Errorf("expected vertical child, got %s", n.Type)
	}
	if got := groupTitles(n, 0); !reflect.DeepEqual(got, []string{"C"}) {
		t.Errorf("child slot 0: expected [C], got %v", got)
	}
	if got := groupTitles(n, 1); !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("child slot 1: expected [B], got %v", got)
	}
	if len(r.Windows(1)) != 0 {
		t.Errorf("expected root slot 1 to hold only the child, got %v", groupTitles(r, 1))
	}
	if n.Parent() != r || n.Index() != 1 {
		t.Error("expected child parent link to root slot 1")
	}
	if n.Width != 500 || n.Height != 800 {
		t.Errorf("expected child size 500x800, got %gx%g", n.Width, n.Height)
	}

	nodes = 0
	r.Walk(func(*Layout) bool { nodes++; return true })
	if nodes != 2 {
		t.Errorf("expected exactly one new node, got %d nodes", nodes)
	}
	assertValid(t, m)
}

func TestDockAt_CenterAddsTab(t *testing.T) {
	m, ws := newTestManager(t, "A", "B")
	m.DockAt(ws["A"], nil, DirCenter)
	m.DockAt(ws["B"], ws["A"], DirCenter)

	r := m.Root()
	if got := groupTitles(r, 0); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("expected tabs [A B], got %v", got)
	}
	if r.ActiveTab(0) != ws["B"] {
		t.Error("expected the docked window to become the active tab")
	}
	assertValid(t, m)
}

func TestDockAt_RootDirectionWrapsTree(t *testing.T) {
	m, ws := newTestManager(t, "A", "B", "C")
	m.DockAt(ws["A"], nil, DirCenter)
	m.DockAt(ws["B"], ws["A"], DirRight)
	m.DockAt(ws["C"], nil, DirBottom)

	r := m.Root()
	if r.Type != LayoutVertical {
		t.Fatalf("expected vertical root, got %s", r.Type)
	}
	c := r.Child(0)
	if c == nil || c.Type != LayoutHorizontal {
		t.Fatal("expected the old tree as the top child")
	}
	if ws["A"].Layout() != c || ws["B"].Layout() != c {
		t.Error("expected A and B to live in the wrapped child")
	}
	if got := groupTitles(r, 1); !reflect.DeepEqual(got, []string{"C"}) {
		t.Errorf("expected [C] at the bottom, got %v", got)
	}
	assertValid(t, m)
}

func TestDockAt_IgnoresInvalidRequests(t *testing.T) {
	m, ws := newTestManager(t, "A", "B", "C")
	m.DockAt(ws["A"], nil, DirCenter)
	before := m.Snapshot()

	ws["B"].EnableDock = false
	m.DockAt(ws["B"], ws["A"], DirLeft)
	m.DockAt(ws["A"], ws["A"], DirLeft)
	m.DockAt(ws["C"], ws["B"], DirLeft) // target floating
	m.DockAt(nil, ws["A"], DirLeft)

	if got := m.Snapshot(); !reflect.DeepEqual(got, before) {
		t.Errorf("expected tree unchanged, got %+v", got)
	}
	if ws["B"].Docked() || ws["C"].Docked() {
		t.Error("expected rejected windows to stay floating")
	}
}

func TestDockAt_MovesDockedWindow(t *testing.T) {
	m, ws := newTestManager(t, "A", "B", "C")
	m.DockAt(ws["A"], nil, DirCenter)
	m.DockAt(ws["B"], ws["A"], DirRight)
	m.DockAt(ws["C"], ws["B"], DirBottom)

	// Move C next to A; the right-hand split collapses.
	m.DockAt(ws["C"], ws["A"], DirCenter)
	r := m.Root()
	if r.Child(1) != nil {
		if got := groupTitles(r.Child(1), 0); !reflect.DeepEqual(got, []string{"B"}) {
			t.Errorf("expected right side [B], got %v", got)
		}
	} else if got := groupTitles(r, 1); !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("expected right side [B], got %v", got)
	}
	if got := groupTitles(r, 0); !reflect.DeepEqual(got, []string{"A", "C"}) {
		t.Errorf("expected left side [A C], got %v", got)
	}
	assertValid(t, m)
}

func TestUndock_ActiveTabMovesToNeighbour(t *testing.T) {
	m, ws := newTestManager(t, "A", "B", "C")
	m.DockAt(ws["A"], nil, DirCenter)
	m.DockAt(ws["B"], ws["A"], DirCenter)
	m.DockAt(ws["C"], ws["A"], DirCenter)
	m.Focus(ws["B"])

	m.Undock(ws["B"])
	if got := m.Root().ActiveTab(0); got != ws["C"] {
		t.Errorf("expected C to become active, got %v", got)
	}
	m.Undock(ws["C"])
	if got := m.Root().ActiveTab(0); got != ws["A"] {
		t.Errorf("expected A to become active, got %v", got)
	}
	assertValid(t, m)
}

func TestUndock_CollapsesNestedSplit(t *testing.T) {
	m, ws := newTestManager(t, "A", "B", "C")
	m.DockAt(ws["A"], nil, DirCenter)
	m.DockAt(ws["B"], ws["A"], DirRight)
	m.DockAt(ws["C"], ws["B"], DirTop)

	m.Undock(ws["C"])
	r := m.Root()
	if r.Type != LayoutHorizontal {
		t.Fatalf("expected horizontal root, got %s", r.Type)
	}
	right := r.Child(1)
	if right == nil {
		t.Fatal("expected right child to remain")
	}
	if !right.IsLeaf() || !reflect.DeepEqual(groupTitles(right, 0), []string{"B"}) {
		t.Errorf("expected center{[B]}, got %s %v", right.Type, groupTitles(right, 0))
	}

	m.Undock(ws["B"])
	r = m.Root()
	if r.Type != LayoutCenter || !reflect.DeepEqual(groupTitles(r, 0), []string{"A"}) {
		t.Errorf("expected center{[A]}, got %s %v", r.Type, groupTitles(r, 0))
	}
	assertValid(t, m)
}

func TestClose_RemovesFromRegistry(t *testing.T) {
	m, ws := newTestManager(t, "A", "B")
	m.DockAt(ws["A"], nil, DirCenter)
	m.DockAt(ws["B"], ws["A"], DirRight)

	m.Close(ws["A"])
	if m.Window("A") != nil {
		t.Error("expected A to leave the registry")
	}
	if ws["A"].Opened || ws["A"].Docked() {
		t.Error("expected A closed and undocked")
	}
	m.DockAt(ws["A"], ws["B"], DirLeft)
	if ws["A"].Docked() {
		t.Error("expected a closed window to be rejected")
	}
	assertValid(t, m)
}

func TestReset_FloatsEveryWindow(t *testing.T) {
	m, ws := newTestManager(t, "A", "B")
	m.DockAt(ws["A"], nil, DirCenter)
	m.DockAt(ws["B"], ws["A"], DirTop)

	m.Reset()
	if !m.Root().Empty() {
		t.Error("expected empty root")
	}
	if len(m.Floating()) != 2 {
		t.Errorf("expected 2 floating windows, got %d", len(m.Floating()))
	}
	assertValid(t, m)
}

func TestResize_Propagates(t *testing.T) {
	m, ws := newTestManager(t, "A", "B")
	m.DockAt(ws["A"], nil, DirCenter)
	m.DockAt(ws["B"], ws["A"], DirBottom)

	m.Resize(600, 400)
	r := m.Root()
	if r.Splitter.Size != [2]float64{200, 200} {
		t.Errorf("expected vertical sizes [200 200], got %v", r.Splitter.Size)
	}
	if !r.Splitter.Vertical {
		t.Error("expected a vertical splitter for a top/bottom split")
	}
}

func TestMutations_PreserveInvariants(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E", "F"}
	dirs := []Direction{DirCenter, DirLeft, DirRight, DirTop, DirBottom}

	for seed := int64(1); seed <= 20; seed++ {
		m, ws := newTestManager(t, names...)
		rng := rand.New(rand.NewSource(seed))
		for step := 0; step < 200; step++ {
			w := ws[names[rng.Intn(len(names))]]
			switch rng.Intn(5) {
			case 0:
				m.Undock(w)
			case 1:
				m.Focus(w)
			case 2:
				m.DockAt(w, nil, dirs[rng.Intn(len(dirs))])
			default:
				target := ws[names[rng.Intn(len(names))]]
				m.DockAt(w, target, dirs[rng.Intn(len(dirs))])
			}
			if vs := m.Validate(); len(vs) > 0 {
				t.Fatalf("seed %d step %d: %s: %s", seed, step, vs[0].Path, vs[0].Problem)
			}

			before := m.Snapshot()
			m.Cleanup()
			if after := m.Snapshot(); !reflect.DeepEqual(before, after) {
				t.Fatalf("seed %d step %d: cleanup is not idempotent", seed, step)
			}

			fresh, _ := newTestManager(t, names...)
			if skipped := fresh.Restore(before); len(skipped) > 0 {
				t.Fatalf("seed %d step %d: restore skipped %v", seed, step, skipped)
			}
			if got := fresh.Snapshot(); !reflect.DeepEqual(before, got) {
				t.Fatalf("seed %d step %d: restored tree differs from snapshot", seed, step)
			}
			if vs := fresh.Validate(); len(vs) > 0 {
				t.Fatalf("seed %d step %d: restored: %s: %s", seed, step, vs[0].Path, vs[0].Problem)
			}
		}
	}
}
