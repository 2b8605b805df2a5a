package model

import (
	"log/slog"

	"github.com/mj1618/dockyard/internal/platform"
)

// Options configures a Manager. Zero fields take the DefaultOptions value.
type Options struct {
	Width             float64
	Height            float64
	TabBarHeight      float64
	DropTargetSize    float64
	SplitterThickness float64
	MinSize           float64
	Logger            *slog.Logger
}

// DefaultOptions returns the options used for unset fields.
func DefaultOptions() Options {
	return Options{
		Width:             1280,
		Height:            720,
		TabBarHeight:      24,
		DropTargetSize:    32,
		SplitterThickness: 4,
		MinSize:           20,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.TabBarHeight <= 0 {
		o.TabBarHeight = d.TabBarHeight
	}
	if o.DropTargetSize <= 0 {
		o.DropTargetSize = d.DropTargetSize
	}
	if o.SplitterThickness <= 0 {
		o.SplitterThickness = d.SplitterThickness
	}
	if o.MinSize <= 0 {
		o.MinSize = d.MinSize
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

type pendingIntent struct {
	w      *Window
	intent Intent
}

// Manager owns the window registry, the root of the docking tree and the
// drag session. It is driven from a single goroutine, one Begin/Show/End
// cycle per frame.
type Manager struct {
	opts    Options
	log     *slog.Logger
	root    *Layout
	windows []*Window
	session DragSession

	// frame-local
	input   platform.Input
	drawer  platform.Drawer
	intents []pendingIntent
}

// NewManager returns a Manager with an empty Center root sized to the
// configured canvas.
func NewManager(opts Options) *Manager {
	opts = opts.withDefaults()
	m := &Manager{
		opts:   opts,
		log:    opts.Logger,
		input:  idleInput{},
		drawer: nopDrawer{},
	}
	m.root = m.newLayout(LayoutCenter)
	m.root.SetSize(opts.Width, opts.Height)
	return m
}

func (m *Manager) newLayout(t LayoutType) *Layout {
	l := &Layout{SizeRatio: 0.5}
	l.setType(t)
	l.Splitter.MinSize = [2]float64{m.opts.MinSize, m.opts.MinSize}
	return l
}

// Options returns the effective options.
func (m *Manager) Options() Options {
	return m.opts
}

// Root returns the root of the docking tree. It is never nil.
func (m *Manager) Root() *Layout {
	return m.root
}

// Session returns the current drag session.
func (m *Manager) Session() *DragSession {
	return &m.session
}

// Open registers a window titled title, or reopens the existing one.
// New windows start floating with docking enabled.
func (m *Manager) Open(title string, panel Panel) *Window {
	if w := m.Window(title); w != nil {
		w.Opened = true
		if panel != nil {
			w.Panel = panel
		}
		return w
	}
	w := &Window{Title: title, Opened: true, EnableDock: true, Panel: panel}
	m.windows = append(m.windows, w)
	m.log.Debug("window opened", "window", title)
	return w
}

// Window looks a registered window up by title.
func (m *Manager) Window(title string) *Window {
	for _, w := range m.windows {
		if w.Title == title {
			return w
		}
	}
	return nil
}

// Windows returns the registered windows in the order they were opened.
func (m *Manager) Windows() []*Window {
	out := make([]*Window, len(m.windows))
	copy(out, m.windows)
	return out
}

// Floating returns the open windows that are not docked.
func (m *Manager) Floating() []*Window {
	var out []*Window
	for _, w := range m.windows {
		if w.Opened && w.layout == nil {
			out = append(out, w)
		}
	}
	return out
}

// DockAt docks w relative to target. A nil target docks against the root.
//
// Requests that cannot be honoured are ignored: w closed or not dockable,
// w equal to target, or target not docked.
func (m *Manager) DockAt(w, target *Window, dir Direction) {
	if w == nil || !w.Opened || !w.EnableDock || w == target {
		return
	}
	if target != nil && (target.layout == nil || !target.EnableDock) {
		return
	}
	if w.layout != nil {
		w.layout.remove(w)
		m.Cleanup()
	}

	if target == nil {
		m.dockRoot(w, dir)
	} else {
		m.dockInto(target.layout, target.slot, w, dir)
	}
	m.root.resize()

	targetTitle := ""
	if target != nil {
		targetTitle = target.Title
	}
	m.log.Debug("window docked", "window", w.Title, "target", targetTitle, "dir", dir.String())
}

// dockInto places w on side s of l.
func (m *Manager) dockInto(l *Layout, s int, w *Window, dir Direction) {
	if dir == DirCenter {
		l.attach(s, w)
		l.currTab[s] = w
		return
	}
	ds := dir.slot()

	if l.Type == LayoutCenter {
		old, tab := l.windows[0], l.currTab[0]
		l.windows[0], l.currTab[0] = nil, nil
		l.setType(dir.layoutType())
		l.SizeRatio = 0.5
		l.windows[1-ds], l.currTab[1-ds] = old, tab
		l.rebind(1 - ds)
		l.attach(ds, w)
		return
	}

	n := m.newLayout(dir.layoutType())
	n.windows[1-ds], n.currTab[1-ds] = l.windows[s], l.currTab[s]
	n.rebind(1 - ds)
	l.windows[s], l.currTab[s] = nil, nil
	n.attach(ds, w)
	l.setChild(s, n)
}

// dockRoot docks w against the whole tree.
func (m *Manager) dockRoot(w *Window, dir Direction) {
	r := m.root
	switch {
	case r.Empty():
		r.clear()
		r.attach(0, w)
	case dir == DirCenter:
		l, s := r.firstGroup()
		m.dockInto(l, s, w, DirCenter)
	case r.Type == LayoutCenter:
		m.dockInto(r, 0, w, dir)
	default:
		c := m.newLayout(r.Type)
		c.absorb(r)
		ds := dir.slot()
		r.clear()
		r.setType(dir.layoutType())
		r.setChild(1-ds, c)
		r.attach(ds, w)
	}
}

// Undock makes w floating and repairs the tree.
func (m *Manager) Undock(w *Window) {
	if w == nil || w.layout == nil {
		return
	}
	w.layout.remove(w)
	m.Cleanup()
	m.root.resize()
	m.log.Debug("window undocked", "window", w.Title)
}

// Close undocks w, marks it closed and drops it from the registry.
func (m *Manager) Close(w *Window) {
	if w == nil {
		return
	}
	m.Undock(w)
	w.Opened = false
	for i, x := range m.windows {
		if x == w {
			m.windows = append(m.windows[:i:i], m.windows[i+1:]...)
			break
		}
	}
	if m.session.curr == w || m.session.prev == w {
		m.session.reset()
	}
	m.log.Debug("window closed", "window", w.Title)
}

// Focus brings w to the front of its tab group.
func (m *Manager) Focus(w *Window) {
	if w == nil || w.layout == nil {
		return
	}
	w.layout.currTab[w.slot] = w
}

// Cleanup collapses degenerate nodes until the tree no longer changes.
func (m *Manager) Cleanup() {
	passes := 0
	for m.root.cleanup() {
		passes++
	}
	if passes > 0 {
		m.log.Debug("layout cleaned", "passes", passes)
	}
}

// Resize sets the canvas size and propagates it through the tree.
func (m *Manager) Resize(width, height float64) {
	m.opts.Width, m.opts.Height = width, height
	m.root.SetSize(width, height)
}

// Reset detaches every docked window and replaces the tree with an empty
// root. Registered windows stay open and become floating.
func (m *Manager) Reset() {
	for _, w := range m.windows {
		w.layout = nil
		w.slot = 0
	}
	m.root = m.newLayout(LayoutCenter)
	m.root.SetSize(m.opts.Width, m.opts.Height)
	m.session.reset()
}

// Begin starts a frame. in may be nil when no input is available.
func (m *Manager) Begin(in platform.Input) {
	if in == nil {
		in = idleInput{}
	}
	m.input = in
	m.intents = m.intents[:0]
	m.session.beginFrame()
}

// Show draws floating windows first, then the docking tree. ui may be nil.
func (m *Manager) Show(ui platform.Drawer) {
	if ui == nil {
		ui = nopDrawer{}
	}
	m.drawer = ui

	for _, w := range m.windows {
		if !w.Opened || w.layout != nil {
			continue
		}
		res := ui.Floating(w.Title)
		if res.Dragging && w.EnableDock {
			m.session.observe(w)
		}
		if res.Close {
			m.post(w, IntentClose)
		}
		if in := w.show(res.Bounds); in != IntentNone {
			m.post(w, in)
		}
	}

	r := m.root
	r.show(m, platform.Rect{W: r.Width, H: r.Height})
}

// End resolves a finished drag, commits the frame's intents and repairs
// the tree.
func (m *Manager) End() {
	s := &m.session
	if s.curr != s.prev {
		if s.prev != nil && s.hasTarget && m.root.Contains(s.target) {
			dragged := s.prev
			target := s.target.currTab[s.targetIdx]
			dir := s.dir
			if target != nil || s.target == m.root {
				m.DockAt(dragged, target, dir)
			}
		}
		s.clearTarget()
	}
	s.prev = s.curr

	m.Cleanup()

	intents := m.intents
	m.intents = nil
	for _, p := range intents {
		switch p.intent {
		case IntentUndock:
			m.Undock(p.w)
		case IntentClose:
			m.Close(p.w)
		}
	}
	m.root.SetSize(m.opts.Width, m.opts.Height)
}

// Frame runs one Begin/Show/End cycle.
func (m *Manager) Frame(in platform.Input, ui platform.Drawer) {
	m.Begin(in)
	m.Show(ui)
	m.End()
}

func (m *Manager) post(w *Window, in Intent) {
	m.intents = append(m.intents, pendingIntent{w: w, intent: in})
}

// showGroup draws the tab group on side slot of l and, while a drag is in
// progress, hit-tests its drop targets.
func (m *Manager) showGroup(l *Layout, slot int, r platform.Rect) {
	ws := l.windows[slot]
	if len(ws) > 0 {
		titles := make([]string, len(ws))
		active := 0
		for i, w := range ws {
			titles[i] = w.Title
			if w == l.currTab[slot] {
				active = i
			}
		}
		barH := m.opts.TabBarHeight
		if barH > r.H {
			barH = r.H
		}
		bar := platform.Rect{X: r.X, Y: r.Y, W: r.W, H: barH}
		res := m.drawer.TabBar(bar, titles, active)
		if res.Active >= 0 && res.Active < len(ws) {
			l.currTab[slot] = ws[res.Active]
		}
		cur := l.currTab[slot]
		if cur == nil {
			cur = ws[0]
			l.currTab[slot] = cur
		}
		if res.Close >= 0 && res.Close < len(ws) {
			m.post(ws[res.Close], IntentClose)
		}
		if res.DragOut && cur.EnableDock {
			m.post(cur, IntentUndock)
			m.session.observe(cur)
		}

		content := platform.Rect{X: r.X, Y: r.Y + barH, W: r.W, H: r.H - barH}
		m.drawer.Content(content, cur.Title)
		if in := cur.show(content); in != IntentNone {
			m.post(cur, in)
		}
	}

	if m.session.active() && (len(ws) > 0 || l == m.root) {
		m.hitTest(l, slot, r)
	}
}

// hitTest records the first drop target of the group under the pointer.
// Groups shown later overwrite earlier ones.
func (m *Manager) hitTest(l *Layout, slot int, r platform.Rect) {
	for _, t := range DropTargets(r, m.opts.DropTargetSize) {
		if !m.input.Hovering(t.Hit) {
			continue
		}
		m.session.setTarget(l, slot, t.Dir)
		m.drawer.Highlight(t.Preview)
		return
	}
}
