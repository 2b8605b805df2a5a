package model

// DragSession tracks an in-progress window drag and its best drop target.
// It only lives across frame transitions and is never persisted.
type DragSession struct {
	curr *Window // reported during the frame being shown
	prev *Window // dragged at the end of the previous frame

	target    *Layout
	targetIdx int
	dir       Direction
	hasTarget bool
}

// Dragging returns the window being dragged, or nil.
func (s *DragSession) Dragging() *Window {
	if s.curr != nil {
		return s.curr
	}
	return s.prev
}

// Target returns the recorded drop target.
func (s *DragSession) Target() (layout *Layout, idx int, dir Direction, ok bool) {
	return s.target, s.targetIdx, s.dir, s.hasTarget
}

func (s *DragSession) active() bool {
	return s.curr != nil || s.prev != nil
}

// beginFrame drops the previous frame's target so only groups hovered in
// the frame being shown can be dropped on.
func (s *DragSession) beginFrame() {
	s.curr = nil
	s.clearTarget()
}

func (s *DragSession) observe(w *Window) {
	s.curr = w
}

func (s *DragSession) setTarget(l *Layout, idx int, dir Direction) {
	s.target = l
	s.targetIdx = idx
	s.dir = dir
	s.hasTarget = true
}

func (s *DragSession) clearTarget() {
	s.target = nil
	s.targetIdx = 0
	s.dir = DirCenter
	s.hasTarget = false
}

func (s *DragSession) reset() {
	*s = DragSession{}
}
