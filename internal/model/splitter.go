package model

import "github.com/mj1618/dockyard/internal/platform"

// Splitter is a draggable boundary between two adjacent regions.
//
// Vertical is set when the regions are stacked top/bottom; otherwise they
// sit side by side. Size holds the current extent of each region along the
// split axis.
type Splitter struct {
	Vertical bool
	Size     [2]float64
	MinSize  [2]float64

	active bool
	anchor float64
}

// Active reports whether the bar is currently being dragged.
func (s *Splitter) Active() bool {
	return s.active
}

func (s *Splitter) total() float64 {
	return s.Size[0] + s.Size[1]
}

// Ratio returns the fraction of the total extent taken by region 0.
func (s *Splitter) Ratio() float64 {
	total := s.total()
	if total <= 0 {
		return 0.5
	}
	return s.Size[0] / total
}

// Drag moves the boundary by delta, keeping both regions at or above their
// minimum sizes. It returns the distance actually moved.
func (s *Splitter) Drag(delta float64) float64 {
	total := s.total()
	lo, hi := s.MinSize[0], total-s.MinSize[1]
	if hi < lo {
		// Not enough room for both minimums; leave the boundary alone.
		return 0
	}
	n := s.Size[0] + delta
	if n < lo {
		n = lo
	}
	if n > hi {
		n = hi
	}
	moved := n - s.Size[0]
	s.Size[0] = n
	s.Size[1] = total - n
	return moved
}

// SetSizeRatio recomputes both sizes from a fractional boundary position.
func (s *Splitter) SetSizeRatio(total, ratio float64) {
	s.Size[0] = total * ratio
	s.Size[1] = total * (1 - ratio)
}

// SetSizeGreedily keeps region 0 at its current size and gives region 1
// whatever remains of total. Region 0 only shrinks when region 1 would fall
// below its minimum.
func (s *Splitter) SetSizeGreedily(total float64) {
	s0 := s.Size[0]
	if total-s0 < s.MinSize[1] {
		s0 = total - s.MinSize[1]
		if s0 < s.MinSize[0] {
			s0 = s.MinSize[0]
		}
	}
	if s0 > total {
		s0 = total
	}
	if s0 < 0 {
		s0 = 0
	}
	s.Size[0] = s0
	s.Size[1] = total - s0
}

func (s *Splitter) axis(p platform.Point) float64 {
	if s.Vertical {
		return p.Y
	}
	return p.X
}

// Regions splits r at the boundary.
func (s *Splitter) Regions(r platform.Rect) (platform.Rect, platform.Rect) {
	if s.Vertical {
		return platform.Rect{X: r.X, Y: r.Y, W: r.W, H: s.Size[0]},
			platform.Rect{X: r.X, Y: r.Y + s.Size[0], W: r.W, H: s.Size[1]}
	}
	return platform.Rect{X: r.X, Y: r.Y, W: s.Size[0], H: r.H},
		platform.Rect{X: r.X + s.Size[0], Y: r.Y, W: s.Size[1], H: r.H}
}

// Bar returns the grab area of the boundary inside r.
func (s *Splitter) Bar(r platform.Rect, thickness float64) platform.Rect {
	if s.Vertical {
		return platform.Rect{X: r.X, Y: r.Y + s.Size[0] - thickness/2, W: r.W, H: thickness}
	}
	return platform.Rect{X: r.X + s.Size[0] - thickness/2, Y: r.Y, W: thickness, H: r.H}
}

// DoSplit tracks the bar between the two regions of r for one frame and
// returns the regions after any drag was applied. in and ui may be nil.
func (s *Splitter) DoSplit(in platform.Input, ui platform.Drawer, r platform.Rect, thickness float64) (platform.Rect, platform.Rect) {
	bar := s.Bar(r, thickness)
	if in != nil {
		pos := s.axis(in.Pointer())
		switch {
		case !s.active && in.Pressed() && in.Hovering(bar):
			s.active = true
			s.anchor = pos
		case s.active && (in.Released() || !in.Down()):
			s.active = false
		case s.active:
			s.anchor += s.Drag(pos - s.anchor)
		}
	}
	if ui != nil {
		ui.SplitterBar(s.Bar(r, thickness), s.Vertical, s.active)
	}
	return s.Regions(r)
}
