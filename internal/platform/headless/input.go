package headless

import "github.com/mj1618/dockyard/internal/platform"

// Input is a pointer whose state is set explicitly before each frame.
type Input struct {
	pos      platform.Point
	down     bool
	pressed  bool
	released bool
}

// NewInput returns a pointer parked outside any region with the button up.
func NewInput() *Input {
	return &Input{pos: platform.Point{X: -1, Y: -1}}
}

// Set advances the pointer to the next frame: it is at p, with the button
// held when down. Press and release edges are derived from the previous frame.
func (in *Input) Set(p platform.Point, down bool) {
	in.pressed = down && !in.down
	in.released = !down && in.down
	in.down = down
	in.pos = p
}

func (in *Input) Pointer() platform.Point {
	return in.pos
}

func (in *Input) Pressed() bool {
	return in.pressed
}

func (in *Input) Released() bool {
	return in.released
}

func (in *Input) Down() bool {
	return in.down
}

func (in *Input) Hovering(r platform.Rect) bool {
	return r.Contains(in.pos)
}
