package headless

import "github.com/mj1618/dockyard/internal/platform"

// TabBarCall is one recorded tab bar.
type TabBarCall struct {
	Rect   platform.Rect
	Titles []string
	Active int
}

// ContentCall is one recorded content region.
type ContentCall struct {
	Rect  platform.Rect
	Title string
}

// SplitterCall is one recorded splitter bar.
type SplitterCall struct {
	Rect     platform.Rect
	Vertical bool
	Active   bool
}

// Recorder is a Drawer that records every call made during a frame and
// answers with interactions scripted through its methods.
type Recorder struct {
	TabBars        []TabBarCall
	Contents       []ContentCall
	Splitters      []SplitterCall
	Highlights     []platform.Rect
	FloatingTitles []string

	// FloatingBounds is reported as the content region of floating windows.
	FloatingBounds platform.Rect

	held          map[string]bool
	closeFloating map[string]bool
	dragOut       string
	closeTab      string
	selectTab     string
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		held:           make(map[string]bool),
		closeFloating:  make(map[string]bool),
		FloatingBounds: platform.Rect{W: 320, H: 240},
	}
}

// Reset forgets the calls recorded so far. Scripted interactions are kept.
func (r *Recorder) Reset() {
	r.TabBars = nil
	r.Contents = nil
	r.Splitters = nil
	r.Highlights = nil
	r.FloatingTitles = nil
}

// Hold makes the floating window titled title report that it is being
// dragged by its title bar until Hold(title, false).
func (r *Recorder) Hold(title string, on bool) {
	if on {
		r.held[title] = true
		return
	}
	delete(r.held, title)
}

// DragTabOut makes the tab titled title report a drag out of its bar the
// next time it is drawn.
func (r *Recorder) DragTabOut(title string) {
	r.dragOut = title
}

// CloseTab clicks the close button of the tab titled title the next time it
// is drawn.
func (r *Recorder) CloseTab(title string) {
	r.closeTab = title
}

// SelectTab clicks the tab titled title the next time it is drawn.
func (r *Recorder) SelectTab(title string) {
	r.selectTab = title
}

// CloseFloating clicks the close button of the floating window titled title
// the next time it is drawn.
func (r *Recorder) CloseFloating(title string) {
	r.closeFloating[title] = true
}

func (r *Recorder) TabBar(rect platform.Rect, titles []string, active int) platform.TabBarResult {
	res := platform.TabBarResult{Active: active, Close: -1}
	for i, t := range titles {
		switch t {
		case r.selectTab:
			res.Active = i
			r.selectTab = ""
		case r.closeTab:
			res.Close = i
			r.closeTab = ""
		case r.dragOut:
			res.Active = i
			res.DragOut = true
			r.dragOut = ""
		}
	}
	r.TabBars = append(r.TabBars, TabBarCall{Rect: rect, Titles: append([]string(nil), titles...), Active: res.Active})
	return res
}

func (r *Recorder) Floating(title string) platform.FloatingResult {
	r.FloatingTitles = append(r.FloatingTitles, title)
	res := platform.FloatingResult{
		Dragging: r.held[title],
		Close:    r.closeFloating[title],
		Bounds:   r.FloatingBounds,
	}
	delete(r.closeFloating, title)
	return res
}

func (r *Recorder) Content(rect platform.Rect, title string) {
	r.Contents = append(r.Contents, ContentCall{Rect: rect, Title: title})
}

func (r *Recorder) SplitterBar(rect platform.Rect, vertical, active bool) {
	r.Splitters = append(r.Splitters, SplitterCall{Rect: rect, Vertical: vertical, Active: active})
}

func (r *Recorder) Highlight(rect platform.Rect) {
	r.Highlights = append(r.Highlights, rect)
}
