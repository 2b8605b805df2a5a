// Package raster implements the platform Drawer by painting onto an
// in-memory RGBA image that can be written out as PNG.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/mj1618/dockyard/internal/platform"
)

// Theme holds the colors a Canvas paints with.
type Theme struct {
	Background     color.Color
	TabBar         color.Color
	Tab            color.Color
	ActiveTab      color.Color
	Text           color.Color
	DimText        color.Color
	Panel          color.Color
	Border         color.Color
	Splitter       color.Color
	SplitterActive color.Color
	Highlight      color.Color
}

// DefaultTheme returns a dark theme.
func DefaultTheme() Theme {
	return Theme{
		Background:     color.RGBA{R: 30, G: 30, B: 30, A: 255},
		TabBar:         color.RGBA{R: 45, G: 45, B: 48, A: 255},
		Tab:            color.RGBA{R: 60, G: 60, B: 64, A: 255},
		ActiveTab:      color.RGBA{R: 0, G: 122, B: 204, A: 255},
		Text:           color.RGBA{R: 240, G: 240, B: 240, A: 255},
		DimText:        color.RGBA{R: 120, G: 120, B: 120, A: 255},
		Panel:          color.RGBA{R: 37, G: 37, B: 38, A: 255},
		Border:         color.RGBA{R: 70, G: 70, B: 70, A: 255},
		Splitter:       color.RGBA{R: 20, G: 20, B: 20, A: 255},
		SplitterActive: color.RGBA{R: 0, G: 122, B: 204, A: 255},
		Highlight:      color.NRGBA{R: 66, G: 135, B: 245, A: 90},
	}
}

const (
	maxTabWidth  = 140
	tabGap       = 2
	cardWidth    = 180
	cardHeight   = 28
	cardMargin   = 10
	textPadding  = 6
	glyphWidth   = 7
	glyphHeight  = 13
	glyphAscent  = 10
	rowHeight    = 18
	minTextWidth = glyphWidth * 2
)

// Canvas is a Drawer that paints into an image. Floating windows are drawn
// as title cards stacked down the right edge.
type Canvas struct {
	img      *image.RGBA
	theme    Theme
	area     image.Rectangle
	floating int
}

// New returns a canvas of w x h pixels filled with the theme background.
func New(w, h int, theme Theme) *Canvas {
	c := &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h)), theme: theme}
	c.area = c.img.Bounds()
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(theme.Background), image.Point{}, draw.Src)
	return c
}

// Image returns the painted image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// EncodePNG writes the image to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	return nil
}

// TabBar paints one tab per title, the active one highlighted. A canvas
// never reports clicks, so the active tab is returned unchanged.
func (c *Canvas) TabBar(r platform.Rect, titles []string, active int) platform.TabBarResult {
	bar := toRect(r)
	fill(c.img, bar, c.theme.TabBar)
	if len(titles) > 0 {
		w := bar.Dx() / len(titles)
		if w > maxTabWidth {
			w = maxTabWidth
		}
		for i, title := range titles {
			tab := image.Rect(bar.Min.X+i*w, bar.Min.Y, bar.Min.X+(i+1)*w-tabGap, bar.Max.Y)
			bg := c.theme.Tab
			if i == active {
				bg = c.theme.ActiveTab
			}
			fill(c.img, tab, bg)
			drawLabel(c.img, title, tab, c.theme.Text)
		}
	}
	return platform.TabBarResult{Active: active, Close: -1}
}

// SetFloatingArea moves the column floating window cards are stacked in.
// By default it is the whole canvas.
func (c *Canvas) SetFloatingArea(r platform.Rect) {
	c.area = toRect(r).Intersect(c.img.Bounds())
	c.floating = 0
}

// Floating paints a title card for a floating window and reports the card
// as the window's bounds.
func (c *Canvas) Floating(title string) platform.FloatingResult {
	b := c.area
	w := cardWidth
	if b.Dx()-2*cardMargin < w {
		w = b.Dx() - 2*cardMargin
	}
	top := b.Min.Y + cardMargin + c.floating*(cardHeight+cardMargin/2)
	card := image.Rect(b.Max.X-w-cardMargin, top, b.Max.X-cardMargin, top+cardHeight)
	c.floating++
	fill(c.img, card, c.theme.Tab)
	drawRectangle(c.img, card, c.theme.ActiveTab)
	drawLabel(c.img, title, card, c.theme.Text)
	return platform.FloatingResult{Bounds: fromRect(card)}
}

// Content paints the panel background with the window title centered.
func (c *Canvas) Content(r platform.Rect, title string) {
	rect := toRect(r)
	fill(c.img, rect, c.theme.Panel)
	drawRectangle(c.img, rect, c.theme.Border)
	drawCentered(c.img, title, rect, c.theme.DimText)
}

func (c *Canvas) SplitterBar(r platform.Rect, vertical, active bool) {
	col := c.theme.Splitter
	if active {
		col = c.theme.SplitterActive
	}
	fill(c.img, toRect(r), col)
}

// Highlight blends the drop preview over what is already painted.
func (c *Canvas) Highlight(r platform.Rect) {
	rect := toRect(r).Intersect(c.img.Bounds())
	draw.Draw(c.img, rect, image.NewUniform(c.theme.Highlight), image.Point{}, draw.Over)
	drawRectangle(c.img, rect, c.theme.ActiveTab)
}

// List paints a titled list of items into r, one per row, stopping when r
// is full.
func (c *Canvas) List(r platform.Rect, header string, items []string) {
	rect := toRect(r)
	fill(c.img, rect, c.theme.TabBar)
	drawRectangle(c.img, rect, c.theme.Border)
	row := image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+rowHeight)
	drawLabel(c.img, header, row, c.theme.Text)
	for _, item := range items {
		row = row.Add(image.Pt(0, rowHeight))
		if row.Max.Y > rect.Max.Y {
			break
		}
		drawLabel(c.img, item, row, c.theme.DimText)
	}
}

func toRect(r platform.Rect) image.Rectangle {
	v := r.Ints()
	return image.Rect(v[0], v[1], v[0]+v[2], v[1]+v[3])
}

func fromRect(r image.Rectangle) platform.Rect {
	return platform.Rect{X: float64(r.Min.X), Y: float64(r.Min.Y), W: float64(r.Dx()), H: float64(r.Dy())}
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}
