package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// truncate shortens s so that it fits in width pixels of basicfont glyphs,
// marking the cut with "..".
func truncate(s string, width int) string {
	n := width / glyphWidth
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 2 {
		return ""
	}
	return string(runes[:n-2]) + ".."
}

// drawLabel draws s left-aligned and vertically centered in r.
func drawLabel(img *image.RGBA, s string, r image.Rectangle, c color.Color) {
	if r.Dx() < minTextWidth+2*textPadding || r.Dy() < glyphHeight {
		return
	}
	s = truncate(s, r.Dx()-2*textPadding)
	y := r.Min.Y + (r.Dy()-glyphHeight)/2 + glyphAscent
	drawText(img, s, r.Min.X+textPadding, y, c)
}

// drawCentered draws s centered in r.
func drawCentered(img *image.RGBA, s string, r image.Rectangle, c color.Color) {
	if r.Dx() < minTextWidth || r.Dy() < glyphHeight {
		return
	}
	s = truncate(s, r.Dx())
	w := len([]rune(s)) * glyphWidth
	x := r.Min.X + (r.Dx()-w)/2
	y := r.Min.Y + (r.Dy()-glyphHeight)/2 + glyphAscent
	drawText(img, s, x, y, c)
}

// drawText draws s with its baseline at y.
func drawText(img *image.RGBA, s string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(s)
}

// drawRectangle draws the outline of r, clipped to the image.
func drawRectangle(img *image.RGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}
