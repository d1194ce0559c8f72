package chart

import (
	"image"

	"spectra-viewer/internal/view"
	"spectra-viewer/pkg/colorutil"
)

// Locate converts a pixel of a w x h chart back to data coordinates.
// ok is false outside the plot area.
func Locate(req view.RenderRequest, w, h int, px, py float64) (wavelength, reflectance float64, ok bool) {
	l, ok := newLayout(req, w, h)
	if !ok {
		return 0, 0, false
	}
	if px < float64(l.left) || px > float64(l.right) || py < float64(l.top) || py > float64(l.bottom) {
		return 0, 0, false
	}
	return l.x.value(px), l.y.value(py), true
}

// value is the inverse of pixel.
func (a axis) value(p float64) float64 {
	return a.lo + (p-a.from)/(a.to-a.from)*(a.hi-a.lo)
}

// RenderMessage draws a blank chart surface with a centered message.
func RenderMessage(msg string, w, h int) *image.RGBA {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	output := image.NewRGBA(image.Rect(0, 0, w, h))
	fillRect(output, 0, 0, w-1, h-1, backgroundColor)
	drawTextCentered(output, msg, w/2, h/2, colorutil.Slate)
	return output
}
