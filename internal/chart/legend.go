package chart

import (
	"image"

	"spectra-viewer/internal/view"
	"spectra-viewer/pkg/colorutil"
)

const (
	legendPad    = 6
	legendSwatch = 18
	legendInset  = 8
)

// legendRect returns the legend box in the top-right corner of the plot
// area. ok is false when there is nothing to list.
func legendRect(l layout, curves []view.Curve) (r image.Rectangle, ok bool) {
	if len(curves) == 0 {
		return image.Rectangle{}, false
	}
	textW := 0
	for _, c := range curves {
		textW = max(textW, textWidth(c.Label))
	}
	w := legendPad*3 + legendSwatch + textW
	h := legendPad*2 + len(curves)*lineHeight
	x2 := l.right - legendInset
	y1 := l.top + legendInset
	return image.Rect(x2-w, y1, x2, y1+h), true
}

// drawLegend lists each curve with a color swatch. An empty curve list
// draws nothing.
func drawLegend(output *image.RGBA, l layout, curves []view.Curve) {
	r, ok := legendRect(l, curves)
	if !ok {
		return
	}
	fillRect(output, r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, colorutil.White)
	strokeRect(output, r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, gridColor)

	for i, c := range curves {
		baseline := r.Min.Y + legendPad + (i+1)*lineHeight - 2
		mid := baseline - face.Ascent/2
		sx := r.Min.X + legendPad
		drawLine(output, sx, mid, sx+legendSwatch, mid, colorutil.PaletteColor(i), curveWidth)
		drawText(output, c.Label, sx+legendSwatch+legendPad, baseline, axisColor)
	}
}
