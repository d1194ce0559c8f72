// Package chart rasterizes render requests into line charts.
package chart

import (
	"image"
	"image/color"
	"math"

	"spectra-viewer/internal/view"
	"spectra-viewer/pkg/colorutil"
)

// Plot area margins in pixels.
const (
	marginLeft   = 72
	marginRight  = 16
	marginTop    = 16
	marginBottom = 48

	majorTickLen = 6
	minorTickLen = 3
	curveWidth   = 2
)

var (
	backgroundColor = colorutil.White
	axisColor       = colorutil.Ink
	gridColor       = colorutil.Blend(colorutil.GridGrey, colorutil.White, 0.5)
	referenceColor  = colorutil.DarkSlateGrey
)

// axis maps data values onto one pixel dimension.
type axis struct {
	lo, hi   float64 // data interval, lo may exceed hi
	from, to float64 // pixel positions of lo and hi
}

func newAxis(lo, hi, from, to, pad float64) axis {
	if lo == hi {
		lo -= pad
		hi += pad
	}
	return axis{lo: lo, hi: hi, from: from, to: to}
}

// pixel maps v to a pixel coordinate. Values outside the interval map
// outside [from, to].
func (a axis) pixel(v float64) float64 {
	return a.from + (v-a.lo)/(a.hi-a.lo)*(a.to-a.from)
}

// contains reports whether v lies within the interval.
func (a axis) contains(v float64) bool {
	return v >= math.Min(a.lo, a.hi) && v <= math.Max(a.lo, a.hi)
}

// layout is the pixel geometry of one rendered chart.
type layout struct {
	left, top, right, bottom int
	x, y                     axis
}

func newLayout(req view.RenderRequest, w, h int) (layout, bool) {
	l := layout{
		left:   marginLeft,
		top:    marginTop,
		right:  w - marginRight - 1,
		bottom: h - marginBottom - 1,
	}
	if l.right-l.left < 2 || l.bottom-l.top < 2 {
		return l, false
	}
	l.x = newAxis(float64(req.XRange.Min), float64(req.XRange.Max), float64(l.left), float64(l.right), 1)
	l.y = newAxis(req.YRange.Min, req.YRange.Max, float64(l.bottom), float64(l.top), 0.1)
	return l, true
}

// Render draws req into a new w x h image. Sizes too small for a plot
// area yield a blank image.
func Render(req view.RenderRequest, w, h int) *image.RGBA {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	output := image.NewRGBA(image.Rect(0, 0, w, h))
	fillRect(output, 0, 0, w-1, h-1, backgroundColor)

	l, ok := newLayout(req, w, h)
	if !ok {
		return output
	}

	xMajor := multiples(l.x.lo, l.x.hi, float64(req.Ticks.XMajor))
	xMinor := multiples(l.x.lo, l.x.hi, float64(req.Ticks.XMinor))
	yMajor := multiples(l.y.lo, l.y.hi, req.Ticks.YMajor)
	yMinor := multiples(l.y.lo, l.y.hi, req.Ticks.YMinor)

	if req.Grid {
		drawGrid(output, l, xMajor, yMajor)
	}
	for i, c := range req.Curves {
		drawCurve(output, l, c, colorutil.PaletteColor(i))
	}
	if req.ReferenceLine != nil {
		drawReferenceLine(output, l, float64(*req.ReferenceLine))
	}

	strokeRect(output, l.left, l.top, l.right, l.bottom, axisColor)
	drawXTicks(output, l, xMajor, xMinor, decimals(float64(req.Ticks.XMajor)))
	drawYTicks(output, l, yMajor, yMinor, decimals(req.Ticks.YMajor))

	drawTextCentered(output, req.XLabel, (l.left+l.right)/2, h-8, axisColor)
	drawTextVertical(output, req.YLabel, 4, (l.top+l.bottom)/2, axisColor)

	if req.Legend {
		drawLegend(output, l, req.Curves)
	}
	return output
}

func drawGrid(output *image.RGBA, l layout, xs, ys []float64) {
	for _, v := range xs {
		px := int(math.Round(l.x.pixel(v)))
		drawLine(output, px, l.top, px, l.bottom, gridColor, 1)
	}
	for _, v := range ys {
		py := int(math.Round(l.y.pixel(v)))
		drawLine(output, l.left, py, l.right, py, gridColor, 1)
	}
}

// drawCurve draws a polyline clipped to the plot area. Non-finite points
// break the line.
func drawCurve(output *image.RGBA, l layout, c view.Curve, col color.RGBA) {
	n := min(len(c.X), len(c.Y))
	x0, y0 := float64(l.left), float64(l.top)
	x1, y1 := float64(l.right), float64(l.bottom)

	for i := 1; i < n; i++ {
		ax, ay, bx, by := c.X[i-1], c.Y[i-1], c.X[i], c.Y[i]
		if !finite(ax) || !finite(ay) || !finite(bx) || !finite(by) {
			continue
		}
		pax, pay := l.x.pixel(ax), l.y.pixel(ay)
		pbx, pby := l.x.pixel(bx), l.y.pixel(by)
		cax, cay, cbx, cby, ok := clipSegment(pax, pay, pbx, pby, x0, y0, x1, y1)
		if !ok {
			continue
		}
		drawLine(output,
			int(math.Round(cax)), int(math.Round(cay)),
			int(math.Round(cbx)), int(math.Round(cby)),
			col, curveWidth)
	}
}

// drawReferenceLine draws the vertical marker when it is inside the
// visible wavelength interval.
func drawReferenceLine(output *image.RGBA, l layout, wavelength float64) {
	if !l.x.contains(wavelength) {
		return
	}
	px := int(math.Round(l.x.pixel(wavelength)))
	drawLine(output, px, l.top, px, l.bottom, referenceColor, 1)
}

func drawXTicks(output *image.RGBA, l layout, major, minor []float64, digits int) {
	for _, v := range minor {
		px := int(math.Round(l.x.pixel(v)))
		drawLine(output, px, l.bottom, px, l.bottom+minorTickLen, axisColor, 1)
	}
	for _, v := range major {
		px := int(math.Round(l.x.pixel(v)))
		drawLine(output, px, l.bottom, px, l.bottom+majorTickLen, axisColor, 1)
		drawTextCentered(output, formatTick(v, digits), px, l.bottom+majorTickLen+lineHeight, axisColor)
	}
}

func drawYTicks(output *image.RGBA, l layout, major, minor []float64, digits int) {
	for _, v := range minor {
		py := int(math.Round(l.y.pixel(v)))
		drawLine(output, l.left-minorTickLen, py, l.left, py, axisColor, 1)
	}
	for _, v := range major {
		py := int(math.Round(l.y.pixel(v)))
		drawLine(output, l.left-majorTickLen, py, l.left, py, axisColor, 1)
		drawTextRight(output, formatTick(v, digits), l.left-majorTickLen-2, py+face.Ascent/2, axisColor)
	}
}
