package chart

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var face = basicfont.Face7x13

// lineHeight is the pixel height of one text line.
const lineHeight = 13

// textWidth returns the advance width of s in pixels.
func textWidth(s string) int {
	return font.MeasureString(face, s).Ceil()
}

// drawText draws s with its baseline starting at (x, y).
func drawText(output *image.RGBA, s string, x, y int, col color.RGBA) {
	d := &font.Drawer{
		Dst:  output,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// drawTextCentered draws s horizontally centered on cx.
func drawTextCentered(output *image.RGBA, s string, cx, y int, col color.RGBA) {
	drawText(output, s, cx-textWidth(s)/2, y, col)
}

// drawTextRight draws s so that it ends at x.
func drawTextRight(output *image.RGBA, s string, x, y int, col color.RGBA) {
	drawText(output, s, x-textWidth(s), y, col)
}

// drawTextVertical draws s rotated -90 degrees (reading bottom to top),
// centered vertically on cy with its top edge at x.
func drawTextVertical(output *image.RGBA, s string, x, cy int, col color.RGBA) {
	w := textWidth(s)
	if w == 0 {
		return
	}
	tmp := image.NewRGBA(image.Rect(0, 0, w, lineHeight))
	drawText(tmp, s, 0, face.Ascent, col)

	bounds := output.Bounds()
	top := cy - w/2
	for sy := 0; sy < lineHeight; sy++ {
		for sx := 0; sx < w; sx++ {
			c := tmp.RGBAAt(sx, sy)
			if c.A == 0 {
				continue
			}
			px, py := x+sy, top+(w-1-sx)
			if image.Pt(px, py).In(bounds) {
				output.SetRGBA(px, py, col)
			}
		}
	}
}
