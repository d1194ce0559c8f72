package chart

import (
	"image"
	"image/color"
	"math"
)

// drawLine draws a line between two points using Bresenham's algorithm.
func drawLine(output *image.RGBA, x1, y1, x2, y2 int, col color.RGBA, thickness int) {
	bounds := output.Bounds()

	dx := x2 - x1
	dy := y2 - y1
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		for t := -thickness / 2; t <= thickness/2; t++ {
			for s := -thickness / 2; s <= thickness/2; s++ {
				px, py := x1+s, y1+t
				if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
					output.SetRGBA(px, py, col)
				}
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// fillRect fills [x1,x2]x[y1,y2] inclusive, clipped to the image.
func fillRect(output *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	r := image.Rect(x1, y1, x2+1, y2+1).Intersect(output.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			output.SetRGBA(x, y, col)
		}
	}
}

// strokeRect draws a 1 pixel rectangle outline.
func strokeRect(output *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	drawLine(output, x1, y1, x2, y1, col, 1)
	drawLine(output, x1, y2, x2, y2, col, 1)
	drawLine(output, x1, y1, x1, y2, col, 1)
	drawLine(output, x2, y1, x2, y2, col, 1)
}

// clipSegment clips a segment to the rectangle [x0,x1]x[y0,y1] using the
// Liang-Barsky algorithm. ok is false when nothing remains.
func clipSegment(ax, ay, bx, by, x0, y0, x1, y1 float64) (cax, cay, cbx, cby float64, ok bool) {
	t0, t1 := 0.0, 1.0
	dx := bx - ax
	dy := by - ay

	edges := [4][2]float64{
		{-dx, ax - x0},
		{dx, x1 - ax},
		{-dy, ay - y0},
		{dy, y1 - ay},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return ax + t0*dx, ay + t0*dy, ax + t1*dx, ay + t1*dy, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
