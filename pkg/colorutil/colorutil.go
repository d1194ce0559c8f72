// Package colorutil provides shared color utilities for the spectra viewer.
package colorutil

import (
	"image/color"
)

// Common colors used by the chart and the theme.
var (
	White         = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Ink           = color.RGBA{R: 0x27, G: 0x27, B: 0x27, A: 255} // text and axes
	Paper         = color.RGBA{R: 0xFA, G: 0xFA, B: 0xFA, A: 255} // window background
	Slate         = color.RGBA{R: 0x54, G: 0x6E, B: 0x7A, A: 255} // buttons
	SlateLight    = color.RGBA{R: 0xB0, G: 0xBE, B: 0xC5, A: 255} // hover
	GridGrey      = color.RGBA{R: 0xB0, G: 0xB0, B: 0xB0, A: 255}
	DarkSlateGrey = color.RGBA{R: 0x2F, G: 0x4F, B: 0x4F, A: 255} // reference line
)

// Palette is the curve color cycle (matplotlib "tab10").
var Palette = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 255},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 255},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 255},
	{R: 0xd6, G: 0x27, B: 0x28, A: 255},
	{R: 0x94, G: 0x67, B: 0xbd, A: 255},
	{R: 0x8c, G: 0x56, B: 0x4b, A: 255},
	{R: 0xe3, G: 0x77, B: 0xc2, A: 255},
	{R: 0x7f, G: 0x7f, B: 0x7f, A: 255},
	{R: 0xbc, G: 0xbd, B: 0x22, A: 255},
	{R: 0x17, G: 0xbe, B: 0xcf, A: 255},
}

// PaletteColor returns the i-th curve color, cycling through Palette.
func PaletteColor(i int) color.RGBA {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}

// Blend mixes over onto under with the given opacity (0.0 - 1.0).
func Blend(over, under color.RGBA, opacity float64) color.RGBA {
	if opacity <= 0 {
		return under
	}
	if opacity >= 1 {
		return over
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*opacity + float64(b)*(1-opacity) + 0.5)
	}
	return color.RGBA{
		R: mix(over.R, under.R),
		G: mix(over.G, under.G),
		B: mix(over.B, under.B),
		A: 255,
	}
}
