package app

import (
	"image/color"

	"spectra-viewer/pkg/colorutil"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// SpectraTheme is a light slate theme for the viewer.
type SpectraTheme struct{}

var _ fyne.Theme = (*SpectraTheme)(nil)

func (t *SpectraTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameInputBackground, theme.ColorNameMenuBackground:
		return colorutil.Paper
	case theme.ColorNameForeground:
		return colorutil.Ink
	case theme.ColorNamePrimary, theme.ColorNameButton:
		return colorutil.Slate
	case theme.ColorNameHover:
		return colorutil.SlateLight
	default:
		// Always the light variant, the chart is drawn on white.
		return theme.DefaultTheme().Color(name, theme.VariantLight)
	}
}

func (t *SpectraTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *SpectraTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *SpectraTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameInputRadius, theme.SizeNameSelectionRadius:
		return 3
	default:
		return theme.DefaultTheme().Size(name)
	}
}
