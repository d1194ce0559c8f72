package app

import (
	"testing"

	"spectra-viewer/pkg/colorutil"

	"fyne.io/fyne/v2/theme"
)

func TestSpectraThemeColors(t *testing.T) {
	th := &SpectraTheme{}
	if th.Color(theme.ColorNamePrimary, theme.VariantDark) != colorutil.Slate {
		t.Error("primary should be slate in every variant")
	}
	if th.Color(theme.ColorNameBackground, theme.VariantDark) != colorutil.Paper {
		t.Error("background should be paper in every variant")
	}
	if th.Size(theme.SizeNameInputRadius) != 3 {
		t.Errorf("input radius = %v, want 3", th.Size(theme.SizeNameInputRadius))
	}
}
