package panels

import (
	"spectra-viewer/internal/app"
	"spectra-viewer/internal/view"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// AxesPanel edits the axis ranges and grid visibility.
type AxesPanel struct {
	state *app.State

	xMin *SpinBox
	xMax *SpinBox
	yMin *SpinBox
	yMax *SpinBox
	grid *widget.Select

	syncing bool

	container fyne.CanvasObject
}

// NewAxesPanel creates the axis range panel.
func NewAxesPanel(state *app.State) *AxesPanel {
	ap := &AxesPanel{state: state}

	ap.xMin = NewSpinBox(view.MinWavelength, view.MaxWavelength, 10, 0)
	ap.xMax = NewSpinBox(view.MinWavelength, view.MaxWavelength, 10, 0)
	ap.yMin = NewSpinBox(0, 1, 0.01, 2)
	ap.yMax = NewSpinBox(0, 1, 0.01, 2)

	applyX := func(float64) {
		ap.state.SetXRange(ap.xMin.IntValue(), ap.xMax.IntValue())
	}
	applyY := func(float64) {
		ap.state.SetYRange(ap.yMin.Value(), ap.yMax.Value())
	}
	ap.xMin.OnChanged = applyX
	ap.xMax.OnChanged = applyX
	ap.yMin.OnChanged = applyY
	ap.yMax.OnChanged = applyY

	ap.grid = newOnOffSelect([]string{choiceOn, choiceOff}, func(on bool) {
		if ap.syncing {
			return
		}
		ap.state.SetGrid(on)
	})

	form := widget.NewForm(
		widget.NewFormItem("X min:", ap.xMin.Container()),
		widget.NewFormItem("X max:", ap.xMax.Container()),
		widget.NewFormItem("Y min:", ap.yMin.Container()),
		widget.NewFormItem("Y max:", ap.yMax.Container()),
		widget.NewFormItem("Grid:", ap.grid),
	)

	ap.container = widget.NewCard("Axes", "", container.NewVBox(form))

	ap.Sync(state.Snapshot())
	return ap
}

// Container returns the panel container.
func (ap *AxesPanel) Container() fyne.CanvasObject {
	return ap.container
}

// Sync updates the widgets from a state snapshot.
func (ap *AxesPanel) Sync(s app.Snapshot) {
	ap.syncing = true
	defer func() { ap.syncing = false }()

	ap.xMin.SetValue(float64(s.XRange.Min))
	ap.xMax.SetValue(float64(s.XRange.Max))
	ap.yMin.SetValue(s.YRange.Min)
	ap.yMax.SetValue(s.YRange.Max)
	if g := onOff(s.Grid); ap.grid.Selected != g {
		ap.grid.SetSelected(g)
	}
}
