package panels

import (
	"spectra-viewer/internal/app"
	"spectra-viewer/internal/view"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Spin box limits for the x tick spacings.
const (
	minXMajorTick = 50
	maxXMajorTick = 400
	minXMinorTick = 1
	maxXMinorTick = 200
)

// TickToolbar sits above the chart and edits the x tick spacing and the
// vertical reference line.
type TickToolbar struct {
	state *app.State

	xMajor    *SpinBox
	xMinor    *SpinBox
	reference *widget.Select
	refSpin   *SpinBox

	syncing bool

	container *fyne.Container
}

// NewTickToolbar creates the tick toolbar.
func NewTickToolbar(state *app.State) *TickToolbar {
	tb := &TickToolbar{state: state}

	tb.xMajor = NewSpinBox(minXMajorTick, maxXMajorTick, 1, 0)
	tb.xMinor = NewSpinBox(minXMinorTick, maxXMinorTick, 1, 0)
	applyTicks := func(float64) {
		t := tb.state.Snapshot().Ticks
		t.XMajor = tb.xMajor.IntValue()
		t.XMinor = tb.xMinor.IntValue()
		tb.state.SetTickSpacing(t)
	}
	tb.xMajor.OnChanged = applyTicks
	tb.xMinor.OnChanged = applyTicks

	tb.refSpin = NewSpinBox(view.MinWavelength, view.MaxWavelength, 1, 0)
	tb.refSpin.SetValue(view.DefaultReferenceWavelength)
	tb.refSpin.OnChanged = func(float64) {
		tb.state.SetReferenceLine(true, tb.refSpin.IntValue())
	}
	tb.refSpin.Hide()

	tb.reference = newOnOffSelect([]string{choiceOff, choiceOn}, func(on bool) {
		if tb.syncing {
			return
		}
		tb.state.SetReferenceLine(on, tb.refSpin.IntValue())
	})

	tb.container = container.NewHBox(
		widget.NewLabel("Spectra Viewer"),
		widget.NewSeparator(),
		widget.NewLabel("X Ticks Major Multiple"),
		tb.xMajor.Container(),
		widget.NewLabel("X Ticks Minor Multiple"),
		tb.xMinor.Container(),
		widget.NewLabel("Vertical Reference Line"),
		tb.reference,
		tb.refSpin.Container(),
	)

	tb.Sync(state.Snapshot())
	return tb
}

// Container returns the toolbar container.
func (tb *TickToolbar) Container() fyne.CanvasObject {
	return tb.container
}

// Sync updates the widgets from a state snapshot.
func (tb *TickToolbar) Sync(s app.Snapshot) {
	tb.syncing = true
	defer func() { tb.syncing = false }()

	tb.xMajor.SetValue(float64(s.Ticks.XMajor))
	tb.xMinor.SetValue(float64(s.Ticks.XMinor))
	tb.refSpin.SetValue(float64(s.ReferenceLine.Wavelength))
	if r := onOff(s.ReferenceLine.Enabled); tb.reference.Selected != r {
		tb.reference.SetSelected(r)
	}
	if s.ReferenceLine.Enabled {
		tb.refSpin.Show()
	} else {
		tb.refSpin.Hide()
	}
}
