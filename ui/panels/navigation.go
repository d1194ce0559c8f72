// Package panels provides the control panels around the chart.
package panels

import (
	"spectra-viewer/internal/app"
	"spectra-viewer/internal/view"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// NavigationBar holds the load button, paging buttons and the
// single/multiple mode controls.
type NavigationBar struct {
	state *app.State

	loadBtn    *widget.Button
	prevBtn    *widget.Button
	nextBtn    *widget.Button
	modeSelect *widget.Select
	batchSpin  *SpinBox

	syncing bool

	container *fyne.Container
}

// NewNavigationBar creates the bottom navigation bar. onLoad is called by
// the Load CSV button.
func NewNavigationBar(state *app.State, onLoad func()) *NavigationBar {
	nb := &NavigationBar{state: state}

	nb.loadBtn = widget.NewButton("Load CSV", func() {
		if onLoad != nil {
			onLoad()
		}
	})
	nb.prevBtn = widget.NewButton("Previous", func() {
		nb.state.Previous()
	})
	nb.nextBtn = widget.NewButton("Next", func() {
		nb.state.Next()
	})

	nb.modeSelect = widget.NewSelect(
		[]string{view.ModeSingle.String(), view.ModeMultiple.String()},
		func(choice string) {
			if nb.syncing {
				return
			}
			if m, ok := view.ParseMode(choice); ok {
				nb.state.SetMode(m)
			}
		},
	)

	nb.batchSpin = NewSpinBox(view.MinBatchSize, view.MaxBatchSize, 1, 0)
	nb.batchSpin.SetValue(view.DefaultBatchSize)
	nb.batchSpin.OnChanged = func(v float64) {
		nb.state.SetBatchSize(nb.batchSpin.IntValue())
	}
	nb.batchSpin.Hide()

	nb.container = container.NewHBox(
		nb.loadBtn,
		layout.NewSpacer(),
		nb.prevBtn,
		nb.nextBtn,
		layout.NewSpacer(),
		widget.NewLabel("# of Spectra Shown"),
		nb.modeSelect,
		nb.batchSpin.Container(),
	)

	nb.Sync(state.Snapshot())
	return nb
}

// Container returns the panel container.
func (nb *NavigationBar) Container() fyne.CanvasObject {
	return nb.container
}

// Sync updates the widgets from a state snapshot.
func (nb *NavigationBar) Sync(s app.Snapshot) {
	nb.syncing = true
	defer func() { nb.syncing = false }()

	if nb.modeSelect.Selected != s.Mode.String() {
		nb.modeSelect.SetSelected(s.Mode.String())
	}
	nb.batchSpin.SetValue(float64(s.BatchSize))
	if s.Mode == view.ModeMultiple {
		nb.batchSpin.Show()
	} else {
		nb.batchSpin.Hide()
	}

	setEnabled(nb.prevBtn, s.CanPrevious)
	setEnabled(nb.nextBtn, s.CanNext)
}

func setEnabled(b *widget.Button, enabled bool) {
	if enabled {
		b.Enable()
	} else {
		b.Disable()
	}
}
