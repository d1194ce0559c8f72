// Package dialogs provides application dialogs.
package dialogs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"spectra-viewer/internal/view"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// TickSpacingDialog edits all four tick spacings, including the y ticks
// that have no toolbar control.
type TickSpacingDialog struct {
	ticks  view.TickSpacing
	window fyne.Window

	xMajorEntry *widget.Entry
	xMinorEntry *widget.Entry
	yMajorEntry *widget.Entry
	yMinorEntry *widget.Entry

	onApply func(view.TickSpacing)
}

// NewTickSpacingDialog creates a dialog prefilled with ticks.
func NewTickSpacingDialog(ticks view.TickSpacing, window fyne.Window, onApply func(view.TickSpacing)) *TickSpacingDialog {
	return &TickSpacingDialog{
		ticks:   ticks,
		window:  window,
		onApply: onApply,
	}
}

// Show displays the dialog.
func (d *TickSpacingDialog) Show() {
	dlg := dialog.NewCustomConfirm(
		"Tick Spacing",
		"Apply",
		"Cancel",
		d.createContent(),
		func(apply bool) {
			if !apply {
				return
			}
			ticks, err := d.parse()
			if err != nil {
				dialog.ShowError(err, d.window)
				return
			}
			if d.onApply != nil {
				d.onApply(ticks)
			}
		},
		d.window,
	)
	dlg.Resize(fyne.NewSize(360, 260))
	dlg.Show()
}

func (d *TickSpacingDialog) createContent() fyne.CanvasObject {
	d.xMajorEntry = widget.NewEntry()
	d.xMajorEntry.SetText(strconv.Itoa(d.ticks.XMajor))
	d.xMinorEntry = widget.NewEntry()
	d.xMinorEntry.SetText(strconv.Itoa(d.ticks.XMinor))
	d.yMajorEntry = widget.NewEntry()
	d.yMajorEntry.SetText(strconv.FormatFloat(d.ticks.YMajor, 'g', -1, 64))
	d.yMinorEntry = widget.NewEntry()
	d.yMinorEntry.SetText(strconv.FormatFloat(d.ticks.YMinor, 'g', -1, 64))

	return widget.NewForm(
		widget.NewFormItem("X major (nm)", d.xMajorEntry),
		widget.NewFormItem("X minor (nm)", d.xMinorEntry),
		widget.NewFormItem("Y major", d.yMajorEntry),
		widget.NewFormItem("Y minor", d.yMinorEntry),
	)
}

var errNotPositive = errors.New("must be greater than zero")

// parse reads the entries. Every spacing must be a positive number.
func (d *TickSpacingDialog) parse() (view.TickSpacing, error) {
	var t view.TickSpacing
	var err error
	if t.XMajor, err = parseInt("X major", d.xMajorEntry.Text); err != nil {
		return t, err
	}
	if t.XMinor, err = parseInt("X minor", d.xMinorEntry.Text); err != nil {
		return t, err
	}
	if t.YMajor, err = parseFloat("Y major", d.yMajorEntry.Text); err != nil {
		return t, err
	}
	if t.YMinor, err = parseFloat("Y minor", d.yMinorEntry.Text); err != nil {
		return t, err
	}
	return t, nil
}

func parseInt(field, text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a whole number", field, text)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s: %w", field, errNotPositive)
	}
	return n, nil
}

func parseFloat(field, text string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", field, text)
	}
	if !(f > 0) {
		return 0, fmt.Errorf("%s: %w", field, errNotPositive)
	}
	return f, nil
}
