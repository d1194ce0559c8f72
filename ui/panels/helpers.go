package panels

import (
	"math"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Choices for the ON/OFF selects.
const (
	choiceOn  = "ON"
	choiceOff = "OFF"
)

// SpinBox is a numeric entry with decrement and increment buttons.
// Values are clamped to [min, max]; the buttons move by step.
type SpinBox struct {
	entry *widget.Entry
	minus *widget.Button
	plus  *widget.Button

	min, max, step float64
	digits         int
	value          float64

	// syncing suppresses OnChanged while the entry text is set from code.
	syncing bool

	// OnChanged is called when the user changes the value.
	OnChanged func(v float64)

	container *fyne.Container
}

// NewSpinBox creates a spin box showing digits decimal places.
func NewSpinBox(min, max, step float64, digits int) *SpinBox {
	s := &SpinBox{
		min:    min,
		max:    max,
		step:   step,
		digits: digits,
		value:  min,
	}

	s.entry = widget.NewEntry()
	s.entry.OnChanged = s.onTyped
	s.entry.OnSubmitted = s.onSubmitted

	s.minus = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() {
		s.userSet(s.value - s.step)
	})
	s.plus = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		s.userSet(s.value + s.step)
	})

	s.container = container.NewBorder(nil, nil, nil,
		container.NewHBox(s.minus, s.plus),
		s.entry,
	)
	s.showValue()
	return s
}

// Container returns the spin box layout.
func (s *SpinBox) Container() fyne.CanvasObject {
	return s.container
}

// Value returns the current value.
func (s *SpinBox) Value() float64 {
	return s.value
}

// IntValue returns the current value rounded to an integer.
func (s *SpinBox) IntValue() int {
	return int(math.Round(s.value))
}

// SetValue sets the value without calling OnChanged.
func (s *SpinBox) SetValue(v float64) {
	v = s.clamp(v)
	// Leave text being typed alone when it already holds this value.
	if t, err := strconv.ParseFloat(strings.TrimSpace(s.entry.Text), 64); err == nil && v == s.value && s.clamp(t) == v {
		return
	}
	s.value = v
	s.showValue()
}

// Show makes the spin box visible.
func (s *SpinBox) Show() {
	s.container.Show()
}

// Hide hides the spin box.
func (s *SpinBox) Hide() {
	s.container.Hide()
}

// Visible reports whether the spin box is shown.
func (s *SpinBox) Visible() bool {
	return s.container.Visible()
}

func (s *SpinBox) clamp(v float64) float64 {
	if math.IsNaN(v) {
		return s.value
	}
	v = math.Max(s.min, math.Min(s.max, v))
	// Round to the displayed precision so repeated steps don't drift.
	p := math.Pow(10, float64(s.digits))
	return math.Round(v*p) / p
}

func (s *SpinBox) format(v float64) string {
	return strconv.FormatFloat(v, 'f', s.digits, 64)
}

func (s *SpinBox) showValue() {
	s.syncing = true
	s.entry.SetText(s.format(s.value))
	s.syncing = false
	s.updateButtons()
}

func (s *SpinBox) updateButtons() {
	if s.entry.Disabled() {
		return
	}
	if s.value <= s.min {
		s.minus.Disable()
	} else {
		s.minus.Enable()
	}
	if s.value >= s.max {
		s.plus.Disable()
	} else {
		s.plus.Enable()
	}
}

// userSet applies a value chosen through the buttons or the entry.
func (s *SpinBox) userSet(v float64) {
	v = s.clamp(v)
	changed := v != s.value
	s.value = v
	s.showValue()
	if changed && s.OnChanged != nil {
		s.OnChanged(v)
	}
}

// onTyped accepts in-range values while typing; partial input such as
// "3" on the way to "350" is left alone until submitted.
func (s *SpinBox) onTyped(text string) {
	if s.syncing {
		return
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || v < s.min || v > s.max {
		return
	}
	v = s.clamp(v)
	if v == s.value {
		return
	}
	s.value = v
	s.updateButtons()
	if s.OnChanged != nil {
		s.OnChanged(v)
	}
}

func (s *SpinBox) onSubmitted(text string) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		s.showValue()
		return
	}
	s.userSet(v)
}

// newOnOffSelect creates a select with ON and OFF in the given order.
func newOnOffSelect(options []string, onChanged func(on bool)) *widget.Select {
	return widget.NewSelect(options, func(choice string) {
		if onChanged != nil {
			onChanged(choice == choiceOn)
		}
	})
}

func onOff(on bool) string {
	if on {
		return choiceOn
	}
	return choiceOff
}
