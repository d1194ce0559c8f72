package panels

import (
	"os"
	"path/filepath"
	"testing"

	"spectra-viewer/internal/app"
	"spectra-viewer/internal/view"

	"fyne.io/fyne/v2/test"
)

func TestSpinBoxClamp(t *testing.T) {
	test.NewApp()

	tests := []struct {
		name   string
		min    float64
		max    float64
		step   float64
		digits int
		set    float64
		want   float64
	}{
		{"in range", 350, 2500, 10, 0, 1400, 1400},
		{"below min", 350, 2500, 10, 0, 100, 350},
		{"above max", 350, 2500, 10, 0, 9000, 2500},
		{"rounds to digits", 0, 1, 0.01, 2, 0.256, 0.26},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpinBox(tt.min, tt.max, tt.step, tt.digits)
			s.SetValue(tt.set)
			if got := s.Value(); got != tt.want {
				t.Errorf("Value() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpinBoxButtons(t *testing.T) {
	test.NewApp()
	s := NewSpinBox(1, 10, 1, 0)
	s.SetValue(9)

	var calls []float64
	s.OnChanged = func(v float64) { calls = append(calls, v) }

	test.Tap(s.plus)
	test.Tap(s.plus)
	if s.Value() != 10 {
		t.Errorf("Value() = %v, want 10", s.Value())
	}
	if len(calls) != 1 || calls[0] != 10 {
		t.Errorf("OnChanged calls = %v, want [10]", calls)
	}
	if !s.plus.Disabled() {
		t.Error("plus should be disabled at max")
	}

	test.Tap(s.minus)
	if s.Value() != 9 {
		t.Errorf("Value() = %v, want 9", s.Value())
	}
}

func TestSpinBoxTyping(t *testing.T) {
	test.NewApp()
	s := NewSpinBox(350, 2500, 10, 0)
	s.SetValue(1400)

	var got float64
	s.OnChanged = func(v float64) { got = v }

	s.entry.SetText("3")
	if got != 0 || s.Value() != 1400 {
		t.Errorf("partial input changed the value to %v", s.Value())
	}
	s.entry.SetText("600")
	if got != 600 || s.Value() != 600 {
		t.Errorf("Value() = %v, OnChanged = %v; want 600", s.Value(), got)
	}

	s.onSubmitted("99999")
	if s.Value() != 2500 || s.entry.Text != "2500" {
		t.Errorf("submitted out-of-range value gave %v (%q)", s.Value(), s.entry.Text)
	}

	s.onSubmitted("abc")
	if s.entry.Text != "2500" {
		t.Errorf("invalid input not reverted: %q", s.entry.Text)
	}
}

func loadedState(t *testing.T, spectra int) *app.State {
	t.Helper()
	content := "wl"
	for i := 0; i < spectra; i++ {
		content += ",s" + string(rune('A'+i))
	}
	content += "\n400"
	for i := 0; i < spectra; i++ {
		content += ",0.5"
	}
	content += "\n"

	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	s := app.NewState()
	if err := s.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	return s
}

func TestNavigationBarButtons(t *testing.T) {
	test.NewApp()
	state := loadedState(t, 3)
	nb := NewNavigationBar(state, nil)
	state.On(app.EventViewChanged, func(interface{}) { nb.Sync(state.Snapshot()) })

	if !nb.prevBtn.Disabled() {
		t.Error("Previous should be disabled on the first spectrum")
	}
	test.Tap(nb.nextBtn)
	snap := state.Snapshot()
	if snap.PageLabel != "Spectrum 2 of 3" {
		t.Errorf("PageLabel = %q after Next", snap.PageLabel)
	}
	if nb.prevBtn.Disabled() {
		t.Error("Previous should be enabled after Next")
	}
}

func TestNavigationBarMode(t *testing.T) {
	test.NewApp()
	state := loadedState(t, 6)
	nb := NewNavigationBar(state, nil)
	state.On(app.EventViewChanged, func(interface{}) { nb.Sync(state.Snapshot()) })

	if nb.batchSpin.Visible() {
		t.Error("batch size should be hidden in single mode")
	}
	nb.modeSelect.SetSelected(view.ModeMultiple.String())
	if state.Snapshot().Mode != view.ModeMultiple {
		t.Fatal("mode select did not update the state")
	}
	if !nb.batchSpin.Visible() {
		t.Error("batch size should be shown in multiple mode")
	}

	test.Tap(nb.batchSpin.minus)
	if got := state.Snapshot().BatchSize; got != view.DefaultBatchSize-1 {
		t.Errorf("BatchSize = %d, want %d", got, view.DefaultBatchSize-1)
	}
}

func TestNavigationBarLoad(t *testing.T) {
	test.NewApp()
	called := false
	nb := NewNavigationBar(app.NewState(), func() { called = true })
	test.Tap(nb.loadBtn)
	if !called {
		t.Error("Load CSV did not call onLoad")
	}
}

func TestAxesPanel(t *testing.T) {
	test.NewApp()
	state := app.NewState()
	ap := NewAxesPanel(state)

	if ap.xMin.Value() != view.MinWavelength || ap.xMax.Value() != view.MaxWavelength {
		t.Errorf("x spin boxes = %v..%v", ap.xMin.Value(), ap.xMax.Value())
	}

	test.Tap(ap.xMin.plus)
	if got := state.Snapshot().XRange; got != (view.IntRange{Min: 360, Max: 2500}) {
		t.Errorf("XRange = %+v", got)
	}

	test.Tap(ap.yMax.minus)
	if got := state.Snapshot().YRange; got != (view.FloatRange{Min: 0, Max: 0.99}) {
		t.Errorf("YRange = %+v", got)
	}

	ap.grid.SetSelected(choiceOff)
	if state.Snapshot().Grid {
		t.Error("grid still on after selecting OFF")
	}
}

func TestTickToolbar(t *testing.T) {
	test.NewApp()
	state := app.NewState()
	tb := NewTickToolbar(state)
	state.On(app.EventViewChanged, func(interface{}) { tb.Sync(state.Snapshot()) })

	test.Tap(tb.xMajor.plus)
	ticks := state.Snapshot().Ticks
	if ticks.XMajor != 201 || ticks.XMinor != 50 || ticks.YMajor != 0.2 {
		t.Errorf("Ticks = %+v", ticks)
	}

	if tb.refSpin.Visible() {
		t.Error("wavelength spin box should be hidden while the line is off")
	}
	tb.reference.SetSelected(choiceOn)
	ref := state.Snapshot().ReferenceLine
	if !ref.Enabled || ref.Wavelength != view.DefaultReferenceWavelength {
		t.Errorf("ReferenceLine = %+v", ref)
	}
	if !tb.refSpin.Visible() {
		t.Error("wavelength spin box should be shown while the line is on")
	}

	test.Tap(tb.refSpin.plus)
	if got := state.Snapshot().ReferenceLine.Wavelength; got != view.DefaultReferenceWavelength+1 {
		t.Errorf("Wavelength = %d", got)
	}
}
