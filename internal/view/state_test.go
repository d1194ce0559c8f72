package view

import (
	"fmt"
	"reflect"
	"testing"

	"spectra-viewer/internal/spectra"
)

// makeTable builds a table with a wavelength column and the named spectra.
func makeTable(t *testing.T, names ...string) *spectra.Table {
	t.Helper()
	all := append([]string{"Wavelength"}, names...)
	cols := make([][]float64, len(all))
	for i := range cols {
		cols[i] = []float64{350 + float64(i), 400 + float64(i)}
	}
	tbl, err := spectra.NewTable(all, cols)
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

func labels(req RenderRequest) []string {
	out := make([]string, 0, len(req.Curves))
	for _, c := range req.Curves {
		out = append(out, c.Label)
	}
	return out
}

func TestNewStateDefaults(t *testing.T) {
	s := NewState()

	if s.Mode() != ModeSingle {
		t.Errorf("Mode() = %v, want Single", s.Mode())
	}
	if s.BatchSize() != DefaultBatchSize {
		t.Errorf("BatchSize() = %d, want %d", s.BatchSize(), DefaultBatchSize)
	}
	if s.XRange() != (IntRange{350, 2500}) {
		t.Errorf("XRange() = %v", s.XRange())
	}
	if s.YRange() != (FloatRange{0, 1}) {
		t.Errorf("YRange() = %v", s.YRange())
	}
	if !s.Grid() {
		t.Error("grid should default to on")
	}
	if s.ReferenceLine() != (ReferenceLine{Enabled: false, Wavelength: 1400}) {
		t.Errorf("ReferenceLine() = %+v", s.ReferenceLine())
	}
	if s.TickSpacing() != (TickSpacing{200, 50, 0.2, 0.05}) {
		t.Errorf("TickSpacing() = %+v", s.TickSpacing())
	}
}

func TestRenderRequestWithoutTable(t *testing.T) {
	s := NewState()
	if _, ok := s.RenderRequest(); ok {
		t.Error("RenderRequest() ok = true before any load")
	}
	s.Navigate(Next)
	if s.SpectrumIndex() != 0 {
		t.Errorf("Navigate without table moved index to %d", s.SpectrumIndex())
	}
	if s.CanNavigate(Next) || s.CanNavigate(Previous) {
		t.Error("CanNavigate should be false without a table")
	}
}

func TestLoadShowsFirstPage(t *testing.T) {
	for m := 1; m <= 12; m++ {
		names := make([]string, m-1)
		for i := range names {
			names[i] = fmt.Sprintf("S%d", i)
		}
		for _, mode := range []Mode{ModeSingle, ModeMultiple} {
			for b := MinBatchSize; b <= MaxBatchSize; b++ {
				s := NewState()
				s.SetMode(mode)
				s.SetBatchSize(b)
				s.Load(makeTable(t, names...))

				req, ok := s.RenderRequest()
				if !ok {
					t.Fatal("RenderRequest() ok = false after load")
				}
				want := min(s.EffectiveBatchSize(), m-1)
				if len(req.Curves) != want {
					t.Errorf("M=%d %v b=%d: %d curves, want %d", m, mode, b, len(req.Curves), want)
				}
				if want > 0 && req.Curves[0].Label != "S0" {
					t.Errorf("M=%d: first curve %q, want S0", m, req.Curves[0].Label)
				}
			}
		}
	}
}

func TestLoadResetsIndexOnly(t *testing.T) {
	s := NewState()
	s.Load(makeTable(t, "A", "B", "C"))
	s.SetXRange(400, 900)
	s.SetGrid(false)
	s.Navigate(Next)
	if s.SpectrumIndex() != 1 {
		t.Fatalf("SpectrumIndex() = %d, want 1", s.SpectrumIndex())
	}

	s.Load(makeTable(t, "D", "E"))
	if s.SpectrumIndex() != 0 {
		t.Errorf("SpectrumIndex() after load = %d, want 0", s.SpectrumIndex())
	}
	if s.XRange() != (IntRange{400, 900}) || s.Grid() {
		t.Error("load should keep ranges and grid")
	}
}

func TestNavigateSingleScenario(t *testing.T) {
	s := NewState()
	s.Load(makeTable(t, "A", "B", "C"))

	steps := []string{"A", "B", "C", "C"}
	for i, want := range steps {
		if i > 0 {
			s.Navigate(Next)
		}
		req, _ := s.RenderRequest()
		if got := labels(req); !reflect.DeepEqual(got, []string{want}) {
			t.Errorf("step %d: curves %v, want [%s]", i, got, want)
		}
	}
	if s.SpectrumIndex() != 2 {
		t.Errorf("SpectrumIndex() = %d, want 2", s.SpectrumIndex())
	}
}

func TestNavigateMultipleScenario(t *testing.T) {
	s := NewState()
	s.SetMode(ModeMultiple)
	s.SetBatchSize(2)
	s.Clamp()
	s.Load(makeTable(t, "A", "B", "C"))

	req, _ := s.RenderRequest()
	if got := labels(req); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("first page = %v, want [A B]", got)
	}

	// min(4-1-2, 0+2) = 1
	s.Navigate(Next)
	if s.SpectrumIndex() != 1 {
		t.Fatalf("SpectrumIndex() = %d, want 1", s.SpectrumIndex())
	}
	req, _ = s.RenderRequest()
	if got := labels(req); !reflect.DeepEqual(got, []string{"B", "C"}) {
		t.Errorf("second page = %v, want [B C]", got)
	}

	s.Navigate(Next)
	if s.SpectrumIndex() != 1 {
		t.Errorf("SpectrumIndex() after extra next = %d, want 1", s.SpectrumIndex())
	}

	s.Navigate(Previous)
	if s.SpectrumIndex() != 0 {
		t.Errorf("SpectrumIndex() after previous = %d, want 0", s.SpectrumIndex())
	}
}

func TestNavigateBatchLargerThanTable(t *testing.T) {
	s := NewState()
	s.SetMode(ModeMultiple)
	s.SetBatchSize(5)
	s.Load(makeTable(t, "A", "B"))

	// 3-1-5 is negative; the index must stay at 0.
	s.Navigate(Next)
	if s.SpectrumIndex() != 0 {
		t.Fatalf("SpectrumIndex() = %d, want 0", s.SpectrumIndex())
	}
	req, _ := s.RenderRequest()
	if got := labels(req); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("curves = %v, want [A B]", got)
	}
}

func TestNavigateNeverLeavesBounds(t *testing.T) {
	for m := 1; m <= 9; m++ {
		names := make([]string, m-1)
		for i := range names {
			names[i] = fmt.Sprintf("S%d", i)
		}
		for b := MinBatchSize; b <= MaxBatchSize; b++ {
			s := NewState()
			s.SetMode(ModeMultiple)
			s.SetBatchSize(b)
			s.Load(makeTable(t, names...))

			dirs := []Direction{Next, Next, Previous, Next, Next, Next, Previous, Previous, Previous, Next}
			for _, d := range dirs {
				s.Navigate(d)
				idx := s.SpectrumIndex()
				if idx < 0 || idx > max(0, m-1-b) {
					t.Fatalf("M=%d b=%d: index %d out of bounds", m, b, idx)
				}
				req, _ := s.RenderRequest()
				if n := len(req.Curves); n > 0 && idx+n > m-1 {
					t.Fatalf("M=%d b=%d: column %d past the table", m, b, idx+n)
				}
			}
		}
	}
}

func TestModeChangeClamp(t *testing.T) {
	s := NewState()
	s.Load(makeTable(t, "A", "B", "C", "D"))
	s.Navigate(Next)
	s.Navigate(Next)
	s.Navigate(Next)
	if s.SpectrumIndex() != 3 {
		t.Fatalf("SpectrumIndex() = %d, want 3", s.SpectrumIndex())
	}

	s.SetMode(ModeMultiple)
	s.SetBatchSize(3)
	s.Clamp()
	if s.SpectrumIndex() != 1 {
		t.Errorf("SpectrumIndex() after clamp = %d, want 1", s.SpectrumIndex())
	}
	req, _ := s.RenderRequest()
	if got := labels(req); !reflect.DeepEqual(got, []string{"B", "C", "D"}) {
		t.Errorf("curves = %v, want [B C D]", got)
	}
}

func TestSetBatchSizeBounds(t *testing.T) {
	s := NewState()
	s.SetBatchSize(0)
	if s.BatchSize() != MinBatchSize {
		t.Errorf("BatchSize() = %d, want %d", s.BatchSize(), MinBatchSize)
	}
	s.SetBatchSize(42)
	if s.BatchSize() != MaxBatchSize {
		t.Errorf("BatchSize() = %d, want %d", s.BatchSize(), MaxBatchSize)
	}
	if s.EffectiveBatchSize() != 1 {
		t.Errorf("EffectiveBatchSize() in single mode = %d, want 1", s.EffectiveBatchSize())
	}
}

func TestCanNavigate(t *testing.T) {
	s := NewState()
	s.Load(makeTable(t, "A", "B"))
	if s.CanNavigate(Previous) || !s.CanNavigate(Next) {
		t.Error("at first spectrum: want previous disabled, next enabled")
	}
	s.Navigate(Next)
	if !s.CanNavigate(Previous) || s.CanNavigate(Next) {
		t.Error("at last spectrum: want previous enabled, next disabled")
	}
}

func TestPageLabel(t *testing.T) {
	s := NewState()
	if s.PageLabel() != "" {
		t.Errorf("PageLabel() = %q before load", s.PageLabel())
	}

	s.Load(makeTable(t))
	if s.PageLabel() != "No spectra" {
		t.Errorf("PageLabel() = %q, want %q", s.PageLabel(), "No spectra")
	}

	s.Load(makeTable(t, "A", "B", "C"))
	if s.PageLabel() != "Spectrum 1 of 3" {
		t.Errorf("PageLabel() = %q", s.PageLabel())
	}

	s.SetMode(ModeMultiple)
	s.SetBatchSize(2)
	s.Navigate(Next)
	if s.PageLabel() != "Spectra 2-3 of 3" {
		t.Errorf("PageLabel() = %q", s.PageLabel())
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeSingle, ModeMultiple} {
		got, ok := ParseMode(m.String())
		if !ok || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, ok)
		}
	}
	if _, ok := ParseMode("Both"); ok {
		t.Error("ParseMode(Both) should fail")
	}
}
