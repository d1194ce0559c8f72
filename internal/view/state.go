// Package view holds the navigation and display configuration of the
// spectra viewer and derives chart render requests from it.
//
// State is a plain value with no locking: every method is expected to run
// on the UI event goroutine, one call at a time.
package view

import (
	"fmt"

	"spectra-viewer/internal/spectra"
)

// Limits of the user-adjustable values.
const (
	MinBatchSize = 1
	MaxBatchSize = 10

	MinWavelength = 350
	MaxWavelength = 2500
)

// Default display configuration.
const (
	DefaultBatchSize           = 5
	DefaultReferenceWavelength = 1400
)

// Fixed axis titles.
const (
	XLabel = "Wavelength (nm)"
	YLabel = "Reflectance"
)

// Mode selects whether one spectrum or a batch is shown.
type Mode int

const (
	ModeSingle Mode = iota
	ModeMultiple
)

func (m Mode) String() string {
	switch m {
	case ModeMultiple:
		return "Multiple"
	default:
		return "Single"
	}
}

// ParseMode maps the UI labels back to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "Single":
		return ModeSingle, true
	case "Multiple":
		return ModeMultiple, true
	}
	return ModeSingle, false
}

// Direction is a navigation step.
type Direction int

const (
	Previous Direction = iota
	Next
)

// IntRange is the visible wavelength interval. Min may exceed Max.
type IntRange struct {
	Min, Max int
}

// FloatRange is the visible reflectance interval. Min may exceed Max.
type FloatRange struct {
	Min, Max float64
}

// ReferenceLine is the optional vertical marker.
type ReferenceLine struct {
	Enabled    bool
	Wavelength int
}

// TickSpacing holds the major/minor tick multiples of both axes.
type TickSpacing struct {
	XMajor, XMinor int
	YMajor, YMinor float64
}

// DefaultTickSpacing returns the startup tick multiples.
func DefaultTickSpacing() TickSpacing {
	return TickSpacing{XMajor: 200, XMinor: 50, YMajor: 0.2, YMinor: 0.05}
}

// State is the mutable view configuration plus the loaded table.
type State struct {
	table *spectra.Table

	spectrumIndex int
	batchSize     int
	mode          Mode

	xRange IntRange
	yRange FloatRange

	grid      bool
	reference ReferenceLine
	ticks     TickSpacing
}

// NewState returns the startup configuration with no table loaded.
func NewState() *State {
	return &State{
		batchSize: DefaultBatchSize,
		mode:      ModeSingle,
		xRange:    IntRange{Min: MinWavelength, Max: MaxWavelength},
		yRange:    FloatRange{Min: 0, Max: 1},
		grid:      true,
		reference: ReferenceLine{Wavelength: DefaultReferenceWavelength},
		ticks:     DefaultTickSpacing(),
	}
}

// Load replaces the table and rewinds to the first spectrum. Every other
// setting is kept.
func (s *State) Load(t *spectra.Table) {
	s.table = t
	s.spectrumIndex = 0
}

// Table returns the loaded table, or nil.
func (s *State) Table() *spectra.Table {
	return s.table
}

// SetMode switches between single and batch display. Call Clamp afterwards.
func (s *State) SetMode(m Mode) {
	s.mode = m
}

// Mode returns the display mode.
func (s *State) Mode() Mode {
	return s.mode
}

// SetBatchSize sets the batch size, forced into [MinBatchSize, MaxBatchSize].
// Call Clamp afterwards.
func (s *State) SetBatchSize(n int) {
	if n < MinBatchSize {
		n = MinBatchSize
	}
	if n > MaxBatchSize {
		n = MaxBatchSize
	}
	s.batchSize = n
}

// BatchSize returns the configured batch size regardless of mode.
func (s *State) BatchSize() int {
	return s.batchSize
}

// EffectiveBatchSize is the number of spectra shown per page: the batch
// size in multiple mode, 1 otherwise.
func (s *State) EffectiveBatchSize() int {
	if s.mode == ModeMultiple {
		return s.batchSize
	}
	return 1
}

// SpectrumIndex returns the 0-based index of the first shown spectrum.
func (s *State) SpectrumIndex() int {
	return s.spectrumIndex
}

// maxIndex is the largest spectrum index a page may start at.
func (s *State) maxIndex() int {
	last := s.table.NumColumns() - 1 - s.EffectiveBatchSize()
	if last < 0 {
		return 0
	}
	return last
}

// Clamp forces the spectrum index into [0, max(0, M-1-b)].
func (s *State) Clamp() {
	if s.spectrumIndex > s.maxIndex() {
		s.spectrumIndex = s.maxIndex()
	}
	if s.spectrumIndex < 0 {
		s.spectrumIndex = 0
	}
}

// Navigate moves one page forward or back. It does nothing before a table
// is loaded.
func (s *State) Navigate(dir Direction) {
	if s.table == nil {
		return
	}
	b := s.EffectiveBatchSize()
	switch dir {
	case Previous:
		s.spectrumIndex = max(0, s.spectrumIndex-b)
	case Next:
		s.spectrumIndex = min(s.table.NumColumns()-1-b, s.spectrumIndex+b)
	}
	s.Clamp()
}

// CanNavigate reports whether Navigate(dir) would change the index.
func (s *State) CanNavigate(dir Direction) bool {
	if s.table == nil {
		return false
	}
	if dir == Previous {
		return s.spectrumIndex > 0
	}
	return s.spectrumIndex < s.maxIndex()
}

// PageLabel describes the shown spectra, e.g. "Spectra 3-4 of 7".
// It is empty before a table is loaded.
func (s *State) PageLabel() string {
	if s.table == nil {
		return ""
	}
	total := s.table.NumSpectra()
	if total == 0 {
		return "No spectra"
	}
	first := s.spectrumIndex + 1
	last := min(s.spectrumIndex+s.EffectiveBatchSize(), total)
	if first == last {
		return fmt.Sprintf("Spectrum %d of %d", first, total)
	}
	return fmt.Sprintf("Spectra %d-%d of %d", first, last, total)
}

// SetXRange stores the wavelength interval as given.
func (s *State) SetXRange(lo, hi int) {
	s.xRange = IntRange{Min: lo, Max: hi}
}

// XRange returns the wavelength interval.
func (s *State) XRange() IntRange {
	return s.xRange
}

// SetYRange stores the reflectance interval as given.
func (s *State) SetYRange(lo, hi float64) {
	s.yRange = FloatRange{Min: lo, Max: hi}
}

// YRange returns the reflectance interval.
func (s *State) YRange() FloatRange {
	return s.yRange
}

// SetGrid turns grid lines on or off.
func (s *State) SetGrid(enabled bool) {
	s.grid = enabled
}

// Grid reports whether grid lines are drawn.
func (s *State) Grid() bool {
	return s.grid
}

// SetReferenceLine configures the vertical marker.
func (s *State) SetReferenceLine(enabled bool, wavelength int) {
	s.reference = ReferenceLine{Enabled: enabled, Wavelength: wavelength}
}

// ReferenceLine returns the marker configuration.
func (s *State) ReferenceLine() ReferenceLine {
	return s.reference
}

// SetTickSpacing stores the tick multiples as given.
func (s *State) SetTickSpacing(t TickSpacing) {
	s.ticks = t
}

// TickSpacing returns the tick multiples.
func (s *State) TickSpacing() TickSpacing {
	return s.ticks
}
