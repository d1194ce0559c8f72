package view

// Curve is one spectrum to draw. X and Y are shared with the table.
type Curve struct {
	X     []float64
	Y     []float64
	Label string
}

// RenderRequest is a self-contained description of one chart redraw.
type RenderRequest struct {
	Curves []Curve

	// ReferenceLine is nil when the marker is disabled.
	ReferenceLine *int

	XRange IntRange
	YRange FloatRange
	Grid   bool
	Ticks  TickSpacing

	XLabel string
	YLabel string
	Legend bool
}

// RenderRequest derives the chart for the current configuration. ok is
// false when no table has been loaded. Columns past the end of the table
// are skipped, so a page near the end may hold fewer curves than the
// batch size.
func (s *State) RenderRequest() (req RenderRequest, ok bool) {
	if s.table == nil {
		return RenderRequest{}, false
	}

	b := s.EffectiveBatchSize()
	spectra := s.table.NumColumns() - 1
	x := s.table.Wavelength()
	curves := make([]Curve, 0, b)
	for i := 0; i < b; i++ {
		if s.spectrumIndex+i >= spectra {
			break
		}
		col := s.spectrumIndex + i + 1
		curves = append(curves, Curve{
			X:     x,
			Y:     s.table.Column(col),
			Label: s.table.Name(col),
		})
	}

	req = RenderRequest{
		Curves: curves,
		XRange: s.xRange,
		YRange: s.yRange,
		Grid:   s.grid,
		Ticks:  s.ticks,
		XLabel: XLabel,
		YLabel: YLabel,
		Legend: true,
	}
	if s.reference.Enabled {
		wl := s.reference.Wavelength
		req.ReferenceLine = &wl
	}
	return req, true
}
