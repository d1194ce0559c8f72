// Package spectra provides the column-oriented spectral table and its loader.
package spectra

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Table is an ordered set of equally long named columns. Column 0 holds
// wavelengths in nm; every following column is one reflectance spectrum.
type Table struct {
	names   []string
	columns [][]float64
}

// NewTable builds a table from column names and column data.
// It fails if the counts differ, there is no column at all, or the
// columns are not all the same length.
func NewTable(names []string, columns [][]float64) (*Table, error) {
	if len(names) == 0 {
		return nil, ErrNoColumns
	}
	if len(names) != len(columns) {
		return nil, fmt.Errorf("spectra: %d names for %d columns", len(names), len(columns))
	}
	n := len(columns[0])
	for i, col := range columns {
		if len(col) != n {
			return nil, fmt.Errorf("spectra: column %q has %d rows, want %d", names[i], len(col), n)
		}
	}

	t := &Table{
		names:   append([]string(nil), names...),
		columns: make([][]float64, len(columns)),
	}
	for i, col := range columns {
		t.columns[i] = append([]float64(nil), col...)
	}
	return t, nil
}

// NumColumns returns M, the wavelength column included.
func (t *Table) NumColumns() int {
	if t == nil {
		return 0
	}
	return len(t.columns)
}

// NumSpectra returns the number of spectrum columns (M - 1).
func (t *Table) NumSpectra() int {
	if t.NumColumns() == 0 {
		return 0
	}
	return t.NumColumns() - 1
}

// NumRows returns N.
func (t *Table) NumRows() int {
	if t.NumColumns() == 0 {
		return 0
	}
	return len(t.columns[0])
}

// Name returns the header of column i.
func (t *Table) Name(i int) string {
	return t.names[i]
}

// Names returns a copy of all column headers.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

// Column returns the values of column i. The slice is shared with the
// table and must not be modified.
func (t *Table) Column(i int) []float64 {
	return t.columns[i]
}

// Wavelength returns column 0.
func (t *Table) Wavelength() []float64 {
	return t.columns[0]
}

// WavelengthExtent returns the smallest and largest finite wavelength.
// ok is false when the wavelength column has no finite value.
func (t *Table) WavelengthExtent() (lo, hi float64, ok bool) {
	if t.NumColumns() == 0 {
		return 0, 0, false
	}
	finite := make([]float64, 0, t.NumRows())
	for _, v := range t.Wavelength() {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return 0, 0, false
	}
	return floats.Min(finite), floats.Max(finite), true
}
