package mainwindow

import (
	"os"
	"path/filepath"
	"testing"

	"spectra-viewer/internal/app"

	"fyne.io/fyne/v2/test"
)

const sample = `Wavelength,leaf,soil,bark
400,0.05,0.10,0.20
700,0.08,0.25,0.30
1000,0.50,0.30,0.35
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "samples.csv")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestWindowBeforeLoad(t *testing.T) {
	a := test.NewApp()
	mw := New(a, app.NewState(), nil)

	if _, ok := mw.canvas.Request(); ok {
		t.Error("chart has a request before any file is loaded")
	}
	if !mw.reloadItem.Disabled {
		t.Error("Reload should be disabled without a file")
	}
	if mw.pageLabel.Text != "" {
		t.Errorf("page label = %q, want empty", mw.pageLabel.Text)
	}
}

func TestWindowLoadAndNavigate(t *testing.T) {
	a := test.NewApp()
	state := app.NewState()
	mw := New(a, state, nil)

	path := writeSample(t)
	if err := state.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if mw.Title() != appTitle+" - samples.csv" {
		t.Errorf("Title() = %q", mw.Title())
	}
	if mw.fileLabel.Text != "samples.csv" {
		t.Errorf("file label = %q", mw.fileLabel.Text)
	}
	if mw.pageLabel.Text != "Spectrum 1 of 3" {
		t.Errorf("page label = %q", mw.pageLabel.Text)
	}
	if mw.extentLabel.Text != "Data 400-1000 nm" {
		t.Errorf("extent label = %q", mw.extentLabel.Text)
	}
	req, ok := mw.canvas.Request()
	if !ok || len(req.Curves) != 1 || req.Curves[0].Label != "leaf" {
		t.Fatalf("chart request = %+v, %v", req, ok)
	}

	state.Next()
	req, _ = mw.canvas.Request()
	if req.Curves[0].Label != "soil" {
		t.Errorf("after Next curve = %q, want soil", req.Curves[0].Label)
	}
	if mw.pageLabel.Text != "Spectrum 2 of 3" {
		t.Errorf("page label = %q", mw.pageLabel.Text)
	}
}

func TestWindowMenuToggles(t *testing.T) {
	a := test.NewApp()
	state := app.NewState()
	mw := New(a, state, nil)

	if !mw.gridItem.Checked {
		t.Error("grid menu item should start checked")
	}
	mw.gridItem.Action()
	if state.Snapshot().Grid || mw.gridItem.Checked {
		t.Error("grid menu item did not turn the grid off")
	}

	mw.referenceItem.Action()
	if !state.Snapshot().ReferenceLine.Enabled || !mw.referenceItem.Checked {
		t.Error("reference line menu item did not enable the line")
	}
}

func TestWindowLoadFailureKeepsTable(t *testing.T) {
	a := test.NewApp()
	state := app.NewState()
	mw := New(a, state, nil)

	if err := state.LoadFile(writeSample(t)); err != nil {
		t.Fatal(err)
	}
	if err := state.LoadFile(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatal("LoadFile() of a missing file succeeded")
	}
	if mw.pageLabel.Text != "Spectrum 1 of 3" {
		t.Errorf("page label = %q after failed load", mw.pageLabel.Text)
	}
	if _, ok := mw.canvas.Request(); !ok {
		t.Error("chart cleared by a failed load")
	}
}
