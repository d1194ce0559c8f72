// Package main provides the entry point for the Spectra Viewer application.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"spectra-viewer/internal/app"
	"spectra-viewer/internal/logging"
	"spectra-viewer/internal/version"
	"spectra-viewer/internal/view"
	"spectra-viewer/ui/mainwindow"
	"spectra-viewer/ui/prefs"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const (
	appID         = "org.spectraviewer.app"
	watchDebounce = 250 * time.Millisecond
)

func main() {
	logFile := flag.String("log", "", "write log output to this file")
	configFile := flag.String("config", "", "read startup settings from this JSON file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [file]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if *logFile != "" {
		cleanup, err := logging.Setup(*logFile)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer cleanup()
	}
	log.Printf("Starting Spectra Viewer %s", version.String())

	var appPrefs *prefs.Prefs
	if *configFile != "" {
		appPrefs = prefs.LoadFrom(*configFile)
	} else {
		appPrefs = prefs.Load()
	}
	log.Printf("Settings: %s", appPrefs.Path())

	appState := app.NewState()
	applyPrefs(appState, appPrefs)

	var watcher *app.FileWatcher
	if appPrefs.Bool(prefs.KeyWatchFile, true) {
		w, err := app.NewFileWatcher(watchDebounce)
		if err != nil {
			log.Printf("File watching disabled: %v", err)
		} else {
			watcher = w
			defer watcher.Stop()
		}
	}

	fyneApp := fyneapp.NewWithID(appID)
	fyneApp.Settings().SetTheme(&app.SpectraTheme{})

	win := mainwindow.New(fyneApp, appState, watcher)
	win.Resize(fyne.NewSize(
		float32(appPrefs.FloatWithFallback(prefs.KeyWindowWidth, 1200)),
		float32(appPrefs.FloatWithFallback(prefs.KeyWindowHeight, 800)),
	))

	// Handle command line arguments
	if flag.NArg() > 0 {
		path := flag.Arg(0)
		if err := appState.LoadFile(path); err != nil {
			log.Printf("Failed to load %s: %v", path, err)
		}
	}

	win.ShowAndRun()
}

// applyPrefs sets the startup view from the config file. Values outside
// the ranges the controls accept are ignored.
func applyPrefs(s *app.State, p *prefs.Prefs) {
	snap := s.Snapshot()

	xMin := p.IntWithFallback(prefs.KeyXMin, snap.XRange.Min)
	xMax := p.IntWithFallback(prefs.KeyXMax, snap.XRange.Max)
	if inWavelengths(xMin) && inWavelengths(xMax) {
		s.SetXRange(xMin, xMax)
	}

	yMin := p.FloatWithFallback(prefs.KeyYMin, snap.YRange.Min)
	yMax := p.FloatWithFallback(prefs.KeyYMax, snap.YRange.Max)
	if yMin >= 0 && yMin <= 1 && yMax >= 0 && yMax <= 1 {
		s.SetYRange(yMin, yMax)
	}

	s.SetGrid(p.Bool(prefs.KeyGrid, snap.Grid))
	s.SetBatchSize(p.IntWithFallback(prefs.KeyBatchSize, snap.BatchSize))

	ticks := snap.Ticks
	if v := p.IntWithFallback(prefs.KeyXMajorTick, ticks.XMajor); v > 0 {
		ticks.XMajor = v
	}
	if v := p.IntWithFallback(prefs.KeyXMinorTick, ticks.XMinor); v > 0 {
		ticks.XMinor = v
	}
	if v := p.FloatWithFallback(prefs.KeyYMajorTick, ticks.YMajor); v > 0 {
		ticks.YMajor = v
	}
	if v := p.FloatWithFallback(prefs.KeyYMinorTick, ticks.YMinor); v > 0 {
		ticks.YMinor = v
	}
	s.SetTickSpacing(ticks)

	if wl := p.IntWithFallback(prefs.KeyReferenceLine, 0); inWavelengths(wl) {
		s.SetReferenceLine(true, wl)
	}
}

func inWavelengths(wl int) bool {
	return wl >= view.MinWavelength && wl <= view.MaxWavelength
}
