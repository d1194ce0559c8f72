// Package mainwindow provides the main application window.
package mainwindow

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"spectra-viewer/internal/app"
	"spectra-viewer/internal/version"
	"spectra-viewer/ui/canvas"
	"spectra-viewer/ui/dialogs"
	"spectra-viewer/ui/panels"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const appTitle = "Spectra Viewer"

// File extensions offered by the open dialog.
var dataExtensions = []string{".csv", ".tsv", ".txt"}

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app   fyne.App
	state *app.State

	canvas     *canvas.ChartCanvas
	navigation *panels.NavigationBar
	axes       *panels.AxesPanel
	ticks      *panels.TickToolbar

	// Status bar
	fileLabel   *widget.Label
	pageLabel   *widget.Label
	extentLabel *widget.Label
	cursorLabel *widget.Label

	// Menu items that need state tracking
	mainMenu      *fyne.MainMenu
	gridItem      *fyne.MenuItem
	referenceItem *fyne.MenuItem
	reloadItem    *fyne.MenuItem

	watcher *app.FileWatcher
}

// New creates a new main window. watcher may be nil to disable automatic
// reloading.
func New(fyneApp fyne.App, state *app.State, watcher *app.FileWatcher) *MainWindow {
	win := fyneApp.NewWindow(appTitle)

	mw := &MainWindow{
		Window:  win,
		app:     fyneApp,
		state:   state,
		watcher: watcher,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.refresh()

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewChartCanvas()
	mw.canvas.OnHover(mw.onHover)
	mw.canvas.OnLocate(func(wavelength, reflectance float64) {
		log.Printf("Picked %.1f nm, reflectance %.4f", wavelength, reflectance)
	})

	mw.navigation = panels.NewNavigationBar(mw.state, mw.onOpen)
	mw.axes = panels.NewAxesPanel(mw.state)
	mw.ticks = panels.NewTickToolbar(mw.state)

	mw.fileLabel = widget.NewLabel("No file loaded")
	mw.pageLabel = widget.NewLabel("")
	mw.extentLabel = widget.NewLabel("")
	mw.cursorLabel = widget.NewLabel("")
	statusBar := container.NewHBox(
		mw.fileLabel,
		widget.NewSeparator(),
		mw.pageLabel,
		widget.NewSeparator(),
		mw.extentLabel,
		widget.NewSeparator(),
		mw.cursorLabel,
	)

	// Chart with the tick toolbar above and navigation below
	chartArea := container.NewBorder(
		mw.ticks.Container(),
		mw.navigation.Container(),
		nil,
		container.NewVScroll(mw.axes.Container()),
		mw.canvas.Container(),
	)

	content := container.NewBorder(
		nil,                            // top
		container.NewPadded(statusBar), // bottom
		nil,                            // left
		nil,                            // right
		chartArea,                      // center
	)

	mw.SetContent(content)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	mw.reloadItem = fyne.NewMenuItem("Reload", mw.onReload)
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open...", mw.onOpen),
		mw.reloadItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	mw.gridItem = fyne.NewMenuItem("Grid", func() {
		mw.state.SetGrid(!mw.state.Snapshot().Grid)
	})
	mw.referenceItem = fyne.NewMenuItem("Reference Line", func() {
		ref := mw.state.Snapshot().ReferenceLine
		mw.state.SetReferenceLine(!ref.Enabled, ref.Wavelength)
	})
	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Previous", mw.state.Previous),
		fyne.NewMenuItem("Next", mw.state.Next),
		fyne.NewMenuItemSeparator(),
		mw.gridItem,
		mw.referenceItem,
		fyne.NewMenuItem("Tick Spacing...", mw.onTickSpacing),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.mainMenu = fyne.NewMainMenu(fileMenu, viewMenu, helpMenu)
	mw.SetMainMenu(mw.mainMenu)
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventTableLoaded, func(data interface{}) {
		path, ok := data.(string)
		if !ok {
			return
		}
		mw.SetTitle(appTitle + " - " + filepath.Base(path))
		mw.fileLabel.SetText(filepath.Base(path))
		if mw.watcher != nil {
			if err := mw.watcher.Watch(path); err != nil {
				log.Printf("Watch %s: %v", path, err)
			}
		}
	})

	mw.state.On(app.EventLoadFailed, func(data interface{}) {
		err, ok := data.(error)
		if !ok {
			err = errors.New("load failed")
		}
		dialog.ShowError(err, mw.Window)
	})

	mw.state.On(app.EventViewChanged, func(data interface{}) {
		mw.refresh()
	})

	if mw.watcher != nil {
		mw.watcher.OnChange(func(path string) {
			log.Printf("File changed, reloading %s", path)
			mw.state.Reload()
		})
	}
}

// refresh brings the chart, panels, menus and status bar in line with
// the application state.
func (mw *MainWindow) refresh() {
	snap := mw.state.Snapshot()

	if req, ok := mw.state.RenderRequest(); ok {
		mw.canvas.SetRequest(req)
	} else {
		mw.canvas.Clear("")
	}

	mw.navigation.Sync(snap)
	mw.axes.Sync(snap)
	mw.ticks.Sync(snap)

	mw.pageLabel.SetText(snap.PageLabel)
	mw.extentLabel.SetText(extentText(snap))

	mw.gridItem.Checked = snap.Grid
	mw.referenceItem.Checked = snap.ReferenceLine.Enabled
	mw.reloadItem.Disabled = snap.Table == nil
	mw.mainMenu.Refresh()
}

func extentText(snap app.Snapshot) string {
	lo, hi, ok := snap.Table.WavelengthExtent()
	if !ok {
		return ""
	}
	return fmt.Sprintf("Data %g-%g nm", lo, hi)
}

func (mw *MainWindow) onHover(wavelength, reflectance float64, inside bool) {
	if !inside {
		mw.cursorLabel.SetText("")
		return
	}
	mw.cursorLabel.SetText(fmt.Sprintf("%.1f nm, %.4f", wavelength, reflectance))
}

// Menu action handlers

func (mw *MainWindow) onOpen() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		if reader == nil {
			return
		}
		reader.Close()
		// Failures are reported through EventLoadFailed.
		mw.state.LoadFile(reader.URI().Path())
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter(dataExtensions))
	if loc := mw.currentDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Resize(fyne.NewSize(800, 560))
	fd.Show()
}

// currentDir returns the directory of the loaded file as a ListableURI,
// or nil.
func (mw *MainWindow) currentDir() fyne.ListableURI {
	path := mw.state.FilePath()
	if path == "" {
		return nil
	}
	uri := storage.NewFileURI(filepath.Dir(path))
	listable, err := storage.ListerForURI(uri)
	if err != nil {
		return nil
	}
	return listable
}

func (mw *MainWindow) onReload() {
	mw.state.Reload()
}

func (mw *MainWindow) onTickSpacing() {
	dialogs.NewTickSpacingDialog(mw.state.Snapshot().Ticks, mw.Window, mw.state.SetTickSpacing).Show()
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About "+appTitle,
		fmt.Sprintf("%s v%s\n\n"+
			"Pages through spectral reflectance tables.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			appTitle, version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
