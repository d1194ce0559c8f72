// Package canvas provides the chart widget that displays rendered spectra.
package canvas

import (
	"image"
	"sync"

	"spectra-viewer/internal/chart"
	"spectra-viewer/internal/view"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// EmptyMessage is shown until a table has been loaded.
const EmptyMessage = "Load a CSV file to view spectra"

// ChartCanvas draws a view.RenderRequest into a raster that follows the
// widget size. Pointer positions inside the plot area are reported in data
// coordinates.
type ChartCanvas struct {
	widget.BaseWidget

	raster *fynecanvas.Raster

	mu         sync.Mutex
	request    view.RenderRequest
	hasRequest bool
	message    string

	// Pixel size of the last raster draw, used to scale pointer events.
	lastW, lastH int

	onLocate func(wavelength, reflectance float64)
	onHover  func(wavelength, reflectance float64, inside bool)
}

// NewChartCanvas creates an empty chart canvas.
func NewChartCanvas() *ChartCanvas {
	cc := &ChartCanvas{message: EmptyMessage}

	cc.raster = fynecanvas.NewRaster(cc.draw)
	cc.raster.ScaleMode = fynecanvas.ImageScalePixels
	cc.raster.SetMinSize(fyne.NewSize(480, 320))

	cc.ExtendBaseWidget(cc)
	return cc
}

// Container returns the canvas as a layout object.
func (cc *ChartCanvas) Container() fyne.CanvasObject {
	return cc
}

// SetRequest replaces what the chart shows and redraws it.
func (cc *ChartCanvas) SetRequest(req view.RenderRequest) {
	cc.mu.Lock()
	cc.request = req
	cc.hasRequest = true
	cc.mu.Unlock()
	cc.Refresh()
}

// Clear shows msg instead of a chart. An empty msg restores the default.
func (cc *ChartCanvas) Clear(msg string) {
	if msg == "" {
		msg = EmptyMessage
	}
	cc.mu.Lock()
	cc.hasRequest = false
	cc.message = msg
	cc.mu.Unlock()
	cc.Refresh()
}

// Request returns the current request, if any.
func (cc *ChartCanvas) Request() (view.RenderRequest, bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.request, cc.hasRequest
}

// OnLocate sets the callback for clicks inside the plot area.
func (cc *ChartCanvas) OnLocate(callback func(wavelength, reflectance float64)) {
	cc.onLocate = callback
}

// OnHover sets the callback for pointer movement. inside is false when the
// pointer leaves the plot area.
func (cc *ChartCanvas) OnHover(callback func(wavelength, reflectance float64, inside bool)) {
	cc.onHover = callback
}

// Refresh redraws the chart.
func (cc *ChartCanvas) Refresh() {
	cc.raster.Refresh()
}

// draw is the raster drawing function.
func (cc *ChartCanvas) draw(w, h int) image.Image {
	cc.mu.Lock()
	cc.lastW, cc.lastH = w, h
	req, ok, msg := cc.request, cc.hasRequest, cc.message
	cc.mu.Unlock()

	if !ok {
		return chart.RenderMessage(msg, w, h)
	}
	return chart.Render(req, w, h)
}

// locate maps a widget position to data coordinates.
func (cc *ChartCanvas) locate(pos fyne.Position) (float64, float64, bool) {
	cc.mu.Lock()
	req, ok, w, h := cc.request, cc.hasRequest, cc.lastW, cc.lastH
	cc.mu.Unlock()
	if !ok || w <= 0 || h <= 0 {
		return 0, 0, false
	}

	size := cc.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return 0, 0, false
	}
	// Reject positions outside the widget bounds.
	if pos.X < 0 || pos.Y < 0 || pos.X > size.Width || pos.Y > size.Height {
		return 0, 0, false
	}

	px := float64(pos.X) * float64(w) / float64(size.Width)
	py := float64(pos.Y) * float64(h) / float64(size.Height)
	return chart.Locate(req, w, h, px, py)
}

// Tapped reports the data coordinates under a left click.
func (cc *ChartCanvas) Tapped(ev *fyne.PointEvent) {
	if cc.onLocate == nil {
		return
	}
	if wl, r, ok := cc.locate(ev.Position); ok {
		cc.onLocate(wl, r)
	}
}

// MouseIn implements desktop.Hoverable.
func (cc *ChartCanvas) MouseIn(ev *desktop.MouseEvent) {
	cc.MouseMoved(ev)
}

// MouseMoved implements desktop.Hoverable.
func (cc *ChartCanvas) MouseMoved(ev *desktop.MouseEvent) {
	if cc.onHover == nil {
		return
	}
	wl, r, ok := cc.locate(ev.Position)
	cc.onHover(wl, r, ok)
}

// MouseOut implements desktop.Hoverable.
func (cc *ChartCanvas) MouseOut() {
	if cc.onHover != nil {
		cc.onHover(0, 0, false)
	}
}

// CreateRenderer implements fyne.Widget.
func (cc *ChartCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &chartCanvasRenderer{canvas: cc}
}

type chartCanvasRenderer struct {
	canvas *ChartCanvas
}

func (r *chartCanvasRenderer) Layout(size fyne.Size) {
	r.canvas.raster.Resize(size)
}

func (r *chartCanvasRenderer) MinSize() fyne.Size {
	return r.canvas.raster.MinSize()
}

func (r *chartCanvasRenderer) Refresh() {
	r.canvas.raster.Refresh()
}

func (r *chartCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.raster}
}

func (r *chartCanvasRenderer) Destroy() {}
