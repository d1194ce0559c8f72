// Package app provides application state, events, file watching and theming.
package app

import (
	"log"
	"sync"

	"spectra-viewer/internal/spectra"
	"spectra-viewer/internal/view"
)

// State holds the application state: the view configuration, the loaded
// file and the event listeners.
//
// Every mutator changes the view and queues its events under one lock.
// Queued events are delivered one at a time, in order, and each event
// reaches all of its listeners before the next one starts. Whichever
// goroutine finds the queue idle delivers it; a mutator called while
// another goroutine (or an enclosing listener) is delivering returns once
// its events are queued.
type State struct {
	mu sync.Mutex

	view     *view.State
	filePath string

	listeners   map[EventType][]EventListener
	pending     []pendingEvent
	dispatching bool
}

type pendingEvent struct {
	event EventType
	data  interface{}
}

// EventType identifies different application events.
type EventType int

const (
	// EventTableLoaded carries the loaded file path.
	EventTableLoaded EventType = iota
	// EventLoadFailed carries the load error. The previous table is kept.
	EventLoadFailed
	// EventViewChanged fires after any change that affects the chart.
	EventViewChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates a new application state with no table loaded.
func NewState() *State {
	return &State{
		view:      view.NewState(),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.Lock()
	s.queueLocked(event, data)
	s.mu.Unlock()
	s.dispatch()
}

// queueLocked appends an event to the delivery queue. s.mu must be held.
func (s *State) queueLocked(event EventType, data interface{}) {
	s.pending = append(s.pending, pendingEvent{event: event, data: data})
}

// dispatch delivers queued events until the queue is empty, unless another
// call is already doing so.
func (s *State) dispatch() {
	s.mu.Lock()
	if s.dispatching {
		s.mu.Unlock()
		return
	}
	s.dispatching = true
	defer func() {
		s.dispatching = false
		s.mu.Unlock()
	}()

	for len(s.pending) > 0 {
		ev := s.pending[0]
		s.pending = s.pending[1:]
		listeners := append([]EventListener(nil), s.listeners[ev.event]...)

		s.mu.Unlock()
		for _, listener := range listeners {
			listener(ev.data)
		}
		s.mu.Lock()
	}
}

// LoadFile reads a spectra file and makes it the current table.
func (s *State) LoadFile(path string) error {
	table, err := spectra.LoadFile(path)
	if err != nil {
		log.Printf("Load failed: %v", err)
		s.Emit(EventLoadFailed, err)
		return err
	}

	s.mu.Lock()
	s.view.Load(table)
	s.filePath = path
	s.queueLocked(EventTableLoaded, path)
	s.queueLocked(EventViewChanged, nil)
	s.mu.Unlock()

	log.Printf("Loaded %s: %d spectra, %d rows", path, table.NumSpectra(), table.NumRows())
	s.dispatch()
	return nil
}

// Reload re-reads the current file. It does nothing if no file is loaded.
func (s *State) Reload() error {
	path := s.FilePath()
	if path == "" {
		return nil
	}
	return s.LoadFile(path)
}

// FilePath returns the path of the loaded file, or "".
func (s *State) FilePath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filePath
}

// update applies fn to the view under the lock and announces the change.
func (s *State) update(fn func(v *view.State)) {
	s.mu.Lock()
	fn(s.view)
	s.queueLocked(EventViewChanged, nil)
	s.mu.Unlock()
	s.dispatch()
}

// Next shows the following page of spectra.
func (s *State) Next() {
	s.update(func(v *view.State) { v.Navigate(view.Next) })
}

// Previous shows the preceding page of spectra.
func (s *State) Previous() {
	s.update(func(v *view.State) { v.Navigate(view.Previous) })
}

// SetMode switches between single and batch display.
func (s *State) SetMode(m view.Mode) {
	s.update(func(v *view.State) {
		v.SetMode(m)
		v.Clamp()
	})
}

// SetBatchSize sets the number of spectra shown in multiple mode.
func (s *State) SetBatchSize(n int) {
	s.update(func(v *view.State) {
		v.SetBatchSize(n)
		v.Clamp()
	})
}

// SetXRange sets the visible wavelength interval.
func (s *State) SetXRange(lo, hi int) {
	s.update(func(v *view.State) { v.SetXRange(lo, hi) })
}

// SetYRange sets the visible reflectance interval.
func (s *State) SetYRange(lo, hi float64) {
	s.update(func(v *view.State) { v.SetYRange(lo, hi) })
}

// SetGrid turns grid lines on or off.
func (s *State) SetGrid(enabled bool) {
	s.update(func(v *view.State) { v.SetGrid(enabled) })
}

// SetReferenceLine configures the vertical marker.
func (s *State) SetReferenceLine(enabled bool, wavelength int) {
	s.update(func(v *view.State) { v.SetReferenceLine(enabled, wavelength) })
}

// SetTickSpacing sets the tick multiples of both axes.
func (s *State) SetTickSpacing(t view.TickSpacing) {
	s.update(func(v *view.State) { v.SetTickSpacing(t) })
}

// Snapshot is a read-only copy of the view settings for widgets.
type Snapshot struct {
	Mode          view.Mode
	BatchSize     int
	XRange        view.IntRange
	YRange        view.FloatRange
	Grid          bool
	ReferenceLine view.ReferenceLine
	Ticks         view.TickSpacing

	PageLabel   string
	CanPrevious bool
	CanNext     bool
	Table       *spectra.Table
}

// Snapshot returns the current view settings.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.view
	return Snapshot{
		Mode:          v.Mode(),
		BatchSize:     v.BatchSize(),
		XRange:        v.XRange(),
		YRange:        v.YRange(),
		Grid:          v.Grid(),
		ReferenceLine: v.ReferenceLine(),
		Ticks:         v.TickSpacing(),
		PageLabel:     v.PageLabel(),
		CanPrevious:   v.CanNavigate(view.Previous),
		CanNext:       v.CanNavigate(view.Next),
		Table:         v.Table(),
	}
}

// RenderRequest returns the chart for the current view. ok is false
// before a table is loaded.
func (s *State) RenderRequest() (view.RenderRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.RenderRequest()
}
