// Package prefs provides read-only JSON startup configuration.
//
// The file is never written by the application; settings changed in the
// window last for the session only.
package prefs

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const prefsFile = "config.json"

// Keys understood by the viewer.
const (
	KeyWindowWidth   = "window_width"
	KeyWindowHeight  = "window_height"
	KeyXMin          = "x_min"
	KeyXMax          = "x_max"
	KeyYMin          = "y_min"
	KeyYMax          = "y_max"
	KeyGrid          = "grid"
	KeyBatchSize     = "batch_size"
	KeyXMajorTick    = "x_major_tick"
	KeyXMinorTick    = "x_minor_tick"
	KeyYMajorTick    = "y_major_tick"
	KeyYMinorTick    = "y_minor_tick"
	KeyReferenceLine = "reference_wavelength"
	KeyWatchFile     = "watch_file"
)

// Prefs stores configuration values as a key-value map.
type Prefs struct {
	mu     sync.RWMutex
	values map[string]interface{}
	path   string
}

// Load reads ~/.config/spectra-viewer/config.json.
// Returns an empty Prefs if the file doesn't exist.
func Load() *Prefs {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return LoadFrom(filepath.Join(configDir, "spectra-viewer", prefsFile))
}

// LoadFrom reads configuration from path. A missing or malformed file
// yields an empty Prefs.
func LoadFrom(path string) *Prefs {
	p := &Prefs{
		values: make(map[string]interface{}),
		path:   path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	if err := json.Unmarshal(data, &p.values); err != nil {
		log.Printf("Ignoring config %s: %v", path, err)
		p.values = make(map[string]interface{})
	}
	return p
}

// Path returns the file the values were read from.
func (p *Prefs) Path() string {
	return p.path
}

// FloatWithFallback returns a float64 value, or fallback if not set.
func (p *Prefs) FloatWithFallback(key string, fallback float64) float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.values[key]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}
	return fallback
}

// IntWithFallback returns an integer value, or fallback if not set or
// not a whole number.
func (p *Prefs) IntWithFallback(key string, fallback int) int {
	f := p.FloatWithFallback(key, float64(fallback))
	if f != float64(int(f)) {
		return fallback
	}
	return int(f)
}

// Bool returns a bool value, or fallback if not set.
func (p *Prefs) Bool(key string, fallback bool) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.values[key]; ok {
		switch b := v.(type) {
		case bool:
			return b
		}
	}
	return fallback
}
