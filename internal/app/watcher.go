package app

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches the loaded data file and triggers a callback when it
// is rewritten on disk. Bursts of events are collapsed into one callback
// after the debounce interval.
//
// The containing directory is watched rather than the file itself, so
// editors that replace the file by rename are still noticed.
type FileWatcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	dir      string
	debounce time.Duration
	timer    *time.Timer
	onChange func(path string) // Called from a background goroutine
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewFileWatcher creates a watcher and starts its event loop.
func NewFileWatcher(debounce time.Duration) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	fw := &FileWatcher{
		watcher:  w,
		debounce: debounce,
		stopCh:   make(chan struct{}),
	}
	go fw.watchLoop()
	return fw, nil
}

// OnChange sets the callback to invoke when the watched file changes.
func (fw *FileWatcher) OnChange(callback func(path string)) {
	fw.mu.Lock()
	fw.onChange = callback
	fw.mu.Unlock()
}

// Watch switches the watcher to path.
func (fw *FileWatcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if dir != fw.dir {
		if fw.dir != "" {
			_ = fw.watcher.Remove(fw.dir)
		}
		if err := fw.watcher.Add(dir); err != nil {
			fw.dir = ""
			return err
		}
		fw.dir = dir
	}
	fw.path = abs
	return nil
}

// Stop stops the event loop and releases the watcher. It is safe to call
// more than once.
func (fw *FileWatcher) Stop() {
	fw.stopOnce.Do(func() {
		fw.mu.Lock()
		if fw.timer != nil {
			fw.timer.Stop()
		}
		fw.mu.Unlock()
		close(fw.stopCh)
		fw.watcher.Close()
	})
}

func (fw *FileWatcher) watchLoop() {
	for {
		select {
		case <-fw.stopCh:
			return
		case ev, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			fw.handle(ev)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher: %v", err)
		}
	}
}

func (fw *FileWatcher) handle(ev fsnotify.Event) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return
	}

	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.path == "" || filepath.Clean(ev.Name) != fw.path {
		return
	}
	if fw.timer != nil {
		fw.timer.Stop()
	}
	path, callback := fw.path, fw.onChange
	fw.timer = time.AfterFunc(fw.debounce, func() {
		if callback != nil {
			callback(path)
		}
	})
}
