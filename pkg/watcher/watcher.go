// Package watcher notifies the viewer when scan files change on disk so
// the model can be reloaded without restarting.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches files and invokes a callback after a debounce interval.
// Editors and exporters often emit several write events per save; the
// debounce collapses them into one reload.
type Watcher struct {
	fs       *fsnotify.Watcher
	mu       sync.Mutex
	debounce time.Duration
	onChange func(string)
	watched  map[string]bool
	timers   map[string]*time.Timer
}

// New creates a watcher that calls onChange with the changed path
func New(debounce time.Duration, onChange func(string)) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		fs:       fs,
		debounce: debounce,
		onChange: onChange,
		watched:  make(map[string]bool),
		timers:   make(map[string]*time.Timer),
	}, nil
}

// Add starts watching a file
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	if err := w.fs.Add(abs); err != nil {
		return fmt.Errorf("failed to watch %s: %w", abs, err)
	}

	w.mu.Lock()
	w.watched[abs] = true
	w.mu.Unlock()
	return nil
}

// Start begins delivering change notifications
func (w *Watcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-w.fs.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					w.handleChange(event.Name)
				}

			case err, ok := <-w.fs.Errors:
				if !ok {
					return
				}
				fmt.Printf("Watcher error: %v\n", err)
			}
		}
	}()
}

func (w *Watcher) handleChange(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.watched[path] {
		return
	}
	if timer, ok := w.timers[path]; ok {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.onChange(path)
	})
}

// Close stops the watcher
func (w *Watcher) Close() error {
	w.mu.Lock()
	for _, timer := range w.timers {
		timer.Stop()
	}
	w.timers = make(map[string]*time.Timer)
	w.mu.Unlock()

	return w.fs.Close()
}
