package watch

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 100 * time.Millisecond

// Watcher reconverts SVG files in Dir whenever they are created or written.
type Watcher struct {
	Dir       string
	Converter *Converter
	Debounce  time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
}

func NewWatcher(dir string, conv *Converter) *Watcher {
	return &Watcher{
		Dir:       dir,
		Converter: conv,
		Debounce:  DefaultDebounce,
		timers:    make(map[string]*time.Timer),
	}
}

// Run blocks until ctx is cancelled. Each burst of events for one file
// triggers a single conversion once the file has been quiet for Debounce.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(w.Dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.Dir, err)
	}

	defer w.stopTimers()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !IsSVG(event.Name) {
				continue
			}
			w.schedule(event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watcher error: %v", err)
		}
	}
}

func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timers == nil {
		w.timers = make(map[string]*time.Timer)
	}
	if t, ok := w.timers[path]; ok {
		t.Stop()
	}

	w.timers[path] = time.AfterFunc(w.Debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()

		target, err := w.Converter.ConvertFile(path)
		if err != nil {
			log.Printf("convert %s: %v", path, err)
			w.Converter.notifier().Failure("Failed", err.Error())
			return
		}
		w.Converter.notifier().Success("Regenerated", fmt.Sprintf("%s → %s", filepath.Base(path), target))
	})
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for p, t := range w.timers {
		t.Stop()
		delete(w.timers, p)
	}
}
