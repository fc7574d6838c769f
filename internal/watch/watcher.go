// Package watch turns filesystem change events under the scanned root
// into coalesced catalog-refresh signals.
package watch

import (
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"gadget/internal/log"
)

// Watcher monitors a directory tree with fsnotify and emits one
// refresh signal per burst of changes.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	refresh   chan struct{}
	stopChan  chan struct{}
	debounce  time.Duration

	mutex   sync.Mutex
	running bool
}

// New creates a watcher that coalesces change bursts over the given
// window.
func New(debounce time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		fsWatcher: fsWatcher,
		refresh:   make(chan struct{}, 1),
		stopChan:  make(chan struct{}),
		debounce:  debounce,
	}, nil
}

// Watch registers the root and every directory currently under it.
// Directories created later are picked up from their create events.
func (w *Watcher) Watch(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree, skip
		}
		if !d.IsDir() {
			return nil
		}
		if addErr := w.fsWatcher.Add(path); addErr != nil {
			log.LogWithFields(log.F("path", path), log.F("error", addErr)).
				Debugf("could not watch directory")
		}
		return nil
	})
}

// Refresh returns the channel that receives one signal per coalesced
// change burst.
func (w *Watcher) Refresh() <-chan struct{} {
	return w.refresh
}

// Start begins dispatching events. It is a no-op if already running.
func (w *Watcher) Start() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.running {
		return
	}
	w.running = true
	go w.loop()
}

// Stop shuts the watcher down.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if !w.running {
		return
	}
	w.running = false
	close(w.stopChan)
	w.fsWatcher.Close()
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			// New directories join the watch so nested changes are seen.
			if event.Op.Has(fsnotify.Create) {
				if err := w.fsWatcher.Add(event.Name); err == nil {
					log.LogWithFields(log.F("path", event.Name)).Debugf("watching new entry")
				}
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			select {
			case w.refresh <- struct{}{}:
			default: // a refresh is already pending
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err)).Warnf("watcher error")

		case <-w.stopChan:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}
