package gait

import (
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "gait",
})

// Watcher keeps a gait collection in sync with its file on disk. Writes to
// the file trigger a re-load; a file that fails to parse is logged and
// skipped, keeping the last good collection.
type Watcher struct {
	path string
	fsw  *fsnotify.Watcher

	mu    sync.RWMutex
	gaits map[string]Template
	subs  []chan map[string]Template

	done chan struct{}
}

// NewWatcher loads the collection at path and starts watching it for
// changes.
func NewWatcher(path string) (*Watcher, error) {
	gaits, err := LoadCollection(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:  path,
		fsw:   fsw,
		gaits: gaits,
		done:  make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Collection returns the most recently loaded gaits.
func (w *Watcher) Collection() map[string]Template {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.gaits
}

// Subscribe returns a channel receiving each successfully reloaded
// collection. Slow subscribers miss updates rather than blocking the
// watcher.
func (w *Watcher) Subscribe() <-chan map[string]Template {
	ch := make(chan map[string]Template, 1)
	w.mu.Lock()
	w.subs = append(w.subs, ch)
	w.mu.Unlock()
	return ch
}

// Close stops watching. The collection remains readable.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			w.reload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.WithError(err).Warn("watch error")
		}
	}
}

func (w *Watcher) reload() {
	gaits, err := LoadCollection(w.path)
	if err != nil {
		log.WithError(err).WithField("path", w.path).Warn("ignoring invalid gait file")
		return
	}

	w.mu.Lock()
	w.gaits = gaits
	subs := w.subs
	w.mu.Unlock()

	log.WithField("gaits", len(gaits)).Info("reloaded gait collection")
	for _, ch := range subs {
		select {
		case ch <- gaits:
		default:
		}
	}
}
