package keymap

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned when operating on a closed watcher.
var ErrWatcherClosed = errors.New("keymap watcher closed")

// DefaultReloadDelay coalesces the burst of events editors emit on save.
const DefaultReloadDelay = 100 * time.Millisecond

// Watcher reloads a keymap file when it changes on disk.
//
// The containing directory is watched so that atomic saves (write to a
// temporary file, then rename) are seen. Each reload is fully validated;
// a valid table is delivered on Updates, a rejected one on Errors, and the
// consumer keeps its previous table in that case.
type Watcher struct {
	mu sync.Mutex

	path  string
	base  string
	delay time.Duration

	fsw *fsnotify.Watcher

	updates chan *Table
	errors  chan error

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// NewWatcher starts watching the keymap file at path. A non-positive delay
// selects DefaultReloadDelay.
func NewWatcher(path string, delay time.Duration) (*Watcher, error) {
	if delay <= 0 {
		delay = DefaultReloadDelay
	}
	if _, err := FormatFromPath(path); err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    absPath,
		base:    filepath.Base(absPath),
		delay:   delay,
		fsw:     fsw,
		updates: make(chan *Table, 1),
		errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Updates delivers freshly loaded tables.
func (w *Watcher) Updates() <-chan *Table {
	return w.updates
}

// Errors delivers load and watch failures.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.closedWg.Wait()

	close(w.updates)
	close(w.errors)

	return w.fsw.Close()
}

func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != w.base {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.delay)
			} else {
				timer.Reset(w.delay)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.send(nil, err)
		}
	}
}

func (w *Watcher) reload() {
	t, err := LoadFile(w.path)
	w.send(t, err)
}

func (w *Watcher) send(t *Table, err error) {
	if err != nil {
		select {
		case w.errors <- err:
		case <-w.closeCh:
		}
		return
	}
	select {
	case w.updates <- t:
	case <-w.closeCh:
	}
}
