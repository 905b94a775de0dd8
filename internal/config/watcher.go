package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultReloadDelay coalesces the burst of events an editor produces
// when saving.
const DefaultReloadDelay = 100 * time.Millisecond

// Update is the result of a reload.
type Update struct {
	Config *Config
	Err    error
}

// Watcher reloads the config file whenever it changes on disk.
//
// The parent directory is watched rather than the file itself so that
// editors that save by renaming a temporary file are seen too.
type Watcher struct {
	loader *Loader
	delay  time.Duration
	fsw    *fsnotify.Watcher
	file   string

	updates chan Update

	mu       sync.Mutex
	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// NewWatcher starts watching the loader's file. A zero delay uses
// DefaultReloadDelay.
func NewWatcher(loader *Loader, delay time.Duration) (*Watcher, error) {
	if loader.Path() == "" {
		return nil, fmt.Errorf("watching config: no file configured")
	}
	if delay <= 0 {
		delay = DefaultReloadDelay
	}

	file, err := filepath.Abs(loader.Path())
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(file)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(file), err)
	}

	w := &Watcher{
		loader:  loader,
		delay:   delay,
		fsw:     fsw,
		file:    file,
		updates: make(chan Update, 1),
		closeCh: make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Updates delivers one Update per settled change. The channel is closed
// by Close.
func (w *Watcher) Updates() <-chan Update {
	return w.updates
}

// Close stops the watcher.
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
	return w.fsw.Close()
}

func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	timer := time.NewTimer(w.delay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.file {
				continue
			}
			if ev.Op.Has(fsnotify.Chmod) && !ev.Op.Has(fsnotify.Write) {
				continue
			}
			timer.Reset(w.delay)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.send(Update{Err: err})

		case <-timer.C:
			cfg, err := w.loader.Load()
			w.send(Update{Config: cfg, Err: err})
		}
	}
}

// send replaces an undelivered update with the newer one.
func (w *Watcher) send(u Update) {
	for {
		select {
		case w.updates <- u:
			return
		default:
		}
		select {
		case <-w.updates:
		default:
		}
	}
}
