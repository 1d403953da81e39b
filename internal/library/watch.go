package library

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultSettleDelay is how long a file must stay quiet before it is
// reloaded.
const DefaultSettleDelay = 200 * time.Millisecond

// ChangeKind classifies a library change.
type ChangeKind int

const (
	ChangeLoaded ChangeKind = iota
	ChangeRemoved
	ChangeFailed
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeLoaded:
		return "loaded"
	case ChangeRemoved:
		return "removed"
	case ChangeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Change is reported for every book the watcher reloads or drops.
type Change struct {
	Kind ChangeKind
	Path string
	Doc  *Document // set for ChangeLoaded
	Err  error     // set for ChangeFailed
}

// WatchOptions tunes Watch.
type WatchOptions struct {
	SettleDelay time.Duration
}

// Watch reloads books as their files change until ctx is cancelled. Writes
// are debounced per file; a file whose content digest did not change is not
// reported. onChange is called from a single goroutine.
func (lib *Library) Watch(ctx context.Context, opts WatchOptions, onChange func(Change)) error {
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = DefaultSettleDelay
	}
	if onChange == nil {
		onChange = func(Change) {}
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer w.Close()

	if err := lib.watchTree(w, lib.dir); err != nil {
		return err
	}

	d := &debouncer{
		delay:   opts.SettleDelay,
		timers:  make(map[string]*time.Timer),
		settled: make(chan string, 16),
		done:    make(chan struct{}),
	}
	defer d.stopAll()

	lib.log.Info("watching library", "dir", lib.dir)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			lib.handleEvent(w, d, event, onChange)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			lib.log.Warn("watcher error", "error", err)
		case path := <-d.settled:
			lib.apply(path, onChange)
		}
	}
}

func (lib *Library) watchTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			lib.log.Warn("failed to access path", "path", p, "error", err)
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if p != lib.dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.Add(p); err != nil {
			return fmt.Errorf("watching %s: %w", p, err)
		}
		lib.log.Debug("added watch", "path", p)
		return nil
	})
}

func (lib *Library) handleEvent(w *fsnotify.Watcher, d *debouncer, event fsnotify.Event, onChange func(Change)) {
	path := filepath.Clean(event.Name)

	if event.Has(fsnotify.Create) {
		if info, err := statDir(path); err == nil && info {
			if err := lib.watchTree(w, path); err != nil {
				lib.log.Warn("failed to watch new directory", "path", path, "error", err)
			}
			return
		}
	}

	if !IsBookFile(path) {
		return
	}

	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		d.cancel(path)
		if lib.Remove(path) {
			onChange(Change{Kind: ChangeRemoved, Path: path})
		}
		return
	}

	if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
		d.schedule(path)
	}
}

func (lib *Library) apply(path string, onChange func(Change)) {
	if !exists(path) {
		if lib.Remove(path) {
			onChange(Change{Kind: ChangeRemoved, Path: path})
		}
		return
	}

	changed, err := lib.Reload(path)
	if err != nil {
		onChange(Change{Kind: ChangeFailed, Path: path, Err: err})
		return
	}
	if changed {
		doc, _ := lib.Get(path)
		onChange(Change{Kind: ChangeLoaded, Path: path, Doc: doc})
	}
}

// debouncer delivers a path on settled once no event has touched it for
// delay.
type debouncer struct {
	delay   time.Duration
	mu      sync.Mutex
	timers  map[string]*time.Timer
	settled chan string
	done    chan struct{}
}

func (d *debouncer) schedule(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.timers[path]; ok {
		t.Stop()
	}
	d.timers[path] = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		delete(d.timers, path)
		d.mu.Unlock()

		select {
		case d.settled <- path:
		case <-d.done:
		}
	})
}

func (d *debouncer) cancel(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.timers[path]; ok {
		t.Stop()
		delete(d.timers, path)
	}
}

func (d *debouncer) stopAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for p, t := range d.timers {
		t.Stop()
		delete(d.timers, p)
	}
	close(d.done)
}
