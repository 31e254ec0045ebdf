package config

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it changes on disk.
// Reloaded configurations are delivered on Changes; only the newest pending one is kept,
// so a consumer that drains once per frame never sees a stale file.
type Watcher struct {
	mu      sync.Mutex
	path    string
	fsw     *fsnotify.Watcher
	changes chan Config
	done    chan struct{}
	wg      sync.WaitGroup
	closed  bool
}

// NewWatcher starts watching path. The parent directory is watched rather than the file,
// since editors commonly replace a file instead of writing it in place.
//
// Parameters:
//   - path: the config file to watch
//
// Returns:
//   - *Watcher: the running watcher
//   - error: error if the directory cannot be watched
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		fsw:     fsw,
		changes: make(chan Config, 1),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Changes returns the channel reloaded configurations are delivered on.
func (w *Watcher) Changes() <-chan Config {
	return w.changes
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("[Config] watcher error: %v", err)
		}
	}
}

// reload parses the file and publishes it, replacing any undelivered configuration.
// A file that fails to load is logged and skipped; the previous configuration stays in effect.
func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		log.Printf("[Config] ignoring reload: %v", err)
		return
	}

	select {
	case <-w.changes:
	default:
	}
	select {
	case w.changes <- cfg:
	case <-w.done:
	}
}
