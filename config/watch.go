package config

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file when it changes on disk.
// Events are drained by Poll, so reloads happen on the caller's goroutine.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
}

// NewWatcher watches the directory holding path. Editors often replace files
// by rename, which a watch on the file itself would miss.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching config dir: %w", err)
	}
	return &Watcher{path: abs, watcher: fw}, nil
}

// Poll drains pending file events without blocking. It returns the reloaded
// config if the file changed, or nil if nothing happened. A config that fails
// to load is returned as an error and the caller keeps its current one.
func (w *Watcher) Poll() (*Config, error) {
	changed := false
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil, nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				changed = true
			}
		case err, ok := <-w.watcher.Errors:
			if ok && err != nil {
				return nil, fmt.Errorf("watching config: %w", err)
			}
		default:
			if !changed {
				return nil, nil
			}
			cfg, err := Load(w.path)
			if err != nil {
				return nil, err
			}
			slog.Info("config reloaded", "path", w.path)
			return cfg, nil
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
