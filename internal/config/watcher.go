// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces the burst of events editors emit for one save.
const debounceWindow = 250 * time.Millisecond

// Watcher reloads the config file when it changes on disk and hands the
// result to a callback. Invalid intermediate states (mid-save, syntax
// errors) are skipped silently; the previous config stays in effect.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// Watch starts watching path and calls onReload with each successfully
// loaded config. The parent directory is watched, not the file itself:
// atomic saves replace the file and would break a direct file watch.
func Watch(path string, onReload func(*Config)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    path,
		watcher: fsw,
		done:    make(chan struct{}),
	}

	go w.loop(onReload)
	return w, nil
}

func (w *Watcher) loop(onReload func(*Config)) {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
				timerC = timer.C
			} else {
				timer.Reset(debounceWindow)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			if cfg, err := LoadFrom(w.path); err == nil {
				onReload(cfg)
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the running config stays.

		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
