package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/lixenwraith/rewind/core"
)

// Watcher reloads a config file whenever it changes on disk
// Editors often replace the file instead of writing it, so the parent directory is watched
type Watcher struct {
	path     string
	fs       *fsnotify.Watcher
	onReload func(*Config)
	done     chan struct{}
}

// Watch starts delivering every successfully reloaded configuration to onReload
// A reload that fails to parse or validate is logged and the previous settings stay in effect
func Watch(path string, onReload func(*Config)) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fs.Close()
		return nil, fmt.Errorf("watch config: %w", err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watch config: %w", err)
	}

	w := &Watcher{
		path:     abs,
		fs:       fs,
		onReload: onReload,
		done:     make(chan struct{}),
	}
	core.Go(w.loop)
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				log.Printf("Config reload skipped: %v", err)
				continue
			}
			log.Printf("Config reloaded from %s", w.path)
			w.onReload(cfg)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Printf("Config watch error: %v", err)
		}
	}
}

// Close stops watching and waits for an in-flight reload to finish
func (w *Watcher) Close() error {
	err := w.fs.Close()
	<-w.done
	return err
}
