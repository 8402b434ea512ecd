package config

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher reloads the config file when it changes on disk
// Editors often replace files instead of writing them, so the parent
// directory is watched and events are filtered by name
type Watcher struct {
	Updates <-chan Config // Only valid configs are delivered

	loader  *Loader
	file    string
	updates chan Config
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher watches the file the loader last read
func NewWatcher(loader *Loader) (*Watcher, error) {
	file := loader.ConfigFileUsed()
	if file == "" {
		return nil, fmt.Errorf("watch config: no config file loaded")
	}
	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}

	ch := make(chan Config, 1)
	return &Watcher{
		Updates: ch,
		loader:  loader,
		file:    abs,
		updates: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.file)); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and the Updates channel
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.updates)
}

func (w *Watcher) loop() {
	defer close(w.done)

	var pending time.Time
	ticker := time.NewTicker(reloadDebounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.file {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending = time.Now()
			}

		case now := <-ticker.C:
			if pending.IsZero() || now.Sub(pending) < reloadDebounce {
				continue
			}
			pending = time.Time{}
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("config: watch error: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := w.loader.Load()
	if err != nil {
		log.Printf("config: reload rejected: %v", err)
		return
	}
	log.Printf("config: reloaded %s", w.file)

	// Keep only the newest config if the consumer is behind
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
}
