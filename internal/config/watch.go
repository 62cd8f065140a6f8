package config

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads a config file whenever it changes on disk.
type Watcher struct {
	path    string
	log     *zap.Logger
	watcher *fsnotify.Watcher
	updates chan *Config
	done    chan struct{}
}

// reloadDelay coalesces the burst of events editors produce on save.
const reloadDelay = 150 * time.Millisecond

// Watch starts watching path. The directory is watched rather than the file
// so that editors which replace the file on save are still seen.
func Watch(path string, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    abs,
		log:     log,
		watcher: fw,
		updates: make(chan *Config, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Updates delivers each successfully reloaded config. Only the newest
// pending config is kept.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Close stops watching.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	var timer <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				timer = time.After(reloadDelay)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("config watcher error", zap.Error(err))
		case <-timer:
			timer = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Reload(w.path)
	if err != nil {
		w.log.Warn("config reload rejected", zap.String("path", w.path), zap.Error(err))
		return
	}
	w.log.Info("config reloaded", zap.String("path", w.path))

	// Drop a stale pending update so the reader always sees the latest.
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
}
