package config

import (
	"log"

	"github.com/fsnotify/fsnotify"

	"github.com/Gaurav-Gosain/tuios/internal/layout"
)

// Watcher reloads Options from disk whenever the file at its path
// changes, delivering each successfully parsed value on Changes.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	Changes chan *layout.Options
}

// NewWatcher starts watching path's parent directory (so the watch
// survives editors that replace the file via rename-into-place) and
// returns a Watcher whose Changes channel receives a freshly loaded
// Options on every write.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := parentDir(path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{path: path, watcher: fw, Changes: make(chan *layout.Options, 1)}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			opts, err := Load(w.path)
			if err != nil {
				log.Printf("config: reload failed: %v", err)
				continue
			}
			select {
			case w.Changes <- opts:
			default:
				// drop the stale pending value, keep only the latest
				select {
				case <-w.Changes:
				default:
				}
				w.Changes <- opts
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("config: watch error: %v", err)
		}
	}
}

// Close stops the underlying filesystem watch.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func parentDir(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return "."
}
