package core

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/astaben/tracery/engine/containers"
)

// ConfigWatcher re-reads a settings file whenever it changes on disk and
// hands the parsed result to a callback. Editors emit bursts of events for a
// single save, so changes pass through a small ring queue and are drained on
// a timer; the callback fires once per burst, on the watcher goroutine.
type ConfigWatcher struct {
	path     string
	onChange func(*Config)

	done     chan struct{}
	fsnotify *fsnotify.Watcher
	pending  *containers.RingQueue[string]
}

func NewConfigWatcher(path string, onChange func(*Config)) (*ConfigWatcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &ConfigWatcher{
		path:     filepath.Clean(path),
		onChange: onChange,
		fsnotify: fsWatch,
		pending:  containers.NewRingQueue[string](16),
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching. The parent directory is watched rather than the
// file itself because editors commonly replace files through renames.
func (cw *ConfigWatcher) Start() error {
	if err := cw.fsnotify.Add(filepath.Dir(cw.path)); err != nil {
		return err
	}
	go cw.start()
	return nil
}

func (cw *ConfigWatcher) start() {
	drain := time.NewTicker(250 * time.Millisecond)
	defer drain.Stop()

	for {
		select {

		case e := <-cw.fsnotify.Events:
			if filepath.Clean(e.Name) != cw.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			// A full queue already implies a reload is due; drop the event.
			cw.pending.Enqueue(e.Name)

		case e := <-cw.fsnotify.Errors:
			LogError(e.Error())

		case <-drain.C:
			cw.reload()

		case <-cw.done:
			cw.fsnotify.Close()
			return
		}
	}
}

func (cw *ConfigWatcher) reload() {
	if cw.pending.IsEmpty() {
		return
	}
	for !cw.pending.IsEmpty() {
		cw.pending.Dequeue()
	}

	cfg, err := LoadConfig(cw.path)
	if err != nil {
		LogWarn("settings reload failed: %v", err)
		return
	}
	LogInfo("settings reloaded from %s", cw.path)
	cw.onChange(cfg)
}

func (cw *ConfigWatcher) Close() {
	close(cw.done)
}
