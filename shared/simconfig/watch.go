package simconfig

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher reloads a tuning file whenever it changes on disk and publishes the
// parsed result on Updates. Files that fail to parse are logged and skipped;
// the last good tuning stays in effect.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string

	Updates chan Simulation
	Errors  chan error

	closeCh chan struct{}
	once    sync.Once
}

// Watch starts watching path. The parent directory is watched rather than the
// file so editors that replace the file on save are still picked up.
func Watch(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		path:    filepath.Clean(path),
		Updates: make(chan Simulation, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Latest returns the most recent pending update without blocking.
func (w *Watcher) Latest() (Simulation, bool) {
	var (
		sim Simulation
		ok  bool
	)
	for {
		select {
		case s := <-w.Updates:
			sim, ok = s, true
		default:
			return sim, ok
		}
	}
}

func (w *Watcher) run() {
	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			pending = timer.C
		case <-pending:
			pending = nil
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
				log.Printf("simconfig: watcher error: %v", err)
			}
		case <-w.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func (w *Watcher) reload() {
	sim, err := Load(w.path)
	if err != nil {
		log.Printf("simconfig: keeping previous tuning: %v", err)
		return
	}

	// Only the newest tuning matters; drop one that was never consumed.
	select {
	case <-w.Updates:
	default:
	}
	select {
	case w.Updates <- sim:
	case <-w.closeCh:
	}
}
