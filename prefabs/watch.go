package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind says which loader a changed file feeds.
type ChangeKind uint8

const (
	ChangeWeapons ChangeKind = iota + 1
	ChangeVessels
	ChangeScript
)

type Change struct {
	Path string
	Kind ChangeKind
}

// Watcher reports edits to prefab files on disk. Bursts of events for the
// same file within debounce are collapsed.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan Change
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

const debounce = 100 * time.Millisecond

// NewWatcher watches Dir and its scripts directory when no dirs are given.
func NewWatcher(dirs ...string) (*Watcher, error) {
	if len(dirs) == 0 {
		dirs = []string{Dir, filepath.Join(Dir, "scripts")}
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			kind, ok := Classify(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- Change{Path: event.Name, Kind: kind}:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// Poll drains pending changes and errors without blocking. It reports false
// once the watcher has stopped and both channels are closed; the caller
// should drop the watcher then.
func (w *Watcher) Poll() ([]Change, []error, bool) {
	var changes []Change
	var errs []error
	events, errCh := w.Events, w.Errors
	for events != nil || errCh != nil {
		select {
		case change, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			changes = append(changes, change)
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			errs = append(errs, err)
		default:
			return changes, errs, true
		}
	}
	return changes, errs, false
}

// Classify maps a changed path onto the loader that should re-read it.
func Classify(path string) (ChangeKind, bool) {
	base := strings.ToLower(filepath.Base(path))
	switch {
	case base == WeaponsFile:
		return ChangeWeapons, true
	case base == VesselsFile:
		return ChangeVessels, true
	case strings.HasSuffix(base, ".tengo"):
		return ChangeScript, true
	default:
		return 0, false
	}
}
