package deck

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce is the quiet period after the last change before a reload.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reloads a deck when its source file changes.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	logger   *logrus.Entry
}

// NewWatcher watches the directory holding path. Editors often replace files
// instead of writing them in place, so watching the file itself would miss
// changes.
func NewWatcher(path string, debounce time.Duration, logger *logrus.Entry) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Watcher{
		path:     abs,
		watcher:  w,
		debounce: debounce,
		logger:   logger,
	}, nil
}

// Start blocks until ctx is cancelled, calling onReload with the freshly
// loaded deck (or the load error) once the source has been quiet for the
// debounce period.
func (w *Watcher) Start(ctx context.Context, onReload func(*Deck, error)) {
	defer w.watcher.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
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
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case <-fire:
			timer, fire = nil, nil
			d, err := Load(w.path)
			if err != nil {
				w.logger.WithError(err).Warn("Deck reload failed")
			} else {
				w.logger.WithField("slides", d.Len()).Info("Deck reloaded")
			}
			onReload(d, err)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("Watcher error: %v", err)

		case <-ctx.Done():
			return
		}
	}
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
