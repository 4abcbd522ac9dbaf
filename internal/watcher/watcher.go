package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kpauljoseph/cardprint/pkg/logger"
)

const DefaultDebounce = 300 * time.Millisecond

// Watcher calls back whenever a single file changes. Bursts of events, such
// as an editor's write-then-rename save, collapse into one call.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *logger.Logger
}

func New(path string, debounce time.Duration, logger *logger.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		logger:   logger,
	}
}

// Run blocks until ctx is done. Callback errors are logged and watching
// continues, so the file can be fixed and saved again.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context) error) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsw.Close()

	// Watch the directory: editors often replace the file instead of writing it.
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}
	w.logger.Info("Watching %s for changes", w.path)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.logger.Trace("Event %s on %s", event.Op, event.Name)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Info("Watcher error: %v", err)

		case <-fire:
			fire = nil
			w.logger.Debug("Change detected in %s", w.path)
			if err := onChange(ctx); err != nil {
				w.logger.Info("Error handling change: %v", err)
			}
		}
	}
}
