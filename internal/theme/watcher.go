package theme

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultSettle is how long the watcher waits after the last change before
// reloading. Editors often save in several writes.
const DefaultSettle = 100 * time.Millisecond

// Watcher reloads a user theme when any stylesheet in its directory changes.
type Watcher struct {
	mu     sync.Mutex
	logger *slog.Logger
	settle time.Duration

	theme    *Theme
	onChange func(css string)

	fw   *fsnotify.Watcher
	done chan struct{}
}

// NewWatcher creates a watcher for theme.
func NewWatcher(theme *Theme, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		logger: logger,
		settle: DefaultSettle,
		theme:  theme,
	}
}

// OnChange sets the function called with the new CSS after a reload that
// changed it. It runs on the watcher goroutine.
func (w *Watcher) OnChange(fn func(css string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start watches the theme's directory until ctx is done or Stop is called.
// Bundled themes have nothing to watch and Start returns without starting.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fw != nil {
		return nil
	}
	if w.theme == nil || w.theme.Bundled {
		w.logger.Debug("bundled theme, nothing to watch")
		return nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Watch the directory: editors replace files instead of writing in place.
	dir := filepath.Dir(w.theme.Path)
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return err
	}

	w.fw = fw
	w.done = make(chan struct{})
	go w.run(ctx, fw, w.done)

	w.logger.Debug("watching theme", "dir", dir)
	return nil
}

// Stop stops watching and waits for the watch goroutine to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	fw, done := w.fw, w.done
	w.fw = nil
	w.mu.Unlock()

	if fw == nil {
		return
	}
	_ = fw.Close()
	<-done
}

// running reports whether the watcher is started.
func (w *Watcher) running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.fw != nil
}

func (w *Watcher) run(ctx context.Context, fw *fsnotify.Watcher, done chan struct{}) {
	defer close(done)

	settle := time.NewTimer(w.settle)
	settle.Stop()
	defer settle.Stop()

	var trigger string
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Ext(event.Name) != ".css" {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				trigger = filepath.Base(event.Name)
				settle.Reset(w.settle)
			}

		case <-settle.C:
			w.reload(trigger)

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("theme watcher error", "error", err)
		}
	}
}

func (w *Watcher) reload(trigger string) {
	w.mu.Lock()
	theme, fn := w.theme, w.onChange
	w.mu.Unlock()

	changed, err := theme.Refresh()
	if err != nil {
		w.logger.Warn("failed to reload theme", "path", theme.Path, "error", err)
		return
	}
	if !changed {
		return
	}

	w.logger.Info("theme changed", "name", theme.Name, "trigger", trigger)
	if fn != nil {
		fn(theme.CSS)
	}
}
