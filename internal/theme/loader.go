package theme

import (
	"context"
	"log/slog"
	"sync"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// Loader feeds a theme into a GTK CSS provider and keeps it current.
type Loader struct {
	mu       sync.Mutex
	logger   *slog.Logger
	provider *gtk.CSSProvider
	userDir  string
	theme    *Theme
	watcher  *Watcher
}

// NewLoader creates a loader that prefers user themes from userDir.
func NewLoader(userDir string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger:   logger,
		provider: gtk.NewCSSProvider(),
		userDir:  userDir,
	}
}

// Load loads the theme called name into the provider. When it cannot be
// loaded the bundled default theme is used instead.
func (l *Loader) Load(name string) (*Theme, error) {
	if name == "" {
		name = DefaultThemeName
	}

	t, err := Load(l.userDir, name)
	if err != nil {
		l.logger.Warn("theme unavailable, using default", "theme", name, "error", err)
		if t, err = Load("", DefaultThemeName); err != nil {
			return nil, err
		}
	}

	l.mu.Lock()
	l.theme = t
	l.mu.Unlock()

	l.provider.LoadFromString(t.CSS)
	l.logger.Info("loaded theme", "name", t.Name, "bundled", t.Bundled, "path", t.Path)
	return t, nil
}

// Apply adds the provider to display, or to the default display when
// display is nil. GTK must be initialized.
func (l *Loader) Apply(display *gdk.Display) {
	if display == nil {
		display = gdk.DisplayGetDefault()
	}
	if display == nil {
		l.logger.Warn("no display available, cannot apply theme")
		return
	}
	gtk.StyleContextAddProviderForDisplay(display, l.provider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)
}

// StartHotReload reloads the provider on the GTK main loop whenever the
// loaded user theme changes on disk.
func (l *Loader) StartHotReload(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.watcher != nil {
		l.watcher.Stop()
	}
	l.watcher = NewWatcher(l.theme, l.logger)
	l.watcher.OnChange(func(css string) {
		glib.IdleAdd(func() {
			l.provider.LoadFromString(css)
		})
	})
	return l.watcher.Start(ctx)
}

// StopHotReload stops watching the theme.
func (l *Loader) StopHotReload() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.watcher != nil {
		l.watcher.Stop()
		l.watcher = nil
	}
}

// Theme returns the loaded theme, or nil before Load.
func (l *Loader) Theme() *Theme {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.theme
}
