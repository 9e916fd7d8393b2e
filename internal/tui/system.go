package tui

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/jmylchreest/schemeswitch/internal/portal"
)

// PortalReader reads the desktop color scheme preference.
type PortalReader interface {
	ColorScheme(ctx context.Context) (portal.ColorScheme, error)
}

// SystemPreference reports whether the user prefers a dark scheme. The
// settings portal is asked first; when it is unavailable or has no
// preference, a dark terminal background counts as preferring dark.
type SystemPreference struct {
	portal     PortalReader
	background func() termenv.Color
	timeout    time.Duration
	logger     *slog.Logger
}

// NewSystemPreference creates a SystemPreference that falls back to the
// background color of the terminal on stdout.
func NewSystemPreference(reader PortalReader, logger *slog.Logger) *SystemPreference {
	if logger == nil {
		logger = slog.Default()
	}
	return &SystemPreference{
		portal:     reader,
		background: termenv.NewOutput(os.Stdout).BackgroundColor,
		timeout:    2 * time.Second,
		logger:     logger,
	}
}

// PrefersDark implements colorswitch.SystemDetector.
func (s *SystemPreference) PrefersDark() bool {
	if s.portal != nil {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		cs, err := s.portal.ColorScheme(ctx)
		cancel()
		switch {
		case err != nil:
			s.logger.Debug("settings portal unavailable", "error", err)
		case cs != portal.NoPreference:
			return cs == portal.PreferDark
		}
	}

	if s.background == nil {
		return false
	}
	bg := s.background()
	if bg == nil {
		return false
	}
	if _, ok := bg.(termenv.NoColor); ok {
		return false
	}
	dark := isDark(termenv.ConvertToRGB(bg))
	s.logger.Debug("terminal background", "color", bg, "dark", dark)
	return dark
}

func isDark(c colorful.Color) bool {
	_, _, l := c.Hsl()
	return l < 0.5
}
