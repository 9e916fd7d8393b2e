// Package portal reads the desktop color scheme preference from the
// freedesktop settings portal (org.freedesktop.portal.Settings).
package portal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/godbus/dbus/v5"
)

const (
	portalDest     = "org.freedesktop.portal.Desktop"
	portalPath     = "/org/freedesktop/portal/desktop"
	settingsIface  = "org.freedesktop.portal.Settings"
	appearanceNS   = "org.freedesktop.appearance"
	colorSchemeKey = "color-scheme"
	defaultTimeout = 2 * time.Second
)

// ColorScheme is the value of org.freedesktop.appearance color-scheme.
type ColorScheme uint32

const (
	NoPreference ColorScheme = 0
	PreferDark   ColorScheme = 1
	PreferLight  ColorScheme = 2
)

func (c ColorScheme) String() string {
	switch c {
	case PreferDark:
		return "prefer-dark"
	case PreferLight:
		return "prefer-light"
	default:
		return "no-preference"
	}
}

// Detector queries the settings portal on the session bus.
type Detector struct {
	logger  *slog.Logger
	timeout time.Duration
	connect func() (*dbus.Conn, error)
}

// NewDetector creates a Detector using the shared session bus connection.
func NewDetector(logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{
		logger:  logger,
		timeout: defaultTimeout,
		connect: dbus.SessionBus,
	}
}

// ColorScheme reads the current preference from the portal.
func (d *Detector) ColorScheme(ctx context.Context) (ColorScheme, error) {
	conn, err := d.connect()
	if err != nil {
		return NoPreference, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	obj := conn.Object(portalDest, portalPath)

	var value dbus.Variant
	err = obj.CallWithContext(ctx, settingsIface+".ReadOne", 0, appearanceNS, colorSchemeKey).Store(&value)
	if err != nil {
		// ReadOne is only available from version 2 of the interface.
		err = obj.CallWithContext(ctx, settingsIface+".Read", 0, appearanceNS, colorSchemeKey).Store(&value)
	}
	if err != nil {
		return NoPreference, fmt.Errorf("failed to read %s %s: %w", appearanceNS, colorSchemeKey, err)
	}

	return decode(value)
}

// PrefersDark reports whether the desktop prefers a dark scheme. Any error
// reads as no preference.
func (d *Detector) PrefersDark() bool {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	cs, err := d.ColorScheme(ctx)
	if err != nil {
		d.logger.Debug("settings portal unavailable", "error", err)
		return false
	}
	d.logger.Debug("settings portal color scheme", "value", cs)
	return cs == PreferDark
}

// decode unwraps the value, which Read nests in an extra variant.
func decode(v dbus.Variant) (ColorScheme, error) {
	for {
		switch value := v.Value().(type) {
		case dbus.Variant:
			v = value
		case uint32:
			return ColorScheme(value), nil
		default:
			return NoPreference, fmt.Errorf("unexpected color-scheme type %s", v.Signature())
		}
	}
}
