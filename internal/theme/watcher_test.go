package theme

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsOnPartialChange(t *testing.T) {
	dir := t.TempDir()
	writeCSS(t, dir, "_colors.css", `window { --primary: red; }`)
	writeCSS(t, dir, "live.css", `@import "_colors.css";`)

	theme, err := Load(dir, "live")
	require.NoError(t, err)

	w := NewWatcher(theme, nil)
	w.settle = 10 * time.Millisecond
	changes := make(chan string, 16)
	w.OnChange(func(css string) {
		select {
		case changes <- css:
		default:
		}
	})

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()
	assert.True(t, w.running())

	writeCSS(t, dir, "_colors.css", `window { --primary: blue; }`)

	timeout := time.After(5 * time.Second)
	for {
		select {
		case css := <-changes:
			if strings.Contains(css, "--primary: blue") {
				return
			}
		case <-timeout:
			t.Fatal("timed out waiting for theme reload")
		}
	}
}

func TestWatcher_BundledThemeNotWatched(t *testing.T) {
	theme, err := Load("", DefaultThemeName)
	require.NoError(t, err)

	w := NewWatcher(theme, nil)
	require.NoError(t, w.Start(context.Background()))
	assert.False(t, w.running())
	w.Stop()
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeCSS(t, dir, "x.css", `window {}`)
	theme, err := Load(dir, "x")
	require.NoError(t, err)

	w := NewWatcher(theme, nil)
	require.NoError(t, w.Start(context.Background()))
	require.NoError(t, w.Start(context.Background()))
	w.Stop()
	w.Stop()
	assert.False(t, w.running())
}

func TestWatcher_StopsWithContext(t *testing.T) {
	dir := t.TempDir()
	writeCSS(t, dir, "x.css", `window {}`)
	theme, err := Load(dir, "x")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	w := NewWatcher(theme, nil)
	require.NoError(t, w.Start(ctx))
	cancel()

	// Stop still returns once the goroutine has exited on its own.
	w.Stop()
	assert.False(t, w.running())
}
