package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundled(t *testing.T) {
	assert.Equal(t, []string{"contrast", "default"}, Bundled())
}

func TestReadBundled(t *testing.T) {
	css, found := readBundled("default")
	require.True(t, found)
	assert.Contains(t, css, `@import "_icons.css";`)

	partial, found := readBundled("_icons.css")
	require.True(t, found)
	assert.Contains(t, partial, "--icon-color-scheme-dark")

	_, found = readBundled("missing")
	assert.False(t, found)
}

func TestGeneratedIcons(t *testing.T) {
	css, found := readBundled("_icons.css")
	require.True(t, found)

	lines := strings.Split(css, "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "/* This file is auto-generated"))
	assert.Equal(t, `@import "_settings.css";`, lines[1])
	// Sorted by file name.
	assert.True(t, strings.HasPrefix(lines[2], "window { --icon-color-scheme-dark: "), lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "window { --icon-color-scheme-light: "), lines[3])
	for _, line := range lines[2:] {
		assert.Contains(t, line, `url("data:image/svg+xml;charset=UTF-8,<svg`)
		assert.NotContains(t, line, "> <")
		assert.NotContains(t, line, "\"<")
	}
}

func TestBundledThemes_Complete(t *testing.T) {
	required := []string{
		"--icon-color-scheme-dark",
		"--icon-color-scheme-light",
		"--primary-inverse",
		"--var-prefix",
	}

	for _, name := range Bundled() {
		t.Run(name, func(t *testing.T) {
			theme, err := Load("", name)
			require.NoError(t, err)
			assert.True(t, theme.Bundled)

			assert.Equal(t, strings.Count(theme.CSS, "{"), strings.Count(theme.CSS, "}"))
			assert.NotContains(t, theme.CSS, "import failed")
			assert.Contains(t, theme.CSS, "/* imported: _icons.css */")
			assert.Contains(t, theme.CSS, "/* imported: _settings.css */")
			assert.Empty(t, theme.Missing(required...))

			prefix, ok := theme.Property("--var-prefix")
			require.True(t, ok)
			assert.Equal(t, `"--"`, prefix)
		})
	}
}
