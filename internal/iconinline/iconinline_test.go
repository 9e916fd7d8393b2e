package iconinline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeIcon(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"quotes", `<svg fill="red"/>`, `<svg fill='red'/>`},
		{"newlines between tags", "<svg>\n<path/>\n</svg>", "<svg><path/></svg>"},
		{"double spaces removed", "<svg>\n  <path/>\n</svg>", "<svg><path/></svg>"},
		{"single space inside tag kept", `<path d="M0 0"/>`, `<path d='M0 0'/>`},
		{"three spaces leave one", "a   b", "a b"},
		{"tag gap", "<g> <path/> </g>", "<g><path/></g>"},
		{"carriage returns kept", "<svg>\r\n</svg>", "<svg>\r </svg>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestIconName(t *testing.T) {
	assert.Equal(t, "sun", IconName("sun.svg"))
	assert.Equal(t, "color-scheme-dark", IconName("/tmp/icons/color-scheme-dark.svg"))
	assert.Equal(t, "chevron.down", IconName("chevron.down.svg"))
}

func TestDeclaration(t *testing.T) {
	icon := Icon{Name: "sun", Data: "<svg/>"}

	assert.Equal(t,
		`$icon-sun: url("data:image/svg+xml;charset=UTF-8,<svg/>");`,
		Declaration(FormatSCSS, icon))
	assert.Equal(t,
		`window { --icon-sun: url("data:image/svg+xml;charset=UTF-8,<svg/>"); }`,
		Declaration(FormatCSS, icon))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("scss")
	require.NoError(t, err)
	assert.Equal(t, FormatSCSS, f)

	_, err = ParseFormat("less")
	assert.Error(t, err)
}

func TestRun_ConvertsIcons(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "_icons.scss")

	writeIcon(t, src, "sun.svg", "<svg fill=\"red\">\n<path/>\n</svg>")
	writeIcon(t, src, "moon.svg", `<svg fill="blue"><path/></svg>`)
	writeIcon(t, src, "readme.txt", "not an icon")
	writeIcon(t, src, "upper.SVG", "<svg/>")
	require.NoError(t, os.Mkdir(filepath.Join(src, "nested.svg"), 0755))
	require.NoError(t, os.WriteFile(out, []byte("stale content that must disappear"), 0644))

	var seen []string
	icons, err := Run(Options{
		SourceDir: src,
		Output:    out,
		Format:    FormatSCSS,
		Progress:  func(file string) { seen = append(seen, file) },
	})
	require.NoError(t, err)
	require.Len(t, icons, 2)
	assert.Equal(t, []string{"moon.svg", "sun.svg"}, seen)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	content := string(data)

	lines := strings.Split(content, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "// "+Header, lines[0])
	assert.Equal(t, `@use "../settings" as *;`, lines[1])
	assert.Equal(t, `$icon-moon: url("data:image/svg+xml;charset=UTF-8,<svg fill='blue'><path/></svg>");`, lines[2])
	assert.Equal(t, `$icon-sun: url("data:image/svg+xml;charset=UTF-8,<svg fill='red'><path/></svg>");`, lines[3])

	assert.NotContains(t, content, "stale")
	assert.NotContains(t, content, "> <")
	_, err = os.Stat(out + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestRun_EmptyDirectory(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "_icons.css")

	icons, err := Run(Options{SourceDir: src, Output: out})
	require.NoError(t, err)
	assert.Empty(t, icons)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "/* "+Header+" */\n@import \"_settings.css\";", string(data))
}

func TestRun_ReadErrorLeavesOutputUntouched(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "_icons.css")
	previous := "/* previous */"
	require.NoError(t, os.WriteFile(out, []byte(previous), 0644))

	writeIcon(t, src, "a.svg", "<svg/>")
	// A dangling symlink lists as a file but cannot be read.
	require.NoError(t, os.Symlink(filepath.Join(src, "missing"), filepath.Join(src, "b.svg")))
	writeIcon(t, src, "c.svg", "<svg/>")

	_, err := Run(Options{SourceDir: src, Output: out})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "b.svg")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, previous, string(data))
}

func TestRun_ReadErrorWritesNothing(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "_icons.css")
	require.NoError(t, os.Symlink(filepath.Join(src, "missing"), filepath.Join(src, "broken.svg")))

	_, err := Run(Options{SourceDir: src, Output: out})
	require.Error(t, err)

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestRun_MissingSourceDirectory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "_icons.css")

	_, err := Run(Options{SourceDir: filepath.Join(t.TempDir(), "nope"), Output: out})
	require.Error(t, err)

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestRun_UnwritableOutput(t *testing.T) {
	src := t.TempDir()
	writeIcon(t, src, "sun.svg", "<svg/>")

	_, err := Run(Options{SourceDir: src, Output: filepath.Join(t.TempDir(), "missing", "_icons.css")})
	assert.Error(t, err)
}
