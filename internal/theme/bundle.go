package theme

import (
	"embed"
	"io/fs"
	"path"
	"strings"
)

//go:embed themes/*.css
var embedded embed.FS

// Bundle holds the stylesheets compiled into the binary: the themes and the
// partials they import, including the generated _icons.css.
var Bundle fs.FS

func init() {
	sub, err := fs.Sub(embedded, "themes")
	if err != nil {
		panic(err)
	}
	Bundle = sub
}

// DefaultThemeName is the theme used when none is configured or the
// configured one cannot be found.
const DefaultThemeName = "default"

// Bundled returns the names of the bundled themes.
func Bundled() []string {
	names, _ := themeNames(Bundle)
	return names
}

// readBundled returns a bundled stylesheet without inlining its imports.
// name may be a theme ("default") or a partial ("_icons.css").
func readBundled(name string) (string, bool) {
	if path.Ext(name) != ".css" {
		name += ".css"
	}
	data, err := fs.ReadFile(Bundle, name)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// themeNames lists the themes at the top of fsys in name order. Partials,
// whose names start with an underscore, are only meant to be imported.
func themeNames(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !isThemeFile(name) {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".css"))
	}
	return names, nil
}

func isThemeFile(name string) bool {
	return path.Ext(name) == ".css" && !strings.HasPrefix(name, "_")
}
