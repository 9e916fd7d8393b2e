package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"
)

var (
	// importRegex matches @import "x.css"; @import 'x.css'; and @import url("x.css");
	importRegex = regexp.MustCompile(`@import\s+(?:url\s*\(\s*)?["']([^"']+)["']\s*\)?;?`)

	// propertyRegex matches a custom property declaration. Quoted strings
	// may contain semicolons, as data URIs do.
	propertyRegex = regexp.MustCompile(`(--[\w-]+)\s*:\s*((?:"[^"]*"|'[^']*'|[^;}"'])+)`)
)

// Theme is a stylesheet with its imports inlined.
type Theme struct {
	Name    string
	Path    string // file on disk, empty for bundled themes
	CSS     string
	ModTime time.Time
	Bundled bool
}

// Load returns the theme called name. A file <name>.css in userDir takes
// precedence over the bundled theme of the same name. Imports are looked up
// next to the theme first and among the bundled partials second, so a user
// theme can import the generated _icons.css without copying it.
func Load(userDir, name string) (*Theme, error) {
	if !validName(name) {
		return nil, fmt.Errorf("invalid theme name %q", name)
	}
	file := name + ".css"

	if userDir != "" {
		t := &Theme{Name: name, Path: filepath.Join(userDir, file)}
		_, err := t.Refresh()
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	data, err := fs.ReadFile(Bundle, file)
	if err != nil {
		return nil, fmt.Errorf("theme %q not found: %w", name, err)
	}
	return &Theme{
		Name:    name,
		CSS:     Inline(string(data), file, Bundle),
		Bundled: true,
	}, nil
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".." &&
		!strings.HasPrefix(name, "_") && !strings.ContainsAny(name, `/\`)
}

// Inline replaces the @import rules in css with the stylesheets they name,
// recursively. from is the path of css inside the sources; each import is
// resolved relative to it and read from the first source that has it.
// Imports that fail or were already inlined become comments.
func Inline(css, from string, sources ...fs.FS) string {
	return inline(css, from, sources, map[string]bool{path.Clean(from): true})
}

func inline(css, from string, sources []fs.FS, seen map[string]bool) string {
	return importRegex.ReplaceAllStringFunc(css, func(rule string) string {
		ref := importRegex.FindStringSubmatch(rule)[1]
		name := path.Join(path.Dir(from), ref)

		if seen[name] {
			return "/* already imported: " + ref + " */"
		}
		data, err := readFirst(sources, name)
		if err != nil {
			return "/* import failed: " + ref + " */"
		}
		seen[name] = true
		return "/* imported: " + ref + " */\n" + inline(string(data), name, sources, seen)
	})
}

func readFirst(sources []fs.FS, name string) ([]byte, error) {
	err := fs.ErrNotExist
	for _, fsys := range sources {
		var data []byte
		if data, err = fs.ReadFile(fsys, name); err == nil {
			return data, nil
		}
	}
	return nil, err
}

// Refresh re-reads a user theme and its imports. It reports whether the
// inlined CSS changed. Bundled themes never change.
func (t *Theme) Refresh() (bool, error) {
	if t.Bundled {
		return false, nil
	}

	info, err := os.Stat(t.Path)
	if err != nil {
		return false, err
	}
	data, err := os.ReadFile(t.Path)
	if err != nil {
		return false, err
	}

	css := Inline(string(data), filepath.Base(t.Path), os.DirFS(filepath.Dir(t.Path)), Bundle)
	changed := css != t.CSS
	t.CSS = css
	t.ModTime = info.ModTime()
	return changed, nil
}

// Property returns the value of the last declaration of the custom property
// name, in whichever rule it appears.
func (t *Theme) Property(name string) (string, bool) {
	var (
		value string
		found bool
	)
	for _, m := range propertyRegex.FindAllStringSubmatch(t.CSS, -1) {
		if m[1] == name {
			value, found = strings.TrimSpace(m[2]), true
		}
	}
	return value, found
}

// Missing returns the custom properties among names that the theme never
// declares.
func (t *Theme) Missing(names ...string) []string {
	declared := make(map[string]bool)
	for _, m := range propertyRegex.FindAllStringSubmatch(t.CSS, -1) {
		declared[m[1]] = true
	}

	var missing []string
	for _, name := range names {
		if !declared[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

// Info describes an available theme.
type Info struct {
	Name    string
	Path    string // set when a user file provides the theme
	Bundled bool   // a bundled theme of this name exists
}

// List returns the bundled themes and the themes in userDir, sorted by
// name. A user theme that shadows a bundled one is listed once, with its
// path.
func List(userDir string) ([]Info, error) {
	byName := make(map[string]*Info)
	for _, name := range Bundled() {
		byName[name] = &Info{Name: name, Bundled: true}
	}

	var err error
	if userDir != "" {
		var names []string
		names, err = themeNames(os.DirFS(userDir))
		if errors.Is(err, fs.ErrNotExist) {
			err = nil
		}
		for _, name := range names {
			info, ok := byName[name]
			if !ok {
				info = &Info{Name: name}
				byName[name] = info
			}
			info.Path = filepath.Join(userDir, name+".css")
		}
	}

	themes := make([]Info, 0, len(byName))
	for _, info := range byName {
		themes = append(themes, *info)
	}
	slices.SortFunc(themes, func(a, b Info) int { return strings.Compare(a.Name, b.Name) })
	return themes, err
}
