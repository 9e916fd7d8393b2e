// Package iconinline converts a directory of SVG icons into a stylesheet
// fragment that binds each icon, as a data URI, to a named variable.
package iconinline

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// Extension is the only file extension that is converted.
const Extension = ".svg"

// Header is the comment written at the top of every generated file.
const Header = "This file is auto-generated; use \"go generate ./internal/theme\" to update this file from the SVG icons in assets/icons/"

// Format selects the stylesheet dialect of the generated file.
type Format string

const (
	// FormatCSS binds each icon to a custom property on the GTK window
	// node, which every widget inherits from.
	FormatCSS Format = "css"
	// FormatSCSS binds each icon to a Sass variable.
	FormatSCSS Format = "scss"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSS, FormatSCSS:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown format %q: must be css or scss", s)
	}
}

// importLine returns the import directive for the format.
func (f Format) importLine() string {
	if f == FormatSCSS {
		return `@use "../settings" as *;`
	}
	return `@import "_settings.css";`
}

func (f Format) comment(text string) string {
	if f == FormatSCSS {
		return "// " + text
	}
	return "/* " + text + " */"
}

// Icon is one converted SVG file.
type Icon struct {
	Name string // filename stem
	File string // base filename
	Data string // normalized SVG text
	Size int64  // size of the source file in bytes
}

// Normalize rewrites SVG markup into a single line that can be embedded in a
// double-quoted url(). The substitutions are applied in order: double quotes
// become single quotes, line feeds become spaces, double spaces are removed
// and whitespace between adjacent tags is dropped.
func Normalize(svg string) string {
	svg = strings.ReplaceAll(svg, `"`, "'")
	svg = strings.ReplaceAll(svg, "\n", " ")
	svg = strings.ReplaceAll(svg, "  ", "")
	svg = strings.ReplaceAll(svg, "> <", "><")
	return svg
}

// IconName returns the filename stem of file.
func IconName(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Declaration returns the line binding icon to its variable.
func Declaration(format Format, icon Icon) string {
	uri := fmt.Sprintf(`url("data:image/svg+xml;charset=UTF-8,%s")`, icon.Data)
	if format == FormatSCSS {
		return fmt.Sprintf("$icon-%s: %s;", icon.Name, uri)
	}
	return fmt.Sprintf("window { --icon-%s: %s; }", icon.Name, uri)
}

// Render returns the complete generated file: the header comment, the
// import directive and one declaration per icon.
func Render(format Format, icons []Icon) string {
	lines := make([]string, 0, len(icons)+2)
	lines = append(lines, format.comment(Header), format.importLine())
	for _, icon := range icons {
		lines = append(lines, Declaration(format, icon))
	}
	return strings.Join(lines, "\n")
}

// Collect reads every SVG file directly inside dir, in filename order.
// Subdirectories are not searched. The first read error aborts the batch.
// progress, when not nil, is called before each file is read.
func Collect(dir string, progress func(file string)) ([]Icon, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var icons []Icon
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != Extension {
			continue
		}
		if progress != nil {
			progress(entry.Name())
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}

		icons = append(icons, Icon{
			Name: IconName(entry.Name()),
			File: entry.Name(),
			Data: Normalize(string(data)),
			Size: int64(len(data)),
		})
	}
	return icons, nil
}

// Options configures a Run.
type Options struct {
	SourceDir string
	Output    string
	Format    Format

	// Progress is called with the name of each file before it is converted.
	Progress func(file string)
	Logger   *slog.Logger
}

// Run converts every icon in opts.SourceDir and replaces opts.Output with
// the result. Nothing is written unless every icon was read; the output is
// replaced atomically so a failed write leaves the previous content intact.
func Run(opts Options) ([]Icon, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Format == "" {
		opts.Format = FormatCSS
	}

	icons, err := Collect(opts.SourceDir, opts.Progress)
	if err != nil {
		return nil, err
	}
	for _, icon := range icons {
		logger.Debug("converted icon", "name", icon.Name, "size", humanize.IBytes(uint64(icon.Size)), "inline", humanize.IBytes(uint64(len(icon.Data))))
	}

	if err := writeFile(opts.Output, Render(opts.Format, icons)); err != nil {
		return nil, err
	}

	logger.Debug("wrote icon stylesheet", "path", opts.Output, "icons", len(icons))
	return icons, nil
}

func writeFile(path, content string) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
