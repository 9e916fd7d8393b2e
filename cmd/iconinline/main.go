// Package main provides the iconinline build tool, which converts the SVG
// icons in assets/icons into the stylesheet variables used by the themes.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/schemeswitch/internal/iconinline"
)

// Paths are relative to the repository root.
const (
	defaultSource = "assets/icons"
	defaultOutput = "internal/theme/themes/_icons.css"
)

var opts struct {
	source  string
	output  string
	format  string
	verbose bool
}

var (
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

var rootCmd = &cobra.Command{
	Use:   "iconinline",
	Short: "Convert SVG icons into stylesheet variables",
	Long: `iconinline reads every .svg file in the source directory, rewrites each
one as a single-line data URI and writes them as variables to the output
stylesheet, replacing its previous content.

Without flags it converts assets/icons into internal/theme/themes/_icons.css.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&opts.source, "source", defaultSource,
		"Directory containing the SVG icons")
	rootCmd.Flags().StringVar(&opts.output, "output", defaultOutput,
		"Stylesheet to generate")
	rootCmd.Flags().StringVar(&opts.format, "format", string(iconinline.FormatCSS),
		"Output dialect (css, scss)")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Enable verbose logging")
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	format, err := iconinline.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, err = iconinline.Run(iconinline.Options{
		SourceDir: opts.source,
		Output:    opts.output,
		Format:    format,
		Progress: func(file string) {
			fmt.Fprintln(out, progressStyle.Render("Convert "+file))
		},
		Logger: logger,
	})
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}
