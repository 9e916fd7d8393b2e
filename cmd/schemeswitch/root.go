// Package main provides the schemeswitch CLI: a light/dark color scheme
// switch for GTK and terminal, plus commands to inspect and change the
// stored preference.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/schemeswitch/internal/colorswitch"
	"github.com/jmylchreest/schemeswitch/internal/config"
	"github.com/jmylchreest/schemeswitch/internal/store"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

var (
	cfg        *config.Config
	prefs      *store.Preferences
	logger     *slog.Logger
	globalOpts struct {
		verbose         bool
		configPath      string
		preferencesFile string
	}
)

// annotationSkipConfig marks commands that run without loading the config
// or the preferences.
const annotationSkipConfig = "schemeswitch/skip-config"

var rootCmd = &cobra.Command{
	Use:   "schemeswitch",
	Short: "Light/dark color scheme switch",
	Long: `schemeswitch shows a switch that toggles between a light and a dark color
scheme and remembers the choice.

The initial scheme is the stored preference, then the configured switch
scheme, then the configured theme color scheme, then the desktop preference.

Running schemeswitch without a subcommand opens the GTK window.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		if cmd.Annotations[annotationSkipConfig] != "" {
			return nil
		}

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		path := globalOpts.preferencesFile
		if path == "" {
			path, err = store.PreferencesPath()
			if err != nil {
				return fmt.Errorf("failed to locate preferences: %w", err)
			}
		}
		prefs = store.NewPreferences(path)
		logger.Debug("using preferences", "path", path)
		return nil
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGTK(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/schemeswitch/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.preferencesFile, "preferences-file", "",
		"Path to preferences file (default: ~/.local/share/schemeswitch/preferences.json)")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// switchOptions maps the configuration onto the switch options.
func switchOptions() colorswitch.Options {
	return colorswitch.Options{
		Label:         cfg.Switch.Label,
		StorageKey:    cfg.Switch.StorageKey,
		RootAttribute: cfg.Switch.RootAttribute,
		Scheme:        cfg.Switch.Scheme,
		Logger:        logger,
	}
}

// rootAttributes returns the document root attributes configured before
// the switch runs.
func rootAttributes() map[string]string {
	attrs := make(map[string]string)
	if s := cfg.RootScheme(); s != "" {
		attrs[cfg.Switch.RootAttribute] = s
	}
	return attrs
}
