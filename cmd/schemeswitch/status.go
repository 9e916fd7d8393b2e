package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/schemeswitch/internal/config"
	"github.com/jmylchreest/schemeswitch/internal/theme"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the stored preference and available themes",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	entry, found, err := prefs.Lookup(cfg.Switch.StorageKey)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Preferences: %s\n", prefs.Path())
	if found {
		fmt.Fprintf(out, "Stored scheme: %s\n", entry.Value)
		fmt.Fprintf(out, "  Changed: %s\n", humanize.Time(entry.Updated()))
		fmt.Fprintf(out, "  Revision: %s\n", entry.Revision)
	} else {
		fmt.Fprintln(out, "Stored scheme: none")
	}

	fmt.Fprintf(out, "Theme: %s (color scheme: %s)\n", cfg.Theme.Name, cfg.Theme.ColorScheme)
	if th, err := theme.Load(config.ThemesDir(), cfg.Theme.Name); err != nil {
		fmt.Fprintf(out, "  Not loadable: %v\n", err)
	} else if !th.Bundled {
		fmt.Fprintf(out, "  File: %s\n", th.Path)
		fmt.Fprintf(out, "  Modified: %s\n", humanize.Time(th.ModTime))
		fmt.Fprintf(out, "  Hot reload: %t\n", cfg.Theme.HotReload)
	}

	fmt.Fprintln(out, "Available themes:")

	themes, err := theme.List(config.ThemesDir())
	if err != nil {
		logger.Warn("failed to list user themes", "error", err)
	}
	for _, info := range themes {
		origin := "bundled"
		if info.Path != "" {
			origin = info.Path
		}
		fmt.Fprintf(out, "  %s (%s)\n", info.Name, origin)
	}
	return nil
}
