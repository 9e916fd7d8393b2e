package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/schemeswitch/internal/colorswitch"
	"github.com/jmylchreest/schemeswitch/internal/portal"
	"github.com/jmylchreest/schemeswitch/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Show the switch in the terminal",
	Long: `Show the color scheme switch in the terminal.

The desktop preference is read from the freedesktop settings portal.

Key bindings:
  space, t    Toggle light/dark
  l, d        Set the scheme attribute to light or dark
  ?           Show help
  q           Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	doc := tui.NewDocument(cfg.Theme.VarPrefix, rootAttributes())

	sw, err := colorswitch.New(doc, prefs, tui.NewSystemPreference(portal.NewDetector(logger), logger), switchOptions())
	if err != nil {
		return err
	}

	m, err := tui.New(sw, doc)
	if err != nil {
		return err
	}
	return tui.Run(m)
}
