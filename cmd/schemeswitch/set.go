package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/schemeswitch/internal/scheme"
)

var setCmd = &cobra.Command{
	Use:       "set <light|dark|toggle>",
	Short:     "Store a color scheme preference",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"light", "dark", "toggle"},
	RunE:      runSet,
}

var unsetCmd = &cobra.Command{
	Use:   "unset",
	Short: "Forget the stored preference",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return prefs.Delete(cfg.Switch.StorageKey)
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(unsetCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	next, ok := scheme.Parse(args[0])
	if args[0] == "toggle" {
		current, found, err := prefs.Get(cfg.Switch.StorageKey)
		if err != nil {
			return err
		}
		stored, valid := scheme.Parse(current)
		if !found || !valid {
			stored = scheme.Light
		}
		next, ok = stored.Toggle(), true
	}
	if !ok {
		return fmt.Errorf("invalid color scheme %q: must be light, dark or toggle", args[0])
	}

	if err := prefs.Set(cfg.Switch.StorageKey, next.String()); err != nil {
		return fmt.Errorf("failed to store color scheme: %w", err)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), next)
	return err
}
