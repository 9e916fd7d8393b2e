package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/schemeswitch/internal/colorswitch"
	"github.com/jmylchreest/schemeswitch/internal/portal"
	"github.com/jmylchreest/schemeswitch/internal/tui"
)

var getOpts struct {
	json bool
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the resolved color scheme",
	Long: `Print the color scheme a switch would start with, without changing
anything. With --json the source of the value is included.`,
	Args: cobra.NoArgs,
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().BoolVar(&getOpts.json, "json", false, "Output as JSON")
}

func runGet(cmd *cobra.Command, args []string) error {
	// A detached terminal document keeps the resolution side effects in memory.
	doc := tui.NewDocument(cfg.Theme.VarPrefix, rootAttributes())

	sw, err := colorswitch.New(doc, prefs, tui.NewSystemPreference(portal.NewDetector(logger), logger), switchOptions())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if getOpts.json {
		return json.NewEncoder(out).Encode(struct {
			Scheme string `json:"scheme"`
			Source string `json:"source"`
		}{sw.Scheme().String(), string(sw.Source())})
	}
	_, err = fmt.Fprintln(out, sw.Scheme())
	return err
}
