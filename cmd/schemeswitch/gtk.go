package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/schemeswitch/internal/colorswitch"
	"github.com/jmylchreest/schemeswitch/internal/config"
	"github.com/jmylchreest/schemeswitch/internal/gtkhost"
	"github.com/jmylchreest/schemeswitch/internal/theme"
)

const appID = "io.github.jmylchreest.schemeswitch"

var gtkCmd = &cobra.Command{
	Use:   "gtk",
	Short: "Open the switch in a GTK window",
	RunE:  runGTK,
}

func init() {
	rootCmd.AddCommand(gtkCmd)
}

func runGTK(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	app := adw.NewApplication(appID, 0)

	var (
		loader *theme.Loader
		failed error
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logger.Info("received signal, shutting down", "signal", sig)
			glib.IdleAdd(func() { app.Quit() })
		case <-ctx.Done():
		}
	}()

	app.ConnectActivate(func() {
		if loader != nil {
			logger.Warn("application already running")
			return
		}

		loader = theme.NewLoader(config.ThemesDir(), logger)
		th, err := loader.Load(cfg.Theme.Name)
		if err != nil {
			failed = err
			logger.Error("failed to load theme", "error", err)
			app.Quit()
			return
		}
		loader.Apply(nil)

		prefix := cfg.Theme.VarPrefix
		if v, ok := th.Property(colorswitch.DefaultVarPrefixProperty); ok {
			prefix = strings.Trim(v, `"`)
		}
		if missing := th.Missing(colorswitch.Variables(prefix)...); len(missing) > 0 {
			logger.Warn("theme does not define switch variables", "theme", th.Name, "missing", missing)
		}

		window := gtk.NewWindow()
		window.SetApplication(&app.Application)
		window.SetTitle("Color scheme")
		window.SetDefaultSize(360, -1)

		box := gtk.NewBox(gtk.OrientationHorizontal, 12)
		box.SetMarginTop(24)
		box.SetMarginBottom(24)
		box.SetMarginStart(24)
		box.SetMarginEnd(24)
		window.SetChild(box)

		doc := gtkhost.NewDocument(window, box, gtkhost.Options{
			SchemeAttribute: cfg.Switch.RootAttribute,
			Properties:      th,
			VarPrefix:       cfg.Theme.VarPrefix,
			Attributes:      rootAttributes(),
			Logger:          logger,
		})

		sw, err := colorswitch.New(doc, prefs, doc, switchOptions())
		if err == nil {
			err = sw.Attach()
		}
		if err != nil {
			failed = err
			logger.Error("failed to create color scheme switch", "error", err)
			app.Quit()
			return
		}

		if cfg.Theme.HotReload {
			if err := loader.StartHotReload(ctx); err != nil {
				logger.Warn("failed to start theme hot-reload", "error", err)
			}
		}

		logger.Info("color scheme switch ready", "scheme", sw.Scheme(), "source", sw.Source())
		window.Present()
	})

	app.ConnectShutdown(func() {
		if loader != nil {
			loader.StopHotReload()
		}
	})

	if code := app.Run(os.Args[:1]); code != 0 && failed == nil {
		os.Exit(code)
	}
	return failed
}
