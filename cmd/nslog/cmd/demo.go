package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pkt.systems/nslog"
)

type demoOptions struct {
	configFile string
	format     string
	level      string
	renderer   string
}

func newDemoCmd() *cobra.Command {
	var opts demoOptions
	c := &cobra.Command{
		Use:   "demo",
		Short: "Emit sample records",
		Long: `Configures a fresh runtime from an optional settings file, the flags
below and NSLOG_DEMO_* environment variables, then emits a handful of records
through forked, scoped and ignored loggers. Environment values win over flags
and flags win over the settings file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, opts)
		},
	}
	c.Flags().StringVar(&opts.configFile, "config", "", "settings file (.toml, .yaml or .yml)")
	c.Flags().StringVar(&opts.format, "format", "", "output format: text or json")
	c.Flags().StringVar(&opts.level, "level", "", "minimum level: error, warn, info or debug")
	c.Flags().StringVar(&opts.renderer, "renderer", "", "text renderer: auto, ansi, css or plain")
	return c
}

func runDemo(cmd *cobra.Command, opts demoOptions) error {
	var settings nslog.Settings
	if opts.configFile != "" {
		loaded, err := nslog.LoadSettings(opts.configFile)
		if err != nil {
			return err
		}
		settings = loaded
	}
	if opts.format != "" {
		if _, ok := nslog.ParseFormat(opts.format); !ok {
			return fmt.Errorf("unknown format %q", opts.format)
		}
		settings.Format = opts.format
	}
	if opts.level != "" {
		settings.Level = opts.level
	}
	if opts.renderer != "" {
		settings.Renderer = opts.renderer
	}
	if len(settings.Ignore) == 0 {
		settings.Ignore = []string{"noisy"}
	}

	var firstFailure error
	out := nslog.NewObservedWriter(cmd.OutOrStdout(), func(f nslog.WriteFailure) {
		if firstFailure == nil {
			firstFailure = f.Err
		}
	})

	rt := nslog.NewRuntime()
	err := rt.ConfigureFromEnv(
		nslog.WithEnvPrefix("NSLOG_DEMO_"),
		nslog.WithEnvSettings(settings),
		nslog.WithEnvWriter(out),
	)
	if err != nil {
		return err
	}

	api := rt.For("api").Fork(nslog.SubContext{Tags: nslog.Tags{"component": "http"}})
	api.Info("server listening", 8080)
	api.Debug("routes loaded", []string{"/health", "/orders"})

	orders := api.Fork(nslog.SubContext{Namespace: "orders", Extra: nslog.Extra{"tenant": "acme"}})
	orders.Warn("slow query", map[string]any{"ms": 1250, "table": "orders"})
	_ = orders.Scope(nslog.SubContext{Namespace: "payment", Extra: nslog.Extra{"attempt": 2}}, func(l nslog.Logger) error {
		l.Error("charge declined", errors.New("card expired"))
		return nil
	})

	rt.For("noisy").Error("never shown")

	if stats := out.Stats(); stats.Failures > 0 {
		return fmt.Errorf("demo output: %d of %d writes failed: %w", stats.Failures, stats.Writes, firstFailure)
	}
	return nil
}
