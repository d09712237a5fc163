package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/dkoosis/hostcolor/internal/config"
	"github.com/dkoosis/hostcolor/internal/logging"
	"github.com/dkoosis/hostcolor/internal/preview"
	"github.com/dkoosis/hostcolor/internal/render"
	"github.com/dkoosis/hostcolor/internal/version"
	"github.com/dkoosis/hostcolor/pkg/outercolor"
)

// app carries the streams and the state built by the root pre-run.
type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer

	flags config.CliFlags
	cfg   *config.ResolvedConfig
	log   *slog.Logger
	outer *outercolor.Outer
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "hostcolor",
		Short: "Query the host terminal's foreground and background colors",
		Long: `hostcolor asks the terminal it runs in for its default colors with
OSC 10/11, caches the answer and can follow theme changes announced by
SIGUSR1 or by a watched file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError{fmt.Errorf("unknown command %q", args[0])}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.DurationVar(&a.flags.Timeout, "timeout", config.DefaultTimeout, "how long to wait for each color reply")
	pf.StringVar(&a.flags.WatchFile, "watch-file", "", "treat changes to this file as a theme change")
	pf.BoolVar(&a.flags.NoSignal, "no-signal", false, "ignore SIGUSR1 theme-change notifications")
	pf.BoolVar(&a.flags.NoColor, "no-color", false, "disable colored output")
	pf.StringVar(&a.flags.LogLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	pf.BoolVar(&a.flags.Debug, "debug", false, "shorthand for --log-level debug")

	root.AddCommand(newQueryCmd(a))
	root.AddCommand(newWatchCmd(a))
	root.AddCommand(newPreviewCmd(a))
	root.AddCommand(newVersionCmd(a))
	return root
}

// noArgs is cobra.NoArgs reported as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError{err}
	}
	return nil
}

// setup resolves configuration and builds the logger and the Outer.
func (a *app) setup(cmd *cobra.Command) error {
	pf := cmd.Flags()
	a.flags.TimeoutSet = pf.Changed("timeout")
	a.flags.WatchFileSet = pf.Changed("watch-file")
	a.flags.NoSignalSet = pf.Changed("no-signal")
	a.flags.NoColorSet = pf.Changed("no-color")
	a.flags.LogLevelSet = pf.Changed("log-level")
	a.flags.DebugSet = pf.Changed("debug")

	cfg, err := config.ResolveConfig(a.flags)
	if cfg == nil {
		return usageError{err}
	}
	a.cfg = cfg
	a.log = logging.New(a.stderr, cfg.LogLevel)
	if err != nil {
		a.log.Warn("config file ignored", slog.String("error", err.Error()))
	}
	a.log.Debug("configuration resolved",
		slog.String("config_path", cfg.ConfigPath),
		slog.Duration("timeout", cfg.Timeout),
		slog.String("timeout_source", cfg.TimeoutSource),
		slog.Bool("signal", cfg.Signal),
		slog.String("watch_file", cfg.WatchFile),
		slog.String("no_color_source", cfg.NoColorSource),
	)

	outerLog := logging.Subsystem(a.log, "outercolor")
	a.outer = outercolor.New(outercolor.Options{
		Terminal:    openTerminal(a.stdin, a.stdout, a.stderr),
		Engine:      cfg.EngineConfig(outerLog),
		NewNotifier: cfg.NotifierFactory(outerLog),
		Logger:      outerLog,
	})
	outercolor.SetDefault(a.outer)
	return nil
}

func (a *app) report() render.Report {
	return render.NewReport(a.outer.Cache(), a.cfg.FallbackFG, a.cfg.FallbackBG)
}

func (a *app) textRenderer() *render.Text {
	profile := termenv.NewOutput(a.stdout).EnvColorProfile()
	if a.cfg.NoColor {
		profile = termenv.Ascii
	}
	return render.NewText(profile)
}

func newQueryCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query the terminal once and print its colors",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, ok := render.ByFormat(format, a.textRenderer())
			if !ok {
				return usageError{fmt.Errorf("invalid --format %q (want text or json)", format)}
			}
			outercolor.QueryOuterTerminalColors()
			_, err := io.WriteString(a.stdout, r.Render(a.report()))
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")
	return cmd
}

func newWatchCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the colors, then again after every theme change",
		Long: `watch queries once, then listens for theme-change notifications
(SIGUSR1 and --watch-file) and re-queries after each one until interrupted.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, ok := render.ByFormat(format, a.textRenderer())
			if !ok {
				return usageError{fmt.Errorf("invalid --format %q (want text or json)", format)}
			}
			return a.watch(cmd, r)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")
	return cmd
}

func (a *app) watch(cmd *cobra.Command, r render.Renderer) error {
	ctx := cmd.Context()
	a.outer.Query()
	if _, err := io.WriteString(a.stdout, r.Render(a.report())); err != nil {
		return err
	}

	q := outercolor.NewEventQueue()
	defer q.Close()
	a.outer.ListenContext(ctx, q)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-q.Events():
			a.log.Info("theme change", slog.String("cached_bg", ev.Colors.BackgroundOr(a.cfg.FallbackBG).Hex()))
			a.outer.Refresh()
			if _, err := io.WriteString(a.stdout, r.Render(a.report())); err != nil {
				return err
			}
		}
	}
}

func newPreviewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Show an interactive view drawn in the host terminal's colors",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Query before the program owns the terminal.
			a.outer.Query()
			return preview.Run(cmd.Context(), a.outer, preview.Options{
				FallbackFG: a.cfg.FallbackFG,
				FallbackBG: a.cfg.FallbackBG,
				NoColor:    a.cfg.NoColor,
				Input:      a.stdin,
				Output:     a.stdout,
				Logger:     logging.Subsystem(a.log, "preview"),
			})
		},
	}
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  noArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(a.stdout, version.String())
			return err
		},
	}
}
