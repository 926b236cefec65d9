package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rapturekit/helper/pkg/chrono"
	"github.com/rapturekit/helper/pkg/config"
	"github.com/rapturekit/helper/pkg/logger"
)

// app holds the state shared by all subcommands. It is populated by the
// root command's persistent pre-run.
type app struct {
	tz         string
	locale     string
	localeFile string
	envFile    string
	logLevel   string
	logFormat  string

	// environ replaces the process environment when non-nil.
	environ map[string]string
	// calendarOpts are applied after the configured calendar options.
	calendarOpts []chrono.Option

	cfg      chrono.Config
	calendar *chrono.Calendar
	logger   *slog.Logger
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "chrono",
		Short:        "Timezone aware date arithmetic and human readable durations",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.tz, "tz", "", "default timezone: name, city, offset in minutes or abbreviation")
	flags.StringVar(&a.locale, "locale", "", "locale tag used for human readable output")
	flags.StringVar(&a.localeFile, "locale-file", "", "YAML or JSON file with extra locales")
	flags.StringVar(&a.envFile, "env-file", "", ".env file read before the environment")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.StringVar(&a.logFormat, "log-format", string(logger.FormatText), "log format: text or json")

	root.AddCommand(
		newNowCommand(a),
		newAtCommand(a),
		newZoneCommand(a),
		newShiftCommand(a),
		newBoundsCommand(a),
		newUnitsCommand(a),
		newHumanCommand(a),
		newLocaleCommand(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	level, err := logger.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(a.logFormat)
	if err != nil {
		return err
	}
	a.logger = logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(logger.Component("chrono"), logger.Command(cmd.Name())),
		logger.WithContextExtractors(localeAttr),
	)

	opts := []config.Option{config.WithPrefix(chrono.EnvPrefix), config.WithFiles(a.envFile)}
	if a.environ != nil {
		opts = append(opts, config.WithEnvironment(a.environ))
	}
	if err := config.Load(&a.cfg, opts...); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("tz") {
		a.cfg.Timezone = a.tz
	}
	if flags.Changed("locale") {
		a.cfg.Locale = a.locale
	}
	if flags.Changed("locale-file") {
		a.cfg.LocaleFile = a.localeFile
	}

	calOpts := append([]chrono.Option{chrono.WithLogger(a.logger)}, a.calendarOpts...)
	a.calendar, err = chrono.NewFromConfig(cmd.Context(), a.cfg, calOpts...)
	if err != nil {
		return err
	}
	a.logger.DebugContext(cmd.Context(), "calendar ready",
		logger.Zone(a.calendar.Location()),
		logger.Locale(a.calendar.Locale().Tag.String()),
	)
	return nil
}

// localeAttr tags records logged under a context built by ContextWithLocale.
func localeAttr(ctx context.Context) (slog.Attr, bool) {
	l, ok := chrono.LocaleFromContext(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.Locale(l.Tag.String()), true
}

// at parses value in the default zone, or in the zone given by the
// command's --in flag when set.
func (a *app) at(cmd *cobra.Command, value string) (chrono.Time, error) {
	var tz any
	if f := cmd.Flags().Lookup("in"); f != nil && f.Changed {
		tz = f.Value.String()
	}
	return a.calendar.At(value, tz)
}
