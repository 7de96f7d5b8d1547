package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"datefield-cli/internal/datefield"
	"datefield-cli/internal/format"
	"datefield-cli/internal/monthname"
	"datefield-cli/internal/store"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	PrettyJSON bool
	Format     string
	Today      string
	TZ         string
	Locale     string
	MinYear    int
	LogLevel   string

	cfg    *store.GlobalConfig
	logger *log.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{logger: log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})}

	cmd := &cobra.Command{
		Use:          "datefield",
		Short:        "Three-field date picker: calendar ranges, option lists and typeahead filters",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Pick a date interactively and remember it under a key
  datefield pick dob

  # Option lists for a host UI
  datefield options months --year 2024 --query ju
  datefield options days --year 2024 --month 2 --format text

  # Check a stored value (shortcut for: datefield parse 2023-02-30)
  datefield 2023-02-30
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.init(cmd)
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("DATEFIELD_DIR", ""), "Directory for the value store (default: the config dir)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON/EDN output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("DATEFIELD_FORMAT", "json"), "Output format (json|edn|text)")
	cmd.PersistentFlags().StringVar(&app.Today, "today", envOr("DATEFIELD_TODAY", ""), "Pin today's date (YYYY-MM-DD) instead of reading the clock")
	cmd.PersistentFlags().StringVar(&app.TZ, "tz", envOr("DATEFIELD_TZ", ""), "IANA time zone used to derive today (default: config timezone, then local)")
	cmd.PersistentFlags().StringVar(&app.Locale, "locale", envOr("DATEFIELD_LOCALE", ""), "Locale for month names (default: config locale, then en-AU)")
	cmd.PersistentFlags().IntVar(&app.MinYear, "min-year", envInt("DATEFIELD_MIN_YEAR", 0), "Oldest selectable year (default: config minYear, then 1900)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("DATEFIELD_LOG_LEVEL", "warn"), "Log level (debug|info|warn|error)")

	cmd.AddCommand(newParseCmd(app))
	cmd.AddCommand(newOptionsCmd(app))
	cmd.AddCommand(newReconcileCmd(app))
	cmd.AddCommand(newPickCmd(app))
	cmd.AddCommand(newValuesCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func (app *App) init(cmd *cobra.Command) error {
	level, err := log.ParseLevel(strings.TrimSpace(app.LogLevel))
	if err != nil {
		return writeErr(cmd, fmt.Errorf("invalid --log-level: %w", err))
	}
	app.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Level:  level,
		Prefix: "datefield",
	})

	cfg, err := store.LoadConfig()
	if err != nil {
		return writeErr(cmd, fmt.Errorf("load config: %w", err))
	}
	app.cfg = cfg
	return nil
}

func (app *App) config() *store.GlobalConfig {
	if app.cfg == nil {
		return &store.GlobalConfig{}
	}
	return app.cfg
}

func (app *App) minYear() int {
	if app.MinYear != 0 {
		return app.MinYear
	}
	return app.config().EffectiveMinYear()
}

// minYearFor returns the oldest selectable year for today. A configured
// minimum after today's year is pulled back to today's year.
func (app *App) minYearFor(today datefield.DateParts) int {
	n := app.minYear()
	if c := datefield.ClampMinYear(n, today); c != n {
		app.logger.Warn("minimum year is after today, using today's year", "minYear", n, "today", today.String())
		return c
	}
	return n
}

func (app *App) locale() string {
	if s := strings.TrimSpace(app.Locale); s != "" {
		return s
	}
	return app.config().EffectiveLocale()
}

// monthOptions builds the month column. names overrides the configured
// month names when non-empty.
func (app *App) monthOptions(names []string) []datefield.MonthOption {
	if len(names) == 0 {
		names = app.config().MonthNames
	}
	loc := app.locale()
	app.logger.Debug("month options", "locale", loc, "resolved", datefield.ResolveLocale(loc).String(), "names", len(names))
	return datefield.BuildMonthOptions(monthname.Formatter{}, loc, names)
}

func (app *App) valueStore() (store.Store, error) {
	dir := strings.TrimSpace(app.Dir)
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return store.Store{}, err
		}
		dir = d
	}
	app.logger.Debug("value store", "path", store.Store{Dir: dir}.SQLitePath())
	return store.Store{Dir: dir}, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envInt(k string, d int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return d
	}
	return n
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
