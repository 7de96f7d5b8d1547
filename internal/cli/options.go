package cli

import (
	"time"

	"datefield-cli/internal/datefield"
	"datefield-cli/internal/monthname"

	"github.com/spf13/cobra"
)

func newOptionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Option lists for the year, month and day fields (availability + typeahead)",
	}
	cmd.AddCommand(newOptionsYearsCmd(app))
	cmd.AddCommand(newOptionsMonthsCmd(app))
	cmd.AddCommand(newOptionsDaysCmd(app))
	cmd.AddCommand(newOptionsLocalesCmd(app))
	return cmd
}

// optionalInt returns nil when the flag was not given: "not chosen" is distinct from any value.
func optionalInt(cmd *cobra.Command, name string, v int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return datefield.Int(v)
}

func newOptionsYearsCmd(app *App) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "years",
		Short: "Years from today's year down to the minimum year (prefix filter)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := app.resolveToday(time.Now())
			if err != nil {
				return writeErr(cmd, err)
			}
			years := datefield.BuildYearOptions(app.minYearFor(today), today.Year)
			return writeOut(cmd, app, map[string]any{"data": datefield.FilterYearOptions(years, query)})
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Typeahead query (prefix match)")
	return cmd
}

func newOptionsMonthsCmd(app *App) *cobra.Command {
	var (
		year  int
		query string
		names []string
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "months",
		Short: "Month options for the selected year (substring filter on labels)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := app.resolveToday(time.Now())
			if err != nil {
				return writeErr(cmd, err)
			}
			months := app.monthOptions(names)
			if !all {
				months = datefield.AvailableMonths(months, optionalInt(cmd, "year", year), today)
			}
			return writeOut(cmd, app, map[string]any{"data": datefield.FilterMonthOptions(months, query)})
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Selected year (omit when no year is chosen)")
	cmd.Flags().StringVar(&query, "query", "", "Typeahead query (case-insensitive substring)")
	cmd.Flags().StringSliceVar(&names, "month-names", nil, "Twelve comma-separated month labels (blank entries use the locale)")
	cmd.Flags().BoolVar(&all, "all", false, "List all twelve months, ignoring today")
	return cmd
}

func newOptionsDaysCmd(app *App) *cobra.Command {
	var (
		year  int
		month int
		query string
	)

	cmd := &cobra.Command{
		Use:   "days",
		Short: "Day options for the selected year and month (substring filter)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := app.resolveToday(time.Now())
			if err != nil {
				return writeErr(cmd, err)
			}
			y := optionalInt(cmd, "year", year)
			m := optionalInt(cmd, "month", month)
			if m != nil && (*m < 1 || *m > 12) {
				return writeErr(cmd, invalidDateError{input: cmd.Flag("month").Value.String(), reason: "month must be 1-12"})
			}
			days := datefield.FilterNumberOptions(datefield.AvailableDays(y, m, today), query)
			return writeOut(cmd, app, map[string]any{
				"data": days,
				"meta": map[string]any{
					"disabled": m == nil,
					"maxDay":   datefield.MaxDayForSelection(y, m, today),
				},
			})
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Selected year (omit when no year is chosen)")
	cmd.Flags().IntVar(&month, "month", 0, "Selected month 1-12 (omit when no month is chosen)")
	cmd.Flags().StringVar(&query, "query", "", "Typeahead query (substring match)")
	return cmd
}

func newOptionsLocalesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "Locales with built-in month names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, map[string]any{"data": monthname.Locales()})
		},
	}
}
