package cli

import (
	"time"

	"datefield-cli/internal/datefield"

	"github.com/spf13/cobra"
)

func newReconcileCmd(app *App) *cobra.Command {
	var year, month, day int

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Re-apply the range policy to a partial selection (clamp or clear day/month)",
		Long: `Re-apply the range policy after the year or month changed.

A year outside [min-year, today] is cleared. A month past the last
selectable month is cleared with its day. A day past the last selectable
day is clamped. The value is null unless all three fields survive.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := app.resolveToday(time.Now())
			if err != nil {
				return writeErr(cmd, err)
			}
			prior := datefield.Selection{
				Year:  optionalInt(cmd, "year", year),
				Month: optionalInt(cmd, "month", month),
				Day:   optionalInt(cmd, "day", day),
			}
			next := datefield.ReconcileSelection(prior, today, app.minYearFor(today))

			var value *string
			if v, ok := next.ISODate(); ok {
				value = &v
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"selection": next,
				"value":     value,
			}})
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Selected year")
	cmd.Flags().IntVar(&month, "month", 0, "Selected month")
	cmd.Flags().IntVar(&day, "day", 0, "Selected day")
	return cmd
}
