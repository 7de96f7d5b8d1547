package cli

import (
	"errors"
	"time"

	"datefield-cli/internal/datefield"

	"github.com/spf13/cobra"
)

type parseResult struct {
	Input  string               `json:"input"`
	Date   *datefield.DateParts `json:"date"`
	ISO    *string              `json:"iso"`
	Valid  bool                 `json:"valid"`
	Reason string               `json:"reason,omitempty"`
}

func checkISO(input string, today datefield.DateParts, minYear int) parseResult {
	res := parseResult{Input: input}
	d, ok := datefield.ParseISODate(input)
	if !ok {
		res.Reason = "not a YYYY-MM-DD date"
		return res
	}
	iso := d.String()
	res.Date = &d
	res.ISO = &iso
	if err := datefield.CheckDate(d, today, minYear); err != nil {
		var re *datefield.RangeError
		if errors.As(err, &re) {
			res.Reason = re.Reason
		} else {
			res.Reason = err.Error()
		}
		return res
	}
	res.Valid = true
	return res
}

func newParseCmd(app *App) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "parse <YYYY-MM-DD>",
		Short: "Parse a stored date value and check it against the selectable range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := app.resolveToday(time.Now())
			if err != nil {
				return writeErr(cmd, err)
			}
			res := checkISO(args[0], today, app.minYearFor(today))
			if err := writeOut(cmd, app, map[string]any{"data": res}); err != nil {
				return err
			}
			if strict && !res.Valid {
				return writeErr(cmd, invalidDateError{input: res.Input, reason: res.Reason})
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when the date is not selectable")
	return cmd
}
