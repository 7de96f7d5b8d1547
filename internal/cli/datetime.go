package cli

import (
	"fmt"
	"strings"
	"time"

	"datefield-cli/internal/datefield"
)

// resolveToday returns the reference date for range checks:
// --today (or DATEFIELD_TODAY) when set, otherwise the clock in --tz, the
// configured timezone, or local time, in that order.
func (app *App) resolveToday(now time.Time) (datefield.DateParts, error) {
	if s := strings.TrimSpace(app.Today); s != "" {
		d, ok := datefield.ParseISODate(s)
		if !ok {
			return datefield.DateParts{}, fmt.Errorf("invalid --today %q (expected YYYY-MM-DD)", s)
		}
		if err := datefield.CheckDate(d, d, d.Year); err != nil {
			return datefield.DateParts{}, fmt.Errorf("invalid --today: %w", err)
		}
		return d, nil
	}

	tz := strings.TrimSpace(app.TZ)
	if tz == "" {
		tz = strings.TrimSpace(app.config().Timezone)
	}
	loc := time.Local
	if tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return datefield.DateParts{}, fmt.Errorf("invalid time zone %q: %w", tz, err)
		}
		loc = l
	}
	today := datefield.Today(now.In(loc))
	app.logger.Debug("today", "date", today.String(), "tz", loc.String())
	return today, nil
}
