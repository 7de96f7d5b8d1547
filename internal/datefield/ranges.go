package datefield

import "fmt"

// FallbackYear is used to size months while no year has been chosen.
// It is not a leap year, so February offers 28 days until a year says otherwise.
const FallbackYear = 2001

// ClampMinYear keeps a configured minimum year from reaching past today:
// the oldest selectable year is never later than today's year.
func ClampMinYear(minYear int, today DateParts) int {
	if minYear > today.Year {
		return today.Year
	}
	return minYear
}

// MaxMonthForYear returns the last selectable month. Only the current year
// is truncated (at today's month); an unset year or a past year allows all 12.
func MaxMonthForYear(year *int, today DateParts) int {
	if year != nil && *year == today.Year {
		return today.Month
	}
	return 12
}

// MaxDayForSelection returns the last selectable day for the chosen month.
// With no month chosen there is nothing to derive and 31 is returned.
func MaxDayForSelection(year, month *int, today DateParts) int {
	if month == nil {
		return 31
	}
	y := FallbackYear
	if year != nil {
		y = *year
	}
	days := DaysInMonth(y, *month)
	if y == today.Year && *month == today.Month && today.Day < days {
		return today.Day
	}
	return days
}

// RangeError reports why a syntactically valid date is not selectable.
type RangeError struct {
	Date   DateParts
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("date %s out of range: %s", e.Date, e.Reason)
}

// CheckDate applies calendar validity and the range policy to a parsed
// date: the day must exist in its month, the date must not be after today
// and the year must not precede minYear.
func CheckDate(d DateParts, today DateParts, minYear int) error {
	if d.Month < 1 || d.Month > 12 {
		return &RangeError{Date: d, Reason: "month must be 1-12"}
	}
	if d.Day < 1 || d.Day > DaysInMonth(d.Year, d.Month) {
		return &RangeError{Date: d, Reason: fmt.Sprintf("month has %d days", DaysInMonth(d.Year, d.Month))}
	}
	if d.Year < minYear {
		return &RangeError{Date: d, Reason: fmt.Sprintf("year before %d", minYear)}
	}
	if d.Year > today.Year {
		return &RangeError{Date: d, Reason: "in the future"}
	}
	y := d.Year
	if d.Month > MaxMonthForYear(&y, today) {
		return &RangeError{Date: d, Reason: "in the future"}
	}
	m := d.Month
	if d.Day > MaxDayForSelection(&y, &m, today) {
		return &RangeError{Date: d, Reason: "in the future"}
	}
	return nil
}
