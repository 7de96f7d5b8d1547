package datefield

import (
	"regexp"
	"strconv"
	"time"
)

// DateParts is a calendar date (or a "today" reference) split into its
// three picker fields. No calendar validity is implied by construction.
type DateParts struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func (d DateParts) String() string {
	return FormatISODate(d.Year, d.Month, d.Day)
}

// Today converts a wall-clock reading into a reference date in the
// reading's own location.
func Today(now time.Time) DateParts {
	y, m, d := now.Date()
	return DateParts{Year: y, Month: int(m), Day: d}
}

// IsLeapYear reports whether year has 366 days under the proleptic
// Gregorian rule.
func IsLeapYear(year int) bool {
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}

// DaysInMonth returns the length of month (1-12) in year.
// Months outside 1-12 return 31; callers are expected not to ask.
func DaysInMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// FormatISODate renders YYYY-MM-DD without checking the values.
func FormatISODate(year, month, day int) string {
	return pad(year, 4) + "-" + pad(month, 2) + "-" + pad(day, 2)
}

func pad(n, width int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.Itoa(n)
	for len(s) < width {
		s = "0" + s
	}
	if neg {
		return "-" + s
	}
	return s
}

var reISODate = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// ParseISODate accepts exactly YYYY-MM-DD with a non-zero year, month 1-12
// and day 1-31. The day is not checked against the month: "2023-02-30"
// parses. Use CheckDate for calendar validity.
func ParseISODate(text string) (DateParts, bool) {
	m := reISODate.FindStringSubmatch(text)
	if m == nil {
		return DateParts{}, false
	}
	// The regexp guarantees ASCII digits so Atoi cannot fail.
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])
	if y == 0 || mo < 1 || mo > 12 || d < 1 || d > 31 {
		return DateParts{}, false
	}
	return DateParts{Year: y, Month: mo, Day: d}, true
}
