package datefield

import (
	"strconv"
	"strings"
)

// AvailableMonths keeps the options that do not run past today, in input order.
func AvailableMonths(all []MonthOption, year *int, today DateParts) []MonthOption {
	max := MaxMonthForYear(year, today)
	out := make([]MonthOption, 0, len(all))
	for _, o := range all {
		if o.Value <= max {
			out = append(out, o)
		}
	}
	return out
}

// AvailableDays lists 1..N for the current selection. Without a month the
// full 1..31 is returned; hosts should disable the day field in that state.
func AvailableDays(year, month *int, today DateParts) []int {
	max := MaxDayForSelection(year, month, today)
	out := make([]int, 0, max)
	for d := 1; d <= max; d++ {
		out = append(out, d)
	}
	return out
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// FilterMonthOptions keeps months whose label contains the query,
// ignoring case. A blank query returns options unchanged.
func FilterMonthOptions(options []MonthOption, query string) []MonthOption {
	q := normalizeQuery(query)
	if q == "" {
		return options
	}
	out := make([]MonthOption, 0, len(options))
	for _, o := range options {
		if strings.Contains(strings.ToLower(o.Label), q) {
			out = append(out, o)
		}
	}
	return out
}

// FilterNumberOptions keeps values whose decimal form contains the query.
func FilterNumberOptions(options []int, query string) []int {
	return filterInts(options, query, strings.Contains)
}

// FilterYearOptions keeps values whose decimal form starts with the query
// (prefix, not substring: "19" does not match 2019).
func FilterYearOptions(options []int, query string) []int {
	return filterInts(options, query, strings.HasPrefix)
}

func filterInts(options []int, query string, match func(s, q string) bool) []int {
	q := normalizeQuery(query)
	if q == "" {
		return options
	}
	out := make([]int, 0, len(options))
	for _, n := range options {
		if match(strconv.Itoa(n), q) {
			out = append(out, n)
		}
	}
	return out
}
