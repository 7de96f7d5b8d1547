package datefield

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// DefaultLocale is used whenever a locale identifier cannot be parsed.
var DefaultLocale = language.MustParse("en-AU")

// MonthOption is one entry of the month column.
type MonthOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// MonthNamer formats a month as its long, locale-specific name.
type MonthNamer interface {
	LongMonthName(locale language.Tag, month time.Month) string
}

// ResolveLocale parses a BCP 47 identifier ("de-DE", "en_GB" is tolerated),
// falling back to DefaultLocale when it is empty or malformed.
func ResolveLocale(id string) language.Tag {
	id = strings.ReplaceAll(strings.TrimSpace(id), "_", "-")
	if id == "" {
		return DefaultLocale
	}
	tag, err := language.Parse(id)
	if err != nil || tag == language.Und {
		return DefaultLocale
	}
	return tag
}

// BuildYearOptions lists years from the larger bound down to the smaller.
// Swapped bounds are tolerated so a misconfigured minimum still yields a
// usable descending list.
func BuildYearOptions(minYear, maxYear int) []int {
	hi, lo := maxYear, minYear
	if lo > hi {
		hi, lo = lo, hi
	}
	out := make([]int, 0, hi-lo+1)
	for y := hi; y >= lo; y-- {
		out = append(out, y)
	}
	return out
}

// BuildMonthOptions returns the twelve month options. When names holds at
// least 12 entries the first 12 are used as labels, with blank entries
// filled in by namer; shorter lists are ignored entirely.
func BuildMonthOptions(namer MonthNamer, locale string, names []string) []MonthOption {
	tag := ResolveLocale(locale)
	useNames := len(names) >= 12

	out := make([]MonthOption, 0, 12)
	for m := 1; m <= 12; m++ {
		label := ""
		if useNames && strings.TrimSpace(names[m-1]) != "" {
			label = names[m-1]
		}
		if label == "" && namer != nil {
			label = namer.LongMonthName(tag, time.Month(m))
		}
		if label == "" {
			label = time.Month(m).String()
		}
		out = append(out, MonthOption{Value: m, Label: label})
	}
	return out
}
