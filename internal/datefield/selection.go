package datefield

// Selection is the picker's partial state. A nil field has not been chosen yet.
type Selection struct {
	Year  *int `json:"year"`
	Month *int `json:"month"`
	Day   *int `json:"day"`
}

// Int returns a pointer to n, for building selections.
func Int(n int) *int { return &n }

// Complete reports whether all three fields are chosen.
func (s Selection) Complete() bool {
	return s.Year != nil && s.Month != nil && s.Day != nil
}

// ISODate assembles the bound value. Partial selections never produce one.
func (s Selection) ISODate() (string, bool) {
	if !s.Complete() {
		return "", false
	}
	return FormatISODate(*s.Year, *s.Month, *s.Day), true
}

// SelectionFromISO seeds a selection from a stored value. Anything that
// does not parse yields an empty selection.
func SelectionFromISO(text string) Selection {
	d, ok := ParseISODate(text)
	if !ok {
		return Selection{}
	}
	return Selection{Year: Int(d.Year), Month: Int(d.Month), Day: Int(d.Day)}
}

// ReconcileSelection re-applies the range policy after the year or month
// changed. A year outside [minYear, today.Year] is cleared; with minYear
// after today's year no year survives. A month past
// the last selectable month is cleared together with its day. A day past
// the last selectable day is clamped to it.
func ReconcileSelection(prior Selection, today DateParts, minYear int) Selection {
	next := Selection{}
	if prior.Year != nil {
		if y := *prior.Year; y >= minYear && y <= today.Year {
			next.Year = Int(y)
		}
	}
	if prior.Month != nil {
		m := *prior.Month
		if m >= 1 && m <= MaxMonthForYear(next.Year, today) {
			next.Month = Int(m)
		}
	}
	if prior.Day != nil && (prior.Month == nil || next.Month != nil) {
		d := *prior.Day
		if max := MaxDayForSelection(next.Year, next.Month, today); d > max {
			d = max
		}
		if d < 1 {
			d = 1
		}
		next.Day = Int(d)
	}
	return next
}
