package datefield

import (
	"encoding/json"
	"testing"
)

func fmtSel(s Selection) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestSelection_ISODate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		sel    Selection
		want   string
		wantOK bool
	}{
		{name: "empty", sel: Selection{}},
		{name: "year only", sel: Selection{Year: Int(2024)}},
		{name: "no day", sel: Selection{Year: Int(2024), Month: Int(6)}},
		{name: "no year", sel: Selection{Month: Int(6), Day: Int(1)}},
		{name: "complete", sel: Selection{Year: Int(2024), Month: Int(6), Day: Int(1)}, want: "2024-06-01", wantOK: true},
		{name: "tiny year", sel: Selection{Year: Int(1), Month: Int(1), Day: Int(1)}, want: "0001-01-01", wantOK: true},
	}
	for _, tt := range tests {
		got, ok := tt.sel.ISODate()
		if ok != tt.wantOK || got != tt.want {
			t.Fatalf("%s: ISODate() = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSelectionFromISO(t *testing.T) {
	t.Parallel()

	s := SelectionFromISO("2023-02-28")
	if got, ok := s.ISODate(); !ok || got != "2023-02-28" {
		t.Fatalf("SelectionFromISO round trip: %q %v", got, ok)
	}
	if s := SelectionFromISO("garbage"); s.Year != nil || s.Month != nil || s.Day != nil {
		t.Fatalf("expected empty selection, got %s", fmtSel(s))
	}
}

func TestReconcileSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		prior Selection
		want  Selection
	}{
		{
			name:  "empty stays empty",
			prior: Selection{},
			want:  Selection{},
		},
		{
			name:  "valid past date untouched",
			prior: Selection{Year: Int(2023), Month: Int(12), Day: Int(31)},
			want:  Selection{Year: Int(2023), Month: Int(12), Day: Int(31)},
		},
		{
			name:  "day clamped to month length",
			prior: Selection{Year: Int(2023), Month: Int(4), Day: Int(31)},
			want:  Selection{Year: Int(2023), Month: Int(4), Day: Int(30)},
		},
		{
			name:  "leap day clamped when year becomes non-leap",
			prior: Selection{Year: Int(2023), Month: Int(2), Day: Int(29)},
			want:  Selection{Year: Int(2023), Month: Int(2), Day: Int(28)},
		},
		{
			name:  "day clamped to today",
			prior: Selection{Year: Int(2024), Month: Int(6), Day: Int(25)},
			want:  Selection{Year: Int(2024), Month: Int(6), Day: Int(10)},
		},
		{
			name:  "future month cleared with its day",
			prior: Selection{Year: Int(2024), Month: Int(9), Day: Int(3)},
			want:  Selection{Year: Int(2024)},
		},
		{
			name:  "future year cleared",
			prior: Selection{Year: Int(2025), Month: Int(1), Day: Int(1)},
			want:  Selection{Month: Int(1), Day: Int(1)},
		},
		{
			name:  "year before minimum cleared",
			prior: Selection{Year: Int(1899), Month: Int(2), Day: Int(29)},
			want:  Selection{Month: Int(2), Day: Int(28)},
		},
		{
			name:  "day without month kept",
			prior: Selection{Year: Int(2024), Day: Int(31)},
			want:  Selection{Year: Int(2024), Day: Int(31)},
		},
		{
			name:  "no year uses fallback february",
			prior: Selection{Month: Int(2), Day: Int(30)},
			want:  Selection{Month: Int(2), Day: Int(28)},
		},
		{
			name:  "out of range month cleared",
			prior: Selection{Year: Int(2020), Month: Int(13), Day: Int(1)},
			want:  Selection{Year: Int(2020)},
		},
	}
	for _, tt := range tests {
		got := ReconcileSelection(tt.prior, today, 1900)
		if fmtSel(got) != fmtSel(tt.want) {
			t.Fatalf("%s: ReconcileSelection:\n got: %s\nwant: %s", tt.name, fmtSel(got), fmtSel(tt.want))
		}
	}
}

func TestReconcileSelection_DoesNotAliasPrior(t *testing.T) {
	t.Parallel()

	prior := Selection{Year: Int(2023), Month: Int(4), Day: Int(12)}
	got := ReconcileSelection(prior, today, 1900)
	*got.Day = 1
	if *prior.Day != 12 {
		t.Fatalf("reconciled selection shares storage with prior")
	}
}

func TestReconcileSelection_MinYearAfterToday(t *testing.T) {
	t.Parallel()

	// A minimum year past today's year must not widen the range into the future.
	got := ReconcileSelection(Selection{Year: Int(2500), Month: Int(12), Day: Int(31)}, today, 3000)
	want := Selection{Month: Int(12), Day: Int(31)}
	if fmtSel(got) != fmtSel(want) {
		t.Fatalf("ReconcileSelection:\n got: %s\nwant: %s", fmtSel(got), fmtSel(want))
	}

	got = ReconcileSelection(Selection{Year: Int(2024), Month: Int(1), Day: Int(1)}, today, 3000)
	if got.Year != nil {
		t.Fatalf("no year is selectable when minYear is after today, got %s", fmtSel(got))
	}

	got = ReconcileSelection(Selection{Year: Int(2024), Month: Int(1), Day: Int(1)}, today, ClampMinYear(3000, today))
	if v, ok := got.ISODate(); !ok || v != "2024-01-01" {
		t.Fatalf("clamped minYear should allow today's year, got %q %v", v, ok)
	}
}
