package datefield

import (
	"reflect"
	"testing"
)

func allMonths() []MonthOption {
	return BuildMonthOptions(nil, "en-AU", nil)
}

func days(n int) []int {
	out := make([]int, 0, n)
	for d := 1; d <= n; d++ {
		out = append(out, d)
	}
	return out
}

func TestAvailableMonths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		year     *int
		wantLast int
		wantLen  int
	}{
		{name: "current year", year: Int(2024), wantLast: 6, wantLen: 6},
		{name: "past year", year: Int(2023), wantLast: 12, wantLen: 12},
		{name: "no year", year: nil, wantLast: 12, wantLen: 12},
	}
	for _, tt := range tests {
		got := AvailableMonths(allMonths(), tt.year, today)
		if len(got) != tt.wantLen || got[len(got)-1].Value != tt.wantLast {
			t.Fatalf("%s: got %d options ending at %d, want %d ending at %d",
				tt.name, len(got), got[len(got)-1].Value, tt.wantLen, tt.wantLast)
		}
	}
}

func TestAvailableMonths_PreservesInputOrder(t *testing.T) {
	t.Parallel()

	in := []MonthOption{{12, "Dec"}, {3, "Mar"}, {7, "Jul"}, {1, "Jan"}, {6, "Jun"}}
	got := AvailableMonths(in, Int(2024), today)
	want := []MonthOption{{3, "Mar"}, {1, "Jan"}, {6, "Jun"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AvailableMonths:\n got: %#v\nwant: %#v", got, want)
	}
}

func TestAvailableDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		year  *int
		month *int
		want  []int
	}{
		{name: "current month", year: Int(2024), month: Int(6), want: days(10)},
		{name: "past month", year: Int(2024), month: Int(5), want: days(31)},
		{name: "leap february", year: Int(2024), month: Int(2), want: days(29)},
		{name: "no month", year: Int(2024), month: nil, want: days(31)},
		{name: "no year", year: nil, month: Int(2), want: days(28)},
	}
	for _, tt := range tests {
		got := AvailableDays(tt.year, tt.month, today)
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("%s: AvailableDays:\n got: %v\nwant: %v", tt.name, got, tt.want)
		}
	}
}

func TestFilterNumberOptions(t *testing.T) {
	t.Parallel()

	got := FilterNumberOptions(days(31), "3")
	want := []int{3, 13, 23, 30, 31}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FilterNumberOptions:\n got: %v\nwant: %v", got, want)
	}

	if got := FilterNumberOptions(days(31), " 12 "); !reflect.DeepEqual(got, []int{12}) {
		t.Fatalf("trimmed query: got %v", got)
	}
	if got := FilterNumberOptions(days(31), "x"); len(got) != 0 {
		t.Fatalf("non-numeric query should match nothing, got %v", got)
	}
}

func TestFilterYearOptions(t *testing.T) {
	t.Parallel()

	got := FilterYearOptions(BuildYearOptions(1901, 1905), "19")
	want := []int{1905, 1904, 1903, 1902, 1901}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FilterYearOptions:\n got: %v\nwant: %v", got, want)
	}

	years := BuildYearOptions(1990, 2024)
	got = FilterYearOptions(years, "19")
	for _, y := range got {
		if y < 1990 || y > 1999 {
			t.Fatalf("prefix match leaked %d", y)
		}
	}
	if len(got) != 10 {
		t.Fatalf("expected 10 years in the 1990s, got %d", len(got))
	}
	if got := FilterYearOptions(years, "202"); !reflect.DeepEqual(got, []int{2024, 2023, 2022, 2021, 2020}) {
		t.Fatalf("prefix 202: got %v", got)
	}
}

func TestFilterMonthOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query string
		want  []int
	}{
		{query: "ju", want: []int{6, 7}},
		{query: "JU", want: []int{6, 7}},
		{query: "  ber ", want: []int{9, 10, 11, 12}},
		{query: "ary", want: []int{1, 2}},
		{query: "zzz", want: []int{}},
	}
	for _, tt := range tests {
		got := FilterMonthOptions(allMonths(), tt.query)
		values := make([]int, 0, len(got))
		for _, o := range got {
			values = append(values, o.Value)
		}
		if !reflect.DeepEqual(values, tt.want) {
			t.Fatalf("FilterMonthOptions(%q): got %v, want %v", tt.query, values, tt.want)
		}
	}
}

func TestFilters_BlankQueryReturnsInput(t *testing.T) {
	t.Parallel()

	months := allMonths()
	nums := []int{5, 1, 3}
	years := []int{2024, 2023}
	for _, q := range []string{"", " ", "\t\n"} {
		if got := FilterMonthOptions(months, q); !reflect.DeepEqual(got, months) {
			t.Fatalf("FilterMonthOptions(%q) changed input", q)
		}
		if got := FilterNumberOptions(nums, q); !reflect.DeepEqual(got, nums) {
			t.Fatalf("FilterNumberOptions(%q) changed input: %v", q, got)
		}
		if got := FilterYearOptions(years, q); !reflect.DeepEqual(got, years) {
			t.Fatalf("FilterYearOptions(%q) changed input: %v", q, got)
		}
	}
}
