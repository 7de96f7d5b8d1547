package monthname

import (
	"testing"
	"time"

	"datefield-cli/internal/datefield"

	"golang.org/x/text/language"
)

var _ datefield.MonthNamer = Formatter{}

func TestLongMonthName_English(t *testing.T) {
	t.Parallel()

	f := Formatter{}
	for _, loc := range []string{"en-AU", "en-AU", "en-GB", "en"} {
		if got := f.LongMonthName(language.MustParse(loc), time.January); got != "January" {
			t.Fatalf("%s: got %q, want January", loc, got)
		}
		if got := f.LongMonthName(language.MustParse(loc), time.December); got != "December" {
			t.Fatalf("%s: got %q, want December", loc, got)
		}
	}
}

func TestLongMonthName_German(t *testing.T) {
	t.Parallel()

	got := Formatter{}.LongMonthName(language.MustParse("de-DE"), time.March)
	if got != "März" {
		t.Fatalf("got %q, want März", got)
	}
}

func TestLongMonthName_UnsupportedFallsBackToEnglish(t *testing.T) {
	t.Parallel()

	got := Formatter{}.LongMonthName(language.Und, time.May)
	if got != "May" {
		t.Fatalf("got %q, want May", got)
	}
}

func TestBuildMonthOptions_WithFormatter(t *testing.T) {
	t.Parallel()

	opts := datefield.BuildMonthOptions(Formatter{}, "not-a-locale!", nil)
	if len(opts) != 12 || opts[0].Label != "January" || opts[11].Label != "December" {
		t.Fatalf("unexpected options: %#v", opts)
	}
}

func TestLongMonthName_French(t *testing.T) {
	t.Parallel()

	got := Formatter{}.LongMonthName(language.MustParse("fr-BE"), time.August)
	if got != "août" {
		t.Fatalf("got %q, want août", got)
	}
}

func TestLocales_IncludesEnglish(t *testing.T) {
	t.Parallel()

	found := false
	for _, l := range Locales() {
		if l == "en-AU" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected en-AU among %v", Locales())
	}
}

func TestMatch_FallsBackToAustralianEnglish(t *testing.T) {
	t.Parallel()

	tests := []struct {
		locale string
		want   string
	}{
		{locale: "ko-KR", want: "en-AU"},
		{locale: "en-AU", want: "en-AU"},
		{locale: "en-US", want: "en-US"},
		{locale: "de-DE", want: "de-DE"},
	}
	for _, tt := range tests {
		if got := Match(language.MustParse(tt.locale)); got != tt.want {
			t.Fatalf("Match(%s) = %q, want %q", tt.locale, got, tt.want)
		}
	}
	if got := Match(language.Und); got != "en-AU" {
		t.Fatalf("Match(und) = %q, want en-AU", got)
	}
	if got := (Formatter{}).LongMonthName(language.MustParse("ko-KR"), time.October); got != "October" {
		t.Fatalf("unsupported locale should use en-AU names, got %q", got)
	}
}
