package monthname

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/da"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/de_AT"
	"github.com/go-playground/locales/de_DE"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_AU"
	"github.com/go-playground/locales/en_CA"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_NZ"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/es_ES"
	"github.com/go-playground/locales/fi"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/fr_CA"
	"github.com/go-playground/locales/fr_FR"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/nb"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/pl"
	"github.com/go-playground/locales/pt"
	"github.com/go-playground/locales/pt_BR"
	"github.com/go-playground/locales/sv"
	"github.com/go-playground/locales/zh"
	"golang.org/x/text/language"
)

// Formatter renders long month names from CLDR locale tables. The zero
// value is ready to use and safe for concurrent callers.
type Formatter struct{}

// en-AU goes first: the matcher falls back to the first entry.
var constructors = []func() locales.Translator{
	en_AU.New, en.New, en_CA.New, en_GB.New, en_NZ.New, en_US.New,
	da.New,
	de.New, de_AT.New, de_DE.New,
	es.New, es_ES.New,
	fi.New,
	fr.New, fr_CA.New, fr_FR.New,
	it.New,
	ja.New,
	nb.New,
	nl.New,
	pl.New,
	pt.New, pt_BR.New,
	sv.New,
	zh.New,
}

var (
	matcherOnce sync.Once
	matcher     language.Matcher
	supported   []locales.Translator
)

func initMatcher() {
	supported = make([]locales.Translator, 0, len(constructors))
	tags := make([]language.Tag, 0, len(constructors))
	for _, newTranslator := range constructors {
		tr := newTranslator()
		tag, err := language.Parse(strings.ReplaceAll(tr.Locale(), "_", "-"))
		if err != nil {
			continue
		}
		supported = append(supported, tr)
		tags = append(tags, tag)
	}
	matcher = language.NewMatcher(tags)
}

// Resolve returns the translator that best serves tag, or en-AU when
// nothing is close.
func Resolve(tag language.Tag) locales.Translator {
	matcherOnce.Do(initMatcher)
	_, idx, conf := matcher.Match(tag)
	if conf == language.No || idx < 0 || idx >= len(supported) {
		return supported[0]
	}
	return supported[idx]
}

// Match returns the BCP 47 identifier of the month table used for tag.
func Match(tag language.Tag) string {
	return strings.ReplaceAll(Resolve(tag).Locale(), "_", "-")
}

// LongMonthName implements datefield.MonthNamer.
func (Formatter) LongMonthName(locale language.Tag, month time.Month) string {
	if month < time.January || month > time.December {
		return month.String()
	}
	if name := Resolve(locale).MonthWide(month); name != "" {
		return name
	}
	return month.String()
}

// Locales lists the locale identifiers with month-name tables, BCP 47 style.
func Locales() []string {
	matcherOnce.Do(initMatcher)
	out := make([]string, 0, len(supported))
	for _, tr := range supported {
		out = append(out, strings.ReplaceAll(tr.Locale(), "_", "-"))
	}
	sort.Strings(out)
	return out
}
