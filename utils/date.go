package utils

import (
	"encoding/json"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// InvalidDate is rendered for input that cannot be read as a date.
const InvalidDate = "?"

var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.UnixDate,
}

var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.ANSIC,
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006",
	"January 2, 2006",
	"2006/01/02",
}

// date-only forms are UTC like in ECMAScript
var utcLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
}

// maxMillis is the largest distance from the epoch a date may have, 100 million days.
const maxMillis = 8.64e15

type dateRendering struct {
	locale     monday.Locale
	dateLayout string
	timeLayout string
	separator  string
}

var supportedLocales = []language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
	language.German,
	language.French,
	language.Spanish,
	language.Italian,
	language.Dutch,
}

var localeMatcher = language.NewMatcher(supportedLocales)

// one rendering per entry of supportedLocales
var renderings = []dateRendering{
	{locale: monday.LocaleEnUS, dateLayout: "Jan 2, 2006", timeLayout: "03:04:05 PM", separator: ", "},
	{locale: monday.LocaleEnGB, dateLayout: "2 Jan 2006", timeLayout: "15:04:05", separator: ", "},
	{locale: monday.LocaleDeDE, dateLayout: "2. Jan 2006", timeLayout: "15:04:05", separator: ", "},
	{locale: monday.LocaleFrFR, dateLayout: "2 Jan 2006", timeLayout: "15:04:05", separator: " à "},
	{locale: monday.LocaleEsES, dateLayout: "2 Jan 2006", timeLayout: "15:04:05", separator: ", "},
	{locale: monday.LocaleItIT, dateLayout: "2 Jan 2006", timeLayout: "15:04:05", separator: ", "},
	{locale: monday.LocaleNlNL, dateLayout: "2 Jan 2006", timeLayout: "15:04:05", separator: ", "},
}

// DateFormatter renders dates for one locale in one time zone.
type DateFormatter struct {
	Locale   language.Tag
	Location *time.Location
}

// SystemLocale reads the user's locale from the environment, defaulting to American English.
func SystemLocale() language.Tag {
	for _, name := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		if i := strings.IndexAny(value, ".@"); i >= 0 {
			value = value[:i]
		}
		tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
		if err != nil {
			return language.AmericanEnglish
		}
		return tag
	}
	return language.AmericanEnglish
}

// DateToString renders input in the system locale and local time zone, or "?" if
// input is not a date.
func DateToString(input interface{}, onlyDate bool) string {
	return DateFormatter{Locale: SystemLocale(), Location: time.Local}.Format(input, onlyDate)
}

func (f DateFormatter) Format(input interface{}, onlyDate bool) string {
	loc := f.Location
	if loc == nil {
		loc = time.Local
	}
	t, ok := parseDate(input, loc)
	if !ok {
		return InvalidDate
	}
	t = t.In(loc)

	_, index, _ := localeMatcher.Match(f.Locale)
	r := renderings[index]
	layout := r.dateLayout
	if !onlyDate {
		layout += r.separator + r.timeLayout
	}
	return monday.Format(t, layout, r.locale)
}

func parseDate(input interface{}, loc *time.Location) (time.Time, bool) {
	switch v := input.(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false
		}
		return *v, true
	case int:
		return fromMillis(float64(v))
	case int64:
		return fromMillis(float64(v))
	case float64:
		return fromMillis(v)
	case json.Number:
		return parseDateString(v.String(), loc)
	case string:
		return parseDateString(v, loc)
	}
	return time.Time{}, false
}

func parseDateString(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if millis, err := strconv.ParseFloat(value, 64); err == nil && isMillis(value) {
		return fromMillis(millis)
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	for _, layout := range utcLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// isMillis reports whether value is an epoch millisecond count rather than a year.
func isMillis(value string) bool {
	return len(value) > 4 && strings.Trim(value, "0123456789.eE+-") == ""
}

func validMillis(ms float64) bool {
	return !math.IsNaN(ms) && !math.IsInf(ms, 0) && math.Abs(ms) <= maxMillis
}

func fromMillis(ms float64) (time.Time, bool) {
	if !validMillis(ms) {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)), true
}
