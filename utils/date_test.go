package utils

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/goodsign/monday"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestDateFormatterFormat(t *testing.T) {
	type testStruct struct {
		testName     string
		locale       language.Tag
		input        interface{}
		onlyDate     bool
		expectedDate string
	}

	isoDateTime := testStruct{testName: "isoDateTime", locale: language.AmericanEnglish, input: "2020-01-02T15:04:05Z", expectedDate: "Jan 2, 2020, 03:04:05 PM"}
	isoDateOnly := testStruct{testName: "isoDateOnly", locale: language.AmericanEnglish, input: "2020-01-02T15:04:05Z", onlyDate: true, expectedDate: "Jan 2, 2020"}
	offsetIsApplied := testStruct{testName: "offsetIsApplied", locale: language.AmericanEnglish, input: "2020-01-02T23:30:00-02:00", onlyDate: true, expectedDate: "Jan 3, 2020"}
	dateWithoutTime := testStruct{testName: "dateWithoutTime", locale: language.AmericanEnglish, input: "2019-12-31", expectedDate: "Dec 31, 2019, 12:00:00 AM"}
	march := time.Date(2020, time.March, 9, 8, 7, 6, 0, time.UTC)
	october := time.Date(2020, time.October, 9, 8, 7, 6, 0, time.UTC)
	february := time.Date(2020, time.February, 1, 18, 0, 0, 0, time.UTC)
	german := testStruct{testName: "german", locale: language.German, input: "2020-03-09T08:07:06Z", expectedDate: monday.Format(march, "2. Jan 2006", monday.LocaleDeDE) + ", 08:07:06"}
	austrianGerman := testStruct{testName: "austrianGerman", locale: language.MustParse("de-AT"), input: "2020-10-09T08:07:06Z", onlyDate: true, expectedDate: monday.Format(october, "2. Jan 2006", monday.LocaleDeDE)}
	french := testStruct{testName: "french", locale: language.French, input: "2020-02-01T18:00:00Z", expectedDate: monday.Format(february, "2 Jan 2006", monday.LocaleFrFR) + " à 18:00:00"}
	british := testStruct{testName: "british", locale: language.BritishEnglish, input: "2020-06-01", onlyDate: true, expectedDate: "1 Jun 2020"}
	unsupportedLocale := testStruct{testName: "unsupportedLocale", locale: language.Japanese, input: "2020-01-02", onlyDate: true, expectedDate: "Jan 2, 2020"}
	timeValue := testStruct{testName: "timeValue", locale: language.AmericanEnglish, input: time.Date(2021, time.June, 5, 1, 2, 3, 0, time.UTC), expectedDate: "Jun 5, 2021, 01:02:03 AM"}
	epochMillis := testStruct{testName: "epochMillis", locale: language.AmericanEnglish, input: int64(0), onlyDate: true, expectedDate: "Jan 1, 1970"}
	jsonNumber := testStruct{testName: "jsonNumber", locale: language.AmericanEnglish, input: json.Number("86400000"), onlyDate: true, expectedDate: "Jan 2, 1970"}
	garbage := testStruct{testName: "garbage", locale: language.AmericanEnglish, input: "not a date", expectedDate: "?"}
	emptyString := testStruct{testName: "emptyString", locale: language.AmericanEnglish, input: "", expectedDate: "?"}
	zeroTime := testStruct{testName: "zeroTime", locale: language.AmericanEnglish, input: time.Time{}, expectedDate: "?"}
	nilInput := testStruct{testName: "nilInput", locale: language.AmericanEnglish, input: nil, expectedDate: "?"}
	unsupportedType := testStruct{testName: "unsupportedType", locale: language.AmericanEnglish, input: []string{"2020-01-02"}, expectedDate: "?"}
	notANumber := testStruct{testName: "notANumber", locale: language.AmericanEnglish, input: math.NaN(), expectedDate: "?"}
	infinity := testStruct{testName: "infinity", locale: language.AmericanEnglish, input: math.Inf(1), expectedDate: "?"}
	millisTooLarge := testStruct{testName: "millisTooLarge", locale: language.AmericanEnglish, input: 1e20, expectedDate: "?"}
	millisStringTooLarge := testStruct{testName: "millisStringTooLarge", locale: language.AmericanEnglish, input: "100000000000000000", expectedDate: "?"}
	jsonNumberTooLarge := testStruct{testName: "jsonNumberTooLarge", locale: language.AmericanEnglish, input: json.Number("1e20"), expectedDate: "?"}
	latestMillis := testStruct{testName: "latestMillis", locale: language.AmericanEnglish, input: int64(8.64e15), onlyDate: true, expectedDate: "Sep 13, 275760"}

	testScenarios := []testStruct{isoDateTime, isoDateOnly, offsetIsApplied, dateWithoutTime, german, austrianGerman, french, british, unsupportedLocale, timeValue, epochMillis, jsonNumber, garbage, emptyString, zeroTime, nilInput, unsupportedType,
		notANumber, infinity, millisTooLarge, millisStringTooLarge, jsonNumberTooLarge, latestMillis}

	for _, scenario := range testScenarios {
		formatter := DateFormatter{Locale: scenario.locale, Location: time.UTC}
		assert.Equal(t, scenario.expectedDate, formatter.Format(scenario.input, scenario.onlyDate), "Scenario: "+scenario.testName+" failed")
	}
}

func TestSystemLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_TIME", "")
	t.Setenv("LANG", "")
	assert.Equal(t, language.AmericanEnglish, SystemLocale())

	t.Setenv("LANG", "fr_FR.UTF-8")
	assert.Equal(t, language.MustParse("fr-FR"), SystemLocale())

	t.Setenv("LC_ALL", "de_DE@euro")
	assert.Equal(t, language.MustParse("de-DE"), SystemLocale())

	t.Setenv("LC_ALL", "C")
	assert.Equal(t, language.AmericanEnglish, SystemLocale())
}

func TestDateToString(t *testing.T) {
	t.Setenv("LC_ALL", "en_US.UTF-8")
	assert.Equal(t, "?", DateToString("yesterday", false))
	assert.NotEqual(t, "?", DateToString("2020-01-02T15:04:05Z", false))
	assert.Contains(t, DateToString("2020-06-15T12:00:00Z", true), "2020")
}
