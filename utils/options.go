package utils

import "time"

const (
	OptionLanguages     = "languages"
	OptionDelay         = "delay"
	OptionLicenseBadges = "licenseBadges"
)

var defaultLanguages = []string{"en"}

// LanguageSource supplies the preferred languages on every read, for language lists
// that live in another store and change over time.
type LanguageSource func() []string

// Options holds named options. It is not safe for concurrent use; callers sharing a
// store must serialise access themselves.
type Options struct {
	values map[string]interface{}
}

func NewOptions() *Options {
	return &Options{
		values: map[string]interface{}{
			OptionLanguages: []string{"en", "de"},
			OptionDelay: map[string]time.Duration{
				"short":  250 * time.Millisecond,
				"medium": 500 * time.Millisecond,
				"long":   1000 * time.Millisecond,
			},
			OptionLicenseBadges: map[string]string{
				"http://creativecommons.org/publicdomain/zero/1.0/": "https://mirrors.creativecommons.org/presskit/buttons/80x15/svg/cc-zero.svg",
				"http://creativecommons.org/licenses/by/4.0/":       "https://mirrors.creativecommons.org/presskit/buttons/80x15/svg/by.svg",
				"http://creativecommons.org/licenses/by-sa/4.0/":    "https://mirrors.creativecommons.org/presskit/buttons/80x15/svg/by-sa.svg",
				"http://creativecommons.org/licenses/by-nd/4.0/":    "https://mirrors.creativecommons.org/presskit/buttons/80x15/svg/by-nd.svg",
				"http://creativecommons.org/licenses/by-nc/4.0/":    "https://mirrors.creativecommons.org/presskit/buttons/80x15/svg/by-nc.svg",
				"http://opendatacommons.org/licenses/odbl/1.0/":     "https://img.shields.io/badge/License-ODbL-lightgrey.svg",
			},
		},
	}
}

// Set stores value under name, replacing any previous value. Setting on a nil store does nothing.
func (o *Options) Set(name string, value interface{}) {
	if o == nil {
		return
	}
	if o.values == nil {
		o.values = map[string]interface{}{}
	}
	o.values[name] = value
}

func (o *Options) Get(name string) (interface{}, bool) {
	if o == nil {
		return nil, false
	}
	value, ok := o.values[name]
	return value, ok
}

// Languages returns the preferred language list. A nil store or an option holding
// neither a list nor a LanguageSource yields ["en"].
func (o *Options) Languages() []string {
	if o == nil {
		return append([]string(nil), defaultLanguages...)
	}
	value, _ := o.Get(OptionLanguages)
	switch languages := value.(type) {
	case []string:
		return append([]string(nil), languages...)
	case LanguageSource:
		if languages != nil {
			return append([]string(nil), languages()...)
		}
	case func() []string:
		if languages != nil {
			return append([]string(nil), languages()...)
		}
	}
	return append([]string(nil), defaultLanguages...)
}

// Delay returns the named UI delay, or zero if it is not configured.
func (o *Options) Delay(name string) time.Duration {
	value, _ := o.Get(OptionDelay)
	delays, ok := value.(map[string]time.Duration)
	if !ok {
		return 0
	}
	return delays[name]
}

// LicenseBadge returns the badge image URL for a license URI.
func (o *Options) LicenseBadge(licenseURI string) (string, bool) {
	value, _ := o.Get(OptionLicenseBadges)
	badges, ok := value.(map[string]string)
	if !ok {
		return "", false
	}
	badge, ok := badges[licenseURI]
	return badge, ok
}
