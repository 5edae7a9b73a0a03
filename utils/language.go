package utils

// LanguageTagged is implemented by LanguageMap.
type LanguageTagged interface {
	Has(tag string) bool
	Tags() []string
}

// GetLanguage picks the language to display from labels. The preferred language is tried
// first, then the fallback languages in order. If none is present the first tag other than
// "-" wins. The second result is false if labels has no usable tag.
func GetLanguage(labels LanguageTagged, preferred string, fallback []string) (string, bool) {
	if labels == nil {
		return "", false
	}
	tags := labels.Tags()
	if len(tags) == 0 {
		return "", false
	}

	candidates := make([]string, 0, len(fallback)+1)
	if preferred != "" {
		candidates = append(candidates, preferred)
	}
	candidates = append(candidates, fallback...)
	for _, candidate := range candidates {
		if labels.Has(candidate) {
			return candidate, true
		}
	}

	for _, tag := range tags {
		if tag != NoLanguage {
			return tag, true
		}
	}
	return "", false
}

// LanguageMapContent returns the value of labels in the language chosen by GetLanguage.
func LanguageMapContent[V any](labels LanguageMap[V], preferred string, fallback []string) (V, bool) {
	tag, ok := GetLanguage(labels, preferred, fallback)
	if !ok {
		var zero V
		return zero, false
	}
	return labels.Get(tag)
}

type labelOptions struct {
	language      string
	fallbackToURI bool
}

type LabelOption func(*labelOptions)

// WithLanguage makes tag the preferred language, ahead of the configured languages.
func WithLanguage(tag string) LabelOption {
	return func(o *labelOptions) {
		o.language = tag
	}
}

// WithoutURIFallback stops PrefLabel from returning the item URI when no label resolves.
func WithoutURIFallback() LabelOption {
	return func(o *labelOptions) {
		o.fallbackToURI = false
	}
}

func newLabelOptions(opts []LabelOption) labelOptions {
	options := labelOptions{fallbackToURI: true}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// PrefLabel returns the preferred label of item in the best available language,
// falling back to the item URI and then to "".
func (o *Options) PrefLabel(item *Item, opts ...LabelOption) string {
	if item == nil {
		return ""
	}
	options := newLabelOptions(opts)
	if label, ok := LanguageMapContent(item.PrefLabel, options.language, o.Languages()); ok && label != "" {
		return label
	}
	if options.fallbackToURI && item.URI != "" {
		return item.URI
	}
	return ""
}

// Definition returns the definition of item in the best available language. The result
// is never nil.
func (o *Options) Definition(item *Item, opts ...LabelOption) []string {
	if item == nil {
		return []string{}
	}
	options := newLabelOptions(opts)
	definition, ok := LanguageMapContent(item.Definition, options.language, o.Languages())
	if !ok || definition == nil {
		return []string{}
	}
	return append([]string{}, definition...)
}
