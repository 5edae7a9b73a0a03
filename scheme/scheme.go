// Package scheme compares concept scheme references and reads notations out of concept URIs.
package scheme

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/Financial-Times/kos-utils/utils"
)

// Matcher treats two scheme references as equal when they share a URI or any identifier.
type Matcher struct{}

func (Matcher) SchemesEqual(a, b *utils.Item) bool {
	if a == nil || b == nil {
		return false
	}
	if a.URI != "" && a.URI == b.URI {
		return true
	}
	ids := identifiers(a)
	for id := range identifiers(b) {
		if _, ok := ids[id]; ok {
			return true
		}
	}
	return false
}

func identifiers(item *utils.Item) map[string]struct{} {
	ids := make(map[string]struct{}, len(item.Identifier)+1)
	if item.URI != "" {
		ids[item.URI] = struct{}{}
	}
	for _, id := range item.Identifier {
		if id != "" {
			ids[id] = struct{}{}
		}
	}
	return ids
}

// PatternDeriver reads notations from concept URIs using the scheme's uriPattern, or its
// namespace if no pattern is set. Compiled patterns are not cached.
type PatternDeriver struct{}

func (PatternDeriver) ImpliedNotation(scheme *utils.Item, uri string) (string, bool) {
	if scheme == nil || uri == "" {
		return "", false
	}
	if scheme.URIPattern != "" {
		pattern, err := regexp.Compile(scheme.URIPattern)
		if err != nil {
			return "", false
		}
		match := pattern.FindStringSubmatch(uri)
		if len(match) < 2 || match[1] == "" {
			return "", false
		}
		return unescape(match[1]), true
	}
	if scheme.Namespace != "" && strings.HasPrefix(uri, scheme.Namespace) {
		notation := strings.TrimPrefix(uri, scheme.Namespace)
		if notation == "" {
			return "", false
		}
		return unescape(notation), true
	}
	return "", false
}

func unescape(notation string) string {
	if unescaped, err := url.PathUnescape(notation); err == nil {
		return unescaped
	}
	return notation
}
