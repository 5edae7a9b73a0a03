package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DDC23 is the Dewey Decimal Classification, 23rd edition. Its notations are padded to
// three digits when displayed.
var DDC23 = &Item{
	URI:        "http://dewey.info/scheme/edition/e23/",
	Identifier: []string{"http://bartoc.org/en/node/241", "http://www.wikidata.org/entity/Q67011877"},
}

const (
	SchemeTypeHint = "scheme"

	notationFillWidth = 3
	notationFillOpen  = "<span class='notation-fill text-mediumLightGrey'>"
	notationFillClose = "</span>"
)

// SchemeMatcher decides whether two scheme references denote the same concept scheme.
type SchemeMatcher interface {
	SchemesEqual(a, b *Item) bool
}

// NotationDeriver derives the notation a concept URI implies within a scheme.
type NotationDeriver interface {
	ImpliedNotation(scheme *Item, uri string) (string, bool)
}

type NotationFormatter struct {
	Schemes SchemeMatcher
	Deriver NotationDeriver
}

func NewNotationFormatter(schemes SchemeMatcher, deriver NotationDeriver) NotationFormatter {
	return NotationFormatter{Schemes: schemes, Deriver: deriver}
}

// Notation returns the display notation of item, or "" if it has none. Scheme notations
// are upper-cased; typeHint "scheme" marks item as a scheme. With adjust, DDC notations
// shorter than three characters get a trailing HTML span of zeros.
func (f NotationFormatter) Notation(item *Item, typeHint string, adjust bool) string {
	if item == nil {
		return ""
	}
	var notation string
	switch {
	case len(item.Notation) > 0:
		notation = item.Notation[0]
		if typeHint == SchemeTypeHint || item.IsConceptScheme() {
			notation = cases.Upper(language.Und).String(notation)
		}
	case item.URI != "" && len(item.InScheme) > 0 && f.Deriver != nil:
		notation, _ = f.Deriver.ImpliedNotation(item.InScheme[0], item.URI)
	}
	if notation == "" || !adjust {
		return notation
	}
	if len(item.InScheme) > 0 && f.schemesEqual(item.InScheme[0], DDC23) {
		return padNotation(notation)
	}
	return notation
}

func (f NotationFormatter) schemesEqual(a, b *Item) bool {
	if f.Schemes != nil {
		return f.Schemes.SchemesEqual(a, b)
	}
	return a != nil && b != nil && a.URI != "" && a.URI == b.URI
}

func padNotation(notation string) string {
	length := len([]rune(notation))
	if length >= notationFillWidth {
		return notation
	}
	return notation + notationFillOpen + strings.Repeat("0", notationFillWidth-length) + notationFillClose
}
