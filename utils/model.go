package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// NoLanguage is the language tag for content without linguistic content.
	NoLanguage = "-"

	ConceptSchemeType = "http://www.w3.org/2004/02/skos/core#ConceptScheme"
)

// Item is a concept, concept scheme or any other entity carrying labels and notations.
type Item struct {
	URI        string               `json:"uri,omitempty"`
	Type       []string             `json:"type,omitempty"`
	Identifier []string             `json:"identifier,omitempty"`
	Notation   []string             `json:"notation,omitempty"`
	PrefLabel  LanguageMap[string]  `json:"prefLabel"`
	Definition LanguageMap[Strings] `json:"definition"`
	InScheme   []*Item              `json:"inScheme,omitempty"`
	Namespace  string               `json:"namespace,omitempty"`
	URIPattern string               `json:"uriPattern,omitempty"`
}

func (i *Item) IsConceptScheme() bool {
	if i == nil {
		return false
	}
	for _, t := range i.Type {
		if t == ConceptSchemeType {
			return true
		}
	}
	return false
}

// Strings is a definition value. It accepts either a single JSON string or a list of strings.
// null decodes to a nil Strings.
type Strings []string

func (s *Strings) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*s = nil
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = Strings{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("value is neither a string nor a list of strings: %w", err)
	}
	*s = list
	return nil
}

// LanguageMap maps language tags to values and remembers the order tags were added in.
type LanguageMap[V any] struct {
	tags   []string
	values map[string]V
}

func NewLanguageMap[V any]() LanguageMap[V] {
	return LanguageMap[V]{values: map[string]V{}}
}

func (m *LanguageMap[V]) Set(tag string, value V) {
	if m.values == nil {
		m.values = map[string]V{}
	}
	if _, ok := m.values[tag]; !ok {
		m.tags = append(m.tags, tag)
	}
	m.values[tag] = value
}

func (m LanguageMap[V]) Get(tag string) (V, bool) {
	v, ok := m.values[tag]
	return v, ok
}

func (m LanguageMap[V]) Has(tag string) bool {
	_, ok := m.values[tag]
	return ok
}

// Tags returns the language tags in insertion order.
func (m LanguageMap[V]) Tags() []string {
	return append([]string(nil), m.tags...)
}

func (m LanguageMap[V]) Len() int {
	return len(m.tags)
}

// UnmarshalJSON reads a JSON object keyed by language tag. Tags whose value is null are left out.
func (m *LanguageMap[V]) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*m = LanguageMap[V]{}
		return nil
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	token, err := decoder.Token()
	if err != nil {
		return err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return errors.New("language map must be a JSON object")
	}
	result := NewLanguageMap[V]()
	for decoder.More() {
		token, err = decoder.Token()
		if err != nil {
			return err
		}
		tag, ok := token.(string)
		if !ok {
			return fmt.Errorf("unexpected language map key %v", token)
		}
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			return fmt.Errorf("language %q: %w", tag, err)
		}
		if isNull(raw) {
			continue
		}
		var value V
		if err := json.Unmarshal(raw, &value); err != nil {
			return fmt.Errorf("language %q: %w", tag, err)
		}
		result.Set(tag, value)
	}
	*m = result
	return nil
}

func (m LanguageMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, tag := range m.tags {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(tag)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(m.values[tag])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Agent is a person or organisation referenced as creator of a record.
type Agent struct {
	URI       string              `json:"uri,omitempty"`
	PrefLabel LanguageMap[string] `json:"prefLabel"`
}

type Mapping struct {
	URI     string  `json:"uri,omitempty"`
	Creator []Agent `json:"creator,omitempty"`
}

type Identity struct {
	URI  string `json:"uri,omitempty"`
	Name string `json:"name,omitempty"`
}

type User struct {
	URI        string              `json:"uri,omitempty"`
	Name       string              `json:"name,omitempty"`
	Identities map[string]Identity `json:"identities,omitempty"`
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
