// Package annotations reads creator information from web annotations.
package annotations

import (
	"encoding/json"
	"fmt"
)

type Annotation struct {
	ID         string   `json:"id,omitempty"`
	Creator    *Creator `json:"creator,omitempty"`
	Motivation string   `json:"motivation,omitempty"`
	BodyValue  string   `json:"bodyValue,omitempty"`
}

// Creator is either a bare URI or an object with id and name.
type Creator struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	bare bool
}

// CreatorFromURI returns a creator given only by its URI.
func CreatorFromURI(uri string) *Creator {
	return &Creator{ID: uri, bare: true}
}

func (c *Creator) UnmarshalJSON(data []byte) error {
	var uri string
	if err := json.Unmarshal(data, &uri); err == nil {
		*c = Creator{ID: uri, bare: true}
		return nil
	}
	aux := struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("creator is neither a URI nor an object: %w", err)
	}
	*c = Creator{ID: aux.ID, Name: aux.Name}
	return nil
}

func (c Creator) MarshalJSON() ([]byte, error) {
	if c.bare {
		return json.Marshal(c.ID)
	}
	type creator Creator
	return json.Marshal(creator(c))
}

// CreatorURI returns the URI identifying the annotation's creator.
func CreatorURI(annotation *Annotation) (string, bool) {
	if annotation == nil || annotation.Creator == nil || annotation.Creator.ID == "" {
		return "", false
	}
	return annotation.Creator.ID, true
}

func CreatorName(annotation *Annotation) string {
	if annotation == nil || annotation.Creator == nil {
		return ""
	}
	return annotation.Creator.Name
}

// CreatorMatches reports whether the annotation's creator is one of uris.
func CreatorMatches(annotation *Annotation, uris []string) bool {
	uri, ok := CreatorURI(annotation)
	if !ok {
		return false
	}
	for _, candidate := range uris {
		if candidate == uri {
			return true
		}
	}
	return false
}
