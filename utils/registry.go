package utils

// HasStoredOverride is implemented by registries that may set their own stored flag.
type HasStoredOverride interface {
	StoredOverride() (stored bool, ok bool)
}

// HasProviderDefault is implemented by registries whose provider type declares a default.
type HasProviderDefault interface {
	ProviderStoredDefault() (stored bool, ok bool)
}

var providerStoredDefaults = map[string]bool{
	"ConceptApi":        true,
	"MappingsApi":       true,
	"LocalMappings":     true,
	"Skosmos":           false,
	"LobidApi":          false,
	"ReconciliationApi": false,
	"OccurrencesApi":    false,
	"WikidataMappings":  false,
}

// ProviderStoredDefault reports the stored default of a provider type.
func ProviderStoredDefault(provider string) (bool, bool) {
	stored, ok := providerStoredDefaults[provider]
	return stored, ok
}

// Registry describes a source of concept or mapping data.
type Registry struct {
	URI      string `json:"uri,omitempty"`
	Provider string `json:"provider,omitempty"`
	Stored   *bool  `json:"stored,omitempty"`
}

func (r *Registry) StoredOverride() (bool, bool) {
	if r == nil || r.Stored == nil {
		return false, false
	}
	return *r.Stored, true
}

func (r *Registry) ProviderStoredDefault() (bool, bool) {
	if r == nil {
		return false, false
	}
	return ProviderStoredDefault(r.Provider)
}

// RegistryStored reports whether a registry stores its own records: the registry's own
// flag wins, then its provider type's default, then false.
func RegistryStored(registry interface{}) bool {
	if registry == nil {
		return false
	}
	if r, ok := registry.(HasStoredOverride); ok {
		if stored, set := r.StoredOverride(); set {
			return stored
		}
	}
	if r, ok := registry.(HasProviderDefault); ok {
		if stored, set := r.ProviderStoredDefault(); set {
			return stored
		}
	}
	return false
}
