package catalog

// NoProvider is the grouping key for descriptors without provider metadata.
const NoProvider = ""

// Provider describes the backend serving a model.
type Provider struct {
	ID           string `yaml:"id"`
	ProviderName string `yaml:"provider_name"`
	ProviderType string `yaml:"provider_type"`
	Sorted       int    `yaml:"sorted"`
}

// ModelDescriptor is a single catalog entry. Two descriptors are the same
// model only when both Name and the provider name match.
type ModelDescriptor struct {
	Name        string    `yaml:"name"`
	DisplayName string    `yaml:"display_name"`
	Available   bool      `yaml:"available"`
	Provider    *Provider `yaml:"provider"`
}

// ProviderName returns the serving provider's name, or NoProvider.
func (m ModelDescriptor) ProviderName() string {
	if m.Provider == nil {
		return NoProvider
	}
	return m.Provider.ProviderName
}

// Label returns DisplayName, falling back to Name.
func (m ModelDescriptor) Label() string {
	if m.DisplayName != "" {
		return m.DisplayName
	}
	return m.Name
}

// Source supplies the current catalog snapshot.
type Source interface {
	Models() []ModelDescriptor
}

// Static is a fixed catalog.
type Static []ModelDescriptor

// Models returns a copy of the catalog.
func (s Static) Models() []ModelDescriptor {
	out := make([]ModelDescriptor, len(s))
	copy(out, s)
	return out
}

// Lookup finds the descriptor for the (name, provider) pair. Unavailable
// models are included so a stored selection keeps its display name.
func Lookup(models []ModelDescriptor, name, provider string) (ModelDescriptor, bool) {
	for _, m := range models {
		if m.Name == name && m.ProviderName() == provider {
			return m, true
		}
	}
	return ModelDescriptor{}, false
}
