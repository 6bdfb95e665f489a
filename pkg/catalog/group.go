package catalog

// ProviderCount is one entry of the provider list.
type ProviderCount struct {
	Name  string
	Count int
}

// Groups maps provider names to their available models, in first-seen order.
// The zero value is an empty grouping.
type Groups struct {
	order  []string
	models map[string][]ModelDescriptor
}

// Group filters models to the available ones and groups them by provider
// name. Provider order is the order in which providers first appear; model
// order within a provider is catalog order.
func Group(models []ModelDescriptor) Groups {
	g := Groups{models: make(map[string][]ModelDescriptor)}

	for _, m := range models {
		if !m.Available {
			continue
		}

		key := m.ProviderName()
		if _, seen := g.models[key]; !seen {
			g.order = append(g.order, key)
		}
		g.models[key] = append(g.models[key], m)
	}

	return g
}

// Providers returns provider names in order.
func (g Groups) Providers() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Has reports whether the provider has at least one available model.
func (g Groups) Has(provider string) bool {
	_, ok := g.models[provider]
	return ok
}

// Models returns the provider's models. Unknown providers yield an empty,
// non-nil slice.
func (g Groups) Models(provider string) []ModelDescriptor {
	src := g.models[provider]
	out := make([]ModelDescriptor, len(src))
	copy(out, src)
	return out
}

// Counts returns (provider, model count) pairs in provider order.
func (g Groups) Counts() []ProviderCount {
	out := make([]ProviderCount, 0, len(g.order))
	for _, p := range g.order {
		out = append(out, ProviderCount{Name: p, Count: len(g.models[p])})
	}
	return out
}

// Flatten concatenates the groups back into a single list.
func (g Groups) Flatten() []ModelDescriptor {
	var out []ModelDescriptor
	for _, p := range g.order {
		out = append(out, g.models[p]...)
	}
	return out
}
