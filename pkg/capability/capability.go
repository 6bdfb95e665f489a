// Package capability records which generation settings each provider honors.
//
// The panel hides rows for settings the primary provider ignores. Adding a
// provider with different support is a call to [Registry.Register], not a
// code change at the call site.
package capability

import "sync"

// Set lists the optional settings a provider supports.
type Set struct {
	Penalties             bool // presence_penalty and frequency_penalty
	SystemPromptInjection bool // enable_inject_system_prompts
	InputTemplate         bool // template
}

// All returns the capability set assumed for providers that were never
// registered.
func All() Set {
	return Set{Penalties: true, SystemPromptInjection: true, InputTemplate: true}
}

// Registry maps provider names to capability sets.
type Registry struct {
	mu   sync.RWMutex
	sets map[string]Set
}

// NewRegistry returns an empty registry; every provider has All.
func NewRegistry() *Registry {
	return &Registry{sets: make(map[string]Set)}
}

// Default returns a new registry holding the built-in provider entries.
// Registries returned by separate calls are independent.
func Default() *Registry {
	r := NewRegistry()
	r.Register("Google", Set{})
	return r
}

// Register sets the capabilities of a provider, replacing any previous entry.
func (r *Registry) Register(provider string, s Set) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sets[provider] = s
}

// Lookup returns the provider's capabilities, or All when unregistered.
func (r *Registry) Lookup(provider string) Set {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if s, ok := r.sets[provider]; ok {
		return s
	}
	return All()
}
