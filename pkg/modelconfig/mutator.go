package modelconfig

import (
	"sync"

	"github.com/rs/zerolog"
)

// Store is the settings store that owns a ModelConfig. Update must apply fn
// to the live configuration atomically with respect to Snapshot.
type Store interface {
	Snapshot() ModelConfig
	Update(fn func(*ModelConfig))
}

// Mutator is the single entry point for changing a ModelConfig held by a
// Store. It only accepts Edits, so every write passes a validator.
type Mutator struct {
	store Store
	log   zerolog.Logger
}

// NewMutator wraps the store's update callback.
func NewMutator(store Store, log zerolog.Logger) *Mutator {
	return &Mutator{store: store, log: log}
}

// Apply writes the edits in a single store update. Only edits that changed
// the configuration are logged.
func (m *Mutator) Apply(edits ...Edit) {
	if len(edits) == 0 {
		return
	}

	changed := make([]Edit, 0, len(edits))
	m.store.Update(func(c *ModelConfig) {
		for _, e := range edits {
			before := *c
			e.apply(c)
			if *c != before {
				changed = append(changed, e)
			}
		}
	})

	for _, e := range changed {
		m.log.Debug().Stringer("edit", e).Msg("model config updated")
	}
}

// Snapshot returns the store's current configuration.
func (m *Mutator) Snapshot() ModelConfig {
	return m.store.Snapshot()
}

// Memory is an in-memory Store.
type Memory struct {
	mu  sync.RWMutex
	cfg ModelConfig
}

// NewMemory creates a store holding cfg, normalized.
func NewMemory(cfg ModelConfig) *Memory {
	return &Memory{cfg: cfg.Normalize()}
}

// Snapshot returns a copy of the configuration.
func (s *Memory) Snapshot() ModelConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cfg
}

// Update applies fn under the write lock.
func (s *Memory) Update(fn func(*ModelConfig)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.cfg)
}
