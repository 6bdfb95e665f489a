package selector

import (
	"github.com/germanamz/modelpanel/pkg/catalog"
	"github.com/germanamz/modelpanel/pkg/modelconfig"
	"github.com/rs/zerolog"
)

// Placeholder is shown when no model is selected.
const Placeholder = "Select Model"

// Selector is one picker bound to one model selection of a configuration.
// Each Selector owns its Machine; selectors never share state.
type Selector struct {
	machine Machine
	target  modelconfig.Target
	source  catalog.Source
	mutator *modelconfig.Mutator
	log     zerolog.Logger
}

// New creates a closed selector for target.
func New(target modelconfig.Target, source catalog.Source, mutator *modelconfig.Mutator, log zerolog.Logger) *Selector {
	return &Selector{
		target:  target,
		source:  source,
		mutator: mutator,
		log:     log.With().Stringer("target", target).Logger(),
	}
}

// Target returns the selection this picker writes.
func (s *Selector) Target() modelconfig.Target { return s.target }

// State returns the picker state.
func (s *Selector) State() State { return s.machine.State() }

// IsOpen reports whether the dropdown is shown.
func (s *Selector) IsOpen() bool { return s.machine.State().IsOpen() }

// Toggle opens or closes the dropdown.
func (s *Selector) Toggle() { s.machine.Toggle() }

// ChooseProvider drills into a provider from the provider list.
func (s *Selector) ChooseProvider(provider string) bool {
	return s.machine.ChooseProvider(provider)
}

// Back leaves the model list.
func (s *Selector) Back() bool { return s.machine.Back() }

// Dismiss closes the dropdown without selecting.
func (s *Selector) Dismiss() { s.machine.Dismiss() }

// ChooseModel selects name from the current provider. On success the
// dropdown closes and the configuration receives exactly one edit writing
// both the model and the provider.
func (s *Selector) ChooseModel(name string) bool {
	provider, ok := s.machine.State().Provider()
	if !ok || !s.machine.ChooseModel(provider) {
		return false
	}

	s.mutator.Apply(modelconfig.SelectModel(s.target, name, provider))
	s.log.Info().Str("model", name).Str("provider", provider).Msg("model selected")

	return true
}

// Providers lists (provider, model count) pairs of the current catalog.
func (s *Selector) Providers() []catalog.ProviderCount {
	return catalog.Group(s.source.Models()).Counts()
}

// Models lists the active provider's available models. It is empty when the
// picker is not on a model list or the provider has no models left.
func (s *Selector) Models() []catalog.ModelDescriptor {
	provider, ok := s.machine.State().Provider()
	if !ok {
		return []catalog.ModelDescriptor{}
	}
	return catalog.Group(s.source.Models()).Models(provider)
}

// Current returns the configured selection for this picker's target.
func (s *Selector) Current() modelconfig.Selection {
	return s.mutator.Snapshot().Selection(s.target)
}

// Label is the text of the closed control.
func (s *Selector) Label() string {
	cur := s.Current()
	return Label(s.source.Models(), cur.Model, cur.Provider)
}

// Summary is Label followed by the provider in parentheses, when set.
func (s *Selector) Summary() string {
	cur := s.Current()
	label := Label(s.source.Models(), cur.Model, cur.Provider)
	if cur.Provider == "" {
		return label
	}
	return label + " (" + cur.Provider + ")"
}

// Label resolves the display text for a stored selection: the catalog
// display name of the exact (name, provider) pair, else the raw name, else
// Placeholder.
func Label(models []catalog.ModelDescriptor, name, provider string) string {
	if m, ok := catalog.Lookup(models, name, provider); ok && m.DisplayName != "" {
		return m.DisplayName
	}
	if name != "" {
		return name
	}
	return Placeholder
}
