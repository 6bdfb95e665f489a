// Package panel assembles the model settings panel: the primary and
// compression model pickers plus one row per editable parameter.
//
// Rows are recomputed from the configuration on every call. Rows for
// settings the primary provider does not support are left out entirely.
// All writes go through a single [modelconfig.Mutator].
package panel

import (
	"math"
	"strconv"
	"strings"

	"github.com/germanamz/modelpanel/pkg/capability"
	"github.com/germanamz/modelpanel/pkg/catalog"
	"github.com/germanamz/modelpanel/pkg/modelconfig"
	"github.com/germanamz/modelpanel/pkg/selector"
	"github.com/rs/zerolog"
)

// Panel is the settings sub-panel.
type Panel struct {
	source      catalog.Source
	mutator     *modelconfig.Mutator
	caps        *capability.Registry
	log         zerolog.Logger
	primary     *selector.Selector
	compression *selector.Selector
}

// Option configures a Panel.
type Option func(*Panel)

// WithCapabilities overrides the provider capability registry.
func WithCapabilities(r *capability.Registry) Option {
	return func(p *Panel) { p.caps = r }
}

// WithLogger sets the logger used by the panel and its pickers.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Panel) { p.log = l }
}

// New creates a panel over the catalog source and the configuration store.
func New(source catalog.Source, store modelconfig.Store, opts ...Option) *Panel {
	p := &Panel{
		source: source,
		caps:   capability.Default(),
		log:    zerolog.Nop(),
	}
	for _, o := range opts {
		o(p)
	}

	p.mutator = modelconfig.NewMutator(store, p.log)
	p.primary = selector.New(modelconfig.Primary, source, p.mutator, p.log)
	p.compression = selector.New(modelconfig.Compression, source, p.mutator, p.log)

	return p
}

// Primary is the chat model picker.
func (p *Panel) Primary() *selector.Selector { return p.primary }

// Compression is the history compression model picker.
func (p *Panel) Compression() *selector.Selector { return p.compression }

// Selector returns the picker for target.
func (p *Panel) Selector(t modelconfig.Target) *selector.Selector {
	if t == modelconfig.Compression {
		return p.compression
	}
	return p.primary
}

// Config returns the current configuration.
func (p *Panel) Config() modelconfig.ModelConfig { return p.mutator.Snapshot() }

// Catalog returns the current catalog snapshot.
func (p *Panel) Catalog() []catalog.ModelDescriptor { return p.source.Models() }

// Capabilities returns what the primary provider supports.
func (p *Panel) Capabilities() capability.Set {
	return p.caps.Lookup(p.Config().ProviderName)
}

// DismissAll closes both pickers.
func (p *Panel) DismissAll() {
	p.primary.Dismiss()
	p.compression.Dismiss()
}

// SetNumber writes a numeric field through its validator.
func (p *Panel) SetNumber(f modelconfig.Field, raw float64) {
	p.mutator.Apply(modelconfig.SetNumber(f, raw))
}

// SetNumberText writes a numeric field from text input. Text that is not a
// number is treated as NaN, which the validator maps to the field's fallback.
func (p *Panel) SetNumberText(f modelconfig.Field, text string) {
	p.SetNumber(f, ParseNumber(text))
}

// SetBool writes a flag field.
func (p *Panel) SetBool(f modelconfig.Field, v bool) {
	p.mutator.Apply(modelconfig.SetBool(f, v))
}

// Toggle flips a flag field.
func (p *Panel) Toggle(f modelconfig.Field) {
	cfg := p.Config()
	switch f {
	case modelconfig.FieldEnableInjectSystemPrompts:
		p.SetBool(f, !cfg.EnableInjectSystemPrompts)
	case modelconfig.FieldSendMemory:
		p.SetBool(f, !cfg.SendMemory)
	}
}

// SetTemplate writes the input template.
func (p *Panel) SetTemplate(s string) {
	p.mutator.Apply(modelconfig.SetTemplate(s))
}

// Nudge moves a numeric field by steps increments of its domain step.
func (p *Panel) Nudge(f modelconfig.Field, steps int) {
	b, ok := modelconfig.Domain(f)
	if !ok {
		return
	}
	cur := NumberValue(p.Config(), f)
	next := cur + float64(steps)*b.Step
	if !b.Integer {
		// Keep one-decimal ranges on the 0.1 grid.
		next = math.Round(next*10) / 10
	}
	p.SetNumber(f, next)
}

// ParseNumber parses user text; anything unparsable is NaN.
func ParseNumber(text string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
