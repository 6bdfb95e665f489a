package modelconfig

import "fmt"

// Edit is one validated change to a ModelConfig. Edits can only be built by
// the constructors in this package.
type Edit interface {
	// Field reports the field the edit writes. Model selections report
	// FieldModel or FieldCompressModel.
	Field() Field
	String() string
	apply(*ModelConfig)
}

type numberEdit struct {
	field Field
	raw   float64
}

// SetNumber sets a numeric field. raw is clamped by the field's validator
// when the edit is applied. Non-numeric fields make the edit a no-op.
func SetNumber(f Field, raw float64) Edit {
	return numberEdit{field: f, raw: raw}
}

func (e numberEdit) Field() Field   { return e.field }
func (e numberEdit) String() string { return fmt.Sprintf("%s=%v", e.field, e.raw) }

func (e numberEdit) apply(c *ModelConfig) {
	switch e.field {
	case FieldTemperature:
		c.Temperature = Temperature(e.raw)
	case FieldTopP:
		c.TopP = TopP(e.raw)
	case FieldMaxTokens:
		c.MaxTokens = MaxTokens(e.raw)
	case FieldPresencePenalty:
		c.PresencePenalty = PresencePenalty(e.raw)
	case FieldFrequencyPenalty:
		c.FrequencyPenalty = FrequencyPenalty(e.raw)
	case FieldHistoryMessageCount:
		c.HistoryMessageCount = HistoryMessageCount(e.raw)
	case FieldCompressMessageLengthThreshold:
		c.CompressMessageLengthThreshold = CompressMessageLengthThreshold(e.raw)
	}
}

type boolEdit struct {
	field Field
	val   bool
}

// SetBool sets a flag field. Other fields make the edit a no-op.
func SetBool(f Field, v bool) Edit {
	return boolEdit{field: f, val: v}
}

func (e boolEdit) Field() Field   { return e.field }
func (e boolEdit) String() string { return fmt.Sprintf("%s=%t", e.field, e.val) }

func (e boolEdit) apply(c *ModelConfig) {
	switch e.field {
	case FieldEnableInjectSystemPrompts:
		c.EnableInjectSystemPrompts = e.val
	case FieldSendMemory:
		c.SendMemory = e.val
	}
}

type templateEdit string

// SetTemplate replaces the input template.
func SetTemplate(s string) Edit { return templateEdit(s) }

func (e templateEdit) Field() Field         { return FieldTemplate }
func (e templateEdit) String() string       { return fmt.Sprintf("template=%q", string(e)) }
func (e templateEdit) apply(c *ModelConfig) { c.Template = string(e) }

type selectEdit struct {
	target Target
	sel    Selection
}

// SelectModel sets both halves of the target's model/provider pair.
func SelectModel(t Target, model, provider string) Edit {
	return selectEdit{target: t, sel: Selection{Model: model, Provider: provider}}
}

func (e selectEdit) Field() Field {
	if e.target == Compression {
		return FieldCompressModel
	}
	return FieldModel
}

func (e selectEdit) String() string { return fmt.Sprintf("%s=%s", e.Field(), e.sel) }

func (e selectEdit) apply(c *ModelConfig) {
	name := ModelName(e.sel.Model)
	switch e.target {
	case Primary:
		c.Model, c.ProviderName = name, e.sel.Provider
	case Compression:
		c.CompressModel, c.CompressProviderName = name, e.sel.Provider
	}
}

// Apply returns c with the edits applied in order.
func Apply(c ModelConfig, edits ...Edit) ModelConfig {
	for _, e := range edits {
		e.apply(&c)
	}
	return c
}
