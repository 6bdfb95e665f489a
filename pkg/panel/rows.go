package panel

import (
	"strconv"

	"github.com/germanamz/modelpanel/pkg/capability"
	"github.com/germanamz/modelpanel/pkg/modelconfig"
	"github.com/germanamz/modelpanel/pkg/selector"
)

// Kind is the editor a row needs.
type Kind int

const (
	KindModel  Kind = iota // model picker
	KindRange              // slider with a fixed step
	KindNumber             // free numeric input
	KindToggle             // checkbox
	KindText               // free text input
)

// Row is one line of the panel.
type Row struct {
	Field    modelconfig.Field
	Kind     Kind
	Bounds   modelconfig.Bounds // numeric rows only
	Value    string             // current value formatted for display
	Selector *selector.Selector // model rows only
}

type rowSpec struct {
	field modelconfig.Field
	kind  Kind
	shown func(capability.Set) bool
}

func always(capability.Set) bool { return true }

var layout = []rowSpec{
	{modelconfig.FieldModel, KindModel, always},
	{modelconfig.FieldTemperature, KindRange, always},
	{modelconfig.FieldTopP, KindRange, always},
	{modelconfig.FieldMaxTokens, KindNumber, always},
	{modelconfig.FieldPresencePenalty, KindRange, func(s capability.Set) bool { return s.Penalties }},
	{modelconfig.FieldFrequencyPenalty, KindRange, func(s capability.Set) bool { return s.Penalties }},
	{modelconfig.FieldEnableInjectSystemPrompts, KindToggle, func(s capability.Set) bool { return s.SystemPromptInjection }},
	{modelconfig.FieldTemplate, KindText, func(s capability.Set) bool { return s.InputTemplate }},
	{modelconfig.FieldHistoryMessageCount, KindRange, always},
	{modelconfig.FieldCompressMessageLengthThreshold, KindNumber, always},
	{modelconfig.FieldSendMemory, KindToggle, always},
	{modelconfig.FieldCompressModel, KindModel, always},
}

// Rows returns the visible rows for the current configuration.
func (p *Panel) Rows() []Row {
	cfg := p.Config()
	caps := p.caps.Lookup(cfg.ProviderName)

	rows := make([]Row, 0, len(layout))
	for _, def := range layout {
		if !def.shown(caps) {
			continue
		}

		r := Row{Field: def.field, Kind: def.kind}
		r.Bounds, _ = modelconfig.Domain(def.field)

		switch def.field {
		case modelconfig.FieldModel:
			r.Selector = p.primary
			r.Value = p.primary.Summary()
		case modelconfig.FieldCompressModel:
			r.Selector = p.compression
			r.Value = p.compression.Summary()
		default:
			r.Value = FormatValue(cfg, def.field)
		}

		rows = append(rows, r)
	}

	return rows
}

// Visible reports whether the field currently has a row.
func (p *Panel) Visible(f modelconfig.Field) bool {
	for _, r := range p.Rows() {
		if r.Field == f {
			return true
		}
	}
	return false
}

// NumberValue reads a numeric field.
func NumberValue(cfg modelconfig.ModelConfig, f modelconfig.Field) float64 {
	switch f {
	case modelconfig.FieldTemperature:
		return cfg.Temperature
	case modelconfig.FieldTopP:
		return cfg.TopP
	case modelconfig.FieldMaxTokens:
		return float64(cfg.MaxTokens)
	case modelconfig.FieldPresencePenalty:
		return cfg.PresencePenalty
	case modelconfig.FieldFrequencyPenalty:
		return cfg.FrequencyPenalty
	case modelconfig.FieldHistoryMessageCount:
		return float64(cfg.HistoryMessageCount)
	case modelconfig.FieldCompressMessageLengthThreshold:
		return float64(cfg.CompressMessageLengthThreshold)
	default:
		return 0
	}
}

// FormatValue renders a non-model field: ranges with one decimal, integers
// as integers, flags as true/false.
func FormatValue(cfg modelconfig.ModelConfig, f modelconfig.Field) string {
	switch f {
	case modelconfig.FieldModel:
		return cfg.Selection(modelconfig.Primary).String()
	case modelconfig.FieldCompressModel:
		return cfg.Selection(modelconfig.Compression).String()
	case modelconfig.FieldEnableInjectSystemPrompts:
		return strconv.FormatBool(cfg.EnableInjectSystemPrompts)
	case modelconfig.FieldSendMemory:
		return strconv.FormatBool(cfg.SendMemory)
	case modelconfig.FieldTemplate:
		return cfg.Template
	}

	b, ok := modelconfig.Domain(f)
	if !ok {
		return ""
	}
	v := NumberValue(cfg, f)
	if b.Integer {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
