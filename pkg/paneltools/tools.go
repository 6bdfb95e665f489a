// Package paneltools exposes a [panel.Panel] as a set of tools so an agent
// or another process can inspect and edit model settings. Tools are served
// over MCP by [Server].
//
// Every tool goes through the same panel operations as the interactive
// front-end: selections drive the picker state machine and parameter writes
// go through the validators.
package paneltools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/germanamz/modelpanel/pkg/catalog"
	"github.com/germanamz/modelpanel/pkg/modelconfig"
	"github.com/germanamz/modelpanel/pkg/panel"
)

// Handler executes a tool with the given JSON input and returns a text result.
type Handler func(ctx context.Context, input json.RawMessage) (string, error)

// Tool is a named, schema-described operation.
type Tool struct {
	Name        string
	Description string
	InputSchema json.RawMessage
	Handler     Handler
}

// Tools builds the tool set for a panel. Calls are serialized on mu so
// concurrent requests never interleave picker transitions.
type Tools struct {
	mu    sync.Mutex
	panel *panel.Panel
}

// New wraps p.
func New(p *panel.Panel) *Tools {
	return &Tools{panel: p}
}

// All returns every tool.
func (t *Tools) All() []Tool {
	return []Tool{
		{
			Name:        "list_providers",
			Description: "List providers with at least one available model, with model counts.",
			InputSchema: json.RawMessage(`{"type":"object"}`),
			Handler:     t.listProviders,
		},
		{
			Name:        "list_models",
			Description: "List the available models of a provider.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"provider":{"type":"string"}},"required":["provider"]}`),
			Handler:     t.listModels,
		},
		{
			Name:        "select_model",
			Description: "Select the primary or compression model. Both the model and its provider are written.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"target":{"type":"string","enum":["primary","compression"]},"provider":{"type":"string"},"model":{"type":"string"}},"required":["provider","model"]}`),
			Handler:     t.selectModel,
		},
		{
			Name:        "set_parameter",
			Description: "Set a generation parameter. Numbers are clamped to the field's range.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"field":{"type":"string"},"value":{}},"required":["field","value"]}`),
			Handler:     t.setParameter,
		},
		{
			Name:        "get_config",
			Description: "Return the current model configuration as YAML, followed by the rows the provider supports.",
			InputSchema: json.RawMessage(`{"type":"object"}`),
			Handler:     t.getConfig,
		},
	}
}

func (t *Tools) listProviders(_ context.Context, _ json.RawMessage) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	type entry struct {
		Name   string `json:"name"`
		Models int    `json:"models"`
	}

	counts := catalog.Group(t.panel.Catalog()).Counts()
	out := make([]entry, 0, len(counts))
	for _, c := range counts {
		out = append(out, entry{Name: c.Name, Models: c.Count})
	}

	return marshal(out)
}

func (t *Tools) listModels(_ context.Context, input json.RawMessage) (string, error) {
	var in struct {
		Provider string `json:"provider"`
	}
	if err := json.Unmarshal(input, &in); err != nil {
		return "", fmt.Errorf("list_models: invalid input: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	type entry struct {
		Name        string `json:"name"`
		DisplayName string `json:"display_name"`
	}

	models := catalog.Group(t.panel.Catalog()).Models(in.Provider)
	out := make([]entry, 0, len(models))
	for _, m := range models {
		out = append(out, entry{Name: m.Name, DisplayName: m.Label()})
	}

	return marshal(out)
}

func (t *Tools) selectModel(_ context.Context, input json.RawMessage) (string, error) {
	var in struct {
		Target   string `json:"target"`
		Provider string `json:"provider"`
		Model    string `json:"model"`
	}
	if err := json.Unmarshal(input, &in); err != nil {
		return "", fmt.Errorf("select_model: invalid input: %w", err)
	}

	target, err := modelconfig.ParseTarget(in.Target)
	if err != nil {
		return "", fmt.Errorf("select_model: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if !catalog.Group(t.panel.Catalog()).Has(in.Provider) {
		return "", fmt.Errorf("select_model: unknown provider %q", in.Provider)
	}

	sel := t.panel.Selector(target)
	sel.Dismiss()
	sel.Toggle()
	sel.ChooseProvider(in.Provider)

	if !offers(sel.Models(), in.Model) {
		sel.Dismiss()
		return "", fmt.Errorf("select_model: provider %q has no available model %q", in.Provider, in.Model)
	}

	sel.ChooseModel(in.Model)

	return fmt.Sprintf("%s model set to %s", target, t.panel.Config().Selection(target)), nil
}

func offers(models []catalog.ModelDescriptor, name string) bool {
	for _, m := range models {
		if m.Name == name {
			return true
		}
	}
	return false
}

func (t *Tools) setParameter(_ context.Context, input json.RawMessage) (string, error) {
	var in struct {
		Field string          `json:"field"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(input, &in); err != nil {
		return "", fmt.Errorf("set_parameter: invalid input: %w", err)
	}

	f, err := modelconfig.ParseField(in.Field)
	if err != nil {
		return "", fmt.Errorf("set_parameter: %w", err)
	}
	if f == modelconfig.FieldModel || f == modelconfig.FieldCompressModel {
		return "", fmt.Errorf("set_parameter: use select_model for %q", in.Field)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.panel.Visible(f) {
		return "", fmt.Errorf("set_parameter: %q is not supported by provider %q", in.Field, t.panel.Config().ProviderName)
	}

	var value any
	if err := json.Unmarshal(in.Value, &value); err != nil {
		return "", fmt.Errorf("set_parameter: invalid value: %w", err)
	}

	switch {
	case f.IsNumeric():
		switch v := value.(type) {
		case float64:
			t.panel.SetNumber(f, v)
		case string:
			t.panel.SetNumberText(f, v)
		default:
			return "", fmt.Errorf("set_parameter: %q expects a number", in.Field)
		}
	case f.IsBool():
		v, ok := value.(bool)
		if !ok {
			return "", fmt.Errorf("set_parameter: %q expects a boolean", in.Field)
		}
		t.panel.SetBool(f, v)
	case f == modelconfig.FieldTemplate:
		v, ok := value.(string)
		if !ok {
			return "", fmt.Errorf("set_parameter: %q expects a string", in.Field)
		}
		t.panel.SetTemplate(v)
	}

	return fmt.Sprintf("%s = %s", f, panel.FormatValue(t.panel.Config(), f)), nil
}

func (t *Tools) getConfig(_ context.Context, _ json.RawMessage) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	data, err := t.panel.Config().Marshal()
	if err != nil {
		return "", err
	}

	rows := t.panel.Rows()
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Field.String())
	}

	return string(data) + "# visible: " + strings.Join(names, ", ") + "\n", nil
}

func marshal(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
