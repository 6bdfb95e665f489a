package paneltools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/germanamz/modelpanel/pkg/catalog"
	"github.com/germanamz/modelpanel/pkg/modelconfig"
	"github.com/germanamz/modelpanel/pkg/panel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPanel(t *testing.T) (*panel.Panel, *modelconfig.Memory) {
	t.Helper()

	openAI := &catalog.Provider{ProviderName: "OpenAI"}
	google := &catalog.Provider{ProviderName: "Google"}
	src := catalog.Static{
		{Name: "gpt-4", DisplayName: "GPT-4", Available: true, Provider: openAI},
		{Name: "gpt-4o", Available: true, Provider: openAI},
		{Name: "gemini-pro", DisplayName: "Gemini Pro", Available: true, Provider: google},
		{Name: "old", Available: false, Provider: openAI},
	}

	store := modelconfig.NewMemory(modelconfig.Default())
	return panel.New(src, store), store
}

func newTools(t *testing.T) (*Tools, *modelconfig.Memory) {
	t.Helper()

	p, store := newPanel(t)
	return New(p), store
}

func call(t *testing.T, tools *Tools, name string, input any) (string, error) {
	t.Helper()

	data, err := json.Marshal(input)
	require.NoError(t, err)

	for _, tool := range tools.All() {
		if tool.Name == name {
			return tool.Handler(context.Background(), data)
		}
	}
	t.Fatalf("tool %q not found", name)
	return "", nil
}

func TestListProviders(t *testing.T) {
	tools, _ := newTools(t)

	out, err := call(t, tools, "list_providers", map[string]any{})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"OpenAI","models":2},{"name":"Google","models":1}]`, out)
}

func TestListModels(t *testing.T) {
	tools, _ := newTools(t)

	out, err := call(t, tools, "list_models", map[string]any{"provider": "OpenAI"})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"gpt-4","display_name":"GPT-4"},{"name":"gpt-4o","display_name":"gpt-4o"}]`, out)

	out, err = call(t, tools, "list_models", map[string]any{"provider": "Nobody"})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestSelectModel(t *testing.T) {
	tools, store := newTools(t)

	out, err := call(t, tools, "select_model", map[string]any{"provider": "Google", "model": "gemini-pro"})
	require.NoError(t, err)
	assert.Equal(t, "primary model set to gemini-pro@Google", out)

	_, err = call(t, tools, "select_model", map[string]any{"target": "compression", "provider": "OpenAI", "model": "gpt-4o"})
	require.NoError(t, err)

	got := store.Snapshot()
	assert.Equal(t, modelconfig.Selection{Model: "gemini-pro", Provider: "Google"}, got.Selection(modelconfig.Primary))
	assert.Equal(t, modelconfig.Selection{Model: "gpt-4o", Provider: "OpenAI"}, got.Selection(modelconfig.Compression))
}

func TestSelectModel_Rejects(t *testing.T) {
	tools, store := newTools(t)
	before := store.Snapshot()

	tests := []struct {
		name  string
		input map[string]any
	}{
		{"unavailable model", map[string]any{"provider": "OpenAI", "model": "old"}},
		{"model of another provider", map[string]any{"provider": "OpenAI", "model": "gemini-pro"}},
		{"unknown provider", map[string]any{"provider": "Nobody", "model": "gpt-4"}},
		{"unknown target", map[string]any{"target": "backup", "provider": "OpenAI", "model": "gpt-4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := call(t, tools, "select_model", tt.input)
			assert.Error(t, err)
		})
	}

	assert.Equal(t, before, store.Snapshot())
}

func TestSelectModel_UnknownProvider(t *testing.T) {
	tools, _ := newTools(t)

	_, err := call(t, tools, "select_model", map[string]any{"provider": "Nobody", "model": "gpt-4"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown provider "Nobody"`)
}

func TestSetParameter(t *testing.T) {
	tools, store := newTools(t)

	out, err := call(t, tools, "set_parameter", map[string]any{"field": "max_tokens", "value": 999999})
	require.NoError(t, err)
	assert.Equal(t, "max_tokens = 512000", out)

	_, err = call(t, tools, "set_parameter", map[string]any{"field": "temperature", "value": "0.3"})
	require.NoError(t, err)

	_, err = call(t, tools, "set_parameter", map[string]any{"field": "send_memory", "value": false})
	require.NoError(t, err)

	_, err = call(t, tools, "set_parameter", map[string]any{"field": "template", "value": "> {{input}}"})
	require.NoError(t, err)

	got := store.Snapshot()
	assert.Equal(t, 512000, got.MaxTokens)
	assert.InDelta(t, 0.3, got.Temperature, 0)
	assert.False(t, got.SendMemory)
	assert.Equal(t, "> {{input}}", got.Template)
}

func TestSetParameter_Errors(t *testing.T) {
	tools, _ := newTools(t)

	tests := []struct {
		name  string
		input map[string]any
	}{
		{"unknown field", map[string]any{"field": "seed", "value": 1}},
		{"model field", map[string]any{"field": "model", "value": "gpt-4"}},
		{"bool for number", map[string]any{"field": "top_p", "value": true}},
		{"number for bool", map[string]any{"field": "send_memory", "value": 1}},
		{"number for template", map[string]any{"field": "template", "value": 1}},
		{"missing value", map[string]any{"field": "top_p"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := call(t, tools, "set_parameter", tt.input)
			assert.Error(t, err)
		})
	}
}

func TestSetParameter_HiddenForProvider(t *testing.T) {
	tools, store := newTools(t)

	_, err := call(t, tools, "select_model", map[string]any{"provider": "Google", "model": "gemini-pro"})
	require.NoError(t, err)

	_, err = call(t, tools, "set_parameter", map[string]any{"field": "presence_penalty", "value": 1})
	assert.Error(t, err)
	assert.InDelta(t, 0.0, store.Snapshot().PresencePenalty, 0)
}

func TestGetConfig(t *testing.T) {
	tools, _ := newTools(t)

	out, err := call(t, tools, "get_config", map[string]any{})
	require.NoError(t, err)
	assert.Contains(t, out, "model: gpt-4o-mini")
	assert.Contains(t, out, "provider_name: OpenAI")
}

func TestGetConfig_VisibleRows(t *testing.T) {
	tools, _ := newTools(t)

	_, err := call(t, tools, "select_model", map[string]any{"provider": "Google", "model": "gemini-pro"})
	require.NoError(t, err)

	out, err := call(t, tools, "get_config", map[string]any{})
	require.NoError(t, err)
	assert.Contains(t, out, "# visible: model, temperature, top_p, max_tokens, history_message_count")
	assert.NotContains(t, out, "# visible: model, temperature, top_p, max_tokens, presence_penalty")
}
