package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileCatalog is the on-disk catalog layout. Models are listed per provider
// so the file reads the way the selector presents it.
type fileCatalog struct {
	Providers []struct {
		ID     string `yaml:"id"`
		Name   string `yaml:"name"`
		Type   string `yaml:"type"`
		Models []struct {
			Name        string `yaml:"name"`
			DisplayName string `yaml:"display_name"`
			Available   *bool  `yaml:"available"`
		} `yaml:"models"`
	} `yaml:"providers"`
	// Unassigned holds models without provider metadata. Unlike provider
	// models they are unavailable unless marked otherwise.
	Unassigned []ModelDescriptor `yaml:"unassigned"`
}

// DefaultModels is used when no catalog file is present.
var DefaultModels = Static{
	model("gpt-4o-mini", "GPT-4o mini", openAI),
	model("gpt-4o", "GPT-4o", openAI),
	model("o3-mini", "o3-mini", openAI),
	model("claude-3-5-sonnet-latest", "Claude 3.5 Sonnet", anthropic),
	model("claude-3-5-haiku-latest", "Claude 3.5 Haiku", anthropic),
	model("gemini-1.5-pro", "Gemini 1.5 Pro", google),
	model("gemini-2.0-flash", "Gemini 2.0 Flash", google),
	model("deepseek-chat", "DeepSeek Chat", deepSeek),
	model("deepseek-reasoner", "DeepSeek Reasoner", deepSeek),
}

var (
	openAI    = &Provider{ID: "openai", ProviderName: "OpenAI", ProviderType: "openai", Sorted: 1}
	anthropic = &Provider{ID: "anthropic", ProviderName: "Anthropic", ProviderType: "anthropic", Sorted: 2}
	google    = &Provider{ID: "google", ProviderName: "Google", ProviderType: "google", Sorted: 3}
	deepSeek  = &Provider{ID: "deepseek", ProviderName: "DeepSeek", ProviderType: "deepseek", Sorted: 4}
)

func model(name, display string, p *Provider) ModelDescriptor {
	return ModelDescriptor{Name: name, DisplayName: display, Available: true, Provider: p}
}

// LoadFile reads a YAML catalog. Environment variables are expanded before
// parsing. A missing file yields DefaultModels; models without an explicit
// "available" flag are available.
func LoadFile(path string) (Static, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration
	if errors.Is(err, os.ErrNotExist) {
		return DefaultModels.Models(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: load: %w", err)
	}

	return Parse([]byte(os.ExpandEnv(string(data))))
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (Static, error) {
	var fc fileCatalog
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}

	var out Static
	for i, p := range fc.Providers {
		if p.Name == "" {
			return nil, fmt.Errorf("catalog: parse: provider %d: name is required", i)
		}

		prov := &Provider{ID: p.ID, ProviderName: p.Name, ProviderType: p.Type, Sorted: i + 1}
		if prov.ID == "" {
			prov.ID = p.Name
		}

		for _, m := range p.Models {
			if m.Name == "" {
				return nil, fmt.Errorf("catalog: parse: provider %q: model name is required", p.Name)
			}
			available := m.Available == nil || *m.Available
			out = append(out, ModelDescriptor{
				Name:        m.Name,
				DisplayName: m.DisplayName,
				Available:   available,
				Provider:    prov,
			})
		}
	}

	for _, m := range fc.Unassigned {
		m.Provider = nil
		out = append(out, m)
	}

	return out, nil
}
