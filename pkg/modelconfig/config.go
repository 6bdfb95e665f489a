package modelconfig

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultInputTemplate is the pass-through user input template.
const DefaultInputTemplate = "{{input}}"

// ModelConfig is the per-session generation configuration.
type ModelConfig struct {
	Model                string `yaml:"model"`
	ProviderName         string `yaml:"provider_name"`
	CompressModel        string `yaml:"compress_model"`
	CompressProviderName string `yaml:"compress_provider_name"`

	Temperature                    float64 `yaml:"temperature"`
	TopP                           float64 `yaml:"top_p"`
	MaxTokens                      int     `yaml:"max_tokens"`
	PresencePenalty                float64 `yaml:"presence_penalty"`
	FrequencyPenalty               float64 `yaml:"frequency_penalty"`
	HistoryMessageCount            int     `yaml:"history_message_count"`
	CompressMessageLengthThreshold int     `yaml:"compress_message_length_threshold"`

	EnableInjectSystemPrompts bool   `yaml:"enable_inject_system_prompts"`
	SendMemory                bool   `yaml:"send_memory"`
	Template                  string `yaml:"template"`
}

// Default returns the factory configuration.
func Default() ModelConfig {
	return ModelConfig{
		Model:                          "gpt-4o-mini",
		ProviderName:                   "OpenAI",
		Temperature:                    0.5,
		TopP:                           1,
		MaxTokens:                      4000,
		PresencePenalty:                0,
		FrequencyPenalty:               0,
		HistoryMessageCount:            4,
		CompressMessageLengthThreshold: 1000,
		EnableInjectSystemPrompts:      true,
		SendMemory:                     true,
		Template:                       DefaultInputTemplate,
	}
}

// Target names one of the two model selections of a ModelConfig.
type Target int

const (
	// Primary is the chat model (Model + ProviderName).
	Primary Target = iota
	// Compression is the history summarization model
	// (CompressModel + CompressProviderName).
	Compression
)

func (t Target) String() string {
	switch t {
	case Primary:
		return "primary"
	case Compression:
		return "compression"
	default:
		return fmt.Sprintf("Target(%d)", int(t))
	}
}

// ParseTarget converts "primary" or "compression" to a Target.
func ParseTarget(s string) (Target, error) {
	switch s {
	case "primary", "":
		return Primary, nil
	case "compression":
		return Compression, nil
	default:
		return 0, fmt.Errorf("modelconfig: unknown target %q", s)
	}
}

// Selection is a model name paired with its provider.
type Selection struct {
	Model    string
	Provider string
}

// String renders the selection as model@provider.
func (s Selection) String() string {
	return s.Model + "@" + s.Provider
}

// Selection returns the target's model/provider pair.
func (c ModelConfig) Selection(t Target) Selection {
	if t == Compression {
		return Selection{Model: c.CompressModel, Provider: c.CompressProviderName}
	}
	return Selection{Model: c.Model, Provider: c.ProviderName}
}

// Normalize runs every numeric field through its validator. It is used on
// configurations that did not come through a Mutator, such as a file.
func (c ModelConfig) Normalize() ModelConfig {
	c.Model = ModelName(c.Model)
	c.CompressModel = ModelName(c.CompressModel)
	c.Temperature = Temperature(c.Temperature)
	c.TopP = TopP(c.TopP)
	c.MaxTokens = MaxTokens(float64(c.MaxTokens))
	c.PresencePenalty = PresencePenalty(c.PresencePenalty)
	c.FrequencyPenalty = FrequencyPenalty(c.FrequencyPenalty)
	c.HistoryMessageCount = HistoryMessageCount(float64(c.HistoryMessageCount))
	c.CompressMessageLengthThreshold = CompressMessageLengthThreshold(float64(c.CompressMessageLengthThreshold))
	return c
}

// LoadFile reads a YAML configuration on top of Default and normalizes it.
// Environment variables are expanded before parsing. A missing file yields
// the defaults.
func LoadFile(path string) (ModelConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return ModelConfig{}, fmt.Errorf("modelconfig: load: %w", err)
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return ModelConfig{}, fmt.Errorf("modelconfig: parse: %w", err)
	}

	return cfg.Normalize(), nil
}

// Marshal renders the configuration as YAML.
func (c ModelConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("modelconfig: marshal: %w", err)
	}
	return data, nil
}
