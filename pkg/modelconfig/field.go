package modelconfig

import "fmt"

// Field identifies an editable ModelConfig field.
type Field int

const (
	FieldModel Field = iota
	FieldTemperature
	FieldTopP
	FieldMaxTokens
	FieldPresencePenalty
	FieldFrequencyPenalty
	FieldEnableInjectSystemPrompts
	FieldTemplate
	FieldHistoryMessageCount
	FieldCompressMessageLengthThreshold
	FieldSendMemory
	FieldCompressModel
)

var fieldNames = map[Field]string{
	FieldModel:                          "model",
	FieldTemperature:                    "temperature",
	FieldTopP:                           "top_p",
	FieldMaxTokens:                      "max_tokens",
	FieldPresencePenalty:                "presence_penalty",
	FieldFrequencyPenalty:               "frequency_penalty",
	FieldEnableInjectSystemPrompts:      "enable_inject_system_prompts",
	FieldTemplate:                       "template",
	FieldHistoryMessageCount:            "history_message_count",
	FieldCompressMessageLengthThreshold: "compress_message_length_threshold",
	FieldSendMemory:                     "send_memory",
	FieldCompressModel:                  "compress_model",
}

// String returns the field's YAML key.
func (f Field) String() string {
	if s, ok := fieldNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// ParseField resolves a YAML key to a Field.
func ParseField(s string) (Field, error) {
	for f, name := range fieldNames {
		if name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("modelconfig: unknown field %q", s)
}

// IsNumeric reports whether the field holds a number.
func (f Field) IsNumeric() bool {
	_, ok := domains[f]
	return ok
}

// IsBool reports whether the field holds a flag.
func (f Field) IsBool() bool {
	return f == FieldEnableInjectSystemPrompts || f == FieldSendMemory
}
