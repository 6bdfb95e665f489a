package tui

import "github.com/germanamz/modelpanel/pkg/modelconfig"

var labels = map[modelconfig.Field]string{
	modelconfig.FieldModel:                          "Model",
	modelconfig.FieldTemperature:                    "Temperature",
	modelconfig.FieldTopP:                           "Top P",
	modelconfig.FieldMaxTokens:                      "Max Tokens",
	modelconfig.FieldPresencePenalty:                "Presence Penalty",
	modelconfig.FieldFrequencyPenalty:               "Frequency Penalty",
	modelconfig.FieldEnableInjectSystemPrompts:      "Inject System Prompts",
	modelconfig.FieldTemplate:                       "Input Template",
	modelconfig.FieldHistoryMessageCount:            "Attached Messages Count",
	modelconfig.FieldCompressMessageLengthThreshold: "History Compression Threshold",
	modelconfig.FieldSendMemory:                     "Memory Prompt",
	modelconfig.FieldCompressModel:                  "Compression Model",
}

var hints = map[modelconfig.Field]string{
	modelconfig.FieldTemperature:                    "Higher values make output more random",
	modelconfig.FieldTopP:                           "Do not alter this together with temperature",
	modelconfig.FieldMaxTokens:                      "Maximum length of input and generated tokens",
	modelconfig.FieldPresencePenalty:                "Higher values increase the likelihood of new topics",
	modelconfig.FieldFrequencyPenalty:               "Higher values decrease the likelihood of repeated lines",
	modelconfig.FieldEnableInjectSystemPrompts:      "Inject a global system prompt for every request",
	modelconfig.FieldTemplate:                       "Latest message is filled in for {{input}}",
	modelconfig.FieldHistoryMessageCount:            "Number of sent messages attached per request",
	modelconfig.FieldCompressMessageLengthThreshold: "Compress history once uncompressed messages exceed this length",
	modelconfig.FieldSendMemory:                     "Send the compressed history summary with each request",
	modelconfig.FieldCompressModel:                  "Model used to compress history",
}

// Label is the human-readable name of a field.
func Label(f modelconfig.Field) string {
	if l, ok := labels[f]; ok {
		return l
	}
	return f.String()
}

// Hint is the one-line explanation shown under the focused row.
func Hint(f modelconfig.Field) string {
	return hints[f]
}
