package modelconfig

import "math"

// Bounds describes the legal values of a numeric field.
type Bounds struct {
	Min      float64
	Max      float64
	Step     float64 // UI increment.
	Integer  bool
	Fallback float64 // Used when the raw value is NaN.
}

var domains = map[Field]Bounds{
	FieldTemperature:                    {Min: 0, Max: 1, Step: 0.1, Fallback: 1},
	FieldTopP:                           {Min: 0, Max: 1, Step: 0.1, Fallback: 1},
	FieldMaxTokens:                      {Min: 1024, Max: 512000, Step: 1, Integer: true, Fallback: 1024},
	FieldPresencePenalty:                {Min: -2, Max: 2, Step: 0.1, Fallback: 0},
	FieldFrequencyPenalty:               {Min: -2, Max: 2, Step: 0.1, Fallback: 0},
	FieldHistoryMessageCount:            {Min: 0, Max: 64, Step: 1, Integer: true, Fallback: 4},
	FieldCompressMessageLengthThreshold: {Min: 500, Max: 4000, Step: 1, Integer: true, Fallback: 1000},
}

// Domain returns the bounds of a numeric field. ok is false for fields that
// are not numbers.
func Domain(f Field) (b Bounds, ok bool) {
	b, ok = domains[f]
	return b, ok
}

// Clamp constrains raw to the bounds. Integer domains are rounded after
// clamping.
func (b Bounds) Clamp(raw float64) float64 {
	if math.IsNaN(raw) {
		return b.Fallback
	}
	v := math.Min(b.Max, math.Max(b.Min, raw))
	if b.Integer {
		v = math.Round(v)
	}
	return v
}

// Contains reports whether v is already legal.
func (b Bounds) Contains(v float64) bool {
	if math.IsNaN(v) || v < b.Min || v > b.Max {
		return false
	}
	return !b.Integer || v == math.Trunc(v)
}

// Temperature clamps to [0, 1].
func Temperature(raw float64) float64 { return domains[FieldTemperature].Clamp(raw) }

// TopP clamps to [0, 1].
func TopP(raw float64) float64 { return domains[FieldTopP].Clamp(raw) }

// MaxTokens clamps to [1024, 512000] and rounds.
func MaxTokens(raw float64) int { return int(domains[FieldMaxTokens].Clamp(raw)) }

// PresencePenalty clamps to [-2, 2].
func PresencePenalty(raw float64) float64 { return domains[FieldPresencePenalty].Clamp(raw) }

// FrequencyPenalty clamps to [-2, 2].
func FrequencyPenalty(raw float64) float64 { return domains[FieldFrequencyPenalty].Clamp(raw) }

// HistoryMessageCount clamps to [0, 64] and rounds.
func HistoryMessageCount(raw float64) int { return int(domains[FieldHistoryMessageCount].Clamp(raw)) }

// CompressMessageLengthThreshold clamps to [500, 4000] and rounds.
func CompressMessageLengthThreshold(raw float64) int {
	return int(domains[FieldCompressMessageLengthThreshold].Clamp(raw))
}

// ModelName is the identity today. Catalog membership checks belong here.
func ModelName(name string) string { return name }
