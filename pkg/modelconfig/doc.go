// Package modelconfig holds the generation settings of a chat session and the
// single gate through which they are changed.
//
// Every numeric field has a closed domain (see [Domain]). Values only reach a
// [ModelConfig] through an [Edit] applied by a [Mutator], and every numeric
// edit is clamped by the field's validator first, so a stored configuration is
// always legal. Validators never fail: NaN maps to the field's fallback and
// out-of-range values clamp to the nearest bound.
package modelconfig
