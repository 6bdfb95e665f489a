package main

import (
	"github.com/germanamz/modelpanel/pkg/modelconfig"
	"github.com/pmezard/go-difflib/difflib"
)

// configDiff returns a unified diff of the YAML forms of before and after, or
// an empty string when nothing changed.
func configDiff(before, after modelconfig.ModelConfig) (string, error) {
	a, err := before.Marshal()
	if err != nil {
		return "", err
	}
	b, err := after.Marshal()
	if err != nil {
		return "", err
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(a)),
		B:        difflib.SplitLines(string(b)),
		FromFile: "initial",
		ToFile:   "edited",
		Context:  1,
	})
}
