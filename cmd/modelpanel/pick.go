package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/germanamz/modelpanel/pkg/catalog"
	"github.com/germanamz/modelpanel/pkg/modelconfig"
	"github.com/germanamz/modelpanel/pkg/selector"
)

// runPick walks the target's picker through provider and model forms.
func runPick(o options, target modelconfig.Target) error {
	a, err := setup(o)
	if err != nil {
		return err
	}
	defer a.close()

	sel := a.panel.Selector(target)
	sel.Toggle()
	defer sel.Dismiss()

	providers := sel.Providers()
	if len(providers) == 0 {
		return errors.New("pick: no models available")
	}

	var provider string
	if err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(fmt.Sprintf("Provider for the %s model", target)).
			Options(providerOptions(providers)...).
			Value(&provider),
	)).Run(); err != nil {
		return err
	}

	if !sel.ChooseProvider(provider) {
		return fmt.Errorf("pick: provider %q is not available", provider)
	}

	model := sel.Current().Model
	if err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(provider + " models").
			Options(modelOptions(sel.Models())...).
			Value(&model),
	)).Run(); err != nil {
		return err
	}

	if !sel.ChooseModel(model) {
		return fmt.Errorf("pick: %s has no model %q", provider, model)
	}
	fmt.Fprintln(os.Stderr, pickSummary(sel))

	return printResult(a)
}

func providerOptions(counts []catalog.ProviderCount) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(counts))
	for _, c := range counts {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%d models)", c.Name, c.Count), c.Name))
	}
	return opts
}

func modelOptions(models []catalog.ModelDescriptor) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(models))
	for _, m := range models {
		opts = append(opts, huh.NewOption(m.Label(), m.Name))
	}
	return opts
}

// pickSummary describes the committed selection of sel.
func pickSummary(sel *selector.Selector) string {
	return fmt.Sprintf("%s model: %s", sel.Target(), sel.Summary())
}
