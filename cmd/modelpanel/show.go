package main

import (
	"fmt"
	"strings"

	"github.com/germanamz/modelpanel/cmd/modelpanel/internal/tui"
	"github.com/germanamz/modelpanel/pkg/panel"
)

func runShow(o options) error {
	a, err := setup(o)
	if err != nil {
		return err
	}
	defer a.close()

	fmt.Println(renderMarkdown(rowsMarkdown(a.panel), 0))

	return nil
}

// rowsMarkdown lists the visible rows as a markdown table.
func rowsMarkdown(p *panel.Panel) string {
	var b strings.Builder

	b.WriteString("# Model settings\n\n")
	b.WriteString("| Setting | Value | Range |\n")
	b.WriteString("|---|---|---|\n")

	for _, row := range p.Rows() {
		rng := ""
		if row.Kind == panel.KindRange || row.Kind == panel.KindNumber {
			rng = fmt.Sprintf("%g..%g", row.Bounds.Min, row.Bounds.Max)
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", tui.Label(row.Field), escapeCell(row.Value), rng)
	}

	if caps := p.Capabilities(); !caps.Penalties || !caps.SystemPromptInjection || !caps.InputTemplate {
		fmt.Fprintf(&b, "\n_Some settings are not supported by %s and are hidden._\n", p.Config().ProviderName)
	}

	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
