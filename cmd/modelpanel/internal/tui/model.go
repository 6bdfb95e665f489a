// Package tui is the interactive model settings panel.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/germanamz/modelpanel/cmd/modelpanel/internal/styles"
	"github.com/germanamz/modelpanel/pkg/modelconfig"
	"github.com/germanamz/modelpanel/pkg/panel"
	"github.com/germanamz/modelpanel/pkg/selector"
	"github.com/mattn/go-runewidth"
)

const (
	labelWidth    = 32
	maxValueWidth = 40
)

// Model is the root bubbletea model for the panel.
type Model struct {
	panel   *panel.Panel
	cursor  int // focused row
	option  int // focused entry of an open dropdown
	editing bool
	input   textinput.Model
	width   int
	done    bool
}

// New creates a panel model over p.
func New(p *panel.Panel) Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = maxValueWidth

	return Model{panel: p, input: ti}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.done = true
			return m, tea.Quit
		}

		if m.editing {
			return m.handleEdit(msg)
		}

		if sel := m.openSelector(); sel != nil {
			return m.handleDropdown(sel, msg), nil
		}

		return m.handleRows(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleRows(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.panel.Rows()
	row := rows[m.cursor]

	switch {
	case key.Matches(msg, keys.Quit):
		m.done = true
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Select):
		return m.activate(row)
	case key.Matches(msg, keys.Dec):
		if row.Kind == panel.KindRange {
			m.panel.Nudge(row.Field, -1)
		}
	case key.Matches(msg, keys.Inc):
		if row.Kind == panel.KindRange {
			m.panel.Nudge(row.Field, 1)
		}
	}

	return m, nil
}

func (m Model) activate(row panel.Row) (tea.Model, tea.Cmd) {
	switch row.Kind {
	case panel.KindModel:
		// Only one dropdown is open at a time.
		m.panel.DismissAll()
		row.Selector.Toggle()
		m.option = 0
		return m, nil
	case panel.KindToggle:
		m.panel.Toggle(row.Field)
		return m, nil
	default:
		m.editing = true
		m.input.SetValue(editText(m.panel.Config(), row))
		m.input.CursorEnd()
		return m, m.input.Focus()
	}
}

// editText is the editor's starting text. Numbers keep full precision so
// confirming an untouched value writes it back unchanged.
func editText(cfg modelconfig.ModelConfig, row panel.Row) string {
	if row.Kind == panel.KindRange || row.Kind == panel.KindNumber {
		return strconv.FormatFloat(panel.NumberValue(cfg, row.Field), 'f', -1, 64)
	}
	return row.Value
}

func (m Model) handleEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		row := m.panel.Rows()[m.cursor]
		if row.Kind == panel.KindText {
			m.panel.SetTemplate(m.input.Value())
		} else {
			m.panel.SetNumberText(row.Field, m.input.Value())
		}
		m.editing = false
		m.input.Blur()
		return m, nil
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleDropdown(sel *selector.Selector, msg tea.KeyMsg) Model {
	n := m.optionCount(sel)

	switch {
	case key.Matches(msg, keys.Close):
		sel.Dismiss()
	case key.Matches(msg, keys.Up):
		if m.option > 0 {
			m.option--
		}
	case key.Matches(msg, keys.Down):
		if m.option < n-1 {
			m.option++
		}
	case key.Matches(msg, keys.Back):
		if !sel.Back() {
			sel.Dismiss()
		}
		m.option = 0
	case key.Matches(msg, keys.Select):
		if n == 0 {
			break
		}
		if sel.State().Kind() == selector.KindProviderList {
			sel.ChooseProvider(sel.Providers()[m.option].Name)
		} else {
			sel.ChooseModel(sel.Models()[m.option].Name)
		}
		m.option = 0
	}

	// A new primary provider can hide rows.
	if rows := m.panel.Rows(); m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}

	return m
}

func (m Model) openSelector() *selector.Selector {
	for _, sel := range []*selector.Selector{m.panel.Primary(), m.panel.Compression()} {
		if sel.IsOpen() {
			return sel
		}
	}
	return nil
}

func (m Model) optionCount(sel *selector.Selector) int {
	if sel.State().Kind() == selector.KindProviderList {
		return len(sel.Providers())
	}
	return len(sel.Models())
}

func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Model Settings"))
	b.WriteString("\n\n")

	for i, row := range m.panel.Rows() {
		b.WriteString(m.rowView(i, row))
		b.WriteString("\n")

		if i != m.cursor {
			continue
		}
		if row.Kind == panel.KindModel && row.Selector.IsOpen() {
			b.WriteString(m.dropdownView(row.Selector))
			b.WriteString("\n")
		} else if h := Hint(row.Field); h != "" {
			b.WriteString(styles.DimStyle.Render("    " + h))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render(m.helpLine()))

	return b.String()
}

func (m Model) rowView(i int, row panel.Row) string {
	cursor, style := styles.NoCursor, styles.RowStyle
	if i == m.cursor {
		cursor, style = styles.Cursor, styles.RowSelStyle
	}

	label := style.Render(cursor + runewidth.FillRight(Label(row.Field), labelWidth))

	if i == m.cursor && m.editing {
		return label + styles.EditingStyle.Render(m.input.View())
	}

	return label + valueView(row)
}

func valueView(row panel.Row) string {
	value := runewidth.Truncate(row.Value, maxValueWidth, "…")

	switch row.Kind {
	case panel.KindToggle:
		if row.Value == "true" {
			return styles.ToggleOnStyle.Render("[x]")
		}
		return styles.DimStyle.Render("[ ]")
	case panel.KindRange, panel.KindNumber:
		bounds := fmt.Sprintf("  %s..%s", formatBound(row.Bounds.Min), formatBound(row.Bounds.Max))
		return styles.ValueStyle.Render(value) + styles.BoundsStyle.Render(bounds)
	default:
		return styles.ValueStyle.Render(value)
	}
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (m Model) dropdownView(sel *selector.Selector) string {
	var b strings.Builder

	switch sel.State().Kind() {
	case selector.KindProviderList:
		providers := sel.Providers()
		if len(providers) == 0 {
			b.WriteString(styles.ErrorStyle.Render("No models available"))
		}
		for i, p := range providers {
			line := runewidth.FillRight(p.Name, 20) + styles.DimStyle.Render(modelCount(p.Count))
			b.WriteString(m.optionView(i, line))
		}
	case selector.KindModelList:
		provider, _ := sel.State().Provider()
		b.WriteString(styles.DimStyle.Render("← " + provider))
		b.WriteString("\n")

		current := sel.Current()
		for i, d := range sel.Models() {
			line := d.Label()
			if d.Name == current.Model && provider == current.Provider {
				line += " ✓"
			}
			b.WriteString(m.optionView(i, line))
		}
	}

	return styles.DropdownBorder.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) optionView(i int, line string) string {
	if i == m.option {
		return styles.OptSelStyle.Render(styles.Cursor+line) + "\n"
	}
	return styles.OptStyle.Render(styles.NoCursor+line) + "\n"
}

func modelCount(n int) string {
	if n == 1 {
		return "1 model"
	}
	return strconv.Itoa(n) + " models"
}

func (m Model) helpLine() string {
	switch {
	case m.editing:
		return "Enter: apply  Esc: cancel"
	case m.openSelector() != nil:
		return "↑/↓: navigate  Enter: select  ←: back  Esc: close"
	default:
		return "↑/↓: navigate  Enter: edit  ←/→: adjust  q: quit"
	}
}

// Config returns the panel's current configuration.
func (m Model) Config() modelconfig.ModelConfig {
	return m.panel.Config()
}
