package styles

import "github.com/charmbracelet/lipgloss"

// GitHub terminal light theme palette.
var (
	ColorFg      = lipgloss.Color("#24292f") // primary foreground
	ColorMuted   = lipgloss.Color("#656d76") // muted/dim text
	ColorAccent  = lipgloss.Color("#0969da") // accent blue
	ColorError   = lipgloss.Color("#cf222e") // error red
	ColorSuccess = lipgloss.Color("#1a7f37") // success green
	ColorWarning = lipgloss.Color("#9a6700") // warning amber
)

// Centralized style definitions for the panel.
var (
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)

	// Row styles.
	RowSelStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	RowStyle      = lipgloss.NewStyle().Foreground(ColorFg)
	ValueStyle    = lipgloss.NewStyle().Foreground(ColorSuccess)
	BoundsStyle   = lipgloss.NewStyle().Foreground(ColorMuted).Faint(true)
	EditingStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	ToggleOnStyle = lipgloss.NewStyle().Foreground(ColorSuccess)

	// Dropdown styles.
	DropdownBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			PaddingLeft(1).
			PaddingRight(1)
	OptSelStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	OptStyle    = lipgloss.NewStyle().Foreground(ColorMuted)

	// General utility styles.
	DimStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
)

// Cursor marks the focused row or option.
const (
	Cursor   = "> "
	NoCursor = "  "
)
