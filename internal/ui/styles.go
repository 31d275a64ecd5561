package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for focus, selected items
	ColorDanger    = "196" // Red - for errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "238" // Darker gray - for disabled controls
	ColorSuccess   = "42"  // Green - for completion messages
)

// Styles contains shared style definitions used across panels and the modal.
var Styles = struct {
	// Title styles
	Title      lipgloss.Style // Bold accent color - for panel titles
	TitleFocus lipgloss.Style // Bold highlight color - for the focused panel title

	// Box styles
	Panel      lipgloss.Style // Unfocused panel border
	PanelFocus lipgloss.Style // Focused panel border
	Modal      lipgloss.Style // Modal dialog box

	// Text styles
	Selected lipgloss.Style // Cursor row / field
	Muted    lipgloss.Style // Dimmed text
	Normal   lipgloss.Style // Normal text
	Hint     lipgloss.Style // Help/hint text
	Status   lipgloss.Style // Status indicators (accent color)
	Success  lipgloss.Style // Completed action text
	Error    lipgloss.Style // Intent errors
	Empty    lipgloss.Style // Empty state text (muted, italic)
	Button   lipgloss.Style // Enabled button
	Disabled lipgloss.Style // Disabled button
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleFocus: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	PanelFocus: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Modal: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(1, 2).
		Margin(1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Success: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color("62")).
		Padding(0, 1),
	Disabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)).
		Strikethrough(true).
		Padding(0, 1),
}

// NewCompactListDelegate returns a delegate with zero spacing and shared styles.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.Selected.PaddingLeft(1)
	d.Styles.NormalTitle = Styles.Normal.PaddingLeft(1)
	return d
}

// panelBox renders body inside a titled panel border.
func panelBox(title, body string, focused bool, width int) string {
	box, t := Styles.Panel, Styles.Title
	if focused {
		box, t = Styles.PanelFocus, Styles.TitleFocus
	}
	if width > 0 {
		box = box.Width(width)
	}
	return box.Render(t.Render(title) + "\n" + body)
}

// button renders a labeled button; disabled buttons are struck through.
func button(label string, enabled, focused bool) string {
	if !enabled {
		return Styles.Disabled.Render(label)
	}
	s := Styles.Button
	if focused {
		s = s.Bold(true).Background(lipgloss.Color(ColorHighlight))
	}
	return s.Render(label)
}
