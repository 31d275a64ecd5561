package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient help bar shown after SPC.
// In a submenu (e.g. "SPC i") it shows that submenu's keys.
func RenderKeybindHelp(keyHandler *KeyHandler, mode AppMode) string {
	if keyHandler == nil {
		return ""
	}
	bindings := NewKeyMap(keyHandler.Registry, keyHandler, mode).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = Styles.Muted
	helpModel.Styles.ShortSeparator = Styles.Muted

	prefix := keyHandler.Prefix()
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)
	return boxStyle.Render(Styles.Muted.Render(prefix) + " " + helpModel.ShortHelpView(bindings))
}

// renderStatusLine is the always-visible hint under the panels.
func renderStatusLine(mode AppMode, focus string) string {
	var hint string
	switch mode {
	case ModeEditing:
		hint = "editing: esc to finish"
	case ModeModal:
		hint = "modal: enter/esc to close"
	default:
		hint = "SPC: commands  tab: next panel  q: quit"
	}
	return Styles.Hint.Render("[" + mode.String() + "] " + focus + "  " + hint)
}
