package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Modal dialog texts.
const (
	ModalTitle = "モーダルダイアログ"
	ModalBody  = "これはモーダルダイアログです。"
	ModalClose = "閉じる"
)

// ModalOverlayID identifies the modal dialog on the overlay stack.
const ModalOverlayID = "modal"

// ModalDialog is the demo modal. Enter on the close button sends
// CloseModalMsg; the overlay itself is removed only when the engine reports
// the modal closed.
type ModalDialog struct {
	Title string
	Body  string
}

// Ensure ModalDialog implements View.
var _ View = (*ModalDialog)(nil)

// NewModalDialog creates the demo modal.
func NewModalDialog() *ModalDialog {
	return &ModalDialog{Title: ModalTitle, Body: ModalBody}
}

// Init implements View.
func (m *ModalDialog) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ModalDialog) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			return m, msgCmd(CloseModalMsg{})
		}
	}
	return m, nil
}

// View implements View.
func (m *ModalDialog) View() string {
	content := Styles.Title.Render(m.Title) + "\n\n"
	content += Styles.Normal.Render(m.Body)
	content += "\n\n" + button(ModalClose, true, true)
	content += "\n\n" + Styles.Hint.Render("Enter/Esc: 閉じる")
	return Styles.Modal.Render(content)
}
