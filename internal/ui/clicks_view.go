package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"demopage/internal/engine"
)

// ClicksView hosts the click demo button, a permanently disabled button and
// the last click result.
type ClicksView struct {
	result  string
	Focused bool
}

var _ SnapshotView = (*ClicksView)(nil)

// NewClicksView creates the click panel.
func NewClicksView() *ClicksView {
	return &ClicksView{}
}

// SetSnapshot implements SnapshotView.
func (v *ClicksView) SetSnapshot(s engine.Snapshot) {
	v.result = s.ClickResult
}

// Init implements View.
func (v *ClicksView) Init() tea.Cmd {
	return nil
}

// Update implements View. The disabled button has no binding.
func (v *ClicksView) Update(msg tea.Msg) (View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter", "c":
			return v, msgCmd(ClickMsg{})
		case "d":
			return v, msgCmd(DoubleClickMsg{})
		}
	}
	return v, nil
}

// View implements View.
func (v *ClicksView) View() string {
	body := button("クリックしてください", true, v.Focused) + "  " + button("無効なボタン", false, false) + "\n"
	if v.result != "" {
		body += Styles.Success.Render(v.result)
	} else {
		body += Styles.Empty.Render("まだクリックされていません")
	}
	body += "\n" + Styles.Hint.Render("enter: クリック  d: ダブルクリック")
	return panelBox("クリック", body, v.Focused, 0)
}
