package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"demopage/internal/delayed"
	"demopage/internal/engine"
)

// DelayedView shows the delayed-action trigger, a spinner while pending and the
// status text.
type DelayedView struct {
	Delay   time.Duration
	state   delayed.State
	spinner spinner.Model
	Focused bool
}

var _ SnapshotView = (*DelayedView)(nil)

// NewDelayedView creates the panel for a trigger with delay d.
func NewDelayedView(d time.Duration) *DelayedView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	return &DelayedView{Delay: d, spinner: s}
}

// SetSnapshot implements SnapshotView.
func (v *DelayedView) SetSnapshot(s engine.Snapshot) {
	v.state = s.Delayed
}

// Pending reports whether the spinner should run.
func (v *DelayedView) Pending() bool {
	return v.state.Phase == delayed.Pending
}

// Tick starts the spinner.
func (v *DelayedView) Tick() tea.Cmd {
	return v.spinner.Tick
}

// Init implements View.
func (v *DelayedView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *DelayedView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !v.Pending() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if !v.state.Enabled() {
				return v, nil
			}
			return v, msgCmd(TriggerDelayedMsg{Delay: v.Delay})
		case "r":
			if v.state.Phase == delayed.Completed {
				return v, msgCmd(ResetDelayedMsg{})
			}
		}
	}
	return v, nil
}

// View implements View.
func (v *DelayedView) View() string {
	var b strings.Builder
	b.WriteString(button(delayed.ButtonLabel(v.Delay), v.state.Enabled(), v.Focused))
	b.WriteString("\n")
	switch v.state.Phase {
	case delayed.Pending:
		b.WriteString(v.spinner.View() + " " + Styles.Status.Render(v.state.StatusText()))
	case delayed.Completed:
		b.WriteString(Styles.Success.Render(v.state.StatusText()))
	default:
		b.WriteString(Styles.Empty.Render("待機中"))
	}
	b.WriteString("\n" + Styles.Hint.Render("enter: 実行  r: リセット"))
	return panelBox("遅延アクション", b.String(), v.Focused, 0)
}
