package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"demopage/internal/engine"
)

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// SnapshotView is a View that redraws from engine state.
type SnapshotView interface {
	View
	SetSnapshot(engine.Snapshot)
}
