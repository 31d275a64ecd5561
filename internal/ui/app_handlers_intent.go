package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"demopage/internal/engine"
	"demopage/internal/table"
)

// handleIntent forwards intent messages to the engine. The returned bool is
// false for messages that are not intents.
func (a *appModelAdapter) handleIntent(msg tea.Msg) (tea.Cmd, bool) {
	e := a.Engine
	var err error
	switch msg := msg.(type) {
	case AddItemMsg:
		e.AddItem()
	case RemoveItemMsg:
		e.RemoveItem(msg.ID)
	case RemoveFirstItemMsg:
		e.RemoveFirstItem()
	case ClearItemsMsg:
		e.ClearItems()
	case SetFieldMsg:
		err = e.SetField(msg.Field, msg.Value)
	case ToggleInterestMsg:
		err = e.ToggleInterest(msg.Name, msg.Checked)
	case SubmitFormMsg:
		e.SubmitForm()
	case ResetFormMsg:
		e.ResetForm()
	case OpenModalMsg:
		e.OpenModal()
	case CloseModalMsg:
		e.CloseModal()
	case TriggerDelayedMsg:
		d := msg.Delay
		if d == 0 {
			d = a.Delay
		}
		if !e.TriggerDelayedAction(d) {
			a.logger.Debug("delayed action already pending")
		}
	case ResetDelayedMsg:
		err = e.ResetDelayedAction()
	case FilterTableMsg:
		e.FilterTableByStatus(msg.Status)
	case ClickMsg:
		e.Click()
	case DoubleClickMsg:
		e.DoubleClick()
	default:
		return nil, false
	}
	if err != nil {
		a.logger.Warn("intent rejected", "msg", msg, "err", err)
		a.LastErr = err
		return nil, true
	}
	a.LastErr = nil
	return a.apply(e.Snapshot()), true
}

// apply pushes s into every panel and syncs the modal overlay with it.
// Snapshots older than the one already applied are ignored.
func (a *AppModel) apply(s engine.Snapshot) tea.Cmd {
	if s.Version < a.snap.Version {
		return nil
	}
	wasPending := a.Delayed.Pending()
	a.snap = s
	for _, p := range a.panels() {
		p.SetSnapshot(s)
	}

	var cmds []tea.Cmd
	switch {
	case s.ModalOpen && !a.Overlays.Has(ModalOverlayID):
		if a.Mode == ModeEditing {
			a.Form.EndEdit()
		}
		a.Overlays.Push(Overlay{ID: ModalOverlayID, View: NewModalDialog(), Dismiss: []string{"esc", "q"}})
		a.Mode = ModeModal
	case !s.ModalOpen && a.Overlays.Has(ModalOverlayID):
		a.Overlays.Remove(ModalOverlayID)
		a.Mode = ModeBrowse
	}
	if !wasPending && a.Delayed.Pending() {
		cmds = append(cmds, a.Delayed.Tick())
	}
	return tea.Batch(cmds...)
}

// waitForSnapshot blocks until the engine publishes, then asks Update to
// redraw from the latest state.
func (a *AppModel) waitForSnapshot() tea.Cmd {
	ch := a.snapshots
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return SnapshotMsg{Snapshot: s}
	}
}

// NewDefaultRegistry binds the global keys and the SPC-leader intents.
func NewDefaultRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "Quit")
	reg.Bind("SPC q", tea.Quit, "Quit")

	reg.Group("SPC i", "Items")
	reg.BindIntent("SPC i a", AddItemMsg{}, "Add item")
	reg.BindIntent("SPC i d", RemoveFirstItemMsg{}, "Remove first")
	reg.BindIntent("SPC i c", ClearItemsMsg{}, "Clear items")

	reg.Group("SPC f", "Form")
	reg.BindIntent("SPC f s", SubmitFormMsg{}, "Submit")
	reg.BindIntent("SPC f r", ResetFormMsg{}, "Reset form")

	reg.BindIntent("SPC m", OpenModalMsg{}, "Open modal")

	reg.Group("SPC d", "Delayed")
	reg.BindIntent("SPC d t", TriggerDelayedMsg{}, "Trigger")
	reg.BindIntent("SPC d r", ResetDelayedMsg{}, "Reset")

	reg.Group("SPC t", "Table")
	reg.BindIntent("SPC t a", FilterTableMsg{Status: table.StatusActive}, table.StatusActive)
	reg.BindIntent("SPC t i", FilterTableMsg{Status: table.StatusInactive}, table.StatusInactive)
	reg.BindIntent("SPC t x", FilterTableMsg{}, "All rows")

	reg.Group("SPC c", "Click")
	reg.BindIntent("SPC c c", ClickMsg{}, "Click")
	reg.BindIntent("SPC c d", DoubleClickMsg{}, "Double click")

	// Panel focus makes no sense while the form or modal owns the keyboard.
	for i, id := range DefaultFocusOrder {
		reg.BindIntent("SPC "+string(rune('1'+i)), FocusPanelMsg{ID: id}, "Focus "+id, ModeBrowse)
	}
	return reg
}
