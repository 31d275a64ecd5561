package ui

import (
	"time"

	"demopage/internal/engine"
	"demopage/internal/form"
)

// SnapshotMsg is delivered when the engine publishes a new state outside of a
// key press (e.g. the delayed action completing).
type SnapshotMsg struct {
	Snapshot engine.Snapshot
}

// AddItemMsg appends an item with the default label (SPC i a or a).
type AddItemMsg struct{}

// RemoveItemMsg removes the item with ID (x on the items panel).
type RemoveItemMsg struct {
	ID int
}

// RemoveFirstItemMsg removes the earliest item (SPC i d).
type RemoveFirstItemMsg struct{}

// ClearItemsMsg removes every item (SPC i c or c).
type ClearItemsMsg struct{}

// SetFieldMsg stores a raw form value; sent on every edit of a form input.
type SetFieldMsg struct {
	Field form.Field
	Value string
}

// ToggleInterestMsg checks or unchecks an interest flag.
type ToggleInterestMsg struct {
	Name    string
	Checked bool
}

// SubmitFormMsg submits the form (SPC f s).
type SubmitFormMsg struct{}

// ResetFormMsg restores form defaults (SPC f r).
type ResetFormMsg struct{}

// OpenModalMsg shows the modal dialog (SPC m).
type OpenModalMsg struct{}

// CloseModalMsg hides the modal dialog.
type CloseModalMsg struct{}

// TriggerDelayedMsg starts the delayed action. Zero Delay uses the app default.
type TriggerDelayedMsg struct {
	Delay time.Duration
}

// ResetDelayedMsg returns a completed delayed action to idle.
type ResetDelayedMsg struct{}

// FilterTableMsg selects table rows by status; empty shows all rows.
type FilterTableMsg struct {
	Status string
}

// ClickMsg records a click on the demo button.
type ClickMsg struct{}

// DoubleClickMsg records a double click on the demo button.
type DoubleClickMsg struct{}

// FocusPanelMsg moves focus to a panel by ID.
type FocusPanelMsg struct {
	ID string
}

// BeginEditMsg is sent by the form when one of its inputs takes the keyboard.
type BeginEditMsg struct{}

// EndEditMsg is sent by the form when its input releases the keyboard.
type EndEditMsg struct{}
