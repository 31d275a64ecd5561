package engine

import (
	"demopage/internal/delayed"
	"demopage/internal/form"
	"demopage/internal/items"
	"demopage/internal/table"
)

// Snapshot is an immutable view of every store. Renderers draw purely from it.
type Snapshot struct {
	Version      uint64 // strictly increasing per published change
	Items        []items.Entry
	ItemCount    int
	Form         form.State
	ModalOpen    bool
	Delayed      delayed.State
	DelayedPhase delayed.Phase
	VisibleRows  []table.Row
	TableStatus  string // "" when no filter is applied
	ClickResult  string
}

// TriggerEnabled reports whether the delayed-action trigger accepts input.
func (s Snapshot) TriggerEnabled() bool {
	return s.Delayed.Enabled()
}

// DelayedStatusText returns the text rendered next to the delayed trigger.
func (s Snapshot) DelayedStatusText() string {
	return s.Delayed.StatusText()
}

// FormResult returns the confirmation text of the last submission, or "".
func (s Snapshot) FormResult() string {
	if !s.Form.Submitted || s.Form.LastSubmission == nil {
		return ""
	}
	return s.Form.LastSubmission.Summary()
}

func (e *Engine) snapshotLocked() Snapshot {
	d := e.delayed.State()
	return Snapshot{
		Version:      e.version,
		Items:        e.items.Entries(),
		ItemCount:    e.items.Count(),
		Form:         e.form.State(),
		ModalOpen:    e.modal.IsOpen(),
		Delayed:      d,
		DelayedPhase: d.Phase,
		VisibleRows:  e.table.Rows(),
		TableStatus:  e.table.Status(),
		ClickResult:  e.clicks.Message(),
	}
}
