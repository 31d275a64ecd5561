package ui

// AppMode decides where key presses go first.
type AppMode int

const (
	// ModeBrowse routes keys through the keybind registry, then the focused panel.
	ModeBrowse AppMode = iota
	// ModeEditing sends every key to the form's active input.
	ModeEditing
	// ModeModal sends keys to the modal overlay.
	ModeModal
)

func (m AppMode) String() string {
	switch m {
	case ModeBrowse:
		return "Browse"
	case ModeEditing:
		return "Editing"
	case ModeModal:
		return "Modal"
	default:
		return "Unknown"
	}
}
