// Package clicks tracks the result message of the click demo buttons.
package clicks

// Result messages.
const (
	ClickedText       = "ボタンがクリックされました！"
	DoubleClickedText = "ダブルクリックされました！"
)

// Tracker holds the last click result. The zero value shows no message.
type Tracker struct {
	message string
}

// Click records a single click.
func (t *Tracker) Click() string {
	t.message = ClickedText
	return t.message
}

// DoubleClick records a double click.
func (t *Tracker) DoubleClick() string {
	t.message = DoubleClickedText
	return t.message
}

// Message returns the current result ("" before any click).
func (t *Tracker) Message() string { return t.message }
