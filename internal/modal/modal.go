// Package modal implements the two-state modal dialog controller.
package modal

// State is the modal visibility state.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	switch s {
	case Closed:
		return "Closed"
	case Open:
		return "Open"
	default:
		return "Unknown"
	}
}

// Controller owns the modal state. It starts Closed.
type Controller struct {
	state State
}

// NewController creates a closed modal.
func NewController() *Controller {
	return &Controller{state: Closed}
}

// Open transitions Closed -> Open. Returns false if already open.
func (c *Controller) Open() bool {
	if c.state == Open {
		return false
	}
	c.state = Open
	return true
}

// Close transitions Open -> Closed. Returns false if already closed.
func (c *Controller) Close() bool {
	if c.state == Closed {
		return false
	}
	c.state = Closed
	return true
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// IsOpen reports whether the modal is visible.
func (c *Controller) IsOpen() bool { return c.state == Open }
