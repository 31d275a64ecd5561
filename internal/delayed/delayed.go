// Package delayed implements a single timed action with busy gating.
//
// Phases: Idle -> Pending (Trigger) -> Completed (after the delay) -> Idle (Reset).
// Only one action can be pending; triggering again while pending is ignored.
// The trigger affordance is derived from the phase and is never stored.
package delayed

import (
	"fmt"
	"sync"
	"time"

	"demopage/internal/clock"
)

// Phase is the state of the delayed action.
type Phase int

const (
	Idle Phase = iota
	Pending
	Completed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Pending:
		return "Pending"
	case Completed:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Status texts rendered for each phase.
const (
	PendingText      = "読み込み中..."
	CompletedTextFmt = "%d秒経過しました！データが表示されました。"
	ButtonLabelFmt   = "%d秒後にメッセージ表示"
	DefaultDelay     = 3 * time.Second
)

// State is an immutable view of the controller.
type State struct {
	Phase     Phase
	StartedAt time.Time // zero while Idle
	Delay     time.Duration
}

// Enabled reports whether the trigger affordance accepts input.
func (s State) Enabled() bool {
	return s.Phase != Pending
}

// StatusText returns the text shown next to the trigger.
func (s State) StatusText() string {
	switch s.Phase {
	case Pending:
		return PendingText
	case Completed:
		return fmt.Sprintf(CompletedTextFmt, wholeSeconds(s.Delay))
	default:
		return ""
	}
}

// ButtonLabel returns the trigger label for delay d.
func ButtonLabel(d time.Duration) string {
	return fmt.Sprintf(ButtonLabelFmt, wholeSeconds(d))
}

func wholeSeconds(d time.Duration) int {
	return int(d / time.Second)
}

// Serializer runs fn at the caller's ordering point (e.g. under an engine lock).
type Serializer func(fn func())

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the time source. Defaults to clock.Real.
func WithClock(c clock.Clock) Option {
	return func(ctl *Controller) { ctl.clock = c }
}

// WithSerializer routes the scheduled completion through s.
func WithSerializer(s Serializer) Option {
	return func(ctl *Controller) { ctl.serialize = s }
}

// Controller owns the delayed action.
type Controller struct {
	mu        sync.Mutex
	clock     clock.Clock
	serialize Serializer
	state     State
	timer     clock.Timer
	gen       uint64 // identifies the current schedule; stale completions are dropped
	closed    bool
}

// NewController creates an Idle controller.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		clock:     clock.Real{},
		serialize: func(fn func()) { fn() },
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Trigger starts the action from Idle or Completed and schedules completion
// after delay. Returns false, without scheduling anything, while Pending or
// after Close.
func (c *Controller) Trigger(delay time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.state.Phase == Pending {
		return false
	}
	if delay < 0 {
		delay = 0
	}
	c.gen++
	gen := c.gen
	c.state = State{Phase: Pending, StartedAt: c.clock.Now(), Delay: delay}
	c.timer = c.clock.AfterFunc(delay, func() {
		c.serialize(func() { c.complete(gen) })
	})
	return true
}

func (c *Controller) complete(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.gen || c.state.Phase != Pending {
		return
	}
	c.state.Phase = Completed
	c.timer = nil
}

// Reset returns a Completed action to Idle. Resetting while Idle is a no-op;
// resetting while Pending fails with InvalidTransitionError.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.state.Phase {
	case Pending:
		return &InvalidTransitionError{Op: "reset", From: Pending, To: Idle}
	case Completed:
		c.state = State{Phase: Idle, Delay: c.state.Delay}
	}
	return nil
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Close stops a pending timer. A closed controller never completes and
// ignores further triggers.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
