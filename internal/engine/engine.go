// Package engine composes the demo page stores behind a single intent surface.
//
// Every intent maps to exactly one store call and, on success, produces a new
// Snapshot that is delivered to subscribers. Intents and the delayed-action
// completion are serialized by one lock, so a snapshot always reflects a
// complete sequence of intents.
package engine

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"demopage/internal/clicks"
	"demopage/internal/clock"
	"demopage/internal/delayed"
	"demopage/internal/form"
	"demopage/internal/items"
	"demopage/internal/modal"
	"demopage/internal/table"
	"demopage/internal/telemetry"
)

// Listener receives every new snapshot. It is called without the engine lock
// held and must not block for long.
type Listener func(Snapshot)

type subscription struct {
	id int
	fn Listener
}

// Engine is the UI state engine for one document.
type Engine struct {
	mu      sync.Mutex
	items   *items.Store
	form    *form.Store
	modal   *modal.Controller
	delayed *delayed.Controller
	table   *table.View
	clicks  clicks.Tracker

	version uint64
	subs    []subscription
	nextSub int
	closed  bool

	clock  clock.Clock
	rows   []table.Row
	logger *slog.Logger
	tracer oteltrace.Tracer
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock used by the delayed action.
func WithClock(c clock.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithLogger sets the structured logger. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithTracer sets the tracer used for intent spans. Defaults to a no-op tracer.
func WithTracer(t oteltrace.Tracer) Option {
	return func(e *Engine) { e.tracer = t }
}

// WithRows replaces the table seed rows.
func WithRows(rows []table.Row) Option {
	return func(e *Engine) { e.rows = rows }
}

// New creates an engine with every store at its initial state.
func New(opts ...Option) *Engine {
	e := &Engine{
		clock:  clock.Real{},
		rows:   table.SeedRows(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer: telemetry.Tracer(nil),
	}
	for _, o := range opts {
		o(e)
	}
	e.items = items.NewStore()
	e.form = form.NewStore()
	e.modal = modal.NewController()
	e.delayed = delayed.NewController(
		delayed.WithClock(e.clock),
		delayed.WithSerializer(e.serializeCompletion),
	)
	e.table = table.NewView(table.NewFilter(e.rows))
	return e
}

// dispatch runs one intent under the lock inside a span. On success the
// version is bumped and the new snapshot is published.
func (e *Engine) dispatch(name string, fn func(span oteltrace.Span) error, attrs ...attribute.KeyValue) error {
	_, span := e.tracer.Start(context.Background(), "engine."+name, oteltrace.WithAttributes(attrs...))
	defer span.End()

	e.mu.Lock()
	err := fn(span)
	if err != nil {
		e.mu.Unlock()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		e.logger.Warn("intent failed", "intent", name, "err", err)
		return err
	}
	e.version++
	snap := e.snapshotLocked()
	subs := e.subscribersLocked()
	e.mu.Unlock()

	span.SetAttributes(attribute.Int64("snapshot.version", int64(snap.Version)))
	e.logger.Debug("intent", "intent", name, "version", snap.Version)
	publish(subs, snap)
	return nil
}

// serializeCompletion is the delayed controller's ordering point: the
// completion runs under the engine lock like any intent.
func (e *Engine) serializeCompletion(fn func()) {
	_, span := e.tracer.Start(context.Background(), "engine.DelayedActionCompleted")
	defer span.End()

	e.mu.Lock()
	before := e.delayed.State().Phase
	fn()
	after := e.delayed.State().Phase
	if before == after {
		e.mu.Unlock()
		return
	}
	e.version++
	snap := e.snapshotLocked()
	subs := e.subscribersLocked()
	e.mu.Unlock()

	span.SetAttributes(attribute.String("delayed.phase", after.String()))
	e.logger.Debug("delayed action completed", "version", snap.Version)
	publish(subs, snap)
}

func publish(subs []Listener, snap Snapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}

func (e *Engine) subscribersLocked() []Listener {
	if e.closed {
		return nil
	}
	out := make([]Listener, len(e.subs))
	for i, s := range e.subs {
		out[i] = s.fn
	}
	return out
}

// Subscribe registers fn for future snapshots. The returned func cancels the
// subscription.
func (e *Engine) Subscribe(fn Listener) (cancel func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextSub++
	id := e.nextSub
	e.subs = append(e.subs, subscription{id: id, fn: fn})
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		for i, s := range e.subs {
			if s.id == id {
				e.subs = append(e.subs[:i], e.subs[i+1:]...)
				return
			}
		}
	}
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// WaitFor blocks until cond holds for the current snapshot or ctx ends.
func (e *Engine) WaitFor(ctx context.Context, cond func(Snapshot) bool) (Snapshot, error) {
	notify := make(chan struct{}, 1)
	cancel := e.Subscribe(func(Snapshot) {
		select {
		case notify <- struct{}{}:
		default:
		}
	})
	defer cancel()

	for {
		s := e.Snapshot()
		if cond(s) {
			return s, nil
		}
		select {
		case <-notify:
		case <-ctx.Done():
			return s, ctx.Err()
		}
	}
}

// Close disposes the engine: the pending delayed action is stopped and
// subscribers are dropped. Stores stay queryable.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.subs = nil
	e.delayed.Close()
	e.logger.Debug("engine closed", "version", e.version)
}

// AddItem appends an item with the default label.
func (e *Engine) AddItem() items.Entry {
	return e.AddLabeledItem("")
}

// AddLabeledItem appends an item with label ("" uses the default label).
func (e *Engine) AddLabeledItem(label string) items.Entry {
	var entry items.Entry
	_ = e.dispatch("AddItem", func(span oteltrace.Span) error {
		entry = e.items.Add(label)
		span.SetAttributes(attribute.Int("item.id", entry.ID), attribute.Int("items.count", e.items.Count()))
		return nil
	})
	return entry
}

// RemoveItem removes the item with id. Unknown ids return false.
func (e *Engine) RemoveItem(id int) bool {
	var removed bool
	_ = e.dispatch("RemoveItem", func(span oteltrace.Span) error {
		removed = e.items.Remove(id)
		span.SetAttributes(attribute.Bool("item.removed", removed), attribute.Int("items.count", e.items.Count()))
		return nil
	}, attribute.Int("item.id", id))
	return removed
}

// RemoveFirstItem removes the earliest remaining item.
func (e *Engine) RemoveFirstItem() bool {
	var removed bool
	_ = e.dispatch("RemoveFirstItem", func(span oteltrace.Span) error {
		removed = e.items.RemoveFirst()
		span.SetAttributes(attribute.Bool("item.removed", removed))
		return nil
	})
	return removed
}

// ClearItems removes every item.
func (e *Engine) ClearItems() {
	_ = e.dispatch("ClearItems", func(oteltrace.Span) error {
		e.items.Clear()
		return nil
	})
}

// SetField stores a raw form value.
func (e *Engine) SetField(name form.Field, value string) error {
	return e.dispatch("SetField", func(oteltrace.Span) error {
		return e.form.SetField(name, value)
	}, attribute.String("form.field", string(name)))
}

// ToggleInterest checks or unchecks one interest flag.
func (e *Engine) ToggleInterest(name string, checked bool) error {
	return e.dispatch("ToggleInterest", func(oteltrace.Span) error {
		return e.form.ToggleInterest(name, checked)
	}, attribute.String("form.interest", name), attribute.Bool("form.checked", checked))
}

// SubmitForm records and returns the current form values.
func (e *Engine) SubmitForm() form.Values {
	var v form.Values
	_ = e.dispatch("SubmitForm", func(oteltrace.Span) error {
		v = e.form.Submit()
		return nil
	})
	return v
}

// ResetForm restores the form defaults.
func (e *Engine) ResetForm() {
	_ = e.dispatch("ResetForm", func(oteltrace.Span) error {
		e.form.Reset()
		return nil
	})
}

// OpenModal shows the modal. Idempotent.
func (e *Engine) OpenModal() {
	_ = e.dispatch("OpenModal", func(span oteltrace.Span) error {
		span.SetAttributes(attribute.Bool("modal.changed", e.modal.Open()))
		return nil
	})
}

// CloseModal hides the modal. Idempotent.
func (e *Engine) CloseModal() {
	_ = e.dispatch("CloseModal", func(span oteltrace.Span) error {
		span.SetAttributes(attribute.Bool("modal.changed", e.modal.Close()))
		return nil
	})
}

// TriggerDelayedAction starts the delayed action. Returns false (and
// schedules nothing) while an action is already pending.
func (e *Engine) TriggerDelayedAction(delay time.Duration) bool {
	var started bool
	_ = e.dispatch("TriggerDelayedAction", func(span oteltrace.Span) error {
		started = e.delayed.Trigger(delay)
		span.SetAttributes(attribute.Bool("delayed.started", started))
		return nil
	}, attribute.Int64("delayed.delay_ms", delay.Milliseconds()))
	return started
}

// ResetDelayedAction returns a completed action to Idle.
// Fails with InvalidTransitionError while pending.
func (e *Engine) ResetDelayedAction() error {
	return e.dispatch("ResetDelayedAction", func(oteltrace.Span) error {
		return e.delayed.Reset()
	})
}

// FilterTableByStatus selects the visible table rows. An empty status shows
// every row.
func (e *Engine) FilterTableByStatus(status string) []table.Row {
	var rows []table.Row
	_ = e.dispatch("FilterTableByStatus", func(span oteltrace.Span) error {
		rows = e.table.Apply(status)
		span.SetAttributes(attribute.Int("table.visible_rows", len(rows)))
		return nil
	}, attribute.String("table.status", status))
	return rows
}

// Click records a single click on the demo button.
func (e *Engine) Click() {
	_ = e.dispatch("Click", func(oteltrace.Span) error {
		e.clicks.Click()
		return nil
	})
}

// DoubleClick records a double click on the demo button.
func (e *Engine) DoubleClick() {
	_ = e.dispatch("DoubleClick", func(oteltrace.Span) error {
		e.clicks.DoubleClick()
		return nil
	})
}

// TableStatuses lists the filterable statuses in seed order.
func (e *Engine) TableStatuses() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.table.Filter().Statuses()
}
