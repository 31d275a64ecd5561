package script

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"demopage/internal/delayed"
	"demopage/internal/engine"
	"demopage/internal/form"
)

// Runner executes parsed commands against an engine.
type Runner struct {
	engine *engine.Engine
	delay  time.Duration
	logger *slog.Logger
}

// NewRunner creates a runner. delay is used by "trigger" without an argument.
func NewRunner(e *engine.Engine, delay time.Duration, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{engine: e, delay: delay, logger: logger}
}

// Run executes cmds in order and stops at the first failure. ctx bounds
// "wait".
func (r *Runner) Run(ctx context.Context, cmds []Command) error {
	for _, cmd := range cmds {
		if err := r.exec(ctx, cmd); err != nil {
			return &LineError{Line: cmd.Line, Cmd: cmd.String(), Err: err}
		}
	}
	return nil
}

func (r *Runner) exec(ctx context.Context, cmd Command) error {
	e := r.engine
	switch cmd.Verb {
	case "add":
		entry := e.AddLabeledItem(strings.Join(cmd.Args, " "))
		r.logger.Debug("item added", "id", entry.ID, "label", entry.Label)
	case "remove":
		id, err := strconv.Atoi(cmd.Args[0])
		if err != nil {
			return fmt.Errorf("%w: id %q", ErrBadArg, cmd.Args[0])
		}
		if !e.RemoveItem(id) {
			r.logger.Info("no such item", "id", id, "line", cmd.Line)
		}
	case "remove-first":
		e.RemoveFirstItem()
	case "clear":
		e.ClearItems()
	case "set":
		return e.SetField(form.Field(cmd.Args[0]), strings.Join(cmd.Args[1:], " "))
	case "interest":
		checked, err := parseSwitch(cmd.Args[1])
		if err != nil {
			return err
		}
		return e.ToggleInterest(cmd.Args[0], checked)
	case "submit":
		e.SubmitForm()
	case "reset-form":
		e.ResetForm()
	case "open":
		e.OpenModal()
	case "close":
		e.CloseModal()
	case "trigger":
		d := r.delay
		if len(cmd.Args) == 1 {
			var err error
			if d, err = time.ParseDuration(cmd.Args[0]); err != nil {
				return fmt.Errorf("%w: %v", ErrBadArg, err)
			}
		}
		if !e.TriggerDelayedAction(d) {
			r.logger.Info("delayed action already pending", "line", cmd.Line)
		}
	case "wait":
		_, err := e.WaitFor(ctx, func(s engine.Snapshot) bool {
			return s.DelayedPhase != delayed.Pending
		})
		if err != nil {
			return fmt.Errorf("wait for delayed action: %w", err)
		}
	case "reset-delay":
		return e.ResetDelayedAction()
	case "filter":
		status := ""
		if len(cmd.Args) == 1 {
			status = cmd.Args[0]
		}
		rows := e.FilterTableByStatus(status)
		r.logger.Debug("table filtered", "status", status, "rows", len(rows))
	case "click":
		e.Click()
	case "dblclick":
		e.DoubleClick()
	default:
		return ErrUnknownVerb
	}
	return nil
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: want on|off, got %q", ErrBadArg, s)
}
