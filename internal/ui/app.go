package ui

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"demopage/internal/delayed"
	"demopage/internal/engine"
)

// snapshotBuffer bounds the engine-to-program channel. Overflow only drops
// intermediate frames: the receiver always redraws from the latest snapshot.
const snapshotBuffer = 16

// AppModel is the root model. It owns no demo state: panels draw from the
// last engine.Snapshot and key presses become engine intents.
type AppModel struct {
	Mode       AppMode
	Engine     *engine.Engine
	KeyHandler *KeyHandler
	Focus      *FocusManager
	Overlays   OverlayStack

	Items   *ItemsView
	Form    *FormView
	Delayed *DelayedView
	Table   *TableView
	Clicks  *ClicksView

	// Delay is the duration used when the delayed action is triggered.
	Delay time.Duration
	// LastErr is the most recent rejected intent, cleared by the next success.
	LastErr error

	logger      *slog.Logger
	snap        engine.Snapshot
	snapshots   chan engine.Snapshot
	unsubscribe func()
	width       int
	height      int
}

// AppOption configures an AppModel.
type AppOption func(*AppModel)

// WithDelay sets the delayed-action duration. Defaults to delayed.DefaultDelay.
func WithDelay(d time.Duration) AppOption {
	return func(a *AppModel) { a.Delay = d }
}

// WithLogger sets the logger for UI events.
func WithLogger(l *slog.Logger) AppOption {
	return func(a *AppModel) { a.logger = l }
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model and subscribes it to e.
func NewAppModel(e *engine.Engine, opts ...AppOption) *AppModel {
	a := &AppModel{
		Mode:      ModeBrowse,
		Engine:    e,
		Focus:     NewFocusManager(DefaultFocusOrder),
		Delay:     delayed.DefaultDelay,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		snapshots: make(chan engine.Snapshot, snapshotBuffer),
	}
	for _, o := range opts {
		o(a)
	}
	a.Items = NewItemsView()
	a.Form = NewFormView()
	a.Delayed = NewDelayedView(a.Delay)
	a.Table = NewTableView(e.TableStatuses())
	a.Clicks = NewClicksView()
	a.KeyHandler = NewKeyHandler(NewDefaultRegistry())
	a.Focus.OnChange = func(from, to string) {
		a.syncFocus()
		a.logger.Debug("focus", "from", from, "to", to)
	}
	a.syncFocus()

	emitter := &engine.ChanEmitter{Ch: a.snapshots}
	a.unsubscribe = e.Subscribe(emitter.Emit)
	a.apply(e.Snapshot())
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Close stops receiving snapshots.
func (a *AppModel) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

// Snapshot returns the state the panels currently draw.
func (a *AppModel) Snapshot() engine.Snapshot {
	return a.snap
}

func (a *AppModel) panels() map[string]SnapshotView {
	return map[string]SnapshotView{
		PanelItems:   a.Items,
		PanelForm:    a.Form,
		PanelDelayed: a.Delayed,
		PanelTable:   a.Table,
		PanelClicks:  a.Clicks,
	}
}

func (a *AppModel) focused() SnapshotView {
	return a.panels()[a.Focus.Current]
}

func (a *AppModel) syncFocus() {
	a.Items.Focused = a.Focus.Is(PanelItems)
	a.Form.Focused = a.Focus.Is(PanelForm)
	a.Delayed.Focused = a.Focus.Is(PanelDelayed)
	a.Table.Focused = a.Focus.Is(PanelTable)
	a.Clicks.Focused = a.Focus.Is(PanelClicks)
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.waitForSnapshot()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil
	case SnapshotMsg:
		cmd := a.apply(a.Engine.Snapshot())
		return a, tea.Batch(cmd, a.waitForSnapshot())
	case BeginEditMsg:
		a.Mode = ModeEditing
		return a, nil
	case EndEditMsg:
		if a.Mode == ModeEditing {
			a.Mode = ModeBrowse
		}
		return a, nil
	case FocusPanelMsg:
		a.Focus.SetFocus(msg.ID)
		return a, nil
	case spinner.TickMsg:
		_, cmd := a.Delayed.Update(msg)
		return a, cmd
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}
	if cmd, ok := a.handleIntent(msg); ok {
		return a, cmd
	}
	// Anything else (cursor blink, etc.) belongs to the focused panel.
	_, cmd := a.focused().Update(msg)
	return a, cmd
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	switch a.Mode {
	case ModeModal:
		if top, ok := a.Overlays.Peek(); ok && top.IsDismissKey(msg.String()) {
			return msgCmd(CloseModalMsg{})
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return cmd
	case ModeEditing:
		_, cmd := a.Form.Update(msg)
		return cmd
	}

	// Keybind system (leader key, SPC-prefixed commands)
	if a.KeyHandler != nil {
		if consumed, keyCmd := a.KeyHandler.Handle(msg, a.Mode); consumed {
			return keyCmd
		}
	}
	switch msg.String() {
	case "tab":
		a.Focus.Next()
		return nil
	case "shift+tab":
		a.Focus.Prev()
		return nil
	}
	_, cmd := a.focused().Update(msg)
	return cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		if a.width > 0 && a.height > 0 {
			return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, top.View.View())
		}
		return top.View.View()
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, a.Items.View(), a.Form.View())
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, a.Delayed.View(), a.Table.View(), a.Clicks.View())
	base := lipgloss.JoinVertical(lipgloss.Left, top, bottom)
	if a.LastErr != nil {
		base += "\n" + Styles.Error.Render(a.LastErr.Error())
	}
	base += "\n" + renderStatusLine(a.Mode, a.Focus.Current)
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler, a.Mode)
	}
	return base
}
