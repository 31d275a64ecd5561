package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"demopage/internal/clock"
	"demopage/internal/delayed"
	"demopage/internal/engine"
	"demopage/internal/form"
	"demopage/internal/table"
)

func newTestApp(t *testing.T) (*appModelAdapter, *clock.Fake) {
	t.Helper()
	clk := clock.NewFake(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))
	e := engine.New(engine.WithClock(clk))
	a := NewAppModel(e)
	t.Cleanup(func() {
		a.Close()
		e.Close()
	})
	return &appModelAdapter{AppModel: a}, clk
}

// drain runs cmd and feeds the resulting messages back into Update, the way
// the Bubble Tea runtime would. Spinner ticks and quit are not followed.
func drain(a *appModelAdapter, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil, spinner.TickMsg, tea.QuitMsg:
	case tea.BatchMsg:
		for _, c := range msg {
			drain(a, c)
		}
	default:
		_, next := a.Update(msg)
		drain(a, next)
	}
}

func press(a *appModelAdapter, keys ...string) {
	for _, k := range keys {
		_, cmd := a.Update(keyMsg(k))
		drain(a, cmd)
	}
}

func typeText(a *appModelAdapter, s string) {
	for _, r := range s {
		press(a, string(r))
	}
}

func TestApp_InitialState(t *testing.T) {
	a, _ := newTestApp(t)

	if a.Mode != ModeBrowse {
		t.Errorf("mode = %v, want Browse", a.Mode)
	}
	if a.Focus.Current != PanelItems {
		t.Errorf("focus = %q, want %q", a.Focus.Current, PanelItems)
	}
	view := a.View()
	for _, want := range []string{"アイテム数: 0", "3秒後にメッセージ表示", "田中太郎", "無効なボタン", "ユーザー名:"} {
		if !strings.Contains(view, want) {
			t.Errorf("initial view missing %q", want)
		}
	}
}

func TestApp_ItemsPanel(t *testing.T) {
	a, _ := newTestApp(t)

	press(a, "a", "a", "a")
	if got := a.Snapshot().ItemCount; got != 3 {
		t.Fatalf("items = %d, want 3", got)
	}
	if !strings.Contains(a.View(), "アイテム数: 3") {
		t.Error("view should show the item count")
	}

	press(a, "j", "x")
	s := a.Snapshot()
	if s.ItemCount != 2 || s.Items[0].ID != 1 || s.Items[1].ID != 3 {
		t.Errorf("after removing the second item: %+v", s.Items)
	}

	press(a, "c")
	if got := a.Snapshot().ItemCount; got != 0 {
		t.Errorf("items after clear = %d, want 0", got)
	}
	press(a, "x")
	if got := a.Snapshot().ItemCount; got != 0 {
		t.Errorf("delete on empty list changed count to %d", got)
	}
}

func TestApp_LeaderIntents(t *testing.T) {
	a, _ := newTestApp(t)

	press(a, " ", "i", "a", " ", "i", "a", " ", "i", "d")
	s := a.Snapshot()
	if s.ItemCount != 1 || s.Items[0].Label != "アイテム 2" {
		t.Errorf("items = %+v", s.Items)
	}

	press(a, " ", "t", "i")
	if s := a.Snapshot(); s.TableStatus != table.StatusInactive || len(s.VisibleRows) != 1 {
		t.Errorf("table = %q %v", s.TableStatus, s.VisibleRows)
	}
	if a.Table.RowCount() != 1 {
		t.Errorf("table panel rows = %d, want 1", a.Table.RowCount())
	}

	press(a, " ", "c", "d")
	if got := a.Snapshot().ClickResult; got != "ダブルクリックされました！" {
		t.Errorf("click result = %q", got)
	}

	press(a, " ", "4")
	if a.Focus.Current != PanelTable {
		t.Errorf("SPC 4 focus = %q, want %q", a.Focus.Current, PanelTable)
	}
}

func TestApp_TabCyclesFocus(t *testing.T) {
	a, _ := newTestApp(t)

	press(a, "tab")
	if !a.Form.Focused || a.Items.Focused {
		t.Errorf("after tab: form=%v items=%v", a.Form.Focused, a.Items.Focused)
	}
	press(a, "shift+tab", "shift+tab")
	if a.Focus.Current != PanelClicks {
		t.Errorf("focus = %q, want %q", a.Focus.Current, PanelClicks)
	}
}

func TestApp_FormEditing(t *testing.T) {
	a, _ := newTestApp(t)
	press(a, "tab")

	// username
	press(a, "enter")
	if a.Mode != ModeEditing {
		t.Fatalf("mode = %v, want Editing", a.Mode)
	}
	typeText(a, "山田 太郎")
	if a.KeyHandler.LeaderWaiting {
		t.Error("space while editing must not start a leader sequence")
	}
	press(a, "esc")
	if a.Mode != ModeBrowse {
		t.Errorf("mode after esc = %v, want Browse", a.Mode)
	}

	// age rejects non-digits
	press(a, "j", "j", "enter")
	typeText(a, "3x0")
	press(a, "enter")

	// country
	press(a, "j", "l", "l")

	// interests: reading on, music on, music off
	press(a, "j", "enter", "j", "x", "x")

	v := a.Snapshot().Form.Values
	if v.Username != "山田 太郎" {
		t.Errorf("username = %q", v.Username)
	}
	if v.Age != "30" {
		t.Errorf("age = %q, want 30", v.Age)
	}
	if v.Country != "usa" {
		t.Errorf("country = %q, want usa", v.Country)
	}
	if got := v.CheckedInterests(); len(got) != 1 || got[0] != form.InterestReading {
		t.Errorf("interests = %v", got)
	}

	// message is multi-line
	press(a, "j", "j", "enter")
	typeText(a, "こんにちは")
	press(a, "enter")
	typeText(a, "世界")
	press(a, "esc")
	if got := a.Snapshot().Form.Values.Message; got != "こんにちは\n世界" {
		t.Errorf("message = %q", got)
	}

	// submit
	press(a, "j", "enter")
	s := a.Snapshot()
	if !s.Form.Submitted || s.Form.LastSubmission == nil || s.Form.LastSubmission.Username != "山田 太郎" {
		t.Fatalf("submission = %+v", s.Form)
	}
	if !strings.Contains(a.View(), "送信されたデータ") {
		t.Error("view should show the submitted data")
	}

	// reset restores defaults and clears the inputs
	press(a, "j", "enter")
	s = a.Snapshot()
	if s.Form.Submitted || s.Form.Values.Username != "" {
		t.Errorf("after reset: %+v", s.Form)
	}
	if strings.Contains(a.View(), "山田 太郎") {
		t.Error("inputs should be cleared after reset")
	}
}

func TestApp_ModalRoundTrip(t *testing.T) {
	a, _ := newTestApp(t)

	press(a, " ", "m")
	if a.Mode != ModeModal || a.Overlays.Len() != 1 || !a.Snapshot().ModalOpen {
		t.Fatalf("after open: mode=%v overlays=%d", a.Mode, a.Overlays.Len())
	}
	if !strings.Contains(a.View(), ModalTitle) {
		t.Error("view should show the modal")
	}

	// Keys do not reach the panels while the modal is up.
	press(a, "a", " ")
	if a.Snapshot().ItemCount != 0 || a.KeyHandler.LeaderWaiting {
		t.Error("modal should capture input")
	}

	press(a, "esc")
	if a.Mode != ModeBrowse || a.Overlays.Len() != 0 || a.Snapshot().ModalOpen {
		t.Errorf("after esc: mode=%v overlays=%d", a.Mode, a.Overlays.Len())
	}

	press(a, " ", "m", "enter")
	if a.Snapshot().ModalOpen {
		t.Error("enter on the close button should close the modal")
	}
}

func TestApp_ModalOpenedWhileEditing(t *testing.T) {
	a, _ := newTestApp(t)
	press(a, "tab", "enter")

	_, cmd := a.Update(OpenModalMsg{})
	drain(a, cmd)
	if a.Mode != ModeModal || a.Form.Editing() {
		t.Errorf("mode=%v editing=%v", a.Mode, a.Form.Editing())
	}
}

func TestApp_DelayedAction(t *testing.T) {
	a, clk := newTestApp(t)
	press(a, " ", "3")

	press(a, "enter")
	if got := a.Snapshot().DelayedPhase; got != delayed.Pending {
		t.Fatalf("phase = %v, want Pending", got)
	}
	if !strings.Contains(a.View(), delayed.PendingText) {
		t.Error("view should show the pending text")
	}
	press(a, "enter")
	if clk.Pending() != 1 {
		t.Errorf("timers = %d, want 1", clk.Pending())
	}

	clk.Advance(3 * time.Second)
	a.Update(a.waitForSnapshot()())
	if got := a.Snapshot().DelayedPhase; got != delayed.Completed {
		t.Fatalf("phase = %v, want Completed", got)
	}
	if !strings.Contains(a.View(), "3秒経過しました！データが表示されました。") {
		t.Error("view should show the completion text")
	}

	press(a, "r")
	if got := a.Snapshot().DelayedPhase; got != delayed.Idle {
		t.Errorf("phase after reset = %v, want Idle", got)
	}
}

func TestApp_ResetWhilePendingShowsError(t *testing.T) {
	a, _ := newTestApp(t)
	press(a, " ", "d", "t", " ", "d", "r")

	if !errors.Is(a.LastErr, engine.ErrInvalidTransition) {
		t.Fatalf("LastErr = %v", a.LastErr)
	}
	if !strings.Contains(a.View(), a.LastErr.Error()) {
		t.Error("view should show the rejected intent")
	}
	if got := a.Snapshot().DelayedPhase; got != delayed.Pending {
		t.Errorf("phase = %v, want Pending", got)
	}

	press(a, " ", "i", "a")
	if a.LastErr != nil {
		t.Errorf("successful intent should clear LastErr, got %v", a.LastErr)
	}
}

func TestApp_UnknownFieldRejected(t *testing.T) {
	a, _ := newTestApp(t)
	before := a.Snapshot().Version

	_, cmd := a.Update(SetFieldMsg{Field: "nickname", Value: "x"})
	drain(a, cmd)
	if !errors.Is(a.LastErr, engine.ErrUnknownField) {
		t.Errorf("LastErr = %v", a.LastErr)
	}
	if a.Snapshot().Version != before {
		t.Error("rejected intent must not change the snapshot")
	}
}

func TestApp_TableAndClicksPanels(t *testing.T) {
	a, _ := newTestApp(t)

	press(a, " ", "4", "s")
	if s := a.Snapshot(); s.TableStatus != table.StatusActive || len(s.VisibleRows) != 2 {
		t.Errorf("after s: %q %d rows", s.TableStatus, len(s.VisibleRows))
	}
	press(a, "s")
	if got := a.Snapshot().TableStatus; got != table.StatusInactive {
		t.Errorf("after s s: %q", got)
	}
	press(a, "s")
	if s := a.Snapshot(); s.TableStatus != "" || len(s.VisibleRows) != 3 {
		t.Errorf("cycle should return to all rows: %q %d", s.TableStatus, len(s.VisibleRows))
	}

	press(a, "tab", "enter")
	if got := a.Snapshot().ClickResult; got != "ボタンがクリックされました！" {
		t.Errorf("click result = %q", got)
	}
	if !strings.Contains(a.View(), "ボタンがクリックされました！") {
		t.Error("view should show the click result")
	}
}

func TestApp_StaleSnapshotIgnored(t *testing.T) {
	a, _ := newTestApp(t)
	press(a, "a")
	old := a.Snapshot()
	press(a, "a")

	a.apply(old)
	if got := a.Snapshot().ItemCount; got != 2 {
		t.Errorf("stale snapshot applied: count = %d", got)
	}
}

func TestApp_CtrlCQuits(t *testing.T) {
	a, _ := newTestApp(t)
	press(a, " ", "m")

	_, cmd := a.Update(keyMsg("ctrl+c"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit even with the modal open")
	}
}
