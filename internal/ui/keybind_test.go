package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func hintMap(hints []Hint) map[string]string {
	out := make(map[string]string, len(hints))
	for _, h := range hints {
		out[h.Key] = h.Desc
	}
	return out
}

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "Quit")
	reg.Bind("space q", tea.Quit, "Quit")

	if reg.Lookup("q", ModeBrowse) == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("SPC q", ModeBrowse) == nil {
		t.Error("expected space q to normalize to SPC q")
	}
	if reg.Lookup("unknown", ModeBrowse) != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_ModeFilteredLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindIntent("SPC 1", FocusPanelMsg{ID: PanelItems}, "Focus items", ModeBrowse)

	if reg.Lookup("SPC 1", ModeBrowse) == nil {
		t.Error("expected SPC 1 in browse mode")
	}
	if reg.Lookup("SPC 1", ModeEditing) != nil {
		t.Error("SPC 1 should not resolve while editing")
	}
	if reg.HasPrefix("SPC", ModeEditing) {
		t.Error("no binding is active under SPC while editing")
	}
}

func TestKeybindRegistry_BindIntentEmitsMessage(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindIntent("SPC t a", FilterTableMsg{Status: "x"}, "")

	cmd := reg.Lookup("SPC t a", ModeBrowse)
	if cmd == nil {
		t.Fatal("expected binding")
	}
	if got, ok := cmd().(FilterTableMsg); !ok || got.Status != "x" {
		t.Errorf("cmd() = %#v", cmd())
	}
	if hints := reg.LeaderHints("SPC t", ModeBrowse); len(hints) != 1 || hints[0].Desc != "SPC t a" {
		t.Errorf("undescribed binding should show its sequence: %v", hints)
	}
}

func TestKeybindRegistry_GroupLabels(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Group("SPC i", "Items")
	reg.BindIntent("SPC i a", AddItemMsg{}, "Add item")
	reg.BindIntent("SPC x y", ClickMsg{}, "Click")

	hints := reg.LeaderHints("", ModeBrowse)
	if len(hints) != 2 {
		t.Fatalf("hints = %v", hints)
	}
	if hints[0] != (Hint{Key: "i", Desc: "Items", Group: true}) {
		t.Errorf("hints[0] = %+v", hints[0])
	}
	if hints[1] != (Hint{Key: "x", Desc: "x…", Group: true}) {
		t.Errorf("unlabelled group = %+v", hints[1])
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	}, "")
	h := NewKeyHandler(reg)

	// Bubble Tea reports space as " "
	consumed, cmd := h.Handle(keyMsg(" "), ModeBrowse)
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting || h.Prefix() != "SPC" {
		t.Errorf("after space: waiting=%v prefix=%q", h.LeaderWaiting, h.Prefix())
	}

	consumed, cmd = h.Handle(keyMsg("x"), ModeBrowse)
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd == nil {
		t.Fatal("expected command")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit, "")
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), ModeBrowse)
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"), ModeBrowse)
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}

	if consumed, _ := h.Handle(keyMsg("esc"), ModeBrowse); consumed {
		t.Error("esc outside leader mode belongs to the panel")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "Quit")
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"), ModeBrowse)
	if !consumed || cmd == nil {
		t.Errorf("q: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "Quit")
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"), ModeBrowse)
	if consumed {
		t.Error("unbound j should not be consumed")
	}
}

func TestDefaultRegistry_LeaderHints(t *testing.T) {
	reg := NewDefaultRegistry()

	top := hintMap(reg.LeaderHints("", ModeBrowse))
	for k, want := range map[string]string{
		"i": "Items",
		"f": "Form",
		"d": "Delayed",
		"t": "Table",
		"c": "Click",
		"m": "Open modal",
		"q": "Quit",
		"1": "Focus items",
	} {
		if top[k] != want {
			t.Errorf("top-level hint %q = %q, want %q", k, top[k], want)
		}
	}

	items := hintMap(reg.LeaderHints("SPC i", ModeBrowse))
	if len(items) != 3 || items["a"] != "Add item" || items["c"] != "Clear items" {
		t.Errorf("SPC i hints = %v", items)
	}
}

func TestDefaultRegistry_FocusBindingsBrowseOnly(t *testing.T) {
	reg := NewDefaultRegistry()
	editing := hintMap(reg.LeaderHints("", ModeEditing))
	if _, ok := editing["1"]; ok {
		t.Error("focus binding should be hidden outside browse mode")
	}
	if _, ok := editing["m"]; !ok {
		t.Error("unfiltered binding should show in every mode")
	}

	h := NewKeyHandler(reg)
	h.Handle(keyMsg(" "), ModeEditing)
	if consumed, cmd := h.Handle(keyMsg("1"), ModeEditing); !consumed || cmd != nil {
		t.Errorf("SPC 1 while editing: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_SubmenuSequence(t *testing.T) {
	h := NewKeyHandler(NewDefaultRegistry())

	h.Handle(keyMsg(" "), ModeBrowse)
	consumed, cmd := h.Handle(keyMsg("i"), ModeBrowse)
	if !consumed || cmd != nil {
		t.Fatalf("SPC i: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting || h.Prefix() != "SPC i" {
		t.Fatalf("expected leader to keep waiting inside submenu, prefix=%q", h.Prefix())
	}
	_, cmd = h.Handle(keyMsg("a"), ModeBrowse)
	if cmd == nil {
		t.Fatal("SPC i a: expected command")
	}
	if _, ok := cmd().(AddItemMsg); !ok {
		t.Errorf("SPC i a produced %T, want AddItemMsg", cmd())
	}
}

func TestKeyHandler_UnknownLeaderSequenceResets(t *testing.T) {
	h := NewKeyHandler(NewDefaultRegistry())
	h.Handle(keyMsg(" "), ModeBrowse)
	consumed, cmd := h.Handle(keyMsg("z"), ModeBrowse)
	if !consumed || cmd != nil {
		t.Errorf("SPC z: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("unknown sequence should leave leader mode")
	}
}

func TestKeyMap_FullHelpColumns(t *testing.T) {
	h := NewKeyHandler(NewDefaultRegistry())
	cols := NewKeyMap(h.Registry, h, ModeBrowse).FullHelp()

	// direct keys, then Click, Delayed, Form, Items, Table submenus in key order
	if len(cols) != 6 {
		t.Fatalf("got %d columns", len(cols))
	}
	var direct []string
	for _, b := range cols[0] {
		direct = append(direct, b.Help().Key)
	}
	if strings.Join(direct, ",") != "1,2,3,4,5,m,q" {
		t.Errorf("direct column = %v", direct)
	}
	if len(cols[4]) != 3 || cols[4][0].Help().Desc != "Add item" {
		t.Errorf("items column = %v", cols[4])
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	h := NewKeyHandler(NewDefaultRegistry())
	h.Handle(keyMsg(" "), ModeBrowse)
	out := RenderKeybindHelp(h, ModeBrowse)
	for _, want := range []string{"SPC", "Items", "Open modal", "cancel"} {
		if !strings.Contains(out, want) {
			t.Errorf("help bar missing %q:\n%s", want, out)
		}
	}

	h.Handle(keyMsg("t"), ModeBrowse)
	out = RenderKeybindHelp(h, ModeBrowse)
	if !strings.Contains(out, "SPC t") || !strings.Contains(out, "非アクティブ") {
		t.Errorf("SPC t help bar:\n%s", out)
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
