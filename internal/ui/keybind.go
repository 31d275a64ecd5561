package ui

import (
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// leaderSeq is how the leader key is written in sequences ("SPC i a").
const leaderSeq = "SPC"

// Hint is one entry of the leader help bar.
type Hint struct {
	Key   string // next key to press
	Desc  string
	Group bool // Key opens a submenu rather than running an intent
}

type binding struct {
	cmd   tea.Cmd
	desc  string
	modes []AppMode // empty: every mode
}

func (b binding) activeIn(mode AppMode) bool {
	return len(b.modes) == 0 || slices.Contains(b.modes, mode)
}

// KeybindRegistry maps key sequences to commands, usually intent messages.
// Sequences use spacemacs-style notation: "SPC i a" is space, then i, then a.
// Single keys ("q") bind outside leader mode.
type KeybindRegistry struct {
	bindings map[string]binding
	groups   map[string]string // submenu prefix ("SPC i") -> label
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings: make(map[string]binding),
		groups:   make(map[string]string),
	}
}

// Bind registers cmd under seq, replacing any previous binding. With modes
// set, the binding only resolves and shows in those modes.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd, desc string, modes ...AppMode) {
	r.bindings[normalizeSeq(seq)] = binding{cmd: cmd, desc: desc, modes: modes}
}

// BindIntent binds seq to a command that emits msg.
func (r *KeybindRegistry) BindIntent(seq string, msg tea.Msg, desc string, modes ...AppMode) {
	r.Bind(seq, msgCmd(msg), desc, modes...)
}

// Group labels the submenu opened by prefix in the help bar.
func (r *KeybindRegistry) Group(prefix, label string) {
	r.groups[normalizeSeq(prefix)] = label
}

// Lookup returns the command bound to seq in mode, or nil.
func (r *KeybindRegistry) Lookup(seq string, mode AppMode) tea.Cmd {
	b, ok := r.bindings[normalizeSeq(seq)]
	if !ok || !b.activeIn(mode) {
		return nil
	}
	return b.cmd
}

// HasPrefix reports whether a longer sequence starting with seq is active in mode.
func (r *KeybindRegistry) HasPrefix(seq string, mode AppMode) bool {
	prefix := normalizeSeq(seq) + " "
	for k, b := range r.bindings {
		if b.cmd != nil && b.activeIn(mode) && strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// LeaderHints lists the keys that may follow currentSeq ("" means just after
// SPC), sorted by key. A key leading to deeper bindings is reported once, as
// a group carrying its Group label.
func (r *KeybindRegistry) LeaderHints(currentSeq string, mode AppMode) []Hint {
	base := leaderSeq
	if currentSeq != "" {
		base = normalizeSeq(currentSeq)
	}
	prefix := base + " "

	byKey := make(map[string]Hint)
	for seq, b := range r.bindings {
		if b.cmd == nil || !b.activeIn(mode) || !strings.HasPrefix(seq, prefix) {
			continue
		}
		parts := strings.Fields(strings.TrimPrefix(seq, prefix))
		if len(parts) == 0 {
			continue
		}
		k := parts[0]
		if len(parts) > 1 {
			label, ok := r.groups[prefix+k]
			if !ok {
				label = k + "…"
			}
			byKey[k] = Hint{Key: k, Desc: label, Group: true}
			continue
		}
		if h, seen := byKey[k]; seen && h.Group {
			continue
		}
		desc := b.desc
		if desc == "" {
			desc = seq
		}
		byKey[k] = Hint{Key: k, Desc: desc}
	}

	out := make([]Hint, 0, len(byKey))
	for _, h := range byKey {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// normalizeSeq converts tea key strings to the canonical form: space becomes SPC.
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	if seq == " " {
		parts = []string{" "}
	}
	for i, p := range parts {
		parts[i] = keyToSeqPart(p)
	}
	return strings.Join(parts, " ")
}

// keyToSeqPart converts one tea key string to a sequence part.
// Bubble Tea reports space as " ".
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return leaderSeq
	}
	return s
}

// KeyHandler tracks the leader sequence being typed and resolves it against
// the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderWaiting bool     // SPC was pressed and the sequence is incomplete
	Buffer        []string // sequence typed so far, starting with SPC
}

// NewKeyHandler creates a handler with SPC as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Prefix returns the sequence typed so far, or SPC when idle.
func (h *KeyHandler) Prefix() string {
	if len(h.Buffer) == 0 {
		return leaderSeq
	}
	return strings.Join(h.Buffer, " ")
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// Handle processes a key in mode. consumed is false when the key is not part
// of any binding and belongs to the focused panel.
func (h *KeyHandler) Handle(msg tea.KeyMsg, mode AppMode) (consumed bool, cmd tea.Cmd) {
	part := keyToSeqPart(msg.String())

	if !h.LeaderWaiting {
		switch {
		case part == leaderSeq:
			h.LeaderWaiting = true
			h.Buffer = []string{leaderSeq}
			return true, nil
		case part == "esc":
			return false, nil
		}
		if c := h.Registry.Lookup(part, mode); c != nil {
			return true, c
		}
		return false, nil
	}

	if part == "esc" {
		h.reset()
		return true, nil
	}
	h.Buffer = append(h.Buffer, part)
	seq := strings.Join(h.Buffer, " ")
	if c := h.Registry.Lookup(seq, mode); c != nil {
		h.reset()
		return true, c
	}
	if !h.Registry.HasPrefix(seq, mode) {
		h.reset()
	}
	return true, nil
}

// KeyMap adapts the registry to help.KeyMap for the current leader position.
type KeyMap struct {
	registry   *KeybindRegistry
	keyHandler *KeyHandler
	mode       AppMode
}

// NewKeyMap creates a KeyMap for the given registry, handler, and mode.
func NewKeyMap(registry *KeybindRegistry, keyHandler *KeyHandler, mode AppMode) help.KeyMap {
	return &KeyMap{registry: registry, keyHandler: keyHandler, mode: mode}
}

func (km *KeyMap) current() string {
	if km.keyHandler == nil || len(km.keyHandler.Buffer) <= 1 {
		return ""
	}
	return km.keyHandler.Prefix()
}

func hintBindings(hints []Hint) []key.Binding {
	out := make([]key.Binding, 0, len(hints))
	for _, h := range hints {
		out = append(out, key.NewBinding(key.WithKeys(h.Key), key.WithHelp(h.Key, h.Desc)))
	}
	return out
}

// ShortHelp lists the keys valid after the current prefix, plus esc.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	hints := km.registry.LeaderHints(km.current(), km.mode)
	if len(hints) == 0 {
		return nil
	}
	return append(hintBindings(hints), key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))
}

// FullHelp puts the direct keys in the first column and each submenu's keys
// in a column of its own.
func (km *KeyMap) FullHelp() [][]key.Binding {
	if km.registry == nil {
		return nil
	}
	base := km.current()
	if base == "" {
		base = leaderSeq
	}
	var direct []Hint
	var cols [][]key.Binding
	for _, h := range km.registry.LeaderHints(base, km.mode) {
		if !h.Group {
			direct = append(direct, h)
			continue
		}
		sub := km.registry.LeaderHints(base+" "+h.Key, km.mode)
		cols = append(cols, hintBindings(sub))
	}
	if len(direct) > 0 {
		cols = append([][]key.Binding{hintBindings(direct)}, cols...)
	}
	return cols
}
