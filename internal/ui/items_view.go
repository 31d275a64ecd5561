package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"demopage/internal/engine"
	"demopage/internal/items"
	"demopage/internal/ui/textutil"
)

// itemEntry adapts items.Entry to list.DefaultItem.
type itemEntry struct {
	items.Entry
}

func (i itemEntry) Title() string { return textutil.Truncate(i.Label, 30) }
func (i itemEntry) Description() string { return "#" + strconv.Itoa(i.ID) }
func (i itemEntry) FilterValue() string { return i.Label }

// ItemsView shows the dynamic item list and its count label.
type ItemsView struct {
	list    list.Model
	entries []items.Entry
	Focused bool
}

var _ SnapshotView = (*ItemsView)(nil)

// NewItemsView creates an empty items panel.
func NewItemsView() *ItemsView {
	l := list.New(nil, NewCompactListDelegate(), 36, 8)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.SetShowPagination(true)
	return &ItemsView{list: l}
}

// SetSnapshot implements SnapshotView.
func (v *ItemsView) SetSnapshot(s engine.Snapshot) {
	v.entries = s.Items
	li := make([]list.Item, len(s.Items))
	for i, e := range s.Items {
		li[i] = itemEntry{Entry: e}
	}
	v.list.SetItems(li)
}

// SelectedID returns the id under the cursor, or 0 when the list is empty.
func (v *ItemsView) SelectedID() int {
	if it, ok := v.list.SelectedItem().(itemEntry); ok {
		return it.ID
	}
	return 0
}

// Init implements View.
func (v *ItemsView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *ItemsView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "a":
			return v, msgCmd(AddItemMsg{})
		case "x", "delete", "backspace":
			if id := v.SelectedID(); id != 0 {
				return v, msgCmd(RemoveItemMsg{ID: id})
			}
			return v, nil
		case "c":
			return v, msgCmd(ClearItemsMsg{})
		}
	}
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View implements View.
func (v *ItemsView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Status.Render(fmt.Sprintf("アイテム数: %d", len(v.entries))) + "\n")
	if len(v.entries) == 0 {
		b.WriteString(Styles.Empty.Render("アイテムがありません"))
	} else {
		b.WriteString(v.list.View())
	}
	b.WriteString("\n" + Styles.Hint.Render("a: 追加  x: 削除  c: 全削除"))
	return panelBox("動的リスト", b.String(), v.Focused, 0)
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
