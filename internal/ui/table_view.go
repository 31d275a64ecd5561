package ui

import (
	"strconv"

	btable "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"demopage/internal/engine"
)

// TableView shows the filtered user table. s cycles the status filter
// through all rows and each status.
type TableView struct {
	table    btable.Model
	statuses []string
	status   string
	Focused  bool
}

var _ SnapshotView = (*TableView)(nil)

// NewTableView creates the table panel. statuses lists the filter choices in
// cycle order.
func NewTableView(statuses []string) *TableView {
	t := btable.New(
		btable.WithColumns([]btable.Column{
			{Title: "ID", Width: 4},
			{Title: "名前", Width: 10},
			{Title: "役職", Width: 14},
			{Title: "ステータス", Width: 12},
		}),
		btable.WithHeight(4),
		btable.WithFocused(true),
	)
	st := btable.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	t.SetStyles(st)
	return &TableView{table: t, statuses: statuses}
}

// SetSnapshot implements SnapshotView.
func (v *TableView) SetSnapshot(s engine.Snapshot) {
	v.status = s.TableStatus
	rows := make([]btable.Row, len(s.VisibleRows))
	for i, r := range s.VisibleRows {
		rows[i] = btable.Row{strconv.Itoa(r.ID), r.Name, r.Role, r.Status}
	}
	v.table.SetRows(rows)
	if v.table.Cursor() >= len(rows) {
		v.table.SetCursor(max(len(rows)-1, 0))
	}
}

// RowCount returns the number of visible rows.
func (v *TableView) RowCount() int {
	return len(v.table.Rows())
}

// nextStatus returns the filter after the current one: "" -> each status -> "".
func (v *TableView) nextStatus() string {
	if v.status == "" {
		if len(v.statuses) == 0 {
			return ""
		}
		return v.statuses[0]
	}
	for i, s := range v.statuses {
		if s == v.status && i+1 < len(v.statuses) {
			return v.statuses[i+1]
		}
	}
	return ""
}

// Init implements View.
func (v *TableView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *TableView) Update(msg tea.Msg) (View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "s":
			return v, msgCmd(FilterTableMsg{Status: v.nextStatus()})
		case "a":
			return v, msgCmd(FilterTableMsg{})
		}
	}
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// View implements View.
func (v *TableView) View() string {
	filter := v.status
	if filter == "" {
		filter = "すべて"
	}
	body := Styles.Status.Render("フィルター: "+filter) + "\n" + v.table.View()
	if v.RowCount() == 0 {
		body += "\n" + Styles.Empty.Render("該当するユーザーがいません")
	}
	body += "\n" + Styles.Hint.Render("s: ステータス切替  a: すべて表示")
	return panelBox("ユーザー一覧", body, v.Focused, 0)
}
