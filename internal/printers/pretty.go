// Package printers renders engine state as colored terminal text for the
// non-interactive commands.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"demopage/internal/delayed"
	"demopage/internal/engine"
	"demopage/internal/table"
)

// PrettyPrint writes human-readable output to Out.
type PrettyPrint struct {
	Out io.Writer
}

// New creates a printer writing to out.
func New(out io.Writer) *PrettyPrint {
	return &PrettyPrint{Out: out}
}

func (pp *PrettyPrint) title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.Out, title)
}

func (pp *PrettyPrint) faint(format string, args ...any) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintf(pp.Out, format, args...)
}

// Rows prints the user table.
func (pp *PrettyPrint) Rows(rows []table.Row) {
	if len(rows) == 0 {
		pp.faint(" none\n")
		return
	}
	tbl := uitable.New()
	tbl.MaxColWidth = 40
	tbl.AddRow("ID", "名前", "役職", "ステータス")
	for _, r := range rows {
		tbl.AddRow(r.ID, r.Name, r.Role, statusColor(r.Status).Sprint(r.Status))
	}
	_, _ = fmt.Fprintln(pp.Out, tbl)
}

func statusColor(status string) *color.Color {
	if status == table.StatusActive {
		return color.New(color.FgGreen)
	}
	return color.New(color.FgHiBlack)
}

// Snapshot prints every section of the engine state.
func (pp *PrettyPrint) Snapshot(s engine.Snapshot) {
	pp.title(fmt.Sprintf("アイテム数: %d", s.ItemCount))
	if len(s.Items) == 0 {
		pp.faint(" none\n")
	}
	for _, it := range s.Items {
		_, _ = fmt.Fprintf(pp.Out, "  %d  %s\n", it.ID, it.Label)
	}
	_, _ = fmt.Fprintln(pp.Out)

	pp.title("フォーム")
	tbl := uitable.New()
	tbl.Wrap = true
	v := s.Form.Values
	tbl.AddRow("username", v.Username)
	tbl.AddRow("email", v.Email)
	tbl.AddRow("age", v.Age)
	tbl.AddRow("country", v.Country)
	tbl.AddRow("interests", strings.Join(v.CheckedInterests(), ","))
	tbl.AddRow("message", v.Message)
	tbl.AddRow("submitted", s.Form.Submitted)
	_, _ = fmt.Fprintln(pp.Out, tbl)
	if r := s.FormResult(); r != "" {
		_, _ = color.New(color.FgCyan).Fprintln(pp.Out, r)
	}
	_, _ = fmt.Fprintln(pp.Out)

	pp.title("状態")
	st := uitable.New()
	st.AddRow("modal", openText(s.ModalOpen))
	st.AddRow("delayed", phaseColor(s.DelayedPhase).Sprint(s.DelayedPhase.String()))
	if text := s.DelayedStatusText(); text != "" {
		st.AddRow("", text)
	}
	if s.ClickResult != "" {
		st.AddRow("click", s.ClickResult)
	}
	_, _ = fmt.Fprintln(pp.Out, st)
	_, _ = fmt.Fprintln(pp.Out)

	filter := s.TableStatus
	if filter == "" {
		filter = "all"
	}
	pp.title(fmt.Sprintf("テーブル (%s)", filter))
	pp.Rows(s.VisibleRows)
}

func openText(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}

func phaseColor(p delayed.Phase) *color.Color {
	switch p {
	case delayed.Pending:
		return color.New(color.FgYellow)
	case delayed.Completed:
		return color.New(color.FgGreen)
	default:
		return color.New()
	}
}
