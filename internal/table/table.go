// Package table provides read-only queries over the static user table.
package table

// Status values used by the seed data.
const (
	StatusActive   = "アクティブ"
	StatusInactive = "非アクティブ"
)

// Row is one immutable table row.
type Row struct {
	ID     int
	Name   string
	Role   string
	Status string
}

// SeedRows returns the demo page's user table in display order.
func SeedRows() []Row {
	return []Row{
		{ID: 1, Name: "田中太郎", Role: "エンジニア", Status: StatusActive},
		{ID: 2, Name: "佐藤花子", Role: "デザイナー", Status: StatusActive},
		{ID: 3, Name: "鈴木一郎", Role: "マネージャー", Status: StatusInactive},
	}
}

// Filter answers queries over a fixed row set. It holds no mutable state.
type Filter struct {
	rows []Row
}

// NewFilter creates a filter over a private copy of rows.
func NewFilter(rows []Row) *Filter {
	cp := make([]Row, len(rows))
	copy(cp, rows)
	return &Filter{rows: cp}
}

// All returns every row in seed order.
func (f *Filter) All() []Row {
	out := make([]Row, len(f.rows))
	copy(out, f.rows)
	return out
}

// ByStatus returns the rows whose status equals status, preserving order.
// The result is empty, never nil, when nothing matches.
func (f *Filter) ByStatus(status string) []Row {
	out := []Row{}
	for _, r := range f.rows {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

// Statuses returns the distinct statuses in first-seen order.
func (f *Filter) Statuses() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range f.rows {
		if !seen[r.Status] {
			seen[r.Status] = true
			out = append(out, r.Status)
		}
	}
	return out
}

// View pairs a Filter with the currently selected status.
// An empty status selects every row.
type View struct {
	filter *Filter
	status string
}

// NewView creates a view showing all rows.
func NewView(f *Filter) *View {
	return &View{filter: f}
}

// Apply selects status and returns the visible rows.
func (v *View) Apply(status string) []Row {
	v.status = status
	return v.Rows()
}

// Status returns the selected status ("" for all).
func (v *View) Status() string { return v.status }

// Rows returns the rows visible under the current selection.
func (v *View) Rows() []Row {
	if v.status == "" {
		return v.filter.All()
	}
	return v.filter.ByStatus(v.status)
}

// Filter returns the underlying filter.
func (v *View) Filter() *Filter { return v.filter }
