package ui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"demopage/internal/engine"
	"demopage/internal/form"
	"demopage/internal/ui/textutil"
)

type formRowKind int

const (
	rowInput formRowKind = iota
	rowCountry
	rowInterest
	rowMessage
	rowSubmit
	rowReset
)

type formRow struct {
	kind     formRowKind
	field    form.Field
	interest form.Option
}

// FormView edits the form through SetFieldMsg/ToggleInterestMsg intents and
// shows the submission result.
type FormView struct {
	rows    []formRow
	cursor  int
	editing bool
	inputs  map[form.Field]*textinput.Model
	message textarea.Model
	state   form.State
	Focused bool
}

var _ SnapshotView = (*FormView)(nil)

// NewFormView builds one row per schema entry plus the submit and reset buttons.
func NewFormView() *FormView {
	v := &FormView{
		inputs: make(map[form.Field]*textinput.Model),
		state:  form.State{Values: form.DefaultValues()},
	}
	for _, spec := range form.Schema {
		switch spec.Kind {
		case form.KindText, form.KindNumber:
			ti := textinput.New()
			ti.Prompt = ""
			ti.Placeholder = spec.Placeholder
			ti.Width = 28
			ti.CharLimit = 256
			ti.Cursor.SetMode(cursor.CursorStatic)
			v.inputs[spec.Name] = &ti
			v.rows = append(v.rows, formRow{kind: rowInput, field: spec.Name})
		case form.KindEnum:
			v.rows = append(v.rows, formRow{kind: rowCountry, field: spec.Name})
		case form.KindFlags:
			for _, o := range form.Interests {
				v.rows = append(v.rows, formRow{kind: rowInterest, field: spec.Name, interest: o})
			}
		case form.KindMultiline:
			ta := textarea.New()
			ta.Placeholder = "メッセージを入力"
			ta.ShowLineNumbers = false
			ta.SetWidth(30)
			ta.SetHeight(3)
			ta.Cursor.SetMode(cursor.CursorStatic)
			v.message = ta
			v.rows = append(v.rows, formRow{kind: rowMessage, field: spec.Name})
		}
	}
	v.rows = append(v.rows, formRow{kind: rowSubmit}, formRow{kind: rowReset})
	return v
}

// SetSnapshot implements SnapshotView. The input being edited keeps its own
// value so the cursor position survives the round trip.
func (v *FormView) SetSnapshot(s engine.Snapshot) {
	v.state = s.Form
	for field, ti := range v.inputs {
		if v.editing && v.rows[v.cursor].field == field {
			continue
		}
		val, _ := s.Form.Values.Get(field)
		if ti.Value() != val {
			ti.SetValue(val)
		}
	}
	if !(v.editing && v.rows[v.cursor].kind == rowMessage) && v.message.Value() != s.Form.Values.Message {
		v.message.SetValue(s.Form.Values.Message)
	}
}

// Editing reports whether an input has the keyboard.
func (v *FormView) Editing() bool {
	return v.editing
}

// Init implements View.
func (v *FormView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *FormView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		if v.editing && v.rows[v.cursor].kind == rowMessage {
			var cmd tea.Cmd
			v.message, cmd = v.message.Update(msg)
			return v, cmd
		}
		return v, nil
	}
	if v.editing {
		return v, v.updateEditing(km)
	}

	row := v.rows[v.cursor]
	switch km.String() {
	case "j", "down":
		if v.cursor < len(v.rows)-1 {
			v.cursor++
		}
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
		}
	case "g":
		v.cursor = 0
	case "G":
		v.cursor = len(v.rows) - 1
	case "h", "left":
		if row.kind == rowCountry {
			return v, v.cycleCountry(-1)
		}
	case "l", "right":
		if row.kind == rowCountry {
			return v, v.cycleCountry(1)
		}
	case "x":
		if row.kind == rowInterest {
			return v, v.toggle(row)
		}
	case "enter":
		switch row.kind {
		case rowInput, rowMessage:
			return v, v.beginEdit()
		case rowCountry:
			return v, v.cycleCountry(1)
		case rowInterest:
			return v, v.toggle(row)
		case rowSubmit:
			return v, msgCmd(SubmitFormMsg{})
		case rowReset:
			return v, msgCmd(ResetFormMsg{})
		}
	}
	return v, nil
}

func (v *FormView) beginEdit() tea.Cmd {
	v.editing = true
	var focus tea.Cmd
	row := v.rows[v.cursor]
	if row.kind == rowMessage {
		focus = v.message.Focus()
	} else {
		focus = v.inputs[row.field].Focus()
	}
	return tea.Batch(focus, msgCmd(BeginEditMsg{}))
}

// EndEdit releases the keyboard.
func (v *FormView) EndEdit() tea.Cmd {
	if !v.editing {
		return nil
	}
	v.editing = false
	v.message.Blur()
	for _, ti := range v.inputs {
		ti.Blur()
	}
	return msgCmd(EndEditMsg{})
}

func (v *FormView) updateEditing(km tea.KeyMsg) tea.Cmd {
	row := v.rows[v.cursor]
	if km.String() == "esc" || (km.String() == "enter" && row.kind == rowInput) {
		return v.EndEdit()
	}

	if row.kind == rowMessage {
		before := v.message.Value()
		var cmd tea.Cmd
		v.message, cmd = v.message.Update(km)
		return tea.Batch(cmd, setFieldCmd(row.field, before, v.message.Value()))
	}

	ti := v.inputs[row.field]
	if spec, _ := form.LookupField(row.field); spec.Kind == form.KindNumber && !numericKey(km) {
		return nil
	}
	before := ti.Value()
	updated, cmd := ti.Update(km)
	*ti = updated
	return tea.Batch(cmd, setFieldCmd(row.field, before, ti.Value()))
}

// numericKey filters rune input for number fields; editing keys pass.
func numericKey(km tea.KeyMsg) bool {
	if km.Type != tea.KeyRunes {
		return true
	}
	for _, r := range km.Runes {
		if !unicode.IsDigit(r) && r != '-' && r != '.' {
			return false
		}
	}
	return true
}

func setFieldCmd(field form.Field, before, after string) tea.Cmd {
	if before == after {
		return nil
	}
	return msgCmd(SetFieldMsg{Field: field, Value: after})
}

func (v *FormView) cycleCountry(step int) tea.Cmd {
	opts := form.CountryOptions
	cur := 0
	for i, o := range opts {
		if o.Value == v.state.Values.Country {
			cur = i
			break
		}
	}
	next := (cur + step + len(opts)) % len(opts)
	return msgCmd(SetFieldMsg{Field: form.FieldCountry, Value: opts[next].Value})
}

func (v *FormView) toggle(row formRow) tea.Cmd {
	checked := v.state.Values.Interests[row.interest.Value]
	return msgCmd(ToggleInterestMsg{Name: row.interest.Value, Checked: !checked})
}

// View implements View.
func (v *FormView) View() string {
	var b strings.Builder
	prevField := form.Field("")
	for i, row := range v.rows {
		cur := v.Focused && i == v.cursor
		marker := "  "
		if cur {
			marker = Styles.Selected.Render("> ")
		}
		label := ""
		if row.field != prevField && row.field != "" {
			spec, _ := form.LookupField(row.field)
			label = spec.Label
		}
		prevField = row.field

		switch row.kind {
		case rowInput:
			b.WriteString(marker + padLabel(label) + v.inputs[row.field].View())
		case rowCountry:
			b.WriteString(marker + padLabel(label) + "◀ " + countryLabel(v.state.Values.Country) + " ▶")
		case rowInterest:
			box := "[ ]"
			if v.state.Values.Interests[row.interest.Value] {
				box = "[x]"
			}
			b.WriteString(marker + padLabel(label) + box + " " + row.interest.Label)
		case rowMessage:
			b.WriteString(marker + label + "\n" + v.message.View())
		case rowSubmit:
			b.WriteString(marker + button("送信", true, cur))
		case rowReset:
			b.WriteString(marker + button("リセット", true, cur))
		}
		b.WriteString("\n")
	}
	if v.state.Submitted && v.state.LastSubmission != nil {
		b.WriteString("\n" + Styles.Success.Render(v.state.LastSubmission.Summary()) + "\n")
	}
	hint := "enter: 編集/選択  h/l: 国  x: 趣味"
	if v.editing {
		hint = "esc: 編集終了"
	}
	b.WriteString(Styles.Hint.Render(hint))
	return panelBox("フォーム", b.String(), v.Focused, 0)
}

func padLabel(label string) string {
	return textutil.PadRight(label, 16)
}

func countryLabel(value string) string {
	for _, o := range form.CountryOptions {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
