// Package form implements the demo form: a fixed field schema, raw field
// values, and the submit/reset lifecycle.
//
// No client-side validation is performed. Any value is accepted for a known
// field; only names outside the schema are rejected.
package form

import (
	"fmt"
	"strings"
)

// Field names a form field.
type Field string

const (
	FieldUsername  Field = "username"
	FieldEmail     Field = "email"
	FieldAge       Field = "age"
	FieldCountry   Field = "country"
	FieldInterests Field = "interests"
	FieldMessage   Field = "message"
)

// Kind describes the input type of a field.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindEnum
	KindFlags
	KindMultiline
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindEnum:
		return "enum"
	case KindFlags:
		return "flags"
	case KindMultiline:
		return "multiline"
	default:
		return "unknown"
	}
}

// Spec declares one field of the schema.
type Spec struct {
	Name        Field
	Kind        Kind
	Label       string
	Placeholder string
}

// Schema lists the fields in display order.
var Schema = []Spec{
	{Name: FieldUsername, Kind: KindText, Label: "ユーザー名:", Placeholder: "ユーザー名を入力"},
	{Name: FieldEmail, Kind: KindText, Label: "メールアドレス:", Placeholder: "email@example.com"},
	{Name: FieldAge, Kind: KindNumber, Label: "年齢:"},
	{Name: FieldCountry, Kind: KindEnum, Label: "国:"},
	{Name: FieldInterests, Kind: KindFlags, Label: "趣味:"},
	{Name: FieldMessage, Kind: KindMultiline, Label: "メッセージ:"},
}

// Option is a choice of an enum field.
type Option struct {
	Value string
	Label string
}

// CountryOptions are the country choices; the first one is the default.
var CountryOptions = []Option{
	{Value: "", Label: "選択してください"},
	{Value: "japan", Label: "日本"},
	{Value: "usa", Label: "アメリカ"},
	{Value: "uk", Label: "イギリス"},
	{Value: "other", Label: "その他"},
}

// Interest flag names in display order.
const (
	InterestReading = "reading"
	InterestMusic   = "music"
	InterestSports  = "sports"
)

// Interests lists the interest flags with their labels.
var Interests = []Option{
	{Value: InterestReading, Label: "読書"},
	{Value: InterestMusic, Label: "音楽"},
	{Value: InterestSports, Label: "スポーツ"},
}

// LookupField returns the schema entry for name.
func LookupField(name Field) (Spec, bool) {
	for _, s := range Schema {
		if s.Name == name {
			return s, true
		}
	}
	return Spec{}, false
}

func isInterest(name string) bool {
	for _, o := range Interests {
		if o.Value == name {
			return true
		}
	}
	return false
}

// Values is a snapshot of every field.
type Values struct {
	Username  string
	Email     string
	Age       string // raw number input text
	Country   string
	Interests map[string]bool
	Message   string
}

// DefaultValues returns the declared defaults: empty text, first country option,
// all interests unchecked.
func DefaultValues() Values {
	v := Values{
		Country:   CountryOptions[0].Value,
		Interests: make(map[string]bool, len(Interests)),
	}
	for _, o := range Interests {
		v.Interests[o.Value] = false
	}
	return v
}

// Clone returns a deep copy.
func (v Values) Clone() Values {
	out := v
	out.Interests = make(map[string]bool, len(v.Interests))
	for k, b := range v.Interests {
		out.Interests[k] = b
	}
	return out
}

// Get returns the raw text of a field. Interests are joined with commas in
// display order.
func (v Values) Get(name Field) (string, bool) {
	switch name {
	case FieldUsername:
		return v.Username, true
	case FieldEmail:
		return v.Email, true
	case FieldAge:
		return v.Age, true
	case FieldCountry:
		return v.Country, true
	case FieldInterests:
		return strings.Join(v.CheckedInterests(), ","), true
	case FieldMessage:
		return v.Message, true
	}
	return "", false
}

// CheckedInterests returns the checked interest names in display order.
func (v Values) CheckedInterests() []string {
	var out []string
	for _, o := range Interests {
		if v.Interests[o.Value] {
			out = append(out, o.Value)
		}
	}
	return out
}

// Summary renders the confirmation text shown after a submit.
func (v Values) Summary() string {
	var b strings.Builder
	b.WriteString("送信されたデータ:\n")
	for _, s := range Schema {
		val, _ := v.Get(s.Name)
		switch s.Name {
		case FieldCountry:
			val = countryLabel(val)
		case FieldInterests:
			val = interestLabels(v.CheckedInterests())
		}
		fmt.Fprintf(&b, "%s %s\n", s.Label, val)
	}
	return strings.TrimRight(b.String(), "\n")
}

func countryLabel(value string) string {
	if value == "" {
		return ""
	}
	for _, o := range CountryOptions {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

func interestLabels(names []string) string {
	labels := make([]string, 0, len(names))
	for _, n := range names {
		for _, o := range Interests {
			if o.Value == n {
				labels = append(labels, o.Label)
			}
		}
	}
	return strings.Join(labels, ", ")
}

// State is the full form state.
type State struct {
	Values         Values
	Submitted      bool
	LastSubmission *Values
}

// Store owns the form state. Not safe for concurrent use.
type Store struct {
	values    Values
	submitted bool
	last      *Values
}

// NewStore creates a store with every field at its default.
func NewStore() *Store {
	return &Store{values: DefaultValues()}
}

// SetField stores value for name without semantic validation.
// For FieldInterests, value is a comma-separated list of interest names that
// replaces the whole set.
func (s *Store) SetField(name Field, value string) error {
	switch name {
	case FieldUsername:
		s.values.Username = value
	case FieldEmail:
		s.values.Email = value
	case FieldAge:
		s.values.Age = value
	case FieldCountry:
		s.values.Country = value
	case FieldMessage:
		s.values.Message = value
	case FieldInterests:
		return s.setInterests(value)
	default:
		return &UnknownFieldError{Name: string(name)}
	}
	return nil
}

func (s *Store) setInterests(value string) error {
	next := make(map[string]bool, len(Interests))
	for _, o := range Interests {
		next[o.Value] = false
	}
	for _, part := range strings.Split(value, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if !isInterest(name) {
			return &UnknownFieldError{Name: name, Group: FieldInterests}
		}
		next[name] = true
	}
	s.values.Interests = next
	return nil
}

// ToggleInterest sets a single interest flag. Other flags are untouched.
func (s *Store) ToggleInterest(name string, checked bool) error {
	if !isInterest(name) {
		return &UnknownFieldError{Name: name, Group: FieldInterests}
	}
	s.values.Interests[name] = checked
	return nil
}

// Submit records the current values as the last submission and returns them.
func (s *Store) Submit() Values {
	snap := s.values.Clone()
	last := snap.Clone()
	s.last = &last
	s.submitted = true
	return snap
}

// Reset restores every field to its default and forgets the last submission.
func (s *Store) Reset() {
	s.values = DefaultValues()
	s.submitted = false
	s.last = nil
}

// State returns a deep copy of the current state.
func (s *Store) State() State {
	st := State{
		Values:    s.values.Clone(),
		Submitted: s.submitted,
	}
	if s.last != nil {
		last := s.last.Clone()
		st.LastSubmission = &last
	}
	return st
}
