// Package items holds the ordered, dynamically edited item list.
package items

import "fmt"

// DefaultLabelFormat is used when an entry is added without a label.
const DefaultLabelFormat = "アイテム %d"

// Entry is a single list item. IDs are unique within a Store and never reused.
type Entry struct {
	ID    int
	Label string
}

// Store keeps entries in insertion order.
// It is not safe for concurrent use; the engine serializes access.
type Store struct {
	entries []Entry
	lastID  int
}

// NewStore creates an empty store. The first entry gets ID 1.
func NewStore() *Store {
	return &Store{}
}

// Add appends a new entry with a freshly minted ID.
// An empty label is replaced by DefaultLabelFormat.
func (s *Store) Add(label string) Entry {
	s.lastID++
	if label == "" {
		label = fmt.Sprintf(DefaultLabelFormat, s.lastID)
	}
	e := Entry{ID: s.lastID, Label: label}
	s.entries = append(s.entries, e)
	return e
}

// Remove deletes the entry with the given ID. Returns false if no such entry exists.
func (s *Store) Remove(id int) bool {
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveFirst deletes the earliest-inserted remaining entry.
func (s *Store) RemoveFirst() bool {
	if len(s.entries) == 0 {
		return false
	}
	s.entries = s.entries[1:]
	return true
}

// Clear removes every entry. ID allocation continues from where it was.
func (s *Store) Clear() {
	s.entries = nil
}

// Count returns the number of entries.
func (s *Store) Count() int {
	return len(s.entries)
}

// Get returns the entry with the given ID.
func (s *Store) Get(id int) (Entry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Entries returns a copy of the entries in display order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
