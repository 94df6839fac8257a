package entry

// Store is the ordered list of entries for the life of the process.
// Insertion order is display order and export order.
type Store struct {
	entries []Entry
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{entries: make([]Entry, 0)}
}

// Append adds e to the end of the list. Callers validate beforehand.
func (s *Store) Append(e Entry) {
	s.entries = append(s.entries, e)
}

// All returns a copy of the entries in insertion order.
func (s *Store) All() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len reports how many entries have been added.
func (s *Store) Len() int {
	return len(s.entries)
}
