// Package variable holds the story's key/value store.
package variable

// Pair is one stored key and its value
type Pair struct {
	Key   string
	Value int
}

// Store maps keys to integers. Keys are unique and kept in insertion
// order; there is no deletion.
type Store struct {
	pairs []Pair
	index map[string]int
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// Read returns the value for key. An absent key is inserted with value 0
// and the insertion persists.
func (s *Store) Read(key string) int {
	if i, ok := s.lookup(key); ok {
		return s.pairs[i].Value
	}
	s.insert(key, 0)
	return 0
}

// Write sets key to value, inserting it if absent, and returns value
func (s *Store) Write(key string, value int) int {
	if i, ok := s.lookup(key); ok {
		s.pairs[i].Value = value
		return value
	}
	s.insert(key, value)
	return value
}

// Len returns the number of stored keys
func (s *Store) Len() int {
	return len(s.pairs)
}

// Keys returns the stored keys in insertion order
func (s *Store) Keys() []string {
	keys := make([]string, len(s.pairs))
	for i, p := range s.pairs {
		keys[i] = p.Key
	}
	return keys
}

// Snapshot returns a copy of the stored pairs in insertion order
func (s *Store) Snapshot() []Pair {
	out := make([]Pair, len(s.pairs))
	copy(out, s.pairs)
	return out
}

// Reset removes every key
func (s *Store) Reset() {
	s.pairs = s.pairs[:0]
	s.index = make(map[string]int)
}

func (s *Store) lookup(key string) (int, bool) {
	if s.index == nil {
		return 0, false
	}
	i, ok := s.index[key]
	return i, ok
}

func (s *Store) insert(key string, value int) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	s.index[key] = len(s.pairs)
	s.pairs = append(s.pairs, Pair{Key: key, Value: value})
}
