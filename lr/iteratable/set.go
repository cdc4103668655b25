package iteratable

// Set is a set of comparable items. Items are kept in insertion order.
// The zero value is not usable, create sets with NewSet.
type Set struct {
	items  []interface{}
	index  map[interface{}]int
	cursor int
}

// NewSet creates an empty set. capacity is a hint for the expected size.
func NewSet(capacity int) *Set {
	if capacity < 0 {
		capacity = 0
	}
	return &Set{
		items:  make([]interface{}, 0, capacity),
		index:  make(map[interface{}]int, capacity),
		cursor: -1,
	}
}

// Add adds items to the set. Items already present are ignored.
// Items must be valid map keys.
func (s *Set) Add(items ...interface{}) *Set {
	for _, item := range items {
		if _, ok := s.index[item]; ok {
			continue
		}
		s.index[item] = len(s.items)
		s.items = append(s.items, item)
	}
	return s
}

// Contains checks for the presence of an item.
func (s *Set) Contains(item interface{}) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[item]
	return ok
}

// Size returns the number of items.
func (s *Set) Size() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Empty is true for a set without items.
func (s *Set) Empty() bool {
	return s.Size() == 0
}

// Values returns the items in insertion order. The slice is a copy.
func (s *Set) Values() []interface{} {
	if s == nil {
		return nil
	}
	return append([]interface{}(nil), s.items...)
}

// Copy creates a shallow copy of s.
func (s *Set) Copy() *Set {
	c := NewSet(s.Size())
	if s != nil {
		c.Add(s.items...)
	}
	return c
}

// Union adds all items of other to s.
func (s *Set) Union(other *Set) *Set {
	if other != nil {
		s.Add(other.items...)
	}
	return s
}

// Difference removes all items of other from s.
func (s *Set) Difference(other *Set) *Set {
	if other == nil || other.Empty() {
		return s
	}
	kept := s.items[:0]
	for _, item := range s.items {
		if !other.Contains(item) {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.index = make(map[interface{}]int, len(kept))
	for i, item := range kept {
		s.index[item] = i
	}
	s.cursor = -1
	return s
}

// Equals is true if s and other contain the same items, regardless of order.
func (s *Set) Equals(other *Set) bool {
	if s.Size() != other.Size() {
		return false
	}
	for _, item := range s.Values() {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}

// Each calls f for every item, in insertion order.
func (s *Set) Each(f func(interface{})) {
	for _, item := range s.Values() {
		f(item)
	}
}

// --- Iteration -------------------------------------------------------------

// IterateOnce starts an iteration over s. Items added during the iteration will
// be visited as well.
func (s *Set) IterateOnce() {
	s.cursor = -1
}

// Next moves to the next item of the current iteration. It returns false if
// all items have been visited.
func (s *Set) Next() bool {
	if s.cursor+1 >= len(s.items) {
		return false
	}
	s.cursor++
	return true
}

// Item returns the current item of an iteration.
func (s *Set) Item() interface{} {
	if s.cursor < 0 || s.cursor >= len(s.items) {
		return nil
	}
	return s.items[s.cursor]
}
