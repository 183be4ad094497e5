// Package answer holds the values collected while walking a manifest.
package answer

import "iter"

// Value is one resolved answer. The concrete types are Absent, Bool, String
// and *Map; nothing outside this package can add more.
type Value interface {
	isValue()
}

// Absent marks a variable the user declined, dismissed, or that had no prompt.
type Absent struct{}

// Bool is a yes/no answer.
type Bool bool

// String is a free-text or option answer.
type String string

func (Absent) isValue() {}
func (Bool) isValue()   {}
func (String) isValue() {}
func (*Map) isValue()   {}

// Map is an insertion-ordered set of answers keyed by variable name.
// The zero value is not usable; call NewMap.
type Map struct {
	keys   []string
	values map[string]Value
}

func NewMap() *Map {
	return &Map{values: make(map[string]Value)}
}

// Set stores v under key. Re-assigning a key keeps its original position.
// A nil v is stored as Absent.
func (m *Map) Set(key string, v Value) {
	if v == nil {
		v = Absent{}
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// All iterates the answers in insertion order.
func (m *Map) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if m == nil {
			return
		}
		for _, key := range m.keys {
			if !yield(key, m.values[key]) {
				return
			}
		}
	}
}
