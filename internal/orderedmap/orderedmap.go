// Package orderedmap provides a map that remembers the order in which keys
// were first inserted
package orderedmap

// Map is a map whose iteration order is the insertion order of its keys.
// The zero value is not usable; create one with New.
type Map[K comparable, V any] struct {
	index map[K]int
	keys  []K
	vals  []V
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		index: make(map[K]int),
	}
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	i, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}

	return m.vals[i], true
}

// Set stores v under key. Updating an existing key keeps its position.
func (m *Map[K, V]) Set(key K, v V) {
	if i, ok := m.index[key]; ok {
		m.vals[i] = v
		return
	}

	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, v)
}

// Update applies fn to the value under key, starting from the zero value if
// the key is new.
func (m *Map[K, V]) Update(key K, fn func(V) V) {
	v, _ := m.Get(key)
	m.Set(key, fn(v))
}

func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	return append([]K(nil), m.keys...)
}

// Values returns the values in key insertion order.
func (m *Map[K, V]) Values() []V {
	return append([]V(nil), m.vals...)
}

// Distinct returns the unique elements of s in order of first occurrence.
func Distinct[T comparable](s []T) []T {
	m := New[T, struct{}]()

	for _, v := range s {
		m.Set(v, struct{}{})
	}

	return m.Keys()
}
