package orderedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertionOrder(t *testing.T) {
	m := New[string, int]()

	m.Set("2024-03", 1)
	m.Set("2023-12", 2)
	m.Set("2024-01", 3)
	m.Set("2024-03", 10)

	assert.Equal(t, []string{"2024-03", "2023-12", "2024-01"}, m.Keys())
	assert.Equal(t, []int{10, 2, 3}, m.Values())
	assert.Equal(t, 3, m.Len())

	v, ok := m.Get("2023-12")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = m.Get("1999-01")
	assert.False(t, ok)
}

func TestUpdate(t *testing.T) {
	m := New[string, int]()

	inc := func(v int) int { return v + 1 }

	m.Update("a", inc)
	m.Update("b", inc)
	m.Update("a", inc)

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	assert.Equal(t, []int{2, 1}, m.Values())
}

func TestDistinct(t *testing.T) {
	cases := []struct {
		Name string
		In   []string
		Want []string
	}{
		{"empty", nil, nil},
		{"no duplicates", []string{"b", "a"}, []string{"b", "a"}},
		{"first occurrence wins", []string{"Mar", "Jan", "Mar", "Feb", "Jan"}, []string{"Mar", "Jan", "Feb"}},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Want, Distinct(tc.In))
		})
	}
}
