package itemstore

import "github.com/funvibe/gocsl/internal/value"

// Memory is an in-memory Item Data Provider, typically seeded from a
// YAML fixture via LoadFixture.
type Memory struct {
	byID  map[string]*Item
	order []string
}

// NewMemory builds a Memory store from a slice of Items, preserving
// their given order for All.
func NewMemory(items []*Item) *Memory {
	m := &Memory{byID: make(map[string]*Item, len(items)), order: make([]string, 0, len(items))}
	for _, it := range items {
		m.byID[it.ID()] = it
		m.order = append(m.order, it.ID())
	}
	return m
}

// Get returns the item with the given citation key.
func (m *Memory) Get(id string) (value.Item, bool) {
	it, ok := m.byID[id]
	return it, ok
}

// All returns every item, in insertion order.
func (m *Memory) All() []value.Item {
	out := make([]value.Item, len(m.order))
	for i, id := range m.order {
		out[i] = m.byID[id]
	}
	return out
}
