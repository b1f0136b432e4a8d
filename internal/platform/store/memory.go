package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Memory is a Repository backed by a map. Entities are stored by value so a
// caller holding a returned pointer cannot change the stored record.
type Memory[E any] struct {
	mu    sync.RWMutex
	items map[string]E
	order []string
	id    func(*E) *string
}

// NewMemory returns an empty in-memory repository. id must return a pointer
// to the entity's identifier field.
func NewMemory[E any](id func(*E) *string) *Memory[E] {
	return &Memory[E]{
		items: make(map[string]E),
		id:    id,
	}
}

func (m *Memory[E]) Create(_ context.Context, e *E) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := uuid.New().String()
	*m.id(e) = key
	m.items[key] = *e
	m.order = append(m.order, key)
	return nil
}

func (m *Memory[E]) GetByID(_ context.Context, id string) (*E, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &e, nil
}

func (m *Memory[E]) Exists(_ context.Context, id string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.items[id]
	return ok, nil
}

// List returns entities in insertion order.
func (m *Memory[E]) List(_ context.Context) ([]*E, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*E, 0, len(m.items))
	for _, key := range m.order {
		e := m.items[key]
		out = append(out, &e)
	}
	return out, nil
}

func (m *Memory[E]) Update(_ context.Context, e *E) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := *m.id(e)
	if _, ok := m.items[key]; !ok {
		return ErrNotFound
	}
	m.items[key] = *e
	return nil
}

func (m *Memory[E]) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return ErrNotFound
	}
	delete(m.items, id)
	for i, key := range m.order {
		if key == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of stored entities.
func (m *Memory[E]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
