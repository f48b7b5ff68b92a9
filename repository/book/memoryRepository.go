package bookrepo

import (
	"context"
	"sort"
	"sync"
)

// Memory is an in-memory Repo for tests and database-less local runs.
type Memory struct {
	mu     sync.RWMutex
	books  map[int64]Book
	nextID int64
}

func NewMemory() *Memory {
	return &Memory{books: make(map[int64]Book), nextID: 1}
}

// List returns books in id order so callers see a stable base order.
func (m *Memory) List(_ context.Context) ([]Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Book, 0, len(m.books))
	for _, b := range m.books {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) GetByID(_ context.Context, id int64) (*Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.books[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (m *Memory) Insert(_ context.Context, name, author string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.books[id] = Book{ID: id, Name: name, Author: author, Reserved: false}
	return id, nil
}

func (m *Memory) MarkReserved(_ context.Context, id int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.books[id]
	if !ok || b.Reserved {
		return 0, nil
	}
	b.Reserved = true
	m.books[id] = b
	return 1, nil
}
