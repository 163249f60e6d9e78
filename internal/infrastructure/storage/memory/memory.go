// Package memory provides the in-process item repository used by the
// default configuration. State lives only for the process lifetime.
package memory

import (
	"context"
	"strconv"
	"sync"
	"time"

	"itemstore/internal/domain/item"
)

// Store keeps items in a map plus an insertion-order index so List can
// return records in storage order. Identifiers come from a sequence
// that is never rewound, so ids are unique for the process lifetime
// even after deletes.
type Store struct {
	mu    sync.RWMutex
	items map[string]*item.Item
	order []string
	seq   int64
}

func NewStore() *Store {
	return &Store{
		items: make(map[string]*item.Item),
	}
}

func (s *Store) Create(_ context.Context, draft item.Draft) (*item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	now := time.Now().UTC()
	it := &item.Item{
		ID:          strconv.FormatInt(s.seq, 10),
		Name:        draft.Name,
		Description: draft.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.items[it.ID] = it
	s.order = append(s.order, it.ID)

	snapshot := *it
	return &snapshot, nil
}

func (s *Store) Get(_ context.Context, id string) (*item.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return nil, item.ErrNotFound
	}

	snapshot := *it
	return &snapshot, nil
}

func (s *Store) List(_ context.Context) ([]item.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]item.Item, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, *s.items[id])
	}
	return items, nil
}

func (s *Store) Update(_ context.Context, id string, patch item.Patch) (*item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok {
		return nil, item.ErrNotFound
	}

	if patch.Name != nil {
		it.Name = *patch.Name
	}
	if patch.Description != nil {
		it.Description = *patch.Description
	}
	it.UpdatedAt = nextTimestamp(it.UpdatedAt)

	snapshot := *it
	return &snapshot, nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return item.ErrNotFound
	}

	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// nextTimestamp guarantees UpdatedAt strictly increases even when the
// clock resolution makes two mutations land on the same instant.
func nextTimestamp(prev time.Time) time.Time {
	now := time.Now().UTC()
	if !now.After(prev) {
		return prev.Add(time.Nanosecond)
	}
	return now
}
