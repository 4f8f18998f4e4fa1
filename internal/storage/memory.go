package storage

import (
	"context"
	"sync"
)

var _ ISelectionStore = (*MemorySelectionStore)(nil)

// MemorySelectionStore keeps selections for the life of the process.
type MemorySelectionStore struct {
	mu    sync.RWMutex
	cells map[string]string
}

func NewMemorySelectionStore() *MemorySelectionStore {
	return &MemorySelectionStore{cells: make(map[string]string)}
}

func (s *MemorySelectionStore) Get(_ context.Context, sessionKey string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cardID, found := s.cells[cellKey(sessionKey)]
	return cardID, found, nil
}

func (s *MemorySelectionStore) Set(_ context.Context, sessionKey, cardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cells[cellKey(sessionKey)] = cardID
	return nil
}

func (s *MemorySelectionStore) Clear(_ context.Context, sessionKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cells, cellKey(sessionKey))
	return nil
}
