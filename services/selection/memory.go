package selection

import (
	"context"
	"sync"

	"meliyah/models"
)

// InMemorySessionStore is a map-backed SessionStore for tests and local
// development without Redis.
type InMemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.Selection
}

func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{sessions: make(map[string]models.Selection)}
}

func (s *InMemorySessionStore) Get(_ context.Context, sessionID string) (*models.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	// Copy so callers never share the stored value.
	out := sel
	out.SelectedProducts = append([]models.Product{}, sel.SelectedProducts...)
	return &out, nil
}

func (s *InMemorySessionStore) Save(_ context.Context, sel *models.Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *sel
	stored.SelectedProducts = append([]models.Product{}, sel.SelectedProducts...)
	s.sessions[sel.SessionID] = stored
	return nil
}

func (s *InMemorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
