package cartstore

import (
	"context"
	"sync"

	"pos-core/internal/domain/cart"

	"github.com/google/uuid"
)

// MemoryStore keeps cart sessions in process memory. It is the default
// backend for a single-terminal deployment; sessions do not survive a
// restart.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]cart.SessionState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[uuid.UUID]cart.SessionState),
	}
}

func (s *MemoryStore) Load(_ context.Context, operatorID uuid.UUID) (*cart.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[operatorID]
	if !ok {
		return cart.NewSession(operatorID), nil
	}
	return cart.RestoreSession(state), nil
}

func (s *MemoryStore) Save(_ context.Context, session *cart.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.OperatorID()] = session.State()
	return nil
}
