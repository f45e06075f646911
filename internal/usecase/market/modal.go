package market

import (
	"sync"

	"github.com/google/uuid"
	"github.com/simaogato/marketfolio-backend/internal/domain"
)

// ModalStore keeps the add/edit modal state of every account in memory
type ModalStore struct {
	mu     sync.RWMutex
	states map[uuid.UUID]domain.ModalState
}

// NewModalStore creates an empty ModalStore
func NewModalStore() *ModalStore {
	return &ModalStore{states: make(map[uuid.UUID]domain.ModalState)}
}

// Get returns the modal state of an account, ModalClosed if none was set
func (s *ModalStore) Get(accountID uuid.UUID) domain.ModalState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[accountID]
	if !ok {
		return domain.ModalClosed{}
	}
	return state
}

// Set stores the modal state of an account
func (s *ModalStore) Set(accountID uuid.UUID, state domain.ModalState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, closed := state.(domain.ModalClosed); closed {
		delete(s.states, accountID)
		return
	}
	s.states[accountID] = state
}

// size returns the number of accounts with an open modal
func (s *ModalStore) size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}
