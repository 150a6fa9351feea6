package memory

import (
	"context"
	"sync"

	"github.com/qispark/chatpick/internal/core/domain"
	"github.com/qispark/chatpick/internal/core/ports/driven"
)

// Ensure PersonalDetailStore implements the interface.
var _ driven.PersonalDetailStore = (*PersonalDetailStore)(nil)

// PersonalDetailStore is an in-memory implementation of
// driven.PersonalDetailStore.
type PersonalDetailStore struct {
	mu      sync.RWMutex
	details map[string]domain.PersonalDetail
}

// NewPersonalDetailStore creates a new in-memory personal detail store.
func NewPersonalDetailStore() *PersonalDetailStore {
	return &PersonalDetailStore{
		details: make(map[string]domain.PersonalDetail),
	}
}

// All returns every known profile, keyed by login.
func (s *PersonalDetailStore) All(_ context.Context) (map[string]domain.PersonalDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]domain.PersonalDetail, len(s.details))
	for login, detail := range s.details {
		out[login] = detail
	}
	return out, nil
}

// Get retrieves a profile by login.
func (s *PersonalDetailStore) Get(_ context.Context, login string) (*domain.PersonalDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	detail, ok := s.details[login]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &detail, nil
}

// Save stores or updates a profile.
func (s *PersonalDetailStore) Save(_ context.Context, detail domain.PersonalDetail) error {
	if detail.Login == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.details[detail.Login] = detail
	return nil
}

// Replace swaps the entire snapshot in one step.
func (s *PersonalDetailStore) Replace(_ context.Context, details []domain.PersonalDetail) error {
	next := make(map[string]domain.PersonalDetail, len(details))
	for _, detail := range details {
		if detail.Login == "" {
			return domain.ErrInvalidInput
		}
		next[detail.Login] = detail
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.details = next
	return nil
}
