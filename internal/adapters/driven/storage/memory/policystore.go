package memory

import (
	"context"
	"sync"

	"github.com/qispark/chatpick/internal/core/domain"
	"github.com/qispark/chatpick/internal/core/ports/driven"
)

// Ensure PolicyStore implements the interface.
var _ driven.PolicyStore = (*PolicyStore)(nil)

// PolicyStore is an in-memory implementation of driven.PolicyStore.
type PolicyStore struct {
	mu       sync.RWMutex
	policies map[string]domain.Policy
}

// NewPolicyStore creates a new in-memory policy store.
func NewPolicyStore() *PolicyStore {
	return &PolicyStore{
		policies: make(map[string]domain.Policy),
	}
}

// All returns every known workspace, keyed by policy ID.
func (s *PolicyStore) All(_ context.Context) (map[string]domain.Policy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]domain.Policy, len(s.policies))
	for id, policy := range s.policies {
		out[id] = policy
	}
	return out, nil
}

// Get retrieves a workspace by policy ID.
func (s *PolicyStore) Get(_ context.Context, policyID string) (*domain.Policy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	policy, ok := s.policies[policyID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &policy, nil
}

// Save stores or updates a workspace.
func (s *PolicyStore) Save(_ context.Context, policy domain.Policy) error {
	if policy.PolicyID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policies[policy.PolicyID] = policy
	return nil
}

// Replace swaps the entire snapshot in one step.
func (s *PolicyStore) Replace(_ context.Context, policies []domain.Policy) error {
	next := make(map[string]domain.Policy, len(policies))
	for _, policy := range policies {
		if policy.PolicyID == "" {
			return domain.ErrInvalidInput
		}
		next[policy.PolicyID] = policy
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policies = next
	return nil
}
