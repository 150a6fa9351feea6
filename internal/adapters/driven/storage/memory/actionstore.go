package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/qispark/chatpick/internal/core/domain"
	"github.com/qispark/chatpick/internal/core/ports/driven"
)

// Ensure ReportActionStore implements the interface.
var _ driven.ReportActionStore = (*ReportActionStore)(nil)

// ReportActionStore is an in-memory implementation of driven.ReportActionStore.
type ReportActionStore struct {
	mu      sync.RWMutex
	actions map[int64][]domain.ReportAction
}

// NewReportActionStore creates a new in-memory report action store.
func NewReportActionStore() *ReportActionStore {
	return &ReportActionStore{
		actions: make(map[int64][]domain.ReportAction),
	}
}

// All returns every known action, grouped by report ID.
func (s *ReportActionStore) All(_ context.Context) (map[int64][]domain.ReportAction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[int64][]domain.ReportAction, len(s.actions))
	for reportID, actions := range s.actions {
		copied := make([]domain.ReportAction, len(actions))
		copy(copied, actions)
		out[reportID] = copied
	}
	return out, nil
}

// ForReport returns the actions of a single report, most recent last.
func (s *ReportActionStore) ForReport(_ context.Context, reportID int64) ([]domain.ReportAction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	actions, ok := s.actions[reportID]
	if !ok {
		return nil, nil
	}
	copied := make([]domain.ReportAction, len(actions))
	copy(copied, actions)
	return copied, nil
}

// Save stores or updates an action, keeping the report's history ordered by
// timestamp.
func (s *ReportActionStore) Save(_ context.Context, action domain.ReportAction) error {
	if action.ActionID == "" || action.ReportID == 0 {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	actions := s.actions[action.ReportID]
	replaced := false
	for i := range actions {
		if actions[i].ActionID == action.ActionID {
			actions[i] = action
			replaced = true
			break
		}
	}
	if !replaced {
		actions = append(actions, action)
	}
	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Timestamp < actions[j].Timestamp
	})
	s.actions[action.ReportID] = actions
	return nil
}

// Replace swaps the entire snapshot in one step.
func (s *ReportActionStore) Replace(_ context.Context, actions []domain.ReportAction) error {
	next := make(map[int64][]domain.ReportAction)
	for _, action := range actions {
		if action.ActionID == "" || action.ReportID == 0 {
			return domain.ErrInvalidInput
		}
		next[action.ReportID] = append(next[action.ReportID], action)
	}
	for reportID := range next {
		history := next[reportID]
		sort.SliceStable(history, func(i, j int) bool {
			return history[i].Timestamp < history[j].Timestamp
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions = next
	return nil
}
