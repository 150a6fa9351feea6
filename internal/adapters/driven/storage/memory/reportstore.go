package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/qispark/chatpick/internal/core/domain"
	"github.com/qispark/chatpick/internal/core/ports/driven"
)

// Ensure ReportStore implements the interface.
var _ driven.ReportStore = (*ReportStore)(nil)

// ReportStore is an in-memory implementation of driven.ReportStore.
type ReportStore struct {
	mu      sync.RWMutex
	reports map[int64]domain.Report
}

// NewReportStore creates a new in-memory report store.
func NewReportStore() *ReportStore {
	return &ReportStore{
		reports: make(map[int64]domain.Report),
	}
}

// All returns every known report, ordered by report ID for determinism.
func (s *ReportStore) All(_ context.Context) ([]domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reports := make([]domain.Report, 0, len(s.reports))
	for _, report := range s.reports {
		reports = append(reports, report)
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].ReportID < reports[j].ReportID
	})
	return reports, nil
}

// Get retrieves a report by ID.
func (s *ReportStore) Get(_ context.Context, reportID int64) (*domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report, ok := s.reports[reportID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &report, nil
}

// Save stores or updates a report.
func (s *ReportStore) Save(_ context.Context, report domain.Report) error {
	if report.ReportID == 0 {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[report.ReportID] = report
	return nil
}

// Replace swaps the entire snapshot in one step. Used by asynchronous
// refreshers so readers never observe a half-loaded state.
func (s *ReportStore) Replace(_ context.Context, reports []domain.Report) error {
	next := make(map[int64]domain.Report, len(reports))
	for _, report := range reports {
		if report.ReportID == 0 {
			return domain.ErrInvalidInput
		}
		next[report.ReportID] = report
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = next
	return nil
}
