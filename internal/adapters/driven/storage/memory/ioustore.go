package memory

import (
	"context"
	"sync"

	"github.com/qispark/chatpick/internal/core/domain"
	"github.com/qispark/chatpick/internal/core/ports/driven"
)

// Ensure IOUReportStore implements the interface.
var _ driven.IOUReportStore = (*IOUReportStore)(nil)

// IOUReportStore is an in-memory implementation of driven.IOUReportStore.
type IOUReportStore struct {
	mu   sync.RWMutex
	ious map[int64]domain.IOUReport
}

// NewIOUReportStore creates a new in-memory IOU report store.
func NewIOUReportStore() *IOUReportStore {
	return &IOUReportStore{
		ious: make(map[int64]domain.IOUReport),
	}
}

// All returns every known IOU aggregate, keyed by report ID.
func (s *IOUReportStore) All(_ context.Context) (map[int64]domain.IOUReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[int64]domain.IOUReport, len(s.ious))
	for id, iou := range s.ious {
		out[id] = iou
	}
	return out, nil
}

// Get retrieves an IOU aggregate by report ID.
func (s *IOUReportStore) Get(_ context.Context, reportID int64) (*domain.IOUReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	iou, ok := s.ious[reportID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &iou, nil
}

// Save stores or updates an IOU aggregate.
func (s *IOUReportStore) Save(_ context.Context, iou domain.IOUReport) error {
	if iou.ReportID == 0 {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ious[iou.ReportID] = iou
	return nil
}

// Replace swaps the entire snapshot in one step.
func (s *IOUReportStore) Replace(_ context.Context, ious []domain.IOUReport) error {
	next := make(map[int64]domain.IOUReport, len(ious))
	for _, iou := range ious {
		if iou.ReportID == 0 {
			return domain.ErrInvalidInput
		}
		next[iou.ReportID] = iou
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ious = next
	return nil
}
