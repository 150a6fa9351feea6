package driven

import (
	"context"

	"github.com/qispark/chatpick/internal/core/domain"
)

// PolicyStore exposes the workspace snapshot, used for room naming and
// plan-type queries.
type PolicyStore interface {
	// All returns every known workspace, keyed by policy ID.
	All(ctx context.Context) (map[string]domain.Policy, error)

	// Get retrieves a workspace by policy ID.
	Get(ctx context.Context, policyID string) (*domain.Policy, error)

	// Save stores or updates a workspace.
	Save(ctx context.Context, policy domain.Policy) error
}

// IOUReportStore exposes the debt aggregate snapshot, keyed by report ID.
type IOUReportStore interface {
	// All returns every known IOU aggregate, keyed by report ID.
	All(ctx context.Context) (map[int64]domain.IOUReport, error)

	// Get retrieves an IOU aggregate by report ID.
	Get(ctx context.Context, reportID int64) (*domain.IOUReport, error)

	// Save stores or updates an IOU aggregate.
	Save(ctx context.Context, iou domain.IOUReport) error
}
