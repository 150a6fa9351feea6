package driven

import (
	"context"

	"github.com/qispark/chatpick/internal/core/domain"
)

// ReportStore exposes the latest report snapshot.
// The backing data is refreshed asynchronously by an external subscription
// mechanism; the pipeline reads whatever is current at call time.
type ReportStore interface {
	// All returns every known report.
	All(ctx context.Context) ([]domain.Report, error)

	// Get retrieves a report by ID.
	Get(ctx context.Context, reportID int64) (*domain.Report, error)

	// Save stores or updates a report.
	Save(ctx context.Context, report domain.Report) error
}

// ReportActionStore exposes the action history snapshot, keyed by report.
// The pipeline uses it for archive-reason lookup and error aggregation.
type ReportActionStore interface {
	// All returns every known action, grouped by report ID.
	All(ctx context.Context) (map[int64][]domain.ReportAction, error)

	// ForReport returns the actions of a single report, most recent last.
	ForReport(ctx context.Context, reportID int64) ([]domain.ReportAction, error)

	// Save stores or updates an action.
	Save(ctx context.Context, action domain.ReportAction) error
}
