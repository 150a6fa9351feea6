package driven

import (
	"context"

	"github.com/qispark/chatpick/internal/core/domain"
)

// PersonalDetailStore exposes the user profile snapshot, keyed by login.
type PersonalDetailStore interface {
	// All returns every known profile, keyed by login.
	All(ctx context.Context) (map[string]domain.PersonalDetail, error)

	// Get retrieves a profile by login.
	Get(ctx context.Context, login string) (*domain.PersonalDetail, error)

	// Save stores or updates a profile.
	Save(ctx context.Context, detail domain.PersonalDetail) error
}
