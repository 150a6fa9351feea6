package driven

import (
	"github.com/qispark/chatpick/internal/core/domain"
)

// SessionStore persists the signed-in user's context (login, betas, locale,
// country code) between runs.
type SessionStore interface {
	// Load reads the stored session. Returns domain.ErrNoSession when no
	// user is configured.
	Load() (domain.Session, error)

	// Save persists the session.
	Save(session domain.Session) error

	// Path returns the backing file path.
	Path() string
}
