package file

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/qispark/chatpick/internal/core/domain"
	"github.com/qispark/chatpick/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// sessionFile is the on-disk TOML shape of a session.
type sessionFile struct {
	Login       string   `toml:"login"`
	Betas       []string `toml:"betas"`
	Locale      string   `toml:"locale"`
	CountryCode string   `toml:"country_code"`
}

// SessionStore is a file-based implementation of driven.SessionStore using
// TOML. The session is stored in a single file within the chatpick config
// directory.
type SessionStore struct {
	mu       sync.Mutex
	filePath string
}

// NewSessionStore creates a new TOML-based session store.
// If configDir is empty, defaults to ~/.chatpick/session.toml.
func NewSessionStore(configDir string) (*SessionStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".chatpick")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &SessionStore{
		filePath: filepath.Join(configDir, "session.toml"),
	}, nil
}

// Load reads the stored session. A missing file or an empty login means no
// user is configured.
func (s *SessionStore) Load() (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Session{}, domain.ErrNoSession
		}
		return domain.Session{}, err
	}

	var stored sessionFile
	if err := toml.Unmarshal(data, &stored); err != nil {
		return domain.Session{}, err
	}
	if stored.Login == "" {
		return domain.Session{}, domain.ErrNoSession
	}

	session := domain.Session{
		CurrentUserLogin: stored.Login,
		Locale:           stored.Locale,
		CountryCode:      stored.CountryCode,
	}
	for _, beta := range stored.Betas {
		session.Betas = append(session.Betas, domain.Beta(beta))
	}
	return session, nil
}

// Save persists the session.
func (s *SessionStore) Save(session domain.Session) error {
	if session.CurrentUserLogin == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := sessionFile{
		Login:       session.CurrentUserLogin,
		Locale:      session.Locale,
		CountryCode: session.CountryCode,
	}
	for _, beta := range session.Betas {
		stored.Betas = append(stored.Betas, string(beta))
	}

	data, err := toml.Marshal(stored)
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the backing file path.
func (s *SessionStore) Path() string {
	return s.filePath
}
