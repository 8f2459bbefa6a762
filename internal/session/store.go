package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/sakthiprasad2004/warehouse-manager/internal/logger"
	"github.com/sakthiprasad2004/warehouse-manager/internal/models"
	"go.uber.org/zap"
)

// identityFileName is the single well-known storage key the identity
// blob lives under. Absence of the file means unauthenticated.
const identityFileName = "identity.json"

// Store holds the process-wide session identity and persists it across
// runs. It is injected into the data-access layer instead of being read
// from ambient storage, so its lifecycle is explicit: Init on auth
// success, Clear on logout or auth failure.
type Store struct {
	mu      sync.Mutex
	path    string
	current *models.Identity
}

var _ models.SessionStore = (*Store)(nil)

// DefaultPath returns the identity file location under the user's
// configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "warehouse-manager", identityFileName), nil
}

// NewStore opens the store at path, loading a previously persisted
// identity if one exists. A missing or unreadable blob leaves the store
// unauthenticated rather than failing.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("session store path is empty")
	}

	store := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read identity file: %w", err)
		}
		return store, nil
	}

	var identity models.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		logger.Log.Warn("discarding unreadable identity blob", zap.String("path", path), zap.Error(err))
		return store, nil
	}

	store.current = &identity

	return store, nil
}

// Current returns a copy of the stored identity, or nil when the session
// is unauthenticated.
func (s *Store) Current() *models.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}

	identity := *s.current
	return &identity
}

// Init persists identity and makes it the session's current one. Called
// on login or registration success.
func (s *Store) Init(identity models.Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to marshal identity: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write identity file: %w", err)
	}

	s.mu.Lock()
	s.current = &identity
	s.mu.Unlock()

	logger.Log.Info("session initialized", zap.Int64("userID", identity.ID))

	return nil
}

// Clear removes the persisted identity. Clearing an already empty store
// is a no-op.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove identity file: %w", err)
	}

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	return nil
}
