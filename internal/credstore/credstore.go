// Package credstore persists the signed-in session: the bearer token and the
// cached user record, stored as JSON under two fixed keys. It is the only
// state the client keeps between runs.
package credstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/pkg/apperrors"
)

// Storage keys. Fixed so sessions survive client upgrades.
const (
	tokenKey = "alumnisphere_token"
	userKey  = "alumnisphere_user"
)

// Store is a file-backed credential store. Safe for concurrent use.
type Store struct {
	mu   sync.Mutex
	path string
}

// DefaultPath returns the per-user credentials file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(dir, "alumnisphere", "credentials.json"), nil
}

// New creates a store backed by the file at path. An empty path selects
// DefaultPath. The file is created lazily on first write.
func New(path string) (*Store, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &Store{path: path}, nil
}

// Token returns the stored bearer token. apperrors.ErrNoStoredToken means no
// session is saved; callers decide whether that is fatal.
func (s *Store) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return "", err
	}

	raw, ok := entries[tokenKey]
	if !ok {
		return "", apperrors.ErrNoStoredToken
	}

	var token string
	if err := json.Unmarshal(raw, &token); err != nil {
		return "", fmt.Errorf("decoding stored token: %w", err)
	}
	if token == "" {
		return "", apperrors.ErrNoStoredToken
	}
	return token, nil
}

// SetToken stores the bearer token.
func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.update(func(entries map[string]json.RawMessage) error {
		raw, err := json.Marshal(token)
		if err != nil {
			return err
		}
		entries[tokenKey] = raw
		return nil
	})
}

// User returns the cached user record saved at login.
func (s *Store) User() (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return nil, err
	}

	raw, ok := entries[userKey]
	if !ok {
		return nil, apperrors.ErrNoStoredUser
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("decoding stored user: %w", err)
	}
	return &user, nil
}

// SetUser caches the user record.
func (s *Store) SetUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.update(func(entries map[string]json.RawMessage) error {
		raw, err := json.Marshal(user)
		if err != nil {
			return err
		}
		entries[userKey] = raw
		return nil
	})
}

// SetSession stores token and user together, as login does.
func (s *Store) SetSession(token string, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.update(func(entries map[string]json.RawMessage) error {
		rawToken, err := json.Marshal(token)
		if err != nil {
			return err
		}
		rawUser, err := json.Marshal(user)
		if err != nil {
			return err
		}
		entries[tokenKey] = rawToken
		entries[userKey] = rawUser
		return nil
	})
}

// Clear removes the stored session. Missing file is not an error.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clearing credentials: %w", err)
	}
	return nil
}

// TokenExpiry reads the exp claim of the stored token without verifying the
// signature; only the server can do that. A token with no exp claim yields a
// zero time.
func (s *Store) TokenExpiry() (time.Time, error) {
	token, err := s.Token()
	if err != nil {
		return time.Time{}, err
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, apperrors.NewCustomError(apperrors.ErrTokenInvalid, "stored token is not a valid JWT")
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}
	return claims.ExpiresAt.Time, nil
}

// TokenExpired reports whether the stored token carries an exp claim in the
// past. A missing token counts as expired.
func (s *Store) TokenExpired(now time.Time) bool {
	expiry, err := s.TokenExpiry()
	if err != nil {
		return true
	}
	if expiry.IsZero() {
		return false
	}
	return expiry.Before(now)
}

// load reads the credentials file. A missing file is an empty store.
func (s *Store) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading credentials: %w", err)
	}

	entries := map[string]json.RawMessage{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("parsing credentials: %w", err)
		}
	}
	return entries, nil
}

// update applies fn to the current entries and writes them back with
// owner-only permissions.
func (s *Store) update(fn func(map[string]json.RawMessage) error) error {
	entries, err := s.load()
	if err != nil {
		return err
	}

	if err := fn(entries); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding credentials: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating credentials dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing credentials: %w", err)
	}
	return nil
}
