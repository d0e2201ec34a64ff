// Single read/write boundary for the persisted session token.
// Every authenticated call goes through here instead of reading
// storage ad hoc at the call site.

package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"go-devconnect-cli/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNotLoggedIn = errors.New("not logged in")

// fixed key under the session directory
const sessionFile = "session.json"

type Store struct {
	mu       sync.Mutex
	filePath string
}

type stored struct {
	Session models.Session `json:"session"`
	User    models.Profile `json:"user"`
}

// NewStore creates or opens the session directory
func NewStore(dir string) *Store {
	if err := os.MkdirAll(dir, 0700); err != nil {
		log.Printf("⚠️ Failed to create session directory: %v", err)
	}
	return &Store{filePath: filepath.Join(dir, sessionFile)}
}

func (s *Store) Save(sess models.Session, user models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(stored{Session: sess, User: user}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Current returns the stored session, or ErrNotLoggedIn when no token
// has been saved yet.
func (s *Store) Current() (models.Session, error) {
	st, err := s.load()
	if err != nil {
		return models.Session{}, err
	}
	return st.Session, nil
}

// User returns the profile captured at login time.
func (s *Store) User() (models.Profile, error) {
	st, err := s.load()
	if err != nil {
		return models.Profile{}, err
	}
	return st.User, nil
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Role recovers the user type from the access token claims, falling back
// to the profile stored at login. The token is NOT verified here; the API
// is the authority, this is display-side only.
func (s *Store) Role() (models.UserType, error) {
	st, err := s.load()
	if err != nil {
		return "", err
	}

	if ut := claimString(st.Session.AccessToken, "user_type"); ut != "" {
		return models.UserType(ut), nil
	}
	if st.User.UserType != "" {
		return st.User.UserType, nil
	}
	return "", fmt.Errorf("session has no user type")
}

// UserID prefers the token subject over the stored profile id.
func (s *Store) UserID() (string, error) {
	st, err := s.load()
	if err != nil {
		return "", err
	}

	if sub := claimString(st.Session.AccessToken, "sub"); sub != "" {
		return sub, nil
	}
	return st.User.ID, nil
}

func (s *Store) load() (stored, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var st stored
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return st, ErrNotLoggedIn
		}
		return st, fmt.Errorf("failed to read session file: %w", err)
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return st, fmt.Errorf("failed to parse session file: %w", err)
	}
	if st.Session.AccessToken == "" {
		return st, ErrNotLoggedIn
	}
	return st, nil
}

// claimString pulls a string claim out of a JWT without verifying it,
// checking top-level claims first and then the user_metadata object the
// auth provider nests custom fields under.
func claimString(token, key string) string {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return ""
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}

	if v, ok := claims[key].(string); ok {
		return v
	}
	if meta, ok := claims["user_metadata"].(map[string]interface{}); ok {
		if v, ok := meta[key].(string); ok {
			return v
		}
	}
	return ""
}
