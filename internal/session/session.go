// Package session persists the signed-in partner's credentials between app
// launches: three keys (access token, refresh token, user profile JSON) held
// as files under a storage directory. A session is only restorable when all
// three keys are present.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nashtto/partnerctl/internal/models"
)

const (
	keyAuthToken    = "auth_token"
	keyRefreshToken = "refresh_token"
	keyUserProfile  = "user_profile"
)

// Session is the locally persisted credential set.
type Session struct {
	AccessToken  string
	RefreshToken string
	User         models.UserProfile
}

// Store reads and writes session keys under a directory.
type Store struct {
	dir string
}

// NewStore creates a session store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Save persists all three session keys.
func (s *Store) Save(session Session) error {
	profile, err := json.Marshal(session.User)
	if err != nil {
		return err
	}
	if err := s.writeKey(keyAuthToken, []byte(session.AccessToken)); err != nil {
		return err
	}
	if err := s.writeKey(keyRefreshToken, []byte(session.RefreshToken)); err != nil {
		return err
	}
	return s.writeKey(keyUserProfile, profile)
}

// Load returns the stored session. ok is false when any of the three keys is
// missing; a partial session is never returned.
func (s *Store) Load() (session Session, ok bool, err error) {
	token, err := s.readKey(keyAuthToken)
	if err != nil {
		return Session{}, false, err
	}
	refresh, err := s.readKey(keyRefreshToken)
	if err != nil {
		return Session{}, false, err
	}
	profile, err := s.readKey(keyUserProfile)
	if err != nil {
		return Session{}, false, err
	}
	if token == nil || refresh == nil || profile == nil {
		return Session{}, false, nil
	}

	var user models.UserProfile
	if err := json.Unmarshal(profile, &user); err != nil {
		return Session{}, false, err
	}
	return Session{
		AccessToken:  string(token),
		RefreshToken: string(refresh),
		User:         user,
	}, true, nil
}

// Clear removes every session key. Missing keys are not an error.
func (s *Store) Clear() error {
	for _, key := range []string{keyAuthToken, keyRefreshToken, keyUserProfile} {
		if err := os.Remove(filepath.Join(s.dir, key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

func (s *Store) writeKey(key string, value []byte) error {
	return os.WriteFile(filepath.Join(s.dir, key), value, 0o600)
}

// readKey returns nil with no error when the key does not exist.
func (s *Store) readKey(key string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}
