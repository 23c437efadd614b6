package store

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/nashtto/partnerctl/internal/api"
	"github.com/nashtto/partnerctl/internal/models"
	"github.com/nashtto/partnerctl/internal/session"
)

// AuthState is a snapshot of the auth slice.
type AuthState struct {
	User            *models.FrontendUser
	IsAuthenticated bool
	IsLoading       bool
	Token           string
	IsFirstTime     bool
	Err             string
}

// TokenHolder is the mutable bearer token shared with the transport client.
// The auth store writes it on login/restore/logout; the client reads it per
// request.
type TokenHolder struct {
	mu    sync.RWMutex
	token string
}

// Token returns the current bearer token, empty when signed out.
func (h *TokenHolder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Set replaces the bearer token.
func (h *TokenHolder) Set(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

var _ api.TokenSource = (*TokenHolder)(nil)

// AuthStore owns the authentication slice and the persisted session.
type AuthStore struct {
	mu       sync.RWMutex
	state    AuthState
	auth     *api.AuthService
	sessions *session.Store
	tokens   *TokenHolder
	log      *logrus.Logger
}

// NewAuthStore creates an auth store. tokens is shared with the transport
// client so every authenticated request picks up the live token.
func NewAuthStore(auth *api.AuthService, sessions *session.Store, tokens *TokenHolder, log *logrus.Logger) *AuthStore {
	return &AuthStore{
		state:    AuthState{IsFirstTime: true},
		auth:     auth,
		sessions: sessions,
		tokens:   tokens,
		log:      log,
	}
}

// State returns a copy of the current slice state.
func (s *AuthStore) State() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state := s.state
	if s.state.User != nil {
		user := *s.state.User
		state.User = &user
	}
	return state
}

// SetFirstTime records whether the onboarding flow should run.
func (s *AuthStore) SetFirstTime(firstTime bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsFirstTime = firstTime
}

// Login exchanges credentials for a session, persists it, and marks the
// slice authenticated.
func (s *AuthStore) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	s.state.IsLoading = true
	s.state.Err = ""
	s.mu.Unlock()

	resp, err := s.auth.Login(ctx, email, password)
	if err != nil {
		s.log.WithError(err).Warn("login failed")
		s.mu.Lock()
		s.state.IsLoading = false
		s.state.IsAuthenticated = false
		s.state.User = nil
		s.state.Token = ""
		s.state.Err = errorMessage(err)
		s.mu.Unlock()
		return err
	}

	if err := s.sessions.Save(session.Session{
		AccessToken:  resp.Tokens.AccessToken,
		RefreshToken: resp.Tokens.RefreshToken,
		User:         resp.User,
	}); err != nil {
		s.log.WithError(err).Error("failed to persist session")
	}

	user := profileToUser(resp.User)
	s.tokens.Set(resp.Tokens.AccessToken)
	s.mu.Lock()
	s.state.IsLoading = false
	s.state.IsAuthenticated = true
	s.state.User = &user
	s.state.Token = resp.Tokens.AccessToken
	s.mu.Unlock()
	return nil
}

// Logout clears the persisted session and resets the slice.
func (s *AuthStore) Logout() error {
	err := s.sessions.Clear()
	if err != nil {
		s.log.WithError(err).Error("failed to clear session")
	}
	s.tokens.Set("")
	s.mu.Lock()
	s.state.User = nil
	s.state.IsAuthenticated = false
	s.state.Token = ""
	s.mu.Unlock()
	return err
}

// Restore loads a previously persisted session. It reports false when no
// complete session exists; the slice is only touched on success.
func (s *AuthStore) Restore() (bool, error) {
	stored, ok, err := s.sessions.Load()
	if err != nil || !ok {
		return false, err
	}

	user := profileToUser(stored.User)
	s.tokens.Set(stored.AccessToken)
	s.mu.Lock()
	s.state.User = &user
	s.state.IsAuthenticated = true
	s.state.Token = stored.AccessToken
	s.state.IsFirstTime = false
	s.mu.Unlock()
	return true, nil
}

func profileToUser(profile models.UserProfile) models.FrontendUser {
	return models.FrontendUser{
		ID:           profile.ID,
		Name:         profile.Name,
		Email:        profile.Email,
		RestaurantID: profile.VendorID,
	}
}

func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return fallbackError
	}
	return err.Error()
}
