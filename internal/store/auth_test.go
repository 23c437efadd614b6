package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nashtto/partnerctl/internal/api"
	"github.com/nashtto/partnerctl/internal/session"
)

func newAuthStore(t *testing.T) (*AuthStore, *TokenHolder, *session.Store, string) {
	t.Helper()
	dir := t.TempDir()
	sessions, err := session.NewStore(dir)
	require.NoError(t, err)
	tokens := &TokenHolder{}
	store := NewAuthStore(api.NewAuthService(nil), sessions, tokens, testLogger())
	return store, tokens, sessions, dir
}

func TestAuthInitialState(t *testing.T) {
	store, tokens, _, _ := newAuthStore(t)

	state := store.State()
	assert.False(t, state.IsAuthenticated)
	assert.True(t, state.IsFirstTime)
	assert.Nil(t, state.User)
	assert.Empty(t, tokens.Token())
}

func TestLoginPersistsSession(t *testing.T) {
	store, tokens, sessions, dir := newAuthStore(t)

	require.NoError(t, store.Login(context.Background(), "owner@example.com", "secret"))

	state := store.State()
	assert.True(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.Err)
	require.NotNil(t, state.User)
	assert.Equal(t, "owner@example.com", state.User.Email)
	assert.Equal(t, "1", state.User.RestaurantID, "vendor id maps onto the app user")
	assert.Equal(t, "mock_access_token", state.Token)
	assert.Equal(t, "mock_access_token", tokens.Token())

	for _, key := range []string{"auth_token", "refresh_token", "user_profile"} {
		_, err := os.Stat(filepath.Join(dir, key))
		assert.NoError(t, err, "%s must be written on login", key)
	}

	stored, ok, err := sessions.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "mock_access_token", stored.AccessToken)
}

func TestLoginFailureClearsState(t *testing.T) {
	store, tokens, _, _ := newAuthStore(t)

	err := store.Login(context.Background(), "", "")
	require.Error(t, err)

	state := store.State()
	assert.False(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)
	assert.Equal(t, "Email and password are required", state.Err)
	assert.Nil(t, state.User)
	assert.Empty(t, tokens.Token())
}

func TestRestore(t *testing.T) {
	store, _, sessions, _ := newAuthStore(t)
	require.NoError(t, store.Login(context.Background(), "owner@example.com", "secret"))

	// A fresh store over the same directory picks up the persisted session.
	tokens := &TokenHolder{}
	restoredStore := NewAuthStore(api.NewAuthService(nil), sessions, tokens, testLogger())

	restored, err := restoredStore.Restore()
	require.NoError(t, err)
	require.True(t, restored)

	state := restoredStore.State()
	assert.True(t, state.IsAuthenticated)
	assert.False(t, state.IsFirstTime, "a restorable session means the app has run before")
	require.NotNil(t, state.User)
	assert.Equal(t, "owner@example.com", state.User.Email)
	assert.Equal(t, "mock_access_token", tokens.Token())
}

func TestRestoreWithoutSession(t *testing.T) {
	store, tokens, _, _ := newAuthStore(t)

	restored, err := store.Restore()
	require.NoError(t, err)
	assert.False(t, restored)

	state := store.State()
	assert.False(t, state.IsAuthenticated)
	assert.True(t, state.IsFirstTime, "an empty store must not flip the first-time flag")
	assert.Empty(t, tokens.Token())
}

func TestLogout(t *testing.T) {
	store, tokens, sessions, _ := newAuthStore(t)
	require.NoError(t, store.Login(context.Background(), "owner@example.com", "secret"))

	require.NoError(t, store.Logout())

	state := store.State()
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)
	assert.Empty(t, state.Token)
	assert.Empty(t, tokens.Token())

	_, ok, err := sessions.Load()
	require.NoError(t, err)
	assert.False(t, ok, "logout clears the persisted session")
}
