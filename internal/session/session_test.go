package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nashtto/partnerctl/internal/models"
)

func testSession() Session {
	return Session{
		AccessToken:  "access-abc",
		RefreshToken: "refresh-def",
		User: models.UserProfile{
			ID:       "u-1",
			Email:    "owner@example.com",
			Name:     "Restaurant Owner",
			VendorID: "1",
			Roles:    []string{"VENDOR"},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save(testSession()))

	loaded, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, testSession(), loaded)
}

func TestLoadWithoutSession(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPartialSessionIsNotRestorable(t *testing.T) {
	keys := []string{"auth_token", "refresh_token", "user_profile"}

	for _, missing := range keys {
		t.Run("missing "+missing, func(t *testing.T) {
			dir := t.TempDir()
			store, err := NewStore(dir)
			require.NoError(t, err)
			require.NoError(t, store.Save(testSession()))

			require.NoError(t, os.Remove(filepath.Join(dir, missing)))

			_, ok, err := store.Load()
			require.NoError(t, err)
			assert.False(t, ok, "a session missing %s must not restore", missing)
		})
	}
}

func TestClear(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Save(testSession()))

	require.NoError(t, store.Clear())
	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	// Clearing an already empty store is not an error.
	assert.NoError(t, store.Clear())
}

func TestNewStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "session")
	_, err := NewStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
