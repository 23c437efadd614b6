package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRequiresCredentials(t *testing.T) {
	svc := NewAuthService(nil)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "both empty", email: "", password: ""},
		{name: "blank email", email: "   ", password: "secret"},
		{name: "empty password", email: "owner@example.com", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.email, tt.password)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, 422, apiErr.Status)
			assert.Equal(t, "Email and password are required", apiErr.Message)
		})
	}
}

func TestLoginIssuesMockSession(t *testing.T) {
	svc := NewAuthService(nil)

	resp, err := svc.Login(context.Background(), "owner@spicegarden.example", "secret")
	require.NoError(t, err)

	assert.Equal(t, "owner@spicegarden.example", resp.User.Email)
	assert.Equal(t, "Restaurant Owner", resp.User.Name)
	assert.Equal(t, "1", resp.User.VendorID)
	assert.Contains(t, resp.User.Roles, "VENDOR")
	assert.Equal(t, "mock_access_token", resp.Tokens.AccessToken)
	assert.Equal(t, "mock_refresh_token", resp.Tokens.RefreshToken)
	assert.Equal(t, 3600, resp.Tokens.ExpiresIn)
}

func TestRefresh(t *testing.T) {
	svc := NewAuthService(nil)

	token, err := svc.Refresh(context.Background(), "mock_refresh_token", "current_token")
	require.NoError(t, err)
	assert.Equal(t, "current_token", token)

	_, err = svc.Refresh(context.Background(), "", "current_token")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)
}
