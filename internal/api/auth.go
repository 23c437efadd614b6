package api

import (
	"context"
	"strings"

	"github.com/nashtto/partnerctl/internal/models"
)

// AuthService issues credentials. The backend does not serve authentication
// yet, so Login returns a fixed mock response for any well-formed credential
// pair; the rest of the app treats the result exactly as it will treat the
// real one.
type AuthService struct {
	client *Client
}

// NewAuthService creates an auth service over the given transport client.
func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// Login exchanges credentials for a token pair and profile.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.LoginResponse, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return models.LoginResponse{}, &APIError{
			Status:  422,
			Message: "Email and password are required",
		}
	}

	// Mocked until the backend exposes /auth/login.
	return models.LoginResponse{
		User: models.UserProfile{
			ID:       "550e8400-e29b-41d4-a716-446655440000",
			Email:    email,
			Name:     "Restaurant Owner",
			VendorID: "1",
			Roles:    []string{"VENDOR", "BRANCH_MANAGER"},
		},
		Tokens: models.AuthTokens{
			AccessToken:  "mock_access_token",
			RefreshToken: "mock_refresh_token",
			ExpiresIn:    3600,
		},
	}, nil
}

// Refresh exchanges a refresh token for a new access token. Mocked: the
// current token is echoed back until the backend exposes token refresh.
func (s *AuthService) Refresh(ctx context.Context, refreshToken, currentAccessToken string) (string, error) {
	if refreshToken == "" {
		return "", &APIError{Status: 401, Message: "Your session has expired. Please log in again."}
	}
	return currentAccessToken, nil
}
