package api

import (
	"context"

	"abroadctl/internal/models"
)

// AuthService wraps the authentication endpoints.
type AuthService struct {
	client *Client
}

// NewAuthService returns an AuthService issuing calls through c.
func NewAuthService(c *Client) *AuthService { return &AuthService{client: c} }

// SignupRequest is the registration payload.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// Login exchanges credentials for a token and user record.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp models.AuthResponse
	if err := s.client.Post(ctx, "/api/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and returns the same shape as Login.
func (s *AuthService) Register(ctx context.Context, req SignupRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := s.client.Post(ctx, "/api/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ForgotPassword asks the backend to email a reset code. Step one of the
// three-step reset flow.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	return s.client.Post(ctx, "/api/auth/forgot-password", map[string]string{"email": email}, nil)
}

// VerifyResetCode checks the emailed code. Step two.
func (s *AuthService) VerifyResetCode(ctx context.Context, email, code string) error {
	body := map[string]string{"email": email, "code": code}
	return s.client.Post(ctx, "/api/auth/verify-reset-code", body, nil)
}

// ResetPassword sets a new password using a verified code. Step three.
func (s *AuthService) ResetPassword(ctx context.Context, email, code, password string) error {
	body := map[string]string{"email": email, "code": code, "password": password}
	return s.client.Post(ctx, "/api/auth/reset-password", body, nil)
}
