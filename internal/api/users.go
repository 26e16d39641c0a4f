package api

import (
	"context"
	"io"

	"abroadctl/internal/models"
)

// UserService wraps the /api/users endpoints.
type UserService struct {
	client *Client
}

// NewUserService returns a UserService issuing calls through c.
func NewUserService(c *Client) *UserService { return &UserService{client: c} }

// Profile fetches the current user's profile.
func (s *UserService) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.client.Get(ctx, "/api/users/profile", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile replaces the current user's profile and returns the updated
// record.
func (s *UserService) UpdateProfile(ctx context.Context, user models.User) (*models.User, error) {
	var updated models.User
	if err := s.client.Put(ctx, "/api/users/profile", user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// UploadAvatar sends a new avatar image as multipart/form-data.
func (s *UserService) UploadAvatar(ctx context.Context, filename string, r io.Reader) (*models.User, error) {
	var user models.User
	if err := s.client.Upload(ctx, "/api/users/avatar", nil, "avatar", filename, r, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Settings fetches the current user's settings.
func (s *UserService) Settings(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	if err := s.client.Get(ctx, "/api/users/settings", &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings replaces the current user's settings.
func (s *UserService) UpdateSettings(ctx context.Context, settings models.Settings) (*models.Settings, error) {
	var updated models.Settings
	if err := s.client.Put(ctx, "/api/users/settings", settings, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ChangePassword changes the current user's password.
func (s *UserService) ChangePassword(ctx context.Context, current, next string) error {
	body := map[string]string{"currentPassword": current, "newPassword": next}
	return s.client.Put(ctx, "/api/users/change-password", body, nil)
}
