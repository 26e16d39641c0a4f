package api

import (
	"context"

	"abroadctl/internal/models"
)

// ApplicationService wraps the /api/applications endpoints.
type ApplicationService struct {
	client *Client
}

// NewApplicationService returns an ApplicationService issuing calls through c.
func NewApplicationService(c *Client) *ApplicationService {
	return &ApplicationService{client: c}
}

// List fetches all applications visible to the current user.
func (s *ApplicationService) List(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	if err := s.client.Get(ctx, "/api/applications", &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// Get fetches one application by ID.
func (s *ApplicationService) Get(ctx context.Context, id string) (*models.Application, error) {
	var app models.Application
	if err := s.client.Get(ctx, "/api/applications/"+id, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// Create submits a new application.
func (s *ApplicationService) Create(ctx context.Context, app models.Application) (*models.Application, error) {
	var created models.Application
	if err := s.client.Post(ctx, "/api/applications", app, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces an application.
func (s *ApplicationService) Update(ctx context.Context, id string, app models.Application) (*models.Application, error) {
	var updated models.Application
	if err := s.client.Put(ctx, "/api/applications/"+id, app, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete withdraws an application.
func (s *ApplicationService) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/api/applications/"+id)
}

// PayFee records payment of the application fee. Fee computation and status
// transitions are the backend's business.
func (s *ApplicationService) PayFee(ctx context.Context, id string) (*models.Application, error) {
	var app models.Application
	if err := s.client.Post(ctx, "/api/applications/"+id+"/pay-fee", nil, &app); err != nil {
		return nil, err
	}
	return &app, nil
}
