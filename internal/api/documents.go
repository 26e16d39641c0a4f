package api

import (
	"context"
	"io"

	"abroadctl/internal/models"
)

// DocumentService wraps the /api/documents endpoints.
type DocumentService struct {
	client *Client
}

// NewDocumentService returns a DocumentService issuing calls through c.
func NewDocumentService(c *Client) *DocumentService { return &DocumentService{client: c} }

// List fetches all documents visible to the current user.
func (s *DocumentService) List(ctx context.Context) ([]models.Document, error) {
	var docs []models.Document
	if err := s.client.Get(ctx, "/api/documents", &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Get fetches one document by ID.
func (s *DocumentService) Get(ctx context.Context, id string) (*models.Document, error) {
	var doc models.Document
	if err := s.client.Get(ctx, "/api/documents/"+id, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Upload sends a document as multipart/form-data with the studentId and
// type form fields the backend expects.
func (s *DocumentService) Upload(ctx context.Context, studentID, docType, filename string, r io.Reader) (*models.Document, error) {
	fields := map[string]string{
		"studentId": studentID,
		"type":      docType,
	}
	var doc models.Document
	if err := s.client.Upload(ctx, "/api/documents/upload", fields, "file", filename, r, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Delete removes a document.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/api/documents/"+id)
}
