package api

import (
	"context"
	"sync"

	"abroadctl/internal/models"
)

// StudentService wraps the /api/students endpoints.
type StudentService struct {
	client *Client
}

// NewStudentService returns a StudentService issuing calls through c.
func NewStudentService(c *Client) *StudentService { return &StudentService{client: c} }

// List fetches all students visible to the current user.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := s.client.Get(ctx, "/api/students", &students); err != nil {
		return nil, err
	}
	return students, nil
}

// Get fetches one student by ID.
func (s *StudentService) Get(ctx context.Context, id string) (*models.Student, error) {
	var student models.Student
	if err := s.client.Get(ctx, "/api/students/"+id, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// Profile fetches the student record belonging to the current user.
func (s *StudentService) Profile(ctx context.Context) (*models.Student, error) {
	var student models.Student
	if err := s.client.Get(ctx, "/api/students/profile", &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// Create registers a new student record.
func (s *StudentService) Create(ctx context.Context, student models.Student) (*models.Student, error) {
	var created models.Student
	if err := s.client.Post(ctx, "/api/students", student, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a student record.
func (s *StudentService) Update(ctx context.Context, id string, student models.Student) (*models.Student, error) {
	var updated models.Student
	if err := s.client.Put(ctx, "/api/students/"+id, student, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a student record.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/api/students/"+id)
}

// Applications fetches the applications belonging to one student.
func (s *StudentService) Applications(ctx context.Context, id string) ([]models.Application, error) {
	var apps []models.Application
	if err := s.client.Get(ctx, "/api/students/"+id+"/applications", &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// Documents fetches the documents belonging to one student.
func (s *StudentService) Documents(ctx context.Context, id string) ([]models.Document, error) {
	var docs []models.Document
	if err := s.client.Get(ctx, "/api/students/"+id+"/documents", &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// ListWithApplications fetches the student list and each student's
// applications. The per-student fetches run concurrently; a failure for one
// student yields an empty applications slice at that position and does not
// fail the aggregation. Result order matches the student list.
func (s *StudentService) ListWithApplications(ctx context.Context) ([]models.StudentOverview, error) {
	students, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	overviews := make([]models.StudentOverview, len(students))
	var wg sync.WaitGroup
	for i, student := range students {
		overviews[i].Student = student
		overviews[i].Applications = []models.Application{}
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			apps, err := s.Applications(ctx, id)
			if err != nil {
				s.client.log.Warn("applications fetch failed, using empty list", "student_id", id, "error", err)
				return
			}
			if apps != nil {
				overviews[i].Applications = apps
			}
		}(i, student.ID)
	}
	wg.Wait()
	return overviews, nil
}
