package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"abroadctl/internal/models"
)

// Aggregation must produce one entry per student, in order, substituting an
// empty applications list where the per-student fetch failed.
func TestListWithApplicationsPartialFailure(t *testing.T) {
	students := []models.Student{
		{ID: "1", Name: "Amira"},
		{ID: "2", Name: "Bakary"},
		{ID: "3", Name: "Chen"},
	}
	router := mux.NewRouter()
	router.HandleFunc("/api/students", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(students)
	})
	router.HandleFunc("/api/students/{id}/applications", func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		if id == "2" {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": "boom"})
			return
		}
		json.NewEncoder(w).Encode([]models.Application{
			{ID: "app-" + id, StudentID: id, University: "EFREI", Status: "pending"},
		})
	})
	server := httptest.NewServer(router)
	defer server.Close()

	service := NewStudentService(NewClient(server.URL, nil, nil))
	overviews, err := service.ListWithApplications(context.Background())
	if err != nil {
		t.Fatalf("ListWithApplications() failed: %v", err)
	}

	if len(overviews) != len(students) {
		t.Fatalf("len(overviews) = %d, want %d", len(overviews), len(students))
	}
	for i, want := range students {
		if overviews[i].Student.ID != want.ID {
			t.Errorf("overviews[%d].Student.ID = %q, want %q", i, overviews[i].Student.ID, want.ID)
		}
	}
	if len(overviews[0].Applications) != 1 || overviews[0].Applications[0].ID != "app-1" {
		t.Errorf("overviews[0].Applications = %v, want one app-1", overviews[0].Applications)
	}
	if overviews[1].Applications == nil {
		t.Error("overviews[1].Applications is nil, want empty slice")
	}
	if len(overviews[1].Applications) != 0 {
		t.Errorf("overviews[1].Applications = %v, want empty", overviews[1].Applications)
	}
	if len(overviews[2].Applications) != 1 || overviews[2].Applications[0].ID != "app-3" {
		t.Errorf("overviews[2].Applications = %v, want one app-3", overviews[2].Applications)
	}
}

func TestListWithApplicationsListFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	service := NewStudentService(NewClient(server.URL, nil, nil))
	if _, err := service.ListWithApplications(context.Background()); err == nil {
		t.Error("ListWithApplications() = nil error, want failure when the list fetch fails")
	}
}
