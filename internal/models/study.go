package models

import "time"

// Student is a student record managed by advisors and admins.
type Student struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Nationality      string `json:"nationality,omitempty"`
	PassportNumber   string `json:"passportNumber,omitempty"`
	TargetCountry    string `json:"targetCountry,omitempty"`
	TargetUniversity string `json:"targetUniversity,omitempty"`
}

// StudentOverview pairs a student with the applications fetched for them.
// Applications is empty, never nil, when the per-student fetch failed.
type StudentOverview struct {
	Student      Student       `json:"student"`
	Applications []Application `json:"applications"`
}

// Application is a study-abroad application owned by a student.
type Application struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"studentId"`
	University string    `json:"university"`
	Program    string    `json:"program"`
	Country    string    `json:"country"`
	Status     string    `json:"status"`
	FeePaid    bool      `json:"feePaid"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Document is an uploaded file attached to a student.
type Document struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"studentId"`
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}
