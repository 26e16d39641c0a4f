package models

// Role identifies what a user is allowed to see and do. The backend is the
// authority; the client only uses roles to gate navigation and views.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdvisor Role = "advisor"
	RoleAdmin   Role = "admin"
)

// User is the authenticated identity returned by the auth endpoints and
// cached locally between runs.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// Settings holds the per-user preferences exposed by /api/users/settings.
type Settings struct {
	Notifications bool   `json:"notifications"`
	Language      string `json:"language"`
}

// AuthResponse is the payload returned by the login and register endpoints.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
