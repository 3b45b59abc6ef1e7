package authsdk

import "time"

// Seeded role ids accepted by Signup.
const (
	RoleIDAdmin   int64 = 1
	RoleIDRegular int64 = 2
)

// MessageResponse is the body of every non-data response, success or error.
type MessageResponse struct {
	Message string `json:"message"`
}

// ============================================================================
// Auth Types
// ============================================================================

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Username string `json:"username" example:"alice"`
	Email    string `json:"email"    example:"alice@example.com"`
	Password string `json:"password" example:"Secret12"`

	// RoleID is stored as given: 1 is Admin, 2 is Regular.
	RoleID int64 `json:"roleId" example:"2"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"Secret12"`
}

// TokenResponse carries the signed session token.
type TokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// ============================================================================
// Movie Types
// ============================================================================

// MovieRequest is the body of create and update calls.
type MovieRequest struct {
	Title       string `json:"title"       example:"Alien"`
	Director    string `json:"director"    example:"Ridley Scott"`
	ReleaseYear string `json:"releaseYear" example:"1979"`
	Description string `json:"description" example:"In space no one can hear you scream."`
}

type MovieResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Director    string    `json:"director"`
	ReleaseYear string    `json:"releaseYear"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`

	// Roles indicates whether the seeded role reference data is present
	Roles string `json:"roles"`
}
