package models

import "time"

// Database type constants
const (
	DBTypeSQLite   = "sqlite"
	DBTypePostgres = "postgres"
)

// Request types

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Rating and Episodes are pointers so a missing field is
// distinguishable from a legitimate zero value.
type AnimeRequest struct {
	Title    string   `json:"title"`
	Rating   *float64 `json:"rating"`
	Episodes *int     `json:"episodes"`
	ImageURL *string  `json:"imageUrl"`
}

// Response types

type SessionResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ListAnimeResponse struct {
	Anime []AnimeListEntry `json:"anime"`
	Count int              `json:"count"`
}

type DeleteAnimeResponse struct {
	Success bool `json:"success"`
}

// Domain types

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"createdAt"`
}

type Anime struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Rating          float64    `json:"rating"`
	Episodes        int        `json:"episodes"`
	ImageURL        *string    `json:"imageUrl,omitempty"`
	PopularityScore float64    `json:"popularityScore"`
	OwnerID         string     `json:"-"` // Never expose in JSON
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

// AnimeListEntry decorates a record with a human-readable age for
// list views ("3 days ago").
type AnimeListEntry struct {
	Anime
	Added string `json:"added"`
}

// Identity is the authenticated caller, as established by the auth
// middleware. Ownership checks use UserID, never the email.
type Identity struct {
	UserID string
	Email  string
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
