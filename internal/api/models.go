package api

import (
	"time"

	"github.com/google/uuid"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// CreateAlarmRequest defines the payload for creating an alarm.
// Omitted optional fields fall back to the server-side defaults.
type CreateAlarmRequest struct {
	Name       string `json:"name"        validate:"required"`
	AlarmTime  string `json:"alarm_time"  validate:"required"`
	RepeatType string `json:"repeat_type" validate:"omitempty,oneof=once daily weekdays weekends"`
	SoundType  string `json:"sound_type"  validate:"omitempty"`
	Volume     *int   `json:"volume"      validate:"omitempty,min=0,max=100"`
}

// UpdateAlarmRequest defines the payload for a partial alarm update.
// Absent fields are left unchanged.
type UpdateAlarmRequest struct {
	Name       *string `json:"name"        validate:"omitempty,min=1"`
	AlarmTime  *string `json:"alarm_time"  validate:"omitempty"`
	RepeatType *string `json:"repeat_type" validate:"omitempty,oneof=once daily weekdays weekends"`
	SoundType  *string `json:"sound_type"  validate:"omitempty,min=1"`
	Volume     *int    `json:"volume"      validate:"omitempty,min=0,max=100"`
	IsActive   *bool   `json:"is_active"`
}

// CreateSessionRequest defines the payload for creating a study session.
type CreateSessionRequest struct {
	Subject   string     `json:"subject"    validate:"required"`
	StartTime time.Time  `json:"start_time" validate:"required"`
	Duration  int        `json:"duration"   validate:"required,min=1"`
	Notes     string     `json:"notes"`
	BookID    *uuid.UUID `json:"book_id"`
}

// UpdateSessionRequest defines the payload for a partial session update.
// Absent fields are left unchanged.
type UpdateSessionRequest struct {
	Subject   *string    `json:"subject"    validate:"omitempty,min=1"`
	StartTime *time.Time `json:"start_time"`
	Duration  *int       `json:"duration"   validate:"omitempty,min=1"`
	Status    *string    `json:"status"     validate:"omitempty,oneof=upcoming active completed"`
	Notes     *string    `json:"notes"`
	BookID    *uuid.UUID `json:"book_id"`
}

// CreateBookRequest defines the payload for adding a book to the catalog.
type CreateBookRequest struct {
	Title       string `json:"title"       validate:"required"`
	Author      string `json:"author"      validate:"required"`
	Category    string `json:"category"`
	Description string `json:"description"`
	CoverImage  string `json:"cover_image"`
	TotalPages  int    `json:"total_pages" validate:"omitempty,min=0"`
}

// UpdateBookProgressRequest defines the payload for recording reading progress.
type UpdateBookProgressRequest struct {
	CurrentPage *int `json:"current_page" validate:"required"`
}
