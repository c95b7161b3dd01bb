package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// SessionStatus represents the lifecycle state of a study session.
type SessionStatus string

// Possible session status values, in lifecycle order.
const (
	SessionStatusUpcoming  SessionStatus = "upcoming"
	SessionStatusActive    SessionStatus = "active"
	SessionStatusCompleted SessionStatus = "completed"
)

// Common validation errors for StudySession
var (
	ErrEmptySessionID       = errors.New("session ID cannot be empty")
	ErrEmptySessionUserID   = errors.New("session user ID cannot be empty")
	ErrEmptySessionSubject  = errors.New("session subject cannot be empty")
	ErrEmptySessionStart    = errors.New("session start time cannot be empty")
	ErrNonPositiveDuration  = errors.New("session duration must be a positive number of minutes")
	ErrInvalidSessionStatus = errors.New("invalid session status")
)

// StudySession represents a scheduled block of study time for a user,
// optionally tied to a book. Duration is in minutes. The persisted status
// is a baseline; the effective status at any instant is derived lazily
// with EffectiveStatus.
type StudySession struct {
	ID        uuid.UUID     `json:"id"`
	UserID    uuid.UUID     `json:"user_id"`
	Subject   string        `json:"subject"`
	StartTime time.Time     `json:"start_time"`
	Duration  int           `json:"duration"`
	Status    SessionStatus `json:"status"`
	Notes     string        `json:"notes"`
	BookID    *uuid.UUID    `json:"book_id,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// NewStudySession creates a new StudySession with the given fields and an
// initial status of upcoming. Returns an error if validation fails.
func NewStudySession(
	userID uuid.UUID,
	subject string,
	startTime time.Time,
	duration int,
	notes string,
	bookID *uuid.UUID,
) (*StudySession, error) {
	session := &StudySession{
		ID:        uuid.New(),
		UserID:    userID,
		Subject:   subject,
		StartTime: startTime,
		Duration:  duration,
		Status:    SessionStatusUpcoming,
		Notes:     notes,
		BookID:    bookID,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := session.Validate(); err != nil {
		return nil, err
	}

	return session, nil
}

// Validate checks if the StudySession has valid data.
// Returns an error if any field fails validation.
func (s *StudySession) Validate() error {
	if s.ID == uuid.Nil {
		return ErrEmptySessionID
	}

	if s.UserID == uuid.Nil {
		return ErrEmptySessionUserID
	}

	if s.Subject == "" {
		return ErrEmptySessionSubject
	}

	if s.StartTime.IsZero() {
		return ErrEmptySessionStart
	}

	if s.Duration <= 0 {
		return ErrNonPositiveDuration
	}

	if !IsValidSessionStatus(s.Status) {
		return ErrInvalidSessionStatus
	}

	return nil
}

// EndTime returns the instant at which the session's scheduled time is over.
func (s *StudySession) EndTime() time.Time {
	return s.StartTime.Add(time.Duration(s.Duration) * time.Minute)
}

// EffectiveStatus derives the session's status at the given instant. Time
// only moves a session forward through upcoming -> active -> completed; the
// persisted status acts as a floor, so a session explicitly marked active
// or completed never reports an earlier state. The result is purely
// computed and does not mutate the session.
func (s *StudySession) EffectiveStatus(now time.Time) SessionStatus {
	byTime := SessionStatusUpcoming
	switch {
	case !now.Before(s.EndTime()):
		byTime = SessionStatusCompleted
	case !now.Before(s.StartTime):
		byTime = SessionStatusActive
	}

	if sessionStatusRank(s.Status) > sessionStatusRank(byTime) {
		return s.Status
	}
	return byTime
}

// IsValidSessionStatus checks if the given status is a valid SessionStatus.
func IsValidSessionStatus(status SessionStatus) bool {
	switch status {
	case SessionStatusUpcoming, SessionStatusActive, SessionStatusCompleted:
		return true
	default:
		return false
	}
}

func sessionStatusRank(status SessionStatus) int {
	switch status {
	case SessionStatusActive:
		return 1
	case SessionStatusCompleted:
		return 2
	default:
		return 0
	}
}
