package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/calebmartin/chime-api/internal/domain"
	"github.com/google/uuid"
)

// SessionStore defines the interface for study session data persistence.
type SessionStore interface {
	// Create saves a new study session to the store.
	// Returns validation errors from the domain StudySession if data is invalid.
	// Returns ErrInvalidEntity if a referenced book does not exist.
	Create(ctx context.Context, session *domain.StudySession) error

	// GetByID retrieves a study session by its unique ID.
	// Returns ErrSessionNotFound if the session does not exist.
	// Ownership checks are the caller's responsibility.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StudySession, error)

	// ListByUser returns all study sessions for a user, ordered by start time.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.StudySession, error)

	// ListRecentByBook returns the most recent sessions referencing a book,
	// newest first, at most limit entries.
	ListRecentByBook(ctx context.Context, bookID uuid.UUID, limit int) ([]*domain.StudySession, error)

	// Update saves changes to an existing study session.
	// Returns ErrSessionNotFound if the session does not exist.
	// Returns validation errors from the domain StudySession if data is invalid.
	Update(ctx context.Context, session *domain.StudySession) error

	// Delete removes a study session from the store by its ID.
	// Returns ErrSessionNotFound if the session does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountStartedBetween returns the number of a user's sessions whose
	// start instant falls within [from, to] inclusive, regardless of status.
	CountStartedBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error)

	// SumCompletedMinutes returns the total duration in minutes of a user's
	// completed sessions whose start instant falls within [from, to]
	// inclusive. Returns 0 when no sessions match, never an absent value.
	SumCompletedMinutes(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error)

	// WithTx returns a new SessionStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller.
	WithTx(tx *sql.Tx) SessionStore
}
