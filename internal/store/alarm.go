package store

import (
	"context"
	"database/sql"

	"github.com/calebmartin/chime-api/internal/domain"
	"github.com/google/uuid"
)

// AlarmStore defines the interface for alarm data persistence.
type AlarmStore interface {
	// Create saves a new alarm to the store.
	// Returns validation errors from the domain Alarm if data is invalid.
	Create(ctx context.Context, alarm *domain.Alarm) error

	// GetByID retrieves an alarm by its unique ID.
	// Returns ErrAlarmNotFound if the alarm does not exist.
	// Ownership checks are the caller's responsibility.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Alarm, error)

	// ListByUser returns all alarms for a user. Insertion order is
	// preserved unless orderByTime is set, in which case alarms are
	// ordered by their time of day.
	ListByUser(ctx context.Context, userID uuid.UUID, orderByTime bool) ([]*domain.Alarm, error)

	// ListActive returns all active alarms across all users.
	// Used by the poll loop to sweep for due alarms.
	ListActive(ctx context.Context) ([]*domain.Alarm, error)

	// Update saves changes to an existing alarm.
	// Returns ErrAlarmNotFound if the alarm does not exist.
	// Returns validation errors from the domain Alarm if data is invalid.
	Update(ctx context.Context, alarm *domain.Alarm) error

	// Delete removes an alarm from the store by its ID.
	// Returns ErrAlarmNotFound if the alarm does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountActive returns the number of active alarms for a user.
	CountActive(ctx context.Context, userID uuid.UUID) (int, error)

	// WithTx returns a new AlarmStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller.
	WithTx(tx *sql.Tx) AlarmStore
}
