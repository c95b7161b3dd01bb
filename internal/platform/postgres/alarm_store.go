package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/calebmartin/chime-api/internal/domain"
	"github.com/calebmartin/chime-api/internal/platform/logger"
	"github.com/calebmartin/chime-api/internal/store"
	"github.com/google/uuid"
)

// PostgresAlarmStore implements the store.AlarmStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAlarmStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAlarmStore creates a new PostgreSQL implementation of the AlarmStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresAlarmStore(db store.DBTX, logger *slog.Logger) *PostgresAlarmStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAlarmStore{
		db:     db,
		logger: logger.With(slog.String("component", "alarm_store")),
	}
}

// Ensure PostgresAlarmStore implements store.AlarmStore interface
var _ store.AlarmStore = (*PostgresAlarmStore)(nil)

const alarmColumns = `id, user_id, name, alarm_time, repeat_type, sound_type, volume, is_active, created_at, updated_at`

// Create implements store.AlarmStore.Create
// Returns store.ErrInvalidEntity if the owning user does not exist.
func (s *PostgresAlarmStore) Create(ctx context.Context, alarm *domain.Alarm) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := alarm.Validate(); err != nil {
		log.Warn("alarm validation failed during create",
			slog.String("error", err.Error()),
			slog.String("alarm_id", alarm.ID.String()))
		return err
	}

	query := `
		INSERT INTO alarms (` + alarmColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		alarm.ID,
		alarm.UserID,
		alarm.Name,
		alarm.AlarmTime,
		alarm.Repeat,
		alarm.Sound,
		alarm.Volume,
		alarm.IsActive,
		alarm.CreatedAt,
		alarm.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, alarm.UserID)
		}
		log.Error("failed to create alarm",
			slog.String("error", err.Error()),
			slog.String("alarm_id", alarm.ID.String()),
			slog.String("user_id", alarm.UserID.String()))
		return MapError(err)
	}

	log.Info("alarm created successfully",
		slog.String("alarm_id", alarm.ID.String()),
		slog.String("user_id", alarm.UserID.String()))
	return nil
}

// GetByID implements store.AlarmStore.GetByID
// Returns store.ErrAlarmNotFound if the alarm does not exist.
func (s *PostgresAlarmStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Alarm, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + alarmColumns + ` FROM alarms WHERE id = $1`

	alarm, err := scanAlarm(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("alarm not found", slog.String("alarm_id", id.String()))
			return nil, store.ErrAlarmNotFound
		}
		log.Error("failed to get alarm by ID",
			slog.String("error", err.Error()),
			slog.String("alarm_id", id.String()))
		return nil, MapError(err)
	}

	return alarm, nil
}

// ListByUser implements store.AlarmStore.ListByUser
// Insertion order (creation time) is the default; orderByTime switches to
// time-of-day ordering.
func (s *PostgresAlarmStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	orderByTime bool,
) ([]*domain.Alarm, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	order := "created_at"
	if orderByTime {
		order = "alarm_time"
	}
	query := `SELECT ` + alarmColumns + ` FROM alarms WHERE user_id = $1 ORDER BY ` + order

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list alarms",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return collectAlarms(rows)
}

// ListActive implements store.AlarmStore.ListActive
// It returns active alarms across all users, for the due-alarm sweep.
func (s *PostgresAlarmStore) ListActive(ctx context.Context) ([]*domain.Alarm, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + alarmColumns + ` FROM alarms WHERE is_active ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list active alarms", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return collectAlarms(rows)
}

// Update implements store.AlarmStore.Update
// Returns store.ErrAlarmNotFound if the alarm does not exist.
func (s *PostgresAlarmStore) Update(ctx context.Context, alarm *domain.Alarm) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := alarm.Validate(); err != nil {
		log.Warn("alarm validation failed during update",
			slog.String("error", err.Error()),
			slog.String("alarm_id", alarm.ID.String()))
		return err
	}

	query := `
		UPDATE alarms
		SET name = $2, alarm_time = $3, repeat_type = $4, sound_type = $5,
		    volume = $6, is_active = $7, updated_at = $8
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		alarm.ID,
		alarm.Name,
		alarm.AlarmTime,
		alarm.Repeat,
		alarm.Sound,
		alarm.Volume,
		alarm.IsActive,
		alarm.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to update alarm",
			slog.String("error", err.Error()),
			slog.String("alarm_id", alarm.ID.String()))
		return MapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if rows == 0 {
		return store.ErrAlarmNotFound
	}

	return nil
}

// Delete implements store.AlarmStore.Delete
// Returns store.ErrAlarmNotFound if the alarm does not exist.
func (s *PostgresAlarmStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM alarms WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete alarm",
			slog.String("error", err.Error()),
			slog.String("alarm_id", id.String()))
		return MapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if rows == 0 {
		return store.ErrAlarmNotFound
	}

	log.Info("alarm deleted successfully", slog.String("alarm_id", id.String()))
	return nil
}

// CountActive implements store.AlarmStore.CountActive
func (s *PostgresAlarmStore) CountActive(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM alarms WHERE user_id = $1 AND is_active`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// WithTx implements store.AlarmStore.WithTx
// It returns a new AlarmStore instance that uses the provided transaction.
func (s *PostgresAlarmStore) WithTx(tx *sql.Tx) store.AlarmStore {
	return &PostgresAlarmStore{
		db:     tx,
		logger: s.logger,
	}
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAlarm(row rowScanner) (*domain.Alarm, error) {
	var alarm domain.Alarm
	err := row.Scan(
		&alarm.ID,
		&alarm.UserID,
		&alarm.Name,
		&alarm.AlarmTime,
		&alarm.Repeat,
		&alarm.Sound,
		&alarm.Volume,
		&alarm.IsActive,
		&alarm.CreatedAt,
		&alarm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &alarm, nil
}

func collectAlarms(rows *sql.Rows) ([]*domain.Alarm, error) {
	alarms := []*domain.Alarm{}
	for rows.Next() {
		alarm, err := scanAlarm(rows)
		if err != nil {
			return nil, MapError(err)
		}
		alarms = append(alarms, alarm)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return alarms, nil
}
