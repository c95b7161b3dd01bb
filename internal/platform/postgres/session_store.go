package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/calebmartin/chime-api/internal/domain"
	"github.com/calebmartin/chime-api/internal/platform/logger"
	"github.com/calebmartin/chime-api/internal/store"
	"github.com/google/uuid"
)

// PostgresSessionStore implements the store.SessionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSessionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSessionStore creates a new PostgreSQL implementation of the SessionStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresSessionStore(db store.DBTX, logger *slog.Logger) *PostgresSessionStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSessionStore{
		db:     db,
		logger: logger.With(slog.String("component", "session_store")),
	}
}

// Ensure PostgresSessionStore implements store.SessionStore interface
var _ store.SessionStore = (*PostgresSessionStore)(nil)

const sessionColumns = `id, user_id, subject, start_time, duration, status, notes, book_id, created_at, updated_at`

// Create implements store.SessionStore.Create
// Returns store.ErrInvalidEntity if the owning user or referenced book
// does not exist.
func (s *PostgresSessionStore) Create(ctx context.Context, session *domain.StudySession) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := session.Validate(); err != nil {
		log.Warn("session validation failed during create",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()))
		return err
	}

	query := `
		INSERT INTO study_sessions (` + sessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		session.ID,
		session.UserID,
		session.Subject,
		session.StartTime,
		session.Duration,
		session.Status,
		session.Notes,
		bookIDValue(session.BookID),
		session.CreatedAt,
		session.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: referenced user or book not found",
				store.ErrInvalidEntity)
		}
		log.Error("failed to create study session",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()),
			slog.String("user_id", session.UserID.String()))
		return MapError(err)
	}

	log.Info("study session created successfully",
		slog.String("session_id", session.ID.String()),
		slog.String("user_id", session.UserID.String()),
		slog.String("status", string(session.Status)))
	return nil
}

// GetByID implements store.SessionStore.GetByID
// Returns store.ErrSessionNotFound if the session does not exist.
func (s *PostgresSessionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.StudySession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + sessionColumns + ` FROM study_sessions WHERE id = $1`

	session, err := scanSession(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("study session not found", slog.String("session_id", id.String()))
			return nil, store.ErrSessionNotFound
		}
		log.Error("failed to get study session by ID",
			slog.String("error", err.Error()),
			slog.String("session_id", id.String()))
		return nil, MapError(err)
	}

	return session, nil
}

// ListByUser implements store.SessionStore.ListByUser
func (s *PostgresSessionStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.StudySession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + sessionColumns + ` FROM study_sessions WHERE user_id = $1 ORDER BY start_time`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list study sessions",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return collectSessions(rows)
}

// ListRecentByBook implements store.SessionStore.ListRecentByBook
func (s *PostgresSessionStore) ListRecentByBook(
	ctx context.Context,
	bookID uuid.UUID,
	limit int,
) ([]*domain.StudySession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + sessionColumns + ` FROM study_sessions WHERE book_id = $1 ORDER BY start_time DESC LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, bookID, limit)
	if err != nil {
		log.Error("failed to list sessions by book",
			slog.String("error", err.Error()),
			slog.String("book_id", bookID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return collectSessions(rows)
}

// Update implements store.SessionStore.Update
// Returns store.ErrSessionNotFound if the session does not exist.
func (s *PostgresSessionStore) Update(ctx context.Context, session *domain.StudySession) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := session.Validate(); err != nil {
		log.Warn("session validation failed during update",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()))
		return err
	}

	query := `
		UPDATE study_sessions
		SET subject = $2, start_time = $3, duration = $4, status = $5,
		    notes = $6, book_id = $7, updated_at = $8
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		session.ID,
		session.Subject,
		session.StartTime,
		session.Duration,
		session.Status,
		session.Notes,
		bookIDValue(session.BookID),
		session.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: referenced book not found", store.ErrInvalidEntity)
		}
		log.Error("failed to update study session",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()))
		return MapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if rows == 0 {
		return store.ErrSessionNotFound
	}

	return nil
}

// Delete implements store.SessionStore.Delete
// Returns store.ErrSessionNotFound if the session does not exist.
func (s *PostgresSessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM study_sessions WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete study session",
			slog.String("error", err.Error()),
			slog.String("session_id", id.String()))
		return MapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if rows == 0 {
		return store.ErrSessionNotFound
	}

	log.Info("study session deleted successfully", slog.String("session_id", id.String()))
	return nil
}

// CountStartedBetween implements store.SessionStore.CountStartedBetween
func (s *PostgresSessionStore) CountStartedBetween(
	ctx context.Context,
	userID uuid.UUID,
	from, to time.Time,
) (int, error) {
	var count int
	err := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM study_sessions WHERE user_id = $1 AND start_time BETWEEN $2 AND $3`,
		userID,
		from,
		to,
	).Scan(&count)
	if err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// SumCompletedMinutes implements store.SessionStore.SumCompletedMinutes
// COALESCE keeps the result at 0 when no rows match.
func (s *PostgresSessionStore) SumCompletedMinutes(
	ctx context.Context,
	userID uuid.UUID,
	from, to time.Time,
) (int, error) {
	var total int
	err := s.db.QueryRowContext(
		ctx,
		`SELECT COALESCE(SUM(duration), 0)
		 FROM study_sessions
		 WHERE user_id = $1 AND status = $2 AND start_time BETWEEN $3 AND $4`,
		userID,
		domain.SessionStatusCompleted,
		from,
		to,
	).Scan(&total)
	if err != nil {
		return 0, MapError(err)
	}
	return total, nil
}

// WithTx implements store.SessionStore.WithTx
// It returns a new SessionStore instance that uses the provided transaction.
func (s *PostgresSessionStore) WithTx(tx *sql.Tx) store.SessionStore {
	return &PostgresSessionStore{
		db:     tx,
		logger: s.logger,
	}
}

// bookIDValue converts the optional book reference to its SQL value.
func bookIDValue(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func scanSession(row rowScanner) (*domain.StudySession, error) {
	var session domain.StudySession
	var bookID uuid.NullUUID
	err := row.Scan(
		&session.ID,
		&session.UserID,
		&session.Subject,
		&session.StartTime,
		&session.Duration,
		&session.Status,
		&session.Notes,
		&bookID,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if bookID.Valid {
		id := bookID.UUID
		session.BookID = &id
	}
	return &session, nil
}

func collectSessions(rows *sql.Rows) ([]*domain.StudySession, error) {
	sessions := []*domain.StudySession{}
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, MapError(err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return sessions, nil
}
