package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/calebmartin/chime-api/internal/clock"
	"github.com/calebmartin/chime-api/internal/domain"
	"github.com/calebmartin/chime-api/internal/platform/logger"
	"github.com/calebmartin/chime-api/internal/store"
	"github.com/google/uuid"
)

// CreateSessionInput carries the fields for creating a study session.
type CreateSessionInput struct {
	Subject   string
	StartTime time.Time
	Duration  int
	Notes     string
	BookID    *uuid.UUID
}

// UpdateSessionInput carries a partial field update for a study session.
// Nil fields are left unchanged. Status may be assigned freely as long as
// it is a valid enum value; the lifecycle does not forbid jumps.
type UpdateSessionInput struct {
	Subject   *string
	StartTime *time.Time
	Duration  *int
	Status    *domain.SessionStatus
	Notes     *string
	BookID    *uuid.UUID
}

// SessionService owns the study session lifecycle. Status is never trusted
// as stored: every read derives the effective status from the clock and
// persists observed transitions opportunistically, so a session reports
// active or completed the moment its scheduled time says so even if no
// write ever happened.
type SessionService struct {
	sessions store.SessionStore
	clock    clock.Clock
	logger   *slog.Logger
}

// NewSessionService creates a new SessionService.
func NewSessionService(sessions store.SessionStore, clk clock.Clock, logger *slog.Logger) *SessionService {
	if sessions == nil {
		panic("session store cannot be nil")
	}
	if clk == nil {
		panic("clock cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SessionService{
		sessions: sessions,
		clock:    clk,
		logger:   logger.With(slog.String("component", "session_service")),
	}
}

// CreateSession validates and stores a new upcoming study session.
func (s *SessionService) CreateSession(
	ctx context.Context,
	userID uuid.UUID,
	input CreateSessionInput,
) (*domain.StudySession, error) {
	session, err := domain.NewStudySession(
		userID,
		input.Subject,
		input.StartTime,
		input.Duration,
		input.Notes,
		input.BookID,
	)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create study session: %w", err)
	}

	return session, nil
}

// GetSession retrieves one of the user's sessions with its effective
// status at the current instant.
// Returns store.ErrSessionNotFound if the session is absent or owned by
// someone else.
func (s *SessionService) GetSession(
	ctx context.Context,
	userID, sessionID uuid.UUID,
) (*domain.StudySession, error) {
	session, err := s.owned(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	s.applyEffectiveStatus(ctx, session)
	return session, nil
}

// ListSessions returns all of the user's sessions ordered by start time,
// each carrying its effective status at the current instant.
func (s *SessionService) ListSessions(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.StudySession, error) {
	sessions, err := s.sessions.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, session := range sessions {
		s.applyEffectiveStatus(ctx, session)
	}
	return sessions, nil
}

// UpdateSession applies a partial field update to one of the user's
// sessions, re-validating the merged result. An explicit status
// assignment overwrites the persisted baseline.
func (s *SessionService) UpdateSession(
	ctx context.Context,
	userID, sessionID uuid.UUID,
	input UpdateSessionInput,
) (*domain.StudySession, error) {
	session, err := s.owned(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if input.Subject != nil {
		session.Subject = *input.Subject
	}
	if input.StartTime != nil {
		session.StartTime = *input.StartTime
	}
	if input.Duration != nil {
		session.Duration = *input.Duration
	}
	if input.Status != nil {
		session.Status = *input.Status
	}
	if input.Notes != nil {
		session.Notes = *input.Notes
	}
	if input.BookID != nil {
		session.BookID = input.BookID
	}
	session.UpdatedAt = s.clock.Now().UTC()

	if err := session.Validate(); err != nil {
		return nil, err
	}

	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update study session: %w", err)
	}

	return session, nil
}

// DeleteSession removes one of the user's sessions. Deletion is permitted
// from any state; there is no separate cancelled status.
// Returns store.ErrSessionNotFound if the session is absent or not owned
// by the user.
func (s *SessionService) DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	if _, err := s.owned(ctx, userID, sessionID); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, sessionID)
}

func (s *SessionService) owned(
	ctx context.Context,
	userID, sessionID uuid.UUID,
) (*domain.StudySession, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, store.ErrSessionNotFound
	}
	return session, nil
}

// applyEffectiveStatus replaces the session's status with its effective
// status at the current instant and persists an observed transition.
// The write-back is best effort: correctness never depends on the
// persisted status alone.
func (s *SessionService) applyEffectiveStatus(ctx context.Context, session *domain.StudySession) {
	now := s.clock.Now()
	effective := session.EffectiveStatus(now)
	if effective == session.Status {
		return
	}

	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("session transitioned by time",
		slog.String("session_id", session.ID.String()),
		slog.String("from", string(session.Status)),
		slog.String("to", string(effective)))

	session.Status = effective
	session.UpdatedAt = now.UTC()
	if err := s.sessions.Update(ctx, session); err != nil {
		log.Warn("failed to persist session status transition",
			slog.String("session_id", session.ID.String()),
			slog.String("error", err.Error()))
	}
}
