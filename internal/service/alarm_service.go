package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/calebmartin/chime-api/internal/clock"
	"github.com/calebmartin/chime-api/internal/domain"
	"github.com/calebmartin/chime-api/internal/domain/recurrence"
	"github.com/calebmartin/chime-api/internal/platform/logger"
	"github.com/calebmartin/chime-api/internal/store"
	"github.com/google/uuid"
)

// CreateAlarmInput carries the fields for creating an alarm. Name and
// AlarmTime are required; the remaining fields fall back to the domain
// defaults when unset.
type CreateAlarmInput struct {
	Name      string
	AlarmTime string
	Repeat    domain.RepeatType
	Sound     string
	Volume    *int
}

// UpdateAlarmInput carries a partial field update for an alarm.
// Nil fields are left unchanged; set fields are re-validated.
type UpdateAlarmInput struct {
	Name      *string
	AlarmTime *string
	Repeat    *domain.RepeatType
	Sound     *string
	Volume    *int
	IsActive  *bool
}

// AlarmService owns the set of alarms per user: creation with validation,
// partial updates, deletion, and the lazy "due now" evaluation against the
// clock. It produces no sound and schedules nothing; firing is decided at
// query time.
type AlarmService struct {
	alarms    store.AlarmStore
	evaluator recurrence.Evaluator
	clock     clock.Clock
	logger    *slog.Logger
}

// NewAlarmService creates a new AlarmService.
func NewAlarmService(
	alarms store.AlarmStore,
	evaluator recurrence.Evaluator,
	clk clock.Clock,
	logger *slog.Logger,
) *AlarmService {
	if alarms == nil {
		panic("alarm store cannot be nil")
	}
	if evaluator == nil {
		panic("recurrence evaluator cannot be nil")
	}
	if clk == nil {
		panic("clock cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &AlarmService{
		alarms:    alarms,
		evaluator: evaluator,
		clock:     clk,
		logger:    logger.With(slog.String("component", "alarm_service")),
	}
}

// CreateAlarm validates and stores a new alarm for the user, applying the
// standard defaults for unset optional fields.
func (s *AlarmService) CreateAlarm(
	ctx context.Context,
	userID uuid.UUID,
	input CreateAlarmInput,
) (*domain.Alarm, error) {
	alarm, err := domain.NewAlarm(userID, input.Name, input.AlarmTime)
	if err != nil {
		return nil, err
	}

	if input.Repeat != "" {
		alarm.Repeat = input.Repeat
	}
	if input.Sound != "" {
		alarm.Sound = input.Sound
	}
	if input.Volume != nil {
		alarm.Volume = *input.Volume
	}

	if err := alarm.Validate(); err != nil {
		return nil, err
	}

	if err := s.alarms.Create(ctx, alarm); err != nil {
		return nil, fmt.Errorf("failed to create alarm: %w", err)
	}

	return alarm, nil
}

// GetAlarm retrieves one of the user's alarms.
// Returns store.ErrAlarmNotFound if the alarm is absent or owned by
// someone else; ownership is never disclosed.
func (s *AlarmService) GetAlarm(
	ctx context.Context,
	userID, alarmID uuid.UUID,
) (*domain.Alarm, error) {
	alarm, err := s.alarms.GetByID(ctx, alarmID)
	if err != nil {
		return nil, err
	}
	if alarm.UserID != userID {
		return nil, store.ErrAlarmNotFound
	}
	return alarm, nil
}

// ListAlarms returns all of the user's alarms, in insertion order by
// default or ordered by time of day when orderByTime is set.
func (s *AlarmService) ListAlarms(
	ctx context.Context,
	userID uuid.UUID,
	orderByTime bool,
) ([]*domain.Alarm, error) {
	return s.alarms.ListByUser(ctx, userID, orderByTime)
}

// UpdateAlarm applies a partial field update to one of the user's alarms,
// re-validating the merged result.
func (s *AlarmService) UpdateAlarm(
	ctx context.Context,
	userID, alarmID uuid.UUID,
	input UpdateAlarmInput,
) (*domain.Alarm, error) {
	alarm, err := s.GetAlarm(ctx, userID, alarmID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		alarm.Name = *input.Name
	}
	if input.AlarmTime != nil {
		alarm.AlarmTime = *input.AlarmTime
	}
	if input.Repeat != nil {
		alarm.Repeat = *input.Repeat
	}
	if input.Sound != nil {
		alarm.Sound = *input.Sound
	}
	if input.Volume != nil {
		alarm.Volume = *input.Volume
	}
	if input.IsActive != nil {
		alarm.IsActive = *input.IsActive
	}
	alarm.UpdatedAt = s.clock.Now().UTC()

	if err := alarm.Validate(); err != nil {
		return nil, err
	}

	if err := s.alarms.Update(ctx, alarm); err != nil {
		return nil, fmt.Errorf("failed to update alarm: %w", err)
	}

	return alarm, nil
}

// DeleteAlarm removes one of the user's alarms.
// Returns store.ErrAlarmNotFound if the alarm is absent or not owned by
// the user; other users' alarms are never affected.
func (s *AlarmService) DeleteAlarm(ctx context.Context, userID, alarmID uuid.UUID) error {
	if _, err := s.GetAlarm(ctx, userID, alarmID); err != nil {
		return err
	}
	return s.alarms.Delete(ctx, alarmID)
}

// DueAlarms returns the user's alarms that are due at the current instant.
// A due alarm with a "once" rule is consumed: it is deactivated so it does
// not keep firing on every later day with a matching time of day.
func (s *AlarmService) DueAlarms(ctx context.Context, userID uuid.UUID) ([]*domain.Alarm, error) {
	alarms, err := s.alarms.ListByUser(ctx, userID, false)
	if err != nil {
		return nil, err
	}
	return s.filterDue(ctx, alarms)
}

// SweepDue evaluates every active alarm across all users and returns the
// due set, consuming fired "once" alarms. This is the entry point for the
// periodic poll loop.
func (s *AlarmService) SweepDue(ctx context.Context) ([]*domain.Alarm, error) {
	alarms, err := s.alarms.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return s.filterDue(ctx, alarms)
}

func (s *AlarmService) filterDue(ctx context.Context, alarms []*domain.Alarm) ([]*domain.Alarm, error) {
	now := s.clock.Now()

	due := []*domain.Alarm{}
	for _, alarm := range alarms {
		isDue, err := s.evaluator.IsDueAt(alarm, now)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate alarm %s: %w", alarm.ID, err)
		}
		if !isDue {
			continue
		}
		due = append(due, alarm)
		s.consumeOnce(ctx, alarm, now)
	}

	return due, nil
}

// consumeOnce deactivates a fired "once" alarm. The write-back is best
// effort: a failure is logged, and the next due check will simply report
// the alarm again.
func (s *AlarmService) consumeOnce(ctx context.Context, alarm *domain.Alarm, now time.Time) {
	if alarm.Repeat != domain.RepeatOnce {
		return
	}

	log := logger.FromContextOrDefault(ctx, s.logger)

	alarm.IsActive = false
	alarm.UpdatedAt = now.UTC()
	if err := s.alarms.Update(ctx, alarm); err != nil {
		log.Warn("failed to deactivate fired once alarm",
			slog.String("alarm_id", alarm.ID.String()),
			slog.String("error", err.Error()))
		return
	}

	log.Info("once alarm fired and deactivated",
		slog.String("alarm_id", alarm.ID.String()),
		slog.String("user_id", alarm.UserID.String()))
}
