package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/calebmartin/chime-api/internal/clock"
	"github.com/calebmartin/chime-api/internal/store"
	"github.com/google/uuid"
)

// Summary holds the dashboard aggregates for one user at one instant.
type Summary struct {
	ActiveAlarms      int `json:"active_alarms"`
	TodaySessions     int `json:"today_sessions"`
	ActiveBooks       int `json:"active_books"`
	TodayStudyMinutes int `json:"today_study_time"`
}

// DashboardService computes cross-entity summaries by composing read-only
// queries over the other components. It performs no mutation.
type DashboardService struct {
	alarms   store.AlarmStore
	sessions store.SessionStore
	books    store.BookStore
	clock    clock.Clock
	logger   *slog.Logger
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	alarms store.AlarmStore,
	sessions store.SessionStore,
	books store.BookStore,
	clk clock.Clock,
	logger *slog.Logger,
) *DashboardService {
	if alarms == nil || sessions == nil || books == nil {
		panic("dashboard stores cannot be nil")
	}
	if clk == nil {
		panic("clock cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &DashboardService{
		alarms:   alarms,
		sessions: sessions,
		books:    books,
		clock:    clk,
		logger:   logger.With(slog.String("component", "dashboard_service")),
	}
}

// Summarize computes the user's dashboard aggregates at the current
// instant: active alarm count, sessions starting today, in-progress book
// count, and total completed study minutes for today.
func (s *DashboardService) Summarize(ctx context.Context, userID uuid.UUID) (*Summary, error) {
	now := s.clock.Now()
	dayStart, dayEnd := dayBounds(now)

	activeAlarms, err := s.alarms.CountActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count active alarms: %w", err)
	}

	todaySessions, err := s.sessions.CountStartedBetween(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's sessions: %w", err)
	}

	activeBooks, err := s.activeBookCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active books: %w", err)
	}

	studyMinutes, err := s.sessions.SumCompletedMinutes(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to sum today's study minutes: %w", err)
	}

	return &Summary{
		ActiveAlarms:      activeAlarms,
		TodaySessions:     todaySessions,
		ActiveBooks:       activeBooks,
		TodayStudyMinutes: studyMinutes,
	}, nil
}

// activeBookCount counts books partway through being read. The count is
// catalog-wide, not scoped to the user; changing that policy later only
// means touching this method.
func (s *DashboardService) activeBookCount(ctx context.Context) (int, error) {
	return s.books.CountInProgress(ctx)
}

// dayBounds returns the inclusive [midnight, 23:59:59] window of the
// given instant's local calendar day.
func dayBounds(now time.Time) (time.Time, time.Time) {
	year, month, day := now.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	end := time.Date(year, month, day, 23, 59, 59, 0, now.Location())
	return start, end
}
