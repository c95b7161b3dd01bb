// Package recurrence implements the alarm fire-decision logic: given an
// alarm's recurrence rule and time of day, it decides whether a calendar
// day is an eligible fire day and whether a specific instant is the fire
// instant. The evaluation is pure; the current time is always passed in
// explicitly so callers control the clock.
package recurrence

import (
	"errors"
	"time"

	"github.com/calebmartin/chime-api/internal/domain"
)

// Common errors
var (
	ErrNilAlarm    = errors.New("alarm cannot be nil")
	ErrInvalidRule = errors.New("unrecognized recurrence rule")
)

// Evaluator defines the interface for recurrence evaluation operations.
type Evaluator interface {
	// IsDueOn reports whether the given calendar day is an eligible fire
	// day for the alarm's recurrence rule, independent of time of day.
	IsDueOn(alarm *domain.Alarm, day time.Time) (bool, error)

	// IsDueAt reports whether the alarm is due at the given instant: the
	// alarm is active, the instant's day is an eligible fire day, and the
	// instant's hour and minute match the alarm's stored time of day.
	// Seconds are ignored.
	IsDueAt(alarm *domain.Alarm, at time.Time) (bool, error)
}

// defaultEvaluator is the standard implementation of the Evaluator interface.
type defaultEvaluator struct{}

// NewEvaluator creates a new recurrence Evaluator.
func NewEvaluator() Evaluator {
	return &defaultEvaluator{}
}

// IsDueOn implements the Evaluator interface.
func (e *defaultEvaluator) IsDueOn(alarm *domain.Alarm, day time.Time) (bool, error) {
	if alarm == nil {
		return false, ErrNilAlarm
	}
	return ruleAppliesOn(alarm.Repeat, day.Weekday())
}

// IsDueAt implements the Evaluator interface.
func (e *defaultEvaluator) IsDueAt(alarm *domain.Alarm, at time.Time) (bool, error) {
	if alarm == nil {
		return false, ErrNilAlarm
	}

	// Rule validity is checked even for inactive alarms so a bad rule
	// surfaces as an error rather than a silent "not due".
	dueDay, err := ruleAppliesOn(alarm.Repeat, at.Weekday())
	if err != nil {
		return false, err
	}

	if !alarm.IsActive || !dueDay {
		return false, nil
	}

	hour, minute, err := alarm.TimeOfDay()
	if err != nil {
		return false, err
	}

	return at.Hour() == hour && at.Minute() == minute, nil
}

// ruleAppliesOn decides day eligibility for a recurrence rule.
//
// A "once" alarm is eligible on any day: the engine keeps re-evaluating it
// against its stored time of day until the alarm is deactivated. Consuming
// a fired "once" alarm is the caller's responsibility (the alarm service
// deactivates it after the first observed fire).
func ruleAppliesOn(rule domain.RepeatType, weekday time.Weekday) (bool, error) {
	switch rule {
	case domain.RepeatOnce, domain.RepeatDaily:
		return true, nil
	case domain.RepeatWeekdays:
		return weekday != time.Saturday && weekday != time.Sunday, nil
	case domain.RepeatWeekends:
		return weekday == time.Saturday || weekday == time.Sunday, nil
	default:
		return false, ErrInvalidRule
	}
}
