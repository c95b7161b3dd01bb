package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// RepeatType represents the recurrence rule of an alarm, determining
// which calendar days the alarm is eligible to fire.
type RepeatType string

// Possible repeat type values
const (
	RepeatOnce     RepeatType = "once"
	RepeatDaily    RepeatType = "daily"
	RepeatWeekdays RepeatType = "weekdays"
	RepeatWeekends RepeatType = "weekends"
)

// Alarm field defaults applied on creation.
const (
	DefaultAlarmSound  = "bell"
	DefaultAlarmVolume = 80
)

// Common validation errors for Alarm
var (
	ErrEmptyAlarmID     = errors.New("alarm ID cannot be empty")
	ErrEmptyAlarmUserID = errors.New("alarm user ID cannot be empty")
	ErrEmptyAlarmName   = errors.New("alarm name cannot be empty")
	ErrInvalidAlarmTime = errors.New("alarm time must be a valid 24-hour HH:MM value")
	ErrInvalidRepeat    = errors.New("invalid repeat type")
	ErrVolumeOutOfRange = errors.New("alarm volume must be between 0 and 100")
)

// Alarm represents a per-user alarm with a time of day and a recurrence
// rule. The time of day has minute granularity and is interpreted in the
// owning user's local wall clock.
type Alarm struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Name      string     `json:"name"`
	AlarmTime string     `json:"alarm_time"` // HH:MM, 24-hour
	Repeat    RepeatType `json:"repeat_type"`
	Sound     string     `json:"sound_type"`
	Volume    int        `json:"volume"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewAlarm creates a new Alarm for the given user with the given name and
// time of day, applying the standard defaults (repeat once, bell sound,
// volume 80, active). Returns an error if validation fails.
func NewAlarm(userID uuid.UUID, name, alarmTime string) (*Alarm, error) {
	alarm := &Alarm{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		AlarmTime: alarmTime,
		Repeat:    RepeatOnce,
		Sound:     DefaultAlarmSound,
		Volume:    DefaultAlarmVolume,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := alarm.Validate(); err != nil {
		return nil, err
	}

	return alarm, nil
}

// Validate checks if the Alarm has valid data.
// Returns an error if any field fails validation.
func (a *Alarm) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAlarmID
	}

	if a.UserID == uuid.Nil {
		return ErrEmptyAlarmUserID
	}

	if a.Name == "" {
		return ErrEmptyAlarmName
	}

	if _, _, err := a.TimeOfDay(); err != nil {
		return ErrInvalidAlarmTime
	}

	if !IsValidRepeatType(a.Repeat) {
		return ErrInvalidRepeat
	}

	if a.Volume < 0 || a.Volume > 100 {
		return ErrVolumeOutOfRange
	}

	return nil
}

// TimeOfDay parses the alarm's stored HH:MM value into an hour and minute.
// Returns ErrInvalidAlarmTime if the stored value is malformed.
func (a *Alarm) TimeOfDay() (hour, minute int, err error) {
	t, parseErr := time.Parse("15:04", a.AlarmTime)
	if parseErr != nil {
		return 0, 0, ErrInvalidAlarmTime
	}
	return t.Hour(), t.Minute(), nil
}

// IsValidRepeatType checks if the given value is a valid RepeatType.
func IsValidRepeatType(r RepeatType) bool {
	switch r {
	case RepeatOnce, RepeatDaily, RepeatWeekdays, RepeatWeekends:
		return true
	default:
		return false
	}
}
