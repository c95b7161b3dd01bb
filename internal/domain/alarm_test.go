package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewAlarm(t *testing.T) {
	t.Parallel() // Enable parallel execution
	userID := uuid.New()

	alarm, err := NewAlarm(userID, "Morning run", "06:30")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if alarm.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if alarm.UserID != userID {
		t.Errorf("Expected user ID %s, got %s", userID, alarm.UserID)
	}

	// Defaults
	if alarm.Repeat != RepeatOnce {
		t.Errorf("Expected repeat %s, got %s", RepeatOnce, alarm.Repeat)
	}

	if alarm.Sound != DefaultAlarmSound {
		t.Errorf("Expected sound %s, got %s", DefaultAlarmSound, alarm.Sound)
	}

	if alarm.Volume != DefaultAlarmVolume {
		t.Errorf("Expected volume %d, got %d", DefaultAlarmVolume, alarm.Volume)
	}

	if !alarm.IsActive {
		t.Error("Expected new alarm to be active")
	}

	if alarm.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Test empty name
	_, err = NewAlarm(userID, "", "06:30")
	if err != ErrEmptyAlarmName {
		t.Errorf("Expected error %v, got %v", ErrEmptyAlarmName, err)
	}

	// Test empty user ID
	_, err = NewAlarm(uuid.Nil, "Morning run", "06:30")
	if err != ErrEmptyAlarmUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyAlarmUserID, err)
	}
}

func TestAlarmValidateTime(t *testing.T) {
	t.Parallel() // Enable parallel execution
	userID := uuid.New()

	invalidTimes := []string{"", "6:30am", "25:00", "12:60", "noon", "12.30"}
	for _, tm := range invalidTimes {
		if _, err := NewAlarm(userID, "Alarm", tm); err != ErrInvalidAlarmTime {
			t.Errorf("Time %q: expected error %v, got %v", tm, ErrInvalidAlarmTime, err)
		}
	}

	validTimes := []string{"00:00", "23:59", "09:05", "12:30"}
	for _, tm := range validTimes {
		if _, err := NewAlarm(userID, "Alarm", tm); err != nil {
			t.Errorf("Time %q: expected no error, got %v", tm, err)
		}
	}
}

func TestAlarmValidateVolume(t *testing.T) {
	t.Parallel() // Enable parallel execution
	alarm, err := NewAlarm(uuid.New(), "Alarm", "07:00")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Boundary values are allowed
	for _, v := range []int{0, 1, 80, 100} {
		alarm.Volume = v
		if err := alarm.Validate(); err != nil {
			t.Errorf("Volume %d: expected no error, got %v", v, err)
		}
	}

	for _, v := range []int{-1, 101, 150} {
		alarm.Volume = v
		if err := alarm.Validate(); err != ErrVolumeOutOfRange {
			t.Errorf("Volume %d: expected error %v, got %v", v, ErrVolumeOutOfRange, err)
		}
	}
}

func TestAlarmValidateRepeat(t *testing.T) {
	t.Parallel() // Enable parallel execution
	alarm, err := NewAlarm(uuid.New(), "Alarm", "07:00")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for _, r := range []RepeatType{RepeatOnce, RepeatDaily, RepeatWeekdays, RepeatWeekends} {
		alarm.Repeat = r
		if err := alarm.Validate(); err != nil {
			t.Errorf("Repeat %s: expected no error, got %v", r, err)
		}
	}

	alarm.Repeat = RepeatType("hourly")
	if err := alarm.Validate(); err != ErrInvalidRepeat {
		t.Errorf("Expected error %v, got %v", ErrInvalidRepeat, err)
	}
}

func TestIsValidRepeatType(t *testing.T) {
	t.Parallel() // Enable parallel execution
	valid := []RepeatType{RepeatOnce, RepeatDaily, RepeatWeekdays, RepeatWeekends}
	for _, r := range valid {
		if !IsValidRepeatType(r) {
			t.Errorf("Expected %s to be valid", r)
		}
	}

	if IsValidRepeatType(RepeatType("yearly")) {
		t.Error("Expected yearly to be invalid")
	}
}
