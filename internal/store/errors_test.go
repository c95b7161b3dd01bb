package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "wrapped generic error",
			err:      fmt.Errorf("failed to do something: %w", errors.New("some error")),
			expected: false,
		},
		{
			name:     "ErrNotFound",
			err:      ErrNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrNotFound",
			err:      fmt.Errorf("failed to do something: %w", ErrNotFound),
			expected: true,
		},
		{
			name:     "ErrUserNotFound",
			err:      ErrUserNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrUserNotFound",
			err:      fmt.Errorf("failed to find user: %w", ErrUserNotFound),
			expected: true,
		},
		{
			name:     "ErrAlarmNotFound",
			err:      ErrAlarmNotFound,
			expected: true,
		},
		{
			name:     "ErrSessionNotFound",
			err:      ErrSessionNotFound,
			expected: true,
		},
		{
			name:     "ErrBookNotFound",
			err:      ErrBookNotFound,
			expected: true,
		},
		{
			name:     "ErrDuplicate",
			err:      ErrDuplicate,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFoundError(tt.err); got != tt.expected {
				t.Errorf("IsNotFoundError(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "ErrDuplicate",
			err:      ErrDuplicate,
			expected: true,
		},
		{
			name:     "ErrUsernameExists",
			err:      ErrUsernameExists,
			expected: true,
		},
		{
			name:     "wrapped ErrUsernameExists",
			err:      fmt.Errorf("failed to create user: %w", ErrUsernameExists),
			expected: true,
		},
		{
			name:     "ErrNotFound",
			err:      ErrNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDuplicateError(tt.err); got != tt.expected {
				t.Errorf("IsDuplicateError(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestStoreError(t *testing.T) {
	base := errors.New("connection reset")
	storeErr := NewStoreError("alarm", "create", "insert failed", base)

	expected := "create operation on alarm failed: insert failed: connection reset"
	if storeErr.Error() != expected {
		t.Errorf("Error() = %q, want %q", storeErr.Error(), expected)
	}

	if !errors.Is(storeErr, base) {
		t.Error("expected StoreError to unwrap to the original error")
	}

	// Without a wrapped error the message stands alone
	bare := NewStoreError("book", "delete", "no rows", nil)
	expected = "delete operation on book failed: no rows"
	if bare.Error() != expected {
		t.Errorf("Error() = %q, want %q", bare.Error(), expected)
	}
}

func TestStoreErrorPreservesSentinels(t *testing.T) {
	storeErr := NewStoreError("session", "get", "lookup failed", ErrSessionNotFound)

	if !IsNotFoundError(storeErr) {
		t.Error("expected a StoreError wrapping ErrSessionNotFound to report not found")
	}

	var target *StoreError
	if !errors.As(storeErr, &target) {
		t.Error("expected errors.As to recover the StoreError")
	}
}
