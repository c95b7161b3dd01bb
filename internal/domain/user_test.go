package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	t.Parallel() // Enable parallel execution
	user, err := NewUser("caleb", "secret123")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if user.Username != "caleb" {
		t.Errorf("Expected username caleb, got %s", user.Username)
	}

	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Test empty username
	_, err = NewUser("", "secret123")
	if err != ErrEmptyUsername {
		t.Errorf("Expected error %v, got %v", ErrEmptyUsername, err)
	}

	// Test overlong username
	_, err = NewUser(strings.Repeat("a", 151), "secret123")
	if err != ErrUsernameTooLong {
		t.Errorf("Expected error %v, got %v", ErrUsernameTooLong, err)
	}

	// Test short password
	_, err = NewUser("caleb", "short")
	if err != ErrPasswordTooShort {
		t.Errorf("Expected error %v, got %v", ErrPasswordTooShort, err)
	}

	// Test overlong password (bcrypt limit)
	_, err = NewUser("caleb", strings.Repeat("p", 73))
	if err != ErrPasswordTooLong {
		t.Errorf("Expected error %v, got %v", ErrPasswordTooLong, err)
	}
}

func TestUserValidateStoredUser(t *testing.T) {
	t.Parallel() // Enable parallel execution
	user := User{
		ID:             uuid.New(),
		Username:       "caleb",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}

	// A user loaded from storage has no plaintext password
	if err := user.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	user.HashedPassword = ""
	if err := user.Validate(); err != ErrEmptyHashedPassword {
		t.Errorf("Expected error %v, got %v", ErrEmptyHashedPassword, err)
	}
}
