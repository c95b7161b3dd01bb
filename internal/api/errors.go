package api

import (
	"errors"
	"net/http"

	"github.com/calebmartin/chime-api/internal/api/shared"
	"github.com/calebmartin/chime-api/internal/domain"
	"github.com/calebmartin/chime-api/internal/service/auth"
	"github.com/calebmartin/chime-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrEmptyAlarmName),
		errors.Is(err, domain.ErrInvalidAlarmTime),
		errors.Is(err, domain.ErrInvalidRepeat),
		errors.Is(err, domain.ErrVolumeOutOfRange),
		errors.Is(err, domain.ErrEmptySessionSubject),
		errors.Is(err, domain.ErrNonPositiveDuration),
		errors.Is(err, domain.ErrInvalidSessionStatus),
		errors.Is(err, domain.ErrEmptyBookTitle),
		errors.Is(err, domain.ErrEmptyBookAuthor),
		errors.Is(err, domain.ErrNegativePageCount),
		errors.Is(err, domain.ErrNegativeCurrentPage),
		errors.Is(err, domain.ErrBookPageCountUnset):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, domain.ErrUnauthorized):
		return "Unauthorized"

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrAlarmNotFound):
		return "Alarm not found"

	case errors.Is(err, store.ErrSessionNotFound):
		return "Study session not found"

	case errors.Is(err, store.ErrBookNotFound):
		return "Book not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	// Conflict errors
	case errors.Is(err, store.ErrUsernameExists):
		return "Username already exists"

	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"

	// Bad request errors
	case errors.Is(err, domain.ErrNegativeCurrentPage):
		return "Current page cannot be negative"

	case errors.Is(err, domain.ErrBookPageCountUnset):
		return "Book has no page count"

	case errors.Is(err, domain.ErrInvalidAlarmTime):
		return "Alarm time must be a valid 24-hour HH:MM value"

	case errors.Is(err, domain.ErrVolumeOutOfRange):
		return "Alarm volume must be between 0 and 100"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrEmptyAlarmName),
		errors.Is(err, domain.ErrInvalidRepeat),
		errors.Is(err, domain.ErrEmptySessionSubject),
		errors.Is(err, domain.ErrNonPositiveDuration),
		errors.Is(err, domain.ErrInvalidSessionStatus),
		errors.Is(err, domain.ErrEmptyBookTitle),
		errors.Is(err, domain.ErrEmptyBookAuthor),
		errors.Is(err, domain.ErrNegativePageCount):
		return "Invalid entity data"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid identifier"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps an internal error to a status code and safe message
// and writes the response, logging the underlying error. An explicit
// userMessage overrides the derived safe message when non-empty.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	statusCode := MapErrorToStatusCode(err)

	message := userMessage
	if message == "" {
		message = GetSafeErrorMessage(err)
	}

	shared.RespondWithErrorAndLog(w, r, statusCode, message, err)
}
