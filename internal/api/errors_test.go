package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/calebmartin/chime-api/internal/domain"
	"github.com/calebmartin/chime-api/internal/service/auth"
	"github.com/calebmartin/chime-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"wrong token type", auth.ErrWrongTokenType, http.StatusUnauthorized},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"alarm not found", store.ErrAlarmNotFound, http.StatusNotFound},
		{"session not found", store.ErrSessionNotFound, http.StatusNotFound},
		{"book not found", store.ErrBookNotFound, http.StatusNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"username exists", store.ErrUsernameExists, http.StatusConflict},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"invalid alarm time", domain.ErrInvalidAlarmTime, http.StatusBadRequest},
		{"volume out of range", domain.ErrVolumeOutOfRange, http.StatusBadRequest},
		{"non-positive duration", domain.ErrNonPositiveDuration, http.StatusBadRequest},
		{"negative page", domain.ErrNegativeCurrentPage, http.StatusBadRequest},
		{"page count unset", domain.ErrBookPageCountUnset, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{
			"wrapped not found",
			fmt.Errorf("loading: %w", store.ErrAlarmNotFound),
			http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Alarm not found", GetSafeErrorMessage(store.ErrAlarmNotFound))
	assert.Equal(t, "Username already exists", GetSafeErrorMessage(store.ErrUsernameExists))
	assert.Equal(t, "Current page cannot be negative",
		GetSafeErrorMessage(domain.ErrNegativeCurrentPage))
	assert.Equal(t, "Book has no page count", GetSafeErrorMessage(domain.ErrBookPageCountUnset))

	// Internal details never leak through the safe message
	internal := errors.New("pq: connection refused host=10.0.0.5 password=hunter2")
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(internal))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}
