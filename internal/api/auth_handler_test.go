package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/calebmartin/chime-api/internal/config"
	"github.com/calebmartin/chime-api/internal/domain"
	"github.com/calebmartin/chime-api/internal/service/auth"
	"github.com/calebmartin/chime-api/internal/store"
	"github.com/google/uuid"
)

// fakeUserStore is an in-memory store.UserStore for handler tests.
type fakeUserStore struct {
	users map[uuid.UUID]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*domain.User)}
}

func (f *fakeUserStore) Create(ctx context.Context, user *domain.User) error {
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return store.ErrUsernameExists
		}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (f *fakeUserStore) Update(ctx context.Context, user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return store.ErrUserNotFound
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserStore) WithTx(tx *sql.Tx) store.UserStore { return f }

func newAuthHandlerForTest(t *testing.T, users store.UserStore) *AuthHandler {
	t.Helper()

	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:                   "0123456789abcdef0123456789abcdef",
		TokenLifetimeMinutes:        15,
		RefreshTokenLifetimeMinutes: 1440,
	})
	if err != nil {
		t.Fatalf("failed to create JWT service: %v", err)
	}

	verifier := auth.NewBcryptVerifier()
	return NewAuthHandler(users, jwtService, verifier, verifier, nil)
}

func TestRegisterHandler(t *testing.T) {
	users := newFakeUserStore()
	handler := newAuthHandlerForTest(t, users)

	body := `{"username": "caleb", "password": "sup3rs3cret"}`
	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.Register(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("handler returned wrong status code: got %v want %v body: %s",
			rr.Code, http.StatusCreated, rr.Body.String())
	}

	var resp AuthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.UserID == uuid.Nil {
		t.Error("expected a user ID in the response")
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("expected a token pair in the response")
	}

	// The stored user carries only the hash, never the plaintext
	stored := users.users[resp.UserID]
	if stored == nil {
		t.Fatal("expected user to be stored")
	}
	if stored.Password != "" {
		t.Error("plaintext password must not be stored")
	}
	if stored.HashedPassword == "" || stored.HashedPassword == "sup3rs3cret" {
		t.Error("expected a bcrypt hash in the stored user")
	}
}

func TestRegisterHandlerDuplicateUsername(t *testing.T) {
	users := newFakeUserStore()
	handler := newAuthHandlerForTest(t, users)

	body := `{"username": "caleb", "password": "sup3rs3cret"}`
	rr := httptest.NewRecorder()
	handler.Register(rr, httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body)))
	if rr.Code != http.StatusCreated {
		t.Fatalf("first register: got %v want %v", rr.Code, http.StatusCreated)
	}

	rr = httptest.NewRecorder()
	handler.Register(rr, httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body)))
	if rr.Code != http.StatusConflict {
		t.Errorf("second register: got %v want %v", rr.Code, http.StatusConflict)
	}
}

func TestRegisterHandlerRejectsWeakPassword(t *testing.T) {
	handler := newAuthHandlerForTest(t, newFakeUserStore())

	body := `{"username": "caleb", "password": "short"}`
	rr := httptest.NewRecorder()
	handler.Register(rr, httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body)))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v",
			rr.Code, http.StatusBadRequest)
	}
}

func TestLoginHandler(t *testing.T) {
	users := newFakeUserStore()
	handler := newAuthHandlerForTest(t, users)

	registerBody := `{"username": "caleb", "password": "sup3rs3cret"}`
	rr := httptest.NewRecorder()
	handler.Register(rr,
		httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(registerBody)))
	if rr.Code != http.StatusCreated {
		t.Fatalf("register: got %v want %v", rr.Code, http.StatusCreated)
	}

	testCases := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid credentials", `{"username": "caleb", "password": "sup3rs3cret"}`, http.StatusOK},
		{"wrong password", `{"username": "caleb", "password": "wrong"}`, http.StatusUnauthorized},
		{"unknown user", `{"username": "nobody", "password": "sup3rs3cret"}`, http.StatusUnauthorized},
		{"malformed JSON", `{"username": `, http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			handler.Login(rr,
				httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(tc.body)))
			if rr.Code != tc.wantStatus {
				t.Errorf("handler returned wrong status code: got %v want %v",
					rr.Code, tc.wantStatus)
			}
		})
	}
}

func TestRefreshTokenHandler(t *testing.T) {
	users := newFakeUserStore()
	handler := newAuthHandlerForTest(t, users)

	registerBody := `{"username": "caleb", "password": "sup3rs3cret"}`
	rr := httptest.NewRecorder()
	handler.Register(rr,
		httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(registerBody)))
	if rr.Code != http.StatusCreated {
		t.Fatalf("register: got %v want %v", rr.Code, http.StatusCreated)
	}

	var registered AuthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &registered); err != nil {
		t.Fatalf("failed to decode register response: %v", err)
	}

	// A valid refresh token yields a fresh pair
	body := `{"refresh_token": "` + registered.RefreshToken + `"}`
	rr = httptest.NewRecorder()
	handler.RefreshToken(rr,
		httptest.NewRequest("POST", "/api/auth/refresh", strings.NewReader(body)))
	if rr.Code != http.StatusOK {
		t.Fatalf("refresh: got %v want %v body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var refreshed RefreshTokenResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &refreshed); err != nil {
		t.Fatalf("failed to decode refresh response: %v", err)
	}
	if refreshed.AccessToken == "" || refreshed.RefreshToken == "" {
		t.Error("expected a fresh token pair")
	}

	// An access token is the wrong type and must be rejected
	body = `{"refresh_token": "` + registered.AccessToken + `"}`
	rr = httptest.NewRecorder()
	handler.RefreshToken(rr,
		httptest.NewRequest("POST", "/api/auth/refresh", strings.NewReader(body)))
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("refresh with access token: got %v want %v", rr.Code, http.StatusUnauthorized)
	}

	// Garbage is rejected outright
	body = `{"refresh_token": "not.a.jwt"}`
	rr = httptest.NewRecorder()
	handler.RefreshToken(rr,
		httptest.NewRequest("POST", "/api/auth/refresh", strings.NewReader(body)))
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("refresh with garbage: got %v want %v", rr.Code, http.StatusUnauthorized)
	}
}
