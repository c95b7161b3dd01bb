package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/calebmartin/chime-api/internal/clock"
	"github.com/calebmartin/chime-api/internal/domain"
	"github.com/calebmartin/chime-api/internal/service"
	"github.com/calebmartin/chime-api/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func newSessionTestRouter(sessions store.SessionStore, now time.Time) http.Handler {
	svc := service.NewSessionService(sessions, clock.NewFixed(now), nil)
	handler := NewSessionHandler(svc, slog.Default())

	r := chi.NewRouter()
	r.Get("/sessions", handler.ListSessions)
	r.Post("/sessions", handler.CreateSession)
	r.Get("/sessions/{id}", handler.GetSession)
	r.Patch("/sessions/{id}", handler.UpdateSession)
	r.Delete("/sessions/{id}", handler.DeleteSession)
	return r
}

func TestCreateSessionHandler(t *testing.T) {
	router := newSessionTestRouter(newFakeSessionStore(), time.Now())
	userID := uuid.New()

	body := `{"subject": "Algebra", "start_time": "2026-04-01T09:00:00Z", "duration": 60}`
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authedRequest("POST", "/sessions", body, userID))

	if rr.Code != http.StatusCreated {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusCreated)
	}

	var session domain.StudySession
	if err := json.Unmarshal(rr.Body.Bytes(), &session); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if session.Status != domain.SessionStatusUpcoming {
		t.Errorf("expected status %s, got %s", domain.SessionStatusUpcoming, session.Status)
	}
	if session.UserID != userID {
		t.Errorf("expected session owned by %s, got %s", userID, session.UserID)
	}
}

func TestCreateSessionHandlerRejectsBadPayload(t *testing.T) {
	router := newSessionTestRouter(newFakeSessionStore(), time.Now())
	userID := uuid.New()

	testCases := []struct {
		name string
		body string
	}{
		{"malformed JSON", `{"subject": `},
		{"missing start time", `{"subject": "X", "duration": 30}`},
		{"zero duration", `{"subject": "X", "start_time": "2026-04-01T09:00:00Z", "duration": 0}`},
		{
			"negative duration",
			`{"subject": "X", "start_time": "2026-04-01T09:00:00Z", "duration": -15}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, authedRequest("POST", "/sessions", tc.body, userID))
			if rr.Code != http.StatusBadRequest {
				t.Errorf("handler returned wrong status code: got %v want %v",
					rr.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestGetSessionHandlerDerivesStatus(t *testing.T) {
	fake := newFakeSessionStore()
	start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	// The clock sits in the middle of the scheduled window
	router := newSessionTestRouter(fake, start.Add(30*time.Minute))

	userID := uuid.New()
	session, err := domain.NewStudySession(userID, "Reading", start, 60, "", nil)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	if err := fake.Create(context.Background(), session); err != nil {
		t.Fatalf("failed to store session: %v", err)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authedRequest("GET", "/sessions/"+session.ID.String(), "", userID))

	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}

	var got domain.StudySession
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.Status != domain.SessionStatusActive {
		t.Errorf("expected derived status %s, got %s", domain.SessionStatusActive, got.Status)
	}
}

func TestGetSessionHandlerOwnership(t *testing.T) {
	fake := newFakeSessionStore()
	router := newSessionTestRouter(fake, time.Now())

	owner := uuid.New()
	session, err := domain.NewStudySession(owner, "Private", time.Now().Add(time.Hour), 30, "", nil)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	if err := fake.Create(context.Background(), session); err != nil {
		t.Fatalf("failed to store session: %v", err)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authedRequest("GET", "/sessions/"+session.ID.String(), "", uuid.New()))

	if rr.Code != http.StatusNotFound {
		t.Errorf("stranger: got status %v want %v", rr.Code, http.StatusNotFound)
	}
}

func TestDeleteSessionHandler(t *testing.T) {
	fake := newFakeSessionStore()
	router := newSessionTestRouter(fake, time.Now())

	userID := uuid.New()
	session, err := domain.NewStudySession(userID, "Done", time.Now().Add(time.Hour), 30, "", nil)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	if err := fake.Create(context.Background(), session); err != nil {
		t.Fatalf("failed to store session: %v", err)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authedRequest("DELETE", "/sessions/"+session.ID.String(), "", userID))

	if rr.Code != http.StatusNoContent {
		t.Fatalf("handler returned wrong status code: got %v want %v",
			rr.Code, http.StatusNoContent)
	}
	if _, ok := fake.sessions[session.ID]; ok {
		t.Error("expected session to be removed from the store")
	}
}
