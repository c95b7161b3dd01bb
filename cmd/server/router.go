package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/calebmartin/chime-api/internal/api"
	apiMiddleware "github.com/calebmartin/chime-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
		app.passwordVerifier,
		app.logger,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	alarmHandler := api.NewAlarmHandler(app.alarmService, app.logger)
	sessionHandler := api.NewSessionHandler(app.sessionService, app.logger)
	bookHandler := api.NewBookHandler(app.bookService, app.logger)
	dashboardHandler := api.NewDashboardHandler(app.dashboardService, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Alarm endpoints
			r.Get("/alarms", alarmHandler.ListAlarms)
			r.Post("/alarms", alarmHandler.CreateAlarm)
			r.Get("/alarms/due", alarmHandler.DueAlarms)
			r.Get("/alarms/{id}", alarmHandler.GetAlarm)
			r.Patch("/alarms/{id}", alarmHandler.UpdateAlarm)
			r.Delete("/alarms/{id}", alarmHandler.DeleteAlarm)

			// Study session endpoints
			r.Get("/sessions", sessionHandler.ListSessions)
			r.Post("/sessions", sessionHandler.CreateSession)
			r.Get("/sessions/{id}", sessionHandler.GetSession)
			r.Patch("/sessions/{id}", sessionHandler.UpdateSession)
			r.Delete("/sessions/{id}", sessionHandler.DeleteSession)

			// Book catalog endpoints
			r.Get("/books", bookHandler.ListBooks)
			r.Post("/books", bookHandler.CreateBook)
			r.Get("/books/{id}", bookHandler.GetBook)
			r.Patch("/books/{id}/progress", bookHandler.UpdateProgress)

			// Dashboard summary
			r.Get("/dashboard", dashboardHandler.GetSummary)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
