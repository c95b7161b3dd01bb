package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/calebmartin/chime-api/internal/clock"
	"github.com/calebmartin/chime-api/internal/config"
	"github.com/calebmartin/chime-api/internal/domain/recurrence"
	"github.com/calebmartin/chime-api/internal/platform/postgres"
	"github.com/calebmartin/chime-api/internal/poller"
	"github.com/calebmartin/chime-api/internal/service"
	"github.com/calebmartin/chime-api/internal/service/auth"
	"github.com/calebmartin/chime-api/internal/store"
)

// application holds the wired dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore

	jwtService       auth.JWTService
	passwordVerifier *auth.BcryptVerifier

	alarmService     *service.AlarmService
	sessionService   *service.SessionService
	bookService      *service.BookService
	dashboardService *service.DashboardService

	alarmPoller *poller.Poller
}

// newApplication wires the stores and services on top of the database
// connection and starts the background poller when enabled.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, logger)
	alarmStore := postgres.NewPostgresAlarmStore(db, logger)
	sessionStore := postgres.NewPostgresSessionStore(db, logger)
	bookStore := postgres.NewPostgresBookStore(db, logger)

	systemClock := clock.NewSystemClock()
	evaluator := recurrence.NewEvaluator()

	alarmService := service.NewAlarmService(alarmStore, evaluator, systemClock, logger)
	sessionService := service.NewSessionService(sessionStore, systemClock, logger)
	bookService := service.NewBookService(bookStore, sessionStore, logger)
	dashboardService := service.NewDashboardService(
		alarmStore,
		sessionStore,
		bookStore,
		systemClock,
		logger,
	)

	app := &application{
		config:           cfg,
		logger:           logger,
		db:               db,
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: auth.NewBcryptVerifier(),
		alarmService:     alarmService,
		sessionService:   sessionService,
		bookService:      bookService,
		dashboardService: dashboardService,
	}

	if cfg.Poller.Enabled {
		app.alarmPoller = poller.New(alarmService, cfg.Poller, logger)
		if err := app.alarmPoller.Start(); err != nil {
			return nil, fmt.Errorf("failed to start alarm poller: %w", err)
		}
	}

	return app, nil
}

// cleanup releases resources held by the application during shutdown.
func (app *application) cleanup() {
	if app.alarmPoller != nil {
		app.alarmPoller.Stop()
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("Error closing database connection", "error", err)
	}
}
