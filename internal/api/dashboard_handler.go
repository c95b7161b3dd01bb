package api

import (
	"log/slog"
	"net/http"

	"github.com/calebmartin/chime-api/internal/api/shared"
	"github.com/calebmartin/chime-api/internal/domain"
	"github.com/calebmartin/chime-api/internal/platform/logger"
	"github.com/calebmartin/chime-api/internal/service"
)

// DashboardHandler serves the aggregated per-user dashboard summary.
type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *slog.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(
	dashboardService *service.DashboardService,
	logger *slog.Logger,
) *DashboardHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for DashboardHandler")
	}

	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger.With(slog.String("component", "dashboard_handler")),
	}
}

// GetSummary handles GET /dashboard requests. The counters are computed
// fresh from the stores on every request; nothing is cached.
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	summary, err := h.dashboardService.Summarize(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, summary)
}
