package api

import (
	"log/slog"
	"net/http"

	"github.com/calebmartin/chime-api/internal/api/shared"
	"github.com/calebmartin/chime-api/internal/domain"
	"github.com/calebmartin/chime-api/internal/platform/logger"
	"github.com/calebmartin/chime-api/internal/service"
)

// AlarmHandler handles alarm-related HTTP requests.
type AlarmHandler struct {
	alarmService *service.AlarmService
	logger       *slog.Logger
}

// NewAlarmHandler creates a new AlarmHandler.
func NewAlarmHandler(alarmService *service.AlarmService, logger *slog.Logger) *AlarmHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AlarmHandler")
	}

	return &AlarmHandler{
		alarmService: alarmService,
		logger:       logger.With(slog.String("component", "alarm_handler")),
	}
}

// ListAlarms handles GET /alarms requests. The optional order=time query
// parameter sorts the result by time of day instead of insertion order.
func (h *AlarmHandler) ListAlarms(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	orderByTime := r.URL.Query().Get("order") == "time"

	alarms, err := h.alarmService.ListAlarms(r.Context(), userID, orderByTime)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, alarms)
}

// CreateAlarm handles POST /alarms requests.
func (h *AlarmHandler) CreateAlarm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreateAlarmRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	alarm, err := h.alarmService.CreateAlarm(r.Context(), userID, service.CreateAlarmInput{
		Name:      req.Name,
		AlarmTime: req.AlarmTime,
		Repeat:    domain.RepeatType(req.RepeatType),
		Sound:     req.SoundType,
		Volume:    req.Volume,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("alarm created",
		slog.String("alarm_id", alarm.ID.String()),
		slog.String("user_id", userID.String()))

	shared.RespondWithJSON(w, r, http.StatusCreated, alarm)
}

// GetAlarm handles GET /alarms/{id} requests.
func (h *AlarmHandler) GetAlarm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, alarmID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	alarm, err := h.alarmService.GetAlarm(r.Context(), userID, alarmID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, alarm)
}

// UpdateAlarm handles PATCH /alarms/{id} requests with a partial update.
func (h *AlarmHandler) UpdateAlarm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, alarmID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req UpdateAlarmRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	input := service.UpdateAlarmInput{
		Name:      req.Name,
		AlarmTime: req.AlarmTime,
		Sound:     req.SoundType,
		Volume:    req.Volume,
		IsActive:  req.IsActive,
	}
	if req.RepeatType != nil {
		repeat := domain.RepeatType(*req.RepeatType)
		input.Repeat = &repeat
	}

	alarm, err := h.alarmService.UpdateAlarm(r.Context(), userID, alarmID, input)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, alarm)
}

// DeleteAlarm handles DELETE /alarms/{id} requests.
func (h *AlarmHandler) DeleteAlarm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, alarmID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	if err := h.alarmService.DeleteAlarm(r.Context(), userID, alarmID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DueAlarms handles GET /alarms/due requests. It returns the user's alarms
// that are due at the current instant; one-shot alarms are deactivated as
// they are reported.
func (h *AlarmHandler) DueAlarms(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	due, err := h.alarmService.DueAlarms(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, due)
}
