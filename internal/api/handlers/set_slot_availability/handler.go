package set_slot_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/mindsettler/booking-backend/internal/api/handlers"
	"github.com/mindsettler/booking-backend/internal/domain"
	"github.com/mindsettler/booking-backend/internal/service/slots"
	"github.com/mindsettler/booking-backend/pkg/types"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingDateTime    = "date and time are required"
	msgInvalidDate        = "Invalid date format, expected YYYY-MM-DD"
	msgInvalidTime        = "Invalid time format, expected HH:MM"
	msgSlotUpdated        = "Slot updated"
)

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/slots/disable
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SetSlotAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/disable - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Date == "" || req.Time == "" {
		h.logger.Warn("POST /slots/disable - Missing date or time")
		handlers.RespondBadRequest(w, msgMissingDateTime)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /slots/disable - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		h.logger.Warn("POST /slots/disable - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	if err := h.service.SetAvailability(r.Context(), date, startTime, req.Disabled); err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("POST /slots/disable - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /slots/disable - Failed to update slot: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/disable - Slot updated: date=%s, time=%s, disabled=%t",
		req.Date, req.Time, req.Disabled)
	handlers.RespondJSON(w, http.StatusOK, SetSlotAvailabilityResponse{Message: msgSlotUpdated})
}
