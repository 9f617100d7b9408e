package create_contact

import (
	"errors"
	"net/http"

	"github.com/mindsettler/booking-backend/internal/api/handlers"
	"github.com/mindsettler/booking-backend/internal/service/intake"
	"github.com/mindsettler/booking-backend/internal/service/intake/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingFields      = "name, email and message are required"
	msgReceived           = "Message received. We will get back to you soon."
)

type Handler struct {
	service IntakeService
	logger  Logger
}

func NewHandler(service IntakeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// MessageResponse HTTP response model
type MessageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// Handle POST /api/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateContact(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, intake.ErrInvalidInput):
			h.logger.Warn("POST /contact - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		default:
			h.logger.Error("POST /contact - Failed to save message: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /contact - Message saved: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, MessageResponse{
		Message: msgReceived,
		ID:      result.ID,
	})
}
