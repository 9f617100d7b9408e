package create_corporate_enquiry

import (
	"errors"
	"net/http"

	"github.com/mindsettler/booking-backend/internal/api/handlers"
	"github.com/mindsettler/booking-backend/internal/service/intake"
	"github.com/mindsettler/booking-backend/internal/service/intake/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingFields      = "organizationName, contactPerson and email are required"
	msgReceived           = "Enquiry received. Our team will contact you shortly."
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

// EnquiryResponse HTTP response model
type EnquiryResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// Handle POST /api/corporate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCorporateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /corporate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateCorporate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, intake.ErrInvalidInput):
			h.logger.Warn("POST /corporate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		default:
			h.logger.Error("POST /corporate - Failed to save enquiry: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /corporate - Enquiry saved: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, EnquiryResponse{
		Message: msgReceived,
		ID:      result.ID,
	})
}
