package update_booking_status

import (
	"github.com/mindsettler/booking-backend/internal/service/bookings/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	Message string                  `json:"message"`
	Booking *models.BookingResponse `json:"booking"`
}
