package create_booking

import (
	"time"

	"github.com/mindsettler/booking-backend/internal/domain"
	createBooking "github.com/mindsettler/booking-backend/internal/usecase/create_booking"
	"github.com/mindsettler/booking-backend/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Mode           string `json:"mode,omitempty"`
	SessionType    string `json:"sessionType,omitempty"`
	IsFirstSession bool   `json:"isFirstSession,omitempty"`
	Date           string `json:"date"` // "2026-09-14"
	Time           string `json:"time"` // "10:00"
	Notes          string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Mode           string `json:"mode"`
	SessionType    string `json:"sessionType"`
	IsFirstSession bool   `json:"isFirstSession"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Notes          string `json:"notes,omitempty"`
	Status         string `json:"status"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// CreateBookingResponse HTTP response model для успешного создания
type CreateBookingResponse struct {
	Message string           `json:"message"`
	Booking *BookingResponse `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Mode:           r.Mode,
		SessionType:    r.SessionType,
		IsFirstSession: r.IsFirstSession,
		Date:           date,
		StartTime:      startTime,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		Name:           resp.Name,
		Email:          resp.Email,
		Phone:          resp.Phone,
		Mode:           resp.Mode,
		SessionType:    resp.SessionType,
		IsFirstSession: resp.IsFirstSession,
		Date:           resp.Date.Format(domain.DateFormat),
		Time:           resp.StartTime.String(),
		Notes:          resp.Notes,
		Status:         resp.Status,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
