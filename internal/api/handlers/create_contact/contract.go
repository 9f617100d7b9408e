package create_contact

import (
	"context"

	"github.com/mindsettler/booking-backend/internal/service/intake/models"
)

type IntakeService interface {
	CreateContact(ctx context.Context, req *models.CreateContactRequest) (*models.ContactResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
