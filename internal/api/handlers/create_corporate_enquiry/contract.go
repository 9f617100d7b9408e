package create_corporate_enquiry

import (
	"context"

	"github.com/mindsettler/booking-backend/internal/service/intake/models"
)

type IntakeService interface {
	CreateCorporate(ctx context.Context, req *models.CreateCorporateRequest) (*models.CorporateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
