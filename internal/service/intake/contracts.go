package intake

import (
	"context"

	"github.com/mindsettler/booking-backend/internal/domain"
)

// ContactRepository интерфейс репозитория сообщений контактной формы
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
}

// CorporateRepository интерфейс репозитория корпоративных заявок
type CorporateRepository interface {
	Create(ctx context.Context, enquiry *domain.CorporateEnquiry) (*domain.CorporateEnquiry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
