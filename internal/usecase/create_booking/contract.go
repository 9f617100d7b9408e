package create_booking

import (
	"context"
	"time"

	"github.com/mindsettler/booking-backend/internal/domain"
	"github.com/mindsettler/booking-backend/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetOccupyingByDate получает занимающие бронирования (pending/confirmed) на дату
	// Внутри транзакции строки блокируются (FOR UPDATE)
	GetOccupyingByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// DisabledSlotRepository интерфейс реестра отключённых слотов
type DisabledSlotRepository interface {
	GetTimesByDate(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
