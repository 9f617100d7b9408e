package get_available_slots

import (
	"context"
	"time"

	"github.com/mindsettler/booking-backend/internal/domain"
	"github.com/mindsettler/booking-backend/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetOccupyingByDate получает занимающие бронирования (pending/confirmed) на дату
	GetOccupyingByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// DisabledSlotRepository интерфейс реестра отключённых слотов
type DisabledSlotRepository interface {
	GetTimesByDate(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
