package slots

import (
	"context"
	"time"

	"github.com/mindsettler/booking-backend/pkg/types"
)

// DisabledSlotRepository интерфейс реестра отключённых слотов
type DisabledSlotRepository interface {
	Upsert(ctx context.Context, date time.Time, startTime types.TimeString) error
	Delete(ctx context.Context, date time.Time, startTime types.TimeString) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
