package set_slot_availability

import (
	"context"
	"time"

	"github.com/mindsettler/booking-backend/pkg/types"
)

type SlotsService interface {
	SetAvailability(ctx context.Context, date time.Time, startTime types.TimeString, disabled bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
