package get_available_slots

import (
	"context"
	"fmt"

	"github.com/mindsettler/booking-backend/internal/domain"
	"github.com/mindsettler/booking-backend/pkg/types"
)

// UseCase use case вычисления доступности слотов на день
//
// Доступность чисто вычисляемая: время шаблона доступно, если на эту пару
// (дата, время) нет занимающего бронирования и она не отключена
// администратором. Никаких побочных эффектов.
type UseCase struct {
	template    domain.SlotTemplate
	bookingRepo BookingRepository
	slotRepo    DisabledSlotRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// Дневной шаблон передаётся явно, а не берётся из глобального состояния
func NewUseCase(
	template domain.SlotTemplate,
	bookingRepo BookingRepository,
	slotRepo DisabledSlotRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		template:    template,
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		logger:      logger,
	}
}

// Execute возвращает каждое время шаблона с флагом доступности,
// в порядке шаблона; длина результата всегда равна длине шаблона
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	dateStr := req.Date.Format(domain.DateFormat)
	uc.logger.Info("GetAvailableSlots: date=%s", dateStr)

	bookings, err := uc.bookingRepo.GetOccupyingByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for date=%s: %v", dateStr, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	disabled, err := uc.slotRepo.GetTimesByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get disabled slots for date=%s: %v", dateStr, err)
		return nil, fmt.Errorf("%w: failed to get disabled slots: %v", ErrInternal, err)
	}

	taken := make(map[types.TimeString]struct{}, len(bookings)+len(disabled))
	for _, b := range bookings {
		taken[b.StartTime] = struct{}{}
	}
	for _, ts := range disabled {
		taken[ts] = struct{}{}
	}

	slots := make([]domain.DaySlot, len(uc.template))
	for i, ts := range uc.template {
		_, unavailable := taken[ts]
		slots[i] = domain.DaySlot{
			Time:        ts,
			IsAvailable: !unavailable,
		}
	}

	uc.logger.Info("GetAvailableSlots: date=%s, booked=%d, disabled=%d", dateStr, len(bookings), len(disabled))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}
