package slots

import (
	"context"
	"fmt"
	"time"

	"github.com/mindsettler/booking-backend/internal/domain"
	"github.com/mindsettler/booking-backend/pkg/types"
)

// Service сервис управления доступностью слотов (админская панель)
type Service struct {
	slotRepo DisabledSlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo DisabledSlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// SetAvailability отключает или включает слот (дата, время).
//
// Обе операции идемпотентны. Время не обязано входить в дневной шаблон:
// запись на постороннее время безвредна и просто не влияет на выдачу,
// а при смене шаблона уже действует.
func (s *Service) SetAvailability(ctx context.Context, date time.Time, startTime types.TimeString, disabled bool) error {
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if startTime.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := startTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	dateStr := date.Format(domain.DateFormat)

	if disabled {
		if err := s.slotRepo.Upsert(ctx, date, startTime); err != nil {
			s.logger.Error("SetAvailability: failed to disable slot %s %s: %v", dateStr, startTime, err)
			return fmt.Errorf("%w: SetAvailability - disable slot: %v", ErrInternal, err)
		}
		s.logger.Info("SetAvailability: slot %s %s disabled", dateStr, startTime)
		return nil
	}

	if err := s.slotRepo.Delete(ctx, date, startTime); err != nil {
		s.logger.Error("SetAvailability: failed to enable slot %s %s: %v", dateStr, startTime, err)
		return fmt.Errorf("%w: SetAvailability - enable slot: %v", ErrInternal, err)
	}
	s.logger.Info("SetAvailability: slot %s %s enabled", dateStr, startTime)
	return nil
}
