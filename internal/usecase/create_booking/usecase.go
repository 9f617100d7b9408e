package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/mindsettler/booking-backend/internal/domain"
	bookingRepo "github.com/mindsettler/booking-backend/internal/infra/storage/booking"
)

// UseCase use case для создания бронирования
//
// Проверка доступности и вставка выполняются в одной сериализуемой
// транзакции, поэтому два одновременных запроса на один слот не могут
// оба пройти проверку. Частичный уникальный индекс в БД страхует
// инвариант на случай любого обхода этого пути.
type UseCase struct {
	template    domain.SlotTemplate
	bookingRepo BookingRepository
	slotRepo    DisabledSlotRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	template domain.SlotTemplate,
	bookingRepo BookingRepository,
	slotRepo DisabledSlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		template:    template,
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: email=%s, date=%s, time=%s",
		req.Email, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Значения по умолчанию для опциональных полей
	applyDefaults(req)

	// 3. Время должно входить в дневной шаблон
	if !uc.template.Contains(req.StartTime) {
		uc.logger.Warn("CreateBooking: time %s is not in the daily template", req.StartTime)
		return nil, fmt.Errorf("%w: time %s is not offered", ErrInvalidTimeSlot, req.StartTime)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем занимающие бронирования на дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetOccupyingByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			// %w оставляет ошибку драйвера доступной для errors.As:
			// так transaction manager видит serialization failure и повторяет попытку
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		for _, b := range bookings {
			if b.StartTime == req.StartTime {
				uc.logger.Warn("CreateBooking: slot %s %s already taken by booking id=%d",
					req.Date.Format(domain.DateFormat), req.StartTime, b.ID)
				return ErrSlotNotAvailable
			}
		}

		// 4.2. Проверяем, что слот не отключён администратором
		disabled, err := uc.slotRepo.GetTimesByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get disabled slots: %v", err)
			return fmt.Errorf("%w: failed to get disabled slots: %w", ErrInternal, err)
		}

		for _, ts := range disabled {
			if ts == req.StartTime {
				uc.logger.Warn("CreateBooking: slot %s %s is disabled",
					req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotNotAvailable
			}
		}

		// 4.3. Создаем бронирование в статусе pending
		booking := &domain.Booking{
			Name:           req.Name,
			Email:          req.Email,
			Phone:          req.Phone,
			Mode:           req.Mode,
			SessionType:    req.SessionType,
			IsFirstSession: req.IsFirstSession,
			BookingDate:    req.Date,
			StartTime:      req.StartTime,
			Notes:          req.Notes,
			Status:         domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Уникальный индекс в БД — последний рубеж против гонки
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot %s %s taken at insert",
					req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:             result.ID,
		Name:           result.Name,
		Email:          result.Email,
		Phone:          result.Phone,
		Mode:           result.Mode,
		SessionType:    result.SessionType,
		IsFirstSession: result.IsFirstSession,
		Date:           result.BookingDate,
		StartTime:      result.StartTime,
		Notes:          result.Notes,
		Status:         string(result.Status),
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}
