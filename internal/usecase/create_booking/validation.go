package create_booking

import (
	"fmt"
	"strings"

	"github.com/mindsettler/booking-backend/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	return nil
}

// applyDefaults подставляет значения по умолчанию для опциональных полей
func applyDefaults(req *Request) {
	if strings.TrimSpace(req.Mode) == "" {
		req.Mode = domain.DefaultMode
	}
	if strings.TrimSpace(req.SessionType) == "" {
		req.SessionType = domain.DefaultSessionType
	}
}
