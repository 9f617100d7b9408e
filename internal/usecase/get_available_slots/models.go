package get_available_slots

import (
	"time"

	"github.com/mindsettler/booking-backend/internal/domain"
)

// Request модель запроса на получение слотов дня
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со слотами дня
// Slots всегда содержит все времена дневного шаблона в порядке шаблона
type Response struct {
	Date  time.Time
	Slots []domain.DaySlot
}
