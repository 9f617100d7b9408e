package get_available_slots

import (
	"time"

	"github.com/mindsettler/booking-backend/internal/domain"
	getAvailableSlots "github.com/mindsettler/booking-backend/internal/usecase/get_available_slots"
)

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	Date  string    `json:"date"`
	Slots []DaySlot `json:"slots"`
}

// DaySlot модель слота дня
type DaySlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// ToUseCaseRequest создает запрос use case из query параметра date
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *DaySlotsResponse {
	slots := make([]DaySlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = DaySlot{
			Time:      slot.Time.String(),
			Available: slot.IsAvailable,
		}
	}

	return &DaySlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
