package create_booking

import (
	"time"

	"github.com/mindsettler/booking-backend/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Name           string
	Email          string
	Phone          string
	Mode           string // "online" или "in-person"; по умолчанию online
	SessionType    string // "individual", "group" и т.п.; по умолчанию individual
	IsFirstSession bool
	Date           time.Time
	StartTime      types.TimeString
	Notes          string
}

// Response модель ответа на создание бронирования
type Response struct {
	ID             int64
	Name           string
	Email          string
	Phone          string
	Mode           string
	SessionType    string
	IsFirstSession bool
	Date           time.Time
	StartTime      types.TimeString
	Notes          string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
