package domain

import (
	"time"

	"github.com/mindsettler/booking-backend/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusRejected  BookingStatus = "rejected"
)

// Booking represents a session booking request made by a client.
// A booking occupies its (date, time) slot while it is pending or confirmed;
// a rejected booking releases the slot.
type Booking struct {
	ID             int64
	Name           string
	Email          string
	Phone          string
	Mode           string // "online" or "in-person"
	SessionType    string // "individual", "group" or a free-form label
	IsFirstSession bool
	BookingDate    time.Time
	StartTime      types.TimeString
	Notes          string
	Status         BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOccupying returns true if the booking consumes its slot's availability
func (b *Booking) IsOccupying() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsDecided returns true if an administrator has already adjudicated the booking
func (b *Booking) IsDecided() bool {
	return b.Status == StatusConfirmed || b.Status == StatusRejected
}

// IsValidStatus returns true for one of the known booking statuses
func IsValidStatus(s BookingStatus) bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}
