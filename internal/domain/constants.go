package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default values applied when a client omits optional booking fields
const (
	DefaultMode             = "online"
	DefaultSessionType      = "individual"
	DefaultPreferredChannel = "email"
)

// DefaultDailyTimes is the daily template used when none is configured
var DefaultDailyTimes = []string{"08:00", "10:00", "12:00", "14:00", "16:00", "18:00"}

// OccupyingStatuses lists the statuses that consume a slot's availability.
// Used when filtering bookings for availability computation.
var OccupyingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// ValidStatuses lists every status an administrator may assign
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusRejected,
}
