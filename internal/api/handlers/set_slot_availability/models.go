package set_slot_availability

// SetSlotAvailabilityRequest HTTP request model
type SetSlotAvailabilityRequest struct {
	Date     string `json:"date"` // "2026-09-14"
	Time     string `json:"time"` // "10:00"
	Disabled bool   `json:"disabled"`
}

// SetSlotAvailabilityResponse HTTP response model
type SetSlotAvailabilityResponse struct {
	Message string `json:"message"`
}
