package domain

import (
	"fmt"
	"time"

	"github.com/mindsettler/booking-backend/pkg/types"
)

// SlotTemplate is the fixed, ordered set of time-of-day labels offered on
// every calendar date. It is immutable configuration: built once at startup
// and injected into the components that need it.
type SlotTemplate []types.TimeString

// NewSlotTemplate builds a template from HH:MM labels, validating format and
// uniqueness. Order is preserved.
func NewSlotTemplate(labels []string) (SlotTemplate, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("slot template: at least one time is required")
	}

	template := make(SlotTemplate, 0, len(labels))
	seen := make(map[types.TimeString]struct{}, len(labels))

	for _, label := range labels {
		ts, err := types.NewTimeStringFromString(label)
		if err != nil {
			return nil, fmt.Errorf("slot template: %w", err)
		}
		if _, ok := seen[ts]; ok {
			return nil, fmt.Errorf("slot template: duplicate time %q", label)
		}
		seen[ts] = struct{}{}
		template = append(template, ts)
	}

	return template, nil
}

// Contains returns true if the time is one of the template entries
func (t SlotTemplate) Contains(ts types.TimeString) bool {
	for _, entry := range t {
		if entry == ts {
			return true
		}
	}
	return false
}

// DaySlot is one template time on a specific date together with its
// computed availability
type DaySlot struct {
	Time        types.TimeString
	IsAvailable bool
}

// DisabledSlot marks a (date, time) pair as force-unavailable by an
// administrator, regardless of booking state. Presence means disabled;
// there is no other payload.
type DisabledSlot struct {
	ID        int64
	SlotDate  time.Time
	StartTime types.TimeString
	CreatedAt time.Time
}
