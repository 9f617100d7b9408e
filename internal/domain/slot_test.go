package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindsettler/booking-backend/pkg/types"
)

func TestNewSlotTemplate(t *testing.T) {
	template, err := NewSlotTemplate([]string{"08:00", "10:00", "12:00"})

	require.NoError(t, err)
	require.Len(t, template, 3)
	assert.Equal(t, types.TimeString("08:00"), template[0])
	assert.Equal(t, types.TimeString("12:00"), template[2])
}

func TestNewSlotTemplate_Default(t *testing.T) {
	template, err := NewSlotTemplate(DefaultDailyTimes)

	require.NoError(t, err)
	assert.Len(t, template, 6)
}

func TestNewSlotTemplate_Errors(t *testing.T) {
	_, err := NewSlotTemplate(nil)
	assert.Error(t, err)

	_, err = NewSlotTemplate([]string{"08:00", "8:30"})
	assert.Error(t, err)

	_, err = NewSlotTemplate([]string{"08:00", "08:00"})
	assert.Error(t, err)
}

func TestSlotTemplate_Contains(t *testing.T) {
	template, err := NewSlotTemplate([]string{"08:00", "10:00"})
	require.NoError(t, err)

	assert.True(t, template.Contains("10:00"))
	assert.False(t, template.Contains("09:00"))
}

func TestBooking_IsOccupying(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsOccupying())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsOccupying())
	assert.False(t, (&Booking{Status: StatusRejected}).IsOccupying())
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusPending))
	assert.True(t, IsValidStatus(StatusConfirmed))
	assert.True(t, IsValidStatus(StatusRejected))
	assert.False(t, IsValidStatus("cancelled"))
	assert.False(t, IsValidStatus(""))
}
