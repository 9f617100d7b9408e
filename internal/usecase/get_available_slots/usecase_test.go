package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindsettler/booking-backend/internal/domain"
	"github.com/mindsettler/booking-backend/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetOccupyingByDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeDisabledSlotRepo struct {
	times []types.TimeString
	err   error
}

func (f *fakeDisabledSlotRepo) GetTimesByDate(_ context.Context, _ time.Time) ([]types.TimeString, error) {
	return f.times, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testTemplate(t *testing.T) domain.SlotTemplate {
	t.Helper()
	template, err := domain.NewSlotTemplate(domain.DefaultDailyTimes)
	require.NoError(t, err)
	return template
}

func TestExecute_AllSlotsFree(t *testing.T) {
	template := testTemplate(t)
	uc := NewUseCase(template, &fakeBookingRepo{}, &fakeDisabledSlotRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, len(template))
	for i, slot := range resp.Slots {
		assert.Equal(t, template[i], slot.Time)
		assert.True(t, slot.IsAvailable)
	}
}

func TestExecute_BookedAndDisabledUnavailable(t *testing.T) {
	template := testTemplate(t)
	bookingRepo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{StartTime: "10:00", Status: domain.StatusPending},
			{StartTime: "14:00", Status: domain.StatusConfirmed},
		},
	}
	slotRepo := &fakeDisabledSlotRepo{
		times: []types.TimeString{"16:00"},
	}
	uc := NewUseCase(template, bookingRepo, slotRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, len(template))

	byTime := make(map[types.TimeString]bool, len(resp.Slots))
	for _, slot := range resp.Slots {
		byTime[slot.Time] = slot.IsAvailable
	}

	assert.True(t, byTime["08:00"])
	assert.False(t, byTime["10:00"], "pending booking must occupy the slot")
	assert.True(t, byTime["12:00"])
	assert.False(t, byTime["14:00"], "confirmed booking must occupy the slot")
	assert.False(t, byTime["16:00"], "disabled slot must be unavailable")
	assert.True(t, byTime["18:00"])
}

func TestExecute_DisabledTimeOutsideTemplateIgnored(t *testing.T) {
	template := testTemplate(t)
	slotRepo := &fakeDisabledSlotRepo{
		times: []types.TimeString{"09:30"},
	}
	uc := NewUseCase(template, &fakeBookingRepo{}, slotRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, len(template))
	for _, slot := range resp.Slots {
		assert.True(t, slot.IsAvailable)
	}
}

func TestExecute_ZeroDate(t *testing.T) {
	uc := NewUseCase(testTemplate(t), &fakeBookingRepo{}, &fakeDisabledSlotRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_BookingRepoError(t *testing.T) {
	bookingRepo := &fakeBookingRepo{err: errors.New("connection refused")}
	uc := NewUseCase(testTemplate(t), bookingRepo, &fakeDisabledSlotRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_DisabledSlotRepoError(t *testing.T) {
	slotRepo := &fakeDisabledSlotRepo{err: errors.New("connection refused")}
	uc := NewUseCase(testTemplate(t), &fakeBookingRepo{}, slotRepo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrInternal)
}
