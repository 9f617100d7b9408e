package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindsettler/booking-backend/internal/domain"
	bookingRepo "github.com/mindsettler/booking-backend/internal/infra/storage/booking"
	"github.com/mindsettler/booking-backend/internal/service/bookings/models"
)

type fakeRepo struct {
	byID map[int64]*domain.Booking
	list []*domain.Booking

	updatedID     int64
	updatedStatus domain.BookingStatus
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeRepo) List(_ context.Context) ([]*domain.Booking, error) {
	return f.list, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	updated := *b
	updated.Status = status
	f.byID[id] = &updated
	f.updatedID = id
	f.updatedStatus = status
	return &updated, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func sampleBooking(id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		Name:        "Anna Keller",
		Email:       "anna@example.com",
		Mode:        "online",
		SessionType: "individual",
		BookingDate: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		Status:      status,
	}
}

func TestList(t *testing.T) {
	repo := &fakeRepo{
		list: []*domain.Booking{
			sampleBooking(2, domain.StatusPending),
			sampleBooking(1, domain.StatusConfirmed),
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, int64(2), resp.Bookings[0].ID)
	assert.Equal(t, "2026-09-14", resp.Bookings[0].Date)
	assert.Equal(t, "10:00", resp.Bookings[0].StartTime)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{byID: map[int64]*domain.Booking{}}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus_Confirm(t *testing.T) {
	repo := &fakeRepo{
		byID: map[int64]*domain.Booking{
			1: sampleBooking(1, domain.StatusPending),
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
}

func TestUpdateStatus_ReopenRejected(t *testing.T) {
	repo := &fakeRepo{
		byID: map[int64]*domain.Booking{
			1: sampleBooking(1, domain.StatusRejected),
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := &fakeRepo{
		byID: map[int64]*domain.Booking{
			1: sampleBooking(1, domain.StatusPending),
		},
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "cancelled"})

	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, int64(0), repo.updatedID, "repository must not be called on invalid status")
}

// racingRepo имитирует конкурирующее обновление сразу после записи:
// в хранилище оказывается другой статус, но возвращается строка этого вызова
type racingRepo struct {
	fakeRepo
}

func (r *racingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	b, err := r.fakeRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	overwritten := *b
	overwritten.Status = domain.StatusRejected
	r.byID[id] = &overwritten
	return b, nil
}

func TestUpdateStatus_ReturnsRowWrittenByThisCall(t *testing.T) {
	repo := &racingRepo{fakeRepo{
		byID: map[int64]*domain.Booking{
			1: sampleBooking(1, domain.StatusPending),
		},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status,
		"response must reflect this call's write, not a concurrent one")
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{byID: map[int64]*domain.Booking{}}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "rejected"})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}
