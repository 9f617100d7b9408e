package slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindsettler/booking-backend/pkg/types"
)

type fakeRepo struct {
	upserts int
	deletes int
	err     error
}

func (f *fakeRepo) Upsert(_ context.Context, _ time.Time, _ types.TimeString) error {
	f.upserts++
	return f.err
}

func (f *fakeRepo) Delete(_ context.Context, _ time.Time, _ types.TimeString) error {
	f.deletes++
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testDate = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

func TestSetAvailability_Disable(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	err := svc.SetAvailability(context.Background(), testDate, "10:00", true)

	require.NoError(t, err)
	assert.Equal(t, 1, repo.upserts)
	assert.Equal(t, 0, repo.deletes)
}

func TestSetAvailability_Enable(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	err := svc.SetAvailability(context.Background(), testDate, "10:00", false)

	require.NoError(t, err)
	assert.Equal(t, 0, repo.upserts)
	assert.Equal(t, 1, repo.deletes)
}

func TestSetAvailability_Validation(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	err := svc.SetAvailability(context.Background(), time.Time{}, "10:00", true)
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.SetAvailability(context.Background(), testDate, "", true)
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.SetAvailability(context.Background(), testDate, "10am", true)
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Equal(t, 0, repo.upserts)
}

func TestSetAvailability_RepoError(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection refused")}
	svc := NewService(repo, nopLogger{})

	err := svc.SetAvailability(context.Background(), testDate, "10:00", true)

	assert.ErrorIs(t, err, ErrInternal)
}
