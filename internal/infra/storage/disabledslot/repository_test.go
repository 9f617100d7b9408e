package disabledslot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindsettler/booking-backend/pkg/types"
)

var testDate = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

func newTestRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestUpsert(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec("INSERT INTO disabled_slots").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Upsert(context.Background(), testDate, "10:00")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_Duplicate(t *testing.T) {
	repo, mock := newTestRepo(t)

	// ON CONFLICT DO NOTHING: повторная вставка затрагивает 0 строк
	mock.ExpectExec("INSERT INTO disabled_slots").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Upsert(context.Background(), testDate, "10:00")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_Idempotent(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec("DELETE FROM disabled_slots").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), testDate, "10:00")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTimesByDate(t *testing.T) {
	repo, mock := newTestRepo(t)

	rows := sqlmock.NewRows([]string{"start_time"}).
		AddRow("10:00").
		AddRow("16:00")

	mock.ExpectQuery("SELECT start_time FROM disabled_slots").
		WillReturnRows(rows)

	times, err := repo.GetTimesByDate(context.Background(), testDate)

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "16:00"}, times)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTimesByDate_QueryError(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT start_time FROM disabled_slots").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.GetTimesByDate(context.Background(), testDate)

	assert.ErrorIs(t, err, ErrExecQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}
