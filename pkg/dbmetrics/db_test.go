package dbmetrics

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindsettler/booking-backend/pkg/metrics"
)

// Метрики регистрируются в дефолтном registry, поэтому создаются
// один раз на весь тестовый бинарь
var testMetrics = metrics.New("dbmetrics-test")

func newWrappedDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return Wrap(db, testMetrics, "dbmetrics-test"), mock
}

func TestQueryRowContext_RecordsError(t *testing.T) {
	wrapped, mock := newWrappedDB(t)

	before := dbQueriesCount(t, "SELECT", "error")

	mock.ExpectQuery("SELECT 1").WillReturnError(errors.New("relation does not exist"))

	row := wrapped.QueryRowContext(context.Background(), "SELECT 1")

	require.Error(t, row.Err())
	assert.Equal(t, before+1, dbQueriesCount(t, "SELECT", "error"),
		"failed single-row query must be counted with status=error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryRowContext_RecordsOK(t *testing.T) {
	wrapped, mock := newWrappedDB(t)

	before := dbQueriesCount(t, "SELECT", "ok")

	mock.ExpectQuery("SELECT 1").
		WillReturnRows(sqlmock.NewRows([]string{"one"}).AddRow(1))

	var one int
	err := wrapped.QueryRowContext(context.Background(), "SELECT 1").Scan(&one)

	require.NoError(t, err)
	assert.Equal(t, before+1, dbQueriesCount(t, "SELECT", "ok"))
	require.NoError(t, mock.ExpectationsWereMet())
}

// dbQueriesCount читает значение счётчика db_queries_total
// с указанными метками из дефолтного registry
func dbQueriesCount(t *testing.T, operation, status string) float64 {
	t.Helper()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != "db_queries_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := make(map[string]string)
			for _, label := range metric.GetLabel() {
				labels[label.GetName()] = label.GetValue()
			}
			if labels["operation"] == operation && labels["status"] == status {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}
