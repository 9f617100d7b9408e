package disabledslot

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/mindsettler/booking-backend/pkg/dbmetrics"
	"github.com/mindsettler/booking-backend/pkg/psqlbuilder"
	"github.com/mindsettler/booking-backend/pkg/types"
)

// Repository репозиторий реестра отключённых слотов
// Реестр - это множество пар (дата, время): наличие записи означает,
// что слот принудительно недоступен
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория отключённых слотов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert добавляет пару (дата, время) в реестр
// Идемпотентен: повторный вызов не создает дубликат и не возвращает ошибку
// (ON CONFLICT DO NOTHING по уникальному ключу)
func (r *Repository) Upsert(ctx context.Context, date time.Time, startTime types.TimeString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("disabled_slots").
		Columns("slot_date", "start_time").
		Values(date, startTime).
		Suffix("ON CONFLICT (slot_date, start_time) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет пару (дата, время) из реестра
// Идемпотентен: удаление несуществующей записи не ошибка
func (r *Repository) Delete(ctx context.Context, date time.Time, startTime types.TimeString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("disabled_slots").
		Where(squirrel.Eq{"slot_date": date, "start_time": startTime}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	return nil
}

// GetTimesByDate получает времена отключённых слотов на указанную дату
func (r *Repository) GetTimesByDate(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("start_time").
		From("disabled_slots").
		Where(squirrel.Eq{"slot_date": date}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTimesByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		// %w сохраняет ошибку драйвера: этот запрос выполняется внутри
		// сериализуемой транзакции, и serialization failure должен быть retryable
		return nil, fmt.Errorf("%w: GetTimesByDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)
	for rows.Next() {
		var ts types.TimeString
		if err := rows.Scan(&ts); err != nil {
			return nil, fmt.Errorf("%w: GetTimesByDate - scan row: %w", ErrScanRow, err)
		}
		times = append(times, ts)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTimesByDate - rows error: %w", ErrScanRow, err)
	}

	return times, nil
}
