package contact

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mindsettler/booking-backend/internal/domain"
	"github.com/mindsettler/booking-backend/pkg/dbmetrics"
	"github.com/mindsettler/booking-backend/pkg/psqlbuilder"
)

// Repository репозиторий сообщений контактной формы
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория контактной формы
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет сообщение контактной формы
func (r *Repository) Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("contact_messages").
		Columns(
			"name",
			"email",
			"phone",
			"preferred_channel",
			"message",
		).
		Values(
			msg.Name,
			msg.Email,
			msg.Phone,
			msg.PreferredChannel,
			msg.Message,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&msg.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	msg.CreatedAt = createdAt.Time

	return msg, nil
}
