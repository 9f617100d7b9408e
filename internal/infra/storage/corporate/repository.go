package corporate

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mindsettler/booking-backend/internal/domain"
	"github.com/mindsettler/booking-backend/pkg/dbmetrics"
	"github.com/mindsettler/booking-backend/pkg/psqlbuilder"
)

// Repository репозиторий корпоративных заявок
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория корпоративных заявок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет корпоративную заявку
func (r *Repository) Create(ctx context.Context, enquiry *domain.CorporateEnquiry) (*domain.CorporateEnquiry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("corporate_enquiries").
		Columns(
			"organization_name",
			"contact_person",
			"email",
			"phone",
			"requirements",
			"group_size",
		).
		Values(
			enquiry.OrganizationName,
			enquiry.ContactPerson,
			enquiry.Email,
			enquiry.Phone,
			enquiry.Requirements,
			enquiry.GroupSize,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&enquiry.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	enquiry.CreatedAt = createdAt.Time

	return enquiry, nil
}
