package staff

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueService/pkg/psqlbuilder"
)

var staffColumns = []string{
	"id",
	"user_id",
	"department_id",
	"name",
	"email",
	"position",
	"specializations",
	"is_available",
	"notes",
	"annual_leave_total",
	"sick_leave_total",
	"emergency_leave_total",
	"created_at",
	"updated_at",
}

// Repository репозиторий сотрудников
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает сотрудника по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, false, "GetByID")
}

// GetByIDForUpdate получает сотрудника с блокировкой строки до конца транзакции.
// Назначения и заявки на отпуск одного сотрудника сериализуются через эту блокировку.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Staff, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, dbmetrics.IsInTransaction(ctx), "GetByIDForUpdate")
}

// GetByUserID получает сотрудника по ID пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.Staff, error) {
	return r.getOne(ctx, squirrel.Eq{"user_id": userID}, false, "GetByUserID")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, lock bool, op string) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(staffColumns...).
		From("staff").
		Where(where)
	if lock {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	staff, err := scanStaff(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan staff: %v", ErrScanRow, op, err)
	}

	return staff, nil
}

// List получает сотрудников по фильтру
func (r *Repository) List(ctx context.Context, filter domain.StaffFilter) ([]*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(staffColumns...).
		From("staff").
		OrderBy("name ASC", "id ASC")

	if filter.AvailableOnly {
		builder = builder.Where(squirrel.Eq{"is_available": true})
	}
	if filter.DepartmentID != nil {
		builder = builder.Where(squirrel.Eq{"department_id": *filter.DepartmentID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Staff, 0)
	for rows.Next() {
		staff, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan staff: %v", ErrScanRow, err)
		}
		result = append(result, staff)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStaff(row rowScanner) (*domain.Staff, error) {
	var staff domain.Staff

	err := row.Scan(
		&staff.ID,
		&staff.UserID,
		&staff.DepartmentID,
		&staff.Name,
		&staff.Email,
		&staff.Position,
		pq.Array(&staff.Specializations),
		&staff.IsAvailable,
		&staff.Notes,
		&staff.Allowance.Annual,
		&staff.Allowance.Sick,
		&staff.Allowance.Emergency,
		&staff.CreatedAt,
		&staff.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &staff, nil
}
