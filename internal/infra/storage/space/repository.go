package space

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueService/pkg/psqlbuilder"
)

var spaceColumns = []string{
	"id",
	"name",
	"location",
	"description",
	"capacity",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий площадок
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Space, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает площадку с блокировкой строки.
// Все транзакции, проверяющие занятость площадки перед записью, выстраиваются в очередь на этой блокировке.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Space, error) {
	return r.getByID(ctx, id, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) getByID(ctx context.Context, id int64, lock bool) (*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(spaceColumns...).
		From("spaces").
		Where(squirrel.Eq{"id": id})
	if lock {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var space domain.Space
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&space.ID,
		&space.Name,
		&space.Location,
		&space.Description,
		&space.Capacity,
		&space.IsActive,
		&space.CreatedAt,
		&space.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSpaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan space: %v", ErrScanRow, err)
	}

	return &space, nil
}

// List получает площадки по фильтру, упорядоченные по имени
func (r *Repository) List(ctx context.Context, filter domain.SpacesFilter) ([]*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(spaceColumns...).
		From("spaces").
		OrderBy("name ASC", "id ASC")

	if filter.ActiveOnly {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}
	if filter.MinCapacity != nil {
		builder = builder.Where(squirrel.GtOrEq{"capacity": *filter.MinCapacity})
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

	spaces := make([]*domain.Space, 0)
	for rows.Next() {
		var space domain.Space
		if err := rows.Scan(
			&space.ID,
			&space.Name,
			&space.Location,
			&space.Description,
			&space.Capacity,
			&space.IsActive,
			&space.CreatedAt,
			&space.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: List - scan space: %v", ErrScanRow, err)
		}
		spaces = append(spaces, &space)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return spaces, nil
}
