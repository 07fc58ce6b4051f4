package department

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueService/pkg/psqlbuilder"
)

// Repository репозиторий отделов (только чтение, отделы ведутся вне сервиса)
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByHeadUserID возвращает отдел, которым руководит пользователь
func (r *Repository) GetByHeadUserID(ctx context.Context, userID int64) (*domain.Department, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := headedByQuery(userID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHeadUserID - build select query: %v", ErrBuildQuery, err)
	}

	var dept domain.Department
	err = executor.QueryRowContext(ctx, query, args...).Scan(&dept.ID, &dept.Name, &dept.HeadUserID)
	if err == sql.ErrNoRows {
		return nil, ErrDepartmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHeadUserID - scan department: %v", ErrScanRow, err)
	}

	return &dept, nil
}

func headedByQuery(userID int64) squirrel.SelectBuilder {
	return psqlbuilder.Select("id", "name", "head_user_id").
		From("departments").
		Where(squirrel.Eq{"head_user_id": userID})
}
