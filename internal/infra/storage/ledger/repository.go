package ledger

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueService/pkg/pgerr"
	"github.com/m04kA/SMC-VenueService/pkg/psqlbuilder"
)

// Repository журнал изменений использованных дней отпуска. Записи только добавляются.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет запись в журнал
func (r *Repository) Append(ctx context.Context, entry *domain.LeaveLedgerEntry) (*domain.LeaveLedgerEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("leave_ledger").
		Columns(
			"staff_id",
			"leave_type",
			"kind",
			"delta",
			"leave_request_id",
			"idempotency_key",
			"note",
			"created_by",
		).
		Values(
			entry.StaffID,
			entry.LeaveType,
			entry.Kind,
			entry.Delta,
			entry.LeaveRequestID,
			entry.IdempotencyKey,
			entry.Note,
			entry.CreatedBy,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.CreatedAt)
	if pgerr.IsUniqueViolation(err) {
		return nil, ErrDuplicateEntry
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Append - execute insert: %w", ErrExecQuery, err)
	}

	return entry, nil
}

// ListByStaff возвращает записи сотрудника в порядке добавления.
// leaveType == nil возвращает записи всех категорий.
func (r *Repository) ListByStaff(ctx context.Context, staffID int64, leaveType *domain.LeaveType) ([]domain.LeaveLedgerEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(
		"id",
		"staff_id",
		"leave_type",
		"kind",
		"delta",
		"leave_request_id",
		"idempotency_key",
		"note",
		"created_by",
		"created_at",
	).
		From("leave_ledger").
		Where(squirrel.Eq{"staff_id": staffID}).
		OrderBy("id ASC")

	if leaveType != nil {
		builder = builder.Where(squirrel.Eq{"leave_type": *leaveType})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStaff - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]domain.LeaveLedgerEntry, 0)
	for rows.Next() {
		var e domain.LeaveLedgerEntry
		if err := rows.Scan(
			&e.ID,
			&e.StaffID,
			&e.LeaveType,
			&e.Kind,
			&e.Delta,
			&e.LeaveRequestID,
			&e.IdempotencyKey,
			&e.Note,
			&e.CreatedBy,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByStaff - scan entry: %v", ErrScanRow, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByStaff - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
