package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueService/pkg/psqlbuilder"
)

var leaveColumns = []string{
	"id",
	"staff_id",
	"leave_type",
	"start_date",
	"end_date",
	"total_days",
	"reason",
	"status",
	"hr_reviewed_by",
	"hr_outcome",
	"hr_notes",
	"hr_reviewed_at",
	"head_reviewed_by",
	"head_outcome",
	"head_notes",
	"head_reviewed_at",
	"conflict_snapshot",
	"cancellation_reason",
	"cancelled_by",
	"cancelled_at",
	"version",
	"created_at",
	"updated_at",
}

// Repository репозиторий заявок на отпуск
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую заявку
func (r *Repository) Create(ctx context.Context, req *domain.LeaveRequest) (*domain.LeaveRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	snapshot, err := encodeSnapshot(req.ConflictSnapshot)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("leave_requests").
		Columns(
			"staff_id",
			"leave_type",
			"start_date",
			"end_date",
			"total_days",
			"reason",
			"status",
			"conflict_snapshot",
		).
		Values(
			req.StaffID,
			req.LeaveType,
			req.StartDate,
			req.EndDate,
			req.TotalDays,
			req.Reason,
			req.Status,
			snapshot,
		).
		Suffix("RETURNING id, version, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&req.ID, &req.Version, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return req, nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.LeaveRequest, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает заявку с блокировкой строки до конца транзакции
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.LeaveRequest, error) {
	return r.getByID(ctx, id, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) getByID(ctx context.Context, id int64, lock bool) (*domain.LeaveRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(leaveColumns...).
		From("leave_requests").
		Where(squirrel.Eq{"id": id})
	if lock {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	req, err := scanLeaveRequest(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrLeaveRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan leave request: %v", ErrScanRow, err)
	}

	return req, nil
}

// List получает заявки по фильтру, новые первыми
func (r *Repository) List(ctx context.Context, filter domain.LeaveRequestsFilter) ([]*domain.LeaveRequest, error) {
	return r.list(ctx, listQuery(filter), "List")
}

func listQuery(filter domain.LeaveRequestsFilter) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(leaveColumns...).
		From("leave_requests").
		OrderBy("start_date DESC", "id DESC")

	if filter.StaffID != nil {
		builder = builder.Where(squirrel.Eq{"staff_id": *filter.StaffID})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.LeaveType != nil {
		builder = builder.Where(squirrel.Eq{"leave_type": *filter.LeaveType})
	}
	if filter.Year != nil {
		builder = builder.Where("EXTRACT(YEAR FROM start_date) = ?", *filter.Year)
	}
	if filter.Overlaps != nil {
		builder = builder.
			Where(squirrel.LtOrEq{"start_date": filter.Overlaps.End}).
			Where(squirrel.GtOrEq{"end_date": filter.Overlaps.Start})
	}
	return builder
}

// ListPending получает заявки в статусе pending, ожидающие указанного этапа согласования.
// Старые заявки первыми.
func (r *Repository) ListPending(ctx context.Context, stage domain.PendingStage) ([]*domain.LeaveRequest, error) {
	return r.list(ctx, pendingQuery(stage), "ListPending")
}

func pendingQuery(stage domain.PendingStage) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(leaveColumns...).
		From("leave_requests").
		Where(squirrel.Eq{"status": domain.LeavePending}).
		OrderBy("created_at ASC", "id ASC")

	switch stage {
	case domain.PendingAwaitingHR:
		builder = builder.Where(squirrel.Eq{"hr_outcome": nil})
	case domain.PendingAwaitingHead:
		builder = builder.Where(squirrel.Eq{"head_outcome": nil})
	case domain.PendingAwaitingSecond:
		builder = builder.Where("(hr_outcome IS NULL) <> (head_outcome IS NULL)")
	}
	return builder
}

func (r *Repository) list(ctx context.Context, builder squirrel.SelectBuilder, op string) ([]*domain.LeaveRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	result := make([]*domain.LeaveRequest, 0)
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan leave request: %v", ErrScanRow, op, err)
		}
		result = append(result, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return result, nil
}

// Save записывает статус, оба слота согласования и данные отмены.
// Запись проходит только если версия в БД равна expectedVersion, после чего версия увеличивается.
func (r *Repository) Save(ctx context.Context, req *domain.LeaveRequest, expectedVersion int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	hrBy, hrOutcome, hrNotes, hrAt := reviewColumns(req.HRReview)
	headBy, headOutcome, headNotes, headAt := reviewColumns(req.HeadReview)

	query, args, err := psqlbuilder.Update("leave_requests").
		Set("status", req.Status).
		Set("hr_reviewed_by", hrBy).
		Set("hr_outcome", hrOutcome).
		Set("hr_notes", hrNotes).
		Set("hr_reviewed_at", hrAt).
		Set("head_reviewed_by", headBy).
		Set("head_outcome", headOutcome).
		Set("head_notes", headNotes).
		Set("head_reviewed_at", headAt).
		Set("cancellation_reason", req.CancellationReason).
		Set("cancelled_by", req.CancelledBy).
		Set("cancelled_at", req.CancelledAt).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": req.ID, "version": expectedVersion}).
		Suffix("RETURNING version, updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Save - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&req.Version, &req.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrVersionConflict
	}
	if err != nil {
		return fmt.Errorf("%w: Save - execute update: %w", ErrExecQuery, err)
	}

	return nil
}

func reviewColumns(review *domain.Review) (*int64, *string, *string, *time.Time) {
	if review == nil {
		return nil, nil, nil, nil
	}
	outcome := string(review.Outcome)
	return &review.ReviewerID, &outcome, review.Notes, &review.ReviewedAt
}

// encodeSnapshot возвращает строку: lib/pq передаёт []byte как bytea, что JSONB не принимает
func encodeSnapshot(items []domain.ConflictSnapshotItem) (string, error) {
	if items == nil {
		items = []domain.ConflictSnapshotItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return string(data), nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

type reviewRow struct {
	by      sql.NullInt64
	outcome sql.NullString
	notes   sql.NullString
	at      sql.NullTime
}

func (r reviewRow) toDomain() *domain.Review {
	if !r.outcome.Valid {
		return nil
	}
	review := &domain.Review{
		ReviewerID: r.by.Int64,
		Outcome:    domain.ReviewOutcome(r.outcome.String),
		ReviewedAt: r.at.Time,
	}
	if r.notes.Valid {
		notes := r.notes.String
		review.Notes = &notes
	}
	return review
}

func scanLeaveRequest(row rowScanner) (*domain.LeaveRequest, error) {
	var (
		req         domain.LeaveRequest
		hr, head    reviewRow
		snapshot    []byte
		cancelledAt sql.NullTime
	)

	err := row.Scan(
		&req.ID,
		&req.StaffID,
		&req.LeaveType,
		&req.StartDate,
		&req.EndDate,
		&req.TotalDays,
		&req.Reason,
		&req.Status,
		&hr.by,
		&hr.outcome,
		&hr.notes,
		&hr.at,
		&head.by,
		&head.outcome,
		&head.notes,
		&head.at,
		&snapshot,
		&req.CancellationReason,
		&req.CancelledBy,
		&cancelledAt,
		&req.Version,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	req.HRReview = hr.toDomain()
	req.HeadReview = head.toDomain()
	if cancelledAt.Valid {
		req.CancelledAt = &cancelledAt.Time
	}

	req.ConflictSnapshot = []domain.ConflictSnapshotItem{}
	if len(snapshot) > 0 {
		if err := json.Unmarshal(snapshot, &req.ConflictSnapshot); err != nil {
			return nil, fmt.Errorf("decode conflict snapshot: %w", err)
		}
	}

	return &req, nil
}
