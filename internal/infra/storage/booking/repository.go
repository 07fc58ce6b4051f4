package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueService/pkg/pgerr"
	"github.com/m04kA/SMC-VenueService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

var bookingColumns = []string{
	"b.id",
	"b.space_id",
	"b.title",
	"b.description",
	"b.client_name",
	"b.client_email",
	"b.client_phone",
	"b.start_date",
	"b.end_date",
	"b.start_time",
	"b.end_time",
	"b.status",
	"b.created_by",
	"b.notes",
	"b.cancellation_reason",
	"b.cancelled_at",
	"b.created_at",
	"b.updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Ограничение bookings_no_overlap в БД отклоняет пересекающиеся активные бронирования одной площадки,
// даже если проверка в use case была пропущена конкурентной транзакцией.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"space_id",
			"title",
			"description",
			"client_name",
			"client_email",
			"client_phone",
			"start_date",
			"end_date",
			"start_time",
			"end_time",
			"status",
			"created_by",
			"notes",
		).
		Values(
			booking.SpaceID,
			booking.Title,
			booking.Description,
			booking.ClientName,
			booking.ClientEmail,
			booking.ClientPhone,
			booking.StartDate,
			booking.EndDate,
			booking.StartTime,
			booking.EndTime,
			booking.Status,
			booking.CreatedBy,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, mapWriteError("Create", err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает бронирование и блокирует строку до конца транзакции
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getByID(ctx, id, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) getByID(ctx context.Context, id int64, lock bool) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Where(squirrel.Eq{"b.id": id})
	if lock {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования по фильтру.
// Без IncludeCancelled и без явного статуса отменённые бронирования исключаются.
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		OrderBy("b.start_date ASC", "b.id ASC")

	if filter.SpaceID != nil {
		builder = builder.Where(squirrel.Eq{"b.space_id": *filter.SpaceID})
	}
	if filter.StaffID != nil {
		builder = builder.Where(
			"EXISTS (SELECT 1 FROM booking_staff bs WHERE bs.booking_id = b.id AND bs.staff_id = ?)",
			*filter.StaffID,
		)
	}
	if filter.CreatedBy != nil {
		builder = builder.Where(squirrel.Eq{"b.created_by": *filter.CreatedBy})
	}
	if filter.Range != nil {
		builder = builder.
			Where(squirrel.LtOrEq{"b.start_date": filter.Range.End}).
			Where(squirrel.GtOrEq{"b.end_date": filter.Range.Start})
	}
	if filter.EndsBefore != nil {
		builder = builder.Where(squirrel.Lt{"b.end_date": *filter.EndsBefore})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"b.status": *filter.Status})
	} else if !filter.IncludeCancelled {
		builder = builder.Where(squirrel.NotEq{"b.status": domain.StatusCancelled})
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

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// ListOccupancy возвращает активные бронирования площадки, пересекающиеся с периодом.
// excludeBookingID исключает редактируемое бронирование.
func (r *Repository) ListOccupancy(ctx context.Context, spaceID int64, period domain.DateRange, excludeBookingID *int64) ([]domain.Occupancy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := occupancyQuery(spaceID, period, excludeBookingID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOccupancy - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOccupancy - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	occupancy := make([]domain.Occupancy, 0)
	for rows.Next() {
		var o domain.Occupancy
		if err := rows.Scan(&o.BookingID, &o.SpaceID, &o.SpaceName, &o.Title, &o.StartDate, &o.EndDate, &o.Status); err != nil {
			return nil, fmt.Errorf("%w: ListOccupancy - scan row: %v", ErrScanRow, err)
		}
		occupancy = append(occupancy, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListOccupancy - rows error: %v", ErrScanRow, err)
	}

	return occupancy, nil
}

// occupancyQuery отбирает активные записи, пересекающиеся с периодом: start <= period.End AND end >= period.Start
func occupancyQuery(spaceID int64, period domain.DateRange, excludeBookingID *int64) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(
		"b.id",
		"b.space_id",
		"s.name",
		"b.title",
		"b.start_date",
		"b.end_date",
		"b.status",
	).
		From("bookings b").
		Join("spaces s ON s.id = b.space_id").
		Where(squirrel.Eq{"b.space_id": spaceID}).
		Where(squirrel.NotEq{"b.status": domain.StatusCancelled}).
		Where(squirrel.LtOrEq{"b.start_date": period.End}).
		Where(squirrel.GtOrEq{"b.end_date": period.Start}).
		OrderBy("b.start_date ASC", "b.id ASC")

	if excludeBookingID != nil {
		builder = builder.Where(squirrel.NotEq{"b.id": *excludeBookingID})
	}
	return builder
}

// UpdateSchedule переносит бронирование на другие даты и/или площадку
func (r *Repository) UpdateSchedule(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("space_id", booking.SpaceID).
		Set("start_date", booking.StartDate).
		Set("end_date", booking.EndDate).
		Set("start_time", booking.StartTime).
		Set("end_time", booking.EndTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrBookingNotFound
	}
	if err != nil {
		return mapWriteError("UpdateSchedule", err)
	}

	return nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateStatus", query, args)
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Cancel", query, args)
}

// ListPassedConfirmed возвращает подтверждённые бронирования, закончившиеся раньше before
func (r *Repository) ListPassedConfirmed(ctx context.Context, before types.Date) ([]*domain.Booking, error) {
	status := domain.StatusConfirmed
	return r.List(ctx, domain.BookingsFilter{Status: &status, EndsBefore: &before})
}

// CompletePassed переводит подтверждённые бронирования с end_date < before в completed.
// Повторный вызов ничего не меняет.
func (r *Repository) CompletePassed(ctx context.Context, before types.Date) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCompleted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		Where(squirrel.Lt{"end_date": before}).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CompletePassed - build update query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CompletePassed - execute update: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: CompletePassed - scan id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CompletePassed - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return mapWriteError(op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func mapWriteError(op string, err error) error {
	switch {
	case pgerr.IsExclusionViolation(err):
		return fmt.Errorf("%w: %s: %v", ErrSpaceOverlap, op, err)
	case pgerr.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %s: %v", ErrSpaceNotFound, op, err)
	default:
		return fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking     domain.Booking
		cancelledAt sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.SpaceID,
		&booking.Title,
		&booking.Description,
		&booking.ClientName,
		&booking.ClientEmail,
		&booking.ClientPhone,
		&booking.StartDate,
		&booking.EndDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.CreatedBy,
		&booking.Notes,
		&booking.CancellationReason,
		&cancelledAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if cancelledAt.Valid {
		booking.CancelledAt = &cancelledAt.Time
	}

	return &booking, nil
}
