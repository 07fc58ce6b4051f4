package assignment

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueService/pkg/pgerr"
	"github.com/m04kA/SMC-VenueService/pkg/psqlbuilder"
)

// Repository репозиторий назначений сотрудников на бронирования (таблица booking_staff)
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create назначает сотрудника на бронирование
func (r *Repository) Create(ctx context.Context, a *domain.Assignment) (*domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_staff").
		Columns("booking_id", "staff_id", "role", "notes").
		Values(a.BookingID, a.StaffID, a.Role, a.Notes).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.CreatedAt)
	switch {
	case err == nil:
		return a, nil
	case pgerr.IsUniqueViolation(err):
		return nil, ErrAlreadyAssigned
	case pgerr.IsForeignKeyViolation(err):
		return nil, ErrReferenceNotFound
	default:
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
}

// Exists проверяет, назначен ли сотрудник на бронирование
func (r *Repository) Exists(ctx context.Context, bookingID, staffID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		Prefix("SELECT EXISTS (").
		From("booking_staff").
		Where(squirrel.Eq{"booking_id": bookingID, "staff_id": staffID}).
		Suffix(")").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: Exists - scan: %w", ErrScanRow, err)
	}

	return exists, nil
}

// Delete снимает сотрудника с бронирования
func (r *Repository) Delete(ctx context.Context, bookingID, staffID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("booking_staff").
		Where(squirrel.Eq{"booking_id": bookingID, "staff_id": staffID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAssignmentNotFound
	}

	return nil
}

// ListByBooking возвращает назначенных на бронирование сотрудников
func (r *Repository) ListByBooking(ctx context.Context, bookingID int64) ([]*domain.AssignedStaff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"bs.booking_id",
		"bs.staff_id",
		"bs.role",
		"bs.notes",
		"bs.created_at",
		"st.user_id",
		"st.department_id",
		"st.name",
		"st.email",
		"st.position",
		"st.specializations",
		"st.is_available",
	).
		From("booking_staff bs").
		Join("staff st ON st.id = bs.staff_id").
		Where(squirrel.Eq{"bs.booking_id": bookingID}).
		OrderBy("st.name ASC", "st.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.AssignedStaff, 0)
	for rows.Next() {
		item := &domain.AssignedStaff{Staff: &domain.Staff{}}
		if err := rows.Scan(
			&item.BookingID,
			&item.StaffID,
			&item.Role,
			&item.Notes,
			&item.CreatedAt,
			&item.Staff.UserID,
			&item.Staff.DepartmentID,
			&item.Staff.Name,
			&item.Staff.Email,
			&item.Staff.Position,
			pq.Array(&item.Staff.Specializations),
			&item.Staff.IsAvailable,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByBooking - scan row: %v", ErrScanRow, err)
		}
		item.Staff.ID = item.StaffID
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// ListStaffIDsByBooking возвращает ID сотрудников, назначенных на бронирование
func (r *Repository) ListStaffIDsByBooking(ctx context.Context, bookingID int64) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("staff_id").
		From("booking_staff").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("staff_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListStaffIDsByBooking - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListStaffIDsByBooking - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: ListStaffIDsByBooking - scan staff_id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListStaffIDsByBooking - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

// ListOccupancy возвращает назначения сотрудника на активные бронирования, пересекающиеся с периодом.
// Интервал и статус берутся из самого бронирования.
func (r *Repository) ListOccupancy(ctx context.Context, staffID int64, period domain.DateRange, excludeBookingID *int64) ([]domain.Occupancy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := occupancyQuery(staffID, period, excludeBookingID).ToSql()
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
		if err := rows.Scan(&o.BookingID, &o.SpaceID, &o.SpaceName, &o.Title, &o.StartDate, &o.EndDate, &o.Status, &o.Role); err != nil {
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
func occupancyQuery(staffID int64, period domain.DateRange, excludeBookingID *int64) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(
		"b.id",
		"b.space_id",
		"s.name",
		"b.title",
		"b.start_date",
		"b.end_date",
		"b.status",
		"bs.role",
	).
		From("booking_staff bs").
		Join("bookings b ON b.id = bs.booking_id").
		Join("spaces s ON s.id = b.space_id").
		Where(squirrel.Eq{"bs.staff_id": staffID}).
		Where(squirrel.NotEq{"b.status": domain.StatusCancelled}).
		Where(squirrel.LtOrEq{"b.start_date": period.End}).
		Where(squirrel.GtOrEq{"b.end_date": period.Start}).
		OrderBy("b.start_date ASC", "b.id ASC")

	if excludeBookingID != nil {
		builder = builder.Where(squirrel.NotEq{"b.id": *excludeBookingID})
	}
	return builder
}
