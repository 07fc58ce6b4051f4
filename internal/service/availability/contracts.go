package availability

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// ConflictChecker движок пересечений
type ConflictChecker interface {
	ListConflicts(ctx context.Context, ref domain.ResourceRef, period domain.DateRange, excludeBookingID *int64) ([]domain.Occupancy, error)
	HasConflict(ctx context.Context, ref domain.ResourceRef, period domain.DateRange, excludeBookingID *int64) (bool, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
	List(ctx context.Context, filter domain.StaffFilter) ([]*domain.Staff, error)
}

// SpaceRepository интерфейс репозитория площадок
type SpaceRepository interface {
	List(ctx context.Context, filter domain.SpacesFilter) ([]*domain.Space, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	ListStaffIDsByBooking(ctx context.Context, bookingID int64) ([]int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
