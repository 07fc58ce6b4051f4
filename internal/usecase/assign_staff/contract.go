package assign_staff

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Booking, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Staff, error)
}

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.Assignment) (*domain.Assignment, error)
	Exists(ctx context.Context, bookingID, staffID int64) (bool, error)
}

// AvailabilityResolver проверяет флаг доступности и занятость сотрудника
type AvailabilityResolver interface {
	IsAvailable(ctx context.Context, res domain.Resource, period domain.DateRange, excludeBookingID *int64) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
