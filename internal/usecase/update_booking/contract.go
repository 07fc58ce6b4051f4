package update_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateSchedule(ctx context.Context, booking *domain.Booking) error
}

// SpaceRepository интерфейс репозитория площадок
type SpaceRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Space, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Staff, error)
}

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	ListStaffIDsByBooking(ctx context.Context, bookingID int64) ([]int64, error)
}

// ConflictChecker движок пересечений
type ConflictChecker interface {
	HasConflict(ctx context.Context, ref domain.ResourceRef, period domain.DateRange, excludeBookingID *int64) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
