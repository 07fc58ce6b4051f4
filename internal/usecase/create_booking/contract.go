package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// SpaceRepository интерфейс репозитория площадок
type SpaceRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Space, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Staff, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.Assignment) (*domain.Assignment, error)
}

// ConflictChecker движок пересечений
type ConflictChecker interface {
	HasConflict(ctx context.Context, ref domain.ResourceRef, period domain.DateRange, excludeBookingID *int64) (bool, error)
}

// AvailabilityResolver проверяет флаг доступности и занятость ресурса
type AvailabilityResolver interface {
	IsAvailable(ctx context.Context, res domain.Resource, period domain.DateRange, excludeBookingID *int64) (bool, error)
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

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
