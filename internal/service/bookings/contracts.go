package bookings

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason *string) error
	ListPassedConfirmed(ctx context.Context, before types.Date) ([]*domain.Booking, error)
	CompletePassed(ctx context.Context, before types.Date) ([]int64, error)
}

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	ListByBooking(ctx context.Context, bookingID int64) ([]*domain.AssignedStaff, error)
	Delete(ctx context.Context, bookingID, staffID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder учитывает завершённые бронирования
type MetricsRecorder interface {
	AddBookingsCompleted(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
