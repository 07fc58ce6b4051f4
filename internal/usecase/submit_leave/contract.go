package submit_leave

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Staff, error)
}

// LeaveRepository интерфейс репозитория заявок на отпуск
type LeaveRepository interface {
	Create(ctx context.Context, req *domain.LeaveRequest) (*domain.LeaveRequest, error)
	List(ctx context.Context, filter domain.LeaveRequestsFilter) ([]*domain.LeaveRequest, error)
}

// LedgerRepository журнал использованных дней
type LedgerRepository interface {
	ListByStaff(ctx context.Context, staffID int64, leaveType *domain.LeaveType) ([]domain.LeaveLedgerEntry, error)
}

// ConflictLister возвращает бронирования, на которые назначен сотрудник
type ConflictLister interface {
	ListConflicts(ctx context.Context, ref domain.ResourceRef, period domain.DateRange, excludeBookingID *int64) ([]domain.Occupancy, error)
}

// MetricsRecorder учитывает переходы заявок
type MetricsRecorder interface {
	IncLeaveTransition(from, to string)
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
