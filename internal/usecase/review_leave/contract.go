package review_leave

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// LeaveRepository интерфейс репозитория заявок на отпуск
type LeaveRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.LeaveRequest, error)
	Save(ctx context.Context, req *domain.LeaveRequest, expectedVersion int64) error
}

// LedgerRepository журнал использованных дней
type LedgerRepository interface {
	Append(ctx context.Context, entry *domain.LeaveLedgerEntry) (*domain.LeaveLedgerEntry, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
}

// DepartmentRepository интерфейс репозитория отделов
type DepartmentRepository interface {
	GetByHeadUserID(ctx context.Context, userID int64) (*domain.Department, error)
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
