package leave

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// LeaveRepository интерфейс репозитория заявок на отпуск
type LeaveRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.LeaveRequest, error)
	List(ctx context.Context, filter domain.LeaveRequestsFilter) ([]*domain.LeaveRequest, error)
	ListPending(ctx context.Context, stage domain.PendingStage) ([]*domain.LeaveRequest, error)
}

// LedgerRepository интерфейс журнала использованных дней
type LedgerRepository interface {
	Append(ctx context.Context, entry *domain.LeaveLedgerEntry) (*domain.LeaveLedgerEntry, error)
	ListByStaff(ctx context.Context, staffID int64, leaveType *domain.LeaveType) ([]domain.LeaveLedgerEntry, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Staff, error)
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
