package submit_leave

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	staffRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-VenueService/pkg/pgerr"
	"github.com/m04kA/SMC-VenueService/pkg/txmanager"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// UseCase use case подачи заявки на отпуск
type UseCase struct {
	staffRepo    StaffRepository
	leaveRepo    LeaveRepository
	ledgerRepo   LedgerRepository
	conflicts    ConflictLister
	metrics      MetricsRecorder
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	staffRepo StaffRepository,
	leaveRepo LeaveRepository,
	ledgerRepo LedgerRepository,
	conflicts ConflictLister,
	metrics MetricsRecorder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		staffRepo:    staffRepo,
		leaveRepo:    leaveRepo,
		ledgerRepo:   ledgerRepo,
		conflicts:    conflicts,
		metrics:      metrics,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute создает заявку в статусе pending.
// Остаток и пересечение с одобренными отпусками проверяются под блокировкой строки сотрудника.
// Бронирования, на которые сотрудник назначен, сохраняются в заявке для проверяющих и подачу не блокируют.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitLeave: staff=%d, type=%s, period=%s..%s", req.StaffID, req.LeaveType, req.StartDate, req.EndDate)

	// 1. Валидация входных данных
	today := types.DateOf(uc.timeProvider.Now())
	leaveType, period, err := validateRequest(req, today)
	if err != nil {
		uc.logger.Warn("SubmitLeave: validation failed: %v", err)
		return nil, err
	}
	totalDays := period.Days()

	var result *Response

	// 2. Проверки и создание заявки в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Блокируем сотрудника (FOR UPDATE)
		staff, err := uc.staffRepo.GetByIDForUpdate(txCtx, req.StaffID)
		if err != nil {
			if errors.Is(err, staffRepo.ErrStaffNotFound) {
				uc.logger.Warn("SubmitLeave: staff id=%d not found", req.StaffID)
				return ErrStaffNotFound
			}
			uc.logger.Error("SubmitLeave: failed to get staff id=%d: %v", req.StaffID, err)
			return uc.repositoryError("failed to get staff", err)
		}

		if staff.UserID != req.UserID {
			uc.logger.Warn("SubmitLeave: user=%d is not staff id=%d", req.UserID, req.StaffID)
			return ErrAccessDenied
		}

		// 2.2. Проверяем остаток по журналу
		entries, err := uc.ledgerRepo.ListByStaff(txCtx, staff.ID, &leaveType)
		if err != nil {
			uc.logger.Error("SubmitLeave: failed to read ledger of staff id=%d: %v", staff.ID, err)
			return uc.repositoryError("failed to read ledger", err)
		}

		balance := domain.BuildBalance(leaveType, staff.Allowance, entries)
		if balance.Remaining() < totalDays {
			uc.logger.Warn("SubmitLeave: staff id=%d has %d %s day(s) left, requested %d",
				staff.ID, balance.Remaining(), leaveType, totalDays)
			return fmt.Errorf("%w: %d day(s) requested, %d remaining", ErrInsufficientBalance, totalDays, balance.Remaining())
		}

		// 2.3. Проверяем пересечение с уже одобренными отпусками
		approved := domain.LeaveApproved
		overlapping, err := uc.leaveRepo.List(txCtx, domain.LeaveRequestsFilter{
			StaffID:  &staff.ID,
			Status:   &approved,
			Overlaps: &period,
		})
		if err != nil {
			uc.logger.Error("SubmitLeave: failed to list approved leave of staff id=%d: %v", staff.ID, err)
			return uc.repositoryError("failed to list approved leave", err)
		}
		if len(overlapping) > 0 {
			uc.logger.Warn("SubmitLeave: staff id=%d already has approved leave id=%d in %s", staff.ID, overlapping[0].ID, period)
			return fmt.Errorf("%w: leave request id=%d", ErrOverlappingLeave, overlapping[0].ID)
		}

		// 2.4. Снимок назначений сотрудника на эти даты
		conflicts, err := uc.conflicts.ListConflicts(txCtx, staff.Ref(), period, nil)
		if err != nil {
			uc.logger.Error("SubmitLeave: failed to list conflicts of staff id=%d: %v", staff.ID, err)
			return uc.repositoryError("failed to list conflicts", err)
		}

		// 2.5. Создаем заявку
		created, err := uc.leaveRepo.Create(txCtx, &domain.LeaveRequest{
			StaffID:          staff.ID,
			LeaveType:        leaveType,
			StartDate:        period.Start,
			EndDate:          period.End,
			TotalDays:        totalDays,
			Reason:           strings.TrimSpace(req.Reason),
			Status:           domain.LeavePending,
			ConflictSnapshot: domain.SnapshotOf(conflicts),
		})
		if err != nil {
			uc.logger.Error("SubmitLeave: failed to create leave request: %v", err)
			return uc.repositoryError("failed to create leave request", err)
		}

		result = &Response{LeaveRequest: created, Balance: balance}
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("SubmitLeave: serialization failure: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrConcurrentUpdate, err)
		}
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.IncLeaveTransition("new", string(domain.LeavePending))
	}
	uc.logger.Info("SubmitLeave: leave request id=%d created with %d conflict(s)",
		result.LeaveRequest.ID, len(result.LeaveRequest.ConflictSnapshot))
	return result, nil
}

func (uc *UseCase) repositoryError(msg string, err error) error {
	if pgerr.IsSerializationFailure(err) {
		return fmt.Errorf("%w: %s: %v", ErrConcurrentUpdate, msg, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, msg, err)
}
