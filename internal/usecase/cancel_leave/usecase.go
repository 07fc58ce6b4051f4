package cancel_leave

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	leaveRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/leave"
	ledgerRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/ledger"
	"github.com/m04kA/SMC-VenueService/pkg/pgerr"
	"github.com/m04kA/SMC-VenueService/pkg/txmanager"
)

// UseCase use case отмены заявки на отпуск
type UseCase struct {
	leaveRepo    LeaveRepository
	ledgerRepo   LedgerRepository
	staffRepo    StaffRepository
	metrics      MetricsRecorder
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	leaveRepo LeaveRepository,
	ledgerRepo LedgerRepository,
	staffRepo StaffRepository,
	metrics MetricsRecorder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		leaveRepo:    leaveRepo,
		ledgerRepo:   ledgerRepo,
		staffRepo:    staffRepo,
		metrics:      metrics,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute отменяет заявку в статусе pending или approved.
// Для одобренной заявки в журнал добавляется возврат дней.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelLeave: request id=%d, user=%d", req.LeaveRequestID, req.UserID)

	// 1. Валидация входных данных
	reason, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CancelLeave: validation failed: %v", err)
		return nil, err
	}

	var result *Response

	// 2. Отмена в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Блокируем заявку (FOR UPDATE)
		leaveReq, err := uc.leaveRepo.GetByIDForUpdate(txCtx, req.LeaveRequestID)
		if err != nil {
			if errors.Is(err, leaveRepo.ErrLeaveRequestNotFound) {
				uc.logger.Warn("CancelLeave: leave request id=%d not found", req.LeaveRequestID)
				return ErrLeaveRequestNotFound
			}
			uc.logger.Error("CancelLeave: failed to get leave request id=%d: %v", req.LeaveRequestID, err)
			return uc.repositoryError("failed to get leave request", err)
		}

		// 2.2. Проверяем владельца
		owner, err := uc.staffRepo.GetByID(txCtx, leaveReq.StaffID)
		if err != nil {
			uc.logger.Error("CancelLeave: failed to get staff id=%d: %v", leaveReq.StaffID, err)
			return uc.repositoryError("failed to get staff", err)
		}
		if owner.UserID != req.UserID {
			uc.logger.Warn("CancelLeave: user=%d is not the owner of request id=%d", req.UserID, leaveReq.ID)
			return ErrAccessDenied
		}

		// 2.3. Переход
		expectedVersion := leaveReq.Version
		transition, err := leaveReq.Cancel(req.UserID, reason, uc.timeProvider.Now())
		if err != nil {
			uc.logger.Warn("CancelLeave: request id=%d: %v", leaveReq.ID, err)
			return fmt.Errorf("%w: %v", ErrCannotCancel, err)
		}

		// 2.4. Сохраняем с проверкой версии
		if err := uc.leaveRepo.Save(txCtx, leaveReq, expectedVersion); err != nil {
			if errors.Is(err, leaveRepo.ErrVersionConflict) {
				uc.logger.Warn("CancelLeave: request id=%d modified concurrently", leaveReq.ID)
				return fmt.Errorf("%w: %v", ErrConcurrentUpdate, err)
			}
			uc.logger.Error("CancelLeave: failed to save request id=%d: %v", leaveReq.ID, err)
			return uc.repositoryError("failed to save leave request", err)
		}

		result = &Response{LeaveRequest: leaveReq, Transition: transition}

		// 2.5. Возвращаем дни одобренной заявки
		if transition.BalanceDelta < 0 {
			entry, err := uc.ledgerRepo.Append(txCtx, &domain.LeaveLedgerEntry{
				StaffID:        leaveReq.StaffID,
				LeaveType:      leaveReq.LeaveType,
				Kind:           domain.LedgerCancellation,
				Delta:          transition.BalanceDelta,
				LeaveRequestID: &leaveReq.ID,
				IdempotencyKey: domain.RequestLedgerKey(leaveReq.ID, domain.LedgerCancellation),
				Note:           reason,
				CreatedBy:      &req.UserID,
			})
			if err != nil {
				if errors.Is(err, ledgerRepo.ErrDuplicateEntry) {
					uc.logger.Warn("CancelLeave: refund of request id=%d already recorded", leaveReq.ID)
					return fmt.Errorf("%w: refund already recorded", ErrCannotCancel)
				}
				uc.logger.Error("CancelLeave: failed to append ledger entry for request id=%d: %v", leaveReq.ID, err)
				return uc.repositoryError("failed to append ledger entry", err)
			}
			result.LedgerEntry = entry
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("CancelLeave: serialization failure: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrConcurrentUpdate, err)
		}
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.IncLeaveTransition(string(result.Transition.From), string(result.Transition.To))
	}
	uc.logger.Info("CancelLeave: request id=%d cancelled, refunded %d day(s)",
		result.LeaveRequest.ID, -result.Transition.BalanceDelta)
	return result, nil
}

func (uc *UseCase) repositoryError(msg string, err error) error {
	if pgerr.IsSerializationFailure(err) {
		return fmt.Errorf("%w: %s: %v", ErrConcurrentUpdate, msg, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, msg, err)
}
