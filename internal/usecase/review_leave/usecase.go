package review_leave

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	departmentRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/department"
	leaveRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/leave"
	ledgerRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/ledger"
	"github.com/m04kA/SMC-VenueService/pkg/pgerr"
	"github.com/m04kA/SMC-VenueService/pkg/txmanager"
)

// UseCase use case согласования заявки на отпуск (HR и руководитель)
type UseCase struct {
	leaveRepo    LeaveRepository
	ledgerRepo   LedgerRepository
	staffRepo    StaffRepository
	deptRepo     DepartmentRepository
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
	deptRepo DepartmentRepository,
	metrics MetricsRecorder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		leaveRepo:    leaveRepo,
		ledgerRepo:   ledgerRepo,
		staffRepo:    staffRepo,
		deptRepo:     deptRepo,
		metrics:      metrics,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

func (uc *UseCase) ApproveAsHR(ctx context.Context, requestID int64, reviewer domain.Reviewer, notes *string) (*Response, error) {
	return uc.Execute(ctx, newRequest(requestID, reviewer, domain.StageHR, domain.OutcomeApproved, notes))
}

func (uc *UseCase) RejectAsHR(ctx context.Context, requestID int64, reviewer domain.Reviewer, notes *string) (*Response, error) {
	return uc.Execute(ctx, newRequest(requestID, reviewer, domain.StageHR, domain.OutcomeRejected, notes))
}

func (uc *UseCase) ApproveAsHead(ctx context.Context, requestID int64, reviewer domain.Reviewer, notes *string) (*Response, error) {
	return uc.Execute(ctx, newRequest(requestID, reviewer, domain.StageHead, domain.OutcomeApproved, notes))
}

func (uc *UseCase) RejectAsHead(ctx context.Context, requestID int64, reviewer domain.Reviewer, notes *string) (*Response, error) {
	return uc.Execute(ctx, newRequest(requestID, reviewer, domain.StageHead, domain.OutcomeRejected, notes))
}

func newRequest(requestID int64, reviewer domain.Reviewer, stage domain.ReviewStage, outcome domain.ReviewOutcome, notes *string) *Request {
	return &Request{
		ReviewerID:     reviewer.UserID,
		ReviewerRole:   reviewer.Role,
		LeaveRequestID: requestID,
		Stage:          string(stage),
		Outcome:        outcome,
		Notes:          notes,
	}
}

// Execute заполняет слот этапа.
// Второе одобрение переводит заявку в approved и списывает дни из остатка ровно один раз:
// запись журнала с ключом заявки добавляется в той же транзакции, что и сохранение заявки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReviewLeave: request id=%d, stage=%s, outcome=%s, reviewer=%d",
		req.LeaveRequestID, req.Stage, req.Outcome, req.ReviewerID)

	// 1. Валидация входных данных
	stage, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ReviewLeave: validation failed: %v", err)
		return nil, err
	}

	var result *Response

	// 2. Переход в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Блокируем заявку (FOR UPDATE)
		leaveReq, err := uc.leaveRepo.GetByIDForUpdate(txCtx, req.LeaveRequestID)
		if err != nil {
			if errors.Is(err, leaveRepo.ErrLeaveRequestNotFound) {
				uc.logger.Warn("ReviewLeave: leave request id=%d not found", req.LeaveRequestID)
				return ErrLeaveRequestNotFound
			}
			uc.logger.Error("ReviewLeave: failed to get leave request id=%d: %v", req.LeaveRequestID, err)
			return uc.repositoryError("failed to get leave request", err)
		}

		// 2.2. Проверяем, кто рассматривает
		owner, err := uc.staffRepo.GetByID(txCtx, leaveReq.StaffID)
		if err != nil {
			uc.logger.Error("ReviewLeave: failed to get staff id=%d: %v", leaveReq.StaffID, err)
			return uc.repositoryError("failed to get staff", err)
		}
		if owner.UserID == req.ReviewerID {
			uc.logger.Warn("ReviewLeave: user=%d tried to review own request id=%d", req.ReviewerID, leaveReq.ID)
			return ErrSelfReview
		}
		if err := uc.authorize(txCtx, stage, req, owner); err != nil {
			uc.logger.Warn("ReviewLeave: user=%d (%s) cannot review request id=%d at %s stage: %v",
				req.ReviewerID, req.ReviewerRole, leaveReq.ID, stage, err)
			return err
		}

		// 2.3. Применяем решение
		expectedVersion := leaveReq.Version
		transition, err := leaveReq.ApplyReview(stage, domain.Review{
			ReviewerID: req.ReviewerID,
			Outcome:    req.Outcome,
			Notes:      trimmed(req.Notes),
			ReviewedAt: uc.timeProvider.Now(),
		})
		if err != nil {
			uc.logger.Warn("ReviewLeave: request id=%d: %v", leaveReq.ID, err)
			if errors.Is(err, domain.ErrInvalidStateTransition) {
				return fmt.Errorf("%w: %v", ErrNotReviewable, err)
			}
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		// 2.4. Сохраняем заявку с проверкой версии
		if err := uc.leaveRepo.Save(txCtx, leaveReq, expectedVersion); err != nil {
			if errors.Is(err, leaveRepo.ErrVersionConflict) {
				uc.logger.Warn("ReviewLeave: request id=%d modified concurrently", leaveReq.ID)
				return fmt.Errorf("%w: %v", ErrConcurrentUpdate, err)
			}
			uc.logger.Error("ReviewLeave: failed to save request id=%d: %v", leaveReq.ID, err)
			return uc.repositoryError("failed to save leave request", err)
		}

		result = &Response{LeaveRequest: leaveReq, Transition: transition}

		// 2.5. Списываем дни при окончательном одобрении
		if transition.BalanceDelta > 0 {
			entry, err := uc.ledgerRepo.Append(txCtx, &domain.LeaveLedgerEntry{
				StaffID:        leaveReq.StaffID,
				LeaveType:      leaveReq.LeaveType,
				Kind:           domain.LedgerApproval,
				Delta:          transition.BalanceDelta,
				LeaveRequestID: &leaveReq.ID,
				IdempotencyKey: domain.RequestLedgerKey(leaveReq.ID, domain.LedgerApproval),
				CreatedBy:      &req.ReviewerID,
			})
			if err != nil {
				if errors.Is(err, ledgerRepo.ErrDuplicateEntry) {
					uc.logger.Warn("ReviewLeave: approval of request id=%d already recorded", leaveReq.ID)
					return fmt.Errorf("%w: approval already recorded", ErrNotReviewable)
				}
				uc.logger.Error("ReviewLeave: failed to append ledger entry for request id=%d: %v", leaveReq.ID, err)
				return uc.repositoryError("failed to append ledger entry", err)
			}
			result.LedgerEntry = entry
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("ReviewLeave: serialization failure: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrConcurrentUpdate, err)
		}
		return nil, err
	}

	if uc.metrics != nil && result.Transition.From != result.Transition.To {
		uc.metrics.IncLeaveTransition(string(result.Transition.From), string(result.Transition.To))
	}
	uc.logger.Info("ReviewLeave: request id=%d is %s", result.LeaveRequest.ID, result.LeaveRequest.Status)
	return result, nil
}

// authorize: этап HR закрывает администратор, этап руководителя только глава отдела владельца заявки
func (uc *UseCase) authorize(ctx context.Context, stage domain.ReviewStage, req *Request, owner *domain.Staff) error {
	if stage == domain.StageHR {
		if !req.ReviewerRole.CanReviewAsHR() {
			return ErrNotHRReviewer
		}
		return nil
	}

	if req.ReviewerRole != domain.RoleHead {
		return ErrNotDepartmentHead
	}
	dept, err := uc.deptRepo.GetByHeadUserID(ctx, req.ReviewerID)
	if err != nil {
		if errors.Is(err, departmentRepo.ErrDepartmentNotFound) {
			return fmt.Errorf("%w: user heads no department", ErrNotDepartmentHead)
		}
		return uc.repositoryError("failed to get department", err)
	}
	if owner.DepartmentID == nil || *owner.DepartmentID != dept.ID {
		return fmt.Errorf("%w: department id=%d", ErrNotDepartmentHead, dept.ID)
	}
	return nil
}

func (uc *UseCase) repositoryError(msg string, err error) error {
	if pgerr.IsSerializationFailure(err) {
		return fmt.Errorf("%w: %s: %v", ErrConcurrentUpdate, msg, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, msg, err)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
