package leave

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	leaveRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/leave"
	ledgerRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/ledger"
	staffRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-VenueService/internal/service/leave/models"
	"github.com/m04kA/SMC-VenueService/pkg/pgerr"
	"github.com/m04kA/SMC-VenueService/pkg/txmanager"
)

// Service чтение заявок на отпуск и остатков, ручные корректировки журнала
type Service struct {
	leaveRepo  LeaveRepository
	ledgerRepo LedgerRepository
	staffRepo  StaffRepository
	txManager  TransactionManager
	logger     Logger
}

// NewService создает новый экземпляр сервиса отпусков
func NewService(
	leaveRepo LeaveRepository,
	ledgerRepo LedgerRepository,
	staffRepo StaffRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		leaveRepo:  leaveRepo,
		ledgerRepo: ledgerRepo,
		staffRepo:  staffRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// GetByID получает заявку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.LeaveRequestResponse, error) {
	req, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, leaveRepo.ErrLeaveRequestNotFound) {
			s.logger.Warn("GetByID: leave request id=%d not found", id)
			return nil, ErrLeaveRequestNotFound
		}
		s.logger.Error("GetByID: repository error for leave request id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainLeaveRequest(req), nil
}

// ListForStaff получает заявки сотрудника с фильтрацией по статусу, типу и году
func (s *Service) ListForStaff(ctx context.Context, req *models.ListLeaveRequestsRequest) (*models.LeaveRequestListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListForStaff: invalid filter for staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: invalid filter: %v", ErrInvalidInput, err)
	}

	if _, err := s.getStaff(ctx, "ListForStaff", req.StaffID); err != nil {
		return nil, err
	}

	items, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListForStaff: repository error for staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: ListForStaff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForStaff: fetched %d leave requests for staff id=%d", len(items), req.StaffID)
	return models.FromDomainLeaveRequestList(items), nil
}

// ListPending возвращает очередь заявок на рассмотрение.
// stage: any, awaiting_hr, awaiting_head или awaiting_second.
func (s *Service) ListPending(ctx context.Context, stage string) (*models.LeaveRequestListResponse, error) {
	pendingStage, err := domain.ParsePendingStage(stage)
	if err != nil {
		s.logger.Warn("ListPending: invalid stage=%q", stage)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	items, err := s.leaveRepo.ListPending(ctx, pendingStage)
	if err != nil {
		s.logger.Error("ListPending: repository error for stage=%s: %v", pendingStage, err)
		return nil, fmt.Errorf("%w: ListPending - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainLeaveRequestList(items), nil
}

// GetBalance возвращает остатки сотрудника по всем категориям
func (s *Service) GetBalance(ctx context.Context, staffID int64) (*models.BalanceResponse, error) {
	staff, err := s.getStaff(ctx, "GetBalance", staffID)
	if err != nil {
		return nil, err
	}

	entries, err := s.ledgerRepo.ListByStaff(ctx, staffID, nil)
	if err != nil {
		s.logger.Error("GetBalance: ledger error for staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetBalance - ledger error: %v", ErrInternal, err)
	}

	return models.FromDomainBalances(staffID, domain.BuildBalances(staff.Allowance, entries)), nil
}

// AdjustBalance добавляет в журнал ручную запись и возвращает новые остатки.
// Без ключа идемпотентности каждый вызов создаёт новую запись.
func (s *Service) AdjustBalance(ctx context.Context, req *models.AdjustBalanceRequest) (*models.BalanceResponse, error) {
	s.logger.Info("AdjustBalance: staff id=%d, type=%s, delta=%d by user=%d",
		req.StaffID, req.LeaveType, req.Delta, req.ActorID)

	entry, err := buildAdjustment(req)
	if err != nil {
		s.logger.Warn("AdjustBalance: validation failed: %v", err)
		return nil, err
	}

	var result *models.BalanceResponse
	// Блокируем сотрудника так же, как при подаче заявки
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if _, err := s.lockStaff(txCtx, "AdjustBalance", req.StaffID); err != nil {
			return err
		}

		if _, err := s.ledgerRepo.Append(txCtx, entry); err != nil {
			if errors.Is(err, ledgerRepo.ErrDuplicateEntry) {
				s.logger.Warn("AdjustBalance: duplicate idempotency key %s", entry.IdempotencyKey)
				return ErrDuplicateAdjustment
			}
			if pgerr.IsSerializationFailure(err) {
				return fmt.Errorf("%w: AdjustBalance - ledger: %v", ErrConcurrentUpdate, err)
			}
			s.logger.Error("AdjustBalance: ledger error for staff id=%d: %v", req.StaffID, err)
			return fmt.Errorf("%w: AdjustBalance - ledger error: %v", ErrInternal, err)
		}

		result, err = s.GetBalance(txCtx, req.StaffID)
		return err
	})
	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			s.logger.Warn("AdjustBalance: serialization failure for staff id=%d: %v", req.StaffID, err)
			return nil, fmt.Errorf("%w: %v", ErrConcurrentUpdate, err)
		}
		return nil, err
	}

	return result, nil
}

func buildAdjustment(req *models.AdjustBalanceRequest) (*domain.LeaveLedgerEntry, error) {
	if req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffId must be positive", ErrInvalidInput)
	}
	if req.Delta == 0 {
		return nil, fmt.Errorf("%w: delta must not be zero", ErrInvalidInput)
	}

	leaveType, err := domain.ParseLeaveType(req.LeaveType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	kind := domain.LedgerAdjustment
	if req.Kind != "" {
		kind = domain.LedgerEntryKind(req.Kind)
	}
	if kind != domain.LedgerAdjustment && kind != domain.LedgerOpening {
		return nil, fmt.Errorf("%w: kind must be adjustment or opening", ErrInvalidInput)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: note must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	key := fmt.Sprintf("%s:%s", kind, uuid.NewString())
	if req.IdempotencyKey != nil && *req.IdempotencyKey != "" {
		key = *req.IdempotencyKey
	}

	return &domain.LeaveLedgerEntry{
		StaffID:        req.StaffID,
		LeaveType:      leaveType,
		Kind:           kind,
		Delta:          req.Delta,
		IdempotencyKey: key,
		Note:           req.Note,
		CreatedBy:      &req.ActorID,
	}, nil
}

func (s *Service) getStaff(ctx context.Context, op string, staffID int64) (*domain.Staff, error) {
	staff, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return nil, s.staffError(op, staffID, err)
	}
	return staff, nil
}

// lockStaff блокирует строку сотрудника до конца транзакции
func (s *Service) lockStaff(ctx context.Context, op string, staffID int64) (*domain.Staff, error) {
	staff, err := s.staffRepo.GetByIDForUpdate(ctx, staffID)
	if err != nil {
		return nil, s.staffError(op, staffID, err)
	}
	return staff, nil
}

func (s *Service) staffError(op string, staffID int64, err error) error {
	if errors.Is(err, staffRepo.ErrStaffNotFound) {
		s.logger.Warn("%s: staff id=%d not found", op, staffID)
		return ErrStaffNotFound
	}
	if pgerr.IsSerializationFailure(err) {
		return fmt.Errorf("%w: %s - staff: %v", ErrConcurrentUpdate, op, err)
	}
	s.logger.Error("%s: repository error for staff id=%d: %v", op, staffID, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
