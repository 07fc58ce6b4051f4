package assign_staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/assignment"
	bookingRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/booking"
	staffRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-VenueService/pkg/pgerr"
	"github.com/m04kA/SMC-VenueService/pkg/txmanager"
)

// UseCase use case для назначения сотрудников на бронирование
type UseCase struct {
	bookingRepo    BookingRepository
	staffRepo      StaffRepository
	assignmentRepo AssignmentRepository
	availability   AvailabilityResolver
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	staffRepo StaffRepository,
	assignmentRepo AssignmentRepository,
	availability AvailabilityResolver,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		staffRepo:      staffRepo,
		assignmentRepo: assignmentRepo,
		availability:   availability,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute назначает одного сотрудника
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	return uc.ExecuteMultiple(ctx, &MultipleRequest{
		UserID:    req.UserID,
		BookingID: req.BookingID,
		Staff:     []StaffItem{{StaffID: req.StaffID, Role: req.Role, Notes: req.Notes}},
	})
}

// ExecuteMultiple назначает сотрудников в одной сериализуемой транзакции.
// Первая же ошибка откатывает все назначения запроса.
func (uc *UseCase) ExecuteMultiple(ctx context.Context, req *MultipleRequest) (*Response, error) {
	uc.logger.Info("AssignStaff: booking=%d, %d staff, by user=%d", req.BookingID, len(req.Staff), req.UserID)

	// 1. Валидация входных данных
	if err := validateMultiple(req); err != nil {
		uc.logger.Warn("AssignStaff: validation failed: %v", err)
		return nil, err
	}

	var result *Response

	// 2. Выполняем назначения в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Блокируем бронирование
		booking, err := uc.bookingRepo.GetByIDForUpdate(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("AssignStaff: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("AssignStaff: failed to get booking id=%d: %v", req.BookingID, err)
			return uc.repositoryError("failed to get booking", err)
		}

		if booking.IsCancelled() {
			uc.logger.Warn("AssignStaff: booking id=%d is cancelled", req.BookingID)
			return ErrBookingCancelled
		}

		// 2.2. Назначаем каждого сотрудника
		result = &Response{BookingID: booking.ID, Assignments: make([]*domain.Assignment, 0, len(req.Staff))}
		for _, item := range req.Staff {
			assignment, err := uc.assign(txCtx, booking, item)
			if err != nil {
				return err
			}
			result.Assignments = append(result.Assignments, assignment)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("AssignStaff: serialization failure: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrConcurrentUpdate, err)
		}
		return nil, err
	}

	uc.logger.Info("AssignStaff: %d staff assigned to booking id=%d", len(result.Assignments), result.BookingID)
	return result, nil
}

func (uc *UseCase) assign(ctx context.Context, booking *domain.Booking, item StaffItem) (*domain.Assignment, error) {
	// Повторное назначение проверяется до доступности
	exists, err := uc.assignmentRepo.Exists(ctx, booking.ID, item.StaffID)
	if err != nil {
		uc.logger.Error("AssignStaff: failed to check assignment of staff id=%d: %v", item.StaffID, err)
		return nil, uc.repositoryError("failed to check assignment", err)
	}
	if exists {
		uc.logger.Warn("AssignStaff: staff id=%d already assigned to booking id=%d", item.StaffID, booking.ID)
		return nil, fmt.Errorf("%w: staff id=%d", ErrAlreadyAssigned, item.StaffID)
	}

	// Блокируем сотрудника (FOR UPDATE)
	staff, err := uc.staffRepo.GetByIDForUpdate(ctx, item.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("AssignStaff: staff id=%d not found", item.StaffID)
			return nil, fmt.Errorf("%w: staff id=%d", ErrStaffNotFound, item.StaffID)
		}
		uc.logger.Error("AssignStaff: failed to get staff id=%d: %v", item.StaffID, err)
		return nil, uc.repositoryError("failed to get staff", err)
	}

	ok, err := uc.availability.IsAvailable(ctx, staff, booking.Range(), &booking.ID)
	if err != nil {
		uc.logger.Error("AssignStaff: availability check failed for staff id=%d: %v", item.StaffID, err)
		return nil, uc.repositoryError("availability check failed", err)
	}
	if !ok {
		uc.logger.Warn("AssignStaff: staff id=%d unavailable in %s", item.StaffID, booking.Range())
		return nil, fmt.Errorf("%w: staff id=%d", ErrStaffUnavailable, item.StaffID)
	}

	created, err := uc.assignmentRepo.Create(ctx, &domain.Assignment{
		BookingID: booking.ID,
		StaffID:   item.StaffID,
		Role:      item.Role,
		Notes:     item.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, assignmentRepo.ErrAlreadyAssigned):
			return nil, fmt.Errorf("%w: staff id=%d", ErrAlreadyAssigned, item.StaffID)
		case errors.Is(err, assignmentRepo.ErrReferenceNotFound):
			return nil, fmt.Errorf("%w: staff id=%d", ErrStaffNotFound, item.StaffID)
		}
		uc.logger.Error("AssignStaff: failed to create assignment for staff id=%d: %v", item.StaffID, err)
		return nil, uc.repositoryError("failed to create assignment", err)
	}
	return created, nil
}

func (uc *UseCase) repositoryError(msg string, err error) error {
	if pgerr.IsSerializationFailure(err) {
		return fmt.Errorf("%w: %s: %v", ErrConcurrentUpdate, msg, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, msg, err)
}
