package update_booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/booking"
	spaceRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/space"
	"github.com/m04kA/SMC-VenueService/pkg/pgerr"
	"github.com/m04kA/SMC-VenueService/pkg/txmanager"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// UseCase use case для переноса бронирования (даты, площадка, время)
type UseCase struct {
	bookingRepo    BookingRepository
	spaceRepo      SpaceRepository
	staffRepo      StaffRepository
	assignmentRepo AssignmentRepository
	conflicts      ConflictChecker
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	spaceRepo SpaceRepository,
	staffRepo StaffRepository,
	assignmentRepo AssignmentRepository,
	conflicts ConflictChecker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		spaceRepo:      spaceRepo,
		staffRepo:      staffRepo,
		assignmentRepo: assignmentRepo,
		conflicts:      conflicts,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute переносит бронирование. Площадка и каждый назначенный сотрудник перепроверяются
// на новый интервал, само бронирование из проверки исключается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking=%d by user=%d", req.BookingID, req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}
	today := types.DateOf(uc.timeProvider.Now())

	var result *Response

	// 2. Перепроверка и сохранение в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Блокируем бронирование
		current, err := uc.bookingRepo.GetByIDForUpdate(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return uc.repositoryError("failed to get booking", err)
		}

		if !current.CanBeRescheduled() {
			uc.logger.Warn("UpdateBooking: booking id=%d has status %s", req.BookingID, current.Status)
			return ErrCannotReschedule
		}

		// 2.2. Применяем изменения
		updated, err := applyChanges(current, req, today)
		if err != nil {
			uc.logger.Warn("UpdateBooking: invalid changes for booking id=%d: %v", req.BookingID, err)
			return err
		}
		period := updated.Range()

		// 2.3. Блокируем целевую площадку и проверяем её
		space, err := uc.spaceRepo.GetByIDForUpdate(txCtx, updated.SpaceID)
		if err != nil {
			if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
				uc.logger.Warn("UpdateBooking: space id=%d not found", updated.SpaceID)
				return ErrSpaceNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get space id=%d: %v", updated.SpaceID, err)
			return uc.repositoryError("failed to get space", err)
		}
		if updated.SpaceID != current.SpaceID && !space.IsActive {
			uc.logger.Warn("UpdateBooking: space id=%d is not active", updated.SpaceID)
			return ErrSpaceInactive
		}

		busy, err := uc.conflicts.HasConflict(txCtx, space.Ref(), period, &current.ID)
		if err != nil {
			uc.logger.Error("UpdateBooking: conflict check failed for space id=%d: %v", space.ID, err)
			return uc.repositoryError("space conflict check failed", err)
		}
		if busy {
			uc.logger.Warn("UpdateBooking: space id=%d is busy in %s", space.ID, period)
			return ErrSpaceUnavailable
		}

		// 2.4. Перепроверяем назначенных сотрудников
		staffIDs, err := uc.assignmentRepo.ListStaffIDsByBooking(txCtx, current.ID)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to list assignments of booking id=%d: %v", current.ID, err)
			return uc.repositoryError("failed to list assignments", err)
		}

		for _, staffID := range staffIDs {
			staff, err := uc.staffRepo.GetByIDForUpdate(txCtx, staffID)
			if err != nil {
				uc.logger.Error("UpdateBooking: failed to lock staff id=%d: %v", staffID, err)
				return uc.repositoryError("failed to get staff", err)
			}

			busy, err := uc.conflicts.HasConflict(txCtx, staff.Ref(), period, &current.ID)
			if err != nil {
				uc.logger.Error("UpdateBooking: conflict check failed for staff id=%d: %v", staffID, err)
				return uc.repositoryError("staff conflict check failed", err)
			}
			if busy {
				uc.logger.Warn("UpdateBooking: staff id=%d is busy in %s", staffID, period)
				return fmt.Errorf("%w: staff id=%d", ErrStaffUnavailable, staffID)
			}
		}

		// 2.5. Сохраняем
		if err := uc.bookingRepo.UpdateSchedule(txCtx, updated); err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrSpaceOverlap):
				return ErrSpaceUnavailable
			case errors.Is(err, bookingRepo.ErrBookingNotFound):
				return ErrBookingNotFound
			case errors.Is(err, bookingRepo.ErrSpaceNotFound):
				return ErrSpaceNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", current.ID, err)
			return uc.repositoryError("failed to update booking", err)
		}

		result = &Response{Booking: updated, CheckedStaffIDs: staffIDs}
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("UpdateBooking: serialization failure: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrConcurrentUpdate, err)
		}
		return nil, err
	}

	uc.logger.Info("UpdateBooking: booking id=%d moved to space=%d, %s", result.Booking.ID, result.Booking.SpaceID, result.Booking.Range())
	return result, nil
}

func (uc *UseCase) repositoryError(msg string, err error) error {
	if pgerr.IsSerializationFailure(err) {
		return fmt.Errorf("%w: %s: %v", ErrConcurrentUpdate, msg, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, msg, err)
}
