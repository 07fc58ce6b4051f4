package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/assignment"
	bookingRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/booking"
	spaceRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/space"
	staffRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-VenueService/pkg/pgerr"
	"github.com/m04kA/SMC-VenueService/pkg/txmanager"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	spaceRepo      SpaceRepository
	staffRepo      StaffRepository
	bookingRepo    BookingRepository
	assignmentRepo AssignmentRepository
	conflicts      ConflictChecker
	availability   AvailabilityResolver
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	spaceRepo SpaceRepository,
	staffRepo StaffRepository,
	bookingRepo BookingRepository,
	assignmentRepo AssignmentRepository,
	conflicts ConflictChecker,
	availability AvailabilityResolver,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		spaceRepo:      spaceRepo,
		staffRepo:      staffRepo,
		bookingRepo:    bookingRepo,
		assignmentRepo: assignmentRepo,
		conflicts:      conflicts,
		availability:   availability,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка занятости и вставка выполняются в сериализуемой транзакции с блокировкой строки площадки,
// поэтому два параллельных запроса на пересекающиеся даты не могут оба пройти проверку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, space=%d, period=%s..%s, staff=%v",
		req.UserID, req.SpaceID, req.StartDate, req.EndDate, req.StaffIDs)

	// 1. Валидация входных данных
	today := types.DateOf(uc.timeProvider.Now())
	period, status, err := validateRequest(req, today)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *Response

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Блокируем площадку (FOR UPDATE)
		space, err := uc.spaceRepo.GetByIDForUpdate(txCtx, req.SpaceID)
		if err != nil {
			if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
				uc.logger.Warn("CreateBooking: space id=%d not found", req.SpaceID)
				return ErrSpaceNotFound
			}
			uc.logger.Error("CreateBooking: failed to get space id=%d: %v", req.SpaceID, err)
			return uc.repositoryError("failed to get space", err)
		}

		// 2.2. Площадка должна быть включена
		if !space.IsActive {
			uc.logger.Warn("CreateBooking: space id=%d is not active", req.SpaceID)
			return ErrSpaceInactive
		}

		// 2.3. Проверяем пересечения с активными бронированиями площадки
		busy, err := uc.conflicts.HasConflict(txCtx, space.Ref(), period, nil)
		if err != nil {
			uc.logger.Error("CreateBooking: conflict check failed for space id=%d: %v", req.SpaceID, err)
			return uc.repositoryError("conflict check failed", err)
		}
		if busy {
			uc.logger.Warn("CreateBooking: space id=%d is busy in %s", req.SpaceID, period)
			return ErrSpaceUnavailable
		}

		// 2.4. Создаем бронирование
		booking := &domain.Booking{
			SpaceID:     req.SpaceID,
			Title:       req.Title,
			Description: req.Description,
			ClientName:  req.ClientName,
			ClientEmail: req.ClientEmail,
			ClientPhone: req.ClientPhone,
			StartDate:   period.Start,
			EndDate:     period.End,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Status:      status,
			CreatedBy:   req.UserID,
			Notes:       req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrSpaceOverlap):
				uc.logger.Warn("CreateBooking: exclusion constraint rejected space id=%d in %s", req.SpaceID, period)
				return ErrSpaceUnavailable
			case errors.Is(err, bookingRepo.ErrSpaceNotFound):
				return ErrSpaceNotFound
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return uc.repositoryError("failed to create booking", err)
		}

		// 2.5. Назначаем сотрудников, если они переданы
		assigned := make([]int64, 0, len(req.StaffIDs))
		for _, staffID := range req.StaffIDs {
			if err := uc.assign(txCtx, created, staffID); err != nil {
				return err
			}
			assigned = append(assigned, staffID)
		}

		result = &Response{Booking: created, AssignedStaffIDs: assigned}
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("CreateBooking: serialization failure: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrConcurrentUpdate, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d with %d staff", result.Booking.ID, len(result.AssignedStaffIDs))
	return result, nil
}

// assign назначает сотрудника на только что созданное бронирование
func (uc *UseCase) assign(ctx context.Context, booking *domain.Booking, staffID int64) error {
	staff, err := uc.staffRepo.GetByIDForUpdate(ctx, staffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("CreateBooking: staff id=%d not found", staffID)
			return ErrStaffNotFound
		}
		uc.logger.Error("CreateBooking: failed to get staff id=%d: %v", staffID, err)
		return uc.repositoryError("failed to get staff", err)
	}

	ok, err := uc.availability.IsAvailable(ctx, staff, booking.Range(), &booking.ID)
	if err != nil {
		uc.logger.Error("CreateBooking: availability check failed for staff id=%d: %v", staffID, err)
		return uc.repositoryError("availability check failed", err)
	}
	if !ok {
		uc.logger.Warn("CreateBooking: staff id=%d unavailable in %s", staffID, booking.Range())
		return fmt.Errorf("%w: staff id=%d", ErrStaffUnavailable, staffID)
	}

	_, err = uc.assignmentRepo.Create(ctx, &domain.Assignment{BookingID: booking.ID, StaffID: staffID})
	if err != nil {
		if errors.Is(err, assignmentRepo.ErrReferenceNotFound) {
			return ErrStaffNotFound
		}
		uc.logger.Error("CreateBooking: failed to assign staff id=%d: %v", staffID, err)
		return uc.repositoryError("failed to assign staff", err)
	}
	return nil
}

func (uc *UseCase) repositoryError(msg string, err error) error {
	if pgerr.IsSerializationFailure(err) {
		return fmt.Errorf("%w: %s: %v", ErrConcurrentUpdate, msg, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, msg, err)
}
