package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/assignment"
	bookingRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-VenueService/internal/service/bookings/models"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo    BookingRepository
	assignmentRepo AssignmentRepository
	txManager      TransactionManager
	metrics        MetricsRecorder
	logger         Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	assignmentRepo AssignmentRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		assignmentRepo: assignmentRepo,
		txManager:      txManager,
		metrics:        metrics,
		logger:         logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.getBooking(ctx, "GetByID", id, false)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с фильтрацией по площадке, сотруднику, периоду и статусу.
// Отменённые бронирования включаются только по запросу.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus переводит бронирование в новый статус по таблице переходов.
// Отменённое бронирование вернуть нельзя: его интервал мог быть уже занят.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d", bookingID, req.Status, req.UserID)

	newStatus, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	var result *domain.Booking
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "UpdateStatus", bookingID, true)
		if err != nil {
			return err
		}

		if !booking.Status.CanTransitionTo(newStatus) {
			s.logger.Warn("UpdateStatus: booking id=%d cannot change status %s -> %s", bookingID, booking.Status, newStatus)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
		}

		if newStatus == domain.StatusCancelled {
			err = s.bookingRepo.Cancel(txCtx, bookingID, nil)
		} else {
			err = s.bookingRepo.UpdateStatus(txCtx, bookingID, newStatus)
		}
		if err != nil {
			return s.mapWriteError("UpdateStatus", bookingID, err)
		}

		result, err = s.getBooking(txCtx, "UpdateStatus", bookingID, false)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: booking id=%d is now %s", bookingID, result.Status)
	return models.FromDomainBooking(result), nil
}

// Cancel отменяет бронирование. Интервал площадки и назначенных сотрудников освобождается сразу.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	if req.CancellationReason != nil && len(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason must not exceed %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "Cancel", bookingID, true)
		if err != nil {
			return err
		}

		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
			return ErrCannotCancel
		}

		if err := s.bookingRepo.Cancel(txCtx, bookingID, req.CancellationReason); err != nil {
			return s.mapWriteError("Cancel", bookingID, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// ListAssignedStaff возвращает сотрудников, назначенных на бронирование
func (s *Service) ListAssignedStaff(ctx context.Context, bookingID int64) (*models.AssignedStaffListResponse, error) {
	if _, err := s.getBooking(ctx, "ListAssignedStaff", bookingID, false); err != nil {
		return nil, err
	}

	items, err := s.assignmentRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		s.logger.Error("ListAssignedStaff: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ListAssignedStaff - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAssignedStaff(bookingID, items), nil
}

// UnassignStaff снимает сотрудника с бронирования
func (s *Service) UnassignStaff(ctx context.Context, bookingID, staffID int64) error {
	if err := s.assignmentRepo.Delete(ctx, bookingID, staffID); err != nil {
		if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
			s.logger.Warn("UnassignStaff: staff id=%d is not assigned to booking id=%d", staffID, bookingID)
			return ErrAssignmentNotFound
		}
		s.logger.Error("UnassignStaff: repository error for booking id=%d, staff id=%d: %v", bookingID, staffID, err)
		return fmt.Errorf("%w: UnassignStaff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UnassignStaff: staff id=%d removed from booking id=%d", staffID, bookingID)
	return nil
}

// CompletePassed переводит подтверждённые бронирования, закончившиеся до today, в completed.
// Повторный запуск ничего не меняет. В режиме dryRun только возвращает список.
func (s *Service) CompletePassed(ctx context.Context, today types.Date, dryRun bool) (*models.CompletionReport, error) {
	report := &models.CompletionReport{
		Date:       today.String(),
		DryRun:     dryRun,
		BookingIDs: []int64{},
	}

	if dryRun {
		passed, err := s.bookingRepo.ListPassedConfirmed(ctx, today)
		if err != nil {
			s.logger.Error("CompletePassed: failed to list passed bookings: %v", err)
			return nil, fmt.Errorf("%w: CompletePassed - list: %v", ErrInternal, err)
		}
		for _, b := range passed {
			report.BookingIDs = append(report.BookingIDs, b.ID)
		}
		s.logger.Info("CompletePassed: dry run, %d booking(s) would be completed", report.Count())
		return report, nil
	}

	ids, err := s.bookingRepo.CompletePassed(ctx, today)
	if err != nil {
		s.logger.Error("CompletePassed: failed to complete passed bookings: %v", err)
		return nil, fmt.Errorf("%w: CompletePassed - update: %v", ErrInternal, err)
	}
	report.BookingIDs = append(report.BookingIDs, ids...)

	if s.metrics != nil {
		s.metrics.AddBookingsCompleted(report.Count())
	}
	s.logger.Info("CompletePassed: %d booking(s) completed before %s", report.Count(), today)
	return report, nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op string, id int64, forUpdate bool) (*domain.Booking, error) {
	var (
		booking *domain.Booking
		err     error
	)
	if forUpdate {
		booking, err = s.bookingRepo.GetByIDForUpdate(ctx, id)
	} else {
		booking, err = s.bookingRepo.GetByID(ctx, id)
	}
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func (s *Service) mapWriteError(op string, id int64, err error) error {
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		s.logger.Warn("%s: booking id=%d not found during update", op, id)
		return ErrBookingNotFound
	}
	s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
