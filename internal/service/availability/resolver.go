package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/booking"
	staffRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/staff"
)

// Resolver отвечает на вопрос "свободен ли ресурс": административный флаг И отсутствие конфликтов
type Resolver struct {
	checker        ConflictChecker
	staffRepo      StaffRepository
	spaceRepo      SpaceRepository
	bookingRepo    BookingRepository
	assignmentRepo AssignmentRepository
	logger         Logger
}

// NewResolver создает новый экземпляр резолвера доступности
func NewResolver(
	checker ConflictChecker,
	staffRepo StaffRepository,
	spaceRepo SpaceRepository,
	bookingRepo BookingRepository,
	assignmentRepo AssignmentRepository,
	logger Logger,
) *Resolver {
	return &Resolver{
		checker:        checker,
		staffRepo:      staffRepo,
		spaceRepo:      spaceRepo,
		bookingRepo:    bookingRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

// IsAvailable возвращает true, если флаг ресурса включён и у него нет конфликтов в периоде.
// При выключенном флаге конфликты не проверяются.
func (r *Resolver) IsAvailable(ctx context.Context, res domain.Resource, period domain.DateRange, excludeBookingID *int64) (bool, error) {
	if !res.AvailabilityFlag() {
		return false, nil
	}

	busy, err := r.checker.HasConflict(ctx, res.Ref(), period, excludeBookingID)
	if err != nil {
		return false, fmt.Errorf("%w: IsAvailable - conflict check: %w", ErrInternal, err)
	}

	return !busy, nil
}

// IsStaffAvailable проверяет доступность сотрудника по ID
func (r *Resolver) IsStaffAvailable(ctx context.Context, staffID int64, period domain.DateRange) (bool, error) {
	staff, err := r.getStaff(ctx, staffID)
	if err != nil {
		return false, err
	}
	return r.IsAvailable(ctx, staff, period, nil)
}

// ListAvailableStaff возвращает сотрудников, свободных весь период.
// specialization фильтрует результат независимо от проверки доступности.
func (r *Resolver) ListAvailableStaff(ctx context.Context, period domain.DateRange, specialization *string, excludeBookingID *int64) ([]*domain.Staff, error) {
	candidates, err := r.staffRepo.List(ctx, domain.StaffFilter{AvailableOnly: true})
	if err != nil {
		r.logger.Error("ListAvailableStaff: failed to list staff: %v", err)
		return nil, fmt.Errorf("%w: ListAvailableStaff - list staff: %v", ErrInternal, err)
	}

	result := make([]*domain.Staff, 0, len(candidates))
	for _, staff := range candidates {
		if specialization != nil && !staff.HasSpecialization(*specialization) {
			continue
		}

		ok, err := r.IsAvailable(ctx, staff, period, excludeBookingID)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, staff)
		}
	}

	r.logger.Info("ListAvailableStaff: %d of %d staff available in %s", len(result), len(candidates), period)
	return result, nil
}

// ListAvailableSpaces возвращает активные площадки без бронирований в периоде
func (r *Resolver) ListAvailableSpaces(ctx context.Context, period domain.DateRange, minCapacity *int) ([]*domain.Space, error) {
	candidates, err := r.spaceRepo.List(ctx, domain.SpacesFilter{ActiveOnly: true, MinCapacity: minCapacity})
	if err != nil {
		r.logger.Error("ListAvailableSpaces: failed to list spaces: %v", err)
		return nil, fmt.Errorf("%w: ListAvailableSpaces - list spaces: %v", ErrInternal, err)
	}

	result := make([]*domain.Space, 0, len(candidates))
	for _, space := range candidates {
		ok, err := r.IsAvailable(ctx, space, period, nil)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, space)
		}
	}

	return result, nil
}

// SuggestForBooking подбирает свободных сотрудников на даты бронирования.
// Уже назначенные на это бронирование сотрудники в подборку не входят.
func (r *Resolver) SuggestForBooking(ctx context.Context, bookingID int64, specialization *string) ([]*domain.Staff, error) {
	booking, err := r.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	assigned, err := r.assignedSet(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	available, err := r.ListAvailableStaff(ctx, booking.Range(), specialization, &booking.ID)
	if err != nil {
		return nil, err
	}

	suggestions := make([]*domain.Staff, 0, len(available))
	for _, staff := range available {
		if !assigned[staff.ID] {
			suggestions = append(suggestions, staff)
		}
	}

	r.logger.Info("SuggestForBooking: booking id=%d, %d suggestion(s)", bookingID, len(suggestions))
	return suggestions, nil
}

// Summary возвращает доступность сотрудника и список конфликтующих бронирований
func (r *Resolver) Summary(ctx context.Context, staffID int64, period domain.DateRange) (*Summary, error) {
	staff, err := r.getStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}

	conflicts, err := r.checker.ListConflicts(ctx, staff.Ref(), period, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: Summary - list conflicts: %w", ErrInternal, err)
	}

	return &Summary{
		Staff:            staff,
		IsAvailable:      staff.IsAvailable && len(conflicts) == 0,
		AvailabilityFlag: staff.IsAvailable,
		HasConflicts:     len(conflicts) > 0,
		Conflicts:        conflicts,
	}, nil
}

// StaffForBooking возвращает всех сотрудников с включённым флагом и их доступность на даты бронирования
func (r *Resolver) StaffForBooking(ctx context.Context, bookingID int64) ([]StaffForBooking, error) {
	booking, err := r.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	assigned, err := r.assignedSet(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	candidates, err := r.staffRepo.List(ctx, domain.StaffFilter{AvailableOnly: true})
	if err != nil {
		r.logger.Error("StaffForBooking: failed to list staff: %v", err)
		return nil, fmt.Errorf("%w: StaffForBooking - list staff: %v", ErrInternal, err)
	}

	result := make([]StaffForBooking, 0, len(candidates))
	for _, staff := range candidates {
		ok, err := r.IsAvailable(ctx, staff, booking.Range(), &booking.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, StaffForBooking{
			Staff:       staff,
			IsAvailable: ok,
			IsAssigned:  assigned[staff.ID],
		})
	}

	return result, nil
}

func (r *Resolver) getStaff(ctx context.Context, staffID int64) (*domain.Staff, error) {
	staff, err := r.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			r.logger.Warn("staff id=%d not found", staffID)
			return nil, ErrStaffNotFound
		}
		r.logger.Error("failed to get staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: get staff: %v", ErrInternal, err)
	}
	return staff, nil
}

func (r *Resolver) getBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	booking, err := r.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			r.logger.Warn("booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		r.logger.Error("failed to get booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: get booking: %v", ErrInternal, err)
	}
	return booking, nil
}

func (r *Resolver) assignedSet(ctx context.Context, bookingID int64) (map[int64]bool, error) {
	ids, err := r.assignmentRepo.ListStaffIDsByBooking(ctx, bookingID)
	if err != nil {
		r.logger.Error("failed to list assignments of booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: list assignments: %v", ErrInternal, err)
	}

	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
