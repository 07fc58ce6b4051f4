package memstore

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/assignment"
	bookingRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// BookingRepo реализует репозиторий бронирований.
// Create и UpdateSchedule воспроизводят ограничение bookings_no_overlap.
type BookingRepo struct{ s *Store }

func (s *Store) Bookings() *BookingRepo { return &BookingRepo{s: s} }

func (r *BookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("Bookings.Create"); err != nil {
		return nil, err
	}
	if _, ok := r.s.spaces[b.SpaceID]; !ok {
		return nil, bookingRepo.ErrSpaceNotFound
	}
	if r.s.overlapsLocked(b) {
		return nil, bookingRepo.ErrSpaceOverlap
	}

	b.ID = r.s.id()
	b.CreatedAt = r.s.now
	b.UpdatedAt = r.s.now
	r.s.bookings[b.ID] = *b
	return b, nil
}

func (s *Store) overlapsLocked(b *domain.Booking) bool {
	if !b.IsActive() {
		return false
	}
	for _, other := range s.bookings {
		if other.ID == b.ID || other.SpaceID != b.SpaceID || !other.IsActive() {
			continue
		}
		if domain.Overlaps(b.StartDate, b.EndDate, other.StartDate, other.EndDate) {
			return true
		}
	}
	return false
}

func (r *BookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("Bookings.GetByID"); err != nil {
		return nil, err
	}
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return &b, nil
}

func (r *BookingRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.GetByID(ctx, id)
}

func (r *BookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("Bookings.List"); err != nil {
		return nil, err
	}

	result := make([]*domain.Booking, 0)
	for _, b := range r.s.bookings {
		if filter.SpaceID != nil && b.SpaceID != *filter.SpaceID {
			continue
		}
		if filter.StaffID != nil && !r.s.isAssignedLocked(b.ID, *filter.StaffID) {
			continue
		}
		if filter.CreatedBy != nil && b.CreatedBy != *filter.CreatedBy {
			continue
		}
		if filter.Range != nil && !filter.Range.Overlaps(b.Range()) {
			continue
		}
		if filter.EndsBefore != nil && !b.EndDate.Before(*filter.EndsBefore) {
			continue
		}
		if filter.Status != nil {
			if b.Status != *filter.Status {
				continue
			}
		} else if !filter.IncludeCancelled && b.IsCancelled() {
			continue
		}
		b := b
		result = append(result, &b)
	}
	sort.Slice(result, func(i, j int) bool {
		if c := result[i].StartDate.Compare(result[j].StartDate); c != 0 {
			return c < 0
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (s *Store) isAssignedLocked(bookingID, staffID int64) bool {
	for _, a := range s.assignments {
		if a.BookingID == bookingID && a.StaffID == staffID {
			return true
		}
	}
	return false
}

// ListOccupancy отдаёт бронирования площадки так же, как SQL-запрос репозитория
func (r *BookingRepo) ListOccupancy(_ context.Context, spaceID int64, period domain.DateRange, exclude *int64) ([]domain.Occupancy, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("Bookings.ListOccupancy"); err != nil {
		return nil, err
	}

	result := make([]domain.Occupancy, 0)
	for _, b := range r.s.bookings {
		if b.SpaceID != spaceID || !b.IsActive() || !period.Overlaps(b.Range()) {
			continue
		}
		if exclude != nil && b.ID == *exclude {
			continue
		}
		result = append(result, r.s.occupancyLocked(b, nil))
	}
	sortOccupancy(result)
	return result, nil
}

func (s *Store) occupancyLocked(b domain.Booking, role *string) domain.Occupancy {
	return domain.Occupancy{
		BookingID: b.ID,
		SpaceID:   b.SpaceID,
		SpaceName: s.spaces[b.SpaceID].Name,
		Title:     b.Title,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Status:    b.Status,
		Role:      role,
	}
}

func sortOccupancy(items []domain.Occupancy) {
	sort.Slice(items, func(i, j int) bool {
		if c := items[i].StartDate.Compare(items[j].StartDate); c != 0 {
			return c < 0
		}
		return items[i].BookingID < items[j].BookingID
	})
}

func (r *BookingRepo) UpdateSchedule(_ context.Context, b *domain.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("Bookings.UpdateSchedule"); err != nil {
		return err
	}
	stored, ok := r.s.bookings[b.ID]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if r.s.overlapsLocked(b) {
		return bookingRepo.ErrSpaceOverlap
	}

	stored.SpaceID = b.SpaceID
	stored.StartDate = b.StartDate
	stored.EndDate = b.EndDate
	stored.StartTime = b.StartTime
	stored.EndTime = b.EndTime
	stored.UpdatedAt = r.s.now
	r.s.bookings[b.ID] = stored
	b.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *BookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	stored.Status = status
	r.s.bookings[id] = stored
	return nil
}

func (r *BookingRepo) Cancel(_ context.Context, id int64, reason *string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	now := r.s.now
	stored.Status = domain.StatusCancelled
	stored.CancellationReason = reason
	stored.CancelledAt = &now
	r.s.bookings[id] = stored
	return nil
}

func (r *BookingRepo) ListPassedConfirmed(ctx context.Context, before types.Date) ([]*domain.Booking, error) {
	status := domain.StatusConfirmed
	return r.List(ctx, domain.BookingsFilter{Status: &status, EndsBefore: &before})
}

func (r *BookingRepo) CompletePassed(_ context.Context, before types.Date) ([]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("Bookings.CompletePassed"); err != nil {
		return nil, err
	}

	ids := make([]int64, 0)
	for id, b := range r.s.bookings {
		if b.Status == domain.StatusConfirmed && b.EndDate.Before(before) {
			b.Status = domain.StatusCompleted
			r.s.bookings[id] = b
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// AssignmentRepo реализует репозиторий назначений с уникальностью (booking_id, staff_id)
type AssignmentRepo struct{ s *Store }

func (s *Store) AssignmentRepo() *AssignmentRepo { return &AssignmentRepo{s: s} }

func (r *AssignmentRepo) Create(_ context.Context, a *domain.Assignment) (*domain.Assignment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("Assignments.Create"); err != nil {
		return nil, err
	}
	if r.s.isAssignedLocked(a.BookingID, a.StaffID) {
		return nil, assignmentRepo.ErrAlreadyAssigned
	}
	_, bookingOK := r.s.bookings[a.BookingID]
	_, staffOK := r.s.staff[a.StaffID]
	if !bookingOK || !staffOK {
		return nil, assignmentRepo.ErrReferenceNotFound
	}

	a.CreatedAt = r.s.now
	r.s.assignments = append(r.s.assignments, *a)
	return a, nil
}

func (r *AssignmentRepo) Exists(_ context.Context, bookingID, staffID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.isAssignedLocked(bookingID, staffID), nil
}

func (r *AssignmentRepo) Delete(_ context.Context, bookingID, staffID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, a := range r.s.assignments {
		if a.BookingID == bookingID && a.StaffID == staffID {
			r.s.assignments = append(r.s.assignments[:i:i], r.s.assignments[i+1:]...)
			return nil
		}
	}
	return assignmentRepo.ErrAssignmentNotFound
}

func (r *AssignmentRepo) ListByBooking(_ context.Context, bookingID int64) ([]*domain.AssignedStaff, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	result := make([]*domain.AssignedStaff, 0)
	for _, a := range r.s.assignments {
		if a.BookingID != bookingID {
			continue
		}
		staff := r.s.staff[a.StaffID]
		result = append(result, &domain.AssignedStaff{Assignment: a, Staff: &staff})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StaffID < result[j].StaffID })
	return result, nil
}

func (r *AssignmentRepo) ListStaffIDsByBooking(_ context.Context, bookingID int64) ([]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ids := make([]int64, 0)
	for _, a := range r.s.assignments {
		if a.BookingID == bookingID {
			ids = append(ids, a.StaffID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// ListOccupancy отдаёт назначения сотрудника на активные бронирования в периоде
func (r *AssignmentRepo) ListOccupancy(_ context.Context, staffID int64, period domain.DateRange, exclude *int64) ([]domain.Occupancy, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("Assignments.ListOccupancy"); err != nil {
		return nil, err
	}

	result := make([]domain.Occupancy, 0)
	for _, a := range r.s.assignments {
		if a.StaffID != staffID {
			continue
		}
		b, ok := r.s.bookings[a.BookingID]
		if !ok || !b.IsActive() || !period.Overlaps(b.Range()) {
			continue
		}
		if exclude != nil && b.ID == *exclude {
			continue
		}
		result = append(result, r.s.occupancyLocked(b, a.Role))
	}
	sortOccupancy(result)
	return result, nil
}
