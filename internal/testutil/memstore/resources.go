package memstore

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	departmentRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/department"
	spaceRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/space"
	staffRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/staff"
)

// SpaceRepo реализует репозиторий площадок
type SpaceRepo struct{ s *Store }

func (s *Store) Spaces() *SpaceRepo { return &SpaceRepo{s: s} }

func (r *SpaceRepo) GetByID(_ context.Context, id int64) (*domain.Space, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("Spaces.GetByID"); err != nil {
		return nil, err
	}
	space, ok := r.s.spaces[id]
	if !ok {
		return nil, spaceRepo.ErrSpaceNotFound
	}
	return &space, nil
}

func (r *SpaceRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Space, error) {
	return r.GetByID(ctx, id)
}

func (r *SpaceRepo) List(_ context.Context, filter domain.SpacesFilter) ([]*domain.Space, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("Spaces.List"); err != nil {
		return nil, err
	}

	result := make([]*domain.Space, 0)
	for _, space := range r.s.spaces {
		if filter.ActiveOnly && !space.IsActive {
			continue
		}
		if filter.MinCapacity != nil && space.Capacity < *filter.MinCapacity {
			continue
		}
		space := space
		result = append(result, &space)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// StaffRepo реализует репозиторий сотрудников
type StaffRepo struct{ s *Store }

func (s *Store) Staff() *StaffRepo { return &StaffRepo{s: s} }

func (r *StaffRepo) GetByID(_ context.Context, id int64) (*domain.Staff, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("Staff.GetByID"); err != nil {
		return nil, err
	}
	staff, ok := r.s.staff[id]
	if !ok {
		return nil, staffRepo.ErrStaffNotFound
	}
	return &staff, nil
}

func (r *StaffRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Staff, error) {
	return r.GetByID(ctx, id)
}

func (r *StaffRepo) GetByUserID(_ context.Context, userID int64) (*domain.Staff, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, staff := range r.s.staff {
		if staff.UserID == userID {
			staff := staff
			return &staff, nil
		}
	}
	return nil, staffRepo.ErrStaffNotFound
}

func (r *StaffRepo) List(_ context.Context, filter domain.StaffFilter) ([]*domain.Staff, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("Staff.List"); err != nil {
		return nil, err
	}

	result := make([]*domain.Staff, 0)
	for _, staff := range r.s.staff {
		if filter.AvailableOnly && !staff.IsAvailable {
			continue
		}
		if filter.DepartmentID != nil && (staff.DepartmentID == nil || *staff.DepartmentID != *filter.DepartmentID) {
			continue
		}
		staff := staff
		result = append(result, &staff)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// DepartmentRepo реализует репозиторий отделов
type DepartmentRepo struct{ s *Store }

func (s *Store) Departments() *DepartmentRepo { return &DepartmentRepo{s: s} }

func (r *DepartmentRepo) GetByHeadUserID(_ context.Context, userID int64) (*domain.Department, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("Departments.GetByHeadUserID"); err != nil {
		return nil, err
	}
	for _, dept := range r.s.departments {
		if dept.HeadUserID != nil && *dept.HeadUserID == userID {
			dept := dept
			return &dept, nil
		}
	}
	return nil, departmentRepo.ErrDepartmentNotFound
}
