package memstore

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	leaveRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/leave"
	ledgerRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/ledger"
)

// LeaveRepo реализует репозиторий заявок с проверкой версии в Save
type LeaveRepo struct{ s *Store }

func (s *Store) Leaves() *LeaveRepo { return &LeaveRepo{s: s} }

func (r *LeaveRepo) Create(_ context.Context, req *domain.LeaveRequest) (*domain.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("Leaves.Create"); err != nil {
		return nil, err
	}

	req.ID = r.s.id()
	req.Version = 1
	req.CreatedAt = r.s.now
	req.UpdatedAt = r.s.now
	if req.ConflictSnapshot == nil {
		req.ConflictSnapshot = []domain.ConflictSnapshotItem{}
	}
	r.s.leaves[req.ID] = *req
	return req, nil
}

func (r *LeaveRepo) GetByID(_ context.Context, id int64) (*domain.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("Leaves.GetByID"); err != nil {
		return nil, err
	}
	req, ok := r.s.leaves[id]
	if !ok {
		return nil, leaveRepo.ErrLeaveRequestNotFound
	}
	return cloneLeave(req), nil
}

func (r *LeaveRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.LeaveRequest, error) {
	return r.GetByID(ctx, id)
}

func (r *LeaveRepo) List(_ context.Context, filter domain.LeaveRequestsFilter) ([]*domain.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("Leaves.List"); err != nil {
		return nil, err
	}

	result := make([]*domain.LeaveRequest, 0)
	for _, req := range r.s.leaves {
		if filter.StaffID != nil && req.StaffID != *filter.StaffID {
			continue
		}
		if filter.Status != nil && req.Status != *filter.Status {
			continue
		}
		if filter.LeaveType != nil && req.LeaveType != *filter.LeaveType {
			continue
		}
		if filter.Year != nil && req.StartDate.Year() != *filter.Year {
			continue
		}
		if filter.Overlaps != nil && !filter.Overlaps.Overlaps(req.Range()) {
			continue
		}
		result = append(result, cloneLeave(req))
	}
	sort.Slice(result, func(i, j int) bool {
		if c := result[i].StartDate.Compare(result[j].StartDate); c != 0 {
			return c > 0
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (r *LeaveRepo) ListPending(_ context.Context, stage domain.PendingStage) ([]*domain.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	result := make([]*domain.LeaveRequest, 0)
	for _, req := range r.s.leaves {
		req := req
		if stage.Matches(&req) {
			result = append(result, cloneLeave(req))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *LeaveRepo) Save(_ context.Context, req *domain.LeaveRequest, expectedVersion int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("Leaves.Save"); err != nil {
		return err
	}

	stored, ok := r.s.leaves[req.ID]
	if !ok || stored.Version != expectedVersion {
		return leaveRepo.ErrVersionConflict
	}

	req.Version = expectedVersion + 1
	req.UpdatedAt = r.s.now
	r.s.leaves[req.ID] = *cloneLeave(*req)
	return nil
}

// SetLeaveVersion имитирует параллельное изменение заявки
func (s *Store) SetLeaveVersion(id, version int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req := s.leaves[id]
	req.Version = version
	s.leaves[id] = req
}

func cloneLeave(req domain.LeaveRequest) *domain.LeaveRequest {
	if req.HRReview != nil {
		review := *req.HRReview
		req.HRReview = &review
	}
	if req.HeadReview != nil {
		review := *req.HeadReview
		req.HeadReview = &review
	}
	req.ConflictSnapshot = append([]domain.ConflictSnapshotItem(nil), req.ConflictSnapshot...)
	return &req
}

// LedgerRepo реализует журнал отпусков с уникальностью ключа и пары (заявка, вид)
type LedgerRepo struct{ s *Store }

func (s *Store) LedgerRepo() *LedgerRepo { return &LedgerRepo{s: s} }

func (r *LedgerRepo) Append(_ context.Context, e *domain.LeaveLedgerEntry) (*domain.LeaveLedgerEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("Ledger.Append"); err != nil {
		return nil, err
	}

	for _, existing := range r.s.ledger {
		if existing.IdempotencyKey == e.IdempotencyKey {
			return nil, ledgerRepo.ErrDuplicateEntry
		}
		if e.LeaveRequestID != nil && existing.LeaveRequestID != nil &&
			*existing.LeaveRequestID == *e.LeaveRequestID && existing.Kind == e.Kind {
			return nil, ledgerRepo.ErrDuplicateEntry
		}
	}

	e.ID = r.s.id()
	e.CreatedAt = r.s.now
	r.s.ledger = append(r.s.ledger, *e)
	return e, nil
}

func (r *LedgerRepo) ListByStaff(_ context.Context, staffID int64, leaveType *domain.LeaveType) ([]domain.LeaveLedgerEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("Ledger.ListByStaff"); err != nil {
		return nil, err
	}

	result := make([]domain.LeaveLedgerEntry, 0)
	for _, e := range r.s.ledger {
		if e.StaffID != staffID {
			continue
		}
		if leaveType != nil && e.LeaveType != *leaveType {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}
