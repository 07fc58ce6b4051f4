package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/internal/service/leave/models"
	"github.com/m04kA/SMC-VenueService/internal/testutil/memstore"
	"github.com/m04kA/SMC-VenueService/pkg/logger"
	"github.com/m04kA/SMC-VenueService/pkg/ptr"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

func date(s string) types.Date { return types.MustParseDate(s) }

func newService(store *memstore.Store) *Service {
	return NewService(store.Leaves(), store.LedgerRepo(), store.Staff(), store.TxManager(), logger.NewNop())
}

func leaveRequest(staffID int64, t domain.LeaveType, start, end string, status domain.LeaveStatus) domain.LeaveRequest {
	r := domain.LeaveRequest{
		StaffID:   staffID,
		LeaveType: t,
		StartDate: date(start),
		EndDate:   date(end),
		Reason:    "family",
		Status:    status,
	}
	r.TotalDays = r.Range().Days()
	return r
}

func TestGetByID(t *testing.T) {
	store := memstore.New()
	store.AddStaff(domain.Staff{ID: 1, Name: "Anna", IsAvailable: true})
	req := leaveRequest(1, domain.LeaveAnnual, "2025-06-01", "2025-06-05", domain.LeavePending)
	req.HRReview = &domain.Review{ReviewerID: 9, Outcome: domain.OutcomeApproved, ReviewedAt: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)}
	req.ConflictSnapshot = []domain.ConflictSnapshotItem{{BookingID: 3, Title: "Expo", StartDate: date("2025-06-02"), EndDate: date("2025-06-02"), SpaceName: "Hall"}}
	stored := store.AddLeaveRequest(req)
	svc := newService(store)

	resp, err := svc.GetByID(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, resp.TotalDays)
	assert.True(t, resp.AwaitingSecondApproval)
	require.NotNil(t, resp.HRReview)
	assert.Nil(t, resp.HeadReview)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, "2025-06-02", resp.Conflicts[0].StartDate)

	_, err = svc.GetByID(context.Background(), 77)
	assert.ErrorIs(t, err, ErrLeaveRequestNotFound)
}

func TestListForStaff(t *testing.T) {
	store := memstore.New()
	store.AddStaff(domain.Staff{ID: 1, Name: "Anna", IsAvailable: true})
	store.AddStaff(domain.Staff{ID: 2, Name: "Boris", IsAvailable: true})
	store.AddLeaveRequest(leaveRequest(1, domain.LeaveAnnual, "2025-06-01", "2025-06-05", domain.LeaveApproved))
	store.AddLeaveRequest(leaveRequest(1, domain.LeaveSick, "2024-11-01", "2024-11-02", domain.LeaveApproved))
	store.AddLeaveRequest(leaveRequest(1, domain.LeaveAnnual, "2025-08-01", "2025-08-01", domain.LeavePending))
	store.AddLeaveRequest(leaveRequest(2, domain.LeaveAnnual, "2025-06-01", "2025-06-05", domain.LeavePending))
	svc := newService(store)
	ctx := context.Background()

	resp, err := svc.ListForStaff(ctx, &models.ListLeaveRequestsRequest{StaffID: 1})
	require.NoError(t, err)
	assert.Len(t, resp.LeaveRequests, 3)

	resp, err = svc.ListForStaff(ctx, &models.ListLeaveRequestsRequest{StaffID: 1, Year: ptr.Ptr(2025), Status: ptr.Ptr("approved")})
	require.NoError(t, err)
	require.Len(t, resp.LeaveRequests, 1)
	assert.Equal(t, "2025-06-01", resp.LeaveRequests[0].StartDate)

	resp, err = svc.ListForStaff(ctx, &models.ListLeaveRequestsRequest{StaffID: 1, LeaveType: ptr.Ptr("sick")})
	require.NoError(t, err)
	assert.Len(t, resp.LeaveRequests, 1)

	_, err = svc.ListForStaff(ctx, &models.ListLeaveRequestsRequest{StaffID: 1, LeaveType: ptr.Ptr("sabbatical")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.ListForStaff(ctx, &models.ListLeaveRequestsRequest{StaffID: 42})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestListPending_Stages(t *testing.T) {
	store := memstore.New()
	store.AddStaff(domain.Staff{ID: 1, Name: "Anna", IsAvailable: true})
	fresh := store.AddLeaveRequest(leaveRequest(1, domain.LeaveAnnual, "2025-06-01", "2025-06-01", domain.LeavePending))

	hrDone := leaveRequest(1, domain.LeaveAnnual, "2025-07-01", "2025-07-01", domain.LeavePending)
	hrDone.HRReview = &domain.Review{ReviewerID: 9, Outcome: domain.OutcomeApproved}
	hrApproved := store.AddLeaveRequest(hrDone)

	store.AddLeaveRequest(leaveRequest(1, domain.LeaveAnnual, "2025-08-01", "2025-08-01", domain.LeaveApproved))
	svc := newService(store)
	ctx := context.Background()

	tests := []struct {
		stage string
		want  []int64
	}{
		{stage: "", want: []int64{fresh.ID, hrApproved.ID}},
		{stage: "any", want: []int64{fresh.ID, hrApproved.ID}},
		{stage: "awaiting_hr", want: []int64{fresh.ID}},
		{stage: "awaiting_head", want: []int64{fresh.ID, hrApproved.ID}},
		{stage: "awaiting_second", want: []int64{hrApproved.ID}},
	}
	for _, tt := range tests {
		t.Run(tt.stage, func(t *testing.T) {
			resp, err := svc.ListPending(ctx, tt.stage)
			require.NoError(t, err)
			got := make([]int64, 0, len(resp.LeaveRequests))
			for _, r := range resp.LeaveRequests {
				got = append(got, r.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := svc.ListPending(ctx, "awaiting_ceo")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetBalance_FoldsLedger(t *testing.T) {
	store := memstore.New()
	store.AddStaff(domain.Staff{ID: 1, Name: "Anna", IsAvailable: true})
	store.AddLedgerEntry(domain.LeaveLedgerEntry{StaffID: 1, LeaveType: domain.LeaveAnnual, Kind: domain.LedgerApproval, Delta: 4, IdempotencyKey: "a"})
	store.AddLedgerEntry(domain.LeaveLedgerEntry{StaffID: 1, LeaveType: domain.LeaveAnnual, Kind: domain.LedgerCancellation, Delta: -6, IdempotencyKey: "b"})
	store.AddLedgerEntry(domain.LeaveLedgerEntry{StaffID: 1, LeaveType: domain.LeaveAnnual, Kind: domain.LedgerApproval, Delta: 3, IdempotencyKey: "c"})
	store.AddLedgerEntry(domain.LeaveLedgerEntry{StaffID: 1, LeaveType: domain.LeaveSick, Kind: domain.LedgerOpening, Delta: 12, IdempotencyKey: "d"})
	svc := newService(store)

	resp, err := svc.GetBalance(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp.Balances, 3)

	assert.Equal(t, models.BalanceItem{LeaveType: "annual", Total: 15, Used: 3, Remaining: 12}, resp.Balances[0])
	assert.Equal(t, models.BalanceItem{LeaveType: "sick", Total: 10, Used: 12, Remaining: 0}, resp.Balances[1])
	assert.Equal(t, models.BalanceItem{LeaveType: "emergency", Total: 5, Used: 0, Remaining: 5}, resp.Balances[2])

	_, err = svc.GetBalance(context.Background(), 2)
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestAdjustBalance(t *testing.T) {
	store := memstore.New()
	store.AddStaff(domain.Staff{ID: 1, Name: "Anna", IsAvailable: true})
	svc := newService(store)
	ctx := context.Background()

	resp, err := svc.AdjustBalance(ctx, &models.AdjustBalanceRequest{
		ActorID:        100,
		StaffID:        1,
		LeaveType:      "annual",
		Kind:           "opening",
		Delta:          7,
		Note:           ptr.Ptr("imported from legacy counters"),
		IdempotencyKey: ptr.Ptr("import-2025"),
	})
	require.NoError(t, err)
	assert.Equal(t, 7, resp.Balances[0].Used)
	assert.Equal(t, 8, resp.Balances[0].Remaining)

	_, err = svc.AdjustBalance(ctx, &models.AdjustBalanceRequest{
		ActorID: 100, StaffID: 1, LeaveType: "annual", Kind: "opening", Delta: 7, IdempotencyKey: ptr.Ptr("import-2025"),
	})
	assert.ErrorIs(t, err, ErrDuplicateAdjustment)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, store.Ledger(), 1)

	resp, err = svc.AdjustBalance(ctx, &models.AdjustBalanceRequest{ActorID: 100, StaffID: 1, LeaveType: "annual", Delta: -2})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Balances[0].Used)

	entries := store.Ledger()
	require.Len(t, entries, 2)
	assert.Equal(t, domain.LedgerAdjustment, entries[1].Kind)
	assert.NotEmpty(t, entries[1].IdempotencyKey)
}

func TestAdjustBalance_Validation(t *testing.T) {
	store := memstore.New()
	store.AddStaff(domain.Staff{ID: 1, Name: "Anna", IsAvailable: true})
	svc := newService(store)

	tests := []struct {
		name string
		req  models.AdjustBalanceRequest
		err  error
	}{
		{name: "zero delta", req: models.AdjustBalanceRequest{StaffID: 1, LeaveType: "annual"}, err: ErrInvalidInput},
		{name: "unknown type", req: models.AdjustBalanceRequest{StaffID: 1, LeaveType: "unpaid", Delta: 1}, err: ErrInvalidInput},
		{name: "request kind", req: models.AdjustBalanceRequest{StaffID: 1, LeaveType: "annual", Kind: "approval", Delta: 1}, err: ErrInvalidInput},
		{name: "unknown staff", req: models.AdjustBalanceRequest{StaffID: 5, LeaveType: "annual", Delta: 1}, err: ErrStaffNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AdjustBalance(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.err)
			assert.Empty(t, store.Ledger())
		})
	}
}

type recordingTx struct {
	*memstore.TxManager
	serializable int
}

func (r *recordingTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	r.serializable++
	return r.TxManager.DoSerializable(ctx, fn)
}

type lockingStaff struct {
	*memstore.StaffRepo
	locked []int64
}

func (l *lockingStaff) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Staff, error) {
	l.locked = append(l.locked, id)
	return l.StaffRepo.GetByIDForUpdate(ctx, id)
}

func TestAdjustBalance_LocksStaffInSerializableTx(t *testing.T) {
	store := memstore.New()
	store.AddStaff(domain.Staff{ID: 1, Name: "Anna", IsAvailable: true})
	tx := &recordingTx{TxManager: store.TxManager()}
	staff := &lockingStaff{StaffRepo: store.Staff()}
	svc := NewService(store.Leaves(), store.LedgerRepo(), staff, tx, logger.NewNop())

	_, err := svc.AdjustBalance(context.Background(), &models.AdjustBalanceRequest{ActorID: 100, StaffID: 1, LeaveType: "sick", Delta: 2})

	require.NoError(t, err)
	assert.Equal(t, 1, tx.serializable)
	assert.Equal(t, []int64{1}, staff.locked)
}

func TestAdjustBalance_SerializationFailure(t *testing.T) {
	store := memstore.New()
	store.AddStaff(domain.Staff{ID: 1, Name: "Anna", IsAvailable: true})
	store.Failures["Ledger.Append"] = fmt.Errorf("insert: %w", &pq.Error{Code: "40001"})
	svc := newService(store)

	_, err := svc.AdjustBalance(context.Background(), &models.AdjustBalanceRequest{ActorID: 100, StaffID: 1, LeaveType: "annual", Delta: 1})

	assert.ErrorIs(t, err, ErrConcurrentUpdate)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Empty(t, store.Ledger())
}
