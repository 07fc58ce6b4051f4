package bookings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/internal/service/bookings/models"
	"github.com/m04kA/SMC-VenueService/internal/testutil/memstore"
	"github.com/m04kA/SMC-VenueService/pkg/logger"
	"github.com/m04kA/SMC-VenueService/pkg/ptr"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

type completedCounter struct{ total int }

func (c *completedCounter) AddBookingsCompleted(n int) { c.total += n }

func date(s string) types.Date { return types.MustParseDate(s) }

func newService(store *memstore.Store, counter *completedCounter) *Service {
	return NewService(store.Bookings(), store.AssignmentRepo(), store.TxManager(), counter, logger.NewNop())
}

func seedBooking(store *memstore.Store, status domain.BookingStatus, start, end string) *domain.Booking {
	return store.AddBooking(domain.Booking{
		SpaceID:   1,
		Title:     "Gala dinner",
		StartDate: date(start),
		EndDate:   date(end),
		Status:    status,
	})
}

func TestGetByID(t *testing.T) {
	store := memstore.New()
	store.AddSpace(domain.Space{ID: 1, Name: "Hall", IsActive: true})
	b := seedBooking(store, domain.StatusPending, "2025-06-10", "2025-06-12")
	svc := newService(store, &completedCounter{})

	resp, err := svc.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-10", resp.StartDate)
	assert.Equal(t, "2025-06-12", resp.EndDate)
	assert.Equal(t, 3, resp.TotalDays)
	assert.Equal(t, "pending", resp.Status)

	_, err = svc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_Filters(t *testing.T) {
	store := memstore.New()
	store.AddSpace(domain.Space{ID: 1, Name: "Hall", IsActive: true})
	june := seedBooking(store, domain.StatusConfirmed, "2025-06-10", "2025-06-12")
	seedBooking(store, domain.StatusPending, "2025-07-01", "2025-07-01")
	seedBooking(store, domain.StatusCancelled, "2025-06-11", "2025-06-11")
	svc := newService(store, &completedCounter{})
	ctx := context.Background()

	resp, err := svc.List(ctx, &models.ListBookingsRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2, "cancelled bookings are hidden by default")

	resp, err = svc.List(ctx, &models.ListBookingsRequest{StartDate: ptr.Ptr(date("2025-06-12"))})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, june.ID, resp.Bookings[0].ID)

	resp, err = svc.List(ctx, &models.ListBookingsRequest{Status: ptr.Ptr("cancelled")})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "cancelled", resp.Bookings[0].Status)

	other := store.AddBooking(domain.Booking{
		SpaceID:   1,
		Title:     "Board meeting",
		StartDate: date("2025-08-01"),
		EndDate:   date("2025-08-01"),
		Status:    domain.StatusPending,
		CreatedBy: 77,
	})
	resp, err = svc.List(ctx, &models.ListBookingsRequest{CreatedBy: ptr.Ptr(int64(77))})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, other.ID, resp.Bookings[0].ID)

	_, err = svc.List(ctx, &models.ListBookingsRequest{Status: ptr.Ptr("archived")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.List(ctx, &models.ListBookingsRequest{
		StartDate: ptr.Ptr(date("2025-06-12")),
		EndDate:   ptr.Ptr(date("2025-06-10")),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatus_TransitionTable(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.BookingStatus
		to      string
		wantErr error
	}{
		{name: "pending to confirmed", from: domain.StatusPending, to: "confirmed"},
		{name: "pending to cancelled", from: domain.StatusPending, to: "cancelled"},
		{name: "confirmed to completed", from: domain.StatusConfirmed, to: "completed"},
		{name: "pending to completed", from: domain.StatusPending, to: "completed", wantErr: ErrInvalidTransition},
		{name: "cancelled to pending", from: domain.StatusCancelled, to: "pending", wantErr: ErrInvalidTransition},
		{name: "completed to confirmed", from: domain.StatusCompleted, to: "confirmed", wantErr: ErrInvalidTransition},
		{name: "unknown status", from: domain.StatusPending, to: "archived", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memstore.New()
			store.AddSpace(domain.Space{ID: 1, Name: "Hall", IsActive: true})
			b := seedBooking(store, tt.from, "2025-06-10", "2025-06-10")
			svc := newService(store, &completedCounter{})

			resp, err := svc.UpdateStatus(context.Background(), b.ID, &models.UpdateStatusRequest{UserID: 7, Status: tt.to})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				stored, _ := store.Booking(b.ID)
				assert.Equal(t, tt.from, stored.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, resp.Status)
		})
	}
}

func TestCancel(t *testing.T) {
	store := memstore.New()
	store.AddSpace(domain.Space{ID: 1, Name: "Hall", IsActive: true})
	b := seedBooking(store, domain.StatusConfirmed, "2025-06-10", "2025-06-12")
	svc := newService(store, &completedCounter{})
	ctx := context.Background()

	err := svc.Cancel(ctx, b.ID, &models.CancelBookingRequest{UserID: 7, CancellationReason: ptr.Ptr("client withdrew")})
	require.NoError(t, err)

	stored, _ := store.Booking(b.ID)
	assert.Equal(t, domain.StatusCancelled, stored.Status)
	assert.Equal(t, "client withdrew", *stored.CancellationReason)
	assert.NotNil(t, stored.CancelledAt)

	err = svc.Cancel(ctx, b.ID, &models.CancelBookingRequest{UserID: 7})
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)

	err = svc.Cancel(ctx, 999, &models.CancelBookingRequest{UserID: 7})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestAssignedStaff_ListAndUnassign(t *testing.T) {
	store := memstore.New()
	store.AddSpace(domain.Space{ID: 1, Name: "Hall", IsActive: true})
	store.AddStaff(domain.Staff{ID: 5, Name: "Anna", IsAvailable: true})
	b := seedBooking(store, domain.StatusConfirmed, "2025-06-10", "2025-06-12")
	store.Assign(b.ID, 5)
	svc := newService(store, &completedCounter{})
	ctx := context.Background()

	resp, err := svc.ListAssignedStaff(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, resp.Staff, 1)
	assert.Equal(t, "Anna", resp.Staff[0].Name)

	require.NoError(t, svc.UnassignStaff(ctx, b.ID, 5))
	assert.Empty(t, store.Assignments())

	err = svc.UnassignStaff(ctx, b.ID, 5)
	assert.ErrorIs(t, err, ErrAssignmentNotFound)

	_, err = svc.ListAssignedStaff(ctx, 999)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCompletePassed(t *testing.T) {
	store := memstore.New()
	store.AddSpace(domain.Space{ID: 1, Name: "Hall", IsActive: true})
	passed := seedBooking(store, domain.StatusConfirmed, "2025-04-01", "2025-04-30")
	endsToday := seedBooking(store, domain.StatusConfirmed, "2025-05-01", "2025-05-01")
	pending := seedBooking(store, domain.StatusPending, "2025-03-01", "2025-03-02")
	counter := &completedCounter{}
	svc := newService(store, counter)
	ctx := context.Background()
	today := date("2025-05-01")

	report, err := svc.CompletePassed(ctx, today, true)
	require.NoError(t, err)
	assert.Equal(t, []int64{passed.ID}, report.BookingIDs)
	assert.True(t, report.DryRun)
	stored, _ := store.Booking(passed.ID)
	assert.Equal(t, domain.StatusConfirmed, stored.Status, "dry run changes nothing")
	assert.Zero(t, counter.total)

	report, err = svc.CompletePassed(ctx, today, false)
	require.NoError(t, err)
	assert.Equal(t, []int64{passed.ID}, report.BookingIDs)
	assert.Equal(t, 1, counter.total)

	stored, _ = store.Booking(passed.ID)
	assert.Equal(t, domain.StatusCompleted, stored.Status)
	stored, _ = store.Booking(endsToday.ID)
	assert.Equal(t, domain.StatusConfirmed, stored.Status)
	stored, _ = store.Booking(pending.ID)
	assert.Equal(t, domain.StatusPending, stored.Status)

	report, err = svc.CompletePassed(ctx, today, false)
	require.NoError(t, err)
	assert.Empty(t, report.BookingIDs)
	assert.Equal(t, 1, counter.total)
}

func TestCompletePassed_RepositoryError(t *testing.T) {
	store := memstore.New()
	store.Failures["Bookings.CompletePassed"] = errors.New("connection reset")
	svc := newService(store, &completedCounter{})

	_, err := svc.CompletePassed(context.Background(), date("2025-05-01"), false)
	assert.ErrorIs(t, err, ErrInternal)
}
