package create_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/internal/service/allocation"
	"github.com/m04kA/SMC-VenueService/internal/service/availability"
	"github.com/m04kA/SMC-VenueService/internal/testutil/memstore"
	"github.com/m04kA/SMC-VenueService/pkg/logger"
	"github.com/m04kA/SMC-VenueService/pkg/metrics"
	"github.com/m04kA/SMC-VenueService/pkg/ptr"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func date(s string) types.Date { return types.MustParseDate(s) }

func newUseCase(store *memstore.Store) *UseCase {
	log := logger.NewNop()
	var noMetrics *metrics.Metrics
	engine := allocation.NewEngine(store.Bookings(), store.AssignmentRepo(), noMetrics, log)
	resolver := availability.NewResolver(engine, store.Staff(), store.Spaces(), store.Bookings(), store.AssignmentRepo(), log)

	uc := NewUseCase(store.Spaces(), store.Staff(), store.Bookings(), store.AssignmentRepo(), engine, resolver, store.TxManager(), log)
	uc.timeProvider = fixedTime{now: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)}
	return uc
}

func newStore() *memstore.Store {
	store := memstore.New()
	store.AddSpace(domain.Space{ID: 1, Name: "Main Hall", Capacity: 200, IsActive: true})
	store.AddSpace(domain.Space{ID: 2, Name: "Old Barn", Capacity: 50, IsActive: false})
	store.AddStaff(domain.Staff{ID: 10, Name: "Anna", IsAvailable: true})
	store.AddStaff(domain.Staff{ID: 11, Name: "Boris", IsAvailable: false})
	return store
}

func validRequest(start, end string) *Request {
	return &Request{
		UserID:      7,
		SpaceID:     1,
		Title:       "Summer party",
		ClientName:  "Acme Corp",
		ClientEmail: "events@acme.test",
		StartDate:   date(start),
		EndDate:     date(end),
	}
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	store := newStore()
	uc := newUseCase(store)

	resp, err := uc.Execute(context.Background(), validRequest("2025-06-10", "2025-06-12"))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, resp.Booking.Status)
	assert.Equal(t, int64(7), resp.Booking.CreatedBy)
	assert.Empty(t, resp.AssignedStaffIDs)

	stored, ok := store.Booking(resp.Booking.ID)
	require.True(t, ok)
	assert.Equal(t, date("2025-06-12"), stored.EndDate)
}

func TestExecute_SpaceConflicts(t *testing.T) {
	tests := []struct {
		name     string
		existing domain.BookingStatus
		start    string
		end      string
		wantErr  error
	}{
		{name: "shared boundary day", existing: domain.StatusConfirmed, start: "2025-06-12", end: "2025-06-14", wantErr: ErrSpaceUnavailable},
		{name: "contained", existing: domain.StatusPending, start: "2025-06-11", end: "2025-06-11", wantErr: ErrSpaceUnavailable},
		{name: "completed still holds dates", existing: domain.StatusCompleted, start: "2025-06-09", end: "2025-06-10", wantErr: ErrSpaceUnavailable},
		{name: "adjacent day is free", existing: domain.StatusConfirmed, start: "2025-06-13", end: "2025-06-14"},
		{name: "cancelled frees the dates", existing: domain.StatusCancelled, start: "2025-06-10", end: "2025-06-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore()
			store.AddBooking(domain.Booking{SpaceID: 1, Title: "Existing", StartDate: date("2025-06-10"), EndDate: date("2025-06-12"), Status: tt.existing})
			uc := newUseCase(store)

			_, err := uc.Execute(context.Background(), validRequest(tt.start, tt.end))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrConflict)
				assert.Equal(t, 1, store.BookingCount())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2, store.BookingCount())
		})
	}
}

func TestExecute_SpaceChecks(t *testing.T) {
	store := newStore()
	uc := newUseCase(store)

	req := validRequest("2025-06-10", "2025-06-10")
	req.SpaceID = 99
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSpaceNotFound)

	req.SpaceID = 2
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSpaceInactive)
}

func TestExecute_AssignsStaffAtomically(t *testing.T) {
	store := newStore()
	uc := newUseCase(store)

	req := validRequest("2025-06-10", "2025-06-10")
	req.Status = ptr.Ptr("confirmed")
	req.StaffIDs = []int64{10}
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, resp.Booking.Status)
	assert.Equal(t, []int64{10}, resp.AssignedStaffIDs)
	require.Len(t, store.Assignments(), 1)

	// Борис выключен, поэтому всё бронирование откатывается
	req = validRequest("2025-07-01", "2025-07-01")
	req.StaffIDs = []int64{10, 11}
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStaffUnavailable)
	assert.Equal(t, 1, store.BookingCount())
	assert.Len(t, store.Assignments(), 1)

	req.StaffIDs = []int64{404}
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStaffNotFound)
	assert.Equal(t, 1, store.BookingCount())
}

func TestExecute_StaffBusyElsewhere(t *testing.T) {
	store := newStore()
	store.AddSpace(domain.Space{ID: 3, Name: "Garden", IsActive: true})
	other := store.AddBooking(domain.Booking{SpaceID: 3, Title: "Other", StartDate: date("2025-06-10"), EndDate: date("2025-06-15"), Status: domain.StatusConfirmed})
	store.Assign(other.ID, 10)
	uc := newUseCase(store)

	req := validRequest("2025-06-15", "2025-06-16")
	req.StaffIDs = []int64{10}
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStaffUnavailable)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Request)
	}{
		{name: "missing title", modify: func(r *Request) { r.Title = "" }},
		{name: "bad email", modify: func(r *Request) { r.ClientEmail = "not-an-email" }},
		{name: "end before start", modify: func(r *Request) { r.EndDate = date("2025-06-01") }},
		{name: "start in the past", modify: func(r *Request) { r.StartDate = date("2025-04-30") }},
		{name: "bad time", modify: func(r *Request) { r.StartTime = ptr.Ptr("9 o'clock") }},
		{name: "initial status completed", modify: func(r *Request) { r.Status = ptr.Ptr("completed") }},
		{name: "duplicate staff", modify: func(r *Request) { r.StaffIDs = []int64{10, 10} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore()
			uc := newUseCase(store)
			req := validRequest("2025-06-10", "2025-06-12")
			tt.modify(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Zero(t, store.BookingCount())
		})
	}
}

func TestExecute_StartsToday(t *testing.T) {
	store := newStore()
	uc := newUseCase(store)

	_, err := uc.Execute(context.Background(), validRequest("2025-05-01", "2025-05-01"))
	assert.NoError(t, err)
}

func TestExecute_RepositoryErrors(t *testing.T) {
	store := newStore()
	uc := newUseCase(store)

	store.Failures["Bookings.Create"] = errors.New("connection refused")
	_, err := uc.Execute(context.Background(), validRequest("2025-06-10", "2025-06-10"))
	assert.ErrorIs(t, err, ErrInternal)

	store.Failures["Bookings.Create"] = fmt.Errorf("exec: %w", &pq.Error{Code: "40001"})
	_, err = uc.Execute(context.Background(), validRequest("2025-06-10", "2025-06-10"))
	assert.ErrorIs(t, err, ErrConcurrentUpdate)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
