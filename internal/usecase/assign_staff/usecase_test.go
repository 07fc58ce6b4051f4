package assign_staff

import (
	"context"
	"testing"

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

func date(s string) types.Date { return types.MustParseDate(s) }

type fixture struct {
	store   *memstore.Store
	uc      *UseCase
	booking *domain.Booking
}

func newFixture() *fixture {
	store := memstore.New()
	store.AddSpace(domain.Space{ID: 1, Name: "Main Hall", IsActive: true})
	store.AddSpace(domain.Space{ID: 2, Name: "Garden", IsActive: true})
	store.AddStaff(domain.Staff{ID: 10, Name: "Anna", IsAvailable: true})
	store.AddStaff(domain.Staff{ID: 11, Name: "Boris", IsAvailable: true})
	store.AddStaff(domain.Staff{ID: 12, Name: "Clara", IsAvailable: false})

	b := store.AddBooking(domain.Booking{SpaceID: 1, Title: "Wedding", StartDate: date("2025-06-10"), EndDate: date("2025-06-12"), Status: domain.StatusConfirmed})

	log := logger.NewNop()
	var noMetrics *metrics.Metrics
	engine := allocation.NewEngine(store.Bookings(), store.AssignmentRepo(), noMetrics, log)
	resolver := availability.NewResolver(engine, store.Staff(), store.Spaces(), store.Bookings(), store.AssignmentRepo(), log)
	uc := NewUseCase(store.Bookings(), store.Staff(), store.AssignmentRepo(), resolver, store.TxManager(), log)

	return &fixture{store: store, uc: uc, booking: b}
}

func TestExecute_AssignsAvailableStaff(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{UserID: 1, BookingID: f.booking.ID, StaffID: 10, Role: ptr.Ptr("sound engineer")})
	require.NoError(t, err)
	require.Len(t, resp.Assignments, 1)
	assert.Equal(t, "sound engineer", *resp.Assignments[0].Role)

	assignments := f.store.Assignments()
	require.Len(t, assignments, 1)
	assert.Equal(t, int64(10), assignments[0].StaffID)
}

func TestExecute_DuplicateIsReportedBeforeAvailability(t *testing.T) {
	f := newFixture()
	f.store.Assign(f.booking.ID, 10)

	_, err := f.uc.Execute(context.Background(), &Request{UserID: 1, BookingID: f.booking.ID, StaffID: 10})
	assert.ErrorIs(t, err, ErrAlreadyAssigned)
	assert.ErrorIs(t, err, domain.ErrDuplicateAssignment)
	assert.NotErrorIs(t, err, domain.ErrConflict)
}

func TestExecute_Unavailable(t *testing.T) {
	f := newFixture()
	other := f.store.AddBooking(domain.Booking{SpaceID: 2, Title: "Expo", StartDate: date("2025-06-12"), EndDate: date("2025-06-13"), Status: domain.StatusPending})
	f.store.Assign(other.ID, 11)

	_, err := f.uc.Execute(context.Background(), &Request{UserID: 1, BookingID: f.booking.ID, StaffID: 11})
	assert.ErrorIs(t, err, ErrStaffUnavailable, "busy on the shared boundary day")
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.uc.Execute(context.Background(), &Request{UserID: 1, BookingID: f.booking.ID, StaffID: 12})
	assert.ErrorIs(t, err, ErrStaffUnavailable, "availability flag is off")
}

func TestExecute_CancelledOtherBookingDoesNotBlock(t *testing.T) {
	f := newFixture()
	other := f.store.AddBooking(domain.Booking{SpaceID: 2, Title: "Expo", StartDate: date("2025-06-11"), EndDate: date("2025-06-11"), Status: domain.StatusCancelled})
	f.store.Assign(other.ID, 11)

	_, err := f.uc.Execute(context.Background(), &Request{UserID: 1, BookingID: f.booking.ID, StaffID: 11})
	assert.NoError(t, err)
}

func TestExecute_BookingChecks(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{UserID: 1, BookingID: 404, StaffID: 10})
	assert.ErrorIs(t, err, ErrBookingNotFound)

	cancelled := f.store.AddBooking(domain.Booking{SpaceID: 2, Title: "Gone", StartDate: date("2025-07-01"), EndDate: date("2025-07-01"), Status: domain.StatusCancelled})
	_, err = f.uc.Execute(context.Background(), &Request{UserID: 1, BookingID: cancelled.ID, StaffID: 10})
	assert.ErrorIs(t, err, ErrBookingCancelled)

	_, err = f.uc.Execute(context.Background(), &Request{UserID: 1, BookingID: f.booking.ID, StaffID: 404})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecuteMultiple_AllOrNothing(t *testing.T) {
	f := newFixture()

	_, err := f.uc.ExecuteMultiple(context.Background(), &MultipleRequest{
		UserID:    1,
		BookingID: f.booking.ID,
		Staff:     []StaffItem{{StaffID: 10}, {StaffID: 11}, {StaffID: 12}},
	})
	assert.ErrorIs(t, err, ErrStaffUnavailable)
	assert.Empty(t, f.store.Assignments())

	resp, err := f.uc.ExecuteMultiple(context.Background(), &MultipleRequest{
		UserID:    1,
		BookingID: f.booking.ID,
		Staff:     []StaffItem{{StaffID: 10}, {StaffID: 11, Role: ptr.Ptr("host")}},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Assignments, 2)
	assert.Len(t, f.store.Assignments(), 2)
}

func TestExecuteMultiple_Validation(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name string
		req  MultipleRequest
	}{
		{name: "empty list", req: MultipleRequest{UserID: 1, BookingID: f.booking.ID}},
		{name: "duplicate staff", req: MultipleRequest{UserID: 1, BookingID: f.booking.ID, Staff: []StaffItem{{StaffID: 10}, {StaffID: 10}}}},
		{name: "missing user", req: MultipleRequest{BookingID: f.booking.ID, Staff: []StaffItem{{StaffID: 10}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.ExecuteMultiple(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
