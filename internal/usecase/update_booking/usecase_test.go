package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/internal/service/allocation"
	"github.com/m04kA/SMC-VenueService/internal/testutil/memstore"
	"github.com/m04kA/SMC-VenueService/pkg/logger"
	"github.com/m04kA/SMC-VenueService/pkg/metrics"
	"github.com/m04kA/SMC-VenueService/pkg/ptr"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func date(s string) types.Date { return types.MustParseDate(s) }

type fixture struct {
	store   *memstore.Store
	uc      *UseCase
	booking *domain.Booking
}

// Бронирование 10-12 июня в зале 1, назначена Анна
func newFixture() *fixture {
	store := memstore.New()
	store.AddSpace(domain.Space{ID: 1, Name: "Main Hall", IsActive: true})
	store.AddSpace(domain.Space{ID: 2, Name: "Garden", IsActive: true})
	store.AddSpace(domain.Space{ID: 3, Name: "Closed Terrace", IsActive: false})
	store.AddStaff(domain.Staff{ID: 10, Name: "Anna", IsAvailable: true})

	b := store.AddBooking(domain.Booking{SpaceID: 1, Title: "Wedding", StartDate: date("2025-06-10"), EndDate: date("2025-06-12"), Status: domain.StatusConfirmed})
	store.Assign(b.ID, 10)

	log := logger.NewNop()
	var noMetrics *metrics.Metrics
	engine := allocation.NewEngine(store.Bookings(), store.AssignmentRepo(), noMetrics, log)
	uc := NewUseCase(store.Bookings(), store.Spaces(), store.Staff(), store.AssignmentRepo(), engine, store.TxManager(), log)
	uc.timeProvider = fixedTime{now: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)}

	return &fixture{store: store, uc: uc, booking: b}
}

func (f *fixture) request() *Request {
	return &Request{UserID: 7, BookingID: f.booking.ID}
}

func TestExecute_ExtendsWithoutSelfConflict(t *testing.T) {
	f := newFixture()
	req := f.request()
	req.EndDate = ptr.Ptr(date("2025-06-14"))

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []int64{10}, resp.CheckedStaffIDs)

	stored, _ := f.store.Booking(f.booking.ID)
	assert.Equal(t, date("2025-06-10"), stored.StartDate)
	assert.Equal(t, date("2025-06-14"), stored.EndDate)
}

func TestExecute_SpaceConflict(t *testing.T) {
	f := newFixture()
	f.store.AddBooking(domain.Booking{SpaceID: 1, Title: "Expo", StartDate: date("2025-06-14"), EndDate: date("2025-06-15"), Status: domain.StatusPending})

	req := f.request()
	req.EndDate = ptr.Ptr(date("2025-06-14"))
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSpaceUnavailable)
	assert.ErrorIs(t, err, domain.ErrConflict)

	stored, _ := f.store.Booking(f.booking.ID)
	assert.Equal(t, date("2025-06-12"), stored.EndDate)
}

func TestExecute_MoveToAnotherSpace(t *testing.T) {
	f := newFixture()
	f.store.AddBooking(domain.Booking{SpaceID: 2, Title: "Picnic", StartDate: date("2025-06-12"), EndDate: date("2025-06-12"), Status: domain.StatusCancelled})

	req := f.request()
	req.SpaceID = ptr.Ptr(int64(2))
	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	stored, _ := f.store.Booking(f.booking.ID)
	assert.Equal(t, int64(2), stored.SpaceID)

	req.SpaceID = ptr.Ptr(int64(3))
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSpaceInactive)

	req.SpaceID = ptr.Ptr(int64(99))
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSpaceNotFound)
}

func TestExecute_AssignedStaffConflict(t *testing.T) {
	f := newFixture()
	other := f.store.AddBooking(domain.Booking{SpaceID: 2, Title: "Conference", StartDate: date("2025-06-20"), EndDate: date("2025-06-21"), Status: domain.StatusConfirmed})
	f.store.Assign(other.ID, 10)

	req := f.request()
	req.StartDate = ptr.Ptr(date("2025-06-19"))
	req.EndDate = ptr.Ptr(date("2025-06-20"))
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStaffUnavailable)

	stored, _ := f.store.Booking(f.booking.ID)
	assert.Equal(t, date("2025-06-10"), stored.StartDate)
}

func TestExecute_StatusAndValidation(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), f.request())
	assert.ErrorIs(t, err, ErrInvalidInput)

	req := f.request()
	req.StartDate = ptr.Ptr(date("2025-06-13"))
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput, "start after the current end")

	req = f.request()
	req.StartDate = ptr.Ptr(date("2025-04-01"))
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput, "start moved into the past")

	req = f.request()
	req.BookingID = 404
	req.EndDate = ptr.Ptr(date("2025-06-13"))
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	cancelled := f.store.AddBooking(domain.Booking{SpaceID: 2, Title: "Gone", StartDate: date("2025-07-01"), EndDate: date("2025-07-01"), Status: domain.StatusCancelled})
	req = f.request()
	req.BookingID = cancelled.ID
	req.EndDate = ptr.Ptr(date("2025-07-02"))
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCannotReschedule)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
}
