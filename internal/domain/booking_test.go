package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-VenueService/pkg/types"
)

func TestBookingStatus_Transitions(t *testing.T) {
	allowed := map[BookingStatus][]BookingStatus{
		StatusPending:   {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusCompleted, StatusCancelled},
		StatusCompleted: {},
		StatusCancelled: {},
	}
	all := []BookingStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

	for from, targets := range allowed {
		for _, to := range all {
			want := false
			for _, target := range targets {
				if target == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestBookingStatus_Parse(t *testing.T) {
	status, err := ParseBookingStatus("confirmed")
	assert.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)

	_, err = ParseBookingStatus("cancelled_by_user")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBooking_ActiveAndCancellable(t *testing.T) {
	b := &Booking{Status: StatusCompleted}
	assert.True(t, b.IsActive())
	assert.False(t, b.CanBeCancelled())
	assert.False(t, b.CanBeRescheduled())

	b.Status = StatusCancelled
	assert.False(t, b.IsActive())
	assert.True(t, b.IsCancelled())

	b.Status = StatusPending
	assert.True(t, b.CanBeCancelled())
	assert.True(t, b.CanBeRescheduled())
}

func TestStaff_Resource(t *testing.T) {
	s := &Staff{ID: 4, IsAvailable: true, Specializations: []string{"audio", "lighting"}}

	assert.Equal(t, ResourceRef{Kind: ResourceStaff, ID: 4}, s.Ref())
	assert.True(t, s.AvailabilityFlag())
	assert.True(t, s.HasSpecialization("audio"))
	assert.False(t, s.HasSpecialization("Audio"))

	sp := &Space{ID: 2, IsActive: false}
	assert.Equal(t, ResourceRef{Kind: ResourceSpace, ID: 2}, sp.Ref())
	assert.False(t, sp.AvailabilityFlag())
}

func TestValidateEventTimes(t *testing.T) {
	oneDay := DateRange{Start: types.MustParseDate("2025-06-10"), End: types.MustParseDate("2025-06-10")}
	twoDays := DateRange{Start: types.MustParseDate("2025-06-10"), End: types.MustParseDate("2025-06-11")}
	s := func(v string) *string { return &v }

	assert.NoError(t, ValidateEventTimes(nil, nil, oneDay))
	assert.NoError(t, ValidateEventTimes(s("09:00"), s("17:00"), oneDay))
	assert.NoError(t, ValidateEventTimes(s("18:00"), s("02:00"), twoDays))
	assert.ErrorIs(t, ValidateEventTimes(s("18:00"), s("09:00"), oneDay), ErrInvalidInput)
	assert.ErrorIs(t, ValidateEventTimes(s("9am"), nil, oneDay), ErrInvalidInput)
	assert.ErrorIs(t, ValidateEventTimes(nil, s("25:00"), oneDay), ErrInvalidInput)
}
