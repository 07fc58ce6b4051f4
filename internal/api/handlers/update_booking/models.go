package update_booking

import (
	updateBooking "github.com/m04kA/SMC-VenueService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// UpdateBookingRequest HTTP request model. Отсутствующие поля не меняются.
type UpdateBookingRequest struct {
	SpaceID   *int64      `json:"spaceId,omitempty" validate:"omitempty,gt=0"`
	StartDate *types.Date `json:"startDate,omitempty"`
	EndDate   *types.Date `json:"endDate,omitempty"`
	StartTime *string     `json:"startTime,omitempty"`
	EndTime   *string     `json:"endTime,omitempty"`
}

func (r *UpdateBookingRequest) ToUseCaseRequest(userID, bookingID int64) *updateBooking.Request {
	return &updateBooking.Request{
		UserID:    userID,
		BookingID: bookingID,
		SpaceID:   r.SpaceID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}
