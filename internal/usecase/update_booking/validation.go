package update_booking

import (
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.SpaceID != nil && *req.SpaceID <= 0 {
		return fmt.Errorf("%w: spaceID must be positive", ErrInvalidInput)
	}
	if req.isEmpty() {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	return nil
}

// applyChanges возвращает копию бронирования с новыми значениями
func applyChanges(current *domain.Booking, req *Request, today types.Date) (*domain.Booking, error) {
	updated := *current

	if req.SpaceID != nil {
		updated.SpaceID = *req.SpaceID
	}
	if req.StartDate != nil {
		updated.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		updated.EndDate = *req.EndDate
	}
	if req.StartTime != nil {
		updated.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		updated.EndTime = req.EndTime
	}

	period, err := domain.NewDateRange(updated.StartDate, updated.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Перенос начала в прошлое запрещён, уже начавшееся мероприятие можно продлить
	if req.StartDate != nil && !req.StartDate.Equal(current.StartDate) && period.Start.Before(today) {
		return nil, fmt.Errorf("%w: startDate must not be in the past", ErrInvalidInput)
	}

	if err := domain.ValidateEventTimes(updated.StartTime, updated.EndTime, period); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return &updated, nil
}
