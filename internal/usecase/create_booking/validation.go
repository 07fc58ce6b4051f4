package create_booking

import (
	"fmt"
	"net/mail"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// validateRequest валидирует входные данные запроса и возвращает период и начальный статус
func validateRequest(req *Request, today types.Date) (domain.DateRange, domain.BookingStatus, error) {
	if req.UserID <= 0 {
		return domain.DateRange{}, "", fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.SpaceID <= 0 {
		return domain.DateRange{}, "", fmt.Errorf("%w: spaceID must be positive", ErrInvalidInput)
	}

	if req.Title == "" || len(req.Title) > domain.MaxTitleLength {
		return domain.DateRange{}, "", fmt.Errorf("%w: title is required and must not exceed %d characters",
			ErrInvalidInput, domain.MaxTitleLength)
	}

	if req.ClientName == "" || len(req.ClientName) > domain.MaxNameLength {
		return domain.DateRange{}, "", fmt.Errorf("%w: clientName is required and must not exceed %d characters",
			ErrInvalidInput, domain.MaxNameLength)
	}

	if _, err := mail.ParseAddress(req.ClientEmail); err != nil {
		return domain.DateRange{}, "", fmt.Errorf("%w: invalid clientEmail", ErrInvalidInput)
	}

	if req.ClientPhone != nil && len(*req.ClientPhone) > domain.MaxPhoneLength {
		return domain.DateRange{}, "", fmt.Errorf("%w: clientPhone must not exceed %d characters",
			ErrInvalidInput, domain.MaxPhoneLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return domain.DateRange{}, "", fmt.Errorf("%w: notes must not exceed %d characters",
			ErrInvalidInput, domain.MaxNotesLength)
	}

	period, err := domain.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return domain.DateRange{}, "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if period.Start.Before(today) {
		return domain.DateRange{}, "", fmt.Errorf("%w: startDate must not be in the past", ErrInvalidInput)
	}

	if err := domain.ValidateEventTimes(req.StartTime, req.EndTime, period); err != nil {
		return domain.DateRange{}, "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	status := domain.StatusPending
	if req.Status != nil {
		status = domain.BookingStatus(*req.Status)
		if status != domain.StatusPending && status != domain.StatusConfirmed {
			return domain.DateRange{}, "", fmt.Errorf("%w: initial status must be pending or confirmed", ErrInvalidInput)
		}
	}

	if len(req.StaffIDs) > domain.MaxAssignBatchSize {
		return domain.DateRange{}, "", fmt.Errorf("%w: at most %d staff members can be assigned at once",
			ErrInvalidInput, domain.MaxAssignBatchSize)
	}

	seen := make(map[int64]bool, len(req.StaffIDs))
	for _, id := range req.StaffIDs {
		if id <= 0 {
			return domain.DateRange{}, "", fmt.Errorf("%w: staff IDs must be positive", ErrInvalidInput)
		}
		if seen[id] {
			return domain.DateRange{}, "", fmt.Errorf("%w: staff id=%d is listed twice", ErrInvalidInput, id)
		}
		seen[id] = true
	}

	return period, status, nil
}
