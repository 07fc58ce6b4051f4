package submit_leave

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

func validateRequest(req *Request, today types.Date) (domain.LeaveType, domain.DateRange, error) {
	if req.UserID <= 0 {
		return "", domain.DateRange{}, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.StaffID <= 0 {
		return "", domain.DateRange{}, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	leaveType, err := domain.ParseLeaveType(req.LeaveType)
	if err != nil {
		return "", domain.DateRange{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	period, err := domain.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return "", domain.DateRange{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if period.Start.Before(today) {
		return "", domain.DateRange{}, fmt.Errorf("%w: startDate must not be in the past", ErrInvalidInput)
	}

	reason := strings.TrimSpace(req.Reason)
	if len(reason) < domain.MinReasonLength || len(reason) > domain.MaxReasonLength {
		return "", domain.DateRange{}, fmt.Errorf("%w: reason must be between %d and %d characters",
			ErrInvalidInput, domain.MinReasonLength, domain.MaxReasonLength)
	}

	return leaveType, period, nil
}
