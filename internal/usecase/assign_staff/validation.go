package assign_staff

import (
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

func validateMultiple(req *MultipleRequest) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if len(req.Staff) == 0 {
		return fmt.Errorf("%w: at least one staff member is required", ErrInvalidInput)
	}
	if len(req.Staff) > domain.MaxAssignBatchSize {
		return fmt.Errorf("%w: at most %d staff members can be assigned at once", ErrInvalidInput, domain.MaxAssignBatchSize)
	}

	seen := make(map[int64]bool, len(req.Staff))
	for _, item := range req.Staff {
		if item.StaffID <= 0 {
			return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
		}
		if seen[item.StaffID] {
			return fmt.Errorf("%w: staff id=%d is listed twice", ErrInvalidInput, item.StaffID)
		}
		seen[item.StaffID] = true

		if item.Role != nil && len(*item.Role) > domain.MaxRoleLength {
			return fmt.Errorf("%w: role must not exceed %d characters", ErrInvalidInput, domain.MaxRoleLength)
		}
		if item.Notes != nil && len(*item.Notes) > domain.MaxNotesLength {
			return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
		}
	}
	return nil
}
