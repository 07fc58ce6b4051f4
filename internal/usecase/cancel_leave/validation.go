package cancel_leave

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

func validateRequest(req *Request) (*string, error) {
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.LeaveRequestID <= 0 {
		return nil, fmt.Errorf("%w: leaveRequestID must be positive", ErrInvalidInput)
	}
	if req.Reason == nil {
		return nil, nil
	}

	reason := strings.TrimSpace(*req.Reason)
	if len(reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}
	if reason == "" {
		return nil, nil
	}
	return &reason, nil
}
