package review_leave

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

func validateRequest(req *Request) (domain.ReviewStage, error) {
	if req.ReviewerID <= 0 {
		return "", fmt.Errorf("%w: reviewerID must be positive", ErrInvalidInput)
	}
	if !req.ReviewerRole.IsValid() {
		return "", fmt.Errorf("%w: unknown reviewer role %q", ErrInvalidInput, req.ReviewerRole)
	}
	if req.LeaveRequestID <= 0 {
		return "", fmt.Errorf("%w: leaveRequestID must be positive", ErrInvalidInput)
	}

	stage, err := domain.ParseReviewStage(req.Stage)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !req.Outcome.IsValid() {
		return "", fmt.Errorf("%w: unknown outcome %q", ErrInvalidInput, req.Outcome)
	}

	notes := ""
	if req.Notes != nil {
		notes = strings.TrimSpace(*req.Notes)
	}
	if len(notes) > domain.MaxNotesLength {
		return "", fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	// Отказ без объяснения не принимается
	if req.Outcome == domain.OutcomeRejected && len(notes) < domain.MinReasonLength {
		return "", fmt.Errorf("%w: rejection notes must be at least %d characters", ErrInvalidInput, domain.MinReasonLength)
	}

	return stage, nil
}
