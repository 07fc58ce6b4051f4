package review_leave

import (
	"github.com/m04kA/SMC-VenueService/internal/domain"
	reviewLeave "github.com/m04kA/SMC-VenueService/internal/usecase/review_leave"
)

// ReviewLeaveRequest HTTP request model
type ReviewLeaveRequest struct {
	Stage    string  `json:"stage" validate:"required,oneof=hr head"`
	Decision string  `json:"decision" validate:"required,oneof=approve reject"`
	Notes    *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

func (r *ReviewLeaveRequest) ToUseCaseRequest(reviewer domain.Reviewer, requestID int64) *reviewLeave.Request {
	outcome := domain.OutcomeApproved
	if r.Decision == "reject" {
		outcome = domain.OutcomeRejected
	}
	return &reviewLeave.Request{
		ReviewerID:     reviewer.UserID,
		ReviewerRole:   reviewer.Role,
		LeaveRequestID: requestID,
		Stage:          r.Stage,
		Outcome:        outcome,
		Notes:          r.Notes,
	}
}
