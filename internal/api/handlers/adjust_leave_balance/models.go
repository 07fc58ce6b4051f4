package adjust_leave_balance

import (
	"github.com/m04kA/SMC-VenueService/internal/service/leave/models"
)

// AdjustBalanceRequest HTTP request model. Delta положительна, если дни списываются.
type AdjustBalanceRequest struct {
	LeaveType      string  `json:"leaveType" validate:"required,oneof=annual sick emergency"`
	Kind           string  `json:"kind,omitempty" validate:"omitempty,oneof=adjustment opening"`
	Delta          int     `json:"delta" validate:"required,ne=0"`
	Note           *string `json:"note,omitempty" validate:"omitempty,max=1000"`
	IdempotencyKey *string `json:"idempotencyKey,omitempty" validate:"omitempty,max=200"`
}

func (r *AdjustBalanceRequest) ToServiceRequest(actorID, staffID int64) *models.AdjustBalanceRequest {
	return &models.AdjustBalanceRequest{
		ActorID:        actorID,
		StaffID:        staffID,
		LeaveType:      r.LeaveType,
		Kind:           r.Kind,
		Delta:          r.Delta,
		Note:           r.Note,
		IdempotencyKey: r.IdempotencyKey,
	}
}
