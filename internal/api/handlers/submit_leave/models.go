package submit_leave

import (
	"github.com/m04kA/SMC-VenueService/internal/service/leave/models"
	submitLeave "github.com/m04kA/SMC-VenueService/internal/usecase/submit_leave"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// SubmitLeaveRequest HTTP request model
type SubmitLeaveRequest struct {
	StaffID   int64      `json:"staffId" validate:"required,gt=0"`
	LeaveType string     `json:"leaveType" validate:"required,oneof=annual sick emergency"`
	StartDate types.Date `json:"startDate"`
	EndDate   types.Date `json:"endDate"`
	Reason    string     `json:"reason" validate:"required,min=10,max=1000"`
}

// SubmitLeaveResponse созданная заявка и остаток категории до согласования
type SubmitLeaveResponse struct {
	*models.LeaveRequestResponse
	Balance models.BalanceItem `json:"balance"`
}

func (r *SubmitLeaveRequest) ToUseCaseRequest(userID int64) *submitLeave.Request {
	return &submitLeave.Request{
		UserID:    userID,
		StaffID:   r.StaffID,
		LeaveType: r.LeaveType,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Reason:    r.Reason,
	}
}

func FromUseCaseResponse(resp *submitLeave.Response) *SubmitLeaveResponse {
	return &SubmitLeaveResponse{
		LeaveRequestResponse: models.FromDomainLeaveRequest(resp.LeaveRequest),
		Balance: models.BalanceItem{
			LeaveType: string(resp.Balance.LeaveType),
			Total:     resp.Balance.Total,
			Used:      resp.Balance.Used,
			Remaining: resp.Balance.Remaining(),
		},
	}
}
