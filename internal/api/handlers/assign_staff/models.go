package assign_staff

import (
	"time"

	assignStaff "github.com/m04kA/SMC-VenueService/internal/usecase/assign_staff"
)

// StaffItem сотрудник в запросе назначения
type StaffItem struct {
	StaffID int64   `json:"staffId" validate:"required,gt=0"`
	Role    *string `json:"role,omitempty" validate:"omitempty,max=100"`
	Notes   *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// AssignStaffRequest HTTP request model.
// Принимает одного сотрудника (staffId) или список (staff); список назначается целиком или не назначается.
type AssignStaffRequest struct {
	StaffID *int64      `json:"staffId,omitempty" validate:"omitempty,gt=0"`
	Role    *string     `json:"role,omitempty" validate:"omitempty,max=100"`
	Notes   *string     `json:"notes,omitempty" validate:"omitempty,max=1000"`
	Staff   []StaffItem `json:"staff,omitempty" validate:"omitempty,max=50,dive"`
}

// AssignmentResponse созданное назначение
type AssignmentResponse struct {
	StaffID    int64     `json:"staffId"`
	Role       *string   `json:"role,omitempty"`
	Notes      *string   `json:"notes,omitempty"`
	AssignedAt time.Time `json:"assignedAt"`
}

// AssignStaffResponse HTTP response model
type AssignStaffResponse struct {
	BookingID   int64                `json:"bookingId"`
	Assignments []AssignmentResponse `json:"assignments"`
}

// HasSingleTarget ровно один из вариантов: staffId или staff
func (r *AssignStaffRequest) HasSingleTarget() bool {
	return (r.StaffID != nil) != (len(r.Staff) > 0)
}

func (r *AssignStaffRequest) ToUseCaseRequest(userID, bookingID int64) *assignStaff.MultipleRequest {
	req := &assignStaff.MultipleRequest{
		UserID:    userID,
		BookingID: bookingID,
	}
	if r.StaffID != nil {
		req.Staff = []assignStaff.StaffItem{{StaffID: *r.StaffID, Role: r.Role, Notes: r.Notes}}
		return req
	}
	for _, item := range r.Staff {
		req.Staff = append(req.Staff, assignStaff.StaffItem{
			StaffID: item.StaffID,
			Role:    item.Role,
			Notes:   item.Notes,
		})
	}
	return req
}

func FromUseCaseResponse(resp *assignStaff.Response) *AssignStaffResponse {
	result := &AssignStaffResponse{
		BookingID:   resp.BookingID,
		Assignments: make([]AssignmentResponse, 0, len(resp.Assignments)),
	}
	for _, a := range resp.Assignments {
		result.Assignments = append(result.Assignments, AssignmentResponse{
			StaffID:    a.StaffID,
			Role:       a.Role,
			Notes:      a.Notes,
			AssignedAt: a.CreatedAt,
		})
	}
	return result
}
