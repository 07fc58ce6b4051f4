package review_leave

import (
	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// Request решение одного этапа согласования
type Request struct {
	ReviewerID     int64
	ReviewerRole   domain.Role
	LeaveRequestID int64
	Stage          string // hr | head
	Outcome        domain.ReviewOutcome
	Notes          *string
}

// Response заявка после решения; LedgerEntry заполнен, если заявка одобрена окончательно
type Response struct {
	LeaveRequest *domain.LeaveRequest
	Transition   domain.LeaveTransition
	LedgerEntry  *domain.LeaveLedgerEntry
}
