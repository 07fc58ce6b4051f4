package cancel_leave

import (
	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// Request отмена заявки её владельцем
type Request struct {
	UserID         int64
	LeaveRequestID int64
	Reason         *string
}

// Response отмененная заявка; LedgerEntry заполнен, если дни вернулись в остаток
type Response struct {
	LeaveRequest *domain.LeaveRequest
	Transition   domain.LeaveTransition
	LedgerEntry  *domain.LeaveLedgerEntry
}
