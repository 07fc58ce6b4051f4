package submit_leave

import (
	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// Request заявка сотрудника на отпуск
type Request struct {
	UserID    int64 // Пользователь, подающий заявку; должен совпадать с владельцем StaffID
	StaffID   int64
	LeaveType string
	StartDate types.Date
	EndDate   types.Date
	Reason    string
}

// Response созданная заявка и остаток категории на момент подачи
type Response struct {
	LeaveRequest *domain.LeaveRequest
	Balance      domain.LeaveBalance
}
