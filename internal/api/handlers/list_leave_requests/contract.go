package list_leave_requests

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/service/leave/models"
)

type LeaveService interface {
	ListForStaff(ctx context.Context, req *models.ListLeaveRequestsRequest) (*models.LeaveRequestListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
