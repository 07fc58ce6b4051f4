package list_pending_leave

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/service/leave/models"
)

type LeaveService interface {
	ListPending(ctx context.Context, stage string) (*models.LeaveRequestListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
