package get_leave_request

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/service/leave/models"
)

type LeaveService interface {
	GetByID(ctx context.Context, id int64) (*models.LeaveRequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
