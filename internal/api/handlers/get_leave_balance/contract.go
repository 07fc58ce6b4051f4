package get_leave_balance

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/service/leave/models"
)

type LeaveService interface {
	GetBalance(ctx context.Context, staffID int64) (*models.BalanceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
