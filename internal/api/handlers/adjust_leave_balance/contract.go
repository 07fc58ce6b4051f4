package adjust_leave_balance

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/service/leave/models"
)

type LeaveService interface {
	AdjustBalance(ctx context.Context, req *models.AdjustBalanceRequest) (*models.BalanceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
